//go:build !linux

package watch

import (
	"context"
	"os"
	"path/filepath"
	"time"
)

// Watcher polls the file's size and modification time.
type Watcher struct {
	path    string
	modTime time.Time
	size    int64
}

func New(path string) (*Watcher, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}
	w := &Watcher{path: absPath}
	if fi, err := os.Stat(absPath); err == nil {
		w.modTime, w.size = fi.ModTime(), fi.Size()
	} else if !os.IsNotExist(err) {
		return nil, err
	}
	return w, nil
}

// Watch calls onChange once per burst of changes until ctx is done.
// onChange runs on the calling goroutine.
func (w *Watcher) Watch(ctx context.Context, onChange func(path string)) error {
	var p pending
	for {
		select {
		case <-ctx.Done():
			return nil
		default:
		}

		if fi, err := os.Stat(w.path); err == nil {
			if !fi.ModTime().Equal(w.modTime) || fi.Size() != w.size {
				w.modTime, w.size = fi.ModTime(), fi.Size()
				p.mark(time.Now())
			}
		}
		if p.due(time.Now()) {
			onChange(w.path)
			continue
		}
		time.Sleep(pollInterval)
	}
}

func (w *Watcher) Close() error {
	return nil
}
