//go:build linux

package watch

import (
	"bytes"
	"context"
	"fmt"
	"path/filepath"
	"time"
	"unsafe"

	"golang.org/x/sys/unix"
)

const nameMax = 255

const inotifyMask = unix.IN_MODIFY | unix.IN_CLOSE_WRITE | unix.IN_MOVED_TO | unix.IN_CREATE

// Watcher watches the directory holding the file, so editors that replace
// the file by rename are still seen.
type Watcher struct {
	fd   int
	path string
	name string
}

func New(path string) (*Watcher, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}
	fd, err := unix.InotifyInit1(unix.IN_NONBLOCK | unix.IN_CLOEXEC)
	if err != nil {
		return nil, fmt.Errorf("inotify_init failed: %w", err)
	}
	if _, err := unix.InotifyAddWatch(fd, filepath.Dir(absPath), inotifyMask); err != nil {
		unix.Close(fd)
		return nil, fmt.Errorf("failed to watch %s: %w", absPath, err)
	}
	return &Watcher{fd: fd, path: absPath, name: filepath.Base(absPath)}, nil
}

// Watch calls onChange once per burst of changes until ctx is done.
// onChange runs on the calling goroutine.
func (w *Watcher) Watch(ctx context.Context, onChange func(path string)) error {
	buf := make([]byte, (unix.SizeofInotifyEvent+nameMax+1)*16)
	var p pending

	for {
		select {
		case <-ctx.Done():
			return nil
		default:
		}

		n, err := unix.Read(w.fd, buf)
		if err != nil && err != unix.EAGAIN && err != unix.EINTR {
			return fmt.Errorf("reading inotify events: %w", err)
		}
		if n > 0 && w.matches(buf[:n]) {
			p.mark(time.Now())
		}
		if p.due(time.Now()) {
			onChange(w.path)
			continue
		}
		time.Sleep(pollInterval)
	}
}

func (w *Watcher) matches(buf []byte) bool {
	found := false
	for offset := 0; offset+unix.SizeofInotifyEvent <= len(buf); {
		event := (*unix.InotifyEvent)(unsafe.Pointer(&buf[offset]))
		start := offset + unix.SizeofInotifyEvent
		end := start + int(event.Len)
		if end > len(buf) {
			break
		}
		name := string(bytes.TrimRight(buf[start:end], "\x00"))
		if name == w.name && event.Mask&inotifyMask != 0 {
			found = true
		}
		offset = end
	}
	return found
}

func (w *Watcher) Close() error {
	return unix.Close(w.fd)
}
