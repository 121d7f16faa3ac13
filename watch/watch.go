// Package watch reports changes to a single file so the header can be
// regenerated when its schema is edited.
package watch

import "time"

const (
	pollInterval = 100 * time.Millisecond
	debounce     = 250 * time.Millisecond
)

// pending coalesces a burst of change events into one callback.
type pending struct {
	set  bool
	last time.Time
}

func (p *pending) mark(now time.Time) {
	p.set = true
	p.last = now
}

func (p *pending) due(now time.Time) bool {
	if p.set && now.Sub(p.last) >= debounce {
		p.set = false
		return true
	}
	return false
}
