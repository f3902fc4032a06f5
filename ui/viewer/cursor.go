package viewer

import (
	"sync"
)

// cursorGuard scopes the drag-cursor override, which is shared process-wide
// state on the window canvas. It is acquired exactly once on drag start and
// released on drag end and on viewer close, so a close racing a drag cannot
// leave a stale cursor behind.
type cursorGuard struct {
	mu   sync.Mutex
	held bool
}

func (g *cursorGuard) acquire() {
	g.mu.Lock()
	g.held = true
	g.mu.Unlock()
}

func (g *cursorGuard) release() {
	g.mu.Lock()
	g.held = false
	g.mu.Unlock()
}

func (g *cursorGuard) active() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.held
}
