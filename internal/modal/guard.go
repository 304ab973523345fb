package modal

import "sync"

// guard holds everything an open modal acquired from its host. Release
// gives it all back exactly once, however the modal goes away.
type guard struct {
	layer   int
	once    sync.Once
	release []func()
}

func acquire(h *Host, onKey KeyListener, render func() string) *guard {
	g := &guard{}

	removeListener := h.AddKeyListener(onKey)
	unlock := h.LockScroll()
	id, unmount := h.Mount(render)

	g.layer = id
	g.release = []func(){unmount, unlock, removeListener}
	return g
}

func (g *guard) Release() {
	if g == nil {
		return
	}
	g.once.Do(func() {
		for _, fn := range g.release {
			fn()
		}
	})
}
