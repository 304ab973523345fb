// Package modal implements a terminal modal dialog. A modal draws into a
// shared Host rather than into its parent's view, and while open it holds
// the host's key listener slot and scroll lock.
package modal

import (
	"sort"
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"
)

// KeyListener receives every key dispatched to the host.
type KeyListener func(key string)

// Rect is a cell-aligned region of the screen.
type Rect struct {
	X, Y, W, H int
}

// Contains reports whether the cell (x, y) is inside r.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

type layer struct {
	render func() string
	bounds Rect
}

// Host owns the global state modals acquire: key listeners, the scroll lock
// and the portal layers composed over the base view.
type Host struct {
	mu        sync.Mutex
	nextID    int
	listeners map[int]KeyListener
	layers    map[int]*layer
	locks     int
}

func NewHost() *Host {
	return &Host{
		listeners: make(map[int]KeyListener),
		layers:    make(map[int]*layer),
	}
}

func (h *Host) id() int {
	h.nextID++
	return h.nextID
}

// AddKeyListener registers fn and returns the function that removes it.
func (h *Host) AddKeyListener(fn KeyListener) (remove func()) {
	h.mu.Lock()
	defer h.mu.Unlock()

	id := h.id()
	h.listeners[id] = fn
	return func() {
		h.mu.Lock()
		defer h.mu.Unlock()
		delete(h.listeners, id)
	}
}

// ListenerCount is the number of registered key listeners.
func (h *Host) ListenerCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.listeners)
}

// DispatchKey delivers key to every listener in registration order.
func (h *Host) DispatchKey(key string) {
	h.mu.Lock()
	ids := make([]int, 0, len(h.listeners))
	for id := range h.listeners {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	fns := make([]KeyListener, 0, len(ids))
	for _, id := range ids {
		fns = append(fns, h.listeners[id])
	}
	h.mu.Unlock()

	for _, fn := range fns {
		fn(key)
	}
}

// LockScroll stops the base view from scrolling until every returned unlock
// function has been called.
func (h *Host) LockScroll() (unlock func()) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.locks++
	var once sync.Once
	return func() {
		once.Do(func() {
			h.mu.Lock()
			defer h.mu.Unlock()
			h.locks--
		})
	}
}

func (h *Host) ScrollLocked() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.locks > 0
}

// Mount adds a portal layer drawn by render and returns its id together with
// the function that removes it.
func (h *Host) Mount(render func() string) (id int, unmount func()) {
	h.mu.Lock()
	defer h.mu.Unlock()

	id = h.id()
	h.layers[id] = &layer{render: render}
	return id, func() {
		h.mu.Lock()
		defer h.mu.Unlock()
		delete(h.layers, id)
	}
}

// Layers is the number of mounted portal layers.
func (h *Host) Layers() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.layers)
}

// Bounds returns where layer id was last composed.
func (h *Host) Bounds(id int) (Rect, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()

	l, ok := h.layers[id]
	if !ok {
		return Rect{}, false
	}
	return l.bounds, true
}

var backdropStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("238"))

// Compose returns base unchanged when no layer is mounted. Otherwise the
// newest layer is centred in a width×height frame. Rows the layer covers
// are replaced whole; the rest show base, then a dotted backdrop.
func (h *Host) Compose(base string, width, height int) string {
	h.mu.Lock()
	top := 0
	for id := range h.layers {
		if id > top {
			top = id
		}
	}
	var l *layer
	if top != 0 {
		l = h.layers[top]
	}
	h.mu.Unlock()

	if l == nil {
		return base
	}

	content := l.render()
	lines := strings.Split(content, "\n")
	w, ht := lipgloss.Width(content), len(lines)
	x, y := max(0, (width-w)/2), max(0, (height-ht)/2)

	h.mu.Lock()
	l.bounds = Rect{X: x, Y: y, W: w, H: ht}
	h.mu.Unlock()

	blank := backdropStyle.Render(strings.Repeat("·", max(width, 0)))
	rows := strings.Split(base, "\n")
	for len(rows) < max(height, y+ht) {
		rows = append(rows, blank)
	}
	rows = rows[:max(height, y+ht)]

	pad := strings.Repeat(" ", x)
	for i, line := range lines {
		rows[y+i] = pad + line
	}
	return strings.Join(rows, "\n")
}
