package ui

// Listener handles one dispatched event.
type Listener func(Event)

// Subscription is returned by Listen and removes the listener on Release.
type Subscription struct {
	host *Host
	kind EventKind
	id   uint64
}

func (s Subscription) Release() {
	if s.host != nil {
		s.host.remove(s.kind, s.id)
	}
}

type registration struct {
	id uint64
	fn Listener
}

// Host is the window: it owns listener registration and the current size.
type Host struct {
	nextID    uint64
	listeners map[EventKind][]registration
	live      map[uint64]struct{}
	width     int
	height    int
}

func NewHost(width, height int) *Host {
	return &Host{
		listeners: make(map[EventKind][]registration),
		live:      make(map[uint64]struct{}),
		width:     width,
		height:    height,
	}
}

func (h *Host) Size() (int, int) {
	return h.width, h.height
}

func (h *Host) Listen(kind EventKind, fn Listener) Subscription {
	h.nextID++
	h.live[h.nextID] = struct{}{}
	h.listeners[kind] = append(h.listeners[kind], registration{id: h.nextID, fn: fn})
	return Subscription{host: h, kind: kind, id: h.nextID}
}

func (h *Host) remove(kind EventKind, id uint64) {
	delete(h.live, id)
	regs := h.listeners[kind]
	for i, reg := range regs {
		if reg.id == id {
			h.listeners[kind] = append(regs[:i:i], regs[i+1:]...)
			break
		}
	}
	if len(h.listeners[kind]) == 0 {
		delete(h.listeners, kind)
	}
}

// Dispatch calls the listeners of ev.Kind in registration order. A listener
// added during dispatch first hears the next event; one released during
// dispatch is not called again.
func (h *Host) Dispatch(ev Event) {
	if ev.Kind == Resize {
		h.width, h.height = ev.Width, ev.Height
	}

	regs := append([]registration(nil), h.listeners[ev.Kind]...)
	for _, reg := range regs {
		if _, ok := h.live[reg.id]; ok {
			reg.fn(ev)
		}
	}
}

// ListenerCount is the number of live listeners across all kinds.
func (h *Host) ListenerCount() int {
	return len(h.live)
}

// subscriptions groups the listeners of one widget.
type subscriptions []Subscription

func (s *subscriptions) listen(h *Host, kind EventKind, fn Listener) {
	*s = append(*s, h.Listen(kind, fn))
}

func (s *subscriptions) release() {
	for _, sub := range *s {
		sub.Release()
	}
	*s = nil
}
