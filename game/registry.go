package game

import "strconv"

type Status uint8

const (
	StatusAlive Status = iota
	StatusTerminated
)

// Actor is anything polled once per frame. Release frees the actor's visual
// handle and is called exactly once, when the actor leaves the registry.
type Actor interface {
	Update(s *Session) Status
	Release()
}

// Handle is a generation-checked reference to a registry slot. A handle
// outlives its actor safely: once the slot is reused the old handle no
// longer resolves.
type Handle uint64

const handleIDBits = 32

func makeHandle(id, gen uint32) Handle {
	return Handle(uint64(gen)<<handleIDBits | uint64(id))
}

func (h Handle) id() uint32 {
	return uint32(h)
}

func (h Handle) generation() uint32 {
	return uint32(uint64(h) >> handleIDBits)
}

func (h Handle) String() string {
	return strconv.FormatUint(uint64(h), 10)
}

func (h Handle) Valid() bool {
	return h.id() > 0
}

type slot struct {
	actor Actor
	gen   uint32
}

// Registry owns the active actors in insertion order.
type Registry struct {
	slots []slot
	free  []uint32
	order []Handle

	// depth counts passes in progress; the order is compacted only when
	// no pass is running.
	depth int
	dirty bool
}

func NewRegistry() *Registry {
	return &Registry{}
}

// Add appends an actor. Actors added while Update is running are first
// polled on the next frame.
func (r *Registry) Add(a Actor) Handle {
	if r == nil || a == nil {
		return 0
	}
	var id uint32
	if n := len(r.free); n > 0 {
		id = r.free[n-1]
		r.free = r.free[:n-1]
	} else {
		r.slots = append(r.slots, slot{})
		id = uint32(len(r.slots))
	}
	s := &r.slots[id-1]
	s.actor = a
	h := makeHandle(id, s.gen)
	r.order = append(r.order, h)
	return h
}

// Remove releases the actor behind h. Removing a stale or dead handle is a
// no-op that returns false.
func (r *Registry) Remove(h Handle) bool {
	if !r.Alive(h) {
		return false
	}
	s := &r.slots[h.id()-1]
	a := s.actor
	s.actor = nil
	s.gen++
	r.free = append(r.free, h.id())
	r.dirty = true
	a.Release()
	r.compact()
	return true
}

func (r *Registry) Alive(h Handle) bool {
	if r == nil || !h.Valid() || int(h.id()) > len(r.slots) {
		return false
	}
	s := r.slots[h.id()-1]
	return s.actor != nil && s.gen == h.generation()
}

func (r *Registry) Get(h Handle) Actor {
	if !r.Alive(h) {
		return nil
	}
	return r.slots[h.id()-1].actor
}

func (r *Registry) Len() int {
	if r == nil {
		return 0
	}
	return len(r.slots) - len(r.free)
}

// Each visits live actors in insertion order until fn returns false. Actors
// removed during the walk are skipped; actors added are not visited.
func (r *Registry) Each(fn func(Handle, Actor) bool) {
	if r == nil {
		return
	}
	r.depth++
	defer r.leave()

	n := len(r.order)
	for i := 0; i < n; i++ {
		h := r.order[i]
		a := r.Get(h)
		if a == nil {
			continue
		}
		if !fn(h, a) {
			return
		}
	}
}

// Update polls every actor once and removes those that terminate.
func (r *Registry) Update(s *Session) {
	r.Each(func(h Handle, a Actor) bool {
		if a.Update(s) == StatusTerminated {
			r.Remove(h)
		}
		return true
	})
}

func (r *Registry) leave() {
	r.depth--
	r.compact()
}

func (r *Registry) compact() {
	if r.depth > 0 || !r.dirty {
		return
	}
	live := r.order[:0]
	for _, h := range r.order {
		if r.Alive(h) {
			live = append(live, h)
		}
	}
	clear(r.order[len(live):])
	r.order = live
	r.dirty = false
}
