package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeActor struct {
	name     string
	trace    *[]string
	status   Status
	released int
	onUpdate func()
}

func (a *fakeActor) Update(*Session) Status {
	*a.trace = append(*a.trace, a.name)
	if a.onUpdate != nil {
		a.onUpdate()
	}
	return a.status
}

func (a *fakeActor) Release() { a.released++ }

func TestRegistryAddRemove(t *testing.T) {
	var trace []string
	r := NewRegistry()
	a := &fakeActor{name: "a", trace: &trace}
	h := r.Add(a)

	require.True(t, h.Valid())
	assert.True(t, r.Alive(h))
	assert.Equal(t, 1, r.Len())
	assert.Same(t, a, r.Get(h))

	assert.True(t, r.Remove(h))
	assert.False(t, r.Remove(h), "second remove is a no-op")
	assert.Equal(t, 1, a.released)
	assert.Nil(t, r.Get(h))

	// the slot is reused under a new generation
	b := &fakeActor{name: "b", trace: &trace}
	hb := r.Add(b)
	assert.Equal(t, h.id(), hb.id())
	assert.NotEqual(t, h, hb)
	assert.False(t, r.Alive(h))
	assert.False(t, r.Remove(h))
	assert.True(t, r.Alive(hb))

	assert.False(t, r.Remove(0))
	assert.False(t, r.Remove(makeHandle(42, 0)))
}

func TestRegistryUpdateOrderAndTermination(t *testing.T) {
	var trace []string
	r := NewRegistry()
	r.Add(&fakeActor{name: "world", trace: &trace})
	r.Add(&fakeActor{name: "player", trace: &trace})
	done := &fakeActor{name: "effect", trace: &trace, status: StatusTerminated}
	r.Add(done)

	r.Update(nil)
	assert.Equal(t, []string{"world", "player", "effect"}, trace)
	assert.Equal(t, 1, done.released)
	assert.Equal(t, 2, r.Len())

	trace = nil
	r.Update(nil)
	assert.Equal(t, []string{"world", "player"}, trace)
}

func TestRegistryAddDuringUpdateRunsNextFrame(t *testing.T) {
	var trace []string
	r := NewRegistry()
	spawned := &fakeActor{name: "spawned", trace: &trace}
	spawner := &fakeActor{name: "spawner", trace: &trace}
	spawner.onUpdate = func() {
		if spawner.onUpdate != nil {
			spawner.onUpdate = nil
			r.Add(spawned)
		}
	}
	r.Add(spawner)

	r.Update(nil)
	assert.Equal(t, []string{"spawner"}, trace)

	trace = nil
	r.Update(nil)
	assert.Equal(t, []string{"spawner", "spawned"}, trace)
}

func TestRegistryRemoveOtherDuringUpdate(t *testing.T) {
	var trace []string
	r := NewRegistry()
	victim := &fakeActor{name: "victim", trace: &trace}
	killer := &fakeActor{name: "killer", trace: &trace}
	r.Add(killer)
	hv := r.Add(victim)
	tail := &fakeActor{name: "tail", trace: &trace}
	r.Add(tail)

	killer.onUpdate = func() {
		r.Remove(hv)
		r.Remove(hv)
		// reuse the freed slot in the same pass
		r.Add(&fakeActor{name: "late", trace: &trace})
	}

	r.Update(nil)
	assert.Equal(t, []string{"killer", "tail"}, trace)
	assert.Equal(t, 1, victim.released)
	assert.Equal(t, 3, r.Len())

	var names []string
	r.Each(func(_ Handle, a Actor) bool {
		names = append(names, a.(*fakeActor).name)
		return true
	})
	assert.Equal(t, []string{"killer", "tail", "late"}, names)
}

func TestRegistrySelfRemoveDuringUpdate(t *testing.T) {
	var trace []string
	r := NewRegistry()
	self := &fakeActor{name: "self", trace: &trace}
	h := r.Add(self)
	// removes itself and also reports termination
	self.status = StatusTerminated
	self.onUpdate = func() { r.Remove(h) }

	r.Update(nil)
	assert.Equal(t, 1, self.released)
	assert.Equal(t, 0, r.Len())
}
