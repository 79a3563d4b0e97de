package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/milk9111/sunnyland/common"
	"github.com/milk9111/sunnyland/engine/enginetest"
	"github.com/milk9111/sunnyland/levels"
)

func TestOpossumChaseRadius(t *testing.T) {
	h := newHarness(t, 60)
	h.place(170, 188)
	// well above the player so its probes never connect
	o, err := newOpossum(h.s, -1, 100, 100)
	require.NoError(t, err)
	sprite := h.sprites.Live("enemy_opossum")[0]

	h.step(5)
	assert.Equal(t, common.Left, o.Direction())
	assert.False(t, sprite.Flip)

	// x reaches 88, more than 80 behind the player
	h.step(1)
	x, _ := o.Position()
	assert.Equal(t, 88.0, x)
	assert.Equal(t, common.Right, o.Direction())
	assert.Equal(t, 2.0, o.xspeed)
	assert.True(t, sprite.Flip)

	h.step(81)
	assert.Equal(t, common.Right, o.Direction())
	h.step(1)
	assert.Equal(t, common.Left, o.Direction())
	assert.False(t, sprite.Flip)
	assert.Equal(t, 0, h.sounds.Count("hurt"))
}

func TestOpossumHitsPlayer(t *testing.T) {
	h := newHarness(t, 60)
	_, err := newOpossum(h.s, -1, 86, 200)
	require.NoError(t, err)

	h.step(1)
	p := h.s.Player()
	assert.Equal(t, StateHit, p.State())
	assert.Equal(t, -200, p.XSpeed())
	assert.Equal(t, 1, h.sounds.Count("hurt"))
}

func TestEagleReversesAtScreenEdge(t *testing.T) {
	h := newHarness(t, 60)
	e, err := newEagle(h.s, -1, 30, 50)
	require.NoError(t, err)
	sprite := h.sprites.Live("enemy_eagle")[0]
	assert.Equal(t, "fly", sprite.Animation)

	h.step(1)
	_, y := e.Position()
	assert.Equal(t, 50.0, y)
	h.step(1)
	_, y = e.Position()
	assert.Equal(t, 51.0, y, "sin(4deg)*15 truncates to 1")

	h.step(4)
	assert.Equal(t, common.Left, e.Direction())
	assert.Zero(t, h.sounds.Count("eagle"))

	// seventh frame: x = 9, past the left screen bound
	h.step(1)
	assert.Equal(t, common.Right, e.Direction())
	assert.True(t, sprite.Flip)
	assert.Equal(t, 1, h.sounds.Count("eagle"))
	assert.Equal(t, 9, sprite.X)

	h.step(3)
	assert.Equal(t, 2, h.sounds.Count("eagle"), "cue on the tenth frame")
	assert.Contains(t, h.sounds.Played, enginetest.PlayedSound{Name: "eagle", Channel: 3})

	h.step(200)
	assert.Equal(t, common.Left, e.Direction(), "turned at the right bound")
	assert.Equal(t, 3, h.sounds.Count("eagle"))
}

func TestEagleProbesLeadingEdge(t *testing.T) {
	h := newHarness(t, 60)
	_, err := newEagle(h.s, -1, 70, 180)
	require.NoError(t, err)

	h.step(1)
	p := h.s.Player()
	assert.Equal(t, StateHit, p.State())
	assert.Equal(t, common.Left, p.Direction())
	assert.Equal(t, 1, h.sounds.Count("hurt"))
}

func TestEagleSkipsProbesWhenTurning(t *testing.T) {
	h := newHarness(t, 60)
	h.place(0, 188)
	_, err := newEagle(h.s, -1, 12, 180)
	require.NoError(t, err)

	h.step(2)
	assert.Equal(t, 0, h.sounds.Count("hurt"))
	assert.Equal(t, StateIdle, h.s.Player().State())
}

func TestStompKillsEnemy(t *testing.T) {
	h := newHarness(t, 60, withObjects(levels.ObjectSpec{Type: 0, X: 5000, Y: 224}))
	p := h.s.Player()
	h.place(60, 100)
	h.airborne(100)
	o, err := newOpossum(h.s, 0, 54, 125)
	require.NoError(t, err)
	before := h.s.World().Time()

	// feet at 137, opossum top at 125, centres both at 72
	h.step(1)
	assert.True(t, o.Dead())
	assert.False(t, h.s.Actors().Alive(o.handle))
	assert.Empty(t, h.sprites.Live("enemy_opossum"))
	assert.Empty(t, h.s.World().Items())

	assert.Equal(t, before+5, h.s.World().Time())
	assert.Equal(t, -150, p.YSpeed())
	assert.Equal(t, StateJump, p.State())
	assert.Equal(t, MediumAir, p.Medium())
	assert.Contains(t, h.sounds.Played, enginetest.PlayedSound{Name: "crush", Channel: 2})

	deaths := h.sprites.Live("effect_death")
	require.Len(t, deaths, 1)
	assert.Equal(t, "death", deaths[0].Animation)
	var fx *Effect
	h.s.Actors().Each(func(_ Handle, a Actor) bool {
		if v, ok := a.(*Effect); ok && v.sprite == deaths[0] {
			fx = v
		}
		return true
	})
	require.NotNil(t, fx)
	assert.Equal(t, 54.0, fx.x)
	assert.Equal(t, 115.0, fx.y)

	popups := h.sprites.Live("score")
	require.Len(t, popups, 1)
	assert.Equal(t, 0, popups[0].Picture)

	assert.False(t, o.Kill(h.s))
}

func TestStompKillsEveryEnemyInOnePass(t *testing.T) {
	h := newHarness(t, 60)
	h.place(60, 100)
	h.airborne(100)
	o, err := newOpossum(h.s, -1, 54, 125)
	require.NoError(t, err)
	e, err := newEagle(h.s, -1, 52, 120)
	require.NoError(t, err)
	before := h.s.World().Time()

	h.step(1)
	assert.True(t, o.Dead())
	assert.True(t, e.Dead())
	assert.Equal(t, 2, h.sounds.Count("crush"))
	assert.Equal(t, before+10, h.s.World().Time())
}

func TestNoStompWhileRising(t *testing.T) {
	h := newHarness(t, 60)
	h.place(60, 100)
	h.airborne(-100)
	o, err := newOpossum(h.s, -1, 54, 125)
	require.NoError(t, err)

	h.step(1)
	assert.False(t, o.Dead())
	assert.Zero(t, h.sounds.Count("crush"))
}
