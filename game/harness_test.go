package game

import (
	"io"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/require"

	"github.com/milk9111/sunnyland/engine"
	"github.com/milk9111/sunnyland/engine/enginetest"
	"github.com/milk9111/sunnyland/levels"
	"github.com/milk9111/sunnyland/prefabs"
)

const (
	testRows     = 23
	testFloorRow = 14
)

type harness struct {
	s        *Session
	tuning   *prefabs.Tuning
	tiles    *levels.TileMap
	input    *enginetest.Input
	clock    *enginetest.Clock
	sounds   *enginetest.Sounds
	sprites  *enginetest.Sprites
	hud      *enginetest.HUD
	backdrop *enginetest.Backdrop
	objects  []levels.ObjectSpec
}

type harnessOption func(*harness)

func withObjects(objs ...levels.ObjectSpec) harnessOption {
	return func(h *harness) { h.objects = objs }
}

func withTuning(fn func(*prefabs.Tuning)) harnessOption {
	return func(h *harness) { fn(h.tuning) }
}

func withSpriteLimit(n int) harnessOption {
	return func(h *harness) { h.sprites.Limit = n }
}

// newHarness builds a session on a flat level: one floor row under the
// player's spawn and nothing else.
func newHarness(t *testing.T, cols int, opts ...harnessOption) *harness {
	t.Helper()
	tuning, err := prefabs.LoadTuning()
	require.NoError(t, err)

	h := &harness{
		tuning:   tuning,
		tiles:    levels.NewTileMap(cols, testRows),
		input:    &enginetest.Input{},
		clock:    &enginetest.Clock{Now: 1000},
		sounds:   &enginetest.Sounds{},
		sprites:  &enginetest.Sprites{},
		hud:      &enginetest.HUD{},
		backdrop: &enginetest.Backdrop{},
	}
	for col := 0; col < cols; col++ {
		h.tiles.SetTile(testFloorRow, col, levels.Floor)
	}
	for _, opt := range opts {
		opt(h)
	}

	h.s, err = NewSession(Options{
		Tuning:   h.tuning,
		Tiles:    h.tiles,
		Objects:  h.objects,
		Sprites:  h.sprites,
		Sounds:   h.sounds,
		Input:    h.input,
		Clock:    h.clock,
		HUD:      h.hud,
		Backdrop: h.backdrop,
		Logger:   log.New(io.Discard),
	})
	require.NoError(t, err)
	h.s.Start()
	return h
}

// step runs n frames, advancing the clock by one 60Hz frame each.
func (h *harness) step(n int) {
	for i := 0; i < n; i++ {
		h.clock.Advance(16)
		h.s.Update()
	}
}

func (h *harness) hold(b engine.Button) { h.input.Set(b, true) }

func (h *harness) release(b engine.Button) { h.input.Set(b, false) }

func (h *harness) playerSprite() *enginetest.Sprite {
	return h.sprites.Issued[0]
}

// place teleports the player and its hitbox.
func (h *harness) place(x, y float64) {
	p := h.s.player
	p.x, p.y = x, y
	p.hitbox.Move(float64(int(x)), float64(int(y)))
}

func (h *harness) airborne(yspeed int) {
	p := h.s.player
	p.medium = MediumAir
	p.state = StateJump
	p.yspeed = yspeed
}
