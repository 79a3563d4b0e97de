package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/milk9111/sunnyland/engine/enginetest"
)

func TestEffectEndsWithAnimation(t *testing.T) {
	h := newHarness(t, 60)
	fx := spawnEffect(h.s, 100, 40, h.tuning.World.Death)
	require.NotNil(t, fx)
	sprite := h.sprites.Live("effect_death")[0]
	n := h.s.Actors().Len()

	h.step(3)
	assert.False(t, sprite.Disabled)
	assert.Equal(t, 100, sprite.X)

	sprite.Finished = true
	h.step(1)
	assert.True(t, sprite.Disabled)
	assert.Equal(t, n-1, h.s.Actors().Len())
}

func TestEffectSkippedWithoutSprites(t *testing.T) {
	h := newHarness(t, 60, withSpriteLimit(1))
	n := h.s.Actors().Len()

	assert.Nil(t, spawnEffect(h.s, 0, 0, h.tuning.World.Vanish))
	assert.Nil(t, spawnScore(h.s, 1, 0, 0))
	assert.Equal(t, n, h.s.Actors().Len())
}

func TestScorePopupEasesOut(t *testing.T) {
	h := newHarness(t, 60)
	sc := spawnScore(h.s, -5, 100, 100)
	require.NotNil(t, sc)
	assert.Equal(t, -5, sc.Value())
	sprite := h.sprites.Live("score")[0]
	assert.Equal(t, 1, sprite.Picture)

	h.clock.Advance(500)
	h.s.Update()
	// p = 0.5 eases to 0.75 of the 16px rise
	assert.Equal(t, 100, sprite.X)
	assert.Equal(t, 88, sprite.Y)
	assert.False(t, sprite.Disabled)

	h.clock.Advance(499)
	h.s.Update()
	assert.False(t, sprite.Disabled)

	h.clock.Advance(1)
	h.s.Update()
	assert.True(t, sprite.Disabled)
	assert.Equal(t, 84, sprite.Y)
}

func TestScorePictures(t *testing.T) {
	h := newHarness(t, 60)
	for value, picture := range map[int]int{5: 0, -5: 1, 1: 2} {
		sc := spawnScore(h.s, value, 0, 0)
		require.NotNil(t, sc)
		assert.Equal(t, picture, sc.sprite.(*enginetest.Sprite).Picture)
	}
	assert.Nil(t, spawnScore(h.s, 7, 0, 0))
}
