package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/milk9111/sunnyland/assets"
	"github.com/milk9111/sunnyland/common"
	"github.com/milk9111/sunnyland/engine"
	"github.com/milk9111/sunnyland/prefabs"
)

func testSheets() assets.Sheets {
	return assets.Sheets{
		"effect": assets.NewSheet(prefabs.SpritesetSpec{
			Name: "effect", Width: 8, Height: 8, Frames: 4,
			Sequences: []prefabs.SequenceSpec{{Name: "pop", Start: 0, Frames: 4, Delay: 2}},
		}),
	}
}

func TestSpritePoolExhaustion(t *testing.T) {
	pool := NewSpritePool(testSheets(), nil)

	var first engine.Sprite
	for i := range common.MaxSprites {
		s, err := pool.Acquire("effect")
		require.NoError(t, err)
		if i == 0 {
			first = s
		}
	}
	assert.Equal(t, common.MaxSprites, pool.Active())

	_, err := pool.Acquire("effect")
	assert.ErrorIs(t, err, engine.ErrNoFreeSprite)

	first.Disable()
	_, err = pool.Acquire("effect")
	assert.NoError(t, err)
}

func TestSpritePoolUnknownSpriteset(t *testing.T) {
	pool := NewSpritePool(testSheets(), nil)
	_, err := pool.Acquire("dragon")
	assert.ErrorIs(t, err, engine.ErrUnknownSpriteset)
	assert.Zero(t, pool.Active())
}

func TestSpriteAnimationPlaysOnce(t *testing.T) {
	pool := NewSpritePool(testSheets(), nil)
	es, err := pool.Acquire("effect")
	require.NoError(t, err)
	s := es.(*Sprite)

	s.SetAnimation("pop", 1)
	for range 7 {
		assert.False(t, s.AnimationFinished())
		pool.Update()
	}
	pool.Update()
	assert.True(t, s.AnimationFinished())
	assert.Equal(t, 3, s.Frame())

	s.SetPicture(1)
	assert.False(t, s.AnimationFinished())
	assert.Equal(t, 1, s.Frame())
}

func TestSpriteUnknownSequenceKeepsPicture(t *testing.T) {
	pool := NewSpritePool(testSheets(), nil)
	es, err := pool.Acquire("effect")
	require.NoError(t, err)
	s := es.(*Sprite)

	s.SetPicture(2)
	s.SetAnimation("missing", 0)
	assert.Equal(t, 2, s.Frame())
}

func TestSpriteSameSequenceRestarts(t *testing.T) {
	pool := NewSpritePool(testSheets(), nil)
	es, err := pool.Acquire("effect")
	require.NoError(t, err)
	s := es.(*Sprite)

	s.SetAnimation("pop", 1)
	for range 8 {
		pool.Update()
	}
	require.True(t, s.AnimationFinished())

	s.SetAnimation("pop", 0)
	assert.False(t, s.AnimationFinished())
	assert.Equal(t, 0, s.Frame())
	for range 20 {
		pool.Update()
	}
	assert.False(t, s.AnimationFinished(), "restarted with endless loops")
}
