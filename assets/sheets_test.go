package assets

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/milk9111/sunnyland/prefabs"
)

func TestNewSheetLayout(t *testing.T) {
	specs, err := prefabs.LoadSpec[[]prefabs.SpritesetSpec]("spritesets.yaml")
	require.NoError(t, err)

	var hero prefabs.SpritesetSpec
	for _, s := range specs {
		if s.Name == "hero" {
			hero = s
		}
	}
	require.Equal(t, "hero", hero.Name)

	sheet := NewSheet(hero)
	assert.Equal(t, 24, sheet.Width)
	assert.Equal(t, 36, sheet.Height)
	assert.Equal(t, 13, sheet.Frames())
	assert.Nil(t, sheet.Frame(0))

	run, ok := sheet.Sequence("run")
	require.True(t, ok)
	assert.Equal(t, prefabs.SequenceSpec{Name: "run", Start: 4, Frames: 6, Delay: 5}, run)
	_, ok = sheet.Sequence("swim")
	assert.False(t, ok)

	// palette 1 is the near-white alternate used for the hurt flicker
	alt := sheet.Palette(1)
	base := sheet.Palette(0)
	assert.Greater(t, alt.B(), base.B())
	assert.Equal(t, base, sheet.Palette(7))
}

func TestNewSheetWithoutAltReusesBase(t *testing.T) {
	sheet := NewSheet(prefabs.SpritesetSpec{Name: "x", Width: 4, Height: 4, Frames: 1})
	assert.Equal(t, sheet.Palette(0), sheet.Palette(1))
}

func TestSheetsGet(t *testing.T) {
	ss := Sheets{"x": NewSheet(prefabs.SpritesetSpec{Name: "x", Width: 1, Height: 1, Frames: 1})}
	s, err := ss.Get("x")
	require.NoError(t, err)
	assert.Equal(t, "x", s.Name)

	_, err = ss.Get("y")
	assert.ErrorIs(t, err, ErrNoSheet)
}
