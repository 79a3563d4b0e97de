package assets

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/colornames"

	"github.com/milk9111/sunnyland/common"
	"github.com/milk9111/sunnyland/levels"
)

// Tiles holds one image per collision class plus a decoration tile for
// cells that have a graphic but no class.
type Tiles struct {
	byType     map[levels.TileType]*ebiten.Image
	decoration *ebiten.Image
}

func BuildTiles() *Tiles {
	const n = common.TileSize
	t := &Tiles{byType: make(map[levels.TileType]*ebiten.Image)}

	floor := ebiten.NewImage(n, n)
	floor.Fill(colornames.Sienna)
	vector.DrawFilledRect(floor, 0, 0, n, 3, colornames.Yellowgreen, false)
	t.byType[levels.Floor] = floor

	wall := ebiten.NewImage(n, n)
	wall.Fill(colornames.Saddlebrown)
	vector.StrokeRect(wall, 0.5, 0.5, n-1, n-1, 1, colornames.Maroon, false)
	t.byType[levels.Wall] = wall

	gem := ebiten.NewImage(n, n)
	for i := range n / 2 {
		w := float32(2*i + 2)
		vector.DrawFilledRect(gem, n/2-w/2, float32(i), w, 1, colornames.Gold, false)
		vector.DrawFilledRect(gem, n/2-w/2, float32(n-1-i), w, 1, colornames.Goldenrod, false)
	}
	t.byType[levels.Gem] = gem

	// slope_up rises to the right: the surface of column x is at n-1-x
	t.byType[levels.SlopeUp] = slope(func(x int) int { return n - 1 - x })
	t.byType[levels.SlopeDown] = slope(func(x int) int { return x })

	inner := ebiten.NewImage(n, n)
	inner.Fill(colornames.Sienna)
	t.byType[levels.InnerSlopeUp] = inner
	t.byType[levels.InnerSlopeDown] = inner

	t.decoration = ebiten.NewImage(n, n)
	t.decoration.Fill(color.RGBA{R: 0x3a, G: 0x5a, B: 0x2a, A: 0x80})
	return t
}

func slope(surface func(x int) int) *ebiten.Image {
	const n = common.TileSize
	img := ebiten.NewImage(n, n)
	for x := range n {
		top := surface(x)
		vector.DrawFilledRect(img, float32(x), float32(top), 1, float32(n-top), colornames.Sienna, false)
		vector.DrawFilledRect(img, float32(x), float32(top), 1, 1, colornames.Yellowgreen, false)
	}
	return img
}

// Image returns the picture for a cell, nil when nothing is drawn there.
func (t *Tiles) Image(typ levels.TileType, id uint32) *ebiten.Image {
	if img, ok := t.byType[typ]; ok {
		return img
	}
	if id != 0 {
		return t.decoration
	}
	return nil
}
