package render

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/milk9111/sunnyland/assets"
	"github.com/milk9111/sunnyland/common"
	"github.com/milk9111/sunnyland/engine"
	"github.com/milk9111/sunnyland/levels"
)

// Layers draws the background colour and panorama one scanline at a time,
// then the foreground tile map on top.
type Layers struct {
	tiles    *levels.TileMap
	art      *assets.Tiles
	backdrop *ebiten.Image

	fgX, bgX int
	bg       color.RGBA
}

func NewLayers(tiles *levels.TileMap, art *assets.Tiles, backdrop *ebiten.Image) *Layers {
	return &Layers{tiles: tiles, art: art, backdrop: backdrop, bg: color.RGBA{A: 0xff}}
}

func (l *Layers) SetLayerPosition(layer engine.Layer, x int) {
	switch layer {
	case engine.LayerForeground:
		l.fgX = x
	case engine.LayerBackground:
		l.bgX = x
	}
}

func (l *Layers) SetBackgroundColor(c color.RGBA) { l.bg = c }

// Positions returns the foreground and background scroll offsets.
func (l *Layers) Positions() (fg, bg int) { return l.fgX, l.bgX }

// Draw renders every layer. raster, when set, runs before each scanline and
// may change the background colour and scroll for that line onwards.
func (l *Layers) Draw(screen *ebiten.Image, raster engine.RasterFunc) {
	for line := range common.ScreenHeight {
		if raster != nil {
			raster(line)
		}
		vector.DrawFilledRect(screen, 0, float32(line), common.ScreenWidth, 1, l.bg, false)
		l.drawBackdropLine(screen, line)
	}
	l.drawTiles(screen)
}

func (l *Layers) drawBackdropLine(screen *ebiten.Image, line int) {
	if l.backdrop == nil {
		return
	}
	w := l.backdrop.Bounds().Dx()
	if line >= l.backdrop.Bounds().Dy() || w == 0 {
		return
	}
	x0 := ((l.bgX % w) + w) % w
	for dx := -x0; dx < common.ScreenWidth; dx += w {
		row := l.backdrop.SubImage(image.Rect(0, line, w, line+1)).(*ebiten.Image)
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(float64(dx), float64(line))
		screen.DrawImage(row, op)
	}
}

func (l *Layers) drawTiles(screen *ebiten.Image) {
	if l.tiles == nil || l.art == nil {
		return
	}
	const n = common.TileSize
	first := max(0, l.fgX/n)
	last := min(l.tiles.Cols()-1, (l.fgX+common.ScreenWidth)/n)
	rows := min(l.tiles.Rows(), common.ScreenHeight/n+1)
	for row := range rows {
		for col := first; col <= last; col++ {
			img := l.art.Image(l.tiles.Type(row, col), l.tiles.TileID(row, col))
			if img == nil {
				continue
			}
			op := &ebiten.DrawImageOptions{}
			op.GeoM.Translate(float64(col*n-l.fgX), float64(row*n))
			screen.DrawImage(img, op)
		}
	}
}
