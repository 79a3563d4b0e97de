package game

import (
	"image/color"

	"github.com/milk9111/sunnyland/common"
	"github.com/milk9111/sunnyland/engine"
)

// Raster returns the per-scanline backdrop callback: a sky gradient, the
// cloud layer at the top and a line-scrolled background band. It only
// touches presentation state.
func (s *Session) Raster() engine.RasterFunc {
	return func(line int) {
		spec := &s.tuning.World.Raster
		wx := s.world.X()

		if line >= 0 && line <= spec.SkyEnd {
			s.backdrop.SetBackgroundColor(lerpColor(line, 0, spec.SkyEnd, spec.SkyTop.RGBA8(), spec.SkyBottom.RGBA8()))
		}

		switch {
		case line == 0:
			s.backdrop.SetLayerPosition(engine.LayerBackground, int(s.world.Clouds()))
		case line >= spec.BandStart && line <= spec.BandEnd:
			from, to := wx/spec.BandFrom, wx/spec.BandTo
			s.backdrop.SetLayerPosition(engine.LayerBackground, common.LerpInt(line, spec.BandStart, spec.BandEnd, from, to))
		case line == spec.GroundLine:
			s.backdrop.SetLayerPosition(engine.LayerBackground, wx/spec.GroundFactor)
		}
	}
}

func lerpColor(x, x0, x1 int, a, b color.RGBA) color.RGBA {
	return color.RGBA{
		R: uint8(common.LerpInt(x, x0, x1, int(a.R), int(b.R))),
		G: uint8(common.LerpInt(x, x0, x1, int(a.G), int(b.G))),
		B: uint8(common.LerpInt(x, x0, x1, int(a.B), int(b.B))),
		A: 255,
	}
}
