// Package assets builds the placeholder art: sprite sheets from spriteset
// specs, tile images per collision class and the scrolling backdrop.
package assets

import (
	"errors"
	"fmt"
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/milk9111/sunnyland/prefabs"
)

var ErrNoSheet = errors.New("assets: no such sheet")

var labelFace = text.NewGoXFace(basicfont.Face7x13)

// Sheet is a horizontal strip of equally sized frames drawn in grey levels.
// Palettes tint it at draw time.
type Sheet struct {
	Name          string
	Width, Height int

	image     *ebiten.Image
	frames    int
	sequences map[string]prefabs.SequenceSpec
	palettes  [2]ebiten.ColorScale
}

// Frame returns the sub-image for a sheet index, clamped to the strip. It
// is nil for a sheet that was never drawn.
func (s *Sheet) Frame(i int) *ebiten.Image {
	if s.image == nil {
		return nil
	}
	i = max(0, min(i, s.frames-1))
	r := image.Rect(i*s.Width, 0, (i+1)*s.Width, s.Height)
	return s.image.SubImage(r).(*ebiten.Image)
}

func (s *Sheet) Frames() int { return s.frames }

func (s *Sheet) Sequence(name string) (prefabs.SequenceSpec, bool) {
	seq, ok := s.sequences[name]
	return seq, ok
}

// Palette returns the colour scale for a palette index. Unknown indices use
// the base palette.
func (s *Sheet) Palette(i int) ebiten.ColorScale {
	if i < 0 || i >= len(s.palettes) {
		i = 0
	}
	return s.palettes[i]
}

// Sheets indexes built sheets by spriteset name.
type Sheets map[string]*Sheet

func (ss Sheets) Get(name string) (*Sheet, error) {
	s, ok := ss[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNoSheet, name)
	}
	return s, nil
}

// NewSheet lays out a sheet for spec without drawing any pixels.
func NewSheet(spec prefabs.SpritesetSpec) *Sheet {
	s := &Sheet{
		Name:      spec.Name,
		Width:     spec.Width,
		Height:    spec.Height,
		frames:    spec.Frames,
		sequences: make(map[string]prefabs.SequenceSpec, len(spec.Sequences)),
	}
	for _, seq := range spec.Sequences {
		s.sequences[seq.Name] = seq
	}

	base := spec.Color.RGBA8()
	alt := base
	if spec.Alt != nil {
		alt = spec.Alt.RGBA8()
	}
	s.palettes[0].ScaleWithColor(base)
	s.palettes[1].ScaleWithColor(alt)
	return s
}

// BuildSheets draws one sheet per spriteset spec.
func BuildSheets(specs []prefabs.SpritesetSpec) (Sheets, error) {
	out := make(Sheets, len(specs))
	for _, spec := range specs {
		if spec.Width <= 0 || spec.Height <= 0 || spec.Frames <= 0 {
			return nil, fmt.Errorf("assets: spriteset %q has no size", spec.Name)
		}
		s := NewSheet(spec)
		s.image = ebiten.NewImage(spec.Width*spec.Frames, spec.Height)
		for i := range spec.Frames {
			if i < len(spec.Labels) {
				drawLabel(s.Frame(i), spec.Labels[i])
				continue
			}
			drawBody(s.Frame(i), i)
		}
		out[spec.Name] = s
	}
	return out, nil
}

// drawBody draws a rounded-off block whose inset breathes with the frame
// index so animations are visible.
func drawBody(dst *ebiten.Image, frame int) {
	b := dst.Bounds()
	x, y := float32(b.Min.X), float32(b.Min.Y)
	w, h := float32(b.Dx()), float32(b.Dy())
	bob := float32(frame % 2)

	vector.DrawFilledRect(dst, x+1, y+1+bob, w-2, h-2-bob, color.Gray{Y: 0xd0}, false)
	vector.StrokeRect(dst, x+1, y+1+bob, w-2, h-2-bob, 1, color.Gray{Y: 0x70}, false)

	// eye, on the right so horizontal flips read
	eye := max(2, w/8)
	vector.DrawFilledRect(dst, x+w-2*eye-1, y+h/4+bob, eye, eye, color.Gray{Y: 0x20}, false)

	// stride marks shift with the frame
	step := float32(frame%4) * (w / 8)
	vector.DrawFilledRect(dst, x+2+step, y+h-3, w/4, 2, color.Gray{Y: 0x90}, false)
}

func drawLabel(dst *ebiten.Image, label string) {
	b := dst.Bounds()
	op := &text.DrawOptions{}
	op.GeoM.Translate(float64(b.Min.X), float64(b.Min.Y))
	op.ColorScale.ScaleWithColor(color.White)
	text.Draw(dst, label, labelFace, op)
}
