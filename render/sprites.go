// Package render implements the engine capabilities on ebiten: the sprite
// pool, the tile and backdrop layers, input and the game clock.
package render

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/milk9111/sunnyland/assets"
	"github.com/milk9111/sunnyland/common"
	"github.com/milk9111/sunnyland/component"
	"github.com/milk9111/sunnyland/engine"
)

// SpritePool hands out a fixed number of sprite slots. Slots are drawn in
// index order.
type SpritePool struct {
	sheets assets.Sheets
	slots  [common.MaxSprites]Sprite
	logger *log.Logger
}

func NewSpritePool(sheets assets.Sheets, logger *log.Logger) *SpritePool {
	if logger == nil {
		logger = log.Default()
	}
	p := &SpritePool{sheets: sheets, logger: logger}
	for i := range p.slots {
		p.slots[i].pool = p
	}
	return p
}

// SetSheets swaps the sheets used by later acquisitions. Sprites already
// out keep drawing from their own sheet.
func (p *SpritePool) SetSheets(sheets assets.Sheets) {
	p.sheets = sheets
}

func (p *SpritePool) Acquire(spriteset string) (engine.Sprite, error) {
	sheet, ok := p.sheets[spriteset]
	if !ok {
		return nil, fmt.Errorf("%w: %s", engine.ErrUnknownSpriteset, spriteset)
	}
	for i := range p.slots {
		s := &p.slots[i]
		if s.enabled {
			continue
		}
		*s = Sprite{pool: p, sheet: sheet, enabled: true, picture: 0}
		return s, nil
	}
	return nil, engine.ErrNoFreeSprite
}

// Active returns the number of enabled slots.
func (p *SpritePool) Active() int {
	n := 0
	for i := range p.slots {
		if p.slots[i].enabled {
			n++
		}
	}
	return n
}

// Update advances every running animation by one frame.
func (p *SpritePool) Update() {
	for i := range p.slots {
		if s := &p.slots[i]; s.enabled {
			s.anim.Update()
		}
	}
}

func (p *SpritePool) Draw(screen *ebiten.Image) {
	for i := range p.slots {
		if s := &p.slots[i]; s.enabled {
			s.draw(screen)
		}
	}
}

// Sprite is one pool slot.
type Sprite struct {
	pool    *SpritePool
	sheet   *assets.Sheet
	enabled bool

	x, y    int
	flip    bool
	anim    *component.Animation
	seq     string
	picture int
	palette int
}

func (s *Sprite) SetPosition(x, y int) { s.x, s.y = x, y }
func (s *Sprite) SetFlipX(flip bool)   { s.flip = flip }
func (s *Sprite) SetPalette(index int) { s.palette = index }

func (s *Sprite) SetAnimation(seq string, loops int) {
	spec, ok := s.sheet.Sequence(seq)
	if !ok {
		s.pool.logger.Warn("unknown sequence", "spriteset", s.sheet.Name, "sequence", seq)
		return
	}
	if s.anim != nil && s.seq == seq {
		s.anim.Loops = max(0, loops)
		s.anim.Reset()
		return
	}
	s.anim = component.NewAnimation(spec.Start, spec.Frames, spec.Delay, max(0, loops))
	s.seq = seq
}

func (s *Sprite) SetPicture(index int) {
	s.anim = nil
	s.seq = ""
	s.picture = index
}

func (s *Sprite) AnimationFinished() bool {
	return s.anim.Finished()
}

func (s *Sprite) Disable() {
	s.enabled = false
	s.anim = nil
	s.seq = ""
}

// Frame returns the sheet index currently shown.
func (s *Sprite) Frame() int {
	if s.anim != nil {
		return s.anim.Frame()
	}
	return s.picture
}

func (s *Sprite) draw(screen *ebiten.Image) {
	img := s.sheet.Frame(s.Frame())
	if img == nil {
		return
	}
	op := &ebiten.DrawImageOptions{}
	if s.flip {
		op.GeoM.Scale(-1, 1)
		op.GeoM.Translate(float64(s.sheet.Width), 0)
	}
	op.GeoM.Translate(float64(s.x), float64(s.y))
	op.ColorScale = s.sheet.Palette(s.palette)
	screen.DrawImage(img, op)
}
