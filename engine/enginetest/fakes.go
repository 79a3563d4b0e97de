// Package enginetest provides recording fakes of the engine capabilities.
package enginetest

import (
	"fmt"
	"image/color"

	"github.com/milk9111/sunnyland/engine"
)

type Input struct {
	held map[engine.Button]bool
}

func (in *Input) Held(b engine.Button) bool {
	if in == nil {
		return false
	}
	return in.held[b]
}

func (in *Input) Set(b engine.Button, held bool) {
	if in.held == nil {
		in.held = make(map[engine.Button]bool)
	}
	in.held[b] = held
}

func (in *Input) Release() {
	clear(in.held)
}

type Clock struct {
	Now int64
}

func (c *Clock) Ticks() int64 { return c.Now }

func (c *Clock) Advance(ms int64) { c.Now += ms }

type PlayedSound struct {
	Name    string
	Channel int
}

type Sounds struct {
	Played []PlayedSound
}

func (s *Sounds) Play(name string, channel int) {
	s.Played = append(s.Played, PlayedSound{Name: name, Channel: channel})
}

func (s *Sounds) Count(name string) int {
	n := 0
	for _, p := range s.Played {
		if p.Name == name {
			n++
		}
	}
	return n
}

type HUD struct {
	Times []int
}

func (h *HUD) UpdateTime(t int) { h.Times = append(h.Times, t) }

func (h *HUD) Last() int {
	if len(h.Times) == 0 {
		return -1
	}
	return h.Times[len(h.Times)-1]
}

type LayerMove struct {
	Layer engine.Layer
	X     int
}

type Backdrop struct {
	Moves  []LayerMove
	Colors []color.RGBA
	Pos    [2]int
}

func (b *Backdrop) SetLayerPosition(layer engine.Layer, x int) {
	b.Moves = append(b.Moves, LayerMove{Layer: layer, X: x})
	if int(layer) < len(b.Pos) {
		b.Pos[layer] = x
	}
}

func (b *Backdrop) SetBackgroundColor(c color.RGBA) {
	b.Colors = append(b.Colors, c)
}

// Sprite records every call made on it.
type Sprite struct {
	Spriteset string
	X, Y      int
	Flip      bool
	Animation string
	Loops     int
	Picture   int
	Palette   int
	Positions int
	Palettes  []int
	Finished  bool
	Disabled  bool
}

func (s *Sprite) SetPosition(x, y int) {
	s.X, s.Y = x, y
	s.Positions++
}

func (s *Sprite) SetFlipX(flip bool) { s.Flip = flip }

func (s *Sprite) SetAnimation(seq string, loops int) {
	s.Animation, s.Loops = seq, loops
	s.Picture = -1
	s.Finished = false
}

func (s *Sprite) SetPicture(index int) {
	s.Animation = ""
	s.Picture = index
}

func (s *Sprite) SetPalette(index int) {
	s.Palette = index
	s.Palettes = append(s.Palettes, index)
}

func (s *Sprite) AnimationFinished() bool { return s.Finished }

func (s *Sprite) Disable() { s.Disabled = true }

// Sprites hands out recording sprites up to Limit (unlimited when zero).
// Disabled sprites free their slot.
type Sprites struct {
	Limit  int
	Known  map[string]bool
	Issued []*Sprite
}

func (p *Sprites) Acquire(spriteset string) (engine.Sprite, error) {
	if p.Known != nil && !p.Known[spriteset] {
		return nil, fmt.Errorf("%w: %s", engine.ErrUnknownSpriteset, spriteset)
	}
	if p.Limit > 0 && p.Active() >= p.Limit {
		return nil, engine.ErrNoFreeSprite
	}
	s := &Sprite{Spriteset: spriteset, Picture: -1}
	p.Issued = append(p.Issued, s)
	return s, nil
}

func (p *Sprites) Active() int {
	n := 0
	for _, s := range p.Issued {
		if !s.Disabled {
			n++
		}
	}
	return n
}

// Live returns the enabled sprites of a spriteset in issue order.
func (p *Sprites) Live(spriteset string) []*Sprite {
	var out []*Sprite
	for _, s := range p.Issued {
		if s.Spriteset == spriteset && !s.Disabled {
			out = append(out, s)
		}
	}
	return out
}
