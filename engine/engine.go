// Package engine declares the capabilities the simulation consumes from the
// host: sprites, sound, input, timing, HUD and the scrolling backdrop.
package engine

import (
	"errors"
	"image/color"

	"github.com/milk9111/sunnyland/levels"
)

var (
	ErrNoFreeSprite     = errors.New("engine: no free sprite")
	ErrUnknownSpriteset = errors.New("engine: unknown spriteset")
)

// TileLayer is the collision grid. *levels.TileMap satisfies it.
type TileLayer interface {
	Tile(px, py int) levels.TileInfo
	SetTile(row, col int, t levels.TileType)
	Width() int
}

// Sprite is a visual handle. Positions are in screen pixels.
type Sprite interface {
	SetPosition(x, y int)
	SetFlipX(flip bool)
	// SetAnimation starts a named sequence; loops 0 repeats forever.
	SetAnimation(seq string, loops int)
	// SetPicture shows a static frame and stops any running animation.
	SetPicture(index int)
	SetPalette(index int)
	AnimationFinished() bool
	Disable()
}

type Sprites interface {
	Acquire(spriteset string) (Sprite, error)
}

type Sounds interface {
	Play(name string, channel int)
}

type Button uint8

const (
	ButtonLeft Button = iota
	ButtonRight
	ButtonJump
)

type Input interface {
	Held(b Button) bool
}

// Clock returns monotonic milliseconds.
type Clock interface {
	Ticks() int64
}

type HUD interface {
	UpdateTime(t int)
}

type Layer uint8

const (
	LayerForeground Layer = iota
	LayerBackground
)

type Backdrop interface {
	SetLayerPosition(layer Layer, x int)
	SetBackgroundColor(c color.RGBA)
}

// RasterFunc is called once per scanline before the line is drawn.
type RasterFunc func(line int)
