package game

import (
	"math"

	"github.com/milk9111/sunnyland/common"
	"github.com/milk9111/sunnyland/engine"
)

// Enemy is an actor the player can stomp.
type Enemy interface {
	Actor
	Position() (x, y float64)
	Size() (w, h int)
	// Kill removes the enemy and its spawn item for good. It reports false
	// when the enemy was already dead.
	Kill(s *Session) bool
}

type enemy struct {
	x, y          float64
	width, height int
	xspeed        float64
	direction     common.Direction
	item          int
	dead          bool

	sprite engine.Sprite
	handle Handle
}

func (e *enemy) Position() (float64, float64) { return e.x, e.y }
func (e *enemy) Size() (int, int)             { return e.width, e.height }
func (e *enemy) Direction() common.Direction  { return e.direction }
func (e *enemy) Dead() bool                   { return e.dead }

func (e *enemy) Kill(s *Session) bool {
	if e.dead {
		return false
	}
	e.dead = true
	s.world.RemoveItem(e.item)
	s.actors.Remove(e.handle)
	return true
}

func (e *enemy) Release() {
	e.sprite.Disable()
}

// turn reverses travel and faces the sprite the new way. Enemy art faces
// left.
func (e *enemy) turn() {
	e.direction = e.direction.Opposite()
	e.xspeed = -e.xspeed
	e.sprite.SetFlipX(e.direction == common.Right)
}

// Eagle patrols the screen in a sine wave, turning near the screen edges.
type Eagle struct {
	enemy
	frame int
	baseY float64
}

func newEagle(s *Session, item int, x, y float64) (*Eagle, error) {
	spec := &s.tuning.Eagle
	sprite, err := s.sprites.Acquire(spec.Spriteset)
	if err != nil {
		return nil, err
	}
	e := &Eagle{
		enemy: enemy{
			x:         x,
			y:         y,
			width:     spec.Width,
			height:    spec.Height,
			xspeed:    -spec.Speed,
			direction: common.Left,
			item:      item,
			sprite:    sprite,
		},
		baseY: y,
	}
	sprite.SetAnimation(spec.Animation, 0)
	e.handle = s.actors.Add(e)
	s.log.Debug("spawn eagle", "item", item, "x", x, "y", y)
	return e, nil
}

func (e *Eagle) Update(s *Session) Status {
	spec := &s.tuning.Eagle
	e.x += e.xspeed
	bob := math.Sin(float64(e.frame)*spec.BobStep*math.Pi/180) * spec.BobAmplitude
	e.y = e.baseY + float64(int(bob))
	e.frame++
	if e.frame == spec.CueFrame {
		s.play(spec.Cue)
	}

	screenX := e.x - float64(s.world.X())
	switch {
	case e.direction == common.Left && screenX < float64(spec.ScreenLeft):
		e.turn()
		s.play(spec.Cue)
	case e.direction == common.Right && screenX > float64(spec.ScreenRight):
		e.turn()
		s.play(spec.Cue)
	default:
		edge := e.x
		if e.direction == common.Right {
			edge += float64(e.width)
		}
		for _, off := range spec.ProbeOffsets {
			s.player.CheckHit(s, edge, e.y+float64(off), e.direction)
		}
	}
	e.sprite.SetPosition(int(screenX), int(e.y))
	return StatusAlive
}

// Opossum walks toward the player and turns once it gets too far past.
type Opossum struct {
	enemy
}

func newOpossum(s *Session, item int, x, y float64) (*Opossum, error) {
	spec := &s.tuning.Opossum
	sprite, err := s.sprites.Acquire(spec.Spriteset)
	if err != nil {
		return nil, err
	}
	o := &Opossum{enemy{
		x:         x,
		y:         y,
		width:     spec.Width,
		height:    spec.Height,
		xspeed:    -spec.Speed,
		direction: common.Left,
		item:      item,
		sprite:    sprite,
	}}
	sprite.SetAnimation(spec.Animation, 0)
	o.handle = s.actors.Add(o)
	s.log.Debug("spawn opossum", "item", item, "x", x, "y", y)
	return o, nil
}

func (o *Opossum) Update(s *Session) Status {
	radius := s.tuning.Opossum.ChaseRadius
	o.x += o.xspeed
	dx := o.x - s.player.X()
	probeY := o.y + float64(o.height/2)

	if o.direction == common.Left {
		if dx < -radius {
			o.turn()
		} else {
			s.player.CheckHit(s, o.x, probeY, o.direction)
		}
	} else {
		if dx > radius {
			o.turn()
		} else {
			s.player.CheckHit(s, o.x+float64(o.width), probeY, o.direction)
		}
	}
	o.sprite.SetPosition(int(o.x)-s.world.X(), int(o.y))
	return StatusAlive
}
