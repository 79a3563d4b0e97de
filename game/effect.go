package game

import (
	"github.com/milk9111/sunnyland/engine"
	"github.com/milk9111/sunnyland/prefabs"
)

// Effect plays a one-shot animation at a fixed world position.
type Effect struct {
	x, y   float64
	sprite engine.Sprite
}

// spawnEffect adds an effect. Effects are cosmetic: a failure to get a
// sprite is logged and the effect skipped.
func spawnEffect(s *Session, x, y float64, spec prefabs.EffectSpec) *Effect {
	sprite, err := s.sprites.Acquire(spec.Spriteset)
	if err != nil {
		s.log.Debug("effect skipped", "spriteset", spec.Spriteset, "err", err)
		return nil
	}
	sprite.SetAnimation(spec.Animation, 1)
	e := &Effect{x: x, y: y, sprite: sprite}
	s.actors.Add(e)
	return e
}

func (e *Effect) Update(s *Session) Status {
	e.sprite.SetPosition(int(e.x)-s.world.X(), int(e.y))
	if e.sprite.AnimationFinished() {
		return StatusTerminated
	}
	return StatusAlive
}

func (e *Effect) Release() {
	e.sprite.Disable()
}

// Score pops a point value up from where it was earned, easing out over
// the score window.
type Score struct {
	value  int
	x, y   float64
	t0, t1 int64
	sprite engine.Sprite
}

func spawnScore(s *Session, value int, x, y float64) *Score {
	spec := &s.tuning.World.Score
	picture, ok := spec.Pictures[value]
	if !ok {
		s.log.Warn("no score picture", "value", value)
		return nil
	}
	sprite, err := s.sprites.Acquire(spec.Spriteset)
	if err != nil {
		s.log.Debug("score skipped", "value", value, "err", err)
		return nil
	}
	sprite.SetPicture(picture)
	now := s.now()
	sc := &Score{
		value:  value,
		x:      float64(int(x)),
		y:      float64(int(y)),
		t0:     now,
		t1:     now + spec.WindowMS,
		sprite: sprite,
	}
	s.actors.Add(sc)
	return sc
}

func (sc *Score) Value() int { return sc.value }

func (sc *Score) Update(s *Session) Status {
	now := s.now()
	p := float64(now-sc.t0) / float64(sc.t1-sc.t0)
	p = -(p * (p - 2))
	sc.sprite.SetPosition(int(sc.x)-s.world.X(), int(sc.y-p*s.tuning.World.Score.Rise))
	if now < sc.t1 {
		return StatusAlive
	}
	return StatusTerminated
}

func (sc *Score) Release() {
	sc.sprite.Disable()
}
