package game

import (
	"fmt"

	"github.com/milk9111/sunnyland/common"
	"github.com/milk9111/sunnyland/engine"
	"github.com/milk9111/sunnyland/levels"
	"github.com/milk9111/sunnyland/prefabs"
)

type State uint8

const (
	StateUndefined State = iota
	StateIdle
	StateRun
	StateJump
	StateHit
)

func (st State) String() string {
	switch st {
	case StateIdle:
		return "idle"
	case StateRun:
		return "run"
	case StateJump:
		return "jump"
	case StateHit:
		return "hit"
	default:
		return "undefined"
	}
}

// Medium is the physical context that selects the movement rules.
type Medium uint8

const (
	MediumFloor Medium = iota
	MediumAir
	MediumLadder
	MediumWater
)

// Player is the protagonist. Speeds are hundredths of a pixel per frame.
type Player struct {
	x, y           float64
	xspeed, yspeed int
	width, height  int

	state     State
	medium    Medium
	direction common.Direction
	immunity  int
	jump      bool

	hitbox *common.Hitbox
	sprite engine.Sprite
	handle Handle
}

func newPlayer(s *Session) (*Player, error) {
	spec := &s.tuning.Player
	sprite, err := s.sprites.Acquire(spec.Spriteset)
	if err != nil {
		return nil, err
	}
	p := &Player{
		x:         spec.Spawn.X,
		y:         spec.Spawn.Y,
		width:     spec.Width,
		height:    spec.Height,
		medium:    MediumFloor,
		direction: common.Right,
		sprite:    sprite,
	}
	p.hitbox = common.NewHitbox(float64(int(p.x)), float64(int(p.y)), float64(p.width), float64(p.height))
	p.setIdle(spec)
	sprite.SetPosition(int(p.x), int(p.y))
	return p, nil
}

func (p *Player) X() float64                  { return p.x }
func (p *Player) Y() float64                  { return p.y }
func (p *Player) XSpeed() int                 { return p.xspeed }
func (p *Player) YSpeed() int                 { return p.yspeed }
func (p *Player) State() State                { return p.state }
func (p *Player) Medium() Medium              { return p.medium }
func (p *Player) Direction() common.Direction { return p.direction }
func (p *Player) Immunity() int               { return p.immunity }
func (p *Player) Hitbox() *common.Hitbox      { return p.hitbox }

func (p *Player) String() string {
	return fmt.Sprintf("player(%.2f,%.2f %s)", p.x, p.y, p.state)
}

func (p *Player) setIdle(spec *prefabs.PlayerSpec) {
	if p.state == StateIdle {
		return
	}
	p.sprite.SetAnimation(spec.Animations["idle"], 0)
	p.state = StateIdle
	p.xspeed = 0
}

func (p *Player) setRunning(spec *prefabs.PlayerSpec) {
	if p.state == StateRun {
		return
	}
	p.sprite.SetAnimation(spec.Animations["run"], 0)
	p.state = StateRun
}

func (p *Player) setJump(s *Session) {
	if p.state == StateJump {
		return
	}
	spec := &s.tuning.Player
	p.yspeed = -spec.JumpSpeed
	p.sprite.SetAnimation(spec.Animations["jump"], 0)
	p.state = StateJump
	p.medium = MediumAir
	s.play(spec.Cues["jump"])
}

func (p *Player) setBounce(s *Session) {
	p.yspeed = -s.tuning.Player.BounceSpeed
	p.state = StateJump
	p.medium = MediumAir
}

func (p *Player) setHit(s *Session, dir common.Direction) {
	spec := &s.tuning.Player
	p.direction = dir
	if dir == common.Left {
		p.xspeed = -spec.XSpeedLimit
	} else {
		p.xspeed = spec.XSpeedLimit
	}
	// knocked back away from the enemy, facing it
	p.sprite.SetFlipX(dir == common.Right)
	p.yspeed = -spec.HitSpeed
	p.state = StateHit
	p.medium = MediumAir
	p.sprite.SetPicture(spec.HitPicture)
	p.immunity = spec.ImmunityFrames
	s.play(spec.Cues["hurt"])
	s.world.AddTimer(s, -spec.HitPenalty)
	spawnScore(s, -spec.HitPenalty, p.x, p.y)
	s.log.Debug("player hit", "dir", dir, "x", p.x, "y", p.y)
}

// CheckHit hurts the player when the point lies inside its hitbox. It does
// nothing while the player is immune.
func (p *Player) CheckHit(s *Session, x, y float64, dir common.Direction) bool {
	if p.immunity != 0 || !p.hitbox.Contains(x, y) {
		return false
	}
	p.setHit(s, dir)
	return true
}

func (p *Player) Update(s *Session) Status {
	spec := &s.tuning.Player
	oldx, oldy := p.x, p.y

	p.updateImmunity()
	p.updateDirection(s)

	switch p.medium {
	case MediumFloor:
		p.updateFloor(s)
	case MediumAir:
		if p.state != StateHit {
			p.updateAir(s)
		}
		p.yspeed = min(p.yspeed+spec.YSpeedDelta, spec.YSpeedLimit)
	}

	p.x += float64(p.xspeed) / 100
	p.y += float64(p.yspeed) / 100

	if p.x < 0 {
		p.x = 0
	} else if limit := float64(s.tiles.Width() - p.width); p.x > limit {
		p.x = limit
	}

	x, y := int(p.x), int(p.y)
	if p.yspeed < 0 {
		p.checkTop(s, x, y)
	} else {
		p.checkBottom(s, x, y)
	}
	if p.xspeed < 0 {
		p.checkLeft(s, x, y)
	} else if p.xspeed > 0 {
		p.checkRight(s, x, y)
	}
	if p.yspeed > 0 {
		p.checkJumpOnEnemies(s, x, y)
	}

	if p.x != oldx || p.y != oldy {
		p.hitbox.Move(float64(int(p.x)), float64(int(p.y)))
		p.sprite.SetPosition(int(p.x)-s.world.X(), int(p.y))
	}
	return StatusAlive
}

func (p *Player) Release() {
	p.sprite.Disable()
}

// updateImmunity counts down and swaps the palette on flicker edges only.
func (p *Player) updateImmunity() {
	if p.immunity == 0 {
		return
	}
	before := (p.immunity >> 2) & 1
	p.immunity--
	after := (p.immunity >> 2) & 1
	if p.immunity == 0 {
		after = 0
	}
	if before != after {
		p.sprite.SetPalette(after)
	}
}

func (p *Player) updateDirection(s *Session) {
	dir := p.direction
	if s.input.Held(engine.ButtonRight) {
		dir = common.Right
	} else if s.input.Held(engine.ButtonLeft) {
		dir = common.Left
	}
	if dir == p.direction {
		return
	}
	p.direction = dir
	p.sprite.SetFlipX(dir == common.Left)
}

func (p *Player) updateFloor(s *Session) {
	spec := &s.tuning.Player
	delta := spec.XSpeedDelta
	switch {
	case s.input.Held(engine.ButtonRight):
		p.xspeed = min(p.xspeed+delta, spec.XSpeedLimit)
		p.setRunning(spec)
	case s.input.Held(engine.ButtonLeft):
		p.xspeed = max(p.xspeed-delta, -spec.XSpeedLimit)
		p.setRunning(spec)
	case abs(p.xspeed) < delta:
		p.xspeed = 0
	case p.xspeed > 0:
		p.xspeed -= delta
	case p.xspeed < 0:
		p.xspeed += delta
	}
	if p.xspeed == 0 {
		p.setIdle(spec)
	}

	if !s.input.Held(engine.ButtonJump) {
		p.jump = false
		return
	}
	if !p.jump {
		p.setJump(s)
		p.jump = true
	}
}

func (p *Player) updateAir(s *Session) {
	spec := &s.tuning.Player
	if s.input.Held(engine.ButtonRight) {
		p.xspeed = min(p.xspeed+spec.JSpeedDelta, spec.XSpeedLimit)
	} else if s.input.Held(engine.ButtonLeft) {
		p.xspeed = max(p.xspeed-spec.JSpeedDelta, -spec.XSpeedLimit)
	}
}

func (p *Player) checkTop(s *Session, x, y int) {
	probes := [3]levels.TileInfo{
		s.tiles.Tile(x, y),
		s.tiles.Tile(x+p.width/2, y),
		s.tiles.Tile(x+p.width, y),
	}
	if hasType(probes[:], levels.Wall) {
		p.y = float64((probes[0].Row + 1) * common.TileSize)
		p.yspeed = 0
	}
	s.world.PickGem(s, probes[:])
}

// checkBottom resolves the feet against the ground. The three feet probes
// sit on the bottom edge; the fourth sits one pixel above it at the centre
// and detects slopes.
func (p *Player) checkBottom(s *Session, x, y int) {
	spec := &s.tuning.Player
	bottom := y + p.height
	probes := [4]levels.TileInfo{
		s.tiles.Tile(x, bottom),
		s.tiles.Tile(x+p.width/2, bottom),
		s.tiles.Tile(x+p.width, bottom),
		s.tiles.Tile(x+p.width/2, bottom-1),
	}
	centre := probes[3]

	ground := false
	switch {
	case centre.Type == levels.SlopeUp:
		height := common.TileSize - centre.XOffset
		if p.yspeed >= 0 && centre.YOffset > height {
			p.y -= float64(centre.YOffset - height)
			ground = true
		}
	case centre.Type == levels.SlopeDown:
		height := centre.XOffset + 1
		if p.yspeed >= 0 && centre.YOffset > height {
			p.y -= float64(centre.YOffset - height)
			ground = true
		}
	case probes[1].Type == levels.InnerSlopeUp:
		if p.xspeed > 0 {
			p.y = float64(probes[1].Row*common.TileSize - p.height - 1)
		} else {
			p.x--
		}
		ground = true
	case probes[1].Type == levels.InnerSlopeDown:
		if p.xspeed > 0 {
			p.x++
		} else {
			p.y = float64(probes[1].Row*common.TileSize - p.height - 1)
		}
		ground = true
	case hasType(probes[:3], levels.Floor):
		p.y = float64(probes[0].Row*common.TileSize - p.height)
		ground = true
	}

	if ground {
		p.yspeed = 0
		if p.medium == MediumAir {
			p.medium = MediumFloor
			if p.xspeed == 0 {
				p.setIdle(spec)
			} else {
				p.setRunning(spec)
			}
		}
	} else {
		p.medium = MediumAir
	}
	s.world.PickGem(s, probes[:])
}

func (p *Player) checkLeft(s *Session, x, y int) {
	probes := p.wallProbes(s, x, y)
	if hasType(probes, levels.Wall) {
		p.x = float64((probes[0].Col + 1) * common.TileSize)
		p.xspeed = 0
	}
	s.world.PickGem(s, probes)
}

func (p *Player) checkRight(s *Session, x, y int) {
	probes := p.wallProbes(s, x+p.width, y)
	if hasType(probes, levels.Wall) {
		p.x = float64(probes[0].Col*common.TileSize - p.width)
		p.xspeed = 0
	}
	s.world.PickGem(s, probes)
}

func (p *Player) wallProbes(s *Session, x, y int) []levels.TileInfo {
	offsets := s.tuning.Player.WallProbes
	probes := make([]levels.TileInfo, len(offsets))
	for i, off := range offsets {
		probes[i] = s.tiles.Tile(x, y+off)
	}
	return probes
}

// checkJumpOnEnemies kills every enemy the player lands on this frame.
func (p *Player) checkJumpOnEnemies(s *Session, x, y int) {
	spec := &s.tuning.Player
	px, py := float64(x)+float64(p.width)/2, float64(y+p.height)

	s.actors.Each(func(_ Handle, a Actor) bool {
		e, ok := a.(Enemy)
		if !ok {
			return true
		}
		ex, ey := e.Position()
		w, _ := e.Size()
		cx := ex + float64(w)/2
		gap := py - ey
		if absf(px-cx) >= spec.Stomp.Tolerance || gap <= spec.Stomp.MinGap || gap >= spec.Stomp.MaxGap {
			return true
		}
		if !e.Kill(s) {
			return true
		}
		s.world.AddTimer(s, spec.Stomp.Bonus)
		p.setBounce(s)
		spawnEffect(s, ex, ey+s.tuning.World.DeathEffectOffset, s.tuning.World.Death)
		s.play(spec.Cues["crush"])
		spawnScore(s, spec.Stomp.Bonus, ex, ey)
		s.log.Debug("enemy stomped", "x", ex, "y", ey)
		return true
	})
}

func hasType(probes []levels.TileInfo, t levels.TileType) bool {
	for _, pr := range probes {
		if pr.Type == t {
			return true
		}
	}
	return false
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func absf(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
