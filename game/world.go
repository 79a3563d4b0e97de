package game

import (
	"errors"

	"github.com/milk9111/sunnyland/common"
	"github.com/milk9111/sunnyland/engine"
	"github.com/milk9111/sunnyland/levels"
)

// Item is a level-authored spawn point. It activates once, when the camera
// first frames it, and never respawns.
type Item struct {
	Type int
	X, Y int

	alive   bool
	removed bool
}

func (it *Item) Alive() bool { return it.alive }

// World drives the camera, the countdown and item activation.
type World struct {
	x, xMax int
	clouds  float64
	time    int
	due     int64
	items   []Item
	handle  Handle
}

func newWorld(s *Session, objects []levels.ObjectSpec) *World {
	w := &World{
		xMax:  max(s.tiles.Width()-common.ScreenWidth, 0),
		items: make([]Item, 0, len(objects)),
	}
	for _, obj := range objects {
		w.items = append(w.items, Item{Type: obj.Type, X: obj.X, Y: obj.Y})
	}
	return w
}

// X is the camera offset in pixels.
func (w *World) X() int          { return w.x }
func (w *World) Clouds() float64 { return w.clouds }
func (w *World) Time() int       { return w.time }

// Items returns the spawn points still tracked by the world.
func (w *World) Items() []*Item {
	out := make([]*Item, 0, len(w.items))
	for i := range w.items {
		if !w.items[i].removed {
			out = append(out, &w.items[i])
		}
	}
	return out
}

func (w *World) start(s *Session) {
	w.time = s.tuning.World.StartTime
	w.AddTimer(s, 0)
}

func (w *World) Update(s *Session) Status {
	spec := &s.tuning.World
	old := w.x

	if px := s.player.X(); px < float64(spec.CameraLead) {
		w.x = 0
	} else {
		w.x = int(px - float64(spec.CameraLead))
	}
	w.x = common.ClampInt(w.x, 0, w.xMax)
	w.clouds += spec.CloudsStep

	if w.x != old {
		s.backdrop.SetLayerPosition(engine.LayerForeground, w.x)
		s.backdrop.SetLayerPosition(engine.LayerBackground, w.x/spec.BackgroundParallax)
	}

	for i := range w.items {
		w.trySpawn(s, i)
	}

	if s.now() > w.due {
		w.AddTimer(s, -1)
	}
	return StatusAlive
}

func (w *World) Release() {}

// AddTimer adds delta seconds to the countdown, flooring at zero, and
// restarts the one second tick.
func (w *World) AddTimer(s *Session, delta int) {
	w.due = s.now() + s.tuning.World.TickMS
	if delta >= 0 || w.time >= -delta {
		w.time += delta
	} else {
		w.time = 0
	}
	s.hud.UpdateTime(w.time)
}

// PickGem collects the first gem among probes. It reports whether a gem
// was taken.
func (w *World) PickGem(s *Session, probes []levels.TileInfo) bool {
	spec := &s.tuning.World
	for _, t := range probes {
		if t.Type != levels.Gem {
			continue
		}
		s.tiles.SetTile(t.Row, t.Col, levels.Empty)
		x, y := float64(t.Col*common.TileSize), float64(t.Row*common.TileSize)
		spawnEffect(s, x, y, spec.Vanish)
		s.play(spec.Cues["pickup"])
		w.AddTimer(s, spec.GemBonus)
		spawnScore(s, spec.GemBonus, x, y)
		return true
	}
	return false
}

// RemoveItem drops an item for good. Removing twice is a no-op.
func (w *World) RemoveItem(i int) bool {
	if i < 0 || i >= len(w.items) || w.items[i].removed {
		return false
	}
	w.items[i].removed = true
	return true
}

func (w *World) trySpawn(s *Session, i int) {
	it := &w.items[i]
	if it.alive || it.removed {
		return
	}
	if !(w.x < it.X && it.X < w.x+common.ScreenWidth) {
		return
	}

	kind := s.tuning.Level.ItemKind(it.Type)
	var err error
	switch kind {
	case "eagle":
		_, err = newEagle(s, i, float64(it.X), float64(it.Y-s.tuning.Eagle.Height))
	case "opossum":
		_, err = newOpossum(s, i, float64(it.X), float64(it.Y-s.tuning.Opossum.Height))
	default:
		s.log.Debug("item has no actor", "item", i, "type", it.Type, "kind", kind)
	}
	if err != nil {
		if errors.Is(err, engine.ErrNoFreeSprite) {
			s.log.Debug("spawn deferred", "item", i, "kind", kind, "err", err)
			return
		}
		s.log.Warn("spawn failed", "item", i, "kind", kind, "err", err)
	}
	it.alive = true
}
