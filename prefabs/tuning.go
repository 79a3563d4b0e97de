package prefabs

import (
	"errors"
	"fmt"
)

var ErrInvalidSpec = errors.New("prefabs: invalid spec")

// Tuning is every spec the game needs, loaded together so a reload swaps
// them atomically between frames.
type Tuning struct {
	Player     PlayerSpec
	Eagle      EagleSpec
	Opossum    OpossumSpec
	World      WorldSpec
	Level      LevelSpec
	Spritesets []SpritesetSpec
	Sounds     []SoundSpec
}

func LoadTuning() (*Tuning, error) {
	var (
		t   Tuning
		err error
	)
	if t.Player, err = LoadSpec[PlayerSpec]("player.yaml"); err != nil {
		return nil, err
	}
	if t.Eagle, err = LoadSpec[EagleSpec]("eagle.yaml"); err != nil {
		return nil, err
	}
	if t.Opossum, err = LoadSpec[OpossumSpec]("opossum.yaml"); err != nil {
		return nil, err
	}
	if t.World, err = LoadSpec[WorldSpec]("world.yaml"); err != nil {
		return nil, err
	}
	if t.Level, err = LoadSpec[LevelSpec]("level.yaml"); err != nil {
		return nil, err
	}
	if t.Spritesets, err = LoadSpec[[]SpritesetSpec]("spritesets.yaml"); err != nil {
		return nil, err
	}
	if t.Sounds, err = LoadSpec[[]SoundSpec]("sounds.yaml"); err != nil {
		return nil, err
	}
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return &t, nil
}

// Validate rejects specs the simulation cannot run with.
func (t *Tuning) Validate() error {
	if t == nil {
		return fmt.Errorf("%w: nil tuning", ErrInvalidSpec)
	}
	p := t.Player
	switch {
	case p.Width <= 0 || p.Height <= 0:
		return fmt.Errorf("%w: player size %dx%d", ErrInvalidSpec, p.Width, p.Height)
	case p.XSpeedDelta <= 0 || p.XSpeedLimit < p.XSpeedDelta:
		return fmt.Errorf("%w: player xspeed delta %d limit %d", ErrInvalidSpec, p.XSpeedDelta, p.XSpeedLimit)
	case p.YSpeedDelta <= 0 || p.YSpeedLimit <= 0:
		return fmt.Errorf("%w: player yspeed delta %d limit %d", ErrInvalidSpec, p.YSpeedDelta, p.YSpeedLimit)
	case p.JSpeedDelta <= 0:
		return fmt.Errorf("%w: player jspeed delta %d", ErrInvalidSpec, p.JSpeedDelta)
	case len(p.WallProbes) == 0:
		return fmt.Errorf("%w: player has no wall probes", ErrInvalidSpec)
	}
	for _, off := range p.WallProbes {
		if off < 0 || off >= p.Height {
			return fmt.Errorf("%w: player wall probe %d outside height %d", ErrInvalidSpec, off, p.Height)
		}
	}

	if t.Eagle.Width <= 0 || t.Eagle.Height <= 0 || len(t.Eagle.ProbeOffsets) == 0 {
		return fmt.Errorf("%w: eagle size or probes", ErrInvalidSpec)
	}
	if t.Eagle.ScreenLeft >= t.Eagle.ScreenRight {
		return fmt.Errorf("%w: eagle screen bounds %d..%d", ErrInvalidSpec, t.Eagle.ScreenLeft, t.Eagle.ScreenRight)
	}
	if t.Opossum.Width <= 0 || t.Opossum.Height <= 0 || t.Opossum.ChaseRadius <= 0 {
		return fmt.Errorf("%w: opossum size or chase radius", ErrInvalidSpec)
	}

	w := t.World
	switch {
	case w.TickMS <= 0:
		return fmt.Errorf("%w: world tick %dms", ErrInvalidSpec, w.TickMS)
	case w.StartTime < 0:
		return fmt.Errorf("%w: world start time %d", ErrInvalidSpec, w.StartTime)
	case w.BackgroundParallax <= 0:
		return fmt.Errorf("%w: background parallax %d", ErrInvalidSpec, w.BackgroundParallax)
	case w.Score.WindowMS <= 0:
		return fmt.Errorf("%w: score window %dms", ErrInvalidSpec, w.Score.WindowMS)
	case w.Raster.BandFrom <= 0 || w.Raster.BandTo <= 0 || w.Raster.GroundFactor <= 0:
		return fmt.Errorf("%w: raster divisors", ErrInvalidSpec)
	}

	if t.Level.File == "" || t.Level.TileLayer == "" || t.Level.ObjectLayer == "" {
		return fmt.Errorf("%w: level %q missing file or layer names", ErrInvalidSpec, t.Level.Name)
	}

	seen := make(map[string]bool, len(t.Spritesets))
	for _, ss := range t.Spritesets {
		if ss.Name == "" || ss.Width <= 0 || ss.Height <= 0 || ss.Frames <= 0 {
			return fmt.Errorf("%w: spriteset %q", ErrInvalidSpec, ss.Name)
		}
		if seen[ss.Name] {
			return fmt.Errorf("%w: duplicate spriteset %q", ErrInvalidSpec, ss.Name)
		}
		seen[ss.Name] = true
		if len(ss.Labels) > ss.Frames {
			return fmt.Errorf("%w: spriteset %q has more labels than frames", ErrInvalidSpec, ss.Name)
		}
		for _, seq := range ss.Sequences {
			if seq.Frames <= 0 || seq.Start < 0 || seq.Start+seq.Frames > ss.Frames {
				return fmt.Errorf("%w: spriteset %q sequence %q", ErrInvalidSpec, ss.Name, seq.Name)
			}
		}
	}
	for _, snd := range t.Sounds {
		if snd.Name == "" || snd.Duration <= 0 {
			return fmt.Errorf("%w: sound %q", ErrInvalidSpec, snd.Name)
		}
	}
	return nil
}
