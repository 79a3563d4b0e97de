// Package game is the frame-stepped simulation: the actor registry, the
// player controller, enemies, the world driver and transient effects.
package game

import (
	"errors"
	"fmt"
	"image/color"

	"github.com/charmbracelet/log"

	"github.com/milk9111/sunnyland/engine"
	"github.com/milk9111/sunnyland/levels"
	"github.com/milk9111/sunnyland/prefabs"
)

var ErrMissingCapability = errors.New("game: missing capability")

type Options struct {
	Tuning  *prefabs.Tuning
	Tiles   engine.TileLayer
	Objects []levels.ObjectSpec

	Sprites  engine.Sprites
	Sounds   engine.Sounds
	Input    engine.Input
	Clock    engine.Clock
	HUD      engine.HUD
	Backdrop engine.Backdrop

	Logger *log.Logger
}

// Session is the state of one play-through. Every actor receives it on
// update; nothing in the simulation is global.
type Session struct {
	tuning *prefabs.Tuning
	tiles  engine.TileLayer

	sprites  engine.Sprites
	sounds   engine.Sounds
	input    engine.Input
	clock    engine.Clock
	hud      engine.HUD
	backdrop engine.Backdrop
	log      *log.Logger

	actors *Registry
	world  *World
	player *Player
	frame  int
}

func NewSession(opts Options) (*Session, error) {
	switch {
	case opts.Tuning == nil:
		return nil, fmt.Errorf("%w: tuning", ErrMissingCapability)
	case opts.Tiles == nil:
		return nil, fmt.Errorf("%w: tile layer", ErrMissingCapability)
	case opts.Sprites == nil:
		return nil, fmt.Errorf("%w: sprites", ErrMissingCapability)
	case opts.Input == nil:
		return nil, fmt.Errorf("%w: input", ErrMissingCapability)
	case opts.Clock == nil:
		return nil, fmt.Errorf("%w: clock", ErrMissingCapability)
	}

	s := &Session{
		tuning:   opts.Tuning,
		tiles:    opts.Tiles,
		sprites:  opts.Sprites,
		sounds:   opts.Sounds,
		input:    opts.Input,
		clock:    opts.Clock,
		hud:      opts.HUD,
		backdrop: opts.Backdrop,
		log:      opts.Logger,
		actors:   NewRegistry(),
	}
	if s.sounds == nil {
		s.sounds = nopSounds{}
	}
	if s.hud == nil {
		s.hud = nopHUD{}
	}
	if s.backdrop == nil {
		s.backdrop = nopBackdrop{}
	}
	if s.log == nil {
		s.log = log.Default()
	}

	s.world = newWorld(s, opts.Objects)
	s.world.handle = s.actors.Add(s.world)

	p, err := newPlayer(s)
	if err != nil {
		return nil, fmt.Errorf("game: new player: %w", err)
	}
	s.player = p
	p.handle = s.actors.Add(p)

	s.log.Debug("session ready", "items", len(s.world.items), "level_width", s.tiles.Width())
	return s, nil
}

// Start resets the countdown to the configured start time.
func (s *Session) Start() {
	s.world.start(s)
}

// Update runs one frame.
func (s *Session) Update() {
	s.frame++
	s.actors.Update(s)
}

// SetTuning swaps the constants. Call it between frames; sizes of actors
// already spawned are kept.
func (s *Session) SetTuning(t *prefabs.Tuning) {
	if t == nil {
		return
	}
	s.tuning = t
	s.log.Info("tuning reloaded")
}

func (s *Session) Tuning() *prefabs.Tuning { return s.tuning }
func (s *Session) World() *World           { return s.world }
func (s *Session) Player() *Player         { return s.player }
func (s *Session) Actors() *Registry       { return s.actors }
func (s *Session) Frame() int              { return s.frame }

func (s *Session) now() int64 {
	return s.clock.Ticks()
}

func (s *Session) play(cue prefabs.CueSpec) {
	if cue.Sound == "" {
		return
	}
	s.sounds.Play(cue.Sound, cue.Channel)
}

type nopSounds struct{}

func (nopSounds) Play(string, int) {}

type nopHUD struct{}

func (nopHUD) UpdateTime(int) {}

type nopBackdrop struct{}

func (nopBackdrop) SetLayerPosition(engine.Layer, int) {}
func (nopBackdrop) SetBackgroundColor(color.RGBA)      {}
