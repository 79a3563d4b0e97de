package main

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/milk9111/sunnyland/assets"
	"github.com/milk9111/sunnyland/audio"
	"github.com/milk9111/sunnyland/common"
	"github.com/milk9111/sunnyland/engine"
	"github.com/milk9111/sunnyland/game"
	"github.com/milk9111/sunnyland/levels"
	"github.com/milk9111/sunnyland/prefabs"
	"github.com/milk9111/sunnyland/render"
)

type gameConfig struct {
	// LevelPath is a TMX file on disk; empty loads the embedded level.
	LevelPath string
	Watch     bool
	Debug     bool
	Logger    *log.Logger
}

// Game hosts one session on ebiten.
type Game struct {
	logger *log.Logger
	debug  bool

	session *game.Session
	raster  engine.RasterFunc
	sprites *render.SpritePool
	layers  *render.Layers
	input   *render.Input
	clock   *render.Clock
	mixer   *audio.Mixer
	hud     *HUD
	pauseUI *ebitenui.UI
	watcher *prefabs.Watcher

	paused bool
	quit   bool
}

func NewGame(cfg gameConfig) (*Game, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = log.Default()
	}

	tuning, err := prefabs.LoadTuning()
	if err != nil {
		return nil, fmt.Errorf("load tuning: %w", err)
	}
	level, err := loadLevel(cfg.LevelPath, tuning.Level)
	if err != nil {
		return nil, err
	}
	logger.Info("level loaded", "name", level.Name, "cols", level.Tiles.Cols(), "objects", len(level.Objects))

	sheets, err := assets.BuildSheets(tuning.Spritesets)
	if err != nil {
		return nil, err
	}
	mixer, err := audio.NewMixer(tuning.Sounds, logger.WithPrefix("audio"))
	if err != nil {
		return nil, err
	}

	g := &Game{
		logger:  logger,
		debug:   cfg.Debug,
		sprites: render.NewSpritePool(sheets, logger.WithPrefix("sprites")),
		layers:  render.NewLayers(level.Tiles, assets.BuildTiles(), assets.BuildBackdrop()),
		input:   render.NewInput(),
		clock:   render.NewClock(),
		mixer:   mixer,
		hud:     NewHUD(),
	}
	g.pauseUI = NewPauseUI(g)

	g.session, err = game.NewSession(game.Options{
		Tuning:   tuning,
		Tiles:    level.Tiles,
		Objects:  level.Objects,
		Sprites:  g.sprites,
		Sounds:   mixer,
		Input:    g.input,
		Clock:    g.clock,
		HUD:      g.hud,
		Backdrop: g.layers,
		Logger:   logger.WithPrefix("game"),
	})
	if err != nil {
		return nil, err
	}
	g.raster = g.session.Raster()
	g.session.Start()

	if cfg.Watch {
		w, err := prefabs.NewWatcher(prefabs.Dir)
		if err != nil {
			logger.Warn("tuning watch disabled", "dir", prefabs.Dir, "err", err)
		} else {
			g.watcher = w
			logger.Info("watching tuning", "dir", prefabs.Dir)
		}
	}
	return g, nil
}

func loadLevel(path string, spec prefabs.LevelSpec) (*levels.Level, error) {
	opts, err := spec.LoadOptions()
	if err != nil {
		return nil, err
	}
	var fsys fs.FS = levels.LevelsFS
	name := spec.File
	if path != "" {
		fsys = levels.FS(filepath.Dir(path))
		name = filepath.Base(path)
	}
	return levels.Load(fsys, name, opts)
}

func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.setPaused(!g.paused)
	}
	g.pollReloads()
	if g.quit {
		return ebiten.Termination
	}
	if g.paused {
		g.pauseUI.Update()
		return nil
	}

	g.input.Update()
	g.session.Update()
	g.sprites.Update()
	g.hud.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.layers.Draw(screen, g.raster)
	g.sprites.Draw(screen)
	g.hud.Draw(screen)

	if g.paused {
		g.pauseUI.Draw(screen)
	}
	if g.debug {
		fg, _ := g.layers.Positions()
		p := g.session.Player()
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("FPS %.0f  actors %d  sprites %d  cam %d  player %.0f,%.0f %s",
			ebiten.ActualFPS(), g.session.Actors().Len(), g.sprites.Active(), fg, p.X(), p.Y(), p.State()), 4, common.ScreenHeight-16)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return common.ScreenWidth, common.ScreenHeight
}

func (g *Game) setPaused(paused bool) {
	if paused == g.paused {
		return
	}
	g.paused = paused
	if paused {
		g.clock.Pause()
	} else {
		g.clock.Resume()
	}
	g.logger.Debug("pause", "paused", paused)
}

// pollReloads applies tuning edits between frames.
func (g *Game) pollReloads() {
	if g.watcher == nil {
		return
	}
	for {
		select {
		case path, ok := <-g.watcher.Events:
			if !ok {
				g.watcher = nil
				return
			}
			g.reload(path)
		case err, ok := <-g.watcher.Errors:
			if !ok {
				g.watcher = nil
				return
			}
			g.logger.Warn("tuning watch", "err", err)
		default:
			return
		}
	}
}

func (g *Game) reload(path string) {
	tuning, err := prefabs.LoadTuning()
	if err != nil {
		g.logger.Error("tuning reload rejected", "file", path, "err", err)
		return
	}
	sheets, err := assets.BuildSheets(tuning.Spritesets)
	if err != nil {
		g.logger.Error("tuning reload rejected", "file", path, "err", err)
		return
	}
	if err := g.mixer.SetSounds(tuning.Sounds); err != nil {
		g.logger.Error("tuning reload rejected", "file", path, "err", err)
		return
	}
	g.sprites.SetSheets(sheets)
	g.session.SetTuning(tuning)
	g.logger.Info("tuning applied", "file", path)
}

func (g *Game) Close() error {
	var errs []error
	if g.watcher != nil {
		errs = append(errs, g.watcher.Close())
	}
	errs = append(errs, g.mixer.Close())
	return errors.Join(errs...)
}
