// sunnyland runs the Sunny Land platformer demo.
//
// Usage:
//
//	sunnyland [--level path/to/level.tmx] [--prefabs dir] [--watch] [--debug]
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"

	"github.com/milk9111/sunnyland/common"
	"github.com/milk9111/sunnyland/prefabs"
)

var (
	flagLevel   string
	flagPrefabs string
	flagWatch   bool
	flagDebug   bool
	flagScale   int
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "sunnyland",
	Short: "Sunny Land platformer demo",
	Long: `Run the Sunny Land demo level.

Controls:
  Left/Right, A/D      - Walk
  Space, Z, Up, W      - Jump
  Esc                  - Pause

Tuning is read from the embedded prefabs unless a YAML file with the same
name exists in the --prefabs directory. With --watch, edits to that
directory are applied while the game runs.`,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE:         run,
}

func init() {
	rootCmd.Flags().StringVar(&flagLevel, "level", "", "TMX level file to load instead of the embedded demo")
	rootCmd.Flags().StringVar(&flagPrefabs, "prefabs", prefabs.Dir, "Directory searched for tuning overrides")
	rootCmd.Flags().BoolVar(&flagWatch, "watch", false, "Reload tuning when files in the prefabs directory change")
	rootCmd.Flags().BoolVar(&flagDebug, "debug", false, "Debug logging and on-screen stats")
	rootCmd.Flags().IntVar(&flagScale, "scale", 2, "Window scale factor")
}

func run(cmd *cobra.Command, args []string) error {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "sunnyland",
	})
	if flagDebug {
		logger.SetLevel(log.DebugLevel)
	}
	log.SetDefault(logger)

	prefabs.Dir = flagPrefabs

	g, err := NewGame(gameConfig{
		LevelPath: flagLevel,
		Watch:     flagWatch,
		Debug:     flagDebug,
		Logger:    logger,
	})
	if err != nil {
		return err
	}
	defer g.Close()

	scale := max(1, flagScale)
	ebiten.SetWindowSize(common.ScreenWidth*scale, common.ScreenHeight*scale)
	ebiten.SetWindowTitle("Sunny Land")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(g); err != nil {
		return fmt.Errorf("run game: %w", err)
	}
	return nil
}
