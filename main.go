// bunnyhop is an endless jumper: bounce from platform to platform, collect
// carrots, and don't fall.
//
// Usage:
//
//	bunnyhop [--seed N] [--debug] [--skip-title] [--mute] [--config path]
package main

import (
	"fmt"
	"image"
	"os"

	"github.com/automoto/bunnyhop/config"
	"github.com/automoto/bunnyhop/fonts"
	"github.com/automoto/bunnyhop/scenes"
	"github.com/automoto/bunnyhop/systems"
	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
}

// ChangeScene switches to a new scene
func (g *Game) ChangeScene(scene interface{}) {
	g.scene = scene.(Scene)
}

func NewGame() *Game {
	fonts.LoadFonts()

	g := &Game{
		bounds: image.Rectangle{},
	}

	if config.Debug.SkipTitle {
		g.scene = scenes.NewGameScene(g)
	} else {
		g.scene = scenes.NewTitleScene(g)
	}

	return g
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

var (
	flagSeed      uint64
	flagDebug     bool
	flagSkipTitle bool
	flagMute      bool
	flagConfig    string
)

var rootCmd = &cobra.Command{
	Use:   "bunnyhop",
	Short: "Bunny Hop - an endless jumper",
	Long: `Bounce the bunny from platform to platform and collect carrots.
The run ends when the bunny falls below the lowest platform.

Controls:
  Left/A, Right/D  - Steer while in the air
  Space/Enter      - Start / play again
  M                - Toggle sound
  F1               - Toggle debug overlay

Examples:
  bunnyhop
  bunnyhop --seed 42 --skip-title
  bunnyhop --config ./tuning.yaml`,
	Args: cobra.NoArgs,
	RunE: run,
}

func init() {
	rootCmd.Flags().Uint64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.Flags().BoolVar(&flagDebug, "debug", false, "Show the collision overlay and log at debug level")
	rootCmd.Flags().BoolVar(&flagSkipTitle, "skip-title", false, "Start a run without the title screen")
	rootCmd.Flags().BoolVar(&flagMute, "mute", false, "Start with sound off")
	rootCmd.Flags().StringVar(&flagConfig, "config", "", "Path to a tuning YAML file (default ~/.bunnyhop/tuning.yaml)")
}

func run(cmd *cobra.Command, args []string) error {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "bunnyhop",
	})
	if flagDebug {
		logger.SetLevel(log.DebugLevel)
	}
	log.SetDefault(logger)

	tuning, err := config.LoadTuning(flagConfig)
	if err != nil {
		if flagConfig != "" {
			return err
		}
		logger.Warn("ignoring tuning file", "error", err)
	} else {
		tuning.Apply()
	}

	config.Debug = config.DebugConfig{
		SkipTitle: flagSkipTitle,
		Overlay:   flagDebug,
		Seed:      flagSeed,
		Muted:     flagMute,
	}

	// Initialize persistence and load saved settings
	if err := systems.InitPersistence(); err != nil {
		logger.Warn("continuing without saved data", "error", err)
	}
	if saved, err := systems.LoadSettings(); err == nil && saved != nil {
		systems.ApplySavedSettings(saved)
	}
	if flagMute {
		systems.SetMuted(true)
	}

	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowTitle(config.Title.Title)
	ebiten.SetTPS(config.C.TPS)

	if err := ebiten.RunGame(NewGame()); err != nil {
		return fmt.Errorf("game loop: %w", err)
	}
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
