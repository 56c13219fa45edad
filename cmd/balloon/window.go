package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/balloon-shooter/internal/assets"
	"github.com/vovakirdan/balloon-shooter/internal/games/shooter"
	"github.com/vovakirdan/balloon-shooter/internal/platform/window"
)

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Play in a window",
	Long: `Open an 800x600 window and play.

Controls:
  Up/Down   - Move the cannon (hold)
  Space     - Fire
  Esc/Q     - Quit (or close the window)`,
	Args: cobra.NoArgs,
	Run:  runWindow,
}

func runWindow(cmd *cobra.Command, args []string) {
	logger, closeLog, err := openLogger(os.Stderr)
	if err != nil {
		cmd.PrintErrln("Error:", err)
		os.Exit(1)
	}
	defer closeLog()

	cfg, source, err := resolveConfig(flagConfig, flagOverrides())
	if err != nil {
		fatal(logger, "config", err)
	}
	logger.Info("config loaded", "source", source, "difficulty", flagDifficulty)

	sprites, err := assets.Load(cfg.Assets)
	if err != nil {
		fatal(logger, "loading assets", err)
	}

	gameCfg := shooter.NewConfig(cfg, gameSeed(flagSeed))
	gameCfg.CannonSize, gameCfg.BalloonSize, gameCfg.BulletSize = sprites.Sizes()
	logger.Info("starting",
		"frontend", "window",
		"fps", gameCfg.Runtime.TickRate,
		"seed", gameCfg.Runtime.Seed,
	)

	err = window.Run(shooter.New(gameCfg), sprites, window.Options{
		Title:    cfg.Screen.Title,
		TextSize: cfg.Text.Size,
		Logger:   logger,
	})
	if err != nil {
		fatal(logger, "running game", err)
	}
}
