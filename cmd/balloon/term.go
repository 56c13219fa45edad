package main

import (
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/balloon-shooter/internal/games/shooter"
	"github.com/vovakirdan/balloon-shooter/internal/platform/tui"
)

var termCmd = &cobra.Command{
	Use:   "term",
	Short: "Play in the terminal",
	Long: `Play in the terminal. The 800x600 playfield is scaled to the
terminal size. Logs go to --log-file, if given.

Controls:
  Up/Down or k/j  - Move the cannon (hold)
  Space           - Fire
  Q/Esc/Ctrl+C    - Quit`,
	Args: cobra.NoArgs,
	Run:  runTerm,
}

func runTerm(cmd *cobra.Command, args []string) {
	// Logs would corrupt the alt screen
	logger, closeLog, err := openLogger(io.Discard)
	if err != nil {
		cmd.PrintErrln("Error:", err)
		os.Exit(1)
	}
	defer closeLog()

	cfg, source, err := resolveConfig(flagConfig, flagOverrides())
	if err != nil {
		cmd.PrintErrln("Error:", err)
		fatal(logger, "config", err)
	}
	logger.Info("config loaded", "source", source, "difficulty", flagDifficulty)

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	gameCfg := shooter.NewConfig(cfg, gameSeed(flagSeed))
	logger.Info("starting",
		"frontend", "term",
		"fps", gameCfg.Runtime.TickRate,
		"seed", gameCfg.Runtime.Seed,
		"width", width,
		"height", height,
	)

	err = tui.Run(shooter.New(gameCfg), tui.Options{
		Width:      width,
		Height:     height,
		KeyRelease: time.Duration(cfg.Terminal.KeyReleaseMS) * time.Millisecond,
		Logger:     logger,
	})
	if err != nil {
		cmd.PrintErrln("Error running game:", err)
		fatal(logger, "running game", err)
	}
}
