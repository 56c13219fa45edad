// balloon is a small arcade game: move the cannon, shoot the wandering balloon.
//
// Usage:
//
//	balloon                  - Play in an 800x600 window
//	balloon window           - Same as above
//	balloon term             - Play in the terminal
//	balloon config           - Print the effective configuration
//
// Global flags:
//
//	--fps <rate>         - Override the tick rate
//	--seed <value>       - Set RNG seed for reproducible gameplay
//	--config <path>      - Custom config YAML
//	--difficulty <name>  - easy, normal, hard or fixed
//	--assets <dir>       - Override the sprite directory
//	--log-level <level>  - debug, info, warn or error
//	--log-file <path>    - Write logs to a file
package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/balloon-shooter/internal/config"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagConfig     string
	flagDifficulty string
	flagAssets     string
	flagLogLevel   string
	flagLogFile    string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "balloon",
	Short: "Balloon Shooting Game",
	Long: `Move the cannon with the arrow keys and press space to fire.
Hit the balloon to win; the number of missed shots is your score.

Available commands:
  window   - Play in a window (default)
  term     - Play in the terminal
  config   - Print the effective configuration

Examples:
  balloon
  balloon --difficulty hard
  balloon term --seed 42
  balloon config --defaults`,
	SilenceUsage: true,
	Run:          runWindow,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Tick rate (0 = from config)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().StringVar(&flagAssets, "assets", "", "Sprite directory (default from config)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(termCmd)
	rootCmd.AddCommand(configCmd)
}

// overrides holds command-line settings applied on top of the loaded config.
type overrides struct {
	FPS        int
	Difficulty string
	AssetsDir  string
}

func flagOverrides() overrides {
	return overrides{
		FPS:        flagFPS,
		Difficulty: flagDifficulty,
		AssetsDir:  flagAssets,
	}
}

// resolveConfig loads the game config and applies the command-line overrides.
// Returns the config and where it was loaded from.
func resolveConfig(path string, o overrides) (config.GameConfig, string, error) {
	preset, err := config.ParsePreset(o.Difficulty)
	if err != nil {
		return config.GameConfig{}, "", err
	}

	cfg, source, err := config.Load(path)
	if err != nil {
		return config.GameConfig{}, "", err
	}

	if o.FPS > 0 {
		cfg.Tick.FPS = o.FPS
	}
	if o.AssetsDir != "" {
		cfg.Assets.Dir = o.AssetsDir
	}
	config.ApplyPreset(&cfg, preset)

	if err := cfg.Validate(); err != nil {
		return config.GameConfig{}, "", err
	}
	return cfg, source, nil
}

// gameSeed returns the seed for a run; zero picks one from the clock.
func gameSeed(seed int64) int64 {
	if seed == 0 {
		return time.Now().UnixNano()
	}
	return seed
}

// newLogger creates the application logger writing to w.
func newLogger(w io.Writer, level string) (*log.Logger, error) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "balloon",
	})
	logger.SetLevel(lvl)
	return logger, nil
}

// openLogger returns a logger for the current flags. Without --log-file it
// writes to fallback. The returned close function is never nil.
func openLogger(fallback io.Writer) (*log.Logger, func(), error) {
	w := fallback
	closeFn := func() {}
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, closeFn, fmt.Errorf("failed to open log file: %w", err)
		}
		w = f
		closeFn = func() { f.Close() }
	}

	logger, err := newLogger(w, flagLogLevel)
	if err != nil {
		closeFn()
		return nil, func() {}, err
	}
	return logger, closeFn, nil
}

// fatal logs err and exits with status 1.
func fatal(logger *log.Logger, msg string, err error) {
	logger.Error(msg, "err", err)
	os.Exit(1)
}
