// Package cli is the command line entry point of reversi-local.
package cli

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"reversi-local/config"
	"reversi-local/engine"
	"reversi-local/logging"
	"reversi-local/ui"
)

// Version is set at build time via ldflags
var Version = "dev"

type options struct {
	black    string
	white    string
	hints    bool
	play     bool
	focus    bool
	logLevel string
	version  bool
}

// runner starts the terminal UI. Tests swap it out.
type runner func(cfg *config.Config, logger *slog.Logger, opts ui.Options) error

func runUI(cfg *config.Config, logger *slog.Logger, opts ui.Options) error {
	return ui.NewApp(cfg, logger, opts).Run()
}

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	return newRootCmd(config.InitConfig, runUI)
}

func newRootCmd(loadConfig func() (*config.Config, error), run runner) *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:   "reversi-local",
		Short: "Two-player Reversi in the terminal",
		Long: `reversi-local is a terminal Reversi (Othello) board for two players
sharing one keyboard and mouse.

Click a cell or move the cursor with hjkl/arrows and press Enter to play.
Settings are read from $XDG_CONFIG_HOME/reversi-local/config.json and
REVERSI_* environment variables.`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.version {
				fmt.Fprintf(cmd.OutOrStdout(), "reversi-local %s\n", Version)
				return nil
			}

			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("log-level") {
				cfg.Log.Level = opts.logLevel
				if err := cfg.Validate(); err != nil {
					return err
				}
			}

			logger, closer, err := logging.New(cfg.Log)
			if err != nil {
				return err
			}
			defer closer.Close()

			uiOpts := ui.Options{
				Game:       buildGameConfig(cfg, cmd, opts),
				QuickStart: opts.play || opts.focus,
				Focus:      opts.focus,
			}
			logger.Info("starting", slog.String("version", Version), slog.Bool("quick_start", uiOpts.QuickStart))
			if err := run(cfg, logger, uiOpts); err != nil {
				logger.Error("ui stopped", slog.String("error", err.Error()))
				return fmt.Errorf("run ui: %w", err)
			}
			return nil
		},
	}

	flags := rootCmd.Flags()
	flags.StringVar(&opts.black, "black", "", "Name of the first player (env: REVERSI_BLACK_NAME)")
	flags.StringVar(&opts.white, "white", "", "Name of the second player (env: REVERSI_WHITE_NAME)")
	flags.BoolVar(&opts.hints, "hints", true, "Mark legal moves on the board (env: REVERSI_SHOW_HINTS)")
	flags.BoolVar(&opts.play, "play", false, "Start a game immediately, skipping the setup form")
	flags.BoolVar(&opts.focus, "focus", false, "Start in focus mode (board only); implies --play")
	flags.StringVar(&opts.logLevel, "log-level", "", "Log level: debug, info, warn, error (env: REVERSI_LOG_LEVEL)")
	flags.BoolVar(&opts.version, "version", false, "Print version and exit")

	return rootCmd
}

// buildGameConfig starts from the config file defaults and applies the flags
// the user actually set.
func buildGameConfig(cfg *config.Config, cmd *cobra.Command, opts *options) engine.GameConfig {
	gameCfg := engine.GameConfig{
		BlackName: cfg.Game.BlackName,
		WhiteName: cfg.Game.WhiteName,
		ShowHints: cfg.Game.ShowHints,
	}
	flags := cmd.Flags()
	if flags.Changed("black") && opts.black != "" {
		gameCfg.BlackName = opts.black
	}
	if flags.Changed("white") && opts.white != "" {
		gameCfg.WhiteName = opts.white
	}
	if flags.Changed("hints") {
		gameCfg.ShowHints = opts.hints
	}
	return gameCfg
}

// Execute runs the root command
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
