package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/OpenTraceLab/rotview/internal/config"
	"github.com/OpenTraceLab/rotview/internal/logging"
	"github.com/OpenTraceLab/rotview/pkg/display"
)

var (
	// Global flags
	configPath string
	verbose    bool

	// Set up before every command runs
	cfg    *config.Config
	logger *slog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "rotview",
	Short: "rotview - rotate an image viewport around its center",
	Long: `rotview computes and exercises the rotation of an image viewport:
the angle, the forward/inverse transform around the image center, bounds
mapping and pointer drags that turn the view.

Examples:
  rotview transform --angle 30 --image 400x300   # Print the transform pair
  rotview run demo.rot                           # Run a rotation script
  rotview replay drag.csv --image 200x200        # Replay a recorded drag
  rotview view photo.png                         # Open the interactive viewer`,
	Version:           "0.1.0",
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "YAML config file (defaults are built in)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}

// setup loads the config and installs the logger
func setup(cmd *cobra.Command, args []string) error {
	var err error
	cfg, err = config.Load(configPath)
	if err != nil {
		return err
	}

	level := cfg.Log.Level
	if verbose {
		level = "debug"
	}
	logger, err = logging.Setup(os.Stderr, level, cfg.Log.Format)
	return err
}

// newShell creates a shell sized and limited by the loaded config
func newShell() *display.Shell {
	return display.New(display.Options{
		ScreenWidth:  cfg.Viewer.Width,
		ScreenHeight: cfg.Viewer.Height,
		MinScale:     cfg.Viewer.MinScale,
		MaxScale:     cfg.Viewer.MaxScale,
		SnapStep:     cfg.Rotate.SnapStep,
		Logger:       logger,
	})
}
