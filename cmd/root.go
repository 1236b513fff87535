// Package cmd provides the root command and CLI setup for knightpath.
package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/mouse-blink/knightpath/internal/adapter"
	"github.com/mouse-blink/knightpath/internal/controller"
	"github.com/mouse-blink/knightpath/internal/domain"
	"github.com/mouse-blink/knightpath/internal/logging"
	m "github.com/mouse-blink/knightpath/internal/model"
)

var settingsStore adapter.SettingsStore
var searcher domain.Searcher
var workflow domain.Workflow
var ui controller.UI

func init() {
	ui = controller.NewUI(rootCmd, controller.IsTTY(os.Stdout))
	searcher = domain.NewSearcher()
	settingsStore = adapter.NewLocalSettingsStore(defaultSettingsPath())
	workflow = domain.NewWorkflow(settingsStore, ui, searcher)
}

var configFlag string
var logLevelFlag string
var logFormatFlag string

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "knightpath",
		Short: "Enumerate knight paths on a square board",
		Long: `Knightpath finds every simple knight path between two squares of an
N×N board whose length does not exceed a bound.

Without a subcommand the interactive board opens. Squares are written in
algebraic notation (a1 is the bottom-left corner) or as col,row pairs.

Settings are read from the settings file and can be overridden per command:
  ChessBoardSize   board dimension, 6 to 16 (default 6)
  MaxMoves         maximum cells in a path, 1 to 5 (default 3)`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			level, err := logging.ParseLevel(logLevelFlag)
			if err != nil {
				return err
			}

			if err := logging.Init(cmd.ErrOrStderr(), level, logFormatFlag); err != nil {
				return err
			}

			if configFlag != "" {
				settingsStore = adapter.NewLocalSettingsStore(configFlag)
				workflow = domain.NewWorkflow(settingsStore, ui, searcher)
			}

			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return workflow.Play(cmd.Context(), domain.PlayArgs{})
		},
	}
	cmd.PersistentFlags().StringVar(&configFlag, "config", "", "settings file (default is $XDG_CONFIG_HOME/knightpath/settings.yaml)")
	cmd.PersistentFlags().StringVar(&logLevelFlag, "log-level", "warn", "log level: debug, info, warn or error")
	cmd.PersistentFlags().StringVar(&logFormatFlag, "log-format", "text", "log format: text or json")

	return cmd
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	err := rootCmd.ExecuteContext(ctx)
	if err != nil {
		stop()
		os.Exit(1)
	}
}

// defaultSettingsPath falls back to the working directory when the user
// config directory is unknown.
func defaultSettingsPath() string {
	path, err := adapter.DefaultSettingsPath()
	if err != nil {
		return filepath.Join(".", "knightpath.yaml")
	}

	return path
}

// parseCells converts command arguments into board cells.
func parseCells(args []string) ([]m.Cell, error) {
	cells := make([]m.Cell, 0, len(args))

	for _, arg := range args {
		c, err := m.ParseCell(arg)
		if err != nil {
			return nil, err
		}

		cells = append(cells, c)
	}

	return cells, nil
}

// overridesFromFlags reads --size and --max-moves. Flags left unset keep the
// persisted values; explicitly set flags must be positive.
func overridesFromFlags(cmd *cobra.Command, size, maxMoves int) (domain.Overrides, error) {
	for name, value := range map[string]int{"size": size, "max-moves": maxMoves} {
		if cmd.Flags().Changed(name) && value <= 0 {
			return domain.Overrides{}, fmt.Errorf("%w: --%s must be positive, got %d",
				m.ErrInvalidConfiguration, name, value)
		}
	}

	return domain.Overrides{BoardSize: size, MaxMoves: maxMoves}, nil
}

func addOverrideFlags(cmd *cobra.Command, size, maxMoves *int) {
	cmd.Flags().IntVarP(size, "size", "s", 0, "board dimension for this run (6-16)")
	cmd.Flags().IntVarP(maxMoves, "max-moves", "m", 0, "maximum cells in a path for this run (1-5)")
}
