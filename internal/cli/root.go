package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"listkit/internal/config"
	"listkit/internal/logging"
	"listkit/internal/ui"
	"listkit/internal/ui/services/events"
)

// tuiRunner runs the listbox until the user quits; swapped out in tests
var tuiRunner = runTUI

type rootFlags struct {
	configPath  string
	multi       bool
	noWrap      bool
	delay       float64
	mode        string
	orientation string
	focusMode   string
	logLevel    string
	logFile     string
}

// NewRootCmd creates the root command. Running it opens the listbox and
// prints the selected values, one per line, when it exits.
func NewRootCmd(version string) *cobra.Command {
	var flags rootFlags

	cmd := &cobra.Command{
		Use:     "listkit",
		Short:   "Keyboard driven listbox for the terminal",
		Long:    "listkit shows the options from its config as a listbox with focus, selection, range selection and typeahead.",
		Version: version,
		Example: `  # Pick one of the configured options
  listkit

  # Pick several, moving with ctrl+arrows and toggling with space
  listkit --multi --mode explicit

  # Use a specific config file
  listkit --config ./colors.yaml`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(cmd, flags)
			if err != nil {
				return err
			}

			if err := logging.Init(cfg.Logging.Level, cfg.Logging.File); err != nil {
				return fmt.Errorf("failed to set up logging: %w", err)
			}
			defer logging.Close()

			return tuiRunner(cmd.Context(), cfg, cmd.OutOrStdout())
		},
	}

	f := cmd.Flags()
	f.StringVarP(&flags.configPath, "config", "c", "", "config file (default ./.listkit.toml, then the user config)")
	f.BoolVar(&flags.multi, "multi", false, "allow selecting several options")
	f.BoolVar(&flags.noWrap, "no-wrap", false, "stop at the ends of the list instead of wrapping")
	f.Float64Var(&flags.delay, "delay", config.DefaultTypeaheadDelay, "typeahead reset delay in seconds")
	f.StringVar(&flags.mode, "mode", "follow", "selection mode: follow or explicit")
	f.StringVar(&flags.orientation, "orientation", "vertical", "orientation: vertical or horizontal")
	f.StringVar(&flags.focusMode, "focus-mode", "roving", "focus mode: roving or activedescendant")
	f.StringVar(&flags.logLevel, "log-level", "info", "log level (trace, debug, info, warn, error, disabled)")
	f.StringVar(&flags.logFile, "log-file", "", "log file (default $TMPDIR/listkit.log)")

	cmd.AddCommand(NewInitCmd())
	return cmd
}

// loadConfig reads the config file and applies the flags the user set
func loadConfig(cmd *cobra.Command, flags rootFlags) (*config.Config, error) {
	cfg, err := config.NewConfigService(flags.configPath).Load()
	if err != nil {
		return nil, err
	}

	changed := cmd.Flags().Changed
	if changed("multi") {
		cfg.Listbox.Multi = flags.multi
	}
	if changed("no-wrap") {
		cfg.Listbox.Wrap = !flags.noWrap
	}
	if changed("delay") {
		cfg.Listbox.TypeaheadDelay = flags.delay
	}
	if changed("mode") {
		cfg.Listbox.SelectionMode = flags.mode
	}
	if changed("orientation") {
		cfg.Listbox.Orientation = flags.orientation
	}
	if changed("focus-mode") {
		cfg.Listbox.FocusMode = flags.focusMode
	}
	if changed("log-level") {
		cfg.Logging.Level = flags.logLevel
	}
	if changed("log-file") {
		cfg.Logging.File = flags.logFile
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// runTUI runs the Bubble Tea program on stderr so stdout stays free for the
// selected values.
func runTUI(ctx context.Context, cfg *config.Config, out io.Writer) error {
	logger := logging.Component("cli")

	bus := events.NewBus()
	model := ui.NewModel(bus, cfg)
	defer model.Close()

	p := tea.NewProgram(model,
		tea.WithAltScreen(),
		tea.WithContext(ctx),
		tea.WithOutput(os.Stderr),
	)
	model.SetProgram(p)

	// Typeahead resets fire on a timer goroutine; hand them to the program
	// without ever blocking the timer.
	eventChan := make(chan tea.Msg, 100)
	done := make(chan struct{})
	ui.ForwardEvents(bus, func(msg tea.Msg) {
		select {
		case eventChan <- msg:
		default:
			logger.Warn().Msg("event channel full, dropping event")
		}
	})
	go func() {
		for {
			select {
			case msg := <-eventChan:
				p.Send(msg)
			case <-done:
				return
			}
		}
	}()
	defer close(done)

	logger.Info().Msg("starting UI")
	if _, err := p.Run(); err != nil {
		// Bubble Tea turns SIGINT and context cancellation into these
		if errors.Is(err, tea.ErrInterrupted) || errors.Is(err, tea.ErrProgramKilled) {
			logger.Info().Msg("UI interrupted")
			return nil
		}
		return fmt.Errorf("error running program: %w", err)
	}
	logger.Info().Strs("selected", model.Selected()).Msg("UI exited normally")

	for _, value := range model.Selected() {
		if _, err := fmt.Fprintln(out, value); err != nil {
			return err
		}
	}
	return nil
}
