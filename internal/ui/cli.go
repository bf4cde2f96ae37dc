package ui

import (
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/javiermolinar/calpick/internal/calendar"
	"github.com/javiermolinar/calpick/internal/config"
	"github.com/javiermolinar/calpick/internal/tui"
)

var (
	// Version is set at build time
	Version = "dev"
	// Commit is set at build time
	Commit = "none"
)

// pickerFunc runs an interactive session and returns the picked date.
type pickerFunc func(cfg *config.Config, opts tui.Options) (calendar.Selection, error)

// App holds the CLI application state.
type App struct {
	config *config.Config
	root   *cobra.Command
	debug  bool // Enable debug logging
	log    *zap.Logger
	run    pickerFunc
	today  func() calendar.Date
}

// NewApp creates a new CLI application with the given config.
func NewApp(cfg *config.Config) *App {
	a := &App{
		config: cfg,
		log:    zap.NewNop(),
		run:    tui.Run,
		today:  calendar.Today,
	}

	var (
		dateFlag     string
		formatFlag   string
		exitOnSelect bool
	)

	a.root = &cobra.Command{
		Use:   "calpick",
		Short: "Pick a date from a terminal calendar",
		Long: `calpick opens a month calendar in the terminal and prints the picked date.

Click a day or move with the arrow keys and press enter to select it.
Hold the mouse on the < and > arrows to scroll through months; hold
shift while pressing to scroll through years.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			log, err := tui.NewDebugLogger(a.debug)
			if err != nil {
				return err
			}
			a.log = log
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			if formatFlag != "" {
				a.config.Picker.DateFormat = formatFlag
			}
			opts := tui.Options{
				ExitOnSelect: exitOnSelect,
				Logger:       a.log,
			}
			if d, ok := a.initialDate(cmd.ErrOrStderr(), dateFlag); ok {
				opts.InitialDate = d.Time(time.Local)
			}

			sel, err := a.run(a.config, opts)
			if err != nil {
				return err
			}
			return printSelection(cmd.OutOrStdout(), sel, a.config.Picker.DateFormat)
		},
	}

	a.root.PersistentFlags().BoolVar(&a.debug, "debug", false, "Enable debug logging (logs to "+tui.DebugLogPath+")")
	a.root.Flags().StringVarP(&dateFlag, "date", "d", "", "Initially selected date (YYYY-MM-DD, today, tomorrow, next-friday, ...)")
	a.root.Flags().StringVarP(&formatFlag, "format", "f", "", "Output layout in Go time format (default from config)")
	a.root.Flags().BoolVarP(&exitOnSelect, "exit-on-select", "x", false, "Quit as soon as a date is selected")

	a.root.AddCommand(a.versionCmd())
	a.root.AddCommand(a.configCmd())
	a.root.AddCommand(a.monthCmd())

	return a
}

// initialDate parses the --date flag. A malformed value is reported and
// ignored so the picker still opens on today's month.
func (a *App) initialDate(stderr io.Writer, value string) (calendar.Date, bool) {
	if value == "" {
		return calendar.Date{}, false
	}
	d, err := calendar.ParseRelative(value, a.today())
	if err != nil {
		a.log.Warn("ignoring --date", zap.String("value", value), zap.Error(err))
		fmt.Fprintf(stderr, "%s ignoring --date: %v\n", formatWarning("warning:"), err)
		return calendar.Date{}, false
	}
	return d, true
}

func printSelection(w io.Writer, sel calendar.Selection, layout string) error {
	if !sel.Valid {
		return nil
	}
	_, err := fmt.Fprintln(w, sel.Date.Format(layout))
	return err
}

func (a *App) versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "calpick %s (commit: %s)\n", Version, Commit)
		},
	}
}

// Execute runs the CLI application.
func (a *App) Execute() error {
	return a.root.Execute()
}

// Close flushes the debug log.
func (a *App) Close() error {
	_ = a.log.Sync()
	return nil
}
