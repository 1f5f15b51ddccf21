package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/gannonh/kata-tui/internal/store"
	"github.com/gannonh/kata-tui/internal/tui"
)

// Version is overridden at build time with -ldflags.
var Version = "dev"

type App struct {
	PlanningDir string
	ConfigPath  string
	LogFile     string
	LogLevel    string
}

func NewRootCmd() *cobra.Command {
	app := &App{}

	cmd := &cobra.Command{
		Use:          "kata [planning-dir]",
		Short:        "Terminal dashboard for .planning project files",
		Version:      Version,
		SilenceUsage: true,
		Args:         cobra.MaximumNArgs(1),
		Example: strings.TrimSpace(`
  # Browse ./.planning
  kata

  # Browse another planning directory
  kata ../other-project/.planning

  # Debug loading problems
  kata --log-file /tmp/kata.log --log-level debug
  kata show --format yaml
`),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				app.PlanningDir = args[0]
			}
			return runDashboard(cmd, app)
		},
	}

	cmd.PersistentFlags().StringVarP(&app.PlanningDir, "planning-dir", "p", "", "Planning directory (default: ./.planning)")
	cmd.PersistentFlags().StringVar(&app.LogFile, "log-file", "", "Append logs to this file (logging is off by default)")
	cmd.PersistentFlags().StringVar(&app.LogLevel, "log-level", "info", "Log level (debug|info|warn|error)")
	cmd.Flags().StringVar(&app.ConfigPath, "config", "", "Config file (default: <user config dir>/kata-tui/config.yaml)")

	cmd.AddCommand(newShowCmd(app))

	return cmd
}

func runDashboard(cmd *cobra.Command, app *App) error {
	logger, closeLog, err := newLogger(app.LogFile, app.LogLevel)
	if err != nil {
		return err
	}
	defer closeLog()

	in, out := cmd.InOrStdin(), cmd.OutOrStdout()
	if err := tui.EnsureTerminal(in, out); err != nil {
		logger.Error("dashboard failed", "err", err)
		return err
	}

	cfg, err := store.LoadConfig(app.ConfigPath)
	if err != nil {
		return err
	}

	dir, err := planningDir(app)
	if err != nil {
		return err
	}

	data := store.Store{Dir: dir, Logger: logger}.Load(cmd.Context())
	err = tui.Run(cmd.Context(), data, tui.Options{
		Config: cfg,
		Logger: logger,
		Input:  in,
		Output: out,
	})
	if err != nil {
		logger.Error("dashboard failed", "err", err)
	}
	return err
}

func planningDir(app *App) (string, error) {
	if app.PlanningDir != "" {
		return app.PlanningDir, nil
	}
	return store.DefaultDir()
}
