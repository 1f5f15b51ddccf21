package cli

import (
	"github.com/spf13/cobra"

	"github.com/gannonh/kata-tui/internal/format"
	"github.com/gannonh/kata-tui/internal/store"
)

// newShowCmd prints the dataset the dashboard would display, which is the
// quickest way to see how the planning files were parsed.
func newShowCmd(app *App) *cobra.Command {
	var (
		outFormat string
		pretty    bool
	)
	cmd := &cobra.Command{
		Use:   "show [planning-dir]",
		Short: "Print the parsed planning data (json|yaml)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				app.PlanningDir = args[0]
			}
			logger, closeLog, err := newLogger(app.LogFile, app.LogLevel)
			if err != nil {
				return err
			}
			defer closeLog()

			dir, err := planningDir(app)
			if err != nil {
				return err
			}
			data := store.Store{Dir: dir, Logger: logger}.Load(cmd.Context())
			return format.Write(cmd.OutOrStdout(), data, outFormat, pretty)
		},
	}
	cmd.Flags().StringVar(&outFormat, "format", "json", "Output format (json|yaml)")
	cmd.Flags().BoolVar(&pretty, "pretty", false, "Pretty-print JSON output")
	return cmd
}
