package main

import (
	"github.com/spf13/cobra"

	"github.com/Jaddevvv/PortKiller-App/internal/output"
	"github.com/Jaddevvv/PortKiller-App/internal/process"
	"github.com/Jaddevvv/PortKiller-App/internal/target"
)

func newKillCmd(a *app) *cobra.Command {
	var table bool

	cmd := &cobra.Command{
		Use:   "kill PORT",
		Short: "Force-kill every process holding a port",
		Long: `Force-kill every process holding a port.

Processes are killed immediately with no confirmation. Use --dry-run to see
what would be killed first.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			port, err := target.ParsePort(args[0])
			if err != nil {
				return err
			}
			if err := a.initLogging(false, cmd.ErrOrStderr()); err != nil {
				return err
			}

			out, err := process.KillPort(a.lister, port, process.Options{DryRun: a.cfg.DryRun})
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			switch {
			case a.jsonOut:
				return output.WriteJSON(w, out)
			case table:
				return output.RenderOutcomeTable(w, out)
			}
			output.RenderOutcome(w, out, colorEnabled(a.cfg, w))
			return nil
		},
	}
	cmd.Flags().BoolVarP(&table, "table", "t", false, "render results as a table")
	return cmd
}
