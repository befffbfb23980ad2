package main

import (
	"github.com/spf13/cobra"

	"github.com/Jaddevvv/PortKiller-App/internal/output"
	"github.com/Jaddevvv/PortKiller-App/internal/target"
)

func newScanCmd(a *app) *cobra.Command {
	var table bool

	cmd := &cobra.Command{
		Use:   "scan PORT",
		Short: "List the processes holding a port without killing them",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			port, err := target.ParsePort(args[0])
			if err != nil {
				return err
			}
			if err := a.initLogging(false, cmd.ErrOrStderr()); err != nil {
				return err
			}

			res, err := target.Scan(a.lister, port)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			switch {
			case a.jsonOut:
				return output.WriteJSON(w, res)
			case table:
				return output.RenderScanTable(w, res)
			}
			output.RenderScan(w, res, colorEnabled(a.cfg, w))
			return nil
		},
	}
	cmd.Flags().BoolVarP(&table, "table", "t", false, "render results as a table")
	return cmd
}
