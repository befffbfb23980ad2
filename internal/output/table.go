package output

import (
	"fmt"
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"

	"github.com/Jaddevvv/PortKiller-App/pkg/model"
)

// RenderScanTable prints a scan as a bordered PID/name table.
func RenderScanTable(w io.Writer, r model.ScanResult) error {
	if len(r.Processes) == 0 {
		NewPrinter(w).Printf("No processes are listening on port %d.\n", r.Port)
		return nil
	}

	rows := make([][]string, 0, len(r.Processes))
	for _, proc := range r.Processes {
		rows = append(rows, []string{strconv.Itoa(proc.PID), proc.Name})
	}
	return renderTable(w, []string{"PID", "Name"}, rows)
}

// RenderOutcomeTable prints a kill outcome with one row per process.
func RenderOutcomeTable(w io.Writer, o model.Outcome) error {
	if o.Total() == 0 {
		NewPrinter(w).Printf("No processes are listening on port %d.\n", o.Port)
		return nil
	}

	killedLabel := "killed"
	if o.DryRun {
		killedLabel = "would kill"
	}
	rows := make([][]string, 0, o.Total())
	for _, proc := range o.Killed {
		rows = append(rows, []string{strconv.Itoa(proc.PID), proc.Name, killedLabel, ""})
	}
	for _, f := range o.Failed {
		rows = append(rows, []string{strconv.Itoa(f.Process.PID), f.Process.Name, "failed", f.Reason})
	}
	if err := renderTable(w, []string{"PID", "Name", "Result", "Reason"}, rows); err != nil {
		return err
	}
	NewPrinter(w).Println(Summary(o))
	return nil
}

func renderTable(w io.Writer, headers []string, rows [][]string) error {
	table := tablewriter.NewWriter(NewSafeTerminalWriter(w))
	table.Options(
		tablewriter.WithHeader(headers),
		tablewriter.WithRendition(
			tw.Rendition{
				Borders: tw.Border{
					Left:   tw.State(1),
					Top:    tw.State(1),
					Right:  tw.State(1),
					Bottom: tw.State(1),
				},
			},
		),
		tablewriter.WithAlignment(tw.MakeAlign(len(headers), tw.AlignLeft)),
	)

	for _, row := range rows {
		for i := range row {
			row[i] = SanitizeTerminal(row[i])
		}
		if err := table.Append(row); err != nil {
			return fmt.Errorf("failed to append row: %w", err)
		}
	}
	if err := table.Render(); err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}
	return nil
}
