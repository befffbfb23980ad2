package output

import (
	"fmt"
	"io"

	"github.com/Jaddevvv/PortKiller-App/pkg/model"
)

var (
	colorReset  = ansiString("\033[0m")
	colorRed    = ansiString("\033[31m")
	colorGreen  = ansiString("\033[32m")
	colorYellow = ansiString("\033[33m")
	colorDim    = ansiString("\033[2m")
)

type palette struct {
	reset, ok, bad, warn, dim ansiString
}

func colors(enabled bool) palette {
	if !enabled {
		return palette{}
	}
	return palette{reset: colorReset, ok: colorGreen, bad: colorRed, warn: colorYellow, dim: colorDim}
}

// RenderScan prints the processes found on a port.
func RenderScan(w io.Writer, r model.ScanResult, colorEnabled bool) {
	p := NewPrinter(w)
	c := colors(colorEnabled)

	if len(r.Processes) == 0 {
		p.Printf("No processes are listening on port %d.\n", r.Port)
		return
	}

	p.Printf("Found %d process(es) on port %d:\n\n", len(r.Processes), r.Port)
	for _, proc := range r.Processes {
		p.Printf("  • %s %s(PID %d)%s\n", proc.Name, c.dim, proc.PID, c.reset)
	}
}

// RenderOutcome prints the result of a kill request.
func RenderOutcome(w io.Writer, o model.Outcome, colorEnabled bool) {
	p := NewPrinter(w)
	c := colors(colorEnabled)

	if o.Total() == 0 {
		p.Printf("No processes are listening on port %d.\n", o.Port)
		return
	}

	if len(o.Killed) > 0 {
		if o.DryRun {
			p.Printf("%sWould kill (dry run):%s\n", c.warn, c.reset)
		} else {
			p.Println("Successfully killed:")
		}
		for _, proc := range o.Killed {
			p.Printf("  %s✓%s %s (PID %d)\n", c.ok, c.reset, proc.Name, proc.PID)
		}
	}

	if len(o.Failed) > 0 {
		if len(o.Killed) > 0 {
			p.Println()
		}
		p.Println("Failed to kill:")
		for _, f := range o.Failed {
			p.Printf("  %s✗%s %s (PID %d): %s\n", c.bad, c.reset, f.Process.Name, f.Process.PID, f.Reason)
		}
	}

	p.Println()
	p.Println(Summary(o))
}

// Summary is the one-line status shown after a kill.
func Summary(o model.Outcome) string {
	if o.DryRun {
		return fmt.Sprintf("Dry run complete (%d would be killed)", len(o.Killed))
	}
	return fmt.Sprintf("Operation complete (%d killed, %d failed)", len(o.Killed), len(o.Failed))
}
