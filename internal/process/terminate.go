package process

import (
	"github.com/rs/zerolog/log"

	"github.com/Jaddevvv/PortKiller-App/internal/proc"
	"github.com/Jaddevvv/PortKiller-App/internal/target"
	"github.com/Jaddevvv/PortKiller-App/pkg/model"
)

// Options tune KillPort.
type Options struct {
	// DryRun reports what would be killed without sending any signal.
	DryRun bool
}

// Terminate force-kills every handle independently. A failure never stops
// the rest of the batch, and every handle ends up in exactly one of
// Killed or Failed.
func Terminate(handles []proc.Handle) model.Outcome {
	out := model.Outcome{
		Killed: []model.ProcessSummary{},
		Failed: []model.Failure{},
	}
	for _, h := range handles {
		// snapshot first, the name may be unreadable once it is dead
		summary := proc.Summarize(h)

		if err := h.Kill(); err != nil {
			log.Debug().Int("pid", summary.PID).Err(err).Msg("kill failed")
			out.Failed = append(out.Failed, model.Failure{Process: summary, Reason: proc.Reason(err)})
			continue
		}
		log.Info().Int("pid", summary.PID).Str("name", summary.Name).Msg("killed process")
		out.Killed = append(out.Killed, summary)
	}
	return out
}

// Preview is Terminate without the kill.
func Preview(handles []proc.Handle) model.Outcome {
	return model.Outcome{
		Killed: target.Summaries(handles),
		Failed: []model.Failure{},
		DryRun: true,
	}
}

// KillPort resolves port and terminates whatever holds it.
func KillPort(l proc.Lister, port int, opts Options) (model.Outcome, error) {
	handles, err := target.ResolvePort(l, port)
	if err != nil {
		return model.Outcome{Port: port}, err
	}

	var out model.Outcome
	if opts.DryRun {
		out = Preview(handles)
	} else {
		out = Terminate(handles)
	}
	out.Port = port
	return out, nil
}
