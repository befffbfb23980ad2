package target

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/Jaddevvv/PortKiller-App/internal/proc"
	"github.com/Jaddevvv/PortKiller-App/pkg/model"
)

// MinPort and MaxPort bound the ports ParsePort accepts.
const (
	MinPort = 1
	MaxPort = 65535
)

var (
	// ErrEmptyPort is returned by ParsePort for blank input.
	ErrEmptyPort = errors.New("please enter a port number")

	// ErrInvalidPort is returned by ParsePort for anything that is not an
	// integer in [MinPort, MaxPort].
	ErrInvalidPort = errors.New("invalid port number")
)

// ParsePort validates operator input before it reaches the resolver.
func ParsePort(text string) (int, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return 0, ErrEmptyPort
	}
	port, err := strconv.Atoi(text)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a number", ErrInvalidPort, text)
	}
	if port < MinPort || port > MaxPort {
		return 0, fmt.Errorf("%w: port must be between %d and %d", ErrInvalidPort, MinPort, MaxPort)
	}
	return port, nil
}

type verdict int

const (
	verdictMiss verdict = iota
	verdictMatch
	verdictSkip
)

// inspection is the per-process result of a scan.
type inspection struct {
	verdict verdict
	err     error // set for verdictSkip
}

func inspect(h proc.Handle, port int) inspection {
	conns, err := h.Connections()
	if err != nil {
		return inspection{verdict: verdictSkip, err: err}
	}
	if proc.BindsPort(conns, port) {
		return inspection{verdict: verdictMatch}
	}
	return inspection{verdict: verdictMiss}
}

// ResolvePort returns a handle for every process with an inet socket whose
// local port is port. Each process is reported once no matter how many
// sockets it holds. Processes that vanish or cannot be inspected are
// skipped; only a failure to list processes at all is returned.
func ResolvePort(l proc.Lister, port int) ([]proc.Handle, error) {
	if port < MinPort || port > MaxPort {
		return nil, nil
	}

	handles, err := l.Processes()
	if err != nil {
		return nil, err
	}

	var matches []proc.Handle
	for _, h := range handles {
		res := inspect(h, port)
		switch res.verdict {
		case verdictMatch:
			// capture the name now, the process may be gone by the time
			// anyone asks for it
			proc.Summarize(h)
			matches = append(matches, h)
		case verdictSkip:
			logSkip(h, port, res.err)
		}
	}
	return matches, nil
}

func logSkip(h proc.Handle, port int, err error) {
	level := zerolog.DebugLevel
	if !proc.IsTransient(err) {
		level = zerolog.WarnLevel
	}
	log.WithLevel(level).Int("pid", h.PID()).Int("port", port).Err(err).Msg("skipping process during port scan")
}

// Scan resolves port and snapshots every match.
func Scan(l proc.Lister, port int) (model.ScanResult, error) {
	handles, err := ResolvePort(l, port)
	if err != nil {
		return model.ScanResult{Port: port}, err
	}
	return model.ScanResult{Port: port, Processes: Summaries(handles)}, nil
}

// Summaries resolves a display name for each handle, in order.
func Summaries(handles []proc.Handle) []model.ProcessSummary {
	out := make([]model.ProcessSummary, 0, len(handles))
	for _, h := range handles {
		out = append(out, proc.Summarize(h))
	}
	return out
}
