// Package proc is the only place that talks to the operating system about
// processes. Everything above it works on Handle values so it can be driven
// by test doubles.
package proc

import "github.com/Jaddevvv/PortKiller-App/pkg/model"

// Handle is a live reference to an OS process. The process may exit at any
// moment, so every method reports that as an error rather than panicking.
type Handle interface {
	PID() int

	// CachedName returns the name captured by an earlier successful Name
	// call, or "" when none was captured.
	CachedName() string

	// Name queries the OS for the process name.
	Name() (string, error)

	// Connections returns the process' IPv4/IPv6 TCP and UDP sockets.
	Connections() ([]model.Connection, error)

	// Kill sends an unblockable termination request.
	Kill() error
}

// Lister enumerates the processes visible to the caller.
type Lister interface {
	Processes() ([]Handle, error)
}

// Summarize snapshots a handle. The name is resolved from the cached value,
// then a live query, then the UnknownName sentinel, so it is never empty.
func Summarize(h Handle) model.ProcessSummary {
	return model.ProcessSummary{PID: h.PID(), Name: resolveName(h)}
}

func resolveName(h Handle) string {
	if name := h.CachedName(); name != "" {
		return name
	}
	if name, err := h.Name(); err == nil && name != "" {
		return name
	}
	return model.UnknownName
}
