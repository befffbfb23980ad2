package model

import "fmt"

// UnknownName is reported when the OS will not disclose a process name.
const UnknownName = "unknown"

// ProcessSummary is a snapshot of a process taken when it was matched or
// right before it was signalled. It is never updated afterwards.
type ProcessSummary struct {
	PID  int    `json:"pid"`
	Name string `json:"name"`
}

func (p ProcessSummary) String() string {
	return fmt.Sprintf("%s (PID %d)", p.Name, p.PID)
}
