package model

// ScanResult lists the processes holding a port at scan time
type ScanResult struct {
	Port      int              `json:"port"`
	Processes []ProcessSummary `json:"processes"`
}

// Failure pairs a process with the reason it could not be killed
type Failure struct {
	Process ProcessSummary `json:"process"`
	Reason  string         `json:"reason"`
}

// Outcome is the result of a kill request. Both lists keep enumeration order.
type Outcome struct {
	Port   int              `json:"port"`
	Killed []ProcessSummary `json:"killed"`
	Failed []Failure        `json:"failed"`

	// DryRun is set when nothing was signalled and Killed only lists what
	// would have been killed.
	DryRun bool `json:"dry_run,omitempty"`
}

func (o Outcome) Total() int {
	return len(o.Killed) + len(o.Failed)
}
