package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProcessSummaryString(t *testing.T) {
	assert.Equal(t, "nginx (PID 42)", ProcessSummary{PID: 42, Name: "nginx"}.String())
	assert.Equal(t, "unknown (PID 7)", ProcessSummary{PID: 7, Name: UnknownName}.String())
}

func TestOutcomeTotal(t *testing.T) {
	var o Outcome
	assert.Zero(t, o.Total())

	o.Killed = []ProcessSummary{{PID: 1, Name: "a"}}
	o.Failed = []Failure{{Process: ProcessSummary{PID: 2, Name: "b"}, Reason: "permission denied"}}
	assert.Equal(t, 2, o.Total())
}
