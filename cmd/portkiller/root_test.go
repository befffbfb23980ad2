package main

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Jaddevvv/PortKiller-App/internal/proc/proctest"
	"github.com/Jaddevvv/PortKiller-App/internal/target"
	"github.com/Jaddevvv/PortKiller-App/pkg/model"
)

func run(t *testing.T, table *proctest.Table, args ...string) (string, error) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())

	a := newApp(table)
	defer a.close()
	cmd := newRootCmd(a)

	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestScanCommand(t *testing.T) {
	table := proctest.NewTable(proctest.Listening(99, "postgres", 5432))

	out, err := run(t, table, "scan", "5432")
	require.NoError(t, err)
	assert.Equal(t, "Found 1 process(es) on port 5432:\n\n  • postgres (PID 99)\n", out)
	assert.False(t, table.Procs[0].Killed)
}

func TestScanCommand_JSON(t *testing.T) {
	table := proctest.NewTable(proctest.Listening(99, "postgres", 5432))

	out, err := run(t, table, "scan", "5432", "--json")
	require.NoError(t, err)

	var res model.ScanResult
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.Equal(t, model.ScanResult{Port: 5432, Processes: []model.ProcessSummary{{PID: 99, Name: "postgres"}}}, res)
}

func TestScanCommand_InvalidPort(t *testing.T) {
	table := proctest.NewTable()
	_, err := run(t, table, "scan", "99999")
	require.ErrorIs(t, err, target.ErrInvalidPort)
	assert.Zero(t, table.Calls)
}

func TestKillCommand(t *testing.T) {
	p := proctest.Listening(7, "node", 3000)
	out, err := run(t, proctest.NewTable(p), "kill", "3000")
	require.NoError(t, err)
	assert.True(t, p.Killed)
	assert.Contains(t, out, "✓ node (PID 7)")
	assert.Contains(t, out, "Operation complete (1 killed, 0 failed)")
}

func TestKillCommand_DryRun(t *testing.T) {
	p := proctest.Listening(7, "node", 3000)
	out, err := run(t, proctest.NewTable(p), "kill", "3000", "--dry-run", "--json")
	require.NoError(t, err)
	assert.False(t, p.Killed)

	var o model.Outcome
	require.NoError(t, json.Unmarshal([]byte(out), &o))
	assert.True(t, o.DryRun)
	assert.Equal(t, []model.ProcessSummary{{PID: 7, Name: "node"}}, o.Killed)
}

func TestKillCommand_NothingListening(t *testing.T) {
	out, err := run(t, proctest.NewTable(), "kill", "3000")
	require.NoError(t, err)
	assert.Equal(t, "No processes are listening on port 3000.\n", out)
}

func TestKillCommand_Table(t *testing.T) {
	p := proctest.Listening(8, "ruby", 4000)
	out, err := run(t, proctest.NewTable(p), "kill", "4000", "--table")
	require.NoError(t, err)
	assert.Contains(t, out, "ruby")
	assert.Contains(t, out, "killed")
}

func TestKillCommand_RequiresPort(t *testing.T) {
	_, err := run(t, proctest.NewTable(), "kill")
	require.Error(t, err)
}
