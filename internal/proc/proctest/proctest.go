// Package proctest provides in-memory process tables for tests.
package proctest

import (
	"github.com/Jaddevvv/PortKiller-App/internal/proc"
	"github.com/Jaddevvv/PortKiller-App/pkg/model"
)

// Process is a fake proc.Handle. Once killed it behaves like an exited
// process: Name, Connections and Kill report proc.ErrNoSuchProcess.
type Process struct {
	Pid      int
	ProcName string
	Conns    []model.Connection

	NameErr error
	ConnErr error
	KillErr error

	Killed    bool
	KillCalls int
	NameCalls int

	cached string
}

// Listening returns a process holding a TCP listener on each of ports.
func Listening(pid int, name string, ports ...int) *Process {
	p := &Process{Pid: pid, ProcName: name}
	for _, port := range ports {
		p.Conns = append(p.Conns, model.Connection{
			Protocol:  "TCP",
			Family:    "IPv4",
			LocalAddr: "0.0.0.0",
			LocalPort: port,
			State:     "LISTEN",
			PID:       pid,
		})
	}
	return p
}

func (p *Process) PID() int { return p.Pid }

func (p *Process) CachedName() string { return p.cached }

func (p *Process) Name() (string, error) {
	p.NameCalls++
	if p.Killed {
		return "", proc.ErrNoSuchProcess
	}
	if p.NameErr != nil {
		return "", p.NameErr
	}
	p.cached = p.ProcName
	return p.ProcName, nil
}

func (p *Process) Connections() ([]model.Connection, error) {
	if p.Killed {
		return nil, proc.ErrNoSuchProcess
	}
	if p.ConnErr != nil {
		return nil, p.ConnErr
	}
	return p.Conns, nil
}

func (p *Process) Kill() error {
	p.KillCalls++
	if p.Killed {
		return proc.ErrNoSuchProcess
	}
	if p.KillErr != nil {
		return p.KillErr
	}
	p.Killed = true
	return nil
}

// Table is a fake proc.Lister. Killed processes drop out of later listings.
type Table struct {
	Procs []*Process
	Err   error
	Calls int
}

func NewTable(procs ...*Process) *Table {
	return &Table{Procs: procs}
}

func (t *Table) Processes() ([]proc.Handle, error) {
	t.Calls++
	if t.Err != nil {
		return nil, t.Err
	}
	handles := make([]proc.Handle, 0, len(t.Procs))
	for _, p := range t.Procs {
		if p.Killed {
			continue
		}
		handles = append(handles, p)
	}
	return handles, nil
}
