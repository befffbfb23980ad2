package proc

import (
	"fmt"
	"slices"
	"sort"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"github.com/shirou/gopsutil/v4/net"
	"github.com/shirou/gopsutil/v4/process"

	"github.com/Jaddevvv/PortKiller-App/pkg/model"
)

type systemLister struct{}

// System returns a Lister backed by the host's process table.
func System() Lister {
	return systemLister{}
}

func (systemLister) Processes() ([]Handle, error) {
	procs, err := process.Processes()
	if err != nil {
		return nil, enumerationError(err)
	}

	// /proc order is not numeric on every platform; sort so repeated scans
	// of the same table report in the same order.
	sort.Slice(procs, func(i, j int) bool { return procs[i].Pid < procs[j].Pid })

	// One system-wide socket listing instead of one per process. On darwin
	// and freebsd each per-process lookup is a separate lsof run.
	byPID, err := connectionsByPID()
	if err != nil {
		log.Debug().Err(err).Msg("system socket listing failed, querying processes one by one")
	}

	handles := make([]Handle, 0, len(procs))
	for _, p := range procs {
		h := &systemHandle{p: p}
		if byPID != nil {
			h.conns = byPID[p.Pid]
			h.connsLoaded = true
		}
		handles = append(handles, h)
	}
	return handles, nil
}

func connectionsByPID() (map[int32][]net.ConnectionStat, error) {
	stats, err := net.Connections("inet")
	if err != nil {
		return nil, err
	}
	return indexByPID(stats), nil
}

// indexByPID groups sockets by owner. Sockets with no known owner are dropped.
func indexByPID(stats []net.ConnectionStat) map[int32][]net.ConnectionStat {
	byPID := make(map[int32][]net.ConnectionStat)
	for _, s := range stats {
		if s.Pid <= 0 {
			continue
		}
		byPID[s.Pid] = append(byPID[s.Pid], s)
	}
	return byPID
}

type systemHandle struct {
	p    *process.Process
	name string

	// created is the create time seen when the handle was inspected. Zero
	// until recorded.
	created int64

	conns       []net.ConnectionStat
	connsLoaded bool
}

func (h *systemHandle) PID() int {
	return int(h.p.Pid)
}

func (h *systemHandle) CachedName() string {
	return h.name
}

func (h *systemHandle) Name() (string, error) {
	name, err := h.p.Name()
	if err != nil {
		return "", normalize(err)
	}
	h.name = name
	return name, nil
}

func (h *systemHandle) Connections() ([]model.Connection, error) {
	if err := h.recordCreateTime(); errors.Is(err, ErrNoSuchProcess) {
		return nil, err
	}

	stats := h.conns
	if !h.connsLoaded {
		var err error
		stats, err = net.ConnectionsPid("inet", h.p.Pid)
		if err != nil {
			return nil, normalize(err)
		}
	}
	conns := make([]model.Connection, 0, len(stats))
	for _, s := range stats {
		conns = append(conns, toConnection(s))
	}
	return conns, nil
}

func (h *systemHandle) recordCreateTime() error {
	if h.created != 0 {
		return nil
	}
	created, err := h.p.CreateTime()
	if err != nil {
		return normalize(err)
	}
	h.created = created
	return nil
}

// sameProcess reports ErrNoSuchProcess when the PID is gone or now belongs to
// a process started after the one this handle was inspected against.
func (h *systemHandle) sameProcess() error {
	current, err := process.NewProcess(h.p.Pid)
	if err != nil {
		return normalize(err)
	}
	if h.created == 0 {
		return nil
	}
	created, err := current.CreateTime()
	if err != nil {
		return normalize(err)
	}
	if created != h.created {
		return fmt.Errorf("%w: pid %d was reused", ErrNoSuchProcess, h.p.Pid)
	}
	return nil
}

func (h *systemHandle) Kill() error {
	if err := h.sameProcess(); err != nil {
		return err
	}
	// a zombie accepts signals but nothing happens, so report it up front
	if status, err := h.p.Status(); err == nil && slices.Contains(status, process.Zombie) {
		return ErrZombie
	}
	return normalize(h.p.Kill())
}
