package proc_test

import (
	"errors"
	"net"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Jaddevvv/PortKiller-App/internal/proc"
	"github.com/Jaddevvv/PortKiller-App/internal/proc/proctest"
	"github.com/Jaddevvv/PortKiller-App/pkg/model"
)

func TestSummarize_NameTiers(t *testing.T) {
	t.Run("cached name wins", func(t *testing.T) {
		p := proctest.Listening(10, "nginx")
		_, err := p.Name()
		require.NoError(t, err)
		p.NameErr = errors.New("should not be queried")

		s := proc.Summarize(p)
		assert.Equal(t, model.ProcessSummary{PID: 10, Name: "nginx"}, s)
		assert.Equal(t, 1, p.NameCalls)
	})

	t.Run("live query when nothing cached", func(t *testing.T) {
		p := proctest.Listening(11, "redis-server")
		assert.Equal(t, "redis-server", proc.Summarize(p).Name)
		assert.Equal(t, 1, p.NameCalls)
	})

	t.Run("sentinel when query fails", func(t *testing.T) {
		p := proctest.Listening(12, "sshd")
		p.NameErr = proc.ErrAccessDenied
		assert.Equal(t, model.UnknownName, proc.Summarize(p).Name)
	})

	t.Run("sentinel when name is empty", func(t *testing.T) {
		p := proctest.Listening(13, "")
		assert.Equal(t, model.UnknownName, proc.Summarize(p).Name)
	})

	t.Run("cached name survives kill", func(t *testing.T) {
		p := proctest.Listening(14, "node")
		proc.Summarize(p)
		require.NoError(t, p.Kill())
		assert.Equal(t, "node", proc.Summarize(p).Name)
	})
}

func TestReason(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"nil", nil, ""},
		{"gone", proc.ErrNoSuchProcess, "process no longer exists"},
		{"wrapped denied", errors.Join(errors.New("kill 1"), proc.ErrAccessDenied), "permission denied"},
		{"zombie", proc.ErrZombie, "process is a zombie"},
		{"other", errors.New("boom"), "boom"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, proc.Reason(tt.err))
		})
	}
}

func TestIsTransient(t *testing.T) {
	assert.True(t, proc.IsTransient(proc.ErrNoSuchProcess))
	assert.True(t, proc.IsTransient(proc.ErrAccessDenied))
	assert.True(t, proc.IsTransient(proc.ErrZombie))
	assert.False(t, proc.IsTransient(proc.ErrEnumeration))
	assert.False(t, proc.IsTransient(errors.New("boom")))
}

func TestBindsPort(t *testing.T) {
	conns := proctest.Listening(1, "x", 80, 443).Conns
	assert.True(t, proc.BindsPort(conns, 443))
	assert.False(t, proc.BindsPort(conns, 8080))
	assert.False(t, proc.BindsPort(nil, 80))
}

func TestSystem_ListsCurrentProcess(t *testing.T) {
	handles, err := proc.System().Processes()
	require.NoError(t, err)
	require.NotEmpty(t, handles)

	for i := 1; i < len(handles); i++ {
		require.Less(t, handles[i-1].PID(), handles[i].PID(), "handles should be sorted by pid")
	}
}

func TestSystem_ReportsOwnListener(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer ln.Close()
	port := ln.Addr().(*net.TCPAddr).Port

	handles, err := proc.System().Processes()
	require.NoError(t, err)

	for _, h := range handles {
		if h.PID() != os.Getpid() {
			continue
		}
		conns, err := h.Connections()
		require.NoError(t, err)
		assert.True(t, proc.BindsPort(conns, port), "listener on %d not reported", port)
		return
	}
	t.Fatalf("pid %d missing from the process list", os.Getpid())
}
