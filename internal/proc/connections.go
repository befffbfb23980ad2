package proc

import (
	"strings"
	"syscall"

	"github.com/shirou/gopsutil/v4/net"

	"github.com/Jaddevvv/PortKiller-App/pkg/model"
)

func toConnection(s net.ConnectionStat) model.Connection {
	c := model.Connection{
		Protocol:   protocolName(s.Type),
		Family:     familyName(s.Laddr.IP),
		LocalAddr:  s.Laddr.IP,
		LocalPort:  int(s.Laddr.Port),
		RemoteAddr: s.Raddr.IP,
		RemotePort: int(s.Raddr.Port),
		PID:        int(s.Pid),
	}
	if c.Protocol == "TCP" {
		c.State = s.Status
	}
	return c
}

func protocolName(sockType uint32) string {
	switch sockType {
	case syscall.SOCK_STREAM:
		return "TCP"
	case syscall.SOCK_DGRAM:
		return "UDP"
	}
	return "unknown"
}

func familyName(ip string) string {
	if strings.Contains(ip, ":") {
		return "IPv6"
	}
	return "IPv4"
}

// BindsPort reports whether any of conns has port as its local port.
func BindsPort(conns []model.Connection, port int) bool {
	for _, c := range conns {
		if c.LocalPort == port {
			return true
		}
	}
	return false
}
