package model

// Connection represents a network connection (TCP or UDP) owned by a process
type Connection struct {
	Protocol   string // TCP or UDP
	Family     string // IPv4 or IPv6
	LocalAddr  string
	LocalPort  int
	RemoteAddr string
	RemotePort int
	State      string
	PID        int
}
