// port.go
package protocol

import (
	"fmt"
	"net"
	"time"
)

// PortIO is a non-owning abstraction over a single Ethernet interface,
// per spec.md 4.2. TryRecv must not block longer than the timeout it
// is given in the no-data case; Send is treated as synchronous and
// non-blocking at the design level.
type PortIO interface {
	// TryRecv attempts to receive one frame within timeout. ok is
	// false on the "no data" sentinel; it is not an error.
	TryRecv(timeout time.Duration) (raw []byte, ok bool, err error)
	Send(raw []byte) error
	Close() error
}

// Port is one local Ethernet interface as the switch loop sees it:
// its I/O handle, its own MAC, and its STP state. The switch loop
// exclusively owns this struct; the STP engine gets per-call mutable
// access to the PortState, per spec.md 9's ownership note.
type Port struct {
	Name  string
	Index int
	MAC   net.HardwareAddr
	IO    PortIO
	State *PortState
}

// NewPort wraps an already-open PortIO with its STP bookkeeping.
func NewPort(index int, name string, mac net.HardwareAddr, io PortIO) *Port {
	return &Port{
		Name:  name,
		Index: index,
		MAC:   mac,
		IO:    io,
		State: NewPortState(index),
	}
}

func (p *Port) String() string {
	return fmt.Sprintf("port[%d]=%s(%s)", p.Index, p.Name, p.MAC)
}
