// switch.go
package protocol

import "time"

// Switch is a single switch's whole state, per spec.md 3: own bridge
// id, its ports, its current view of the root, and the last BPDU
// emission timestamp. The switch loop is the sole owner and mutator;
// nothing else runs concurrently with it (spec.md 5).
type Switch struct {
	OwnID BridgeID
	Ports []*Port

	RootID   BridgeID
	Distance uint32
	// RootPort is nil while this switch is the elected root.
	RootPort *int

	FwdTable *ForwardingTable

	RecvTimeout   time.Duration
	HelloInterval time.Duration
	lastEmission  time.Time
}

// NewSwitch builds a switch that initially believes itself root, per
// spec.md 4.5: elected root starts as OwnID, distance 0, no root port,
// every port Designated (the PortState zero value from NewPortState).
func NewSwitch(ownID BridgeID, ports []*Port, recvTimeout, helloInterval time.Duration) *Switch {
	return &Switch{
		OwnID:         ownID,
		Ports:         ports,
		RootID:        ownID,
		Distance:      0,
		RootPort:      nil,
		FwdTable:      NewForwardingTable(),
		RecvTimeout:   recvTimeout,
		HelloInterval: helloInterval,
	}
}

func (s *Switch) portStates() []*PortState {
	states := make([]*PortState, len(s.Ports))
	for i, p := range s.Ports {
		states[i] = p.State
	}
	return states
}

// OwnBPDU is the BPDU this switch would emit on port p, per spec.md
// 4.5's synthesis rule.
func (s *Switch) OwnBPDU(portIndex int) BPDU {
	return BPDU{
		RootID:     s.RootID,
		Distance:   s.Distance,
		SenderID:   s.OwnID,
		SenderPort: uint32(portIndex),
	}
}

// ReceiveBPDU records b on the port it arrived on and, if that
// changed the port's best BPDU, recomputes the whole election. BPDUs
// are always honored regardless of the ingress port's forwarding
// state (spec.md 4.5): callers must invoke this before checking
// whether the ingress port is Blocked.
func (s *Switch) ReceiveBPDU(ingress int, b BPDU) {
	if s.Ports[ingress].State.Record(b) {
		s.recomputeElection()
	}
}

func (s *Switch) recomputeElection() {
	result := Elect(s.OwnID, s.portStates())
	result.Apply(s.portStates())
	s.RootID = result.RootID
	s.Distance = result.Distance
	s.RootPort = result.RootPort
}

// DueForEmission reports whether at least HelloInterval has elapsed
// since the switch last emitted its own BPDU on all non-Blocked ports.
func (s *Switch) DueForEmission(now time.Time) bool {
	return now.Sub(s.lastEmission) >= s.HelloInterval
}

// MarkEmitted records now as the last emission time.
func (s *Switch) MarkEmitted(now time.Time) {
	s.lastEmission = now
}
