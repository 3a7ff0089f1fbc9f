// portstate.go
package protocol

// PortState tracks one port's STP role, forwarding state, and the
// best BPDU ever heard on that port, per spec.md 3/4.4. Role and
// forwarding state are set exclusively by the STP engine's election;
// PortState itself only enforces the monotonic-best-BPDU law (L1).
type PortState struct {
	Index      int
	Role       PortRole
	Forwarding ForwardingState
	best       *BPDU
	hasBest    bool
}

// NewPortState returns a port initialized to Designated, per spec.md
// 4.5's state machine: "the switch initially believes itself root."
func NewPortState(index int) *PortState {
	return &PortState{
		Index:      index,
		Role:       RoleDesignated,
		Forwarding: Forwarding,
	}
}

// Best returns the best BPDU heard on this port, if any.
func (p *PortState) Best() (BPDU, bool) {
	if !p.hasBest {
		return BPDU{}, false
	}
	return *p.best, true
}

// Record replaces the stored best BPDU with b iff b is strictly
// better under BPDU.Less, reporting whether the value changed. This
// is the only mutator that can make the record worse-than-monotonic
// go wrong, so it's the single choke point for L1.
func (p *PortState) Record(b BPDU) bool {
	if !p.hasBest || b.Less(*p.best) {
		cp := b
		p.best = &cp
		p.hasBest = true
		return true
	}
	return false
}

// setRole applies an election outcome, deriving forwarding state from
// role per spec.md 3's invariant.
func (p *PortState) setRole(r PortRole) {
	p.Role = r
	p.Forwarding = forwardingStateFor(r)
}
