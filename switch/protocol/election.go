// election.go
package protocol

// ElectionResult is the pure outcome of running the algorithm in
// spec.md 4.5 over a switch's own bridge id and the best BPDU heard on
// each of its ports. It carries no side effects; applying it to a
// port array is a separate, explicit step (Apply).
type ElectionResult struct {
	RootID   BridgeID
	Distance uint32
	// RootPort is nil when this switch is the elected root.
	RootPort *int
	Roles    []PortRole
}

// Elect recomputes root, distance, root port, and every port's role
// from scratch, as spec.md 9 requires ("recompute on each change"
// rather than folding election into BPDU reception incrementally).
func Elect(ownID BridgeID, ports []*PortState) ElectionResult {
	rootID := ownID
	for _, p := range ports {
		if b, ok := p.Best(); ok && b.RootID.Less(rootID) {
			rootID = b.RootID
		}
	}

	roles := make([]PortRole, len(ports))

	if rootID == ownID {
		for i := range roles {
			roles[i] = RoleDesignated
		}
		return ElectionResult{RootID: rootID, Distance: 0, RootPort: nil, Roles: roles}
	}

	// Pick the root port: minimum (distance+1, sender id, sender port)
	// among ports whose best BPDU advertises the elected root, tying
	// on smallest local port index.
	rootPort := -1
	var bestTuple rootCandidate
	for i, p := range ports {
		b, ok := p.Best()
		if !ok || b.RootID != rootID {
			continue
		}
		cand := rootCandidate{distance: b.Distance + 1, senderID: b.SenderID, senderPort: b.SenderPort}
		if rootPort == -1 || cand.less(bestTuple) {
			rootPort = i
			bestTuple = cand
		}
	}

	distance := bestTuple.distance

	for i, p := range ports {
		if i == rootPort {
			roles[i] = RoleRoot
			continue
		}
		ownAdvertised := BPDU{RootID: rootID, Distance: distance, SenderID: ownID, SenderPort: uint32(i)}
		if b, ok := p.Best(); ok && !ownAdvertised.Less(b) {
			roles[i] = RoleBlocked
		} else {
			roles[i] = RoleDesignated
		}
	}

	var rp *int
	if rootPort >= 0 {
		v := rootPort
		rp = &v
	}
	return ElectionResult{RootID: rootID, Distance: distance, RootPort: rp, Roles: roles}
}

// Apply writes an election result onto the port array, deriving each
// port's forwarding state from its new role.
func (r ElectionResult) Apply(ports []*PortState) {
	for i, role := range r.Roles {
		ports[i].setRole(role)
	}
}

type rootCandidate struct {
	distance   uint32
	senderID   BridgeID
	senderPort uint32
}

func (a rootCandidate) less(b rootCandidate) bool {
	if a.distance != b.distance {
		return a.distance < b.distance
	}
	if a.senderID != b.senderID {
		return a.senderID.Less(b.senderID)
	}
	return a.senderPort < b.senderPort
}
