// fwdtable.go
package protocol

import "net"

// ForwardingTable is the bounded-in-practice, unbounded-in-principle
// MAC-to-port mapping from spec.md 4.3. It is hard state: an entry is
// installed on first observation and never updated thereafter. The
// switch loop is its sole owner, so no locking is needed (spec.md 5).
type ForwardingTable struct {
	entries map[[6]byte]int
}

// NewForwardingTable returns an empty table.
func NewForwardingTable() *ForwardingTable {
	return &ForwardingTable{entries: make(map[[6]byte]int)}
}

// Learn records src -> ingress if src is not already known. Repeating
// the same (src, ingress) pair is a no-op (L2, idempotent learn).
func (t *ForwardingTable) Learn(src net.HardwareAddr, ingress int) {
	if len(src) != 6 {
		return
	}
	key := [6]byte(src)
	if _, ok := t.entries[key]; ok {
		return
	}
	t.entries[key] = ingress
}

// Lookup returns the learned egress port for dst, if any. Callers must
// not look up broadcast/multicast destinations; those always flood.
func (t *ForwardingTable) Lookup(dst net.HardwareAddr) (int, bool) {
	if len(dst) != 6 {
		return 0, false
	}
	port, ok := t.entries[[6]byte(dst)]
	return port, ok
}

// Size reports the number of learned entries, useful for tests and
// diagnostics.
func (t *ForwardingTable) Size() int {
	return len(t.entries)
}
