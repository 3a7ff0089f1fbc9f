// portstate_test.go
package protocol

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewPortStateStartsDesignated(t *testing.T) {
	p := NewPortState(0)
	assert.Equal(t, RoleDesignated, p.Role)
	assert.Equal(t, Forwarding, p.Forwarding)
	_, ok := p.Best()
	assert.False(t, ok)
}

// TestPortStateRecordMonotonic is law L1: a port's stored best BPDU
// never becomes strictly worse.
func TestPortStateRecordMonotonic(t *testing.T) {
	p := NewPortState(0)
	root := BridgeID{0, 0, 0, 0, 0, 1}

	good := BPDU{RootID: root, Distance: 1, SenderID: root, SenderPort: 0}
	changed := p.Record(good)
	assert.True(t, changed)

	worse := BPDU{RootID: root, Distance: 5, SenderID: root, SenderPort: 0}
	changed = p.Record(worse)
	assert.False(t, changed)

	got, ok := p.Best()
	assert.True(t, ok)
	assert.Equal(t, good, got)

	better := BPDU{RootID: root, Distance: 0, SenderID: root, SenderPort: 0}
	changed = p.Record(better)
	assert.True(t, changed)
	got, _ = p.Best()
	assert.Equal(t, better, got)
}

func TestSetRoleDerivesForwardingState(t *testing.T) {
	p := NewPortState(0)
	p.setRole(RoleBlocked)
	assert.Equal(t, Blocking, p.Forwarding)

	p.setRole(RoleRoot)
	assert.Equal(t, Forwarding, p.Forwarding)

	p.setRole(RoleDesignated)
	assert.Equal(t, Forwarding, p.Forwarding)
}
