// dispatch_test.go
package protocol

import (
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildEthFrame(dst, src net.HardwareAddr, payload []byte) []byte {
	raw := make([]byte, 0, EthHeaderLen+len(payload))
	raw = append(raw, dst...)
	raw = append(raw, src...)
	raw = append(raw, 0x08, 0x00) // arbitrary data EtherType
	raw = append(raw, payload...)
	return raw
}

func newTestSwitch(t *testing.T, n int) (*Switch, []*MemPortIO) {
	t.Helper()
	ios := make([]*MemPortIO, n)
	ports := make([]*Port, n)
	for i := 0; i < n; i++ {
		ios[i] = NewMemPortIO(4)
		ports[i] = NewPort(i, "eth"+string(rune('0'+i)), net.HardwareAddr{0, 0, 0, 0, 0, byte(i + 1)}, ios[i])
	}
	sw := NewSwitch(bid(1), ports, time.Millisecond, time.Hour)
	return sw, ios
}

// TestDispatchFloodsUnknownDestination is scenario 5's first half and
// the "broadcast from unlearned source is still flooded" boundary
// behavior.
func TestDispatchFloodsUnknownDestination(t *testing.T) {
	sw, ios := newTestSwitch(t, 3)
	h1 := net.HardwareAddr{1, 1, 1, 1, 1, 1}
	broadcast := net.HardwareAddr{0xff, 0xff, 0xff, 0xff, 0xff, 0xff}

	frame := buildEthFrame(broadcast, h1, []byte("hello"))
	sw.Dispatch(0, frame)

	assert.Empty(t, ios[0].Sent, "must not flood back onto ingress")
	assert.Len(t, ios[1].Sent, 1)
	assert.Len(t, ios[2].Sent, 1)

	port, ok := sw.FwdTable.Lookup(h1)
	require.True(t, ok)
	assert.Equal(t, 0, port)
}

// TestDispatchUnicastsToLearnedPort is scenario 5's second half:
// subsequent traffic to a learned address is unicast only, not
// flooded (P4).
func TestDispatchUnicastsToLearnedPort(t *testing.T) {
	sw, ios := newTestSwitch(t, 3)
	h1 := net.HardwareAddr{1, 1, 1, 1, 1, 1}
	h2 := net.HardwareAddr{2, 2, 2, 2, 2, 2}
	broadcast := net.HardwareAddr{0xff, 0xff, 0xff, 0xff, 0xff, 0xff}

	sw.Dispatch(0, buildEthFrame(broadcast, h1, []byte("hello")))
	for _, io := range ios {
		io.Sent = nil
	}

	sw.Dispatch(1, buildEthFrame(h1, h2, []byte("reply")))

	assert.Len(t, ios[0].Sent, 1, "unicast reaches the learned port only")
	assert.Empty(t, ios[1].Sent, "never sent back onto ingress")
	assert.Empty(t, ios[2].Sent, "not flooded once learned")
}

// TestDispatchDropsFrameThatWouldReflect is P5: a data frame is never
// emitted on its own ingress port, even when the lookup resolves to
// the ingress port itself.
func TestDispatchDropsFrameThatWouldReflect(t *testing.T) {
	sw, ios := newTestSwitch(t, 2)
	h1 := net.HardwareAddr{1, 1, 1, 1, 1, 1}
	h2 := net.HardwareAddr{2, 2, 2, 2, 2, 2}

	sw.FwdTable.Learn(h1, 0)
	sw.Dispatch(0, buildEthFrame(h1, h2, []byte("loop")))

	assert.Empty(t, ios[0].Sent)
	assert.Empty(t, ios[1].Sent)
}

// TestDispatchDropsDataOnBlockedIngress covers the Blocked-port branch
// of spec.md 4.7: no learning, no forwarding.
func TestDispatchDropsDataOnBlockedIngress(t *testing.T) {
	sw, ios := newTestSwitch(t, 2)
	sw.Ports[0].State.setRole(RoleBlocked)
	h1 := net.HardwareAddr{1, 1, 1, 1, 1, 1}
	broadcast := net.HardwareAddr{0xff, 0xff, 0xff, 0xff, 0xff, 0xff}

	sw.Dispatch(0, buildEthFrame(broadcast, h1, []byte("x")))

	assert.Empty(t, ios[1].Sent)
	_, ok := sw.FwdTable.Lookup(h1)
	assert.False(t, ok)
}

// TestDispatchNeverForwardsBPDU is P6.
func TestDispatchNeverForwardsBPDU(t *testing.T) {
	sw, ios := newTestSwitch(t, 3)
	b := BPDU{RootID: bid(1), Distance: 0, SenderID: bid(2), SenderPort: 0}
	raw, err := BuildBPDUFrame(net.HardwareAddr{9, 9, 9, 9, 9, 9}, b)
	require.NoError(t, err)

	sw.Dispatch(0, raw)

	for _, io := range ios {
		assert.Empty(t, io.Sent)
	}
}

// TestDispatchHonorsBPDUOnBlockedPort covers spec.md 4.5: BPDUs are
// always honored regardless of ingress port forwarding state.
func TestDispatchHonorsBPDUOnBlockedPort(t *testing.T) {
	sw, _ := newTestSwitch(t, 2)
	sw.Ports[0].State.setRole(RoleBlocked)

	b := BPDU{RootID: bid(1), Distance: 0, SenderID: bid(1), SenderPort: 0}
	raw, err := BuildBPDUFrame(net.HardwareAddr{9, 9, 9, 9, 9, 9}, b)
	require.NoError(t, err)

	sw.Dispatch(0, raw)

	best, ok := sw.Ports[0].State.Best()
	require.True(t, ok)
	assert.Equal(t, b, best)
}
