// portio_mem.go
package protocol

import "time"

// MemPortIO is an in-memory PortIO fake used by tests and by the
// scenario harness: no real interfaces or CAP_NET_RAW required. Frames
// pushed with Deliver become visible to the next TryRecv; frames
// handed to Send land in Sent for assertions.
type MemPortIO struct {
	inbox  chan []byte
	Sent   [][]byte
	closed bool
}

// NewMemPortIO returns a fake with the given inbound queue depth.
func NewMemPortIO(queueDepth int) *MemPortIO {
	return &MemPortIO{inbox: make(chan []byte, queueDepth)}
}

// Deliver enqueues raw as if it had just arrived on the wire.
func (m *MemPortIO) Deliver(raw []byte) {
	m.inbox <- raw
}

func (m *MemPortIO) TryRecv(timeout time.Duration) ([]byte, bool, error) {
	select {
	case raw := <-m.inbox:
		return raw, true, nil
	case <-time.After(timeout):
		return nil, false, nil
	}
}

func (m *MemPortIO) Send(raw []byte) error {
	cp := append([]byte(nil), raw...)
	m.Sent = append(m.Sent, cp)
	return nil
}

func (m *MemPortIO) Close() error {
	m.closed = true
	return nil
}
