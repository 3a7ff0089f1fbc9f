// loop.go
package protocol

import (
	"context"
	"fmt"
	"time"
)

// Loop is the single-threaded scheduler from spec.md 4.6/9: round
// robin over ports, at most one bounded receive per port per
// iteration, no sleep beyond the receive timeouts themselves.
type Loop struct {
	sw *Switch
}

// NewLoop wraps a switch with the polling loop that drives it.
func NewLoop(sw *Switch) *Loop {
	return &Loop{sw: sw}
}

// RunOnce executes exactly one loop iteration: poll every port in
// index order, dispatch anything received, then emit BPDUs if H has
// elapsed. Exposed separately from Run so tests can single-step it.
func (l *Loop) RunOnce(now time.Time) {
	for i, p := range l.sw.Ports {
		raw, ok, err := p.IO.TryRecv(l.sw.RecvTimeout)
		if err != nil {
			SwLogger("WARNING", fmt.Sprintf("port %d: recv error: %s", i, err))
			continue
		}
		if !ok {
			continue
		}
		l.sw.Dispatch(i, raw)
	}

	if l.sw.DueForEmission(now) {
		l.sw.EmitBPDUs()
		l.sw.MarkEmitted(now)
	}
}

// Run polls forever until ctx is cancelled. The loop may exit at any
// iteration boundary (spec.md 5); no graceful drain is required.
func (l *Loop) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
			l.RunOnce(time.Now())
		}
	}
}
