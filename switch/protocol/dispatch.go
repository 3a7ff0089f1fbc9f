// dispatch.go
package protocol

import "fmt"

// Dispatch handles one frame received at ingress port p, per spec.md
// 4.7. Parse errors are absorbed here (spec.md 7): the caller passes
// raw bytes straight from PortIO and gets back only a log line, never
// an error that would need to abort the loop.
func (s *Switch) Dispatch(ingress int, raw []byte) {
	frame, err := ParseFrame(raw)
	if err != nil {
		SwLogger("DEBUG", fmt.Sprintf("port %d: dropping malformed frame: %s", ingress, err))
		return
	}
	port := s.Ports[ingress]

	if frame.IsBPDUKind {
		b, err := ExtractBPDU(frame)
		if err != nil {
			SwLogger("DEBUG", fmt.Sprintf("port %d: dropping malformed bpdu: %s", ingress, err))
			return
		}
		// Honored regardless of forwarding state; never forwarded.
		s.ReceiveBPDU(ingress, b)
		return
	}

	if port.State.Forwarding == Blocking {
		return
	}

	s.FwdTable.Learn(frame.Src, ingress)

	if IsBroadcastOrMulticast(frame.Dst) {
		s.flood(ingress, raw)
		return
	}

	egress, ok := s.FwdTable.Lookup(frame.Dst)
	if !ok {
		s.flood(ingress, raw)
		return
	}
	if egress == ingress {
		// Would reflect the frame back onto its own ingress port.
		return
	}
	egressPort := s.Ports[egress]
	if egressPort.State.Forwarding == Blocking {
		return
	}
	if err := egressPort.IO.Send(raw); err != nil {
		SwLogger("WARNING", fmt.Sprintf("port %d: send failed: %s", egress, err))
	}
}

// flood sends raw on every non-Blocked port other than ingress.
func (s *Switch) flood(ingress int, raw []byte) {
	for i, p := range s.Ports {
		if i == ingress || p.State.Forwarding == Blocking {
			continue
		}
		if err := p.IO.Send(raw); err != nil {
			SwLogger("WARNING", fmt.Sprintf("port %d: send failed: %s", i, err))
		}
	}
}

// EmitBPDUs sends this switch's current BPDU on every non-Blocked
// port, per spec.md 4.5. Blocked ports neither send nor learn.
func (s *Switch) EmitBPDUs() {
	for _, p := range s.Ports {
		if p.State.Role == RoleBlocked {
			continue
		}
		raw, err := BuildBPDUFrame(p.MAC, s.OwnBPDU(p.Index))
		if err != nil {
			SwLogger("ERROR", fmt.Sprintf("port %d: failed to build bpdu: %s", p.Index, err))
			continue
		}
		if err := p.IO.Send(raw); err != nil {
			SwLogger("WARNING", fmt.Sprintf("port %d: bpdu send failed: %s", p.Index, err))
		}
	}
}
