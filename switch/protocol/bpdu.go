// bpdu.go
package protocol

import (
	"encoding/binary"
	"fmt"
	"net"
)

// BridgeID is a switch's 48-bit identity, derived from its own MAC.
// Lower is better under unsigned comparison.
type BridgeID [BridgeIDLen]byte

func (b BridgeID) String() string {
	return net.HardwareAddr(b[:]).String()
}

// Less reports whether b is a strictly better (numerically smaller)
// bridge id than other.
func (b BridgeID) Less(other BridgeID) bool {
	for i := 0; i < BridgeIDLen; i++ {
		if b[i] != other[i] {
			return b[i] < other[i]
		}
	}
	return false
}

// ParseBridgeID accepts a 12-hex-digit MAC-formatted string, per
// spec.md 6's process invocation contract.
func ParseBridgeID(s string) (BridgeID, error) {
	mac, err := net.ParseMAC(s)
	if err != nil {
		// net.ParseMAC wants colon/dash/dot separated forms; also
		// accept a bare 12-hex-digit string as spec.md 6 describes.
		mac, err = net.ParseMAC(insertColons(s))
		if err != nil {
			return BridgeID{}, fmt.Errorf("malformed bridge id %q: %w", s, err)
		}
	}
	if len(mac) != BridgeIDLen {
		return BridgeID{}, fmt.Errorf("bridge id %q is not a 6-byte MAC", s)
	}
	var id BridgeID
	copy(id[:], mac)
	return id, nil
}

func insertColons(s string) string {
	if len(s) != 12 {
		return s
	}
	out := make([]byte, 0, 17)
	for i := 0; i < 12; i += 2 {
		if i > 0 {
			out = append(out, ':')
		}
		out = append(out, s[i], s[i+1])
	}
	return string(out)
}

// BridgeIDFromMAC copies a 6-byte net.HardwareAddr into a BridgeID;
// any other length is an error.
func BridgeIDFromMAC(mac net.HardwareAddr) (BridgeID, error) {
	if len(mac) != BridgeIDLen {
		return BridgeID{}, fmt.Errorf("interface MAC %s is not 6 bytes", mac)
	}
	var id BridgeID
	copy(id[:], mac)
	return id, nil
}

// BPDU is the project's reduced Bridge Protocol Data Unit: a claim
// about the root of the network and the sender's distance to it.
type BPDU struct {
	RootID     BridgeID
	Distance   uint32
	SenderID   BridgeID
	SenderPort uint32
}

// Less implements the total order from spec.md 3: lexicographic on
// (root id asc, distance asc, sender id asc, sender port asc).
// "Less" means "better".
func (b BPDU) Less(other BPDU) bool {
	if b.RootID != other.RootID {
		return b.RootID.Less(other.RootID)
	}
	if b.Distance != other.Distance {
		return b.Distance < other.Distance
	}
	if b.SenderID != other.SenderID {
		return b.SenderID.Less(other.SenderID)
	}
	return b.SenderPort < other.SenderPort
}

// Marshal encodes a BPDU into the fixed 20-byte payload layout from
// spec.md 4.1, network byte order throughout.
func (b BPDU) Marshal() []byte {
	buf := make([]byte, BpduPayloadLen)
	copy(buf[0:6], b.RootID[:])
	binary.BigEndian.PutUint32(buf[6:10], b.Distance)
	copy(buf[10:16], b.SenderID[:])
	binary.BigEndian.PutUint32(buf[16:20], b.SenderPort)
	return buf
}

// UnmarshalBPDU is the inverse of Marshal. Malformed payloads (wrong
// length) are reported as an error so callers can drop the frame
// silently per spec.md 4.1/7, without touching any port state.
func UnmarshalBPDU(payload []byte) (BPDU, error) {
	if len(payload) != BpduPayloadLen {
		return BPDU{}, fmt.Errorf("bpdu payload is %d bytes, want %d", len(payload), BpduPayloadLen)
	}
	var b BPDU
	copy(b.RootID[:], payload[0:6])
	b.Distance = binary.BigEndian.Uint32(payload[6:10])
	copy(b.SenderID[:], payload[10:16])
	b.SenderPort = binary.BigEndian.Uint32(payload[16:20])
	return b, nil
}
