// frame.go
package protocol

import (
	"fmt"
	"net"

	"github.com/google/gopacket"
	"github.com/google/gopacket/layers"
)

// BpduEtherType is a private EtherType this project uses on the
// frames it emits itself, distinct from ordinary data traffic.
// Recognition, per spec.md 4.1, is by destination MAC alone (the
// other permitted scheme, EtherType+magic, is not used here so the
// BPDU payload can stay exactly the specified 20 bytes with no extra
// tag consuming part of it).
const BpduEtherType = layers.EthernetType(0x88B5) // IEEE 802 local experimental

// Frame is a parsed Ethernet II frame.
type Frame struct {
	Dst        net.HardwareAddr
	Src        net.HardwareAddr
	EtherType  layers.EthernetType
	Payload    []byte
	IsBPDUKind bool
}

// ParseFrame decodes raw bytes as an Ethernet II frame and classifies
// it as BPDU or data per spec.md 4.1. Truncated frames are reported as
// an error so the caller can drop them silently per spec.md 7.
func ParseFrame(raw []byte) (Frame, error) {
	if len(raw) < EthHeaderLen {
		return Frame{}, fmt.Errorf("truncated ethernet header: %d bytes", len(raw))
	}
	pkt := gopacket.NewPacket(raw, layers.LayerTypeEthernet, gopacket.NoCopy)
	ethLayer := pkt.Layer(layers.LayerTypeEthernet)
	if ethLayer == nil {
		return Frame{}, fmt.Errorf("not a valid ethernet frame")
	}
	eth := ethLayer.(*layers.Ethernet)

	f := Frame{
		Dst:       eth.DstMAC,
		Src:       eth.SrcMAC,
		EtherType: eth.EthernetType,
		Payload:   eth.Payload,
	}
	f.IsBPDUKind = isBpduDst(eth.DstMAC)
	return f, nil
}

func isBpduDst(dst net.HardwareAddr) bool {
	return len(dst) == 6 && [6]byte(dst) == BpduDstMAC
}

// IsBroadcastOrMulticast reports whether dst should be flooded rather
// than looked up in the forwarding table.
func IsBroadcastOrMulticast(dst net.HardwareAddr) bool {
	if len(dst) != 6 {
		return true
	}
	// The low bit of the first octet marks multicast, and the
	// all-ones broadcast address is a special case of multicast.
	return dst[0]&0x01 != 0
}

// BuildBPDUFrame serializes a BPDU as the Ethernet II frame this
// switch emits: destination is the well-known STP multicast address,
// source is the sending port's own MAC, payload is the 20-byte layout
// from spec.md 4.1. Serialization zero-pads the frame to Ethernet's
// 60-byte minimum, so 26 zero bytes follow the BPDU record.
func BuildBPDUFrame(srcMAC net.HardwareAddr, b BPDU) ([]byte, error) {
	eth := layers.Ethernet{
		SrcMAC:       srcMAC,
		DstMAC:       net.HardwareAddr(BpduDstMAC[:]),
		EthernetType: BpduEtherType,
	}
	buf := gopacket.NewSerializeBuffer()
	opts := gopacket.SerializeOptions{FixLengths: true}
	if err := gopacket.SerializeLayers(buf, opts, &eth, gopacket.Payload(b.Marshal())); err != nil {
		return nil, fmt.Errorf("serialize bpdu frame: %w", err)
	}
	return buf.Bytes(), nil
}

// ExtractBPDU recovers the BPDU record from a frame already classified
// as BPDU-kind. A payload padded with zeros to the Ethernet minimum
// frame size is trimmed to its 20-byte record first. Malformed payloads
// are reported as an error so the caller can drop them silently per
// spec.md 4.1/7.
func ExtractBPDU(f Frame) (BPDU, error) {
	payload := f.Payload
	if len(payload) == ethMinFrameLen-EthHeaderLen {
		padded := true
		for _, c := range payload[BpduPayloadLen:] {
			if c != 0 {
				padded = false
				break
			}
		}
		if padded {
			payload = payload[:BpduPayloadLen]
		}
	}
	return UnmarshalBPDU(payload)
}

// ethMinFrameLen is the minimum Ethernet frame size (without FCS) that
// short frames are padded up to.
const ethMinFrameLen = 60
