// portio_pcap.go
package protocol

import (
	"fmt"
	"time"

	"github.com/google/gopacket/pcap"
)

// pcapSnapLen is generous enough for any Ethernet II frame this
// project forwards; STP does not need jumbo frame support.
const pcapSnapLen = 65536

// PcapPortIO is the production PortIO, grounded on the teacher's
// gopacket/pcap usage in stp/protocol/port.go and lldp/packet/rx.go.
// pcap.OpenLive's read timeout directly gives the "bounded receive,
// no-data sentinel" contract spec.md 4.2 asks for: libpcap returns
// pcap.NextErrorTimeoutExpired instead of blocking past the timeout.
type PcapPortIO struct {
	handle *pcap.Handle
}

// OpenPcapPort opens iface in promiscuous mode (the switch must
// receive frames not addressed to it) with the given read timeout.
// libpcap's read timeout is fixed at open time, which matches spec.md
// 5: T is one process-lifetime knob, never varied call-to-call, so
// TryRecv's timeout parameter is accepted only to satisfy PortIO and
// is expected to equal the value passed here.
func OpenPcapPort(iface string, timeout time.Duration) (*PcapPortIO, error) {
	handle, err := pcap.OpenLive(iface, pcapSnapLen, true, timeout)
	if err != nil {
		return nil, fmt.Errorf("open interface %s: %w", iface, err)
	}
	return &PcapPortIO{handle: handle}, nil
}

func (p *PcapPortIO) TryRecv(_ time.Duration) ([]byte, bool, error) {
	// NextEx, unlike ReadPacketData, surfaces a timed-out read instead
	// of retrying internally - exactly the "no data" sentinel spec.md
	// 4.2 requires rather than an unbounded block.
	data, _, err := p.handle.NextEx()
	if err == pcap.NextErrorTimeoutExpired {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return data, true, nil
}

func (p *PcapPortIO) Send(raw []byte) error {
	return p.handle.WritePacketData(raw)
}

func (p *PcapPortIO) Close() error {
	p.handle.Close()
	return nil
}
