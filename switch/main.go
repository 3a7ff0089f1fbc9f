// main
package main

import (
	"context"
	"fmt"
	"net"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"

	"github.com/oshothebig/l2switch/switch/config"
	"github.com/oshothebig/l2switch/switch/protocol"
)

func main() {
	cmd := config.NewRootCommand(run)
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "switch:", err)
		os.Exit(1)
	}
}

// run opens every listed interface, wires up the switch and its loop,
// and blocks until SIGTERM/SIGINT. Any interface that fails to open is
// a startup error per spec.md 7: fatal, reported, non-zero exit.
func run(cfg config.Config) error {
	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", cfg.LogLevel, err)
	}
	protocol.Logger.SetLevel(level)

	ports := make([]*protocol.Port, 0, len(cfg.Interfaces))
	for i, ifname := range cfg.Interfaces {
		io, err := protocol.OpenPcapPort(ifname, cfg.RecvTimeout)
		if err != nil {
			closeAll(ports)
			return fmt.Errorf("opening interface %s: %w", ifname, err)
		}
		mac, err := interfaceMAC(ifname)
		if err != nil {
			closeAll(ports)
			return fmt.Errorf("reading MAC of interface %s: %w", ifname, err)
		}
		ports = append(ports, protocol.NewPort(i, ifname, mac, io))
	}
	defer closeAll(ports)

	sw := protocol.NewSwitch(cfg.BridgeID, ports, cfg.RecvTimeout, cfg.HelloInterval)
	protocol.SwLogger("INFO", fmt.Sprintf("switch %s starting on %d ports", cfg.BridgeID, len(ports)))

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer cancel()

	loop := protocol.NewLoop(sw)
	if err := loop.Run(ctx); err != nil && err != context.Canceled {
		return err
	}
	protocol.SwLogger("INFO", "switch shutting down")
	return nil
}

func interfaceMAC(name string) (net.HardwareAddr, error) {
	iface, err := net.InterfaceByName(name)
	if err != nil {
		return nil, err
	}
	if len(iface.HardwareAddr) != protocol.BridgeIDLen {
		return nil, fmt.Errorf("interface %s has no usable MAC", name)
	}
	return iface.HardwareAddr, nil
}

func closeAll(ports []*protocol.Port) {
	for _, p := range ports {
		_ = p.IO.Close()
	}
}
