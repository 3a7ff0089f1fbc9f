// Package config parses the switch process's command line and
// environment into a runnable Config, per spec.md 6's process
// invocation contract: "<switch> <bridge-id> <iface-1> ... <iface-P>".
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/oshothebig/l2switch/switch/protocol"
)

// Config is the fully parsed, validated set of arguments the switch
// needs to start. BridgeID and Interfaces come only from positional
// arguments (spec.md 1: "CLI parsing beyond accepting the switch's
// bridge identifier and interface names" is explicitly out of scope);
// the tunables below are ambient convenience on top of that, bindable
// via flag or SWITCH_* environment variable through viper.
type Config struct {
	BridgeID      protocol.BridgeID
	Interfaces    []string
	RecvTimeout   time.Duration
	HelloInterval time.Duration
	LogLevel      string
}

// NewRootCommand builds the switch process's single cobra command.
// run is invoked once args have been parsed and validated into a
// Config; it is injected so main.go controls wiring and shutdown.
func NewRootCommand(run func(Config) error) *cobra.Command {
	v := viper.New()
	v.SetEnvPrefix("switch")
	v.AutomaticEnv()

	cmd := &cobra.Command{
		Use:   "switch <bridge-id> <iface-1> [iface-2 ...]",
		Short: "Self-learning, loop-free L2 Ethernet switch",
		Long: `switch runs one self-learning, loop-free L2 Ethernet switch process.
It polls every listed interface in round robin, elects a root bridge
by reduced spanning-tree, and forwards/floods frames between hosts
while keeping the active topology loop free.`,
		Args:          cobra.MinimumNArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := fromArgs(cmd, v, args)
			if err != nil {
				return err
			}
			return run(cfg)
		},
	}

	cmd.Flags().Duration("recv-timeout", protocol.DefaultRecvTimeout,
		"per-port receive poll timeout T (bindable via SWITCH_RECV_TIMEOUT)")
	cmd.Flags().Duration("hello-interval", protocol.DefaultHelloInterval,
		"period H between self-BPDU emissions (bindable via SWITCH_HELLO_INTERVAL)")
	cmd.Flags().String("log-level", "info",
		"panic, fatal, error, warn, info, or debug (bindable via SWITCH_LOG_LEVEL)")

	_ = v.BindPFlag("recv_timeout", cmd.Flags().Lookup("recv-timeout"))
	_ = v.BindPFlag("hello_interval", cmd.Flags().Lookup("hello-interval"))
	_ = v.BindPFlag("log_level", cmd.Flags().Lookup("log-level"))

	return cmd
}

func fromArgs(cmd *cobra.Command, v *viper.Viper, args []string) (Config, error) {
	bridgeID, err := protocol.ParseBridgeID(args[0])
	if err != nil {
		return Config{}, fmt.Errorf("invalid bridge id: %w", err)
	}
	interfaces := args[1:]
	for _, ifname := range interfaces {
		if strings.TrimSpace(ifname) == "" {
			return Config{}, fmt.Errorf("empty interface name in argument list")
		}
	}

	return Config{
		BridgeID:      bridgeID,
		Interfaces:    interfaces,
		RecvTimeout:   v.GetDuration("recv_timeout"),
		HelloInterval: v.GetDuration("hello_interval"),
		LogLevel:      v.GetString("log_level"),
	}, nil
}
