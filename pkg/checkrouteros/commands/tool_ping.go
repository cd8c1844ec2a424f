package commands

import (
	"github.com/consol-monitoring/check_routeros/pkg/checkrouteros"
	"github.com/spf13/cobra"
)

func init() {
	var (
		address      string
		lossWarning  string
		lossCritical string
		ttlWarning   string
		ttlCritical  string
	)

	pingCmd := &cobra.Command{
		Use:   "tool.ping",
		Short: "Check icmp reachability from the device",
		Long: `tool.ping runs the routers /ping command against the given address.

Packet loss, sent and received counts are always reported, round trip
times, packet size and ttl only when at least one reply came back.
`,
		Run: func(_ *cobra.Command, _ []string) {
			exitCode = runCheck(func() (*checkrouteros.Check, error) {
				return checkrouteros.NewToolPingCheck(dialer(), address, lossWarning, lossCritical, ttlWarning, ttlCritical)
			})
		},
	}
	pingCmd.Flags().StringVar(&address, "address", "", "address to ping from the device")
	pingCmd.Flags().StringVar(&lossWarning, "packet-loss-warning", "", "warning threshold for packet loss in percent")
	pingCmd.Flags().StringVar(&lossCritical, "packet-loss-critical", "", "critical threshold for packet loss in percent")
	pingCmd.Flags().StringVar(&ttlWarning, "ttl-warning", "", "warning threshold for the reply ttl")
	pingCmd.Flags().StringVar(&ttlCritical, "ttl-critical", "", "critical threshold for the reply ttl")
	_ = pingCmd.MarkFlagRequired("address")
	rootCmd.AddCommand(pingCmd)
}
