package commands

import (
	"github.com/consol-monitoring/check_routeros/pkg/checkrouteros"
	"github.com/spf13/cobra"
)

func init() {
	var (
		warning  string
		critical string
	)

	uptimeCmd := &cobra.Command{
		Use:   "system.uptime",
		Short: "Check the uptime of the device",
		Long: `system.uptime reports the device uptime in seconds.

Thresholds are optional, lower bound specs like --warning 600: alert on
a recently rebooted device.
`,
		Run: func(_ *cobra.Command, _ []string) {
			exitCode = runCheck(func() (*checkrouteros.Check, error) {
				return checkrouteros.NewSystemUptimeCheck(dialer(), warning, critical)
			})
		},
	}
	uptimeCmd.Flags().StringVar(&warning, "warning", "", "warning threshold in seconds")
	uptimeCmd.Flags().StringVar(&critical, "critical", "", "critical threshold in seconds")
	rootCmd.AddCommand(uptimeCmd)
}
