package commands

import (
	"github.com/consol-monitoring/check_routeros/pkg/checkrouteros"
	"github.com/spf13/cobra"
)

func init() {
	var (
		name       string
		masterMust bool
	)

	vrrpCmd := &cobra.Command{
		Use:   "interface.vrrp",
		Short: "Check the redundancy state of a vrrp interface",
		Long: `interface.vrrp reads the state flags of a single vrrp interface.

A disabled or invalid interface raises a warning, with --master the
interface additionally has to be the current vrrp master. The backup and
running flags are reported as informational performance data.
`,
		Run: func(_ *cobra.Command, _ []string) {
			exitCode = runCheck(func() (*checkrouteros.Check, error) {
				return checkrouteros.NewInterfaceVrrpCheck(dialer(), name, masterMust), nil
			})
		},
	}
	vrrpCmd.Flags().StringVar(&name, "name", "", "name of the vrrp interface")
	vrrpCmd.Flags().BoolVar(&masterMust, "master", false, "require the interface to be vrrp master")
	_ = vrrpCmd.MarkFlagRequired("name")
	rootCmd.AddCommand(vrrpCmd)
}
