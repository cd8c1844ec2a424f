package commands

import (
	"github.com/consol-monitoring/check_routeros/pkg/checkrouteros"
	"github.com/spf13/cobra"
)

// thresholdsOnUsed selects the side the thresholds apply to, --free as
// well as --used=false switch to the free memory.
func thresholdsOnUsed(used, free bool) bool {
	return used && !free
}

func init() {
	var (
		used     bool
		free     bool
		warning  string
		critical string
	)

	memoryCmd := &cobra.Command{
		Use:   "system.memory",
		Short: "Check the memory usage of the device",
		Long: `system.memory compares the used (default) or free memory against
percent or absolute thresholds.

Thresholds are resolved against the total memory of the device, ex.:
--warning 70 --critical 90 alerts once more than 70%/90% of the total
memory is in use. Range specs like "0:800000000" select absolute byte
counts instead.
`,
		Run: func(_ *cobra.Command, _ []string) {
			exitCode = runCheck(func() (*checkrouteros.Check, error) {
				return checkrouteros.NewSystemMemoryCheck(dialer(), thresholdsOnUsed(used, free), warning, critical)
			})
		},
	}
	memoryCmd.Flags().BoolVar(&used, "used", true, "apply thresholds to the used memory")
	memoryCmd.Flags().BoolVar(&free, "free", false, "apply thresholds to the free memory instead")
	memoryCmd.Flags().StringVar(&warning, "warning", "", "warning threshold, percent or bytes")
	memoryCmd.Flags().StringVar(&critical, "critical", "", "critical threshold, percent or bytes")
	memoryCmd.MarkFlagsMutuallyExclusive("used", "free")
	_ = memoryCmd.MarkFlagRequired("warning")
	_ = memoryCmd.MarkFlagRequired("critical")
	rootCmd.AddCommand(memoryCmd)
}
