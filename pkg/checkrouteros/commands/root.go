package commands

import (
	"fmt"
	"os"
	"time"

	"github.com/consol-monitoring/check_routeros/pkg/checkrouteros"
	"github.com/spf13/cobra"
)

var (
	connOptions = checkrouteros.DefaultConnectionOptions()
	configFile  string
	verbose     int
	timeout     int
)

var rootCmd = &cobra.Command{
	Use:   "check_routeros [command]",
	Short: "Monitoring plugin for mikrotik routeros devices",
	Long: `check_routeros connects to the management api of a mikrotik
routeros device and checks operational metrics against configurable
thresholds.

Output and exit codes follow the monitoring-plugins conventions, so the
plugin works with naemon, nagios, icinga and friends.

Examples:

# check memory usage
check_routeros --host router1 --username monitor --password ... \
    system.memory --warning 70 --critical 90

# check that a vrrp interface is the current master
check_routeros --host router1 --username monitor --password ... \
    interface.vrrp --name vrrp1 --master
`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		checkrouteros.SetLogLevel(checkrouteros.VerbosityLogLevel(verbose))
		if configFile == "" {
			return nil
		}
		profile, err := checkrouteros.LoadConnectionProfile(configFile)
		if err != nil {
			return err
		}
		connOptions.Merge(profile, cmd.Flags().Changed)

		return nil
	},
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&connOptions.Host, "host", "", "host name or address of the device")
	pf.StringVar(&connOptions.Hostname, "hostname", "", "expected tls server name if it differs from --host")
	pf.IntVar(&connOptions.Port, "port", 0, "api port, defaults to 8728 or 8729 with ssl")
	pf.StringVar(&connOptions.Username, "username", "", "api user name")
	pf.StringVar(&connOptions.Password, "password", "", "api password")
	pf.BoolVar(&connOptions.TLS, "ssl", true, "connect to the encrypted api port")
	pf.StringVar(&connOptions.TLSCAFile, "ssl-cafile", "", "file with trusted ca certificates")
	pf.StringVar(&connOptions.TLSCAPath, "ssl-capath", "", "directory with trusted ca certificates")
	pf.BoolVar(&connOptions.TLSNoCertificate, "ssl-force-no-certificate", false, "accept devices without any certificate")
	pf.BoolVar(&connOptions.TLSVerify, "ssl-verify", true, "verify the device certificate")
	pf.BoolVar(&connOptions.TLSVerifyHostname, "ssl-verify-hostname", true, "verify the certificate host name")
	pf.StringVar(&configFile, "config", "", "yaml file with connection options")
	pf.CountVarP(&verbose, "verbose", "v", "increase log output, -vv and -vvv raise further")
	pf.IntVar(&timeout, "timeout", 10, "abort the whole check after this many seconds")
}

// exitCode is set by the subcommand that ran, Execute picks it up after
// cobra returns.
var exitCode int

// Execute runs the command line and returns the monitoring-plugins exit
// code. Usage and configuration problems map to UNKNOWN without ever
// touching the device.
func Execute() int {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stdout, "UNKNOWN - %s\n", err.Error())

		return checkrouteros.StateUnknown.ExitCode()
	}

	return exitCode
}

// dialer hands the connection options to the probes, the actual dial
// happens after all thresholds parsed fine.
func dialer() checkrouteros.Dialer {
	opts := connOptions

	return func() (checkrouteros.Device, error) {
		return checkrouteros.Connect(opts)
	}
}

// runCheck builds and executes a check, configuration errors surface
// before any connection attempt.
func runCheck(build func() (*checkrouteros.Check, error)) int {
	check, err := build()
	if err != nil {
		fmt.Fprintf(os.Stdout, "UNKNOWN - %s\n", err.Error())

		return checkrouteros.StateUnknown.ExitCode()
	}

	runtime := checkrouteros.NewRuntime(time.Duration(timeout) * time.Second)

	return runtime.Execute(check)
}
