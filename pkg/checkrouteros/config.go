package checkrouteros

import (
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultConnectionOptions returns the flag defaults, encryption and
// certificate verification are on unless switched off explicitly.
func DefaultConnectionOptions() ConnectionOptions {
	return ConnectionOptions{
		TLS:               true,
		TLSVerify:         true,
		TLSVerifyHostname: true,
	}
}

// LoadConnectionProfile reads connection options from a yaml file, so
// credentials do not have to live in the monitoring core's command
// definitions.
func LoadConnectionProfile(path string) (*ConnectionOptions, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, configErrorf("cannot read connection profile %s: %s", path, err.Error())
	}

	opts := DefaultConnectionOptions()
	if err := yaml.Unmarshal(data, &opts); err != nil {
		return nil, configErrorf("cannot parse connection profile %s: %s", path, err.Error())
	}

	return &opts, nil
}

// Merge overlays the profile under the command line. Every option whose
// flag was not set explicitly takes the profile value, so a profile can
// switch tls settings off while an explicit flag still wins.
func (o *ConnectionOptions) Merge(profile *ConnectionOptions, explicit func(flag string) bool) {
	if profile == nil {
		return
	}
	if !explicit("host") {
		o.Host = profile.Host
	}
	if !explicit("hostname") {
		o.Hostname = profile.Hostname
	}
	if !explicit("port") {
		o.Port = profile.Port
	}
	if !explicit("username") {
		o.Username = profile.Username
	}
	if !explicit("password") {
		o.Password = profile.Password
	}
	if !explicit("ssl") {
		o.TLS = profile.TLS
	}
	if !explicit("ssl-cafile") {
		o.TLSCAFile = profile.TLSCAFile
	}
	if !explicit("ssl-capath") {
		o.TLSCAPath = profile.TLSCAPath
	}
	if !explicit("ssl-force-no-certificate") {
		o.TLSNoCertificate = profile.TLSNoCertificate
	}
	if !explicit("ssl-verify") {
		o.TLSVerify = profile.TLSVerify
	}
	if !explicit("ssl-verify-hostname") {
		o.TLSVerifyHostname = profile.TLSVerifyHostname
	}
}
