package checkrouteros

import (
	"crypto/tls"
	"crypto/x509"
	"fmt"
	"net"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/go-routeros/routeros/v3"
)

const (
	// DefaultAPIPort is the routeros api port without encryption.
	DefaultAPIPort = 8728

	// DefaultAPITLSPort is the routeros api-ssl port.
	DefaultAPITLSPort = 8729
)

// Device is the narrow view of the routeros management api the probes
// work against. Query maps to a "<path>/print" call with optional
// property list and query words, Command runs plain commands like /ping.
type Device interface {
	Query(path string, props []string, where map[string]string) ([]map[string]string, error)
	Command(cmd string, args map[string]string) ([]map[string]string, error)
	Close() error
}

// Dialer connects to the device on demand, the connection is only opened
// once all thresholds parsed fine.
type Dialer func() (Device, error)

// ConnectionOptions describe how to reach the routeros api, either from
// command line flags or from a yaml connection profile.
type ConnectionOptions struct {
	Host     string `yaml:"host"`
	Hostname string `yaml:"hostname"`
	Port     int    `yaml:"port"`
	Username string `yaml:"username"`
	Password string `yaml:"password"`

	TLS               bool   `yaml:"ssl"`
	TLSCAFile         string `yaml:"ssl-cafile"`
	TLSCAPath         string `yaml:"ssl-capath"`
	TLSNoCertificate  bool   `yaml:"ssl-force-no-certificate"`
	TLSVerify         bool   `yaml:"ssl-verify"`
	TLSVerifyHostname bool   `yaml:"ssl-verify-hostname"`
}

// Connect dials the device api. Plain connections default to port 8728,
// encrypted ones to 8729.
func Connect(opts ConnectionOptions) (Device, error) {
	if opts.Host == "" {
		return nil, configErrorf("no host given")
	}
	if opts.Username == "" {
		return nil, configErrorf("no username given")
	}

	port := opts.Port
	if port == 0 {
		port = DefaultAPIPort
		if opts.TLS {
			port = DefaultAPITLSPort
		}
	}
	address := net.JoinHostPort(opts.Host, strconv.Itoa(port))

	log.Infof("connecting to device %s", address)

	if !opts.TLS {
		client, err := routeros.Dial(address, opts.Username, opts.Password)
		if err != nil {
			return nil, &ProbeError{Message: fmt.Sprintf("connection to %s failed", address), Err: err}
		}

		return &routerosDevice{client: client}, nil
	}

	tlsConfig, err := buildTLSConfig(opts)
	if err != nil {
		return nil, err
	}
	client, err := routeros.DialTLS(address, opts.Username, opts.Password, tlsConfig)
	if err != nil {
		return nil, &ProbeError{Message: fmt.Sprintf("tls connection to %s failed", address), Err: err}
	}

	return &routerosDevice{client: client}, nil
}

func buildTLSConfig(opts ConnectionOptions) (*tls.Config, error) {
	serverName := opts.Hostname
	if serverName == "" {
		serverName = opts.Host
	}

	tlsConfig := &tls.Config{
		ServerName: serverName,
		MinVersion: tls.VersionTLS12,
	}

	switch {
	case opts.TLSNoCertificate, !opts.TLSVerify:
		tlsConfig.InsecureSkipVerify = true
	case !opts.TLSVerifyHostname:
		// verify the chain but not the host name
		tlsConfig.InsecureSkipVerify = true
		tlsConfig.VerifyPeerCertificate = verifyChainOnly(tlsConfig)
	}

	if opts.TLSCAFile != "" || opts.TLSCAPath != "" {
		pool, err := loadCertPool(opts.TLSCAFile, opts.TLSCAPath)
		if err != nil {
			return nil, err
		}
		tlsConfig.RootCAs = pool
	}

	return tlsConfig, nil
}

func verifyChainOnly(tlsConfig *tls.Config) func(rawCerts [][]byte, _ [][]*x509.Certificate) error {
	return func(rawCerts [][]byte, _ [][]*x509.Certificate) error {
		certs := make([]*x509.Certificate, 0, len(rawCerts))
		for _, raw := range rawCerts {
			cert, err := x509.ParseCertificate(raw)
			if err != nil {
				return fmt.Errorf("failed to parse peer certificate: %s", err.Error())
			}
			certs = append(certs, cert)
		}
		if len(certs) == 0 {
			return fmt.Errorf("no peer certificate presented")
		}

		pool := x509.NewCertPool()
		for _, cert := range certs[1:] {
			pool.AddCert(cert)
		}
		opts := x509.VerifyOptions{Intermediates: pool}
		if tlsConfig.RootCAs != nil {
			opts.Roots = tlsConfig.RootCAs
		}
		_, err := certs[0].Verify(opts)

		return err
	}
}

func loadCertPool(caFile, caPath string) (*x509.CertPool, error) {
	pool := x509.NewCertPool()

	files := make([]string, 0)
	if caFile != "" {
		files = append(files, caFile)
	}
	if caPath != "" {
		entries, err := os.ReadDir(caPath)
		if err != nil {
			return nil, configErrorf("cannot read ca path %s: %s", caPath, err.Error())
		}
		for _, entry := range entries {
			if !entry.IsDir() {
				files = append(files, filepath.Join(caPath, entry.Name()))
			}
		}
	}

	for _, file := range files {
		pem, err := os.ReadFile(file)
		if err != nil {
			return nil, configErrorf("cannot read ca file %s: %s", file, err.Error())
		}
		if !pool.AppendCertsFromPEM(pem) {
			return nil, configErrorf("no certificates found in %s", file)
		}
	}

	return pool, nil
}

// routerosDevice adapts the go-routeros client to the Device interface.
type routerosDevice struct {
	client *routeros.Client
}

func (d *routerosDevice) Query(path string, props []string, where map[string]string) ([]map[string]string, error) {
	words := []string{path + "/print"}
	if len(props) > 0 {
		words = append(words, "=.proplist="+strings.Join(props, ","))
	}
	for _, key := range sortedKeys(where) {
		words = append(words, "?"+key+"="+where[key])
	}

	return d.run(words)
}

func (d *routerosDevice) Command(cmd string, args map[string]string) ([]map[string]string, error) {
	words := []string{cmd}
	for _, key := range sortedKeys(args) {
		words = append(words, "="+key+"="+args[key])
	}

	return d.run(words)
}

func (d *routerosDevice) run(words []string) ([]map[string]string, error) {
	log.Debugf("api call: %v", words)
	reply, err := d.client.Run(words...)
	if err != nil {
		return nil, &ProbeError{Message: "api call failed", Err: err}
	}

	rows := make([]map[string]string, 0, len(reply.Re))
	for _, sentence := range reply.Re {
		rows = append(rows, sentence.Map)
	}

	return rows, nil
}

func (d *routerosDevice) Close() error {
	d.client.Close()

	return nil
}

func sortedKeys(data map[string]string) []string {
	keys := make([]string, 0, len(data))
	for key := range data {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	return keys
}
