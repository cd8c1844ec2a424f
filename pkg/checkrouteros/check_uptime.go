package checkrouteros

// SystemUptimeProbe reads the device uptime from /system/resource.
type SystemUptimeProbe struct {
	dial Dialer
}

func NewSystemUptimeProbe(dial Dialer) *SystemUptimeProbe {
	return &SystemUptimeProbe{dial: dial}
}

func (p *SystemUptimeProbe) ServiceName() string {
	return "UPTIME"
}

func (p *SystemUptimeProbe) Probe() ([]Metric, error) {
	device, err := p.dial()
	if err != nil {
		return nil, err
	}
	defer device.Close()

	rows, err := device.Query("/system/resource", []string{"uptime"}, nil)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, probeErrorf("empty response from /system/resource")
	}

	raw, err := requireField(rows[0], "uptime")
	if err != nil {
		return nil, err
	}
	uptime, err := parseDeviceUptime(raw)
	if err != nil {
		return nil, err
	}

	return []Metric{
		{Name: "uptime", Value: uptime, Unit: "s", Min: float64p(0)},
	}, nil
}

// NewSystemUptimeCheck assembles the system.uptime check. Thresholds are
// optional, a freshly rebooted router is usually caught with lower bound
// specs like "600:".
func NewSystemUptimeCheck(dial Dialer, warning, critical string) (*Check, error) {
	ctx, err := NewScalarContext("uptime", warning, critical)
	if err != nil {
		return nil, err
	}

	check := NewCheck(NewSystemUptimeProbe(dial))
	check.AddContext(ctx)

	return check, nil
}
