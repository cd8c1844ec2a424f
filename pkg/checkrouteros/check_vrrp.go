package checkrouteros

// InterfaceVrrpProbe reads the redundancy state of a single vrrp
// interface. The disabled flag is always reported, the remaining flags
// only exist while the interface is enabled.
type InterfaceVrrpProbe struct {
	dial  Dialer
	iface string
}

func NewInterfaceVrrpProbe(dial Dialer, iface string) *InterfaceVrrpProbe {
	return &InterfaceVrrpProbe{dial: dial, iface: iface}
}

func (p *InterfaceVrrpProbe) ServiceName() string {
	return "VRRP"
}

func (p *InterfaceVrrpProbe) Probe() ([]Metric, error) {
	device, err := p.dial()
	if err != nil {
		return nil, err
	}
	defer device.Close()

	rows, err := device.Query(
		"/interface/vrrp",
		[]string{"name", "backup", "disabled", "invalid", "master", "running"},
		map[string]string{"name": p.iface},
	)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, probeErrorf("no vrrp interface named %s found", p.iface)
	}
	row := rows[0]

	rawDisabled, err := requireField(row, "disabled")
	if err != nil {
		return nil, err
	}
	disabled := parseDeviceBool(rawDisabled)

	metrics := []Metric{{Name: "disabled", Value: disabled}}
	if disabled {
		return metrics, nil
	}

	for _, name := range []string{"backup", "invalid", "master", "running"} {
		raw, ok := row[name]
		if !ok {
			continue
		}
		metrics = append(metrics, Metric{Name: name, Value: parseDeviceBool(raw)})
	}

	return metrics, nil
}

// VrrpDisabledContext warns when the vrrp interface is disabled.
type VrrpDisabledContext struct {
	BooleanContext
}

func NewVrrpDisabledContext(name string) *VrrpDisabledContext {
	return &VrrpDisabledContext{BooleanContext{name: name}}
}

func (c *VrrpDisabledContext) Evaluate(metric Metric) Result {
	if truthy(metric.Value) {
		return Result{Status: StateWarning, Metric: metric, Hint: "VRRP is disabled"}
	}

	return Result{Status: StateOK, Metric: metric}
}

// VrrpInvalidContext warns on an invalid vrrp configuration.
type VrrpInvalidContext struct {
	BooleanContext
}

func NewVrrpInvalidContext(name string) *VrrpInvalidContext {
	return &VrrpInvalidContext{BooleanContext{name: name}}
}

func (c *VrrpInvalidContext) Evaluate(metric Metric) Result {
	if truthy(metric.Value) {
		return Result{Status: StateWarning, Metric: metric, Hint: "VRRP config is invalid"}
	}

	return Result{Status: StateOK, Metric: metric}
}

// VrrpMasterContext warns when mastership is required but the interface
// is not the current master.
type VrrpMasterContext struct {
	BooleanContext
	masterMust bool
}

func NewVrrpMasterContext(name string, masterMust bool) *VrrpMasterContext {
	return &VrrpMasterContext{BooleanContext: BooleanContext{name: name}, masterMust: masterMust}
}

func (c *VrrpMasterContext) Evaluate(metric Metric) Result {
	if !truthy(metric.Value) && c.masterMust {
		return Result{Status: StateWarning, Metric: metric, Hint: "VRRP interface is not master"}
	}

	return Result{Status: StateOK, Metric: metric}
}

// NewInterfaceVrrpCheck assembles the interface.vrrp check with its
// policy contexts.
func NewInterfaceVrrpCheck(dial Dialer, iface string, masterMust bool) *Check {
	check := NewCheck(NewInterfaceVrrpProbe(dial, iface))
	check.AddContext(
		NewBooleanContext("backup"),
		NewVrrpDisabledContext("disabled"),
		NewVrrpInvalidContext("invalid"),
		NewVrrpMasterContext("master", masterMust),
		NewBooleanContext("running"),
	)

	return check
}
