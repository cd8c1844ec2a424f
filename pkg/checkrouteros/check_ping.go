package checkrouteros

import "strconv"

// ToolPingProbe runs the routers own /ping command against a target
// address. Round trip and ttl metrics only exist when at least one reply
// came back, they are withheld on total packet loss.
type ToolPingProbe struct {
	dial    Dialer
	address string
	packets int64
}

func NewToolPingProbe(dial Dialer, address string) *ToolPingProbe {
	return &ToolPingProbe{dial: dial, address: address, packets: 1}
}

func (p *ToolPingProbe) ServiceName() string {
	return "PING"
}

func (p *ToolPingProbe) Probe() ([]Metric, error) {
	device, err := p.dial()
	if err != nil {
		return nil, err
	}
	defer device.Close()

	rows, err := device.Command("/ping", map[string]string{
		"address": p.address,
		"count":   strconv.FormatInt(p.packets, 10),
	})
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, probeErrorf("no response from /ping command")
	}

	// the device streams one row per packet, the last one carries the
	// final statistics
	row := rows[len(rows)-1]

	packetLoss, err := requireDeviceFloat(row, "packet-loss")
	if err != nil {
		return nil, err
	}
	sent, err := requireDeviceFloat(row, "sent")
	if err != nil {
		return nil, err
	}
	received, err := requireDeviceFloat(row, "received")
	if err != nil {
		return nil, err
	}

	metrics := []Metric{
		{Name: "packet_loss", Value: packetLoss, Unit: "%", Min: float64p(0), Max: float64p(100)},
		{Name: "sent", Value: sent, Min: float64p(0), Max: float64p(float64(p.packets))},
		{Name: "received", Value: received, Min: float64p(0), Max: float64p(float64(p.packets))},
	}

	if received <= 0 {
		return metrics, nil
	}

	for _, rtt := range []struct{ field, name string }{
		{"min-rtt", "rtt_min"},
		{"max-rtt", "rtt_max"},
		{"avg-rtt", "rtt_avg"},
	} {
		raw, err := requireField(row, rtt.field)
		if err != nil {
			return nil, err
		}
		value, _, err := stripTimeValue(raw)
		if err != nil {
			return nil, err
		}
		metrics = append(metrics, Metric{Name: rtt.name, Value: value, Min: float64p(0)})
	}

	size, err := requireDeviceFloat(row, "size")
	if err != nil {
		return nil, err
	}
	metrics = append(metrics, Metric{Name: "size", Value: size})

	ttl, err := requireDeviceFloat(row, "ttl")
	if err != nil {
		return nil, err
	}
	metrics = append(metrics, Metric{Name: "ttl", Value: ttl, Min: float64p(0), Max: float64p(255)})

	return metrics, nil
}

func requireDeviceFloat(row map[string]string, field string) (float64, error) {
	raw, err := requireField(row, field)
	if err != nil {
		return 0, err
	}

	return parseDeviceFloat(field, raw)
}

// NewToolPingCheck assembles the tool.ping check, thresholds are optional
// and usually apply to packet loss percentage and ttl.
func NewToolPingCheck(dial Dialer, address, lossWarning, lossCritical, ttlWarning, ttlCritical string) (*Check, error) {
	lossCtx, err := NewScalarContext("packet_loss", lossWarning, lossCritical)
	if err != nil {
		return nil, err
	}
	ttlCtx, err := NewScalarContext("ttl", ttlWarning, ttlCritical)
	if err != nil {
		return nil, err
	}

	check := NewCheck(NewToolPingProbe(dial, address))
	check.AddContext(
		lossCtx,
		MustScalarContext("sent"),
		MustScalarContext("received"),
		MustScalarContext("rtt_avg"),
		MustScalarContext("rtt_min"),
		MustScalarContext("rtt_max"),
		MustScalarContext("size"),
		ttlCtx,
	)

	return check, nil
}
