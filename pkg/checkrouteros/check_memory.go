package checkrouteros

import (
	"fmt"
	"regexp"
)

// SystemMemoryProbe reads free and total memory from /system/resource and
// derives the used amount. The total is kept around as reference for
// percent thresholds.
type SystemMemoryProbe struct {
	dial   Dialer
	total  float64
	probed bool
}

func NewSystemMemoryProbe(dial Dialer) *SystemMemoryProbe {
	return &SystemMemoryProbe{dial: dial}
}

func (p *SystemMemoryProbe) ServiceName() string {
	return "MEMORY"
}

// TotalMemory is the capability handed to percent contexts. It only
// works after the probe ran, using it earlier is a programming error.
func (p *SystemMemoryProbe) TotalMemory() (float64, error) {
	if !p.probed {
		return 0, fmt.Errorf("total memory referenced before the probe ran")
	}

	return p.total, nil
}

func (p *SystemMemoryProbe) Probe() ([]Metric, error) {
	device, err := p.dial()
	if err != nil {
		return nil, err
	}
	defer device.Close()

	rows, err := device.Query("/system/resource", []string{"free-memory", "total-memory"}, nil)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, probeErrorf("empty response from /system/resource")
	}
	row := rows[0]

	rawFree, err := requireField(row, "free-memory")
	if err != nil {
		return nil, err
	}
	free, err := parseDeviceFloat("free-memory", rawFree)
	if err != nil {
		return nil, err
	}
	rawTotal, err := requireField(row, "total-memory")
	if err != nil {
		return nil, err
	}
	total, err := parseDeviceFloat("total-memory", rawTotal)
	if err != nil {
		return nil, err
	}

	p.total = total
	p.probed = true

	return []Metric{
		{Name: "free", Value: free, Unit: "B", Min: float64p(0), Max: float64p(total)},
		{Name: "used", Value: total - free, Unit: "B", Min: float64p(0), Max: float64p(total)},
	}, nil
}

var bareNumberSpec = regexp.MustCompile(`^\d+$`)

// memoryThresholdSpec treats bare numbers as percent of the total
// memory, "70" and "70%" are the same threshold. Everything else passes
// through the range grammar untouched.
func memoryThresholdSpec(spec string) string {
	if bareNumberSpec.MatchString(spec) {
		return spec + "%"
	}

	return spec
}

// NewSystemMemoryCheck assembles the system.memory check. With used=true
// the percent thresholds apply to the used amount, otherwise to the free
// amount as lower bounds, the other metric stays informational. The
// summary reports the thresholded metric only.
func NewSystemMemoryCheck(dial Dialer, used bool, warning, critical string) (*Check, error) {
	probe := NewSystemMemoryProbe(dial)
	check := NewCheck(probe)

	warning = memoryThresholdSpec(warning)
	critical = memoryThresholdSpec(critical)

	if used {
		usedCtx, err := NewScalarPercentContext("used", warning, critical, probe.TotalMemory)
		if err != nil {
			return nil, err
		}
		check.AddContext(MustScalarContext("free"), usedCtx)
		check.SetSummary(NamedSummary{ResultNames: []string{"used"}})

		return check, nil
	}

	freeCtx, err := NewScalarPercentContext("free", warning+":", critical+":", probe.TotalMemory)
	if err != nil {
		return nil, err
	}
	check.AddContext(freeCtx, MustScalarContext("used"))
	check.SetSummary(NamedSummary{ResultNames: []string{"free"}})

	return check, nil
}
