package checkrouteros

import (
	"fmt"
	"strconv"
)

// Metric is a single sample produced by a probe. The value is either a
// float64, a bool or a raw string, it is read-only once yielded.
type Metric struct {
	Name  string
	Value interface{}
	Unit  string
	Min   *float64
	Max   *float64
}

// Float64Value converts the sample into a number. Calling this on a
// metric routed into a scalar context with a non-numeric value is a
// programming error and fails loud.
func (m *Metric) Float64Value() float64 {
	switch val := m.Value.(type) {
	case float64:
		return val
	case int64:
		return float64(val)
	case int:
		return float64(val)
	case bool:
		if val {
			return 1
		}

		return 0
	}

	num, err := strconv.ParseFloat(fmt.Sprintf("%v", m.Value), 64)
	if err != nil {
		evaluationPanic("metric %s: cannot use %v (%T) as number", m.Name, m.Value, m.Value)
	}

	return num
}

// ValueString formats the sample the way it appears in hints and perfdata.
func (m *Metric) ValueString() string {
	switch val := m.Value.(type) {
	case bool:
		if val {
			return "1"
		}

		return "0"
	case string:
		return val
	}

	return strconv.FormatFloat(m.Float64Value(), 'f', -1, 64)
}

func float64p(val float64) *float64 {
	return &val
}
