package checkrouteros

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// staticProbe feeds prepared metrics into a check.
type staticProbe struct {
	name    string
	metrics []Metric
	err     error
}

func (p *staticProbe) ServiceName() string {
	return p.name
}

func (p *staticProbe) Probe() ([]Metric, error) {
	return p.metrics, p.err
}

func TestCheckRunWorstState(t *testing.T) {
	warnCtx, err := NewScalarContext("load", ":1", "")
	require.NoError(t, err)

	check := NewCheck(&staticProbe{name: "TEST", metrics: []Metric{
		{Name: "ok_metric", Value: float64(1)},
		{Name: "load", Value: float64(5)},
	}})
	check.AddContext(MustScalarContext("ok_metric"), warnCtx)

	result := check.Run()
	assert.Equal(t, StateWarning, result.Status)
	assert.Equal(t, "TEST WARNING - load is 5 (outside range :1)", result.Output)
	assert.Len(t, result.Results, 2)
	assert.Len(t, result.PerfData, 2)
}

func TestCheckSkipsUnregisteredMetrics(t *testing.T) {
	check := NewCheck(&staticProbe{name: "TEST", metrics: []Metric{
		{Name: "known", Value: float64(1)},
		{Name: "informational", Value: float64(2)},
	}})
	check.AddContext(MustScalarContext("known"))

	result := check.Run()
	assert.Equal(t, StateOK, result.Status)
	assert.Len(t, result.Results, 1, "metrics without context are skipped")
	assert.Len(t, result.PerfData, 1)
}

func TestCheckProbeErrorTurnsUnknown(t *testing.T) {
	check := NewCheck(&staticProbe{name: "TEST", err: probeErrorf("device unreachable")})
	check.AddContext(MustScalarContext("anything"))

	result := check.Run()
	assert.Equal(t, StateUnknown, result.Status)
	assert.Equal(t, "TEST UNKNOWN - device unreachable", result.Output)
	assert.Empty(t, result.PerfData)
	assert.Equal(t, 3, result.Status.ExitCode())
}

func TestCheckProbeErrorAbortsRemainingProbes(t *testing.T) {
	second := &staticProbe{name: "SECOND", metrics: []Metric{{Name: "late", Value: float64(1)}}}
	check := NewCheck(
		&staticProbe{name: "FIRST", err: fmt.Errorf("connection reset")},
		second,
	)

	result := check.Run()
	assert.Equal(t, StateUnknown, result.Status)
	assert.Equal(t, "FIRST UNKNOWN - connection reset", result.Output)
	assert.Empty(t, result.Results)
}

func TestCheckPluginOutputWithPerfData(t *testing.T) {
	check := NewCheck(&staticProbe{name: "TEST", metrics: []Metric{
		{Name: "a", Value: float64(1), Min: float64p(0)},
		{Name: "b", Value: float64(2)},
	}})
	check.AddContext(MustScalarContext("a"), MustScalarContext("b"))

	result := check.Run()
	assert.Equal(t, "TEST OK - a is 1 |'a'=1;;;0 'b'=2", string(result.BuildPluginOutput()))
}

func TestCheckUnknownDoesNotOverrideWarning(t *testing.T) {
	results := []Result{
		{Status: StateOK},
		{Status: StateWarning},
		{Status: StateOK},
		{Status: StateUnknown},
	}
	status := StateOK
	for i := range results {
		status = WorstStatus(status, results[i].Status)
	}
	assert.Equal(t, StateWarning, status)
}
