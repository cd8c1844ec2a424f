package checkrouteros

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func memoryDevice(free, total string) *fakeDevice {
	return &fakeDevice{
		queryRows: map[string][]map[string]string{
			"/system/resource": {{"free-memory": free, "total-memory": total}},
		},
	}
}

func TestSystemMemoryProbe(t *testing.T) {
	probe := NewSystemMemoryProbe(fakeDialer(memoryDevice("200000000", "1000000000")))

	_, err := probe.TotalMemory()
	require.Error(t, err, "total is unavailable before the probe ran")

	metrics, err := probe.Probe()
	require.NoError(t, err)
	require.Len(t, metrics, 2)

	assert.Equal(t, "free", metrics[0].Name)
	assert.Equal(t, float64(200000000), metrics[0].Value)
	assert.Equal(t, "used", metrics[1].Name)
	assert.Equal(t, float64(800000000), metrics[1].Value)
	assert.Equal(t, "B", metrics[1].Unit)
	assert.Equal(t, float64(1000000000), *metrics[1].Max)

	total, err := probe.TotalMemory()
	require.NoError(t, err)
	assert.Equal(t, float64(1000000000), total)
}

func TestSystemMemoryCheckUsedWarning(t *testing.T) {
	// 800000000 of 1000000000 used = 80%, warning at 70%, critical at 90%
	check, err := NewSystemMemoryCheck(fakeDialer(memoryDevice("200000000", "1000000000")), true, "70", "90")
	require.NoError(t, err)

	result := check.Run()
	assert.Equal(t, StateWarning, result.Status)
	assert.Equal(t, 1, result.Status.ExitCode())
	assert.Contains(t, result.Output, "used is 800000000B")
	assert.Contains(t, result.Output, "MEMORY WARNING")

	output := string(result.BuildPluginOutput())
	assert.Contains(t, output, "'free'=200000000B;;;0;1000000000")
	assert.Contains(t, output, "'used'=800000000B;700000000;900000000;0;1000000000")
}

func TestSystemMemoryCheckUsedOk(t *testing.T) {
	check, err := NewSystemMemoryCheck(fakeDialer(memoryDevice("600000000", "1000000000")), true, "70", "90")
	require.NoError(t, err)

	result := check.Run()
	assert.Equal(t, StateOK, result.Status)
	assert.Contains(t, result.Output, "MEMORY OK - used is 400000000B")
	assert.NotContains(t, result.Output, "free is", "summary only reports the thresholded metric")
}

func TestSystemMemoryCheckUsedCritical(t *testing.T) {
	check, err := NewSystemMemoryCheck(fakeDialer(memoryDevice("50000000", "1000000000")), true, "70", "90")
	require.NoError(t, err)

	result := check.Run()
	assert.Equal(t, StateCritical, result.Status)
	assert.Equal(t, 2, result.Status.ExitCode())
}

func TestSystemMemoryCheckFreeSide(t *testing.T) {
	// 200000000 of 1000000000 free = 20%, warn below 30%, crit below 10%
	check, err := NewSystemMemoryCheck(fakeDialer(memoryDevice("200000000", "1000000000")), false, "30", "10")
	require.NoError(t, err)

	result := check.Run()
	assert.Equal(t, StateWarning, result.Status)
	assert.Contains(t, result.Output, "free is 200000000B")
}

func TestSystemMemoryCheckBadThreshold(t *testing.T) {
	check, err := NewSystemMemoryCheck(fakeDialer(memoryDevice("1", "2")), true, "70GiB", "90")
	require.Error(t, err)
	assert.Nil(t, check)

	cfgErr := &ConfigError{}
	assert.ErrorAs(t, err, &cfgErr)
}

func TestSystemMemoryCheckProbeFailure(t *testing.T) {
	check, err := NewSystemMemoryCheck(failingDialer(probeErrorf("connection to router failed")), true, "70", "90")
	require.NoError(t, err)

	result := check.Run()
	assert.Equal(t, StateUnknown, result.Status)
	assert.Equal(t, "MEMORY UNKNOWN - connection to router failed", result.Output)
}

func TestSystemMemoryCheckMissingField(t *testing.T) {
	device := &fakeDevice{
		queryRows: map[string][]map[string]string{
			"/system/resource": {{"free-memory": "200000000"}},
		},
	}
	check, err := NewSystemMemoryCheck(fakeDialer(device), true, "70", "90")
	require.NoError(t, err)

	result := check.Run()
	assert.Equal(t, StateUnknown, result.Status)
	assert.Contains(t, result.Output, "missing field total-memory")
}
