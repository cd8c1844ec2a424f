package checkrouteros

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func uptimeDevice(uptime string) *fakeDevice {
	return &fakeDevice{
		queryRows: map[string][]map[string]string{
			"/system/resource": {{"uptime": uptime}},
		},
	}
}

func TestSystemUptimeProbe(t *testing.T) {
	probe := NewSystemUptimeProbe(fakeDialer(uptimeDevice("3h43m46s")))

	metrics, err := probe.Probe()
	require.NoError(t, err)
	require.Len(t, metrics, 1)

	assert.Equal(t, "uptime", metrics[0].Name)
	assert.Equal(t, float64(3*3600+43*60+46), metrics[0].Value)
	assert.Equal(t, "s", metrics[0].Unit)
}

func TestSystemUptimeCheckOk(t *testing.T) {
	check, err := NewSystemUptimeCheck(fakeDialer(uptimeDevice("3h43m46s")), "", "")
	require.NoError(t, err)

	result := check.Run()
	assert.Equal(t, StateOK, result.Status)
	assert.Equal(t, "UPTIME OK - uptime is 13426s |'uptime'=13426s;;;0", string(result.BuildPluginOutput()))
}

func TestSystemUptimeCheckRecentReboot(t *testing.T) {
	check, err := NewSystemUptimeCheck(fakeDialer(uptimeDevice("0h5m12s")), "600:", "120:")
	require.NoError(t, err)

	result := check.Run()
	assert.Equal(t, StateWarning, result.Status)
	assert.Contains(t, result.Output, "uptime is 312s")
}

func TestSystemUptimeCheckMalformed(t *testing.T) {
	check, err := NewSystemUptimeCheck(fakeDialer(uptimeDevice("about a week")), "", "")
	require.NoError(t, err)

	runtime := NewRuntime(10 * time.Second)
	out := &bytes.Buffer{}
	runtime.Output = out

	code := runtime.Execute(check)
	assert.Equal(t, 3, code)
	assert.Contains(t, out.String(), "UPTIME UNKNOWN - unable to parse uptime: about a week")
}
