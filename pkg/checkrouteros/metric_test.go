package checkrouteros

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMetricFloat64Value(t *testing.T) {
	assert.Equal(t, float64(5), (&Metric{Name: "m", Value: float64(5)}).Float64Value())
	assert.Equal(t, float64(5), (&Metric{Name: "m", Value: int64(5)}).Float64Value())
	assert.Equal(t, float64(5), (&Metric{Name: "m", Value: "5"}).Float64Value())
	assert.Equal(t, float64(1), (&Metric{Name: "m", Value: true}).Float64Value())
	assert.Equal(t, float64(0), (&Metric{Name: "m", Value: false}).Float64Value())

	assert.Panics(t, func() {
		(&Metric{Name: "m", Value: "not a number"}).Float64Value()
	})
}

func TestMetricValueString(t *testing.T) {
	assert.Equal(t, "13426", (&Metric{Name: "m", Value: float64(13426)}).ValueString())
	assert.Equal(t, "0.5", (&Metric{Name: "m", Value: float64(0.5)}).ValueString())
	assert.Equal(t, "1", (&Metric{Name: "m", Value: true}).ValueString())
	assert.Equal(t, "raw", (&Metric{Name: "m", Value: "raw"}).ValueString())
}

func TestTruthy(t *testing.T) {
	assert.True(t, truthy(true))
	assert.True(t, truthy(float64(1)))
	assert.True(t, truthy("x"))
	assert.False(t, truthy(false))
	assert.False(t, truthy(float64(0)))
	assert.False(t, truthy(""))
	assert.False(t, truthy(nil))
}
