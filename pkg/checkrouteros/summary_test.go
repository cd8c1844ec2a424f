package checkrouteros

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultSummary(t *testing.T) {
	summary := DefaultSummary{}

	assert.Equal(t, "", summary.Ok(nil))
	assert.Equal(t, "first", summary.Ok([]Result{{Hint: "first"}, {Hint: "second"}}))

	problem := summary.Problem([]Result{
		{Status: StateOK, Hint: "fine"},
		{Status: StateCritical, Hint: "broken"},
		{Status: StateWarning, Hint: "wobbly"},
	})
	assert.Equal(t, "broken", problem, "the most severe result wins")
}

func TestNamedSummary(t *testing.T) {
	summary := NamedSummary{ResultNames: []string{"used"}}

	results := []Result{
		{Status: StateOK, Hint: "free is 200000000B", Metric: Metric{Name: "free", Unit: "B", Value: float64(200000000)}},
		{Status: StateOK, Hint: "used is 800000000B", Metric: Metric{Name: "used", Unit: "B", Value: float64(800000000)}},
	}

	ok := summary.Ok(results)
	assert.Contains(t, ok, "used is 800000000B")
	assert.NotContains(t, ok, "free is")
	assert.Contains(t, ok, "MiB", "byte metrics get a humanized size appended")
}

func TestNamedSummaryOrder(t *testing.T) {
	summary := NamedSummary{ResultNames: []string{"b", "a"}}

	results := []Result{
		{Hint: "a is 1", Metric: Metric{Name: "a"}},
		{Hint: "b is 2", Metric: Metric{Name: "b"}},
	}
	assert.Equal(t, "b is 2 a is 1", summary.Ok(results), "configured name order wins")
}
