package checkrouteros

import (
	"fmt"
)

// Context decides the status of a single named metric and, independently,
// its performance data representation. Evaluation is pure, thresholds were
// already validated at parse time, so neither method returns an error:
// anything going wrong in here is a programming error and panics.
type Context interface {
	Name() string
	Evaluate(metric Metric) Result
	Performance(metric Metric) *PerfData
}

// TotalFunc supplies the reference total for percent thresholds. It is
// handed to the context at construction and called at evaluation time,
// after the probe produced the total.
type TotalFunc func() (float64, error)

// BooleanContext passes purely informational flag metrics through as OK
// and renders them as 0/1 performance values.
type BooleanContext struct {
	name string
}

func NewBooleanContext(name string) *BooleanContext {
	return &BooleanContext{name: name}
}

func (c *BooleanContext) Name() string {
	return c.name
}

func (c *BooleanContext) Evaluate(metric Metric) Result {
	return Result{Status: StateOK, Metric: metric}
}

func (c *BooleanContext) Performance(metric Metric) *PerfData {
	value := float64(0)
	if truthy(metric.Value) {
		value = 1
	}

	return &PerfData{Label: metric.Name, Value: value}
}

func truthy(value interface{}) bool {
	switch val := value.(type) {
	case bool:
		return val
	case string:
		return val != ""
	case float64:
		return val != 0
	case int64:
		return val != 0
	case nil:
		return false
	}

	return true
}

// ScalarContext checks a numeric metric against optional warning and
// critical ranges. A missing range never matches, so that tier always
// passes.
type ScalarContext struct {
	name     string
	warning  *Range
	critical *Range
}

// NewScalarContext fails with a ConfigError on malformed threshold specs,
// empty specs disable the respective tier.
func NewScalarContext(name, warning, critical string) (*ScalarContext, error) {
	warn, err := NewRange(warning)
	if err != nil {
		return nil, err
	}
	crit, err := NewRange(critical)
	if err != nil {
		return nil, err
	}

	return &ScalarContext{name: name, warning: warn, critical: crit}, nil
}

// MustScalarContext is a convenience wrapper for contexts without any
// thresholds which cannot fail.
func MustScalarContext(name string) *ScalarContext {
	ctx, err := NewScalarContext(name, "", "")
	if err != nil {
		panic(err)
	}

	return ctx
}

func (c *ScalarContext) Name() string {
	return c.name
}

func (c *ScalarContext) Evaluate(metric Metric) Result {
	return evaluateRanges(metric, c.warning, c.critical)
}

func (c *ScalarContext) Performance(metric Metric) *PerfData {
	return &PerfData{
		Label: metric.Name,
		Value: metric.Float64Value(),
		Unit:  metric.Unit,
		Warn:  c.warning.String(),
		Crit:  c.critical.String(),
		Min:   metric.Min,
		Max:   metric.Max,
	}
}

// ScalarPercentContext tiers exactly like ScalarContext but resolves
// percent tokens in its thresholds against a total fetched through the
// injected TotalFunc, ex.: "80%" of the devices total memory.
type ScalarPercentContext struct {
	name     string
	warning  *PercentRange
	critical *PercentRange
	total    TotalFunc
}

func NewScalarPercentContext(name, warning, critical string, total TotalFunc) (*ScalarPercentContext, error) {
	warn, err := NewPercentRange(warning)
	if err != nil {
		return nil, err
	}
	crit, err := NewPercentRange(critical)
	if err != nil {
		return nil, err
	}

	return &ScalarPercentContext{name: name, warning: warn, critical: crit, total: total}, nil
}

func (c *ScalarPercentContext) Name() string {
	return c.name
}

func (c *ScalarPercentContext) Evaluate(metric Metric) Result {
	warn, crit := c.resolveRanges()

	return evaluateRanges(metric, warn, crit)
}

func (c *ScalarPercentContext) Performance(metric Metric) *PerfData {
	// resolution happens here as well, performance data may be requested
	// without a prior evaluate. The resolved absolute ranges go into the
	// perfdata, graphing frontends cannot work with percent tokens.
	warn, crit := c.resolveRanges()

	return &PerfData{
		Label: metric.Name,
		Value: metric.Float64Value(),
		Unit:  metric.Unit,
		Warn:  warn.String(),
		Crit:  crit.String(),
		Min:   metric.Min,
		Max:   metric.Max,
	}
}

func (c *ScalarPercentContext) resolveRanges() (warn, crit *Range) {
	total, err := c.total()
	if err != nil {
		evaluationPanic("context %s: %s", c.name, err.Error())
	}

	warn, err = c.warning.Resolve(total)
	if err != nil {
		evaluationPanic("context %s: %s", c.name, err.Error())
	}
	crit, err = c.critical.Resolve(total)
	if err != nil {
		evaluationPanic("context %s: %s", c.name, err.Error())
	}

	return warn, crit
}

func evaluateRanges(metric Metric, warning, critical *Range) Result {
	value := metric.Float64Value()
	hint := fmt.Sprintf("%s is %s%s", metric.Name, metric.ValueString(), metric.Unit)

	switch {
	case critical.Check(value):
		return Result{
			Status: StateCritical,
			Metric: metric,
			Hint:   fmt.Sprintf("%s (outside range %s)", hint, critical.String()),
		}
	case warning.Check(value):
		return Result{
			Status: StateWarning,
			Metric: metric,
			Hint:   fmt.Sprintf("%s (outside range %s)", hint, warning.String()),
		}
	}

	return Result{Status: StateOK, Metric: metric, Hint: hint}
}
