package checkrouteros

import (
	"fmt"
	"strings"
)

// Probe fetches data from the device and materializes it into an ordered,
// finite list of metrics. Failures are reported as ProbeError.
type Probe interface {
	ServiceName() string
	Probe() ([]Metric, error)
}

type checkPhase int

const (
	phaseInit checkPhase = iota
	phaseProbing
	phaseEvaluating
	phaseDone
	phaseFailed
)

// Check runs its probes, routes every produced metric through the context
// registered under the exact metric name and reduces all results into one
// overall verdict. Metrics without a registered context are informational
// and skipped.
type Check struct {
	probes   []Probe
	contexts map[string]Context
	summary  Summary
	phase    checkPhase
}

func NewCheck(probes ...Probe) *Check {
	return &Check{
		probes:   probes,
		contexts: make(map[string]Context),
		summary:  DefaultSummary{},
		phase:    phaseInit,
	}
}

// AddContext registers a context under its metric name, the last one
// registered for a name wins.
func (c *Check) AddContext(contexts ...Context) {
	for _, ctx := range contexts {
		c.contexts[ctx.Name()] = ctx
	}
}

// SetSummary replaces the default summary renderer.
func (c *Check) SetSummary(summary Summary) {
	c.summary = summary
}

// Name returns the service name used as prefix of the output line.
func (c *Check) Name() string {
	if len(c.probes) == 0 {
		return "CHECK"
	}

	return c.probes[0].ServiceName()
}

// Run executes all probes and evaluations. A probe error aborts the
// remaining probes and yields an UNKNOWN verdict carrying the failure, a
// context failure is a programming error and propagates as panic.
func (c *Check) Run() *CheckResult {
	res := &CheckResult{Status: StateOK}

	c.phase = phaseProbing
	metrics := make([]Metric, 0)
	for _, probe := range c.probes {
		log.Debugf("running probe %s", probe.ServiceName())
		probed, err := probe.Probe()
		if err != nil {
			c.phase = phaseFailed
			log.Debugf("probe %s failed: %s", probe.ServiceName(), err.Error())

			return c.failResult(err)
		}
		metrics = append(metrics, probed...)
	}

	c.phase = phaseEvaluating
	for i := range metrics {
		ctx, ok := c.contexts[metrics[i].Name]
		if !ok {
			log.Tracef("no context registered for metric %s, skipping", metrics[i].Name)

			continue
		}
		res.Results = append(res.Results, ctx.Evaluate(metrics[i]))
		if perf := ctx.Performance(metrics[i]); perf != nil {
			res.PerfData = append(res.PerfData, perf)
		}
	}

	for i := range res.Results {
		res.Status = WorstStatus(res.Status, res.Results[i].Status)
	}

	summary := ""
	if res.Status == StateOK {
		summary = c.summary.Ok(res.Results)
	} else {
		summary = c.summary.Problem(res.Results)
	}
	res.Output = buildStatusLine(c.Name(), res.Status, summary)

	c.phase = phaseDone

	return res
}

func (c *Check) failResult(err error) *CheckResult {
	return &CheckResult{
		Status: StateUnknown,
		Output: buildStatusLine(c.Name(), StateUnknown, err.Error()),
	}
}

func buildStatusLine(name string, status Status, summary string) string {
	line := fmt.Sprintf("%s %s", name, status.String())
	if summary != "" {
		line += " - " + summary
	}

	return line
}

// CheckResult is the outcome of a single check run.
type CheckResult struct {
	Status   Status
	Results  []Result
	PerfData []*PerfData
	Output   string
}

// BuildPluginOutput appends the perfdata to the status line, separated by
// the pipe character as expected by naemon and friends.
func (cr *CheckResult) BuildPluginOutput() []byte {
	output := []byte(cr.Output)
	if len(cr.PerfData) > 0 {
		perf := make([]string, 0, len(cr.PerfData))
		for _, p := range cr.PerfData {
			perf = append(perf, p.String())
		}
		output = append(output, ' ', '|')
		output = append(output, []byte(strings.Join(perf, " "))...)
	}

	return output
}
