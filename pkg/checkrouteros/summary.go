package checkrouteros

import (
	"strings"

	"github.com/dustin/go-humanize"
)

// Summary renders the human readable part of the plugin output. Ok is
// used when the overall verdict is OK, Problem otherwise.
type Summary interface {
	Ok(results []Result) string
	Problem(results []Result) string
}

// DefaultSummary reports the first result when everything is fine and the
// most severe one otherwise.
type DefaultSummary struct{}

func (s DefaultSummary) Ok(results []Result) string {
	if len(results) == 0 {
		return ""
	}

	return results[0].Hint
}

func (s DefaultSummary) Problem(results []Result) string {
	return worstResultHint(results)
}

// NamedSummary builds the OK line from a fixed subset of result names, so
// a check can phrase its byte-count metrics and skip the boolean noise.
// Byte valued metrics get a humanized size appended.
type NamedSummary struct {
	ResultNames []string
}

func (s NamedSummary) Ok(results []Result) string {
	msgs := make([]string, 0, len(s.ResultNames))
	for _, name := range s.ResultNames {
		for i := range results {
			if results[i].Metric.Name == name {
				msgs = append(msgs, formatResult(results[i]))
			}
		}
	}

	return strings.Join(msgs, " ")
}

func (s NamedSummary) Problem(results []Result) string {
	return worstResultHint(results)
}

func worstResultHint(results []Result) string {
	worst := -1
	hint := ""
	for i := range results {
		if sev := results[i].Status.severity(); sev > worst {
			worst = sev
			hint = formatResult(results[i])
		}
	}

	return hint
}

func formatResult(res Result) string {
	if res.Metric.Unit == "B" {
		return res.Hint + " (" + humanize.IBytes(uint64(res.Metric.Float64Value())) + ")"
	}

	return res.Hint
}
