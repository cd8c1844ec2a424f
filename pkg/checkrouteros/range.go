package checkrouteros

import (
	"math"
	"strconv"
	"strings"
)

// Range contains the monitoring-plugins threshold logic:
// https://www.monitoring-plugins.org/doc/guidelines.html#THRESHOLDFORMAT
//
// A value outside [start, end] is in the alert zone, with a leading "@"
// the interval itself becomes the alert zone.
type Range struct {
	spec   string
	start  float64
	end    float64
	invert bool
	empty  bool
}

// NewRange parses a threshold specification:
//
//	"N"    alert if value < 0 or value > N
//	"N:"   alert if value < N
//	":N"   alert if value > N
//	"N:M"  alert if value < N or value > M
//	"@N:M" alert if N <= value <= M
//	"~"    explicit infinity on either side
//
// An empty spec never alerts. Malformed bounds or M < N fail here,
// not at evaluation time.
func NewRange(spec string) (*Range, error) {
	spec = strings.TrimSpace(spec)
	if spec == "" {
		return &Range{spec: spec, empty: true}, nil
	}

	thr := &Range{
		spec:  spec,
		start: math.Inf(-1),
		end:   math.Inf(1),
	}

	def := spec
	if strings.HasPrefix(def, "@") {
		thr.invert = true
		def = strings.TrimPrefix(def, "@")
		if def == "" {
			return nil, configErrorf("invalid threshold: %s", spec)
		}
	}

	before, after, found := strings.Cut(def, ":")
	if !found {
		end, err := parseRangeBound(def, math.Inf(1))
		if err != nil {
			return nil, err
		}
		// "N" is shorthand for "0:N", the same bound ordering applies
		if end < 0 {
			return nil, configErrorf("invalid threshold %s: start 0 must not be larger than end %s", spec, def)
		}
		thr.start = 0
		thr.end = end

		return thr, nil
	}

	start, err := parseRangeBound(before, math.Inf(-1))
	if err != nil {
		return nil, err
	}
	end, err := parseRangeBound(after, math.Inf(1))
	if err != nil {
		return nil, err
	}
	if start > end {
		return nil, configErrorf("invalid threshold %s: start %v must not be larger than end %v", spec, before, after)
	}
	thr.start = start
	thr.end = end

	return thr, nil
}

// parseRangeBound converts a single bound, "" and "~" mean infinity.
func parseRangeBound(bound string, infinity float64) (float64, error) {
	switch bound {
	case "", "~":
		return infinity, nil
	}
	num, err := strconv.ParseFloat(bound, 64)
	if err != nil {
		return 0, configErrorf("invalid threshold bound: %s", bound)
	}

	return num, nil
}

// Check returns true if the given value is in the alert zone.
func (t *Range) Check(value float64) bool {
	if t == nil || t.empty {
		return false
	}

	inside := value >= t.start && value <= t.end
	if t.invert {
		return inside
	}

	return !inside
}

// String returns the original spec, it round-trips into perfdata output.
func (t *Range) String() string {
	if t == nil {
		return ""
	}

	return t.spec
}
