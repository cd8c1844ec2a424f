package checkrouteros

import (
	"regexp"
	"strconv"
)

var percentToken = regexp.MustCompile(`(\d+)(%|[a-zA-Z]+)`)

// PercentRange is a Range whose "N%" bounds are resolved against a total
// value which is only known once the probe ran, ex.: "80%" of total-memory.
type PercentRange struct {
	spec          string
	resolved      *Range
	resolvedTotal float64
}

// NewPercentRange validates the spec without resolving it. Only "%" is a
// supported unit suffix, any other suffix is a ConfigError. The plain
// number form (no suffix) is parsed through NewRange right away so bad
// specs fail before the device is contacted.
func NewPercentRange(spec string) (*PercentRange, error) {
	for _, match := range percentToken.FindAllStringSubmatch(spec, -1) {
		if match[2] != "%" {
			return nil, configErrorf("unsupported unit in threshold %s: %s", spec, match[2])
		}
	}

	// trial resolution, catches malformed range syntax early
	pct := &PercentRange{spec: spec}
	if _, err := pct.substitute(100); err != nil {
		return nil, err
	}

	return pct, nil
}

// Resolve replaces every "N%" token with the absolute value and parses
// the outcome as a Range. The result is memoized per total: repeated
// calls within one check run are free, a changed total recomputes and
// never serves stale bounds.
func (p *PercentRange) Resolve(total float64) (*Range, error) {
	if p == nil {
		return nil, nil
	}
	if p.resolved != nil && p.resolvedTotal == total {
		return p.resolved, nil
	}

	rng, err := p.substitute(total)
	if err != nil {
		return nil, err
	}
	p.resolved = rng
	p.resolvedTotal = total

	return rng, nil
}

func (p *PercentRange) substitute(total float64) (*Range, error) {
	resolved := percentToken.ReplaceAllStringFunc(p.spec, func(token string) string {
		match := percentToken.FindStringSubmatch(token)
		value, err := strconv.ParseFloat(match[1], 64)
		if err != nil {
			return token
		}

		return strconv.FormatFloat(total*(value/100), 'f', -1, 64)
	})

	return NewRange(resolved)
}

// String returns the unresolved spec, percent tokens included, so the
// configured thresholds show up verbatim in the perfdata output.
func (p *PercentRange) String() string {
	if p == nil {
		return ""
	}

	return p.spec
}
