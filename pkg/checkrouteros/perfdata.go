package checkrouteros

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"
)

// PerfData contains a single performance value. Warn and Crit hold the
// configured threshold specs verbatim so they round-trip to the
// monitoring frontend.
type PerfData struct {
	Label string
	Value float64
	Unit  string
	Warn  string
	Crit  string
	Min   *float64
	Max   *float64
}

// String renders the naemon/nagios wire format:
// 'label'=value[unit];warn;crit;min;max with trailing semicolons stripped.
func (p *PerfData) String() string {
	var res bytes.Buffer

	res.WriteString(fmt.Sprintf("'%s'=%s%s", p.Label, strconv.FormatFloat(p.Value, 'f', -1, 64), p.Unit))

	res.WriteString(";")
	res.WriteString(p.Warn)

	res.WriteString(";")
	res.WriteString(p.Crit)

	res.WriteString(";")
	if p.Min != nil {
		res.WriteString(strconv.FormatFloat(*p.Min, 'f', -1, 64))
	}

	res.WriteString(";")
	if p.Max != nil {
		res.WriteString(strconv.FormatFloat(*p.Max, 'f', -1, 64))
	}

	resStr := res.String()
	for strings.HasSuffix(resStr, ";") {
		resStr = strings.TrimSuffix(resStr, ";")
	}

	return resStr
}
