package checkrouteros

// Status is the plugin verdict of a check or a single metric evaluation.
type Status int64

const (
	// StateOK is used for normal exits.
	StateOK Status = 0

	// StateWarning is used when a warning threshold matched.
	StateWarning Status = 1

	// StateCritical is used when a critical threshold matched.
	StateCritical Status = 2

	// StateUnknown is used when the check runs into a problem itself.
	StateUnknown Status = 3
)

func (s Status) String() string {
	switch s {
	case StateOK:
		return "OK"
	case StateWarning:
		return "WARNING"
	case StateCritical:
		return "CRITICAL"
	}

	return "UNKNOWN"
}

// ExitCode returns the conventional monitoring-plugins exit code 0/1/2/3.
func (s Status) ExitCode() int {
	return int(s)
}

// severity returns the rank used when combining multiple results.
// Unknown outranks OK but never an actual threshold breach.
func (s Status) severity() int {
	switch s {
	case StateOK:
		return 0
	case StateUnknown:
		return 1
	case StateWarning:
		return 2
	case StateCritical:
		return 3
	}

	return 1
}

// WorstStatus returns the more severe of both states.
func WorstStatus(a, b Status) Status {
	if b.severity() > a.severity() {
		return b
	}

	return a
}

// Result is the outcome of evaluating one metric through its context.
type Result struct {
	Status Status
	Metric Metric
	Hint   string
}

func (r *Result) String() string {
	return r.Hint
}
