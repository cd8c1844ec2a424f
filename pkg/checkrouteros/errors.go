package checkrouteros

import "fmt"

// ConfigError is raised while parsing thresholds or other user supplied
// options, always before any connection to the device is made.
type ConfigError struct {
	Message string
}

func (e *ConfigError) Error() string {
	return e.Message
}

func configErrorf(format string, args ...interface{}) *ConfigError {
	return &ConfigError{Message: fmt.Sprintf(format, args...)}
}

// ProbeError wraps failures while talking to the device, ex.: connection
// refused, protocol errors or missing fields in a response. It turns the
// check result into UNKNOWN instead of crashing.
type ProbeError struct {
	Message string
	Err     error
}

func (e *ProbeError) Error() string {
	if e.Err != nil && e.Message != "" {
		return fmt.Sprintf("%s: %s", e.Message, e.Err.Error())
	}
	if e.Err != nil {
		return e.Err.Error()
	}

	return e.Message
}

func (e *ProbeError) Unwrap() error {
	return e.Err
}

func probeErrorf(format string, args ...interface{}) *ProbeError {
	return &ProbeError{Message: fmt.Sprintf(format, args...)}
}

// EvaluationError marks a programming error during context evaluation,
// ex.: a percent context asking for a total before the probe supplied it.
// Thresholds are validated at parse time, so this is never an operational
// condition. It is thrown as panic and intentionally not recovered.
type EvaluationError struct {
	Message string
}

func (e *EvaluationError) Error() string {
	return "evaluation error: " + e.Message
}

func evaluationPanic(format string, args ...interface{}) {
	panic(&EvaluationError{Message: fmt.Sprintf(format, args...)})
}
