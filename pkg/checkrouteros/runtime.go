package checkrouteros

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/sasha-s/go-deadlock"
)

// Runtime executes a check, prints the plugin output and maps the verdict
// to the conventional exit code. A watchdog aborts the whole process with
// UNKNOWN if the device call hangs beyond the timeout, there is no
// cancellation inside the check itself.
type Runtime struct {
	Timeout time.Duration
	Output  io.Writer

	exit     func(code int)
	mu       deadlock.Mutex
	finished bool
}

func NewRuntime(timeout time.Duration) *Runtime {
	return &Runtime{
		Timeout: timeout,
		Output:  os.Stdout,
		exit:    os.Exit,
	}
}

// Execute runs the check to completion and returns the exit code.
func (r *Runtime) Execute(check *Check) int {
	if r.Timeout > 0 {
		timer := time.AfterFunc(r.Timeout, func() {
			r.mu.Lock()
			defer r.mu.Unlock()
			if r.finished {
				return
			}
			fmt.Fprintf(r.Output, "%s\n", buildStatusLine(check.Name(), StateUnknown, fmt.Sprintf("check timed out after %s", r.Timeout)))
			r.exit(StateUnknown.ExitCode())
		})
		defer timer.Stop()
	}

	result := check.Run()

	r.mu.Lock()
	r.finished = true
	r.mu.Unlock()

	fmt.Fprintf(r.Output, "%s\n", result.BuildPluginOutput())

	return result.Status.ExitCode()
}
