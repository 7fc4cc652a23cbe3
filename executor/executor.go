// ABOUTME: Invocation contract for the external algorithm executor subprocess.
// ABOUTME: Builds the positional argument list and distinguishes infrastructure failures from algorithm failures.
package executor

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strconv"
)

// Request describes one executor call. The contract is four positional
// arguments: interchange document path, generation, algorithm name, and the
// algorithm-specific extra (start vertex or target flow), with "0" standing
// in when the algorithm takes none.
type Request struct {
	DocumentPath string
	Generation   uint64
	Algorithm    string
	Extra        string
}

// Args returns the positional argument list for the subprocess.
func (r Request) Args() []string {
	extra := r.Extra
	if extra == "" {
		extra = "0"
	}
	return []string{r.DocumentPath, strconv.FormatUint(r.Generation, 10), r.Algorithm, extra}
}

// Runner invokes the external executor. Implementations block until the
// subprocess exits; success or failure is determined afterwards by the
// presence and content of the result file, not by the exit status.
type Runner interface {
	Run(ctx context.Context, req Request) error
}

// InvocationError is an infrastructure failure: the subprocess could not be
// started, or it produced no result file. It is never conflated with a
// well-formed exception sentinel inside the result file.
type InvocationError struct {
	Op  string
	Err error
}

func (e *InvocationError) Error() string {
	return fmt.Sprintf("executor %s: %v", e.Op, e.Err)
}

func (e *InvocationError) Unwrap() error {
	return e.Err
}

// Local runs the executor binary on the local machine.
type Local struct {
	// Binary is the path to the executor, e.g. bin/network.out.
	Binary string
	// Dir is the subprocess working directory. Empty means inherit.
	Dir string
}

// NewLocal returns a Local runner for the given binary.
func NewLocal(binary string) *Local {
	return &Local{Binary: binary}
}

// Run starts the executor and waits for it to exit. A non-zero exit status is
// not treated as an error: executors report algorithm failures through the
// result file's exception sentinel, and some exit non-zero while still
// writing a valid result.
func (l *Local) Run(ctx context.Context, req Request) error {
	cmd := exec.CommandContext(ctx, l.Binary, req.Args()...)
	cmd.Dir = l.Dir

	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) && ctx.Err() == nil {
			return nil
		}
		return &InvocationError{Op: "run " + l.Binary, Err: err}
	}
	return nil
}

// Compile-time interface check
var _ Runner = (*Local)(nil)
