package execsrvc

// ExecResult is the raw outcome of one remote execution.
type ExecResult struct {
	Stdout   string
	Stderr   string
	ExitCode int
}

// TestRunResult is the classified outcome of running a submission against
// one test case.
type TestRunResult struct {
	Input    string
	Expected string
	Actual   string
	ErrMsg   *string
	Passed   bool
}

// ErrMsgExecutionFailed is the fixed message for transport-level failures
// (remote unreachable, malformed response). Downstream it is a regular fail.
const ErrMsgExecutionFailed = "Execution failed"

// ErrMsgOutputMismatch is used when the run itself was clean but the output
// did not match the expected one.
const ErrMsgOutputMismatch = "Output mismatch"
