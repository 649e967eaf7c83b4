package execsrvc

import (
	"fmt"
	"strings"
)

// Classify decides whether one remote run passed its test case.
//
// A run passes when it produced no standard-error content, exited with code
// zero, and its trimmed output equals the trimmed expected output. Leading
// and trailing whitespace is insignificant; internal whitespace and case are
// significant. When the run fails, the error message is the most specific
// explanation available: stderr content if any, otherwise "Output mismatch".
func Classify(expected string, res ExecResult) (passed bool, errMsg *string) {
	stderr := strings.TrimSpace(res.Stderr)
	if stderr != "" {
		return false, &stderr
	}
	if res.ExitCode != 0 {
		msg := fmt.Sprintf("Exited with code %d", res.ExitCode)
		return false, &msg
	}
	if strings.TrimSpace(res.Stdout) != strings.TrimSpace(expected) {
		msg := ErrMsgOutputMismatch
		return false, &msg
	}
	return true, nil
}
