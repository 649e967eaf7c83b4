package execsrvc

import (
	"strings"

	"github.com/codeclash/backend/planglist"
)

// NormalizeStdin prepares a test case input for dispatch to the execution
// engine. For line-oriented languages a single input line of space-separated
// values is reflowed to one value per line, since their common input idiom
// consumes a whole line per read. Everything else passes through with only
// edge trimming; internal structure is preserved.
func NormalizeStdin(lang planglist.ProgrammingLang, input string) string {
	trimmed := strings.TrimSpace(input)

	if !lang.LineOrientedStdin {
		return trimmed
	}
	if strings.ContainsRune(trimmed, '\n') {
		return trimmed
	}

	fields := strings.Fields(trimmed)
	if len(fields) < 2 {
		return trimmed
	}
	return strings.Join(fields, "\n")
}
