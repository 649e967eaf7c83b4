package execsrvc_test

import (
	"testing"

	"github.com/codeclash/backend/execsrvc"
	"github.com/codeclash/backend/planglist"
	"github.com/stretchr/testify/assert"
)

func TestNormalizeStdinLineOrientedSingleLine(t *testing.T) {
	lang := planglist.ProgrammingLang{ID: "javascript", LineOrientedStdin: true}

	got := execsrvc.NormalizeStdin(lang, "3 5 7")
	assert.Equal(t, "3\n5\n7", got)
}

func TestNormalizeStdinLineOrientedMultiLineUntouched(t *testing.T) {
	lang := planglist.ProgrammingLang{ID: "python", LineOrientedStdin: true}

	// already line structured, keep as is
	got := execsrvc.NormalizeStdin(lang, "3 5\n7 9")
	assert.Equal(t, "3 5\n7 9", got)
}

func TestNormalizeStdinLineOrientedSingleToken(t *testing.T) {
	lang := planglist.ProgrammingLang{ID: "python", LineOrientedStdin: true}

	got := execsrvc.NormalizeStdin(lang, "42")
	assert.Equal(t, "42", got)
}

func TestNormalizeStdinOtherLangsOnlyTrimmed(t *testing.T) {
	lang := planglist.ProgrammingLang{ID: "go"}

	got := execsrvc.NormalizeStdin(lang, "  3 5 7  \n")
	assert.Equal(t, "3 5 7", got)
}
