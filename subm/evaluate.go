package subm

import (
	"context"

	"github.com/codeclash/backend/planglist"
	"github.com/codeclash/backend/question"
)

// evaluate runs the submission against the question's test cases in their
// stored order, one remote call per case, stopping at the first failure.
//
// The early exit is deliberate: it bounds remote-call cost and gives fast
// feedback, at the price of not reporting whether later cases would have
// passed. With zero test cases the verdict is vacuously passing.
func (s *SubmSrvc) evaluate(ctx context.Context, code string, lang planglist.ProgrammingLang, tests []question.TestCase) Verdict {
	verdict := Verdict{
		TotalCount: len(tests),
		Results:    make([]EvalResult, 0, len(tests)),
		AllPassed:  true,
	}

	for _, tc := range tests {
		run := s.runner.RunTestCase(ctx, code, lang, tc.Input, tc.Expected)

		result := EvalResult{
			Input:    run.Input,
			Expected: run.Expected,
			Actual:   run.Actual,
			ErrMsg:   run.ErrMsg,
			Passed:   run.Passed,
		}
		verdict.Results = append(verdict.Results, result)

		if !run.Passed {
			verdict.AllPassed = false
			verdict.FirstErr = run.ErrMsg
			return verdict
		}
		verdict.PassedCount++
	}

	return verdict
}
