package conformance

import (
	"fmt"

	"github.com/brook-lang/brook/lexer"
)

// TestResult represents the outcome of running a single test
type TestResult struct {
	Test       LoadedTest
	Passed     bool
	Skipped    bool
	SkipReason string
	Error      error
}

// Run scans the test's source and checks the token stream against the
// expectation. Fixtures list the complete stream including the final EOF.
func Run(test LoadedTest) TestResult {
	if skipped, reason := test.Test.IsSkipped(); skipped {
		return TestResult{
			Test:       test,
			Skipped:    true,
			SkipReason: reason,
		}
	}

	got := lexer.Tokenize(test.Test.Source)
	if err := checkTokens(test.Test, got); err != nil {
		return TestResult{
			Test:  test,
			Error: err,
		}
	}

	return TestResult{
		Test:   test,
		Passed: true,
	}
}

// RunAll executes all loaded tests
func RunAll(tests []LoadedTest) []TestResult {
	results := make([]TestResult, len(tests))
	for i, test := range tests {
		results[i] = Run(test)
	}
	return results
}

// checkTokens compares a scanned token stream against the expected one
func checkTokens(tc TestCase, got []lexer.Token) error {
	if len(got) != len(tc.Tokens) {
		return fmt.Errorf("token count = %d, want %d (got %v)", len(got), len(tc.Tokens), got)
	}

	for i, want := range tc.Tokens {
		wantType, ok := lexer.TypeByName(want.Type)
		if !ok {
			return fmt.Errorf("fixture names unknown token type %q at index %d", want.Type, i)
		}

		tok := got[i]
		if tok.Type != wantType {
			return fmt.Errorf("token %d = %v, want type %s", i, tok, want.Type)
		}
		if want.Lexeme != "" && tok.Lexeme != want.Lexeme {
			return fmt.Errorf("token %d lexeme = %q, want %q", i, tok.Lexeme, want.Lexeme)
		}
		if want.Line > 0 && tok.Line != want.Line {
			return fmt.Errorf("token %d line = %d, want %d", i, tok.Line, want.Line)
		}
	}

	return nil
}

// SummaryStats computes statistics from test results
type SummaryStats struct {
	Total   int
	Passed  int
	Failed  int
	Skipped int
}

// ComputeStats generates statistics from test results
func ComputeStats(results []TestResult) SummaryStats {
	stats := SummaryStats{Total: len(results)}
	for _, r := range results {
		if r.Skipped {
			stats.Skipped++
		} else if r.Passed {
			stats.Passed++
		} else {
			stats.Failed++
		}
	}
	return stats
}

// FormatStats returns a human-readable summary
func FormatStats(stats SummaryStats) string {
	return fmt.Sprintf("%d passed, %d failed, %d skipped (%d total)",
		stats.Passed, stats.Failed, stats.Skipped, stats.Total)
}
