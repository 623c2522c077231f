// Package conformance runs the scanner fixtures under testdata/. Each
// YAML file holds a suite of source snippets with their expected token
// streams, so scanner behavior is pinned down in data rather than code.
package conformance

// TestSuite represents a complete YAML fixture file
type TestSuite struct {
	Name        string     `yaml:"name"`
	Description string     `yaml:"description,omitempty"`
	Tests       []TestCase `yaml:"tests"`
}

// TestCase represents a single scan scenario within a suite
type TestCase struct {
	Name        string          `yaml:"name"`
	Description string          `yaml:"description,omitempty"`
	Skip        interface{}     `yaml:"skip,omitempty"` // bool or string
	Source      string          `yaml:"source"`
	Tokens      []ExpectedToken `yaml:"tokens"`
}

// ExpectedToken is one entry in the expected token stream. Type uses the
// String() form of the token type. Lexeme and Line are optional; zero
// values mean the field is not checked.
type ExpectedToken struct {
	Type   string `yaml:"type"`
	Lexeme string `yaml:"lexeme,omitempty"`
	Line   int    `yaml:"line,omitempty"`
}

// IsSkipped returns true if this test should be skipped
func (tc *TestCase) IsSkipped() (bool, string) {
	if tc.Skip == nil {
		return false, ""
	}

	switch v := tc.Skip.(type) {
	case bool:
		if v {
			return true, "skipped"
		}
		return false, ""
	case string:
		return true, v
	default:
		return false, ""
	}
}
