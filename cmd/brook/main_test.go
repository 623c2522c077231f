package main

import (
	"bytes"
	"strings"
	"testing"
)

// ---------------------------------------------------------------------------
// Scan mode
// ---------------------------------------------------------------------------

func TestScanSourceCleanStream(t *testing.T) {
	var buf bytes.Buffer

	clean := scanSource(&buf, "main.bk", "var x = 10;")
	if !clean {
		t.Error("clean source reported as dirty")
	}

	out := buf.String()
	for _, want := range []string{
		`main.bk:1: var("var")`,
		`main.bk:1: IDENTIFIER("x")`,
		`main.bk:1: =("=")`,
		`main.bk:1: NUMBER("10")`,
		`main.bk:1: ;(";")`,
		"main.bk:1: EOF",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestScanSourceReportsErrors(t *testing.T) {
	var buf bytes.Buffer

	clean := scanSource(&buf, "bad.bk", "a @ b")
	if clean {
		t.Error("source with a stray character reported as clean")
	}

	out := buf.String()
	if !strings.Contains(out, "bad.bk:1: error: Unexpected character.") {
		t.Errorf("output missing the error report:\n%s", out)
	}
	// Scanning continues past the error.
	if !strings.Contains(out, `bad.bk:1: IDENTIFIER("b")`) {
		t.Errorf("output missing the token after the error:\n%s", out)
	}
}

func TestScanSourceErrorLineNumbers(t *testing.T) {
	var buf bytes.Buffer

	scanSource(&buf, "f.bk", "a\n@")
	if !strings.Contains(buf.String(), "f.bk:2: error:") {
		t.Errorf("error not reported on line 2:\n%s", buf.String())
	}
}

// ---------------------------------------------------------------------------
// Demo mode
// ---------------------------------------------------------------------------

func TestRunDemo(t *testing.T) {
	var buf bytes.Buffer

	if err := runDemo(&buf, false, false); err != nil {
		t.Fatalf("runDemo failed: %v", err)
	}
	if got := buf.String(); got != "4.6\n" {
		t.Errorf("output = %q, want %q", got, "4.6\n")
	}
}

func TestRunDemoDisassembles(t *testing.T) {
	var buf bytes.Buffer

	if err := runDemo(&buf, true, false); err != nil {
		t.Fatalf("runDemo failed: %v", err)
	}

	out := buf.String()
	for _, want := range []string{
		"== demo chunk ==",
		"CONSTANT 0 (1.2)",
		"CONSTANT 1 (3.4)",
		"ADD",
		"RETURN",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("listing missing %q:\n%s", want, out)
		}
	}
	// The result prints after the listing.
	if !strings.HasSuffix(out, "4.6\n") {
		t.Errorf("output should end with the result, got:\n%s", out)
	}
}
