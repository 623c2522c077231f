package manifest

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadManifest(t *testing.T) {
	// Create a temporary directory with a brook.toml
	dir := t.TempDir()
	tomlContent := `
[project]
name = "test-app"
version = "0.1.0"

[source]
entry = "scripts/start.bk"

[runtime]
trace = true
disassemble = true
verbosity = 2
`
	if err := os.WriteFile(filepath.Join(dir, "brook.toml"), []byte(tomlContent), 0644); err != nil {
		t.Fatal(err)
	}

	m, err := Load(dir)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if m.Project.Name != "test-app" {
		t.Errorf("project name = %q, want test-app", m.Project.Name)
	}
	if m.Project.Version != "0.1.0" {
		t.Errorf("project version = %q, want 0.1.0", m.Project.Version)
	}
	if m.Source.Entry != "scripts/start.bk" {
		t.Errorf("source entry = %q, want scripts/start.bk", m.Source.Entry)
	}
	if !m.Runtime.Trace {
		t.Error("runtime trace = false, want true")
	}
	if !m.Runtime.Disassemble {
		t.Error("runtime disassemble = false, want true")
	}
	if m.Runtime.Verbosity != 2 {
		t.Errorf("runtime verbosity = %d, want 2", m.Runtime.Verbosity)
	}
}

func TestLoadManifestDefaults(t *testing.T) {
	dir := t.TempDir()
	tomlContent := `
[project]
name = "minimal"
`
	if err := os.WriteFile(filepath.Join(dir, "brook.toml"), []byte(tomlContent), 0644); err != nil {
		t.Fatal(err)
	}

	m, err := Load(dir)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	// Default entry should be "main.bk"
	if m.Source.Entry != "main.bk" {
		t.Errorf("default entry = %q, want main.bk", m.Source.Entry)
	}
	if m.Runtime.Trace || m.Runtime.Disassemble {
		t.Error("runtime flags should default to off")
	}
}

func TestLoadManifestParseError(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "brook.toml"), []byte("[project\nname ="), 0644); err != nil {
		t.Fatal(err)
	}

	_, err := Load(dir)
	if err == nil {
		t.Fatal("expected parse error")
	}
	if !strings.Contains(err.Error(), "brook.toml") {
		t.Errorf("error %q should name the file", err)
	}
}

func TestFindAndLoad(t *testing.T) {
	// Create nested directory structure
	dir := t.TempDir()
	subDir := filepath.Join(dir, "a", "b", "c")
	if err := os.MkdirAll(subDir, 0755); err != nil {
		t.Fatal(err)
	}

	tomlContent := `[project]
name = "found-project"
`
	if err := os.WriteFile(filepath.Join(dir, "brook.toml"), []byte(tomlContent), 0644); err != nil {
		t.Fatal(err)
	}

	// Should find manifest when starting from a deep subdirectory
	m, err := FindAndLoad(subDir)
	if err != nil {
		t.Fatalf("FindAndLoad failed: %v", err)
	}
	if m == nil {
		t.Fatal("FindAndLoad returned nil")
	}
	if m.Project.Name != "found-project" {
		t.Errorf("project name = %q, want found-project", m.Project.Name)
	}
}

func TestFindAndLoadNotFound(t *testing.T) {
	dir := t.TempDir()
	m, err := FindAndLoad(dir)
	if err != nil {
		t.Fatalf("FindAndLoad error: %v", err)
	}
	if m != nil {
		t.Error("expected nil manifest when no brook.toml exists")
	}
}

func TestEntryPath(t *testing.T) {
	m := &Manifest{
		Dir: "/app",
		Source: Source{
			Entry: "main.bk",
		},
	}

	if got := m.EntryPath(); got != "/app/main.bk" {
		t.Errorf("EntryPath = %q, want /app/main.bk", got)
	}
}
