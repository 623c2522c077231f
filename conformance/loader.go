package conformance

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// DefaultDir is where the fixture files live, relative to this package.
const DefaultDir = "testdata"

// LoadedTest represents a test case with its source file path
type LoadedTest struct {
	File  string
	Suite TestSuite
	Test  TestCase
}

// LoadAll walks dir and loads every test case from the .yaml files it
// finds. Fixtures ship with the package, so a file that fails to parse
// is an error rather than something to skip over.
func LoadAll(dir string) ([]LoadedTest, error) {
	var loaded []LoadedTest

	err := filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		if info.IsDir() || filepath.Ext(path) != ".yaml" {
			return nil
		}

		tests, err := loadFixtureFile(path)
		if err != nil {
			return fmt.Errorf("fixture %s: %w", path, err)
		}

		relPath, _ := filepath.Rel(dir, path)
		for _, test := range tests {
			test.File = relPath
			loaded = append(loaded, test)
		}

		return nil
	})

	if err != nil {
		return nil, err
	}

	return loaded, nil
}

// loadFixtureFile parses a single YAML file and returns all test cases
func loadFixtureFile(path string) ([]LoadedTest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var suite TestSuite
	if err := yaml.Unmarshal(data, &suite); err != nil {
		return nil, err
	}

	var tests []LoadedTest
	for _, test := range suite.Tests {
		tests = append(tests, LoadedTest{
			Suite: suite,
			Test:  test,
		})
	}

	return tests, nil
}
