package conformance

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// TestDataDir holds the YAML scenario files, relative to this package's
// directory -- the in-repo replacement for the teacher's external
// cow_py/tests/conformance tree, since this spec has no separate
// reference implementation's test corpus to walk.
const TestDataDir = "testdata"

// LoadedTest pairs one TestCase with the suite and file it came from, for
// readable subtest names.
type LoadedTest struct {
	File  string
	Suite TestSuite
	Test  TestCase
}

// LoadAllTests walks TestDataDir and loads every *.yaml suite, exactly as
// the teacher's LoadAllTests walked its conformance directory.
func LoadAllTests() ([]LoadedTest, error) {
	abs, err := filepath.Abs(TestDataDir)
	if err != nil {
		return nil, err
	}

	var loaded []LoadedTest
	walkErr := filepath.Walk(abs, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() || filepath.Ext(path) != ".yaml" {
			return nil
		}

		suite, err := loadSuiteFile(path)
		if err != nil {
			return fmt.Errorf("loading %s: %w", path, err)
		}

		rel, err := filepath.Rel(abs, path)
		if err != nil {
			rel = path
		}
		for _, tc := range suite.Tests {
			loaded = append(loaded, LoadedTest{File: rel, Suite: suite, Test: tc})
		}
		return nil
	})
	if walkErr != nil {
		return nil, walkErr
	}
	return loaded, nil
}

func loadSuiteFile(path string) (TestSuite, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return TestSuite{}, err
	}
	var suite TestSuite
	if err := yaml.Unmarshal(data, &suite); err != nil {
		return TestSuite{}, err
	}
	return suite, nil
}
