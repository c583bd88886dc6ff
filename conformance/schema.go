package conformance

// TestSuite is one YAML file: a named group of expression scenarios.
// Mirrors the teacher's TestSuite/TestCase split (conformance/schema.go)
// but describes flint expressions and Values instead of MOO statements
// run against a live object database.
type TestSuite struct {
	Name        string     `yaml:"name"`
	Description string     `yaml:"description,omitempty"`
	Tests       []TestCase `yaml:"tests"`
}

// TestCase is one expression scenario: spec.md §8's literal
// (expression, scope) -> expected-value/error scenarios, generalized to
// a YAML-driven table.
type TestCase struct {
	Name       string                 `yaml:"name"`
	Expression string                 `yaml:"expression"`
	Scope      map[string]interface{} `yaml:"scope,omitempty"`
	Expect     Expectation            `yaml:"expect"`
}

// Expectation is satisfied either by an expected successful Value, or by
// an expected error of a given taxonomy kind (spec.md §4.H's Parser /
// Compiler / Runtime), optionally requiring the error message to contain
// every string in Contains.
type Expectation struct {
	Value     interface{} `yaml:"value,omitempty"`
	ErrorKind string      `yaml:"error_kind,omitempty"`
	Contains  []string    `yaml:"contains,omitempty"`
}
