package conformance

import (
	"fmt"
	"strings"

	"flint/engine"
	"flint/errs"
	"flint/types"
)

// TestResult is the outcome of running a single TestCase, mirroring the
// teacher's TestResult shape minus the Skipped/SkipReason fields -- this
// corpus has no setup/teardown blocks to make skipping meaningful.
type TestResult struct {
	Test   LoadedTest
	Passed bool
	Error  error
}

// Runner evaluates TestCases against a single engine.Handle. The teacher's
// Runner loaded a MOO object database and built an eval.Evaluator over it;
// this Runner just needs a registry handle, since flint expressions carry
// no object-store dependency.
type Runner struct {
	handle *engine.Handle
}

// NewRunner builds a Runner over the process-wide default registry (every
// builtin pack, cache enabled), matching what engine.DefaultHandle()
// documents as the common case.
func NewRunner() *Runner {
	return &Runner{handle: engine.DefaultHandle()}
}

// NewRunnerWithHandle builds a Runner over a caller-supplied handle, for
// suites that need a restricted pack set or a custom plugin.
func NewRunnerWithHandle(h *engine.Handle) *Runner {
	return &Runner{handle: h}
}

// Run executes one test case and checks its result against its
// expectation.
func (r *Runner) Run(test LoadedTest) TestResult {
	scope := types.Value(types.Null)
	if test.Test.Scope != nil {
		scope = valueFromYAML(test.Test.Scope)
	}

	got, evalErr := engine.Eval(test.Test.Expression, scope, r.handle)
	passed, err := checkExpectation(test.Test.Expect, got, evalErr)
	return TestResult{Test: test, Passed: passed, Error: err}
}

// RunAll runs every test and returns one TestResult per test, in order.
func (r *Runner) RunAll(tests []LoadedTest) []TestResult {
	results := make([]TestResult, len(tests))
	for i, test := range tests {
		results[i] = r.Run(test)
	}
	return results
}

// checkExpectation compares an evaluation outcome against an Expectation,
// reporting a human-readable error on mismatch.
func checkExpectation(expect Expectation, got types.Value, evalErr *errs.Error) (bool, error) {
	if expect.ErrorKind != "" {
		if evalErr == nil {
			return false, fmt.Errorf("expected %s error, got value: %v", expect.ErrorKind, got)
		}
		if !matchesKind(evalErr.Kind, expect.ErrorKind) {
			return false, fmt.Errorf("expected %s error, got %s: %s", expect.ErrorKind, kindName(evalErr.Kind), evalErr.Message)
		}
		for _, substr := range expect.Contains {
			if !strings.Contains(evalErr.Message, substr) {
				return false, fmt.Errorf("error message %q does not contain %q", evalErr.Message, substr)
			}
		}
		return true, nil
	}

	if evalErr != nil {
		return false, fmt.Errorf("unexpected %s error: %s", kindName(evalErr.Kind), evalErr.Message)
	}

	want := valueFromYAML(expect.Value)
	if !got.Equal(want) {
		return false, fmt.Errorf("expected %v, got %v", want, got)
	}
	return true, nil
}

// matchesKind compares an errs.Kind against a YAML error_kind name. errs.Kind
// has no exported stringer (its prefix() is unexported and reads like
// "Parse error", not a bare name), so this switches on the Kind constants
// directly rather than trying to stringify one side and compare.
func matchesKind(k errs.Kind, want string) bool {
	switch strings.ToLower(want) {
	case "parser", "parse":
		return k == errs.Parser
	case "compiler", "compile":
		return k == errs.Compiler
	case "runtime":
		return k == errs.Runtime
	default:
		return false
	}
}

func kindName(k errs.Kind) string {
	switch k {
	case errs.Parser:
		return "parser"
	case errs.Compiler:
		return "compiler"
	case errs.Runtime:
		return "runtime"
	default:
		return "unknown"
	}
}

// valueFromYAML converts a value decoded by gopkg.in/yaml.v3 into a
// types.Value, the conformance-suite analogue of the teacher's
// convertYAMLValue -- generalized from MOO's Int/Obj/Str/List/Map value
// set to flint's Int/Float/String/Bool/List/Struct/Null set.
func valueFromYAML(v interface{}) types.Value {
	switch val := v.(type) {
	case nil:
		return types.Null
	case bool:
		return types.NewBool(val)
	case int:
		return types.NewInt(int64(val))
	case int64:
		return types.NewInt(val)
	case float64:
		return types.NewFloat(val)
	case string:
		return types.NewString(val)
	case []interface{}:
		elements := make([]types.Value, len(val))
		for i, elem := range val {
			elements[i] = valueFromYAML(elem)
		}
		return types.NewList(elements)
	case map[string]interface{}:
		fields := make(map[string]types.Value, len(val))
		for k, fv := range val {
			fields[k] = valueFromYAML(fv)
		}
		return types.NewStruct(fields)
	case map[interface{}]interface{}:
		fields := make(map[string]types.Value, len(val))
		for k, fv := range val {
			fields[fmt.Sprintf("%v", k)] = valueFromYAML(fv)
		}
		return types.NewStruct(fields)
	default:
		return types.Null
	}
}
