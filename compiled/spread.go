package compiled

import (
	"flint/errs"
	"flint/types"
)

// PathStepKind mirrors ir.PathStepKind for the already-planned path a
// Spread walks per element.
type PathStepKind int

const (
	StepKey PathStepKind = iota
	StepIndex
)

// PlannedStep is one step of a planned SpreadTail: a literal dotted key,
// or an index value resolved once against the outer scope before the
// per-element loop begins (index expressions in a tail are not
// re-evaluated per element -- there is no per-element scope to evaluate
// them against until the walk itself reaches that element).
type PlannedStep struct {
	Kind  PathStepKind
	Key   string
	Index types.Value
}

// WalkTail applies steps to elem in order, using the lenient (Null-on-miss)
// access semantics spec.md §4.E specifies for spread tails.
func WalkTail(elem types.Value, steps []PlannedStep) types.Value {
	cur := elem
	for _, step := range steps {
		switch step.Kind {
		case StepKey:
			cur = resolveAccessLenient(cur, types.NewString(step.Key))
		case StepIndex:
			cur = resolveAccessLenient(cur, step.Index)
		}
		if cur.Type() == types.TYPE_NULL {
			return types.Null
		}
	}
	return cur
}

// Spread evaluates targetVal (which must be a List) and maps each element
// through steps, returning the resulting List. When flatten is true, a
// list-of-lists result is concatenated one level.
func Spread(targetVal types.Value, steps []PlannedStep, flatten bool) (types.Value, *errs.Error) {
	list, ok := targetVal.(types.ListValue)
	if !ok {
		return nil, errs.NewRuntime("spread target must be a list")
	}
	results := make([]types.Value, 0, list.Len())
	for _, elem := range list.Elements() {
		results = append(results, WalkTail(elem, steps))
	}
	out := types.NewList(results)
	if flatten {
		return flattenOneLevel(out)
	}
	return out, nil
}

// ComputedSpread evaluates targetVal (which must be a List) and invokes
// body once per element, with the element bound as the active scope.
func ComputedSpread(targetVal types.Value, body Interpretable, flatten bool) (types.Value, *errs.Error) {
	list, ok := targetVal.(types.ListValue)
	if !ok {
		return nil, errs.NewRuntime("spread target must be a list")
	}
	results := make([]types.Value, 0, list.Len())
	for _, elem := range list.Elements() {
		v, err := body(elem)
		if err != nil {
			return nil, err
		}
		results = append(results, v)
	}
	out := types.NewList(results)
	if flatten {
		return flattenOneLevel(out)
	}
	return out, nil
}

func flattenOneLevel(v types.Value) (types.Value, *errs.Error) {
	list, ok := v.(types.ListValue)
	if !ok {
		return nil, errs.NewRuntime("flatten requires a list result")
	}
	flat := types.NewList(nil)
	for _, elem := range list.Elements() {
		inner, ok := elem.(types.ListValue)
		if !ok {
			return nil, errs.NewRuntime("cannot flatten: element is not a list")
		}
		flat = flat.Concat(inner)
	}
	return flat, nil
}
