package compiler

import (
	"flint/compiled"
	"flint/errs"
	"flint/ir"
	"flint/registry"
	"flint/types"
)

// planSpread lowers a Spread node. Index expressions embedded in the tail
// are resolved once, against the outer scope, before the per-element walk
// begins -- there is no per-element scope to evaluate them against until
// the walk itself reaches that element, so a tail index step is
// necessarily a single outer-scope value shared by every element.
func planSpread(n *ir.Spread, reg *registry.Registry) (compiled.Interpretable, *errs.Error) {
	target, err := plan(n.Target, reg)
	if err != nil {
		return nil, err
	}
	stepPlans, err := planTailSteps(n.Tail, reg)
	if err != nil {
		return nil, err
	}
	flatten := n.Flatten
	return func(scope types.Value) (types.Value, *errs.Error) {
		t, err := target(scope)
		if err != nil {
			return nil, err
		}
		steps, err := resolveSteps(stepPlans, scope)
		if err != nil {
			return nil, err
		}
		return compiled.Spread(t, steps, flatten)
	}, nil
}

func planComputedSpread(n *ir.ComputedSpread, reg *registry.Registry) (compiled.Interpretable, *errs.Error) {
	target, err := plan(n.Target, reg)
	if err != nil {
		return nil, err
	}
	body, err := plan(n.Body, reg)
	if err != nil {
		return nil, err
	}
	flatten := n.Flatten
	return func(scope types.Value) (types.Value, *errs.Error) {
		t, err := target(scope)
		if err != nil {
			return nil, err
		}
		return compiled.ComputedSpread(t, body, flatten)
	}, nil
}

// tailStepPlan mirrors ir.PathStep but with its Index sub-expression
// already lowered to an Interpretable.
type tailStepPlan struct {
	kind  ir.PathStepKind
	key   string
	index compiled.Interpretable
}

func planTailSteps(tail []ir.PathStep, reg *registry.Registry) ([]tailStepPlan, *errs.Error) {
	plans := make([]tailStepPlan, len(tail))
	for i, step := range tail {
		if step.Kind == ir.StepKey {
			plans[i] = tailStepPlan{kind: ir.StepKey, key: step.Key}
			continue
		}
		idxPlan, err := plan(step.Index, reg)
		if err != nil {
			return nil, err
		}
		plans[i] = tailStepPlan{kind: ir.StepIndex, index: idxPlan}
	}
	return plans, nil
}

func resolveSteps(plans []tailStepPlan, scope types.Value) ([]compiled.PlannedStep, *errs.Error) {
	resolved := make([]compiled.PlannedStep, len(plans))
	for i, p := range plans {
		if p.kind == ir.StepKey {
			resolved[i] = compiled.PlannedStep{Kind: compiled.StepKey, Key: p.key}
			continue
		}
		v, err := p.index(scope)
		if err != nil {
			return nil, err
		}
		resolved[i] = compiled.PlannedStep{Kind: compiled.StepIndex, Index: v}
	}
	return resolved, nil
}
