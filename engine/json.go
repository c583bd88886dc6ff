package engine

import (
	"strings"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"

	"flint/errs"
	"flint/types"
)

// EvalJSON is a JSON-native convenience wrapper over Eval: scopeJSON is
// parsed directly off the wire with gjson (no intermediate
// encoding/json-into-struct step, since the scope shape is arbitrary),
// and the result is encoded back into a JSON document with sjson under
// the "result" key.
func EvalJSON(src, scopeJSON string, h *Handle) (string, *errs.Error) {
	scope := valueFromGJSON(gjson.Parse(scopeJSON))
	result, err := Eval(src, scope, h)
	if err != nil {
		return "", err
	}
	out, serr := sjson.Set("", "result", valueToInterface(result))
	if serr != nil {
		return "", errs.NewRuntime("engine: encoding result as JSON: " + serr.Error())
	}
	return out, nil
}

// valueFromGJSON converts a parsed gjson.Result tree into a types.Value,
// recursively: JSON object -> Map, JSON array -> List, and the scalar
// kinds map directly. A JSON number with no fractional/exponent part in
// its raw text becomes an Int rather than a Float, so "quantity": 4 in a
// scope arrives as the Int the grammar's promotion rules expect, not a
// Float that would silently force every arithmetic result to Float.
func valueFromGJSON(r gjson.Result) types.Value {
	switch r.Type {
	case gjson.Null:
		return types.Null
	case gjson.False:
		return types.NewBool(false)
	case gjson.True:
		return types.NewBool(true)
	case gjson.Number:
		if isIntegerLiteral(r.Raw) {
			return types.NewInt(int64(r.Num))
		}
		return types.NewFloat(r.Num)
	case gjson.String:
		return types.NewString(r.Str)
	case gjson.JSON:
		if r.IsArray() {
			elems := make([]types.Value, 0)
			r.ForEach(func(_, v gjson.Result) bool {
				elems = append(elems, valueFromGJSON(v))
				return true
			})
			return types.NewList(elems)
		}
		m := make(map[string]types.Value)
		r.ForEach(func(k, v gjson.Result) bool {
			m[k.String()] = valueFromGJSON(v)
			return true
		})
		return types.NewMap(m)
	default:
		return types.Null
	}
}

func isIntegerLiteral(raw string) bool {
	return !strings.ContainsAny(raw, ".eE")
}

// valueToInterface converts a types.Value back into a plain Go value
// sjson.Set can encode, the inverse of valueFromGJSON.
func valueToInterface(v types.Value) interface{} {
	switch vv := v.(type) {
	case types.NullValue:
		return nil
	case types.BoolValue:
		return vv.Val
	case types.IntValue:
		return vv.Val
	case types.FloatValue:
		return vv.Val
	case types.StringValue:
		return vv.Val
	case types.ListValue:
		out := make([]interface{}, vv.Len())
		for i, e := range vv.Elements() {
			out[i] = valueToInterface(e)
		}
		return out
	case types.MapValue:
		out := make(map[string]interface{}, vv.Len())
		for _, k := range vv.Keys() {
			val, _ := vv.Get(k)
			out[k] = valueToInterface(val)
		}
		return out
	case types.StructValue:
		keys := vv.Keys()
		out := make(map[string]interface{}, len(keys))
		for _, k := range keys {
			val, _ := vv.Lookup(k)
			out[k] = valueToInterface(val)
		}
		return out
	default:
		return nil
	}
}
