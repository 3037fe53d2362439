// Package infer maps a single parsed value to the schema that describes it,
// per spec.md section 4.1. Inference is total and deterministic: it never
// fails and never depends on anything but its input.
package infer

import (
	"github.com/nbcuni/jsonflow-schema/merge"
	"github.com/nbcuni/jsonflow-schema/schema"
	"github.com/nbcuni/jsonflow-schema/value"
)

// Infer returns the schema for v. name is used only when v is an Object, as
// the name of the Record produced; it is purely syntactic and carries no
// identity semantics (spec.md section 4.1).
//
// Grounded on original_source/src/avro.rs's infer_schema (the JsonValue
// variant, which already separates integral from fractional numbers by
// exponent rather than relying on a library's is_u64/is_i64 check; that
// numeric policy is applied when parsing, by reader.classifyNumber, so Infer
// maps value.Int to Long and value.Float to Double). infer_schema_serde, the source's
// other variant keyed off serde_json::Value, is not carried forward: it
// differs only in how it detects an integral number, and spec.md section 9
// singles out exactly this kind of source duplication as non-canonical.
func Infer(v value.Value, name string) *schema.Schema {
	switch v.Kind {
	case value.KindNull:
		return schema.Null()
	case value.KindBool:
		return schema.Boolean()
	case value.KindInt:
		return schema.Long()
	case value.KindFloat:
		return schema.Double()
	case value.KindString:
		return schema.String()
	case value.KindArray:
		return inferArray(v.Array, name)
	case value.KindObject:
		return inferObject(v.Object, name)
	default:
		return schema.Null()
	}
}

// inferArray folds merge.Merge over every element's inferred schema
// (spec.md section 4.1/4.2's "array element unification"), not just the
// first: "Whether array elements beyond the first should contribute to the
// inferred element schema varies across source variants. This spec mandates
// full fold over all elements" (spec.md section 9).
func inferArray(elems []value.Value, name string) *schema.Schema {
	if len(elems) == 0 {
		return schema.NewArray(schema.Null())
	}

	acc := Infer(elems[0], name)
	for _, elem := range elems[1:] {
		next := Infer(elem, name)
		merged, err := merge.Merge(acc, next)
		if err != nil {
			// Array element merging can only fail via merge's internal
			// UnionConstructionError, which spec.md section 7 documents as
			// unreachable when the algebra is implemented correctly.
			panic(err)
		}
		acc = merged
	}
	return schema.NewArray(acc)
}

// inferObject builds a Record whose field order matches the object's
// insertion order (spec.md section 4.1: "Object field order matches
// insertion order in the input").
func inferObject(o *value.Object, name string) *schema.Schema {
	pairs := o.Pairs()
	fields := make([]schema.Field, len(pairs))
	for i, p := range pairs {
		fields[i] = schema.Field{Name: p.Key, Type: Infer(p.Value, p.Key)}
	}
	return schema.NewRecord(name, fields)
}
