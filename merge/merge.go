// Package merge implements the binary operator that unifies two schemas
// into a least-common-supertype, per spec.md section 4.2. Merge is total
// under the algebra defined there: the only error it can return,
// schema.UnionConstructionError, indicates a bug in this package's own
// normalization and is never expected to surface (spec.md section 7).
//
// Grounded on original_source/src/avro.rs's merge_schemas, translated from
// Rust's std::mem::replace/ownership-transfer idiom into ordinary Go value
// construction: this package favors building fresh Field/Variant slices over
// the source's in-place Vec mutation, which spec.md section 5 marks as a
// performance concern rather than a correctness one ("This is a performance
// requirement ..., not a correctness requirement").
package merge

import "github.com/nbcuni/jsonflow-schema/schema"

// Merge returns a schema accepting every value a or b accepts, with minimal
// widening, per the case analysis of spec.md section 4.2.
func Merge(a, b *schema.Schema) (*schema.Schema, error) {
	// merge(s, s) is s itself; returning a clone keeps the result from
	// sharing the input's Fields/Variants slices, so a caller mutating the
	// result cannot alter the input.
	if a == b {
		return schema.Clone(a), nil
	}

	switch {
	case a.Kind == schema.KindRecord && b.Kind == schema.KindRecord:
		return mergeRecords(a, b)
	case a.Kind == schema.KindUnion && b.Kind == schema.KindUnion:
		return mergeUnions(a, b)
	case a.Kind == schema.KindUnion:
		return mergeUnionWithSchema(a, b)
	case b.Kind == schema.KindUnion:
		return mergeUnionWithSchema(b, a)
	case a.Kind == schema.KindArray && b.Kind == schema.KindArray:
		elem, err := Merge(a.Element, b.Element)
		if err != nil {
			return nil, err
		}
		return schema.NewArray(elem), nil
	case a.Kind == schema.KindMap && b.Kind == schema.KindMap:
		elem, err := Merge(a.Element, b.Element)
		if err != nil {
			return nil, err
		}
		return schema.NewMap(elem), nil
	case a.Kind == b.Kind:
		// Same primitive kind (Record/Array/Map/Union already handled
		// above): primitives are idempotent under merge, so either side
		// already is the answer.
		return a, nil
	default:
		return mergeMismatched(a, b)
	}
}

// mergeMismatched handles any pair whose kinds differ and aren't both
// Record/Array/Map/Union: spec.md section 4.2 cases 7 and 8.
func mergeMismatched(a, b *schema.Schema) (*schema.Schema, error) {
	if a.Kind == schema.KindNull {
		return nullable(b), nil
	}
	if b.Kind == schema.KindNull {
		return nullable(a), nil
	}
	return schema.NewUnion([]*schema.Schema{a, b})
}

// nullable implements spec.md section 4.2.1.
func nullable(s *schema.Schema) *schema.Schema {
	if s.Kind == schema.KindNull {
		return schema.Null()
	}
	if s.Kind == schema.KindUnion {
		if s.IsNullableUnion() {
			return s
		}
		variants := make([]*schema.Schema, 0, len(s.Variants)+1)
		variants = append(variants, schema.Null())
		variants = append(variants, s.Variants...)
		u, err := schema.NewUnion(variants)
		if err != nil {
			// s was already a well-formed union with no Null variant, so
			// prepending Null cannot introduce a duplicate kind or nesting.
			panic(err)
		}
		return u
	}
	u, err := schema.NewUnion([]*schema.Schema{schema.Null(), s})
	if err != nil {
		panic(err)
	}
	return u
}
