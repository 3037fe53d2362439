package merge

import "github.com/nbcuni/jsonflow-schema/schema"

// mergeRecords implements spec.md section 4.2 case 1: field-by-field union
// of two records. Fields present on both sides deep-merge their types;
// fields present on exactly one side become nullable with a null default,
// encoding "this field may be absent" (spec.md section 3.3 invariant 4). A
// field present on both sides can still end up a nullable union (e.g. one
// side already absorbed an earlier absence), so its default tracks whether
// the merged type is a nullable union too, not just which branch produced
// it -- per spec.md section 3.3 invariant 4, every field whose schema is a
// nullable union must default to null, unconditionally.
//
// Field order is left-biased (spec.md section 4.2, "Field order"): a's
// fields keep their order first, then b's fields not present in a, in b's
// order. The merged record's name is inherited from a, an arbitrary but
// deterministic choice the spec calls for explicitly.
func mergeRecords(a, b *schema.Schema) (*schema.Schema, error) {
	fields := make([]schema.Field, 0, len(a.Fields)+len(b.Fields))
	fromB := make(map[string]bool, len(b.Fields))

	for _, af := range a.Fields {
		if bi, ok := b.FieldIndex(af.Name); ok {
			bf := b.Fields[bi]
			merged, err := Merge(af.Type, bf.Type)
			if err != nil {
				return nil, err
			}
			fields = append(fields, schema.Field{Name: af.Name, Type: merged, HasDefault: merged.IsNullableUnion()})
			fromB[af.Name] = true
			continue
		}
		fields = append(fields, schema.Field{Name: af.Name, Type: nullable(af.Type), HasDefault: true})
	}

	for _, bf := range b.Fields {
		if fromB[bf.Name] {
			continue
		}
		fields = append(fields, schema.Field{Name: bf.Name, Type: nullable(bf.Type), HasDefault: true})
	}

	return schema.NewRecord(a.Name, fields), nil
}
