package merge

import "github.com/nbcuni/jsonflow-schema/schema"

// mergeUnionWithSchema implements spec.md section 4.2 case 3 (Union x S):
// replace the variant sharing s's kind with their merge, or append s.
func mergeUnionWithSchema(u, s *schema.Schema) (*schema.Schema, error) {
	variants := make([]*schema.Schema, len(u.Variants))
	copy(variants, u.Variants)

	for i, v := range variants {
		if v.Kind == s.Kind {
			merged, err := Merge(v, s)
			if err != nil {
				return nil, err
			}
			variants[i] = merged
			return schema.NewUnion(variants)
		}
	}

	variants = append(variants, s)
	return schema.NewUnion(variants)
}

// mergeUnions implements spec.md section 4.2 case 2 and the "hash-grouped
// union merge" note of section 9: group both unions' variants by kind, deep
// merge within a kind bucket that has more than one member, re-emit with
// Null first.
func mergeUnions(a, b *schema.Schema) (*schema.Schema, error) {
	groups := make(map[schema.Kind][]*schema.Schema)
	var order []schema.Kind

	collect := func(variants []*schema.Schema) {
		for _, v := range variants {
			if _, seen := groups[v.Kind]; !seen {
				order = append(order, v.Kind)
			}
			groups[v.Kind] = append(groups[v.Kind], v)
		}
	}
	collect(a.Variants)
	collect(b.Variants)

	merged := make([]*schema.Schema, 0, len(order))
	if members, ok := groups[schema.KindNull]; ok && len(members) > 0 {
		merged = append(merged, schema.Null())
	}

	for _, k := range order {
		if k == schema.KindNull {
			continue
		}
		members := groups[k]
		if len(members) == 1 {
			merged = append(merged, members[0])
			continue
		}
		acc := members[0]
		for _, m := range members[1:] {
			next, err := Merge(acc, m)
			if err != nil {
				return nil, err
			}
			acc = next
		}
		merged = append(merged, acc)
	}

	return schema.NewUnion(merged)
}
