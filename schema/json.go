package schema

import "encoding/json"

// MarshalJSON renders s in Avro's canonical JSON schema form: primitives as
// bare type-name strings, array/map as {"type":..., "items"/"values":...},
// record as {"type":"record","name":...,"fields":[...]}, union as a JSON
// array of its variants. This is the form an external Avro writer (out of
// scope here, per spec.md section 1) would consume to serialize values.
func (s *Schema) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.canonical())
}

func (s *Schema) canonical() any {
	switch s.Kind {
	case KindArray:
		return map[string]any{"type": "array", "items": s.Element.canonical()}
	case KindMap:
		return map[string]any{"type": "map", "values": s.Element.canonical()}
	case KindRecord:
		fields := make([]any, len(s.Fields))
		for i, f := range s.Fields {
			field := map[string]any{"name": f.Name, "type": f.Type.canonical()}
			if f.HasDefault {
				field["default"] = nil
			}
			fields[i] = field
		}
		return map[string]any{"type": "record", "name": s.Name, "fields": fields}
	case KindUnion:
		variants := make([]any, len(s.Variants))
		for i, v := range s.Variants {
			variants[i] = v.canonical()
		}
		return variants
	default:
		return s.Kind.String()
	}
}
