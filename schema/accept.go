package schema

import "github.com/nbcuni/jsonflow-schema/value"

// Accepts reports whether v is a value this schema's shape would admit, the
// "accepts" relation spec.md section 8 property 3 and S1-S6 are phrased
// against. It is a convenience for tests, not a serializer: it does not
// reject objects carrying fields a Record schema doesn't know about.
func Accepts(s *Schema, v value.Value) bool {
	switch s.Kind {
	case KindNull:
		return v.Kind == value.KindNull
	case KindBoolean:
		return v.Kind == value.KindBool
	case KindLong, KindInt:
		return v.Kind == value.KindInt
	case KindDouble, KindFloat:
		return v.Kind == value.KindFloat
	case KindString:
		return v.Kind == value.KindString
	case KindBytes:
		return v.Kind == value.KindString
	case KindArray:
		if v.Kind != value.KindArray {
			return false
		}
		for _, elem := range v.Array {
			if !Accepts(s.Element, elem) {
				return false
			}
		}
		return true
	case KindMap:
		if v.Kind != value.KindObject {
			return false
		}
		for _, p := range v.Object.Pairs() {
			if !Accepts(s.Element, p.Value) {
				return false
			}
		}
		return true
	case KindRecord:
		if v.Kind != value.KindObject {
			return false
		}
		for _, f := range s.Fields {
			fv, ok := v.Object.Get(f.Name)
			if !ok {
				if f.HasDefault {
					continue
				}
				return false
			}
			if !Accepts(f.Type, fv) {
				return false
			}
		}
		return true
	case KindUnion:
		for _, variant := range s.Variants {
			if Accepts(variant, v) {
				return true
			}
		}
		return false
	default:
		return false
	}
}
