// Package schema implements the Avro-style schema algebra that inference
// produces and merge unifies: a recursive sum of primitives, arrays, maps,
// records, and unions, with the identity and structural invariants spec.md
// section 3.3 requires of every schema this package can construct.
package schema

import "fmt"

// Kind tags the top-level shape of a Schema. Two schemas share a "kind" in
// the sense spec.md section 3.3 invariant 2 uses it (no two immediate union
// variants may share a kind) exactly when they have the same Kind value.
type Kind int

const (
	KindNull Kind = iota
	KindBoolean
	KindLong
	KindDouble
	KindString
	KindBytes
	KindInt
	KindFloat
	KindArray
	KindMap
	KindRecord
	KindUnion
)

func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBoolean:
		return "boolean"
	case KindLong:
		return "long"
	case KindDouble:
		return "double"
	case KindString:
		return "string"
	case KindBytes:
		return "bytes"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindArray:
		return "array"
	case KindMap:
		return "map"
	case KindRecord:
		return "record"
	case KindUnion:
		return "union"
	default:
		return "unknown"
	}
}

// Field is one named member of a Record, in the position it occupies in that
// record's field list. Merge sets HasDefault on every field whose merged type
// is a nullable union: fields absent on one side, and shared fields whose
// merged type gained a Null variant (spec.md section 3.3 invariant 4); this
// system's only producible default is JSON null.
type Field struct {
	Name       string
	Type       *Schema
	HasDefault bool
	Position   int
}

// Schema is the recursive algebraic type described in spec.md section 3.2.
// Only the fields relevant to Kind are meaningful:
//   - Array, Map: Element
//   - Record: Name, Fields, lookup
//   - Union: Variants
//
// All other kinds are primitive leaves carrying no payload.
type Schema struct {
	Kind Kind

	Element *Schema

	Name   string
	Fields []Field
	lookup map[string]int

	Variants []*Schema
}

var (
	nullSchema    = &Schema{Kind: KindNull}
	booleanSchema = &Schema{Kind: KindBoolean}
	longSchema    = &Schema{Kind: KindLong}
	doubleSchema  = &Schema{Kind: KindDouble}
	stringSchema  = &Schema{Kind: KindString}
	bytesSchema   = &Schema{Kind: KindBytes}
	intSchema     = &Schema{Kind: KindInt}
	floatSchema   = &Schema{Kind: KindFloat}
)

// Null returns the Null primitive schema.
func Null() *Schema { return nullSchema }

// Boolean returns the Boolean primitive schema.
func Boolean() *Schema { return booleanSchema }

// Long returns the Long (64-bit integer) primitive schema.
func Long() *Schema { return longSchema }

// Double returns the Double (64-bit float) primitive schema.
func Double() *Schema { return doubleSchema }

// String returns the String primitive schema.
func String() *Schema { return stringSchema }

// Bytes returns the Bytes primitive schema. Never produced by inference;
// accepted by merge for interoperability with externally supplied schemas.
// No caller in this repo constructs one -- it exists for callers that merge
// inferred schemas against a schema obtained some other way (spec.md
// section 3.2: "the broader set must be accepted by merge for
// interoperability").
func Bytes() *Schema { return bytesSchema }

// Int returns the (32-bit) Int primitive schema. Never produced by
// inference; accepted by merge for interoperability with externally supplied
// schemas. See Bytes.
func Int() *Schema { return intSchema }

// Float returns the (32-bit) Float primitive schema. Never produced by
// inference; accepted by merge for interoperability with externally supplied
// schemas. See Bytes.
func Float() *Schema { return floatSchema }

// NewArray returns an Array schema over elem.
func NewArray(elem *Schema) *Schema {
	return &Schema{Kind: KindArray, Element: elem}
}

// NewMap returns a string-keyed Map schema over val.
func NewMap(val *Schema) *Schema {
	return &Schema{Kind: KindMap, Element: val}
}

// NewRecord builds a Record schema named name from fields, in the order
// given. Position and the name->index lookup are always recomputed from
// that order, so invariant 1 and invariant 5 of spec.md section 3.3 hold by
// construction regardless of what Position the caller set on each Field.
func NewRecord(name string, fields []Field) *Schema {
	out := make([]Field, len(fields))
	lookup := make(map[string]int, len(fields))
	copy(out, fields)
	for i := range out {
		out[i].Position = i
		lookup[out[i].Name] = i
	}
	return &Schema{Kind: KindRecord, Name: name, Fields: out, lookup: lookup}
}

// FieldIndex returns the position of the field named name in a Record
// schema, and whether it exists. Panics if s is not a Record.
func (s *Schema) FieldIndex(name string) (int, bool) {
	if s.Kind != KindRecord {
		panic(fmt.Sprintf("schema: FieldIndex on non-record kind %s", s.Kind))
	}
	i, ok := s.lookup[name]
	return i, ok
}

// UnionConstructionError reports an attempt to build a Union that would
// violate the well-formedness invariants of spec.md section 3.3 invariant 2.
// Per spec.md section 7, this indicates a bug in merge's normalization and
// should never surface when the algebra is implemented correctly.
type UnionConstructionError struct {
	Reason string
}

func (e *UnionConstructionError) Error() string {
	return "schema: invalid union: " + e.Reason
}

// NewUnion builds a well-formed Union from variants, enforcing spec.md
// section 3.3 invariant 2 (no nested unions, no duplicate kinds) and
// invariant 3 (Null first). Variants whose relative order is not Null are
// kept in the order given (stable). A single resulting variant collapses to
// that variant rather than a one-element union, and an empty input is an
// error: section 3.3 invariant 2 requires unions to have at least 2
// variants, so NewUnion never produces a 0- or 1-variant *Schema with
// Kind == KindUnion.
func NewUnion(variants []*Schema) (*Schema, error) {
	if len(variants) == 0 {
		return nil, &UnionConstructionError{Reason: "no variants"}
	}

	seenKind := make(map[Kind]bool, len(variants))
	for _, v := range variants {
		if v.Kind == KindUnion {
			return nil, &UnionConstructionError{Reason: "nested union as direct variant"}
		}
		if seenKind[v.Kind] {
			return nil, &UnionConstructionError{Reason: fmt.Sprintf("duplicate kind %s", v.Kind)}
		}
		seenKind[v.Kind] = true
	}

	ordered := nullFirst(variants)
	if len(ordered) == 1 {
		return ordered[0], nil
	}
	return &Schema{Kind: KindUnion, Variants: ordered}, nil
}

// nullFirst returns variants reordered so that a Null member (if any) is
// first, preserving the relative order of the rest.
func nullFirst(variants []*Schema) []*Schema {
	hasNull := false
	for _, v := range variants {
		if v.Kind == KindNull {
			hasNull = true
			break
		}
	}

	out := make([]*Schema, 0, len(variants))
	if hasNull {
		out = append(out, nullSchema)
	}
	for _, v := range variants {
		if v.Kind != KindNull {
			out = append(out, v)
		}
	}
	return out
}

// Clone deep-copies s. merge.Merge uses it so that merging a schema with
// itself returns a result that shares no Fields/Variants slice with the
// input.
func Clone(s *Schema) *Schema {
	if s == nil {
		return nil
	}
	switch s.Kind {
	case KindArray, KindMap:
		return &Schema{Kind: s.Kind, Element: Clone(s.Element)}
	case KindRecord:
		fields := make([]Field, len(s.Fields))
		for i, f := range s.Fields {
			fields[i] = Field{Name: f.Name, Type: Clone(f.Type), HasDefault: f.HasDefault, Position: f.Position}
		}
		lookup := make(map[string]int, len(s.lookup))
		for k, v := range s.lookup {
			lookup[k] = v
		}
		return &Schema{Kind: KindRecord, Name: s.Name, Fields: fields, lookup: lookup}
	case KindUnion:
		variants := make([]*Schema, len(s.Variants))
		for i, v := range s.Variants {
			variants[i] = Clone(v)
		}
		return &Schema{Kind: KindUnion, Variants: variants}
	default:
		return s
	}
}

// IsNullableUnion reports whether s is a Union whose first variant is Null,
// i.e. the shape merge produces for an "absent on one side" field (spec.md
// section 3.3 invariant 4).
func (s *Schema) IsNullableUnion() bool {
	return s.Kind == KindUnion && len(s.Variants) > 0 && s.Variants[0].Kind == KindNull
}
