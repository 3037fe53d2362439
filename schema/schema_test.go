package schema

import (
	"testing"

	"github.com/nbcuni/jsonflow-schema/value"
)

func TestNewRecordFieldPositionConsistency(t *testing.T) {
	r := NewRecord("myschema", []Field{
		{Name: "a", Type: Long()},
		{Name: "b", Type: String()},
		{Name: "c", Type: Boolean()},
	})

	for i, f := range r.Fields {
		if f.Position != i {
			t.Errorf("field %q: Position = %d, want %d", f.Name, f.Position, i)
		}
		idx, ok := r.FieldIndex(f.Name)
		if !ok {
			t.Errorf("FieldIndex(%q) not found", f.Name)
		}
		if idx != f.Position {
			t.Errorf("lookup[%q] = %d, want %d", f.Name, idx, f.Position)
		}
	}
}

func TestNewRecordIgnoresSuppliedPositions(t *testing.T) {
	r := NewRecord("s", []Field{
		{Name: "x", Type: Long(), Position: 99},
		{Name: "y", Type: String(), Position: -1},
	})
	if r.Fields[0].Position != 0 || r.Fields[1].Position != 1 {
		t.Fatalf("positions not renumbered: %+v", r.Fields)
	}
}

func TestNewUnionNullFirst(t *testing.T) {
	u, err := NewUnion([]*Schema{Long(), Null(), String()})
	if err != nil {
		t.Fatalf("NewUnion: %v", err)
	}
	if u.Kind != KindUnion {
		t.Fatalf("expected Union, got %s", u.Kind)
	}
	if u.Variants[0].Kind != KindNull {
		t.Fatalf("Null not first: %+v", u.Variants)
	}
	if u.Variants[1].Kind != KindLong || u.Variants[2].Kind != KindString {
		t.Fatalf("non-null variant order not preserved: %+v", u.Variants)
	}
}

func TestNewUnionSingleVariantCollapses(t *testing.T) {
	s, err := NewUnion([]*Schema{Long()})
	if err != nil {
		t.Fatalf("NewUnion: %v", err)
	}
	if s.Kind != KindLong {
		t.Fatalf("expected single variant to collapse to Long, got %s", s.Kind)
	}
}

func TestNewUnionRejectsNestedUnion(t *testing.T) {
	inner, err := NewUnion([]*Schema{Long(), String()})
	if err != nil {
		t.Fatalf("NewUnion: %v", err)
	}
	_, err = NewUnion([]*Schema{inner, Boolean()})
	if err == nil {
		t.Fatal("expected UnionConstructionError for nested union, got nil")
	}
	var uce *UnionConstructionError
	if !asUnionConstructionError(err, &uce) {
		t.Fatalf("expected *UnionConstructionError, got %T", err)
	}
}

func TestNewUnionRejectsDuplicateKind(t *testing.T) {
	_, err := NewUnion([]*Schema{Long(), Long()})
	if err == nil {
		t.Fatal("expected UnionConstructionError for duplicate kind, got nil")
	}
}

func TestNewUnionRejectsEmpty(t *testing.T) {
	if _, err := NewUnion(nil); err == nil {
		t.Fatal("expected error for empty variant list, got nil")
	}
}

func TestCloneIsDeepAndIndependent(t *testing.T) {
	orig := NewRecord("r", []Field{{Name: "a", Type: Long()}})
	clone := Clone(orig)

	clone.Fields[0].Type = String()
	if orig.Fields[0].Type.Kind != KindLong {
		t.Fatal("mutating clone's field type leaked into original")
	}

	clone.Fields[0].Name = "renamed"
	if orig.Fields[0].Name != "a" {
		t.Fatal("mutating clone's field name leaked into original")
	}
}

func TestAcceptsRecord(t *testing.T) {
	r := NewRecord("myschema", []Field{
		{Name: "a", Type: Long()},
		{Name: "b", Type: String()},
	})

	obj := value.NewObject()
	obj.Set("a", value.Int(1))
	obj.Set("b", value.String("x"))

	if !Accepts(r, value.Obj(obj)) {
		t.Fatal("expected record schema to accept matching object")
	}

	obj2 := value.NewObject()
	obj2.Set("a", value.String("not a long"))
	if Accepts(r, value.Obj(obj2)) {
		t.Fatal("expected record schema to reject mismatched field type")
	}
}

func TestAcceptsNullableFieldAbsent(t *testing.T) {
	nullableLong, err := NewUnion([]*Schema{Null(), Long()})
	if err != nil {
		t.Fatalf("NewUnion: %v", err)
	}
	r := NewRecord("r", []Field{{Name: "a", Type: nullableLong, HasDefault: true}})

	if !Accepts(r, value.Obj(value.NewObject())) {
		t.Fatal("expected record to accept object missing a nullable-with-default field")
	}
}

func asUnionConstructionError(err error, target **UnionConstructionError) bool {
	uce, ok := err.(*UnionConstructionError)
	if ok {
		*target = uce
	}
	return ok
}
