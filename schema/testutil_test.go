package schema

import (
	"encoding/json"
	"fmt"
	"reflect"
	"testing"
)

// jsonEqual compares two values' canonical JSON forms for semantic equality,
// ignoring whitespace. Mirrors kfsmerge/testutil_test.go's jsonEqual, which
// compares serialized JSON instances the same way.
func jsonEqual(a, b any) (bool, error) {
	aBytes, err := json.Marshal(a)
	if err != nil {
		return false, fmt.Errorf("failed to marshal first value: %w", err)
	}
	bBytes, err := json.Marshal(b)
	if err != nil {
		return false, fmt.Errorf("failed to marshal second value: %w", err)
	}

	var aVal, bVal any
	if err := json.Unmarshal(aBytes, &aVal); err != nil {
		return false, err
	}
	if err := json.Unmarshal(bBytes, &bVal); err != nil {
		return false, err
	}
	return reflect.DeepEqual(aVal, bVal), nil
}

// mustUnmarshalJSONString parses a JSON text literal (as used inline in test
// tables) into the generic any tree jsonEqual compares against.
func mustUnmarshalJSONString(t *testing.T, text string) any {
	t.Helper()
	var v any
	if err := json.Unmarshal([]byte(text), &v); err != nil {
		t.Fatalf("unmarshal test fixture: %v", err)
	}
	return v
}

// mustMarshalIndent renders v's canonical JSON form for failure messages.
func mustMarshalIndent(t *testing.T, v any) string {
	t.Helper()
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	return string(b)
}

// assertSchemaEqual fails the test if got and want don't serialize to the
// same canonical JSON schema.
func assertSchemaEqual(t *testing.T, got, want *Schema) {
	t.Helper()

	equal, err := jsonEqual(got, want)
	if err != nil {
		t.Fatalf("schema comparison error: %v", err)
	}
	if !equal {
		gotJSON, _ := json.MarshalIndent(got, "", "  ")
		wantJSON, _ := json.MarshalIndent(want, "", "  ")
		t.Errorf("schema mismatch:\ngot:\n%s\n\nwant:\n%s", gotJSON, wantJSON)
	}
}
