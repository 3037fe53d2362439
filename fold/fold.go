// Package fold drives inference and merge across a stream of values, per
// spec.md section 4.3: a strict left-fold that keeps exactly one accumulator
// and one transient per-record schema in memory at a time.
//
// Grounded on kfsmerge.go's Schema.MergeWithOptions, which plays the same
// "thin orchestration over the algebra packages" role for a fixed pair of
// instances; Fold generalizes that pipeline from two values to an arbitrary
// sequence.
package fold

import (
	"fmt"

	"github.com/nbcuni/jsonflow-schema/infer"
	"github.com/nbcuni/jsonflow-schema/merge"
	"github.com/nbcuni/jsonflow-schema/schema"
	"github.com/nbcuni/jsonflow-schema/value"
)

// Source is the "finite lazy sequence of parsed values" collaborator
// contract of spec.md section 1 and section 6. Next returns the next value
// and true, or ok=false once the sequence is exhausted. A non-nil err aborts
// the fold immediately, regardless of ok.
type Source interface {
	Next() (v value.Value, ok bool, err error)
}

// InputError wraps a failure surfaced by a Source, identifying which
// element of the stream it occurred at. Per spec.md section 7, this is the
// only recoverable error the fold produces; it is never swallowed.
type InputError struct {
	Index int
	Err   error
}

func (e *InputError) Error() string {
	return fmt.Sprintf("fold: input error at record %d: %v", e.Index, e.Err)
}

func (e *InputError) Unwrap() error { return e.Err }

// RecordName is the name inference assigns to every top-level record; it is
// purely syntactic (spec.md section 4.1).
const RecordName = "record"

// Fold consumes src to completion, inferring and merging one schema at a
// time, and returns the final schema. An empty stream yields schema.Null(),
// per spec.md section 4.3. Each value is inferred as a record named
// RecordName.
func Fold(src Source) (*schema.Schema, error) {
	return FoldNamed(src, RecordName)
}

// FoldNamed is Fold with the top-level record name supplied by the caller,
// rather than fixed to RecordName.
func FoldNamed(src Source, recordName string) (*schema.Schema, error) {
	var acc *schema.Schema
	index := 0

	for {
		v, ok, err := src.Next()
		if err != nil {
			return nil, &InputError{Index: index, Err: err}
		}
		if !ok {
			break
		}

		next := infer.Infer(v, recordName)
		if acc == nil {
			acc = next
		} else {
			merged, err := merge.Merge(acc, next)
			if err != nil {
				return nil, err
			}
			acc = merged
		}
		index++
	}

	if acc == nil {
		return schema.Null(), nil
	}
	return acc, nil
}
