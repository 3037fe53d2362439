package reader

import "github.com/nbcuni/jsonflow-schema/value"

// JSONSource pairs a LineSource with DecodeValue to satisfy fold.Source,
// giving the CLI one object that implements spec.md section 6's "consumed
// from the parser collaborator" sequence of parsed values.
type JSONSource struct {
	lines *LineSource
}

// NewJSONSource wraps lines as a fold.Source of parsed values.
func NewJSONSource(lines *LineSource) *JSONSource {
	return &JSONSource{lines: lines}
}

// Next implements fold.Source.
func (s *JSONSource) Next() (value.Value, bool, error) {
	line, ok, err := s.lines.Next()
	if err != nil {
		return value.Value{}, false, err
	}
	if !ok {
		return value.Value{}, false, nil
	}

	v, err := DecodeValue([]byte(line))
	if err != nil {
		return value.Value{}, false, err
	}
	return v, true, nil
}
