//revive:disable:var-naming
package types

import (
	"fmt"

	serdesinterfaces "github.com/LeJamon/goXRPLkit/internal/codec/binary-codec/serdes/interfaces"
	"github.com/LeJamon/goXRPLkit/internal/codec/binary-codec/types/interfaces"
)

// STArray is a list of single-key objects, for instance
// [{"Memo": {...}}, {"Memo": {...}}].
type STArray struct {
	definitions serdesinterfaces.Definitions
}

// NewSTArray returns an array codec resolving fields against defs.
func NewSTArray(defs serdesinterfaces.Definitions) *STArray {
	return &STArray{definitions: defs}
}

// FromJSON serializes every element as a wrapped inner object.
func (a *STArray) FromJSON(value any) ([]byte, error) {
	var elems []map[string]any
	switch v := value.(type) {
	case []map[string]any:
		elems = v
	case []any:
		for _, e := range v {
			m, ok := e.(map[string]any)
			if !ok {
				return nil, fmt.Errorf("%w: STArray element must be an object, got %T", ErrInvalidValue, e)
			}
			elems = append(elems, m)
		}
	default:
		return nil, fmt.Errorf("%w: STArray must be a list, got %T", ErrInvalidValue, value)
	}

	var out []byte
	for _, elem := range elems {
		if len(elem) != 1 {
			return nil, fmt.Errorf("%w: STArray element must have exactly one key", ErrInvalidValue)
		}
		b, err := NewSTObject(newSerializer(a.definitions)).FromJSON(elem)
		if err != nil {
			return nil, err
		}
		out = append(out, b...)
	}
	return out, nil
}

// ToJSON reads wrapped objects until the array end marker.
func (a *STArray) ToJSON(p interfaces.BinaryParser, _ ...int) (any, error) {
	out := []any{}
	for p.HasMore() {
		fi, err := p.ReadField()
		if err != nil {
			return nil, err
		}
		if fi.FieldName == "ArrayEndMarker" {
			break
		}
		if fi.Type != "STObject" {
			return nil, fmt.Errorf("%w: STArray element %s is a %s", ErrInvalidValue, fi.FieldName, fi.Type)
		}
		inner, err := NewSTObject(nil).ToJSON(p)
		if err != nil {
			return nil, err
		}
		out = append(out, map[string]any{fi.FieldName: inner})
	}
	return out, nil
}
