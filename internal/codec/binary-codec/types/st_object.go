//revive:disable:var-naming
package types

import (
	"cmp"
	"errors"
	"fmt"
	"slices"

	"github.com/LeJamon/goXRPLkit/internal/codec/binary-codec/definitions"
	"github.com/LeJamon/goXRPLkit/internal/codec/binary-codec/serdes"
	serdesinterfaces "github.com/LeJamon/goXRPLkit/internal/codec/binary-codec/serdes/interfaces"
	"github.com/LeJamon/goXRPLkit/internal/codec/binary-codec/types/interfaces"
)

// ErrDuplicateField is returned when a serialized object repeats a field.
var ErrDuplicateField = errors.New("duplicate field in serialized object")

// STObject is a set of fields serialized in canonical (type, field) order.
type STObject struct {
	serializer  interfaces.BinarySerializer
	signingOnly bool
}

// NewSTObject returns an object writing into serializer.
func NewSTObject(serializer interfaces.BinarySerializer) *STObject {
	return &STObject{serializer: serializer}
}

// SigningFieldsOnly drops top-level fields that are not part of the signing
// payload (TxnSignature, Signers, ...).
func (s *STObject) SigningFieldsOnly() *STObject {
	s.signingOnly = true
	return s
}

func newSerializer(defs serdesinterfaces.Definitions) *serdes.BinarySerializer {
	return serdes.NewBinarySerializer(serdes.NewFieldIDCodec(defs))
}

// FromJSON serializes a map of field names to values. Keys that are not
// serialized fields of the definitions table are skipped.
func (s *STObject) FromJSON(value any) ([]byte, error) {
	m, ok := value.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%w: STObject must be an object, got %T", ErrInvalidValue, value)
	}
	defs := s.serializer.Definitions()

	fields := make([]*definitions.FieldInstance, 0, len(m))
	for k := range m {
		fi, err := defs.GetFieldInstanceByFieldName(k)
		if err != nil || !fi.IsSerialized {
			continue
		}
		if s.signingOnly && !fi.IsSigningField {
			continue
		}
		fields = append(fields, fi)
	}
	slices.SortFunc(fields, func(a, b *definitions.FieldInstance) int {
		return cmp.Compare(a.Ordinal, b.Ordinal)
	})

	for _, fi := range fields {
		v, err := enumToCode(defs, fi.FieldName, m[fi.FieldName])
		if err != nil {
			return nil, err
		}
		b, err := encodeField(defs, fi, v)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", fi.FieldName, err)
		}
		if err := s.serializer.WriteFieldAndValue(*fi, b); err != nil {
			return nil, fmt.Errorf("%s: %w", fi.FieldName, err)
		}
	}
	return s.serializer.GetSink(), nil
}

func encodeField(defs serdesinterfaces.Definitions, fi *definitions.FieldInstance, v any) ([]byte, error) {
	switch fi.Type {
	case "STObject":
		return NewSTObject(newSerializer(defs)).FromJSON(v)
	case "STArray":
		return NewSTArray(defs).FromJSON(v)
	}
	st := GetSerializedType(fi.Type)
	if st == nil {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedType, fi.Type)
	}
	return st.FromJSON(v)
}

// ToJSON reads fields until the input or an object end marker is reached.
func (s *STObject) ToJSON(p interfaces.BinaryParser, _ ...int) (any, error) {
	defs := p.Definitions()
	out := make(map[string]any)

	for p.HasMore() {
		fi, err := p.ReadField()
		if err != nil {
			return nil, err
		}
		if fi.FieldName == "ObjectEndMarker" {
			break
		}
		if _, dup := out[fi.FieldName]; dup {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateField, fi.FieldName)
		}

		var opts []int
		if fi.IsVLEncoded {
			n, err := p.ReadVariableLength()
			if err != nil {
				return nil, err
			}
			opts = append(opts, n)
		}

		var v any
		switch fi.Type {
		case "STObject":
			v, err = NewSTObject(nil).ToJSON(p)
		case "STArray":
			v, err = NewSTArray(defs).ToJSON(p)
		default:
			st := GetSerializedType(fi.Type)
			if st == nil {
				return nil, fmt.Errorf("%w: %s", ErrUnsupportedType, fi.Type)
			}
			v, err = st.ToJSON(p, opts...)
		}
		if err != nil {
			return nil, fmt.Errorf("%s: %w", fi.FieldName, err)
		}
		out[fi.FieldName] = codeToEnum(defs, fi.FieldName, v)
	}
	return out, nil
}

// enumToCode maps the symbolic names JSON uses for transaction types,
// ledger entry types and results to their codes.
func enumToCode(defs serdesinterfaces.Definitions, field string, v any) (any, error) {
	name, ok := v.(string)
	if !ok {
		return v, nil
	}
	switch field {
	case "TransactionType":
		return defs.GetTransactionTypeCodeByTransactionTypeName(name)
	case "LedgerEntryType":
		return defs.GetLedgerEntryTypeCodeByLedgerEntryTypeName(name)
	case "TransactionResult":
		return defs.GetTransactionResultTypeCodeByTransactionResultName(name)
	}
	return v, nil
}

func codeToEnum(defs serdesinterfaces.Definitions, field string, v any) any {
	var (
		name string
		err  error
	)
	switch field {
	case "TransactionType":
		code, _ := v.(uint16)
		name, err = defs.GetTransactionTypeNameByTransactionTypeCode(int32(code))
	case "LedgerEntryType":
		code, _ := v.(uint16)
		name, err = defs.GetLedgerEntryTypeNameByLedgerEntryTypeCode(int32(code))
	case "TransactionResult":
		code, _ := v.(uint8)
		name, err = defs.GetTransactionResultNameByTransactionResultTypeCode(int32(code))
	default:
		return v
	}
	if err != nil {
		return v
	}
	return name
}
