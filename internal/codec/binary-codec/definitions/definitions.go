// Package definitions loads the field-definitions table that drives the
// binary codec: type codes, field codes, transaction type codes, ledger
// entry type codes and transaction result codes.
//
// The table has the shape of rippled's server_definitions response. A
// default XRPL mainnet table is embedded; other networks (for instance hook
// enabled sidechains with extra transaction types) can supply their own
// through Load.
package definitions

import (
	_ "embed"
	"errors"
	"fmt"
	"sync"

	"github.com/tidwall/gjson"
)

//go:embed definitions.json
var docBytes []byte

var (
	// ErrInvalidDefinitions is returned when a table cannot be parsed.
	ErrInvalidDefinitions = errors.New("invalid definitions table")
	// ErrNotFound is returned when a lookup key is absent from the table.
	ErrNotFound = errors.New("definition not found")
)

// FieldHeader is the (type code, field code) pair that identifies a field on the wire.
type FieldHeader struct {
	TypeCode  int32
	FieldCode int32
}

// FieldInfo is the per-field metadata carried by the table.
type FieldInfo struct {
	Nth            int32  `json:"nth"`
	IsVLEncoded    bool   `json:"isVLEncoded"`
	IsSerialized   bool   `json:"isSerialized"`
	IsSigningField bool   `json:"isSigningField"`
	Type           string `json:"type"`
}

// FieldInstance is a named field with its resolved header and sort ordinal.
type FieldInstance struct {
	FieldName string
	*FieldInfo
	FieldHeader *FieldHeader
	// Ordinal is TypeCode<<16 | Nth; canonical serialization order.
	Ordinal int32
}

// Definitions is an immutable, parsed definitions table. Safe for concurrent use.
type Definitions struct {
	Types              map[string]int32
	LedgerEntryTypes   map[string]int32
	Fields             map[string]*FieldInstance
	TransactionResults map[string]int32
	TransactionTypes   map[string]int32

	fieldIDNameMap         map[FieldHeader]string
	transactionTypeNames   map[int32]string
	transactionResultNames map[int32]string
	ledgerEntryTypeNames   map[int32]string
}

var defaultDefinitions = sync.OnceValue(func() *Definitions {
	d, err := Load(docBytes)
	if err != nil {
		panic(fmt.Sprintf("embedded definitions: %v", err))
	}
	return d
})

// Get returns the default (XRPL mainnet) definitions table.
func Get() *Definitions {
	return defaultDefinitions()
}

// Load parses a definitions table.
func Load(data []byte) (*Definitions, error) {
	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("%w: not valid JSON", ErrInvalidDefinitions)
	}
	doc := gjson.ParseBytes(data)
	if !doc.IsObject() {
		return nil, fmt.Errorf("%w: not an object", ErrInvalidDefinitions)
	}

	d := &Definitions{
		Fields:         make(map[string]*FieldInstance),
		fieldIDNameMap: make(map[FieldHeader]string),
	}

	var err error
	if d.Types, err = codeMap(doc, "TYPES", true); err != nil {
		return nil, err
	}
	if d.TransactionTypes, err = codeMap(doc, "TRANSACTION_TYPES", true); err != nil {
		return nil, err
	}
	if d.LedgerEntryTypes, err = codeMap(doc, "LEDGER_ENTRY_TYPES", false); err != nil {
		return nil, err
	}
	if d.TransactionResults, err = codeMap(doc, "TRANSACTION_RESULTS", false); err != nil {
		return nil, err
	}
	d.transactionTypeNames = reverse(d.TransactionTypes)
	d.transactionResultNames = reverse(d.TransactionResults)
	d.ledgerEntryTypeNames = reverse(d.LedgerEntryTypes)

	fields := doc.Get("FIELDS")
	if !fields.IsArray() {
		return nil, fmt.Errorf("%w: FIELDS must be an array", ErrInvalidDefinitions)
	}
	for i, entry := range fields.Array() {
		pair := entry.Array()
		if len(pair) != 2 || pair[0].Type != gjson.String || !pair[1].IsObject() {
			return nil, fmt.Errorf("%w: FIELDS[%d] must be a [name, info] pair", ErrInvalidDefinitions, i)
		}
		name := pair[0].String()
		info := &FieldInfo{
			Nth:            int32(pair[1].Get("nth").Int()),
			IsVLEncoded:    pair[1].Get("isVLEncoded").Bool(),
			IsSerialized:   pair[1].Get("isSerialized").Bool(),
			IsSigningField: pair[1].Get("isSigningField").Bool(),
			Type:           pair[1].Get("type").String(),
		}
		typeCode, ok := d.Types[info.Type]
		if !ok {
			return nil, fmt.Errorf("%w: field %s has unknown type %q", ErrInvalidDefinitions, name, info.Type)
		}

		header := d.CreateFieldHeader(typeCode, info.Nth)
		d.Fields[name] = &FieldInstance{
			FieldName:   name,
			FieldInfo:   info,
			FieldHeader: &header,
			Ordinal:     typeCode<<16 | info.Nth,
		}
		if info.IsSerialized {
			d.fieldIDNameMap[header] = name
		}
	}
	return d, nil
}

func codeMap(doc gjson.Result, key string, required bool) (map[string]int32, error) {
	out := make(map[string]int32)
	section := doc.Get(key)
	if !section.Exists() {
		if required {
			return nil, fmt.Errorf("%w: missing %s", ErrInvalidDefinitions, key)
		}
		return out, nil
	}
	if !section.IsObject() {
		return nil, fmt.Errorf("%w: %s must be an object", ErrInvalidDefinitions, key)
	}
	var err error
	section.ForEach(func(k, v gjson.Result) bool {
		if v.Type != gjson.Number {
			err = fmt.Errorf("%w: %s.%s must be a number", ErrInvalidDefinitions, key, k.String())
			return false
		}
		out[k.String()] = int32(v.Int())
		return true
	})
	return out, err
}

func reverse(m map[string]int32) map[int32]string {
	out := make(map[int32]string, len(m))
	for k, v := range m {
		out[v] = k
	}
	return out
}

// CreateFieldHeader builds a FieldHeader.
func (d *Definitions) CreateFieldHeader(typecode, fieldcode int32) FieldHeader {
	return FieldHeader{TypeCode: typecode, FieldCode: fieldcode}
}

// GetFieldInstanceByFieldName returns the field called fieldName.
func (d *Definitions) GetFieldInstanceByFieldName(fieldName string) (*FieldInstance, error) {
	fi, ok := d.Fields[fieldName]
	if !ok {
		return nil, fmt.Errorf("%w: field %q", ErrNotFound, fieldName)
	}
	return fi, nil
}

// GetFieldHeaderByFieldName returns the header of the field called fieldName.
func (d *Definitions) GetFieldHeaderByFieldName(fieldName string) (*FieldHeader, error) {
	fi, err := d.GetFieldInstanceByFieldName(fieldName)
	if err != nil {
		return nil, err
	}
	return fi.FieldHeader, nil
}

// GetFieldNameByFieldHeader returns the serialized field carrying fh.
func (d *Definitions) GetFieldNameByFieldHeader(fh FieldHeader) (string, error) {
	name, ok := d.fieldIDNameMap[fh]
	if !ok {
		return "", fmt.Errorf("%w: field header %d/%d", ErrNotFound, fh.TypeCode, fh.FieldCode)
	}
	return name, nil
}

// GetTypeNameByFieldName returns the serialized type name of a field.
func (d *Definitions) GetTypeNameByFieldName(fieldName string) (string, error) {
	fi, err := d.GetFieldInstanceByFieldName(fieldName)
	if err != nil {
		return "", err
	}
	return fi.Type, nil
}

// GetTypeCodeByTypeName returns the code of a serialized type.
func (d *Definitions) GetTypeCodeByTypeName(typeName string) (int32, error) {
	code, ok := d.Types[typeName]
	if !ok {
		return 0, fmt.Errorf("%w: type %q", ErrNotFound, typeName)
	}
	return code, nil
}

// GetTransactionTypeCodeByTransactionTypeName returns the wire code of a transaction type.
func (d *Definitions) GetTransactionTypeCodeByTransactionTypeName(name string) (int32, error) {
	code, ok := d.TransactionTypes[name]
	if !ok {
		return 0, fmt.Errorf("%w: transaction type %q", ErrNotFound, name)
	}
	return code, nil
}

// GetTransactionTypeNameByTransactionTypeCode is the inverse of GetTransactionTypeCodeByTransactionTypeName.
func (d *Definitions) GetTransactionTypeNameByTransactionTypeCode(code int32) (string, error) {
	name, ok := d.transactionTypeNames[code]
	if !ok {
		return "", fmt.Errorf("%w: transaction type code %d", ErrNotFound, code)
	}
	return name, nil
}

// GetTransactionResultTypeCodeByTransactionResultName returns the code of a result such as tesSUCCESS.
func (d *Definitions) GetTransactionResultTypeCodeByTransactionResultName(name string) (int32, error) {
	code, ok := d.TransactionResults[name]
	if !ok {
		return 0, fmt.Errorf("%w: transaction result %q", ErrNotFound, name)
	}
	return code, nil
}

// GetTransactionResultNameByTransactionResultTypeCode is the inverse of GetTransactionResultTypeCodeByTransactionResultName.
func (d *Definitions) GetTransactionResultNameByTransactionResultTypeCode(code int32) (string, error) {
	name, ok := d.transactionResultNames[code]
	if !ok {
		return "", fmt.Errorf("%w: transaction result code %d", ErrNotFound, code)
	}
	return name, nil
}

// GetLedgerEntryTypeCodeByLedgerEntryTypeName returns the code of a ledger entry type.
func (d *Definitions) GetLedgerEntryTypeCodeByLedgerEntryTypeName(name string) (int32, error) {
	code, ok := d.LedgerEntryTypes[name]
	if !ok {
		return 0, fmt.Errorf("%w: ledger entry type %q", ErrNotFound, name)
	}
	return code, nil
}

// GetLedgerEntryTypeNameByLedgerEntryTypeCode is the inverse of GetLedgerEntryTypeCodeByLedgerEntryTypeName.
func (d *Definitions) GetLedgerEntryTypeNameByLedgerEntryTypeCode(code int32) (string, error) {
	name, ok := d.ledgerEntryTypeNames[code]
	if !ok {
		return "", fmt.Errorf("%w: ledger entry type code %d", ErrNotFound, code)
	}
	return name, nil
}
