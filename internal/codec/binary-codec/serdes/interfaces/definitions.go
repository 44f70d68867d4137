package interfaces

import "github.com/LeJamon/goXRPLkit/internal/codec/binary-codec/definitions"

// Definitions is the view of a definitions table the codec needs.
type Definitions interface {
	GetFieldNameByFieldHeader(fh definitions.FieldHeader) (string, error)
	GetFieldInstanceByFieldName(fieldName string) (*definitions.FieldInstance, error)
	GetFieldHeaderByFieldName(fieldName string) (*definitions.FieldHeader, error)
	CreateFieldHeader(typecode, fieldcode int32) definitions.FieldHeader

	GetTransactionTypeCodeByTransactionTypeName(name string) (int32, error)
	GetTransactionTypeNameByTransactionTypeCode(code int32) (string, error)
	GetTransactionResultTypeCodeByTransactionResultName(name string) (int32, error)
	GetTransactionResultNameByTransactionResultTypeCode(code int32) (string, error)
	GetLedgerEntryTypeCodeByLedgerEntryTypeName(name string) (int32, error)
	GetLedgerEntryTypeNameByLedgerEntryTypeCode(code int32) (string, error)
}
