package definitions

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGet_FieldInstances(t *testing.T) {
	defs := Get()

	tests := []struct {
		name     string
		field    string
		typeName string
		nth      int32
		vl       bool
		signing  bool
		typeCode int32
	}{
		{"TransactionType", "TransactionType", "UInt16", 2, false, true, 1},
		{"Flags", "Flags", "UInt32", 2, false, true, 2},
		{"Fee", "Fee", "Amount", 8, false, true, 6},
		{"SigningPubKey", "SigningPubKey", "Blob", 3, true, true, 7},
		{"TxnSignature", "TxnSignature", "Blob", 4, true, false, 7},
		{"Account", "Account", "AccountID", 1, true, true, 8},
		{"Channel", "Channel", "Hash256", 22, false, true, 5},
		{"NFTokenTaxon", "NFTokenTaxon", "UInt32", 42, false, true, 2},
		{"TransferFee", "TransferFee", "UInt16", 4, false, true, 1},
		{"Signers", "Signers", "STArray", 3, false, false, 15},
		{"TransactionResult", "TransactionResult", "UInt8", 3, false, true, 16},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fi, err := defs.GetFieldInstanceByFieldName(tt.field)
			require.NoError(t, err)
			assert.Equal(t, tt.field, fi.FieldName)
			assert.Equal(t, tt.typeName, fi.Type)
			assert.Equal(t, tt.nth, fi.Nth)
			assert.Equal(t, tt.vl, fi.IsVLEncoded)
			assert.Equal(t, tt.signing, fi.IsSigningField)
			assert.Equal(t, FieldHeader{TypeCode: tt.typeCode, FieldCode: tt.nth}, *fi.FieldHeader)
			assert.Equal(t, tt.typeCode<<16|tt.nth, fi.Ordinal)
		})
	}
}

func TestGet_IsShared(t *testing.T) {
	assert.Same(t, Get(), Get())
}

func TestGetFieldNameByFieldHeader(t *testing.T) {
	defs := Get()

	name, err := defs.GetFieldNameByFieldHeader(defs.CreateFieldHeader(8, 1))
	require.NoError(t, err)
	assert.Equal(t, "Account", name)

	_, err = defs.GetFieldNameByFieldHeader(defs.CreateFieldHeader(8, 99))
	assert.ErrorIs(t, err, ErrNotFound)

	// Non-serialized fields are never resolved from the wire.
	_, err = defs.GetFieldNameByFieldHeader(defs.CreateFieldHeader(5, 257))
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestTransactionTypeLookups(t *testing.T) {
	defs := Get()

	code, err := defs.GetTransactionTypeCodeByTransactionTypeName("PaymentChannelClaim")
	require.NoError(t, err)
	assert.Equal(t, int32(15), code)

	name, err := defs.GetTransactionTypeNameByTransactionTypeCode(25)
	require.NoError(t, err)
	assert.Equal(t, "NFTokenMint", name)

	_, err = defs.GetTransactionTypeCodeByTransactionTypeName("URITokenBurn")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestTransactionResultAndLedgerEntryLookups(t *testing.T) {
	defs := Get()

	code, err := defs.GetTransactionResultTypeCodeByTransactionResultName("tesSUCCESS")
	require.NoError(t, err)
	assert.Equal(t, int32(0), code)

	name, err := defs.GetTransactionResultNameByTransactionResultTypeCode(128)
	require.NoError(t, err)
	assert.Equal(t, "tecPATH_DRY", name)

	code, err = defs.GetLedgerEntryTypeCodeByLedgerEntryTypeName("PayChannel")
	require.NoError(t, err)
	assert.Equal(t, int32(120), code)

	name, err = defs.GetLedgerEntryTypeNameByLedgerEntryTypeCode(80)
	require.NoError(t, err)
	assert.Equal(t, "NFTokenPage", name)
}

func TestLoad_CustomTable(t *testing.T) {
	data, err := os.ReadFile("testdata/xahau_definitions.json")
	require.NoError(t, err)

	defs, err := Load(data)
	require.NoError(t, err)

	code, err := defs.GetTransactionTypeCodeByTransactionTypeName("URITokenBurn")
	require.NoError(t, err)
	assert.Equal(t, int32(46), code)

	fi, err := defs.GetFieldInstanceByFieldName("URITokenID")
	require.NoError(t, err)
	assert.Equal(t, "Hash256", fi.Type)

	_, err = Get().GetFieldInstanceByFieldName("URITokenID")
	assert.ErrorIs(t, err, ErrNotFound, "loading a custom table must not alter the default one")
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"empty", ""},
		{"not json", "{not json"},
		{"array", "[]"},
		{"missing TYPES", `{"TRANSACTION_TYPES":{},"FIELDS":[]}`},
		{"missing TRANSACTION_TYPES", `{"TYPES":{},"FIELDS":[]}`},
		{"non numeric code", `{"TYPES":{"UInt16":"one"},"TRANSACTION_TYPES":{},"FIELDS":[]}`},
		{"FIELDS not array", `{"TYPES":{},"TRANSACTION_TYPES":{},"FIELDS":{}}`},
		{"bad field pair", `{"TYPES":{},"TRANSACTION_TYPES":{},"FIELDS":[["Flags"]]}`},
		{"unknown field type", `{"TYPES":{},"TRANSACTION_TYPES":{},"FIELDS":[["Flags",{"nth":2,"type":"UInt32"}]]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load([]byte(tt.data))
			assert.ErrorIs(t, err, ErrInvalidDefinitions)
		})
	}
}
