package tx

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const offerCreateJSON = `{
	"Account": "rMBzp8CgpE441cp5PVyA9rpVV7oT8hP3ys",
	"Fee": "12",
	"Flags": 524288,
	"Sequence": 1752792,
	"LastLedgerSequence": 56865248,
	"SigningPubKey": "03EE83BB432547885C219634A1BC407A9DB0474145D69737D09CCDC63E1DEE7FE3",
	"TakerGets": "15000000000",
	"TakerPays": {"currency": "USD", "issuer": "rvYAfWj5gh67oV6fW32ZzP3Aw4Eubs59B", "value": "7072.8"},
	"TransactionType": "OfferCreate",
	"TxnSignature": "30440220143759437C04F7B61F012563AFE90D8DAFC46E86035E1D965A9CED282C97D4CE",
	"Memos": [
		{"Memo": {"MemoType": "74657374", "MemoData": "68656C6C6F"}},
		{"NotAMemo": {}}
	],
	"hash": "73734B611DDA23D3F5F62E20A173B78AB8406AC5015094DA53F53D39B9EDB06C",
	"date": 700000000
}`

func TestParseObject_NonObjects(t *testing.T) {
	for _, raw := range []string{"", "null", "[]", `"str"`, "42", "{not json"} {
		t.Run(raw, func(t *testing.T) {
			o := ParseObject([]byte(raw))
			assert.True(t, o.IsEmpty())
			assert.Nil(t, o.Str("Account"))
			assert.Nil(t, o.Uint32("Sequence"))
			assert.Nil(t, o.Amount("Fee"))
			assert.Nil(t, o.Array("Memos"))
		})
	}
}

func TestObject_TypeChecks(t *testing.T) {
	o := ParseObject([]byte(`{
		"s": "x", "n": 5, "neg": -1, "frac": 1.5, "big": 4294967296, "null": null,
		"drops": "1000000", "badDrops": "1.5",
		"iou": {"currency": "USD", "issuer": "rIssuer", "value": "1.25"},
		"mpt": {"mpt_issuance_id": "00000001", "value": "9"},
		"noValue": {"currency": "USD"}
	}`))

	assert.Nil(t, o.Str("n"))
	assert.Nil(t, o.Uint32("s"))
	assert.Nil(t, o.Uint32("neg"))
	assert.Nil(t, o.Uint32("frac"))
	assert.Nil(t, o.Uint32("big"))
	assert.Nil(t, o.Str("null"))
	assert.False(t, o.Has("null"))
	assert.True(t, o.Has("s"))
	assert.Equal(t, uint32(5), *o.Uint32("n"))

	assert.Equal(t, Amount{Currency: "XRP", Value: "1"}, *o.Amount("drops"))
	assert.Nil(t, o.Amount("badDrops"))
	assert.Equal(t, Amount{Currency: "USD", Value: "1.25", Issuer: "rIssuer"}, *o.Amount("iou"))
	assert.Equal(t, Amount{Value: "9", MPTIssuanceID: "00000001"}, *o.Amount("mpt"))
	assert.Nil(t, o.Amount("noValue"))
	assert.Nil(t, o.Amount("n"))
}

func TestDecode_UnknownKindKeepsBaseView(t *testing.T) {
	txn := Decode([]byte(offerCreateJSON), nil)

	assert.Equal(t, TypeUnknown, txn.Type())
	assert.Equal(t, "OfferCreate", txn.TransactionType())
	assert.Equal(t, baseFields, txn.Fields())
	assert.Nil(t, txn.Meta())

	c := txn.Common()
	account, ok := c.Account()
	require.True(t, ok)
	assert.Equal(t, "rMBzp8CgpE441cp5PVyA9rpVV7oT8hP3ys", account)

	seq, ok := c.Sequence()
	require.True(t, ok)
	assert.Equal(t, uint32(1752792), seq)

	fee, ok := c.Fee()
	require.True(t, ok)
	assert.Equal(t, Amount{Currency: "XRP", Value: "0.000012"}, fee)
	assert.True(t, fee.IsNative())

	assert.True(t, c.HasFlag(0x00080000))
	assert.False(t, c.HasFlag(0x00010000))

	_, ok = c.SourceTag()
	assert.False(t, ok)
	_, ok = c.TicketSequence()
	assert.False(t, ok)

	require.Len(t, c.Memos(), 1)
	text, ok := c.Memos()[0].Text()
	require.True(t, ok)
	assert.Equal(t, "hello", text)
	assert.Nil(t, c.Signers())

	date, ok := c.Date()
	require.True(t, ok)
	assert.Equal(t, time.Date(2022, 3, 7, 20, 26, 40, 0, time.UTC), date)

	hash, ok := c.Hash()
	require.True(t, ok)
	assert.Equal(t, "73734B611DDA23D3F5F62E20A173B78AB8406AC5015094DA53F53D39B9EDB06C", hash)
}

func TestDecode_EmptyAndMalformed(t *testing.T) {
	for _, raw := range [][]byte{nil, []byte("{"), []byte(`{"TransactionType": 7}`), []byte(`{"TransactionType": "NoSuchKind"}`)} {
		t.Run(string(raw), func(t *testing.T) {
			txn := Decode(raw, []byte("not json"))
			assert.Equal(t, TypeUnknown, txn.Type())
			assert.Nil(t, txn.Meta())
			_, ok := txn.Common().Account()
			assert.False(t, ok)
		})
	}

	assert.Equal(t, "NoSuchKind", Decode([]byte(`{"TransactionType": "NoSuchKind"}`), nil).TransactionType())
	assert.Equal(t, "", Decode(nil, nil).TransactionType())
}

func TestNew_UnregisteredKindFallsBack(t *testing.T) {
	txn := New(TypeCheckCash, nil, nil)
	assert.Equal(t, TypeUnknown, txn.Type())
}

func TestFields_ReturnsCopy(t *testing.T) {
	txn := Decode(nil, nil)
	f := txn.Fields()
	f[0] = "mutated"
	assert.Equal(t, "TransactionType", txn.Fields()[0])
}

func TestRegister(t *testing.T) {
	const kind Type = 0x7FF0

	Register(kind, []string{"Account", "Extra", "Extra"}, func(base BaseTransaction, _ Object) Transaction {
		return &base
	})

	assert.True(t, IsRegistered(kind))
	fields := FieldsOf(kind)
	assert.Equal(t, append(append([]string{}, baseFields...), "Extra"), fields)

	txn := New(kind, []byte(`{"Account": "rA"}`), nil)
	assert.Equal(t, kind, txn.Type())
	assert.Equal(t, "Type(32752)", txn.TransactionType())

	assert.Panics(t, func() {
		Register(kind, nil, func(base BaseTransaction, _ Object) Transaction { return &base })
	})
	assert.Panics(t, func() { Register(0x7FF1, nil, nil) })
	assert.Panics(t, func() {
		Register(TypeUnknown, nil, func(base BaseTransaction, _ Object) Transaction { return &base })
	})
}

func TestValues(t *testing.T) {
	v := Values(Decode([]byte(offerCreateJSON), nil))

	assert.Equal(t, "OfferCreate", v["TransactionType"])
	assert.Equal(t, uint32(1752792), v["Sequence"])
	assert.Equal(t, Amount{Currency: "XRP", Value: "0.000012"}, v["Fee"])
	assert.NotContains(t, v, "SourceTag")
	assert.NotContains(t, v, "TakerGets")
}

func TestTypeNames(t *testing.T) {
	for name, kind := range typeNameMap {
		got, ok := TypeFromName(name)
		require.True(t, ok)
		assert.Equal(t, kind, got)
		assert.Equal(t, name, kind.String())
	}
	_, ok := TypeFromName("Nope")
	assert.False(t, ok)
	assert.Equal(t, "Unknown", TypeUnknown.String())
}
