package tx

import "slices"

// Transaction is the read-only view of a decoded ledger transaction. It is
// implemented only by types embedding BaseTransaction.
type Transaction interface {
	// Type returns the static type of the decoding variant, independent of
	// the payload.
	Type() Type

	// TransactionType returns the payload's TransactionType, or the static
	// type name when the payload has none.
	TransactionType() string

	// Fields returns the field names the variant recognizes, base fields
	// first.
	Fields() []string

	// Field returns the value of one recognized field.
	Field(name string) (any, bool)

	// Common returns the fields shared by all transaction kinds.
	Common() *Common

	// Meta returns the parsed metadata, nil for unvalidated transactions.
	Meta() *Metadata

	// Raw returns the payload the view was decoded from.
	Raw() []byte

	base() *BaseTransaction
}

// Deriver is implemented by variants exposing values computed from
// metadata rather than read from the payload.
type Deriver interface {
	Derived() map[string]any
}

// BaseTransaction holds what every variant shares. Variants embed it by
// value and add their own typed fields.
type BaseTransaction struct {
	kind   Type
	raw    []byte
	obj    Object
	common Common
	meta   *Metadata
}

func newBase(kind Type, raw, meta []byte) BaseTransaction {
	obj := ParseObject(raw)
	return BaseTransaction{
		kind:   kind,
		raw:    raw,
		obj:    obj,
		common: parseCommon(obj),
		meta:   ParseMetadata(meta),
	}
}

func (b *BaseTransaction) base() *BaseTransaction { return b }

func (b *BaseTransaction) Type() Type { return b.kind }

func (b *BaseTransaction) TransactionType() string {
	if t, ok := b.common.TransactionType(); ok {
		return t
	}
	if b.kind == TypeUnknown {
		return ""
	}
	return b.kind.String()
}

func (b *BaseTransaction) Fields() []string {
	return slices.Clone(FieldsOf(b.kind))
}

func (b *BaseTransaction) Common() *Common { return &b.common }

func (b *BaseTransaction) Meta() *Metadata { return b.meta }

func (b *BaseTransaction) Raw() []byte { return b.raw }

// Object returns the raw payload view, for fields no getter covers.
func (b *BaseTransaction) Object() Object { return b.obj }

// TransactionResult returns the engine result recorded in metadata.
func (b *BaseTransaction) TransactionResult() (string, bool) {
	if b.meta == nil || b.meta.TransactionResult == "" {
		return "", false
	}
	return b.meta.TransactionResult, true
}

func (b *BaseTransaction) Field(name string) (any, bool) {
	c := &b.common
	switch name {
	case "TransactionType":
		t := b.TransactionType()
		return t, t != ""
	case "Account":
		return Opt(c.account)
	case "Sequence":
		return Opt(c.sequence)
	case "Fee":
		return Opt(c.fee)
	case "Flags":
		return Opt(c.flags)
	case "SourceTag":
		return Opt(c.sourceTag)
	case "LastLedgerSequence":
		return Opt(c.lastLedgerSequence)
	case "AccountTxnID":
		return Opt(c.accountTxnID)
	case "TicketSequence":
		return Opt(c.ticketSequence)
	case "NetworkID":
		return Opt(c.networkID)
	case "Memos":
		return c.memos, c.memos != nil
	case "Signers":
		return c.signers, c.signers != nil
	case "SigningPubKey":
		return Opt(c.signingPubKey)
	case "TxnSignature":
		return Opt(c.txnSignature)
	case "hash":
		return Opt(c.hash)
	}
	return nil, false
}

// TransactionType returns the raw TransactionType member.
func (c *Common) TransactionType() (string, bool) { return Get(c.transactionType) }

// Values collects every present recognized field of t, keyed by name.
func Values(t Transaction) map[string]any {
	out := make(map[string]any)
	for _, name := range t.Fields() {
		if v, ok := t.Field(name); ok {
			out[name] = v
		}
	}
	return out
}
