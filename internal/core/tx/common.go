package tx

import (
	"encoding/hex"
	"time"
	"unicode/utf8"
)

// Memo represents a memo attached to a transaction. Members are hex as on
// the ledger.
type Memo struct {
	MemoType   string `json:"MemoType,omitempty"`
	MemoData   string `json:"MemoData,omitempty"`
	MemoFormat string `json:"MemoFormat,omitempty"`
}

// Text returns MemoData decoded as UTF-8 text.
func (m Memo) Text() (string, bool) {
	b, err := hex.DecodeString(m.MemoData)
	if err != nil || len(b) == 0 || !utf8.Valid(b) {
		return "", false
	}
	return string(b), true
}

// Signer represents a signer in a multi-signed transaction
type Signer struct {
	Account       string `json:"Account"`
	SigningPubKey string `json:"SigningPubKey"`
	TxnSignature  string `json:"TxnSignature"`
}

// Common contains fields common to all transaction types
type Common struct {
	transactionType    *string
	account            *string
	sequence           *uint32
	fee                *Amount
	flags              *uint32
	sourceTag          *uint32
	lastLedgerSequence *uint32
	accountTxnID       *string
	ticketSequence     *uint32
	networkID          *uint32
	memos              []Memo
	signers            []Signer
	signingPubKey      *string
	txnSignature       *string
	hash               *string
	date               *uint32
}

func parseCommon(o Object) Common {
	c := Common{
		transactionType:    o.Str("TransactionType"),
		account:            o.Str("Account"),
		sequence:           o.Uint32("Sequence"),
		fee:                o.Amount("Fee"),
		flags:              o.Uint32("Flags"),
		sourceTag:          o.Uint32("SourceTag"),
		lastLedgerSequence: o.Uint32("LastLedgerSequence"),
		accountTxnID:       o.Str("AccountTxnID"),
		ticketSequence:     o.Uint32("TicketSequence"),
		networkID:          o.Uint32("NetworkID"),
		signingPubKey:      o.Str("SigningPubKey"),
		txnSignature:       o.Str("TxnSignature"),
		hash:               o.Str("hash"),
		date:               o.Uint32("date"),
	}
	for _, w := range o.Array("Memos") {
		m := w.Object("Memo")
		if m.IsEmpty() {
			continue
		}
		c.memos = append(c.memos, Memo{
			MemoType:   deref(m.Str("MemoType")),
			MemoData:   deref(m.Str("MemoData")),
			MemoFormat: deref(m.Str("MemoFormat")),
		})
	}
	for _, w := range o.Array("Signers") {
		s := w.Object("Signer")
		if s.IsEmpty() {
			continue
		}
		c.signers = append(c.signers, Signer{
			Account:       deref(s.Str("Account")),
			SigningPubKey: deref(s.Str("SigningPubKey")),
			TxnSignature:  deref(s.Str("TxnSignature")),
		})
	}
	return c
}

func (c *Common) Account() (string, bool)            { return Get(c.account) }
func (c *Common) Sequence() (uint32, bool)           { return Get(c.sequence) }
func (c *Common) Fee() (Amount, bool)                { return Get(c.fee) }
func (c *Common) Flags() (uint32, bool)              { return Get(c.flags) }
func (c *Common) SourceTag() (uint32, bool)          { return Get(c.sourceTag) }
func (c *Common) LastLedgerSequence() (uint32, bool) { return Get(c.lastLedgerSequence) }
func (c *Common) AccountTxnID() (string, bool)       { return Get(c.accountTxnID) }
func (c *Common) TicketSequence() (uint32, bool)     { return Get(c.ticketSequence) }
func (c *Common) NetworkID() (uint32, bool)          { return Get(c.networkID) }
func (c *Common) SigningPubKey() (string, bool)      { return Get(c.signingPubKey) }
func (c *Common) TxnSignature() (string, bool)       { return Get(c.txnSignature) }
func (c *Common) Hash() (string, bool)               { return Get(c.hash) }

// Memos returns the decoded memos, nil when there are none.
func (c *Common) Memos() []Memo {
	return c.memos
}

// Signers returns the multi-signature entries, nil for single-signed
// transactions.
func (c *Common) Signers() []Signer {
	return c.signers
}

// HasFlag reports whether every bit of flag is set.
func (c *Common) HasFlag(flag uint32) bool {
	f, _ := c.Flags()
	return f&flag == flag
}

// Date returns the close time of the ledger that included the transaction.
func (c *Common) Date() (time.Time, bool) {
	if c.date == nil {
		return time.Time{}, false
	}
	return time.Unix(RippleEpoch+int64(*c.date), 0).UTC(), true
}
