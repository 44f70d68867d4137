package tx

import (
	"fmt"
	"slices"
	"sync"
)

// baseFields are recognized by every variant.
var baseFields = []string{
	"TransactionType",
	"Account",
	"Sequence",
	"Fee",
	"Flags",
	"SourceTag",
	"LastLedgerSequence",
	"AccountTxnID",
	"TicketSequence",
	"NetworkID",
	"Memos",
	"Signers",
	"SigningPubKey",
	"TxnSignature",
	"hash",
}

// Decoder builds a variant around an already decoded base.
type Decoder func(base BaseTransaction, o Object) Transaction

type registration struct {
	fields []string
	decode Decoder
}

var (
	registryMu sync.RWMutex
	registry   = map[Type]registration{
		TypeUnknown: {
			fields: slices.Clone(baseFields),
			decode: func(base BaseTransaction, _ Object) Transaction { return &base },
		},
	}
)

// Register adds a variant decoder. fields lists the names the variant
// recognizes on top of the base fields. It is meant to be called from
// init and panics on a second registration of the same kind.
func Register(kind Type, fields []string, decode Decoder) {
	if decode == nil {
		panic(fmt.Sprintf("tx: nil decoder for %s", kind))
	}

	registryMu.Lock()
	defer registryMu.Unlock()
	if _, dup := registry[kind]; dup {
		panic(fmt.Sprintf("tx: %s registered twice", kind))
	}

	all := slices.Clone(baseFields)
	for _, f := range fields {
		if !slices.Contains(all, f) {
			all = append(all, f)
		}
	}
	registry[kind] = registration{fields: all, decode: decode}
}

func lookup(kind Type) (registration, bool) {
	registryMu.RLock()
	defer registryMu.RUnlock()
	r, ok := registry[kind]
	return r, ok
}

// IsRegistered reports whether a variant decoder exists for kind.
func IsRegistered(kind Type) bool {
	_, ok := lookup(kind)
	return ok
}

// FieldsOf returns the recognized field set of kind. Unregistered kinds get
// the base set. The returned slice must not be modified.
func FieldsOf(kind Type) []string {
	if r, ok := lookup(kind); ok {
		return r.fields
	}
	r, _ := lookup(TypeUnknown)
	return r.fields
}

// Decode decodes raw with the variant named by its TransactionType. Payloads
// of unregistered or missing kinds decode as the base view with Type
// TypeUnknown. Decode never fails; malformed members read as absent.
func Decode(raw, meta []byte) Transaction {
	kind := TypeUnknown
	if name := ParseObject(raw).Str("TransactionType"); name != nil {
		if t, ok := TypeFromName(*name); ok {
			kind = t
		}
	}
	return New(kind, raw, meta)
}

// New decodes raw with the variant registered for kind, regardless of the
// payload's own TransactionType. A nil raw yields an empty view.
func New(kind Type, raw, meta []byte) Transaction {
	r, ok := lookup(kind)
	if !ok {
		kind = TypeUnknown
		r, _ = lookup(kind)
	}
	base := newBase(kind, raw, meta)
	return r.decode(base, base.obj)
}
