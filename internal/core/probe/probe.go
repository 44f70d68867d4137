// Package probe builds the signed placeholder transaction a Hooks-enabled
// node needs to estimate the fee of a transaction before it is signed for
// real.
package probe

import (
	"bytes"
	"crypto/sha256"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/tidwall/gjson"

	"github.com/LeJamon/goXRPLkit/internal/codec/binary-codec/definitions"
)

// DefaultDefinitionsCacheSize is the number of parsed custom definitions
// tables a Builder keeps.
const DefaultDefinitionsCacheSize = 16

// ErrInvalidInput is returned when the transaction is absent or not a JSON
// object, or when a supplied definitions object cannot be loaded.
var ErrInvalidInput = errors.New("invalid input")

// Builder prepares and signs fee probes.
type Builder struct {
	signer    Signer
	logger    *slog.Logger
	cacheSize int
	defs      *lru.Cache[[sha256.Size]byte, *definitions.Definitions]
}

// Option configures a Builder.
type Option func(*Builder)

// WithSigner replaces the default empty-passphrase signer.
func WithSigner(s Signer) Option {
	return func(b *Builder) { b.signer = s }
}

func WithLogger(l *slog.Logger) Option {
	return func(b *Builder) { b.logger = l }
}

// WithDefinitionsCacheSize bounds the custom definitions cache. Values
// below one keep the default.
func WithDefinitionsCacheSize(n int) Option {
	return func(b *Builder) {
		if n > 0 {
			b.cacheSize = n
		}
	}
}

// NewBuilder returns a Builder. Without WithSigner it signs with the key of
// the empty passphrase.
func NewBuilder(opts ...Option) (*Builder, error) {
	b := &Builder{
		logger:    slog.Default(),
		cacheSize: DefaultDefinitionsCacheSize,
	}
	for _, opt := range opts {
		opt(b)
	}
	if b.signer == nil {
		s, err := NewPassphraseSigner("")
		if err != nil {
			return nil, err
		}
		b.signer = s
	}
	cache, err := lru.New[[sha256.Size]byte, *definitions.Definitions](b.cacheSize)
	if err != nil {
		return nil, err
	}
	b.defs = cache
	return b, nil
}

// Prepare returns a fresh copy of the transaction with the probe
// placeholders applied:
//
//   - Fee is "0" and SigningPubKey is empty,
//   - Sequence is 0 when the transaction has none,
//   - a Payment without a truthy Amount gets Amount "0".
//
// Numbers keep their JSON text.
func (b *Builder) Prepare(txJSON []byte) (map[string]any, error) {
	txJSON = bytes.TrimSpace(txJSON)
	if len(txJSON) == 0 || !gjson.ValidBytes(txJSON) || !gjson.ParseBytes(txJSON).IsObject() {
		return nil, fmt.Errorf("%w: transaction must be a JSON object", ErrInvalidInput)
	}

	dec := json.NewDecoder(bytes.NewReader(txJSON))
	dec.UseNumber()
	var tx map[string]any
	if err := dec.Decode(&tx); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	tx["Fee"] = "0"
	tx["SigningPubKey"] = ""
	if _, ok := tx["Sequence"]; !ok {
		tx["Sequence"] = uint32(0)
	}
	if tx["TransactionType"] == "Payment" && !truthy(tx["Amount"]) {
		tx["Amount"] = "0"
	}
	return tx, nil
}

// Build prepares txJSON and signs it. definitionsJSON selects the field
// table: a JSON object is loaded as a custom table, anything else (nil,
// null, a scalar) selects the default XRPL table. Signer errors are
// returned unchanged.
func (b *Builder) Build(txJSON, definitionsJSON []byte) (string, error) {
	tx, err := b.Prepare(txJSON)
	if err != nil {
		return "", err
	}
	defs, err := b.definitions(definitionsJSON)
	if err != nil {
		return "", err
	}

	blob, err := b.signer.Sign(tx, defs)
	if err != nil {
		return "", err
	}
	b.logger.Debug("Fee probe built",
		"transaction_type", tx["TransactionType"],
		"custom_definitions", defs != definitions.Get(),
		"size", len(blob)/2,
	)
	return blob, nil
}

func (b *Builder) definitions(raw []byte) (*definitions.Definitions, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return definitions.Get(), nil
	}
	if !gjson.ValidBytes(raw) {
		return nil, fmt.Errorf("%w: definitions are not valid JSON", ErrInvalidInput)
	}
	if !gjson.ParseBytes(raw).IsObject() {
		return definitions.Get(), nil
	}

	key := sha256.Sum256(raw)
	if d, ok := b.defs.Get(key); ok {
		return d, nil
	}
	d, err := definitions.Load(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	b.defs.Add(key, d)
	b.logger.Debug("Loaded custom definitions",
		"transaction_types", len(d.TransactionTypes),
		"fields", len(d.Fields),
	)
	return d, nil
}

// truthy mirrors JavaScript truthiness for decoded JSON values.
func truthy(v any) bool {
	switch t := v.(type) {
	case nil:
		return false
	case bool:
		return t
	case string:
		return t != ""
	case json.Number:
		f, err := t.Float64()
		return err != nil || f != 0
	}
	return true
}

// PrepareTxForHookFee builds a fee probe with a default Builder.
func PrepareTxForHookFee(txJSON, definitionsJSON []byte) (string, error) {
	b, err := NewBuilder()
	if err != nil {
		return "", err
	}
	return b.Build(txJSON, definitionsJSON)
}
