//revive:disable:var-naming
package types

import (
	"fmt"

	"github.com/LeJamon/goXRPLkit/internal/codec/binary-codec/types/interfaces"
)

const (
	pathStepAccount  byte = 0x01
	pathStepCurrency byte = 0x10
	pathStepIssuer   byte = 0x20

	pathSeparator byte = 0xFF
	pathSetEnd    byte = 0x00
)

// PathSet is the list of alternative payment paths of a Payment.
type PathSet struct{}

// FromJSON encodes a list of paths, each a list of steps with optional
// account, currency and issuer keys.
func (ps *PathSet) FromJSON(value any) ([]byte, error) {
	paths, ok := value.([]any)
	if !ok {
		return nil, fmt.Errorf("%w: PathSet must be a list, got %T", ErrInvalidValue, value)
	}

	var out []byte
	for i, path := range paths {
		steps, err := pathSteps(path)
		if err != nil {
			return nil, err
		}
		for _, step := range steps {
			b, err := encodePathStep(step)
			if err != nil {
				return nil, err
			}
			out = append(out, b...)
		}
		if i < len(paths)-1 {
			out = append(out, pathSeparator)
		}
	}
	return append(out, pathSetEnd), nil
}

func pathSteps(path any) ([]map[string]any, error) {
	switch p := path.(type) {
	case []map[string]any:
		return p, nil
	case []any:
		steps := make([]map[string]any, 0, len(p))
		for _, s := range p {
			m, ok := s.(map[string]any)
			if !ok {
				return nil, fmt.Errorf("%w: path step must be an object, got %T", ErrInvalidValue, s)
			}
			steps = append(steps, m)
		}
		return steps, nil
	}
	return nil, fmt.Errorf("%w: path must be a list, got %T", ErrInvalidValue, path)
}

func encodePathStep(step map[string]any) ([]byte, error) {
	var kind byte
	var body []byte

	if account, ok := step["account"]; ok {
		b, err := (&AccountID{}).FromJSON(account)
		if err != nil {
			return nil, err
		}
		kind |= pathStepAccount
		body = append(body, b...)
	}
	if currency, ok := step["currency"]; ok {
		b, err := (&Currency{}).FromJSON(currency)
		if err != nil {
			return nil, err
		}
		kind |= pathStepCurrency
		body = append(body, b...)
	}
	if issuer, ok := step["issuer"]; ok {
		b, err := (&AccountID{}).FromJSON(issuer)
		if err != nil {
			return nil, err
		}
		kind |= pathStepIssuer
		body = append(body, b...)
	}
	if kind == 0 {
		return nil, fmt.Errorf("%w: empty path step", ErrInvalidValue)
	}
	return append([]byte{kind}, body...), nil
}

// ToJSON reads paths up to the end byte.
func (ps *PathSet) ToJSON(p interfaces.BinaryParser, _ ...int) (any, error) {
	var paths []any
	path := []any{}
	for {
		kind, err := p.ReadByte()
		if err != nil {
			return nil, err
		}
		switch kind {
		case pathSetEnd:
			return append(paths, path), nil
		case pathSeparator:
			paths = append(paths, path)
			path = []any{}
			continue
		}

		step := map[string]any{}
		if kind&pathStepAccount != 0 {
			if step["account"], err = (&AccountID{}).ToJSON(p); err != nil {
				return nil, err
			}
		}
		if kind&pathStepCurrency != 0 {
			if step["currency"], err = (&Currency{}).ToJSON(p); err != nil {
				return nil, err
			}
		}
		if kind&pathStepIssuer != 0 {
			if step["issuer"], err = (&AccountID{}).ToJSON(p); err != nil {
				return nil, err
			}
		}
		path = append(path, step)
	}
}
