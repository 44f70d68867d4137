package tx

import (
	"encoding/json"
	"strconv"

	"github.com/tidwall/gjson"
)

// Object is a read-only view over a raw ledger JSON object. Lookups return
// nil when the member is absent, null, or of an unexpected JSON type.
type Object struct {
	res gjson.Result
}

// ParseObject wraps raw. Input that is not a JSON object yields an empty
// Object.
func ParseObject(raw []byte) Object {
	if len(raw) == 0 || !gjson.ValidBytes(raw) {
		return Object{}
	}
	res := gjson.ParseBytes(raw)
	if !res.IsObject() {
		return Object{}
	}
	return Object{res: res}
}

func (o Object) member(name string) gjson.Result {
	if !o.res.IsObject() {
		return gjson.Result{}
	}
	return o.res.Get(gjson.Escape(name))
}

// Has reports whether name is present with a non-null value.
func (o Object) Has(name string) bool {
	r := o.member(name)
	return r.Exists() && r.Type != gjson.Null
}

// Str returns a string member.
func (o Object) Str(name string) *string {
	r := o.member(name)
	if r.Type != gjson.String {
		return nil
	}
	s := r.Str
	return &s
}

// Uint32 returns an integral numeric member within the uint32 range.
func (o Object) Uint32(name string) *uint32 {
	r := o.member(name)
	if r.Type != gjson.Number {
		return nil
	}
	v, err := strconv.ParseUint(r.Raw, 10, 32)
	if err != nil {
		return nil
	}
	u := uint32(v)
	return &u
}

// Amount returns an amount member (drops string or issued object).
func (o Object) Amount(name string) *Amount {
	a, ok := amountFromResult(o.member(name))
	if !ok {
		return nil
	}
	return &a
}

// Object returns a nested object member. An absent member yields an empty
// Object.
func (o Object) Object(name string) Object {
	r := o.member(name)
	if !r.IsObject() {
		return Object{}
	}
	return Object{res: r}
}

// Array returns the object elements of an array member, skipping elements
// that are not objects.
func (o Object) Array(name string) []Object {
	r := o.member(name)
	if !r.IsArray() {
		return nil
	}
	var out []Object
	r.ForEach(func(_, v gjson.Result) bool {
		if v.IsObject() {
			out = append(out, Object{res: v})
		}
		return true
	})
	return out
}

// Raw returns the raw JSON of a non-null member.
func (o Object) Raw(name string) json.RawMessage {
	r := o.member(name)
	if !r.Exists() || r.Type == gjson.Null {
		return nil
	}
	return json.RawMessage(r.Raw)
}

// IsEmpty reports whether o wraps no object.
func (o Object) IsEmpty() bool {
	return !o.res.IsObject()
}

// Get dereferences an optional value in comma-ok form.
func Get[T any](p *T) (T, bool) {
	if p == nil {
		var zero T
		return zero, false
	}
	return *p, true
}

// Opt is Get for untyped consumers such as Transaction.Field.
func Opt[T any](p *T) (any, bool) {
	if p == nil {
		return nil, false
	}
	return *p, true
}
