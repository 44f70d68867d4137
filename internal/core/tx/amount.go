package tx

import (
	"github.com/tidwall/gjson"

	"github.com/LeJamon/goXRPLkit/internal/core/XRPAmount"
)

// NativeCurrency is the currency code reported for XRP amounts.
const NativeCurrency = "XRP"

// Amount is a decoded ledger amount. Value is a base-10 decimal string; for
// XRP it is already converted from drops.
type Amount struct {
	Currency      string `json:"currency"`
	Value         string `json:"value"`
	Issuer        string `json:"issuer,omitempty"`
	MPTIssuanceID string `json:"mpt_issuance_id,omitempty"`
}

// NewXRPAmount builds an XRP amount from a drops string.
func NewXRPAmount(drops string) (Amount, error) {
	v, err := XRPAmount.DropsToXRP(drops)
	if err != nil {
		return Amount{}, err
	}
	return Amount{Currency: NativeCurrency, Value: v}, nil
}

// IsNative reports whether a is an XRP amount.
func (a Amount) IsNative() bool {
	return a.Currency == NativeCurrency && a.Issuer == "" && a.MPTIssuanceID == ""
}

func amountFromResult(r gjson.Result) (Amount, bool) {
	switch {
	case r.Type == gjson.String:
		a, err := NewXRPAmount(r.Str)
		return a, err == nil
	case r.IsObject():
		value := r.Get("value")
		if value.Type != gjson.String {
			return Amount{}, false
		}
		if id := r.Get("mpt_issuance_id"); id.Type == gjson.String {
			return Amount{Value: value.Str, MPTIssuanceID: id.Str}, true
		}
		currency := r.Get("currency")
		if currency.Type != gjson.String {
			return Amount{}, false
		}
		return Amount{
			Currency: currency.Str,
			Value:    value.Str,
			Issuer:   r.Get("issuer").String(),
		}, true
	}
	return Amount{}, false
}
