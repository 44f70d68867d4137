// Package fee turns a network fee snapshot into LOW, MEDIUM and HIGH fee
// suggestions.
package fee

import (
	"errors"
	"math"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/tidwall/gjson"
)

// ErrInvalidInput is returned when the fee snapshot is absent or not a JSON
// object.
var ErrInvalidInput = errors.New("fee: a valid fee data set is required")

// ReferenceFeeFloor is the protocol minimum reference fee, in drops.
const ReferenceFeeFloor = 12

// divisionPlaces is the scale kept by the two divisions of the tier formula;
// quotients are rounded half up.
const divisionPlaces = 20

var (
	hundred      = decimal.NewFromInt(100)
	floor        = decimal.NewFromInt(ReferenceFeeFloor)
	exponentBase = decimal.RequireFromString("2.1")
	exponentStep = decimal.RequireFromString("0.000005")
)

// Level is a fee tier.
type Level string

const (
	LevelLow    Level = "LOW"
	LevelMedium Level = "MEDIUM"
	LevelHigh   Level = "HIGH"
)

// Levels lists the tiers in output order.
var Levels = []Level{LevelLow, LevelMedium, LevelHigh}

// Weight returns the level parameter of the tier formula.
func (l Level) Weight() int {
	switch l {
	case LevelMedium:
		return 4
	case LevelHigh:
		return 8
	}
	return 0
}

// DataSet is the part of a fee snapshot the tiers depend on.
type DataSet struct {
	// BaseFee is drops.base_fee. Values below ReferenceFeeFloor are raised
	// to it.
	BaseFee decimal.Decimal
	// FeeHooks is fee_hooks_feeunits, passed through unchanged.
	FeeHooks float64
}

// Tier is one suggested fee, in drops.
type Tier struct {
	Type  Level  `json:"type"`
	Value string `json:"value"`
}

// Suggestion is the calculator's output.
type Suggestion struct {
	AvailableFees []Tier  `json:"availableFees"`
	FeeHooks      float64 `json:"feeHooks"`
	Suggested     Level   `json:"suggested"`
}

// Tier returns the fee for level.
func (s *Suggestion) Tier(level Level) (string, bool) {
	for _, t := range s.AvailableFees {
		if t.Type == level {
			return t.Value, true
		}
	}
	return "", false
}

// NormalizeFeeDataSet parses a snapshot shaped like
// {"drops": {"base_fee": 12}, "fee_hooks_feeunits": 3} and computes the
// tiers. A missing or unusable base_fee counts as ReferenceFeeFloor and a
// missing fee_hooks_feeunits as 0.
func NormalizeFeeDataSet(raw []byte) (*Suggestion, error) {
	if len(raw) == 0 || !gjson.ValidBytes(raw) {
		return nil, ErrInvalidInput
	}
	doc := gjson.ParseBytes(raw)
	if !doc.IsObject() {
		return nil, ErrInvalidInput
	}

	ds := DataSet{BaseFee: floor}
	if bf, ok := numeric(doc.Get("drops.base_fee")); ok {
		ds.BaseFee = bf
	}
	if hooks, ok := numeric(doc.Get("fee_hooks_feeunits")); ok {
		ds.FeeHooks = hooks.InexactFloat64()
	}

	s := Compute(ds)
	return &s, nil
}

// numeric accepts a JSON number or a numeric string.
func numeric(r gjson.Result) (decimal.Decimal, bool) {
	var s string
	switch r.Type {
	case gjson.Number:
		s = r.Raw
	case gjson.String:
		s = strings.TrimSpace(r.Str)
	default:
		return decimal.Decimal{}, false
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Decimal{}, false
	}
	return d, true
}

// Compute derives the three tiers from ds. LOW is always the suggested
// tier.
func Compute(ds DataSet) Suggestion {
	baseFee := decimal.Max(floor, ds.BaseFee)

	fees := make([]Tier, 0, len(Levels))
	for _, l := range Levels {
		fees = append(fees, Tier{Type: l, Value: CalculateTier(baseFee, l.Weight())})
	}
	return Suggestion{
		AvailableFees: fees,
		FeeHooks:      ds.FeeHooks,
		Suggested:     LevelLow,
	}
}

// CalculateTier applies the tier formula
//
//	ceil(baseFee / 100 * multiplier / nearest) * nearest
//
// where, for level > 0, nearest = 0.5 * 10^(digits(baseFee) - 1) and
// multiplier = 100 + level^(2.1 - baseFee * 0.000005). Level 0 uses
// nearest 1 and multiplier 100, which yields the base fee itself.
//
// Everything is decimal except the power, which is a float64 math.Pow whose
// result enters the decimal arithmetic through its shortest representation.
func CalculateTier(baseFee decimal.Decimal, level int) string {
	nearest := decimal.NewFromInt(1)
	multiplier := hundred

	if level > 0 {
		digits := len(baseFee.String())
		nearest = decimal.New(5, int32(digits-2))

		exponent := exponentBase.Sub(baseFee.Mul(exponentStep)).InexactFloat64()
		multiplier = hundred.Add(decimal.NewFromFloat(math.Pow(float64(level), exponent)))
	}

	return baseFee.
		DivRound(hundred, divisionPlaces).
		Mul(multiplier).
		DivRound(nearest, divisionPlaces).
		Ceil().
		Mul(nearest).
		RoundUp(0).
		StringFixed(0)
}
