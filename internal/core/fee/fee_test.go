package fee

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func values(s *Suggestion) []string {
	out := make([]string, len(s.AvailableFees))
	for i, t := range s.AvailableFees {
		out[i] = t.Value
	}
	return out
}

func TestNormalizeFeeDataSet(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		want     []string
		feeHooks float64
	}{
		{"worked example", `{"drops": {"base_fee": 12}, "fee_hooks_feeunits": 3}`, []string{"12", "15", "25"}, 3},
		{"floor", `{"drops": {"base_fee": 5}, "fee_hooks_feeunits": 0}`, []string{"12", "15", "25"}, 0},
		{"string base fee", `{"drops": {"base_fee": "1000"}}`, []string{"1000", "1500", "2000"}, 0},
		{"missing drops", `{"fee_hooks_feeunits": 7}`, []string{"12", "15", "25"}, 7},
		{"missing base fee", `{"drops": {"median_fee": "5000"}}`, []string{"12", "15", "25"}, 0},
		{"unusable base fee", `{"drops": {"base_fee": "lots"}}`, []string{"12", "15", "25"}, 0},
		{"thirteen", `{"drops": {"base_fee": 13}}`, []string{"13", "20", "25"}, 0},
		{"hundred", `{"drops": {"base_fee": 100}}`, []string{"100", "150", "200"}, 0},
		{"256", `{"drops": {"base_fee": 256}}`, []string{"256", "350", "500"}, 0},
		{"5000", `{"drops": {"base_fee": 5000}}`, []string{"5000", "6000", "9000"}, 0},
		{"12345", `{"drops": {"base_fee": 12345}}`, []string{"12345", "15000", "25000"}, 0},
		{"large", `{"drops": {"base_fee": 200000}}`, []string{"200000", "250000", "250000"}, 0},
		{"fractional", `{"drops": {"base_fee": 15.5}}`, []string{"16", "500", "500"}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := NormalizeFeeDataSet([]byte(tt.raw))
			require.NoError(t, err)

			assert.Equal(t, tt.want, values(s))
			assert.Equal(t, tt.feeHooks, s.FeeHooks)
			assert.Equal(t, LevelLow, s.Suggested)
			assert.Equal(t, []Level{LevelLow, LevelMedium, LevelHigh}, []Level{
				s.AvailableFees[0].Type, s.AvailableFees[1].Type, s.AvailableFees[2].Type,
			})
		})
	}
}

func TestNormalizeFeeDataSet_InvalidInput(t *testing.T) {
	for _, raw := range []string{"", "null", `"not an object"`, "42", "[]", "{"} {
		t.Run(raw, func(t *testing.T) {
			s, err := NormalizeFeeDataSet([]byte(raw))
			assert.ErrorIs(t, err, ErrInvalidInput)
			assert.Nil(t, s)
		})
	}
}

func TestNormalizeFeeDataSet_JSON(t *testing.T) {
	s, err := NormalizeFeeDataSet([]byte(`{"drops": {"base_fee": 12}, "fee_hooks_feeunits": 3}`))
	require.NoError(t, err)

	out, err := json.Marshal(s)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"availableFees": [
			{"type": "LOW", "value": "12"},
			{"type": "MEDIUM", "value": "15"},
			{"type": "HIGH", "value": "25"}
		],
		"feeHooks": 3,
		"suggested": "LOW"
	}`, string(out))

	again, err := NormalizeFeeDataSet([]byte(`{"drops": {"base_fee": 12}, "fee_hooks_feeunits": 3}`))
	require.NoError(t, err)
	out2, err := json.Marshal(again)
	require.NoError(t, err)
	assert.Equal(t, out, out2)
}

func TestCompute_Monotone(t *testing.T) {
	for base := int64(0); base <= 2_000_000; base = base*3 + 7 {
		s := Compute(DataSet{BaseFee: decimal.NewFromInt(base)})

		low := decimal.RequireFromString(s.AvailableFees[0].Value)
		medium := decimal.RequireFromString(s.AvailableFees[1].Value)
		high := decimal.RequireFromString(s.AvailableFees[2].Value)

		assert.True(t, low.LessThanOrEqual(medium), "base %d: %s > %s", base, low, medium)
		assert.True(t, medium.LessThanOrEqual(high), "base %d: %s > %s", base, medium, high)
		assert.True(t, low.GreaterThanOrEqual(decimal.NewFromInt(ReferenceFeeFloor)))
	}
}

func TestCalculateTier_LevelZeroIsBaseFee(t *testing.T) {
	for _, base := range []int64{12, 99, 1000, 123456789} {
		d := decimal.NewFromInt(base)
		assert.Equal(t, d.String(), CalculateTier(d, 0))
	}
}

func TestSuggestion_Tier(t *testing.T) {
	s := Compute(DataSet{BaseFee: decimal.NewFromInt(1000)})

	v, ok := s.Tier(LevelHigh)
	require.True(t, ok)
	assert.Equal(t, "2000", v)

	_, ok = s.Tier(Level("URGENT"))
	assert.False(t, ok)
}

func TestLevelWeight(t *testing.T) {
	assert.Equal(t, 0, LevelLow.Weight())
	assert.Equal(t, 4, LevelMedium.Weight())
	assert.Equal(t, 8, LevelHigh.Weight())
}
