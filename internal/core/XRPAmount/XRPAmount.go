package XRPAmount

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

type XRPAmount int64

const DropsPerXRP XRPAmount = 1_000_000

// ErrInvalidDrops is returned when a drops value is not a base-10 integer.
var ErrInvalidDrops = errors.New("invalid drops value")

var dropsPerXRP = decimal.NewFromInt(int64(DropsPerXRP))

func NewXRPAmount(drops int64) XRPAmount {
	return XRPAmount(drops)
}

// DropsToXRP converts an integer drops string to its XRP decimal string.
// The division is exact: "1" yields "0.000001" and "1000000" yields "1".
func DropsToXRP(drops string) (string, error) {
	s := strings.TrimSpace(drops)
	if s == "" || strings.ContainsAny(s, ".eE") {
		return "", fmt.Errorf("%w: %q", ErrInvalidDrops, drops)
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidDrops, drops)
	}
	return d.Shift(-6).String(), nil
}

// ParseDrops parses an integer drops string into an XRPAmount.
func ParseDrops(drops string) (XRPAmount, error) {
	s := strings.TrimSpace(drops)
	if s == "" || strings.ContainsAny(s, ".eE") {
		return 0, fmt.Errorf("%w: %q", ErrInvalidDrops, drops)
	}
	d, err := decimal.NewFromString(s)
	if err != nil || !d.IsInteger() {
		return 0, fmt.Errorf("%w: %q", ErrInvalidDrops, drops)
	}
	return XRPAmount(d.IntPart()), nil
}

func FromDecimalXRP(xrp decimal.Decimal) XRPAmount {
	return XRPAmount(xrp.Mul(dropsPerXRP).IntPart())
}

func (x XRPAmount) Drops() int64 {
	return int64(x)
}

// DecimalXRP returns the amount in XRP without rounding.
func (x XRPAmount) DecimalXRP() decimal.Decimal {
	return decimal.NewFromInt(int64(x)).Shift(-6)
}

func (x XRPAmount) Add(other XRPAmount) XRPAmount {
	return x + other
}

func (x XRPAmount) Sub(other XRPAmount) XRPAmount {
	return x - other
}

func (x XRPAmount) Mul(factor int64) XRPAmount {
	return x * XRPAmount(factor)
}

func (x XRPAmount) IsPositive() bool {
	return x > 0
}

func (x XRPAmount) IsZero() bool {
	return x == 0
}

func (x XRPAmount) String() string {
	return fmt.Sprintf("%d", int64(x))
}
