// File: decimal.go
// Title: Decimal Arithmetic Implementation
// Description: Exact rational arithmetic with decimal parsing and formatting.
//              Values are immutable; every operation returns a new Decimal.
//              Supports the rounding modes used when rendering results.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.1.0: Initial implementation with core decimal operations
// - 2026-10-18 v0.1.1: Bound exponents accepted by NewDecimal

package mathx

import (
	"math"
	"math/big"
	"strconv"
	"strings"

	etkerrors "github.com/msto63/etkit/core/errors"
)

// RoundingMode defines how decimal numbers should be rounded
type RoundingMode int

const (
	// RoundingModeHalfUp rounds halves away from zero (commercial rounding)
	RoundingModeHalfUp RoundingMode = iota

	// RoundingModeHalfEven rounds halves to the nearest even digit (banker's rounding)
	RoundingModeHalfEven

	// RoundingModeHalfDown rounds halves toward zero
	RoundingModeHalfDown

	// RoundingModeUp always rounds away from zero
	RoundingModeUp

	// RoundingModeDown always rounds toward zero (truncation)
	RoundingModeDown
)

// MaxExponent bounds the exponent NewDecimal accepts. Larger exponents would
// expand into numbers with millions of digits.
const MaxExponent = 4096

// DefaultDisplayPlaces is used by String for values without a finite decimal expansion
const DefaultDisplayPlaces = 10

// Decimal represents a decimal number with arbitrary precision.
// The zero value is 0.
type Decimal struct {
	value *big.Rat
}

// rat returns the underlying value, treating the zero Decimal as 0
func (d Decimal) rat() *big.Rat {
	if d.value == nil {
		return new(big.Rat)
	}
	return d.value
}

// NewDecimal creates a new Decimal from a string representation.
// Supports formats like "123.45", "-67.89", "100", "1e3" and "1/2".
func NewDecimal(s string) (Decimal, error) {
	text := strings.TrimSpace(s)
	if !exponentInRange(text) {
		return Decimal{}, etkerrors.InvalidFormat(etkerrors.ModuleMathx, "NewDecimal", s,
			"decimal number with exponent within ±"+strconv.Itoa(MaxExponent))
	}
	rat, ok := new(big.Rat).SetString(text)
	if !ok {
		return Decimal{}, etkerrors.InvalidFormat(etkerrors.ModuleMathx, "NewDecimal", s, "decimal number")
	}
	return Decimal{value: rat}, nil
}

// exponentInRange reports whether the e or p exponent of s, if any, stays
// within MaxExponent. Fractions a/b carry no exponent. In hex mantissas e is a
// digit, so only p marks an exponent there.
func exponentInRange(s string) bool {
	if strings.Contains(s, "/") {
		return true
	}

	body := strings.TrimLeft(s, "+-")
	markers := "eEpP"
	if len(body) > 1 && body[0] == '0' && (body[1] == 'x' || body[1] == 'X') {
		markers = "pP"
	}

	i := strings.LastIndexAny(body, markers)
	if i < 0 {
		return true
	}
	exp, err := strconv.Atoi(body[i+1:])
	if err != nil {
		return false
	}
	return exp >= -MaxExponent && exp <= MaxExponent
}

// MustNewDecimal creates a new Decimal from a string, panicking on error.
// Use this when you're certain the input is valid (e.g., constants).
func MustNewDecimal(s string) Decimal {
	d, err := NewDecimal(s)
	if err != nil {
		panic(err)
	}
	return d
}

// NewDecimalFromInt creates a new Decimal from an integer
func NewDecimalFromInt(i int64) Decimal {
	return Decimal{value: new(big.Rat).SetInt64(i)}
}

// NewDecimalFromUint64 creates a new Decimal from an unsigned integer
func NewDecimalFromUint64(u uint64) Decimal {
	return Decimal{value: new(big.Rat).SetInt(new(big.Int).SetUint64(u))}
}

// NewDecimalFromFloat creates a new Decimal holding the exact binary value of f.
// Prefer string input when the decimal digits matter. NaN and infinities are
// rejected with INVALID_ARGUMENT.
func NewDecimalFromFloat(f float64) (Decimal, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return Decimal{}, etkerrors.InvalidArgument(etkerrors.ModuleMathx, "NewDecimalFromFloat", "f", "finite float")
	}
	return Decimal{value: new(big.Rat).SetFloat64(f)}, nil
}

// Zero returns a decimal representing zero
func Zero() Decimal {
	return Decimal{value: new(big.Rat)}
}

// One returns a decimal representing one
func One() Decimal {
	return NewDecimalFromInt(1)
}

// Add returns the sum of d and other
func (d Decimal) Add(other Decimal) Decimal {
	return Decimal{value: new(big.Rat).Add(d.rat(), other.rat())}
}

// Subtract returns the difference of d and other
func (d Decimal) Subtract(other Decimal) Decimal {
	return Decimal{value: new(big.Rat).Sub(d.rat(), other.rat())}
}

// Multiply returns the product of d and other
func (d Decimal) Multiply(other Decimal) Decimal {
	return Decimal{value: new(big.Rat).Mul(d.rat(), other.rat())}
}

// Divide returns the exact quotient of d and other
func (d Decimal) Divide(other Decimal) (Decimal, error) {
	if other.IsZero() {
		return Decimal{}, etkerrors.DivisionByZero(etkerrors.ModuleMathx, "Divide")
	}
	return Decimal{value: new(big.Rat).Quo(d.rat(), other.rat())}, nil
}

// MustDivide returns the quotient of d and other, panicking on division by zero
func (d Decimal) MustDivide(other Decimal) Decimal {
	result, err := d.Divide(other)
	if err != nil {
		panic(err)
	}
	return result
}

// Neg returns the negation of d
func (d Decimal) Neg() Decimal {
	return Decimal{value: new(big.Rat).Neg(d.rat())}
}

// Abs returns the absolute value of d
func (d Decimal) Abs() Decimal {
	return Decimal{value: new(big.Rat).Abs(d.rat())}
}

// IsZero returns true if d equals zero
func (d Decimal) IsZero() bool {
	return d.rat().Sign() == 0
}

// Sign returns the sign of d: -1 if negative, 0 if zero, +1 if positive
func (d Decimal) Sign() int {
	return d.rat().Sign()
}

// IsInteger reports whether d has no fractional part
func (d Decimal) IsInteger() bool {
	return d.rat().IsInt()
}

// Compare compares d with other.
// Returns -1 if d < other, 0 if d == other, +1 if d > other.
func (d Decimal) Compare(other Decimal) int {
	return d.rat().Cmp(other.rat())
}

// Equal returns true if d equals other
func (d Decimal) Equal(other Decimal) bool {
	return d.Compare(other) == 0
}

// GreaterThan returns true if d > other
func (d Decimal) GreaterThan(other Decimal) bool {
	return d.Compare(other) > 0
}

// LessThan returns true if d < other
func (d Decimal) LessThan(other Decimal) bool {
	return d.Compare(other) < 0
}

// Round rounds the decimal to the given number of decimal places
func (d Decimal) Round(places int, mode RoundingMode) Decimal {
	if places < 0 {
		places = 0
	}

	scale := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(places)), nil)
	scaled := new(big.Rat).Mul(d.rat(), new(big.Rat).SetInt(scale))

	num := new(big.Int).Set(scaled.Num())
	denom := scaled.Denom()
	negative := num.Sign() < 0
	num.Abs(num)

	quotient, remainder := new(big.Int).QuoRem(num, denom, new(big.Int))
	if remainder.Sign() != 0 {
		// twice the remainder against the denominator locates the half
		half := new(big.Int).Lsh(remainder, 1).Cmp(denom)

		roundAway := false
		switch mode {
		case RoundingModeHalfUp:
			roundAway = half >= 0
		case RoundingModeHalfDown:
			roundAway = half > 0
		case RoundingModeHalfEven:
			roundAway = half > 0 || (half == 0 && quotient.Bit(0) == 1)
		case RoundingModeUp:
			roundAway = true
		case RoundingModeDown:
			roundAway = false
		}

		if roundAway {
			quotient.Add(quotient, big.NewInt(1))
		}
	}

	if negative {
		quotient.Neg(quotient)
	}

	return Decimal{value: new(big.Rat).SetFrac(quotient, scale)}
}

// Truncate truncates the decimal to the specified number of decimal places
func (d Decimal) Truncate(places int) Decimal {
	return d.Round(places, RoundingModeDown)
}

// StringFixed returns d rounded half-up with exactly places decimal places
func (d Decimal) StringFixed(places int) string {
	if places < 0 {
		places = 0
	}
	return d.Round(places, RoundingModeHalfUp).rat().FloatString(places)
}

// String returns the exact decimal representation when one exists and the
// value rounded to DefaultDisplayPlaces otherwise. Trailing zeros are dropped.
func (d Decimal) String() string {
	r := d.rat()
	if r.IsInt() {
		return r.Num().String()
	}

	places, finite := decimalPlaces(r.Denom())
	if !finite || places > DefaultDisplayPlaces {
		places = DefaultDisplayPlaces
	}

	s := d.StringFixed(places)
	if strings.Contains(s, ".") {
		s = strings.TrimRight(strings.TrimRight(s, "0"), ".")
	}
	if s == "-0" {
		s = "0"
	}
	return s
}

// decimalPlaces returns the length of the decimal expansion of 1/denom and
// whether that expansion terminates
func decimalPlaces(denom *big.Int) (int, bool) {
	rest := new(big.Int).Set(denom)
	two, five := big.NewInt(2), big.NewInt(5)
	mod := new(big.Int)

	factors2, factors5 := 0, 0
	for rest.Sign() != 0 && mod.Mod(rest, two).Sign() == 0 {
		rest.Quo(rest, two)
		factors2++
	}
	for rest.Sign() != 0 && mod.Mod(rest, five).Sign() == 0 {
		rest.Quo(rest, five)
		factors5++
	}

	if rest.Cmp(big.NewInt(1)) != 0 {
		return 0, false
	}
	return max(factors2, factors5), true
}

// Float64 returns the nearest float64 value for d
func (d Decimal) Float64() float64 {
	f, _ := d.rat().Float64()
	return f
}

// MarshalText implements encoding.TextMarshaler
func (d Decimal) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (d *Decimal) UnmarshalText(text []byte) error {
	parsed, err := NewDecimal(string(text))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
