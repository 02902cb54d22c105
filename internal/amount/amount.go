// Package amount converts between human-readable token quantities
// ("1000.5") and integer base units scaled by an asset's decimals.
package amount

import (
	"errors"
	"fmt"
	"math/big"
	"strings"

	"github.com/shopspring/decimal"
)

// MaxDigits bounds base-unit values to what a NUMERIC(78,0) column holds,
// which covers the full uint256 range.
const MaxDigits = 78

var (
	ErrPrecision = errors.New("amount has more fractional digits than the asset supports")
	ErrExponent  = errors.New("exponent notation is not accepted")
	ErrTooLarge  = fmt.Errorf("amount exceeds %d base-unit digits", MaxDigits)
)

var maxUnits = new(big.Int).Exp(big.NewInt(10), big.NewInt(MaxDigits), nil)

// ParseUnits parses s as a plain decimal token quantity and scales it to
// base units. Values with more fractional digits than decimals are rejected
// rather than silently truncated, as are results wider than MaxDigits.
func ParseUnits(s string, decimals uint8) (*big.Int, error) {
	if strings.ContainsAny(s, "eE") {
		return nil, fmt.Errorf("parse amount %q: %w", s, ErrExponent)
	}
	// room for a sign, a point and decimals fractional digits
	if len(s) > MaxDigits+int(decimals)+2 {
		return nil, fmt.Errorf("parse amount: %w", ErrTooLarge)
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return nil, fmt.Errorf("parse amount %q: %w", s, err)
	}
	scaled := d.Shift(int32(decimals))
	if !scaled.Equal(scaled.Truncate(0)) {
		return nil, fmt.Errorf("parse amount %q: %w", s, ErrPrecision)
	}
	v := scaled.BigInt()
	if new(big.Int).Abs(v).Cmp(maxUnits) >= 0 {
		return nil, fmt.Errorf("parse amount %q: %w", s, ErrTooLarge)
	}
	return v, nil
}

// FormatUnits renders base units as a decimal token quantity without
// trailing zeros.
func FormatUnits(v *big.Int, decimals uint8) string {
	if v == nil {
		return "0"
	}
	return decimal.NewFromBigInt(v, -int32(decimals)).String()
}

// ParseFraction parses a ratio such as "0.25" into a fixed-point value with
// 18 decimals.
func ParseFraction(s string) (*big.Int, error) {
	return ParseUnits(s, 18)
}

// FormatFraction is the inverse of ParseFraction.
func FormatFraction(v *big.Int) string {
	return FormatUnits(v, 18)
}

// Parser decodes base-unit integers stored as decimal text and keeps the
// first error so record conversions read linearly.
type Parser struct {
	err error
}

// Int parses s, returning zero and remembering the error when s is not an
// integer.
func (p *Parser) Int(s string) *big.Int {
	v, ok := new(big.Int).SetString(s, 10)
	if !ok {
		if p.err == nil {
			p.err = fmt.Errorf("invalid integer %q", s)
		}
		return new(big.Int)
	}
	return v
}

// Err returns the first decoding error.
func (p *Parser) Err() error {
	return p.err
}
