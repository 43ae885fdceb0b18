// Package units converts user supplied token amounts into wei.
package units

import (
	"errors"
	"fmt"
	"math/big"
	"strings"

	"github.com/shopspring/decimal"
)

// ErrInvalidAmount is returned for values that are not non-negative integers in
// the requested unit.
var ErrInvalidAmount = errors.New("could not parse value, ensure the value is a valid integer")

// Unit is a power-of-ten denomination of the base token unit.
type Unit int32

const (
	Wei   Unit = 0
	Gwei  Unit = 9
	Ether Unit = 18
)

func (u Unit) String() string {
	switch u {
	case Wei:
		return "wei"
	case Gwei:
		return "gwei"
	case Ether:
		return "ether"
	default:
		return fmt.Sprintf("1e%d", int32(u))
	}
}

// ParseInt parses a base 10 integer of arbitrary size. Negative values are
// rejected.
func ParseInt(s string) (*big.Int, error) {
	s = strings.TrimSpace(s)
	n, ok := new(big.Int).SetString(s, 10)
	if !ok || n.Sign() < 0 {
		return nil, fmt.Errorf("%w: %q", ErrInvalidAmount, s)
	}

	return n, nil
}

// ParseIndex parses a branch or collateral index.
func ParseIndex(s string) (uint64, error) {
	n, err := ParseInt(s)
	if err != nil {
		return 0, err
	}
	if !n.IsUint64() {
		return 0, fmt.Errorf("%w: %q is out of range", ErrInvalidAmount, s)
	}

	return n.Uint64(), nil
}

// ToWei parses an integer amount expressed in u and scales it to wei.
func ToWei(s string, u Unit) (*big.Int, error) {
	n, err := ParseInt(s)
	if err != nil {
		return nil, err
	}

	return decimal.NewFromBigInt(n, int32(u)).BigInt(), nil
}

// Amount is an optional value per unit as collected from CLI flags. The first
// non-empty of Wei, Gwei and Ether wins; Positional is the last resort and is
// read as wei.
type Amount struct {
	Wei        string
	Gwei       string
	Ether      string
	Positional string
}

// Resolve returns the amount in wei. ok is false when no value was supplied.
func (a Amount) Resolve() (wei *big.Int, ok bool, err error) {
	for _, c := range []struct {
		v string
		u Unit
	}{
		{a.Wei, Wei},
		{a.Gwei, Gwei},
		{a.Ether, Ether},
		{a.Positional, Wei},
	} {
		if c.v == "" {
			continue
		}
		wei, err = ToWei(c.v, c.u)
		if err != nil {
			return nil, true, fmt.Errorf("invalid %s amount: %w", c.u, err)
		}

		return wei, true, nil
	}

	return nil, false, nil
}

// ParseID parses a trove ID given in base 10 or as 0x-prefixed hex.
func ParseID(s string) (*big.Int, error) {
	s = strings.TrimSpace(s)
	digits, base := s, 10
	if len(s) > 2 && (s[:2] == "0x" || s[:2] == "0X") {
		digits, base = s[2:], 16
	}

	n, ok := new(big.Int).SetString(digits, base)
	if !ok || n.Sign() < 0 {
		return nil, fmt.Errorf("%w: trove ID %q", ErrInvalidAmount, s)
	}

	return n, nil
}
