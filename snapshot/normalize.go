package snapshot

import (
	"fmt"
	"math/big"

	"github.com/shopspring/decimal"
)

// RatioCeiling is the largest normalised ratio that is still displayed. The
// contracts report an "infinite" collateral ratio for positions without debt.
var RatioCeiling = decimal.NewFromInt(100)

// Validate reports precision constants that would make normalisation
// meaningless. Renderers call it before producing any output.
func (c ProtocolConfig) Validate() error {
	if c.DecimalPrecision.Sign() <= 0 {
		return fmt.Errorf("%w: protocolConfig.decimalPrecision", ErrMissingField)
	}
	if c.OneHundredPercent.Sign() <= 0 {
		return fmt.Errorf("%w: protocolConfig.oneHundredPercent", ErrMissingField)
	}

	return nil
}

// Validate checks the snapshot can be rendered.
func (s *ProtocolSnapshot) Validate() error {
	if s == nil {
		return fmt.Errorf("%w: snapshot is empty", ErrMissingField)
	}

	return s.ProtocolConfig.Validate()
}

// Amount scales a stablecoin or ratio value by decimalPrecision.
func (c ProtocolConfig) Amount(raw decimal.Decimal) decimal.Decimal {
	return raw.Div(c.DecimalPrecision)
}

// Rate scales an interest rate by oneHundredPercent.
func (c ProtocolConfig) Rate(raw decimal.Decimal) decimal.Decimal {
	return raw.Div(c.OneHundredPercent)
}

// Tokens scales a collateral token amount by the branch token decimals.
func (b Branch) Tokens(raw decimal.Decimal) decimal.Decimal {
	return raw.Shift(-b.Decimals)
}

// Ratio is a normalised collateral ratio together with the threshold it is
// judged against (CCR for a branch, MCR for a trove).
type Ratio struct {
	Value     decimal.Decimal
	Threshold decimal.Decimal
}

// Available reports whether the ratio is within the displayable range.
func (r Ratio) Available() bool {
	return !r.Value.GreaterThan(RatioCeiling)
}

// Unhealthy reports whether the ratio is strictly below its threshold.
func (r Ratio) Unhealthy() bool {
	return r.Value.LessThan(r.Threshold)
}

// TCR returns the branch total collateral ratio judged against CCR.
func (c ProtocolConfig) TCR(b Branch) Ratio {
	return Ratio{Value: c.Amount(b.TCR), Threshold: c.Amount(b.CCR)}
}

// ICR returns the trove collateral ratio judged against the branch MCR.
func (c ProtocolConfig) ICR(b Branch, t Trove) Ratio {
	return Ratio{Value: c.Amount(t.ICR), Threshold: c.Amount(b.MCR)}
}

// LiquidatableTrove identifies a trove whose ICR is below its branch MCR.
type LiquidatableTrove struct {
	Branch  int64
	TroveID string
	ICR     decimal.Decimal
}

// Liquidatable lists, in branch then trove order, every trove whose normalised
// ICR is strictly below the normalised MCR of its branch.
func (s *ProtocolSnapshot) Liquidatable() []LiquidatableTrove {
	var out []LiquidatableTrove
	for _, b := range s.Branches {
		for _, t := range b.Troves {
			icr := s.ProtocolConfig.ICR(b, t)
			if !icr.Unhealthy() {
				continue
			}
			out = append(out, LiquidatableTrove{
				Branch:  b.Index,
				TroveID: NumericID(t.TroveID),
				ICR:     icr.Value,
			})
		}
	}

	return out
}

// NumericID renders a trove ID in base 10. IDs may be serialised either as
// decimal or as 0x-prefixed hex; anything else is returned unchanged.
func NumericID(id string) string {
	digits, base := id, 10
	if len(id) > 2 && (id[:2] == "0x" || id[:2] == "0X") {
		digits, base = id[2:], 16
	}

	n, ok := new(big.Int).SetString(digits, base)
	if !ok {
		return id
	}

	return n.String()
}
