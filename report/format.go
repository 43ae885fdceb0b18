package report

import (
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/quill-fi/quill-tooling/snapshot"
)

const notAvailable = "N/A"

// fixed formats d with two decimals.
func fixed(d decimal.Decimal) string {
	return d.StringFixed(2)
}

func itoa(n int64) string {
	return strconv.FormatInt(n, 10)
}

// shortID truncates a trove ID for table display.
func shortID(id string, n int) string {
	if len(id) <= n {
		return id
	}

	return id[:n]
}

// signed returns d with two decimals and an explicit sign, or "" when d is zero.
func signed(d decimal.Decimal, places int32) string {
	switch d.Sign() {
	case 0:
		return ""
	case 1:
		return "+" + d.StringFixed(places)
	default:
		return d.StringFixed(places)
	}
}

// ratio renders r for the ANSI report: N/A above the ceiling, red below its
// threshold, green otherwise.
func (p palette) ratio(r snapshot.Ratio) string {
	switch {
	case !r.Available():
		return notAvailable
	case r.Unhealthy():
		return p.Red(fixed(r.Value))
	default:
		return p.Green(fixed(r.Value))
	}
}

// delta renders a change as "(+x)" in green or "(-x)" in red, prefixed by
// lead. A zero change renders as the empty string.
func (p palette) delta(d decimal.Decimal, places int32, lead string) string {
	s := signed(d, places)
	switch d.Sign() {
	case 0:
		return ""
	case 1:
		return p.Green(lead + "(" + s + ")")
	default:
		return p.Red(lead + "(" + s + ")")
	}
}

// unitDelta renders a change like delta with unit inside the parentheses,
// as in "(+250.00 USDQ)".
func (p palette) unitDelta(d decimal.Decimal, places int32, unit string) string {
	s := signed(d, places)
	switch d.Sign() {
	case 0:
		return ""
	case 1:
		return p.Green("(" + s + " " + unit + ")")
	default:
		return p.Red("(" + s + " " + unit + ")")
	}
}

// ratioDelta renders a ratio change like delta. Nothing is rendered when the
// new ratio is itself N/A, and "(N/A)" when only the old one was.
func (p palette) ratioDelta(d ratioDelta, lead string) string {
	switch {
	case !d.NewAvailable:
		return ""
	case !d.OldAvailable:
		return lead + "(" + notAvailable + ")"
	default:
		return p.delta(d.Change, 2, lead)
	}
}

// plainRatio renders r without styling.
func plainRatio(r snapshot.Ratio) string {
	if !r.Available() {
		return notAvailable
	}

	return fixed(r.Value)
}

// markdownDelta renders a change as "**(+x)**" or "_(-x)_", or "" when zero.
func markdownDelta(d decimal.Decimal, places int32) string {
	s := signed(d, places)
	switch d.Sign() {
	case 0:
		return ""
	case 1:
		return "**(" + s + ")**"
	default:
		return "_(" + s + ")_"
	}
}

// markdownRatioDelta is the Markdown counterpart of palette.ratioDelta.
func markdownRatioDelta(d ratioDelta) string {
	switch {
	case !d.NewAvailable:
		return ""
	case !d.OldAvailable:
		return "(" + notAvailable + ")"
	default:
		return markdownDelta(d.Change, 2)
	}
}

// withDelta joins a value and its optional delta annotation.
func withDelta(value, delta string) string {
	if delta == "" {
		return value
	}

	return value + " " + delta
}
