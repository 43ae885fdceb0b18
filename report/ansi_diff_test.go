package report

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quill-fi/quill-tooling/actors"
)

func TestRenderer_ANSIDiff(t *testing.T) {
	t.Parallel()

	oldSnap, newSnap := loadFixtures(t)

	got, err := newPlainRenderer(t).ANSIDiff(oldSnap, newSnap)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(got, "Protocol Diff Report\n\n"))
	assert.Contains(t, got, "1250.00 USDQ (+250.00 USDQ)\n")
	assert.Contains(t, got, "1700086400 (time moved forward by 86400 seconds)")
	assert.Contains(t, got, "112 (block moved forward by 12)")

	// branch 0
	assert.Contains(t, got, "(-500.00)")
	assert.Contains(t, got, "(-0.40)")
	assert.Contains(t, got, "(+250.00)")
	assert.Contains(t, got, "liquidated (active)")
	// branch 1 TCR is out of range on both sides
	assert.Contains(t, got, "TCR:         N/A\n")
	assert.NotContains(t, got, "N/A N/A")
	assert.NotContains(t, got, "(N/A)")

	assert.Contains(t, got, "Owners Balances")
	assert.Contains(t, got, "850.00  (+250.00)")
	assert.Contains(t, got, "9.00  (-1.00)")
	assert.Contains(t, got, "carl")
}

func TestRenderer_ANSIDiff_NewTroveHasNoDelta(t *testing.T) {
	t.Parallel()

	oldSnap, newSnap := loadFixtures(t)

	got, err := newPlainRenderer(t).ANSIDiff(oldSnap, newSnap)
	require.NoError(t, err)

	var line string
	for _, l := range strings.Split(got, "\n") {
		if strings.HasPrefix(l, "  42 ") {
			line = l
		}
	}
	require.NotEmpty(t, line, "new trove row not found")
	assert.NotContains(t, line, "(+")
	assert.NotContains(t, line, "(-")
}

func TestRenderer_ANSIDiff_RatioBeyondCeiling(t *testing.T) {
	t.Parallel()

	oldSnap, newSnap := loadFixtures(t)
	beyond := decimal.RequireFromString("200000000000000000000000")
	oldSnap.Branches[0].TCR = beyond
	newSnap.Branches[0].Troves[2].ICR = beyond

	got, err := newPlainRenderer(t).ANSIDiff(oldSnap, newSnap)
	require.NoError(t, err)

	assert.Contains(t, got, "TCR:         3.60 (N/A)\n")

	var line string
	for _, l := range strings.Split(got, "\n") {
		if strings.HasPrefix(l, "    0xabc ") {
			line = l
		}
	}
	require.NotEmpty(t, line, "trove 0xabc row not found")
	assert.Contains(t, line, "N/A")
	assert.NotContains(t, line, "(+")
	assert.NotContains(t, line, "(-")
}

func TestRenderer_ANSIDiff_Identical(t *testing.T) {
	t.Parallel()

	oldSnap, _ := loadFixtures(t)

	got, err := newPlainRenderer(t).ANSIDiff(oldSnap, oldSnap)
	require.NoError(t, err)

	assert.NotContains(t, got, "(+")
	assert.NotContains(t, got, "(-")
	assert.NotContains(t, got, "moved forward")
}

func TestRenderer_ANSIDiff_Color(t *testing.T) {
	t.Parallel()

	oldSnap, newSnap := loadFixtures(t)

	colored, err := New(WithColor(true), WithActors(actors.Default()))
	require.NoError(t, err)

	got, err := colored.ANSIDiff(oldSnap, newSnap)
	require.NoError(t, err)
	assert.Contains(t, got, "\x1b[32m(+250.00)\x1b[0m")
	assert.Contains(t, got, "\x1b[32m(+250.00 USDQ)\x1b[0m")
	assert.Contains(t, got, "\x1b[31m(-500.00)\x1b[0m")

	plain, err := newPlainRenderer(t).ANSIDiff(oldSnap, newSnap)
	require.NoError(t, err)
	assert.Equal(t, plain, stripSGR(got))
}

func TestRenderer_ANSIDiff_InvalidSnapshot(t *testing.T) {
	t.Parallel()

	oldSnap, newSnap := loadFixtures(t)
	oldSnap.ProtocolConfig.DecimalPrecision = decimal.Zero

	got, err := newPlainRenderer(t).ANSIDiff(oldSnap, newSnap)
	require.ErrorContains(t, err, "cannot render old snapshot")
	assert.Empty(t, got)

	got, err = newPlainRenderer(t).ANSIDiff(newSnap, nil)
	require.ErrorContains(t, err, "cannot render new snapshot")
	assert.Empty(t, got)
}
