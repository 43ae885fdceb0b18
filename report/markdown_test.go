package report

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderer_Markdown(t *testing.T) {
	t.Parallel()

	oldSnap, _ := loadFixtures(t)

	got, err := newPlainRenderer(t).Markdown(oldSnap)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(got, "# Protocol Snapshot Report\n\n"))
	assert.Contains(t, got, "**Total Supply:** 1000.00 USDQ  \n")
	assert.Contains(t, got, "**Block Number:** 100\n")
	assert.Contains(t, got, "| # | Collateral | Total Troves |")
	assert.Contains(t, got, "|---|")
	assert.Contains(t, got, "## Branch 0: 0x5FbDB2315678afecb367f032d93F642f64180aa3 (WETH)")
	assert.Contains(t, got, "- **Total Collateral Ratio (TCR):** 4.00\n")
	assert.Contains(t, got, "- **Total Collateral Ratio (TCR):** N/A\n")
	assert.Contains(t, got, "  - **Total Deposits:** 500.00 USDQ\n")

	// trove table shows short IDs, details the full one
	assert.Contains(t, got, "| 123456 ")
	assert.Contains(t, got, "<details>\n<summary>Click to expand</summary>")
	assert.Contains(t, got, "- **Trove ID:** 1234567890123456789\n")
	assert.Contains(t, got, "  - **Annual Interest Rate:** 5.00%\n")
	assert.Contains(t, got, "_No troves available._")

	assert.Contains(t, got, "## Owners Balances")
	assert.Contains(t, got, "| 0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266 | adam ")

	assert.Contains(t, got, "## Liquidatable Troves")
	assert.Contains(t, got, "| Branch | Trove ID")
	assert.NotContains(t, got, "_No liquidatable troves._")
	assert.NotContains(t, got, "\x1b[")
}

func TestRenderer_Markdown_WithoutOptionalSections(t *testing.T) {
	t.Parallel()

	oldSnap, _ := loadFixtures(t)
	oldSnap.Owners = nil
	for i := range oldSnap.Branches {
		oldSnap.Branches[i].Troves = nil
	}

	got, err := newPlainRenderer(t).Markdown(oldSnap)
	require.NoError(t, err)

	assert.NotContains(t, got, "## Owners Balances")
	assert.NotContains(t, got, "<details>")
	assert.Contains(t, got, "_No liquidatable troves._")
}

func TestRenderer_MarkdownDiff(t *testing.T) {
	t.Parallel()

	oldSnap, newSnap := loadFixtures(t)

	got, err := newPlainRenderer(t).MarkdownDiff(oldSnap, newSnap)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(got, "# Protocol Diff Report\n\n"))
	assert.Contains(t, got, "**Total Supply:** 1250.00 USDQ **(+250.00)**")
	assert.Contains(t, got, "**Timestamp:** 1700086400 (time moved forward by 86400 seconds)")
	assert.Contains(t, got, "**Block Number:** 112 (block moved forward by 12)")
	assert.Contains(t, got, "1500.00 _(-500.00)_")
	assert.Contains(t, got, "3.60 _(-0.40)_")
	assert.Contains(t, got, "**42** (new)")
	assert.Contains(t, got, "liquidated (was active)")
	assert.Contains(t, got, "850.00 **(+250.00)**")
	assert.Contains(t, got, "9.00 _(-1.00)_")

	assert.Contains(t, got, "- **Total Collateral Ratio (TCR):** N/A\n")
	assert.NotContains(t, got, "N/A N/A")

	assert.NotContains(t, got, "<details>")
	assert.NotContains(t, got, "## Liquidatable Troves")
}

func TestRenderer_MarkdownDiff_RatioBeyondCeiling(t *testing.T) {
	t.Parallel()

	oldSnap, newSnap := loadFixtures(t)
	beyond := decimal.RequireFromString("200000000000000000000000")
	oldSnap.Branches[0].TCR = beyond
	newSnap.Branches[0].Troves[2].ICR = beyond

	got, err := newPlainRenderer(t).MarkdownDiff(oldSnap, newSnap)
	require.NoError(t, err)

	assert.Contains(t, got, "- **Total Collateral Ratio (TCR):** 3.60 (N/A)\n")
	assert.NotContains(t, got, "N/A **(")
	assert.NotContains(t, got, "N/A _(")
}

func TestRenderer_MarkdownDiff_Identical(t *testing.T) {
	t.Parallel()

	_, newSnap := loadFixtures(t)

	got, err := newPlainRenderer(t).MarkdownDiff(newSnap, newSnap)
	require.NoError(t, err)

	assert.NotContains(t, got, "**(+")
	assert.NotContains(t, got, "_(-")
	assert.NotContains(t, got, "(new)")
	assert.NotContains(t, got, "(was ")
}

func TestRenderer_WriteMarkdown(t *testing.T) {
	t.Parallel()

	oldSnap, newSnap := loadFixtures(t)
	r := newPlainRenderer(t)
	dir := t.TempDir()

	path := filepath.Join(dir, "reports", "snapshot.md")
	require.NoError(t, r.WriteMarkdown(path, oldSnap))

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	want, err := r.Markdown(oldSnap)
	require.NoError(t, err)
	assert.Equal(t, want, string(b))

	diffPath := filepath.Join(dir, "new-old-diff-report.md")
	require.NoError(t, r.WriteMarkdownDiff(diffPath, oldSnap, newSnap))

	b, err = os.ReadFile(diffPath)
	require.NoError(t, err)
	assert.Contains(t, string(b), "# Protocol Diff Report")
}
