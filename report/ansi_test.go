package report

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quill-fi/quill-tooling/snapshot"
)

func TestRenderer_ANSI(t *testing.T) {
	t.Parallel()

	oldSnap, _ := loadFixtures(t)

	got, err := newPlainRenderer(t).ANSI(oldSnap)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(got, "Protocol Snapshot Report\n\n"))
	assert.Contains(t, got, "  Total Supply:        1000.00 USDQ\n")
	assert.Contains(t, got, "  Number of Branches:  2\n")
	assert.Contains(t, got, "  Block Number:        100\n")

	overview := strings.Join([]string{
		"    #  Collateral  Total Troves  Total Debt (USDQ)  Total Collateral  TCR   Price (USD)  SP Deposits",
		"    0  WETH        2             1000.00            2.00              4.00  2000.00      500.00",
		"    1  wstETH      0             0.00               0.00              N/A   2400.00      0.00",
	}, "\n")
	assert.Contains(t, got, overview)

	assert.Contains(t, got, "Branch 0: 0x5FbDB2315678afecb367f032d93F642f64180aa3 (WETH)")
	assert.Contains(t, got, "  Total Collateral:  2.00 WETH\n")
	assert.Contains(t, got, "  Last Good Price:   2000.00 USD\n")
	assert.Contains(t, got, "12345678")
	assert.Contains(t, got, "No troves available.")

	assert.Contains(t, got, "Owners Balances")
	assert.Contains(t, got, "adam")

	assert.Contains(t, got, "Liquidatable troves IDs")
	assert.Contains(t, got, "1234567890123456789  1.05")
	assert.NotContains(t, got, "No liquidatable troves.")
	assert.NotContains(t, got, "\x1b[")
}

func TestRenderer_ANSI_Color(t *testing.T) {
	t.Parallel()

	oldSnap, _ := loadFixtures(t)

	colored, err := New(WithColor(true))
	require.NoError(t, err)

	got, err := colored.ANSI(oldSnap)
	require.NoError(t, err)

	assert.Contains(t, got, "\x1b[1mProtocol Snapshot Report\x1b[22m")
	assert.Contains(t, got, "\x1b[32m4.00")
	assert.Contains(t, got, "\x1b[31m1.05")

	plain, err := newPlainRenderer(t).ANSI(oldSnap)
	require.NoError(t, err)
	assert.Equal(t, plain, stripSGR(got))
}

func TestRenderer_ANSI_NoLiquidatable(t *testing.T) {
	t.Parallel()

	_, newSnap := loadFixtures(t)
	for i := range newSnap.Branches {
		newSnap.Branches[i].Troves = nil
	}

	got, err := newPlainRenderer(t).ANSI(newSnap)
	require.NoError(t, err)
	assert.Contains(t, got, "No liquidatable troves.")
}

func TestRenderer_ANSI_InvalidSnapshot(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		give    func(s *snapshot.ProtocolSnapshot) *snapshot.ProtocolSnapshot
		wantErr string
	}{
		{
			name: "zero decimal precision",
			give: func(s *snapshot.ProtocolSnapshot) *snapshot.ProtocolSnapshot {
				s.ProtocolConfig.DecimalPrecision = decimal.Zero
				return s
			},
			wantErr: "protocolConfig.decimalPrecision",
		},
		{
			name: "zero one hundred percent",
			give: func(s *snapshot.ProtocolSnapshot) *snapshot.ProtocolSnapshot {
				s.ProtocolConfig.OneHundredPercent = decimal.Zero
				return s
			},
			wantErr: "protocolConfig.oneHundredPercent",
		},
		{
			name: "nil snapshot",
			give: func(*snapshot.ProtocolSnapshot) *snapshot.ProtocolSnapshot {
				return nil
			},
			wantErr: "snapshot is empty",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			oldSnap, _ := loadFixtures(t)

			got, err := newPlainRenderer(t).ANSI(tt.give(oldSnap))
			require.ErrorIs(t, err, snapshot.ErrMissingField)
			require.ErrorContains(t, err, tt.wantErr)
			assert.Empty(t, got)
		})
	}
}
