package text

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTable(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		header []string
		rows   [][]string
		want   string
	}{
		{
			name: "rows only",
			rows: [][]string{
				{"local", "31337", "http://localhost:8545"},
				{"scroll-sepolia", "534351", "https://sepolia-rpc.scroll.io"},
			},
			want: "  local           31337   http://localhost:8545\n" +
				"  scroll-sepolia  534351  https://sepolia-rpc.scroll.io",
		},
		{
			name:   "header is padded with the rows",
			header: []string{"NAME", "ADDRESS"},
			rows: [][]string{
				{"adam", "0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266"},
				{"barbara", "0x70997970C51812dc3A010C7d01b50e0d17dc79C8"},
			},
			want: "  NAME     ADDRESS\n" +
				"  adam     0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266\n" +
				"  barbara  0x70997970C51812dc3A010C7d01b50e0d17dc79C8",
		},
		{
			name: "empty last cell leaves no trailing space",
			rows: [][]string{
				{"LEDGER_PATH:", ""},
				{"CHAIN_ID:", "31337"},
			},
			want: "  LEDGER_PATH:\n" +
				"  CHAIN_ID:     31337",
		},
		{
			name: "empty",
			want: "",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tc.want, Table(tc.header, tc.rows))
		})
	}
}
