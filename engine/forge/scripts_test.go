package forge

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGovernance(t *testing.T) {
	t.Parallel()

	g := Governance{
		Project: &Project{Dir: ".", ScriptDir: "script"},
		ChainID: "31337",
		RPCURL:  "http://localhost:8545",
	}
	tail := []string{"--chain-id", "31337", "--rpc-url", "http://localhost:8545", "--broadcast"}
	with := func(head ...string) []string { return append(head, tail...) }

	price, _ := new(big.Int).SetString("150000000000000000000", 10)
	trove, _ := new(big.Int).SetString("11187606515095629903487489821340171885033495262553632055898216111536384020053", 10)

	tests := []struct {
		name    string
		give    Invocation
		want    []string
		wantEnv map[string]string
	}{
		{
			name: "snapshot",
			give: g.Snapshot(),
			want: with("script", "script/QuillGovernance/GetStateSnapshotLocal.s.sol"),
		},
		{
			name: "set price",
			give: g.SetPrice(1, price),
			want: with("script", "script/QuillGovernance/ChangeCollPriceLocal.s.sol", "1", "150000000000000000000",
				"--sig", "run(uint256,uint256)"),
		},
		{
			name: "shutdown",
			give: g.ShutdownBranch(2),
			want: with("script", "script/QuillGovernance/ShutdownBranchLocal.s.sol", "2", "--sig", "run(uint256)"),
		},
		{
			name: "liquidate",
			give: g.LiquidateTroves(1, []*big.Int{trove, big.NewInt(42)}),
			want: with("script", "script/QuillGovernance/LiquidateTrovesLocal.s.sol", "1",
				"[11187606515095629903487489821340171885033495262553632055898216111536384020053, 42]",
				"--sig", "run(uint256,uint256[])"),
		},
		{
			name: "redeem",
			give: g.RedeemCollateral("0xkey", big.NewInt(1000)),
			want: with("script", "script/QuillGovernance/RedeemCollateralLocal.s.sol", "1000", "--sig", "run(uint256)"),
			wantEnv: map[string]string{
				ActorPrivateKeyEnv: "0xkey",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, tt.give.Argv())
			assert.Equal(t, tt.wantEnv, tt.give.Env)
		})
	}
}
