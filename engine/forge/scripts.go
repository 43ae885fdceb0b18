package forge

import (
	"math/big"
	"strconv"
	"strings"
)

// GovernanceDir is the folder, under the script directory, holding the
// local-testnet interaction scripts.
const GovernanceDir = "QuillGovernance"

// SnapshotFile is the file the snapshot script writes in the project root.
const SnapshotFile = "protocolSnapshot.json"

// ActorPrivateKeyEnv carries the signing key to the redeem script.
const ActorPrivateKeyEnv = "INTERACT_ACTOR_PRIVATEKEY"

// Governance builds the invocations of the interaction scripts. Every script
// is broadcast to the configured chain.
type Governance struct {
	Project *Project
	ChainID string
	RPCURL  string
}

func (g Governance) script(name, sig string, args ...string) Invocation {
	return Invocation{
		Script:    g.Project.Script(GovernanceDir + "/" + name),
		Args:      args,
		Sig:       sig,
		ChainID:   g.ChainID,
		RPCURL:    g.RPCURL,
		Broadcast: true,
	}
}

// Snapshot dumps the protocol state into SnapshotFile.
func (g Governance) Snapshot() Invocation {
	return g.script("GetStateSnapshotLocal.s.sol", "")
}

// SetPrice sets the mocked price of a collateral, in wei.
func (g Governance) SetPrice(collIndex uint64, wei *big.Int) Invocation {
	return g.script("ChangeCollPriceLocal.s.sol", "run(uint256,uint256)", uitoa(collIndex), wei.String())
}

// ShutdownBranch shuts a branch down.
func (g Governance) ShutdownBranch(branch uint64) Invocation {
	return g.script("ShutdownBranchLocal.s.sol", "run(uint256)", uitoa(branch))
}

// LiquidateTroves liquidates troves of a collateral branch.
func (g Governance) LiquidateTroves(collIndex uint64, troveIDs []*big.Int) Invocation {
	ids := make([]string, len(troveIDs))
	for i, id := range troveIDs {
		ids[i] = id.String()
	}

	return g.script("LiquidateTrovesLocal.s.sol", "run(uint256,uint256[])",
		uitoa(collIndex), "["+strings.Join(ids, ", ")+"]")
}

// RedeemCollateral redeems stablecoins, signing with privateKey.
func (g Governance) RedeemCollateral(privateKey string, wei *big.Int) Invocation {
	inv := g.script("RedeemCollateralLocal.s.sol", "run(uint256)", wei.String())
	inv.Env = map[string]string{ActorPrivateKeyEnv: privateKey}

	return inv
}

func uitoa(n uint64) string {
	return strconv.FormatUint(n, 10)
}
