package config

import (
	"strconv"

	chainsel "github.com/smartcontractkit/chain-selectors"
)

// NetworkName returns the registered name of the EVM chain with the given ID.
func NetworkName(chainID uint64) (string, bool) {
	details, err := chainsel.GetChainDetailsByChainIDAndFamily(strconv.FormatUint(chainID, 10), chainsel.FamilyEVM)
	if err != nil {
		return "", false
	}

	return details.ChainName, true
}
