package forge

import (
	"strconv"

	"github.com/quill-fi/quill-tooling/engine/config"
)

// Deploy builds the invocation of a deployment script. The deployer and the
// deployment settings reach the script through its environment.
func Deploy(opts *config.DeployOptions) Invocation {
	inv := Invocation{
		Script:    opts.Script,
		ChainID:   strconv.FormatUint(opts.ChainID, 10),
		RPCURL:    opts.RPCURL,
		Broadcast: !opts.DryRun,
		Env: map[string]string{
			"DEPLOYER":        opts.Deployer,
			"DEPLOYMENT_MODE": string(opts.Mode),
			"SALT":            opts.Salt,
		},
		Unset: []string{"CI"},
	}

	if opts.Slow {
		inv.Flags = append(inv.Flags, "--slow")
	}
	if opts.GasPrice != "" {
		inv.Flags = append(inv.Flags, "--with-gas-price", opts.GasPrice)
	}
	if opts.PriorityGasPrice != "" {
		inv.Flags = append(inv.Flags, "--priority-gas-price", opts.PriorityGasPrice)
	}
	if opts.EtherscanAPIKey != "" {
		inv.Flags = append(inv.Flags, "--etherscan-api-key", opts.EtherscanAPIKey)
	}
	if opts.Verify {
		inv.Flags = append(inv.Flags, "--verify")
		if opts.Verifier != "" {
			inv.Flags = append(inv.Flags, "--verifier", opts.Verifier)
		}
		if opts.VerifierURL != "" {
			inv.Flags = append(inv.Flags, "--verifier-url", opts.VerifierURL)
		}
	}
	if opts.Resume {
		inv.Flags = append(inv.Flags, "--resume")
	}
	if opts.DeployerIsAddress() {
		if opts.Unlocked {
			inv.Flags = append(inv.Flags, "--unlocked")
		} else {
			inv.Flags = append(inv.Flags, "--ledger")
			if opts.LedgerPath != "" {
				inv.Flags = append(inv.Flags, "--hd-paths", opts.LedgerPath)
			}
		}
	}

	if opts.OpenDemoTroves {
		inv.Env["OPEN_DEMO_TROVES"] = "true"
	}
	if opts.UseTestnetPricefeeds {
		inv.Env["USE_TESTNET_PRICEFEEDS"] = "true"
	}

	return inv
}
