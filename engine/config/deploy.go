package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Mode selects which part of the protocol a deployment creates.
type Mode string

const (
	ModeComplete        Mode = "complete"
	ModeBoldOnly        Mode = "bold-only"
	ModeUseExistingBold Mode = "use-existing-bold"
)

// Modes lists the accepted deployment modes.
var Modes = []Mode{ModeComplete, ModeBoldOnly, ModeUseExistingBold}

// Deploy option keys. They double as the deploy command flag names and as
// the keys of the network presets.
const (
	KeyChainID              = "chain-id"
	KeyRPCURL               = "rpc-url"
	KeyDeployer             = "deployer"
	KeyLedgerPath           = "ledger-path"
	KeyEtherscanAPIKey      = "etherscan-api-key"
	KeyMode                 = "mode"
	KeySalt                 = "salt"
	KeyOpenDemoTroves       = "open-demo-troves"
	KeyDryRun               = "dry-run"
	KeySlow                 = "slow"
	KeyUnlocked             = "unlocked"
	KeyUseTestnetPricefeeds = "use-testnet-pricefeeds"
	KeyVerify               = "verify"
	KeyVerifier             = "verifier"
	KeyVerifierURL          = "verifier-url"
	KeyGasPrice             = "gas-price"
	KeyPriorityGasPrice     = "priority-gas-price"
	KeyResume               = "resume"
	KeyDebug                = "debug"
	KeyScript               = "script"
)

// VerifierEtherscan is the default verification provider.
const VerifierEtherscan = "etherscan"

// DeployOptions is the resolved configuration of a deployment.
//
// WARNING: This data type contains sensitive fields and should not be logged or serialised.
// Use Safe for a redacted view.
type DeployOptions struct {
	ChainID              uint64
	RPCURL               string
	Deployer             string // Secret: address (ledger or unlocked signing) or private key
	LedgerPath           string
	EtherscanAPIKey      string // Secret
	Mode                 Mode
	Salt                 string
	OpenDemoTroves       bool
	DryRun               bool
	Slow                 bool
	Unlocked             bool
	UseTestnetPricefeeds bool
	Verify               bool
	Verifier             string
	VerifierURL          string
	GasPrice             string
	PriorityGasPrice     string
	Resume               bool
	Debug                bool
	Script               string
}

// deployEnvBindings maps deploy option keys to the environment variables
// that can provide them.
var deployEnvBindings = map[string][]string{
	KeyChainID:              {"CHAIN_ID"},
	KeyRPCURL:               {"RPC_URL"},
	KeyDeployer:             {"DEPLOYER"},
	KeyLedgerPath:           {"LEDGER_PATH"},
	KeyEtherscanAPIKey:      {"ETHERSCAN_API_KEY"},
	KeyMode:                 {"DEPLOYMENT_MODE"},
	KeySalt:                 {"SALT"},
	KeyOpenDemoTroves:       {"OPEN_DEMO_TROVES"},
	KeyDryRun:               {"DRY_RUN"},
	KeySlow:                 {"SLOW"},
	KeyUnlocked:             {"UNLOCKED"},
	KeyUseTestnetPricefeeds: {"USE_TESTNET_PRICEFEEDS"},
	KeyVerify:               {"VERIFY"},
	KeyVerifier:             {"VERIFIER"},
	KeyVerifierURL:          {"VERIFIER_URL"},
	KeyDebug:                {"DEBUG"},
}

// ResolveDeploy resolves the deploy options once, with precedence
// flag > environment > preset default > built-in fallback. Values forced by
// the preset override everything. An empty preset name applies no preset.
// Flags are only taken into account when they were set on the command line.
func ResolveDeploy(flagSet *pflag.FlagSet, presetName string, presets Presets) (*DeployOptions, error) {
	v := viper.New()
	v.SetDefault(KeyMode, string(ModeComplete))
	v.SetDefault(KeyVerifier, VerifierEtherscan)

	if err := bindEnvs(v, deployEnvBindings); err != nil {
		return nil, err
	}
	if flagSet != nil {
		if err := v.BindPFlags(flagSet); err != nil {
			return nil, err
		}
	}

	if presetName != "" {
		preset, err := presets.Get(presetName)
		if err != nil {
			return nil, err
		}
		if err = v.MergeConfigMap(preset.defaults()); err != nil {
			return nil, fmt.Errorf("failed to apply preset %s: %w", presetName, err)
		}
		for k, val := range preset.Forced {
			v.Set(k, val)
		}
	}

	opts := &DeployOptions{
		RPCURL:               v.GetString(KeyRPCURL),
		Deployer:             v.GetString(KeyDeployer),
		LedgerPath:           v.GetString(KeyLedgerPath),
		EtherscanAPIKey:      v.GetString(KeyEtherscanAPIKey),
		Mode:                 Mode(v.GetString(KeyMode)),
		Salt:                 v.GetString(KeySalt),
		OpenDemoTroves:       parseBool(v.GetString(KeyOpenDemoTroves)),
		DryRun:               parseBool(v.GetString(KeyDryRun)),
		Slow:                 parseBool(v.GetString(KeySlow)),
		Unlocked:             parseBool(v.GetString(KeyUnlocked)),
		UseTestnetPricefeeds: parseBool(v.GetString(KeyUseTestnetPricefeeds)),
		Verify:               parseBool(v.GetString(KeyVerify)),
		Verifier:             v.GetString(KeyVerifier),
		VerifierURL:          v.GetString(KeyVerifierURL),
		GasPrice:             v.GetString(KeyGasPrice),
		PriorityGasPrice:     v.GetString(KeyPriorityGasPrice),
		Resume:               parseBool(v.GetString(KeyResume)),
		Debug:                parseBool(v.GetString(KeyDebug)),
		Script:               v.GetString(KeyScript),
	}

	if raw := v.GetString(KeyChainID); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: chain ID %q is not an integer", ErrInvalidOption, raw)
		}
		opts.ChainID = id
	}

	return opts, nil
}

// parseBool reads a boolean option. Any value other than "false", "no" and
// "0" is true; the empty string means the option was not given.
func parseBool(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "false", "no", "0":
		return false
	default:
		return true
	}
}

// Validate checks that the options describe a deployment that can run.
func (o *DeployOptions) Validate() error {
	if o.ChainID == 0 {
		return fmt.Errorf("%w: --chain-id <CHAIN_ID> is required", ErrMissingOption)
	}
	if o.RPCURL == "" {
		return fmt.Errorf("%w: --rpc-url <RPC_URL> is required", ErrMissingOption)
	}
	if o.Deployer == "" {
		return fmt.Errorf("%w: --deployer <DEPLOYER> is required", ErrMissingOption)
	}
	if o.Script == "" {
		return fmt.Errorf("%w: --script <SCRIPT> is required without a network preset", ErrMissingOption)
	}
	if !o.Mode.Valid() {
		return fmt.Errorf("%w: mode %q, expected one of %s", ErrInvalidOption, o.Mode, joinModes())
	}
	if o.Verify && o.Verifier == VerifierEtherscan && o.EtherscanAPIKey == "" {
		return fmt.Errorf("%w: verifying with Etherscan requires --etherscan-api-key <ETHERSCAN_API_KEY>", ErrMissingOption)
	}

	return nil
}

// Valid reports whether m is a known deployment mode.
func (m Mode) Valid() bool {
	for _, known := range Modes {
		if m == known {
			return true
		}
	}

	return false
}

func joinModes() string {
	names := make([]string, len(Modes))
	for i, m := range Modes {
		names[i] = string(m)
	}

	return strings.Join(names, ", ")
}

// DeployerIsAddress reports whether the deployer is an account address rather
// than a private key. Address deployers sign with a Ledger or an unlocked
// account.
func (o *DeployOptions) DeployerIsAddress() bool {
	return strings.HasPrefix(o.Deployer, "0x") && len(o.Deployer) == 42
}

// DeployerAddress returns the deployer account address, deriving it when the
// deployer is a private key. The empty string is returned when neither
// applies.
func (o *DeployOptions) DeployerAddress() string {
	if o.DeployerIsAddress() {
		if !common.IsHexAddress(o.Deployer) {
			return ""
		}

		return common.HexToAddress(o.Deployer).Hex()
	}

	key, err := crypto.HexToECDSA(strings.TrimPrefix(o.Deployer, "0x"))
	if err != nil {
		return ""
	}

	return crypto.PubkeyToAddress(key.PublicKey).Hex()
}

// SafeOptions is the redacted view of DeployOptions that may be logged and
// written to disk. Secrets are left out; the deployer is reduced to its
// address.
type SafeOptions struct {
	ChainID              uint64 `json:"chainId"`
	RPCURL               string `json:"rpcUrl"`
	DeployerAddress      string `json:"deployerAddress,omitempty"`
	LedgerPath           string `json:"ledgerPath,omitempty"`
	Mode                 Mode   `json:"mode"`
	Salt                 string `json:"salt,omitempty"`
	OpenDemoTroves       bool   `json:"openDemoTroves"`
	DryRun               bool   `json:"dryRun"`
	Slow                 bool   `json:"slow"`
	Unlocked             bool   `json:"unlocked"`
	UseTestnetPricefeeds bool   `json:"useTestnetPricefeeds"`
	Verify               bool   `json:"verify"`
	Verifier             string `json:"verifier"`
	VerifierURL          string `json:"verifierUrl,omitempty"`
	GasPrice             string `json:"gasPrice,omitempty"`
	PriorityGasPrice     string `json:"priorityGasPrice,omitempty"`
	Resume               bool   `json:"resume"`
	Debug                bool   `json:"debug"`
	Script               string `json:"script"`
}

// Safe returns the redacted view of the options.
func (o *DeployOptions) Safe() SafeOptions {
	return SafeOptions{
		ChainID:              o.ChainID,
		RPCURL:               o.RPCURL,
		DeployerAddress:      o.DeployerAddress(),
		LedgerPath:           o.LedgerPath,
		Mode:                 o.Mode,
		Salt:                 o.Salt,
		OpenDemoTroves:       o.OpenDemoTroves,
		DryRun:               o.DryRun,
		Slow:                 o.Slow,
		Unlocked:             o.Unlocked,
		UseTestnetPricefeeds: o.UseTestnetPricefeeds,
		Verify:               o.Verify,
		Verifier:             o.Verifier,
		VerifierURL:          o.VerifierURL,
		GasPrice:             o.GasPrice,
		PriorityGasPrice:     o.PriorityGasPrice,
		Resume:               o.Resume,
		Debug:                o.Debug,
		Script:               o.Script,
	}
}

// Settings lists the resolved settings for display, one name/value pair per
// row. Secrets are shown as "(secret)" and the deployer as its address.
func (o *DeployOptions) Settings(network string) [][]string {
	secret := func(s string) string {
		if s == "" {
			return ""
		}

		return "(secret)"
	}
	yesNo := func(b bool) string {
		if b {
			return "yes"
		}

		return "no"
	}
	salt := o.Salt
	if salt == "" {
		salt = "block.timestamp will be used !!"
	}
	chain := strconv.FormatUint(o.ChainID, 10)
	if network != "" {
		chain += " (" + network + ")"
	}

	return [][]string{
		{"CHAIN_ID:", chain},
		{"DEPLOYER:", o.DeployerAddress()},
		{"LEDGER_PATH:", o.LedgerPath},
		{"ETHERSCAN_API_KEY:", secret(o.EtherscanAPIKey)},
		{"DEPLOYMENT_MODE:", string(o.Mode)},
		{"SALT:", salt},
		{"OPEN_DEMO_TROVES:", yesNo(o.OpenDemoTroves)},
		{"RPC_URL:", o.RPCURL},
		{"USE_TESTNET_PRICEFEEDS:", yesNo(o.UseTestnetPricefeeds)},
		{"VERIFY:", yesNo(o.Verify)},
		{"VERIFIER:", o.Verifier},
		{"VERIFIER_URL:", o.VerifierURL},
		{"RESUME:", yesNo(o.Resume)},
		{"SCRIPT:", o.Script},
	}
}
