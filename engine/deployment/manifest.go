// Package deployment reads the manifest written by the deployment scripts and
// records the deployed contracts.
package deployment

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"unicode"

	"github.com/quill-fi/quill-tooling/engine/commands/text"
	"github.com/quill-fi/quill-tooling/engine/config"
)

const (
	// ManifestFile is written by the deployment script in the project root.
	ManifestFile = "deployment-manifest.json"
	// ContextFile receives the deployment context after a successful deployment.
	ContextFile = "deployment-context-latest.json"
)

var (
	// ErrManifestNotFound is returned when the deployment script left no manifest.
	ErrManifestNotFound = errors.New("deployment manifest not found")
	// ErrInvalidManifest is returned when the manifest cannot be decoded.
	ErrInvalidManifest = errors.New("invalid deployment manifest")
)

// Manifest is the deployment script output.
type Manifest struct {
	BoldToken          string              `json:"boldToken"`
	CollateralRegistry string              `json:"collateralRegistry"`
	HintHelpers        string              `json:"hintHelpers"`
	MultiTroveGetter   string              `json:"multiTroveGetter"`
	Branches           []map[string]string `json:"branches"`
}

// LoadManifest reads the manifest from fsys.
func LoadManifest(fsys fs.ReadFileFS) (*Manifest, error) {
	b, err := fsys.ReadFile(ManifestFile)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s, did the deployment script run?", ErrManifestNotFound, ManifestFile)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", ManifestFile, err)
	}

	var m Manifest
	if err = json.Unmarshal(b, &m); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrInvalidManifest, ManifestFile, err)
	}

	return &m, nil
}

// Contract is a named deployed address.
type Contract struct {
	Name    string
	Address string
}

// collateralContracts are the per-branch manifest entries recorded in the
// deployment context, in display order.
var collateralContracts = []string{
	"activePool",
	"addressesRegistry",
	"borrowerOperations",
	"collSurplusPool",
	"collToken",
	"defaultPool",
	"gasCompZapper",
	"gasPool",
	"interestRouter",
	"leverageZapper",
	"metadataNFT",
	"priceFeed",
	"sortedTroves",
	"stabilityPool",
	"troveManager",
	"troveNFT",
	"wethZapper",
}

// ProtocolContracts returns the protocol wide contracts. The first branch
// collateral token doubles as the WETH tester.
func (m *Manifest) ProtocolContracts() []Contract {
	contracts := []Contract{
		{Name: "BoldToken", Address: m.BoldToken},
		{Name: "CollateralRegistry", Address: m.CollateralRegistry},
		{Name: "HintHelpers", Address: m.HintHelpers},
		{Name: "MultiTroveGetter", Address: m.MultiTroveGetter},
	}
	if len(m.Branches) > 0 {
		contracts = append(contracts, Contract{Name: "WETHTester", Address: m.Branches[0]["collToken"]})
	}

	return contracts
}

// CollateralContracts returns the contracts of every branch.
func (m *Manifest) CollateralContracts() [][]Contract {
	out := make([][]Contract, len(m.Branches))
	for i, b := range m.Branches {
		for _, name := range collateralContracts {
			out[i] = append(out[i], Contract{Name: name, Address: b[name]})
		}
	}

	return out
}

// Context is the record written to ContextFile.
type Context struct {
	Options             config.SafeOptions  `json:"options"`
	CollateralContracts []map[string]string `json:"collateralContracts"`
	ProtocolContracts   map[string]string   `json:"protocolContracts"`
}

// NewContext builds the deployment context from the redacted options and the
// manifest.
func NewContext(opts config.SafeOptions, m *Manifest) Context {
	ctx := Context{
		Options:           opts,
		ProtocolContracts: map[string]string{},
	}
	for _, c := range m.ProtocolContracts() {
		ctx.ProtocolContracts[c.Name] = c.Address
	}
	for _, branch := range m.CollateralContracts() {
		entry := make(map[string]string, len(branch))
		for _, c := range branch {
			entry[c.Name] = c.Address
		}
		ctx.CollateralContracts = append(ctx.CollateralContracts, entry)
	}

	return ctx
}

// WriteContext writes the deployment context as JSON at path.
func WriteContext(path string, ctx Context) error {
	b, err := json.MarshalIndent(ctx, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode deployment context: %w", err)
	}
	if err = os.WriteFile(path, append(b, '\n'), 0o600); err != nil {
		return fmt.Errorf("failed to write deployment context: %w", err)
	}

	return nil
}

// Listing formats the deployed contracts for the terminal: protocol
// contracts first, then one block per collateral branch. Names are
// capitalised.
func (m *Manifest) Listing() string {
	block := func(contracts []Contract) string {
		rows := make([][]string, len(contracts))
		for i, c := range contracts {
			rows[i] = []string{capitalize(c.Name), c.Address}
		}

		return text.Table(nil, rows)
	}

	var sb strings.Builder
	sb.WriteString("Protocol contracts:\n\n")
	sb.WriteString(block(m.ProtocolContracts()))
	sb.WriteString("\n\n")
	for i, b := range m.CollateralContracts() {
		if i > 0 {
			sb.WriteString("\n\n")
		}
		fmt.Fprintf(&sb, "Collateral %d contracts:\n\n%s", i+1, block(b))
	}
	sb.WriteString("\n")

	return sb.String()
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	r := []rune(s)
	r[0] = unicode.ToUpper(r[0])

	return string(r)
}
