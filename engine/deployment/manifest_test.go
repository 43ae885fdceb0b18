package deployment

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quill-fi/quill-tooling/engine/config"
)

const manifestJSON = `{
  "boldToken": "0x0000000000000000000000000000000000000001",
  "collateralRegistry": "0x0000000000000000000000000000000000000002",
  "hintHelpers": "0x0000000000000000000000000000000000000003",
  "multiTroveGetter": "0x0000000000000000000000000000000000000004",
  "branches": [
    {"collToken": "0x00000000000000000000000000000000000000a1", "troveManager": "0x00000000000000000000000000000000000000a2"},
    {"collToken": "0x00000000000000000000000000000000000000b1", "stabilityPool": "0x00000000000000000000000000000000000000b2"}
  ]
}`

func loadManifest(t *testing.T) *Manifest {
	t.Helper()

	m, err := LoadManifest(fstest.MapFS{ManifestFile: {Data: []byte(manifestJSON)}})
	require.NoError(t, err)

	return m
}

func TestLoadManifest(t *testing.T) {
	t.Parallel()

	m := loadManifest(t)
	assert.Equal(t, "0x0000000000000000000000000000000000000001", m.BoldToken)
	require.Len(t, m.Branches, 2)

	_, err := LoadManifest(fstest.MapFS{})
	require.ErrorIs(t, err, ErrManifestNotFound)
	require.ErrorContains(t, err, ManifestFile)

	_, err = LoadManifest(fstest.MapFS{ManifestFile: {Data: []byte("{")}})
	require.ErrorIs(t, err, ErrInvalidManifest)
}

func TestManifest_Contracts(t *testing.T) {
	t.Parallel()

	m := loadManifest(t)

	protocol := m.ProtocolContracts()
	require.Len(t, protocol, 5)
	assert.Equal(t, Contract{Name: "WETHTester", Address: "0x00000000000000000000000000000000000000a1"}, protocol[4])

	branches := m.CollateralContracts()
	require.Len(t, branches, 2)
	assert.Len(t, branches[0], len(collateralContracts))
	assert.Equal(t, "activePool", branches[0][0].Name)
	assert.Empty(t, branches[0][0].Address)

	assert.Len(t, (&Manifest{}).ProtocolContracts(), 4)
}

func TestManifest_Listing(t *testing.T) {
	t.Parallel()

	got := loadManifest(t).Listing()

	assert.True(t, strings.HasPrefix(got, "Protocol contracts:\n\n"))
	// CollateralRegistry and BorrowerOperations set the width of their blocks
	assert.Contains(t, got, "  BoldToken           0x0000000000000000000000000000000000000001\n")
	assert.Contains(t, got, "\n\nCollateral 1 contracts:\n\n  ActivePool")
	assert.Contains(t, got, "  TroveManager        0x00000000000000000000000000000000000000a2")
	assert.Contains(t, got, "\n\nCollateral 2 contracts:\n\n")
	assert.True(t, strings.HasSuffix(got, "\n"))
	assert.NotContains(t, got, " \n")
}

func TestWriteContext(t *testing.T) {
	t.Parallel()

	opts := config.DeployOptions{
		ChainID:         31337,
		RPCURL:          "http://localhost:8545",
		Deployer:        "0xac0974bec39a17e36ba4a6b4d238ff944bacb478cbed5efcae784d7bf4f2ff80",
		EtherscanAPIKey: "etherscan-secret",
		Mode:            config.ModeComplete,
	}
	ctx := NewContext(opts.Safe(), loadManifest(t))
	path := filepath.Join(t.TempDir(), ContextFile)

	require.NoError(t, WriteContext(path, ctx))

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(b), "ac0974bec39a17e3")
	assert.NotContains(t, string(b), "etherscan-secret")

	var got map[string]any
	require.NoError(t, json.Unmarshal(b, &got))
	assert.Equal(t, "0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266", got["options"].(map[string]any)["deployerAddress"])
	assert.Equal(t, "0x0000000000000000000000000000000000000001", got["protocolContracts"].(map[string]any)["BoldToken"])
	assert.Len(t, got["collateralContracts"], 2)

	assert.True(t, strings.HasSuffix(string(b), "}\n"))

	require.ErrorContains(t, WriteContext(filepath.Join(t.TempDir(), "missing", ContextFile), ctx), "failed to write deployment context")
}
