package deploy

import (
	"bytes"
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/quill-fi/quill-tooling/engine/config"
	"github.com/quill-fi/quill-tooling/engine/deployment"
	"github.com/quill-fi/quill-tooling/engine/forge"
	"github.com/quill-fi/quill-tooling/pkg/logger"
)

const (
	anvilKey     = "0xac0974bec39a17e36ba4a6b4d238ff944bacb478cbed5efcae784d7bf4f2ff80"
	anvilAddress = "0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266"
)

type testEnv struct {
	dir         string
	bin         string
	invocations []forge.Invocation
	runErr      error
	manifest    *deployment.Manifest
	manifestErr error
	written     map[string]deployment.Context
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	return &testEnv{
		dir: t.TempDir(),
		manifest: &deployment.Manifest{
			BoldToken:          "0x0000000000000000000000000000000000000001",
			CollateralRegistry: "0x0000000000000000000000000000000000000002",
			HintHelpers:        "0x0000000000000000000000000000000000000003",
			MultiTroveGetter:   "0x0000000000000000000000000000000000000004",
			Branches: []map[string]string{
				{"collToken": "0x00000000000000000000000000000000000000a1"},
			},
		},
		written: map[string]deployment.Context{},
	}
}

func (e *testEnv) deps() Deps {
	return Deps{
		ConfigLoader: func() (*config.Interact, error) {
			return &config.Interact{ForgeBin: "/opt/forge", ProjectDir: e.dir}, nil
		},
		RunnerFactory: func(_ logger.Logger, bin, _ string) forge.Runner {
			e.bin = bin
			return forge.RunnerFunc(func(_ context.Context, inv forge.Invocation) error {
				e.invocations = append(e.invocations, inv)
				return e.runErr
			})
		},
		ManifestLoader: func(_ string) (*deployment.Manifest, error) {
			return e.manifest, e.manifestErr
		},
		ContextWriter: func(path string, ctx deployment.Context) error {
			e.written[path] = ctx
			return nil
		},
	}
}

func (e *testEnv) run(t *testing.T, cfg Config, args ...string) (string, error) {
	t.Helper()

	if cfg.Logger == nil {
		cfg.Logger = logger.Test(t)
	}
	cfg.Deps = e.deps()

	cmd, err := NewCommand(cfg)
	require.NoError(t, err)

	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)

	err = cmd.Execute()

	return out.String(), err
}

func TestConfig_Validate(t *testing.T) {
	t.Parallel()

	_, err := NewCommand(Config{})
	require.EqualError(t, err, "deploy.Config: missing required fields: Logger")
}

func TestNewCommand_Flags(t *testing.T) {
	t.Parallel()

	cmd, err := NewCommand(Config{Logger: logger.Nop()})
	require.NoError(t, err)

	assert.Equal(t, deployShort, cmd.Short)
	for _, name := range []string{
		config.KeyChainID, config.KeyRPCURL, config.KeyDeployer, config.KeyLedgerPath,
		config.KeyEtherscanAPIKey, config.KeyMode, config.KeySalt, config.KeyOpenDemoTroves,
		config.KeyDryRun, config.KeySlow, config.KeyUnlocked, config.KeyUseTestnetPricefeeds,
		config.KeyVerify, config.KeyVerifier, config.KeyVerifierURL, config.KeyGasPrice,
		config.KeyPriorityGasPrice, config.KeyResume, config.KeyDebug, config.KeyScript,
		"list-presets",
	} {
		assert.NotNil(t, cmd.Flags().Lookup(name), name)
	}
	assert.NotNil(t, cmd.PersistentFlags().Lookup("log-level"))
}

func TestListPresets(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	out, err := env.run(t, Config{}, "--list-presets")
	require.NoError(t, err)

	assert.Contains(t, out, "Available presets:\n\n")
	assert.Contains(t, out, "Deploy to a local network")
	assert.Contains(t, out, "swellchain-mainnet")
	assert.Empty(t, env.invocations)
}

func TestDeploy_Local(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	out, err := env.run(t, Config{}, "local", "--salt", "quill")
	require.NoError(t, err)

	assert.Equal(t, "/opt/forge", env.bin)
	require.Len(t, env.invocations, 1)
	inv := env.invocations[0]
	assert.Equal(t, []string{
		"script", "script/DeployOrkiLocal.s.sol",
		"--chain-id", "31337",
		"--rpc-url", "http://localhost:8545",
		"--broadcast",
	}, inv.Argv())
	assert.Equal(t, anvilKey, inv.Env["DEPLOYER"])
	assert.Equal(t, "complete", inv.Env["DEPLOYMENT_MODE"])
	assert.Equal(t, "quill", inv.Env["SALT"])
	assert.Equal(t, []string{"CI"}, inv.Unset)

	assert.Contains(t, out, "Deploying Quill contracts with the following settings:")
	assert.Contains(t, out, anvilAddress)
	assert.NotContains(t, out, anvilKey)
	assert.Contains(t, out, "Protocol contracts:")
	assert.Contains(t, out, "Deployment complete.\n")

	ctx, ok := env.written[filepath.Join(env.dir, deployment.ContextFile)]
	require.True(t, ok)
	assert.Equal(t, "0x0000000000000000000000000000000000000001", ctx.ProtocolContracts["BoldToken"])
	assert.Equal(t, "0x00000000000000000000000000000000000000a1", ctx.ProtocolContracts["WETHTester"])
	assert.Equal(t, uint64(31337), ctx.Options.ChainID)
	assert.Equal(t, "script/DeployOrkiLocal.s.sol", ctx.Options.Script)
}

func TestDeploy_BoldOnly(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	out, err := env.run(t, Config{}, "local", "--mode", "bold-only", "--dry-run")
	require.NoError(t, err)

	require.Len(t, env.invocations, 1)
	assert.False(t, env.invocations[0].Broadcast)
	assert.Equal(t, "bold-only", env.invocations[0].Env["DEPLOYMENT_MODE"])
	assert.Contains(t, out, "BoldToken address: 0x0000000000000000000000000000000000000001\n")
	assert.NotContains(t, out, "Deployment complete.")
	assert.Empty(t, env.written)
}

func TestDeploy_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		args      []string
		runErr    error
		wantIs    error
		wantErr   string
		wantCalls int
	}{
		{
			name:    "unknown preset",
			args:    []string{"mainnet"},
			wantIs:  config.ErrUnknownPreset,
			wantErr: "mainnet",
		},
		{
			name:    "no preset and no script",
			args:    []string{"--chain-id", "31337", "--rpc-url", "http://localhost:8545", "--deployer", anvilKey},
			wantIs:  config.ErrMissingOption,
			wantErr: "--script <SCRIPT> is required",
		},
		{
			name:    "invalid mode",
			args:    []string{"local", "--mode", "partial"},
			wantIs:  config.ErrInvalidOption,
			wantErr: `mode "partial"`,
		},
		{
			name:    "etherscan verification without key",
			args:    []string{"scroll-mainnet-fork", "--verify"},
			wantIs:  config.ErrMissingOption,
			wantErr: "--etherscan-api-key",
		},
		{
			name:      "forge failure",
			args:      []string{"local"},
			runErr:    errors.New("forge script script/DeployOrkiLocal.s.sol failed: exit status 1"),
			wantErr:   "exit status 1",
			wantCalls: 1,
		},
		{
			name:    "too many arguments",
			args:    []string{"local", "scroll-sepolia"},
			wantErr: "accepts at most 1 arg(s)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			env := newTestEnv(t)
			env.runErr = tt.runErr

			_, err := env.run(t, Config{}, tt.args...)
			require.ErrorContains(t, err, tt.wantErr)
			if tt.wantIs != nil {
				require.ErrorIs(t, err, tt.wantIs)
			}
			assert.Len(t, env.invocations, tt.wantCalls)
			assert.Empty(t, env.written)
		})
	}
}

func TestDeploy_ManifestError(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	env.manifestErr = errors.New("failed to read deployment-manifest.json")

	_, err := env.run(t, Config{}, "local")
	require.EqualError(t, err, "failed to read deployment-manifest.json")
	assert.Len(t, env.invocations, 1)
	assert.Empty(t, env.written)
}

func TestDeploy_DebugRaisesLevel(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	lvl := zap.NewAtomicLevelAt(zapcore.InfoLevel)

	_, err := env.run(t, Config{Logger: logger.Nop(), Level: &lvl}, "local", "--debug")
	require.NoError(t, err)
	assert.Equal(t, zapcore.DebugLevel, lvl.Level())
}

func TestDeploy_LogLevelFlag(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	lvl := zap.NewAtomicLevelAt(zapcore.InfoLevel)

	_, err := env.run(t, Config{Logger: logger.Nop(), Level: &lvl}, "--list-presets", "--log-level", "warn")
	require.NoError(t, err)
	assert.Equal(t, zapcore.WarnLevel, lvl.Level())

	_, err = env.run(t, Config{Logger: logger.Nop(), Level: &lvl}, "--list-presets", "--log-level", "loud")
	require.ErrorContains(t, err, `invalid log level "loud"`)
}
