package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestParseLevel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		give    string
		want    zapcore.Level
		wantErr string
	}{
		{name: "empty defaults to info", give: "", want: zapcore.InfoLevel},
		{name: "lower case", give: "debug", want: zapcore.DebugLevel},
		{name: "upper case", give: "WARN", want: zapcore.WarnLevel},
		{name: "padded", give: "  error ", want: zapcore.ErrorLevel},
		{name: "unknown", give: "chatty", wantErr: `invalid log level "chatty"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := ParseLevel(tt.give)
			if tt.wantErr != "" {
				require.ErrorContains(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestConfig_New(t *testing.T) {
	t.Parallel()

	for _, json := range []bool{false, true} {
		cfg := Config{Level: zapcore.WarnLevel, JSON: json}
		lggr, err := cfg.New()
		require.NoError(t, err)
		require.NotNil(t, lggr)
	}
}

func TestNewLeveled(t *testing.T) {
	t.Parallel()

	lvl := zap.NewAtomicLevelAt(zapcore.WarnLevel)
	lggr, err := NewLeveled(lvl)
	require.NoError(t, err)

	l, ok := lggr.(*logger)
	require.True(t, ok)
	assert.False(t, l.Desugar().Core().Enabled(zapcore.DebugLevel))

	lvl.SetLevel(zapcore.DebugLevel)
	assert.True(t, l.Desugar().Core().Enabled(zapcore.DebugLevel))
}

func TestNamed(t *testing.T) {
	t.Parallel()

	lggr, logs := TestObserved(t, zapcore.InfoLevel)
	child := Named(lggr, "forge")
	child.Infow("running script", "script", "Deploy.s.sol")

	assert.Equal(t, "forge", child.Name())
	entries := logs.FilterMessage("running script").All()
	require.Len(t, entries, 1)
	assert.Equal(t, "forge", entries[0].LoggerName)
	assert.Equal(t, "Deploy.s.sol", entries[0].ContextMap()["script"])
}

func TestNop(t *testing.T) {
	t.Parallel()

	lggr := Nop()
	lggr.Info("dropped")
	assert.Empty(t, lggr.Name())
}
