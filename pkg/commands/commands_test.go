package commands

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/quill-fi/quill-tooling/pkg/logger"
)

func TestNew(t *testing.T) {
	t.Parallel()

	lggr := logger.Nop()
	cmds := New(lggr)

	require.NotNil(t, cmds)
	assert.Equal(t, lggr, cmds.lggr)
	assert.Nil(t, cmds.level)

	lvl := zap.NewAtomicLevel()
	assert.Same(t, cmds, cmds.WithLevel(&lvl))
	assert.Equal(t, &lvl, cmds.level)
}

func TestCommands_Interact(t *testing.T) {
	t.Parallel()

	cmd, err := New(logger.Nop()).Interact()
	require.NoError(t, err)

	assert.Equal(t, "interact", cmd.Name())
	assert.NotNil(t, cmd.PersistentFlags().Lookup("no-color"))
	assert.Len(t, cmd.Commands(), 8)
}

func TestCommands_Deploy(t *testing.T) {
	t.Parallel()

	cmd, err := New(logger.Nop()).Deploy()
	require.NoError(t, err)

	assert.Equal(t, "deploy", cmd.Name())
	assert.NotNil(t, cmd.Flags().Lookup("chain-id"))
}

func TestCommands_MissingLogger(t *testing.T) {
	t.Parallel()

	_, err := New(nil).Interact()
	require.ErrorContains(t, err, "missing required fields: Logger")

	_, err = New(nil).Deploy()
	require.ErrorContains(t, err, "missing required fields: Logger")
}
