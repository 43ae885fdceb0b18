package report

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/quill-fi/quill-tooling/snapshot"
)

var sgr = regexp.MustCompile(`\x1b\[[0-9;]*m`)

func stripSGR(s string) string {
	return sgr.ReplaceAllString(s, "")
}

func loadFixtures(t *testing.T) (*snapshot.ProtocolSnapshot, *snapshot.ProtocolSnapshot) {
	t.Helper()

	oldSnap, newSnap, err := snapshot.LoadPair("testdata/old.json", "testdata/new.json")
	require.NoError(t, err)

	return oldSnap, newSnap
}

func newPlainRenderer(t *testing.T) *Renderer {
	t.Helper()

	r, err := New(WithColor(false))
	require.NoError(t, err)

	return r
}
