package devnet

import (
	"context"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/ethereum/go-ethereum/rpc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	"github.com/quill-fi/quill-tooling/pkg/logger"
)

type evmService struct {
	offset atomic.Uint64
}

// IncreaseTime serves evm_increaseTime.
func (s *evmService) IncreaseTime(seconds uint64) uint64 {
	return s.offset.Add(seconds)
}

func newNode(t *testing.T) (*evmService, string) {
	t.Helper()

	svc := &evmService{}
	server := rpc.NewServer()
	require.NoError(t, server.RegisterName("evm", svc))
	t.Cleanup(server.Stop)

	ts := httptest.NewServer(server)
	t.Cleanup(ts.Close)

	return svc, ts.URL
}

func TestClient_IncreaseTime(t *testing.T) {
	t.Parallel()

	svc, url := newNode(t)
	lggr, logs := logger.TestObserved(t, zapcore.DebugLevel)
	c := New(lggr, url)

	require.NoError(t, c.IncreaseTime(context.Background(), uint64(Day.Seconds())))
	require.NoError(t, c.IncreaseTime(context.Background(), 3600))

	assert.Equal(t, uint64(86400+3600), svc.offset.Load())
	assert.Equal(t, 2, logs.FilterMessage("evm_increaseTime").Len())
}

func TestClient_IncreaseTime_Unreachable(t *testing.T) {
	t.Parallel()

	ts := httptest.NewServer(rpc.NewServer())
	url := ts.URL
	ts.Close()
	c := New(logger.Nop(), url)

	err := c.IncreaseTime(context.Background(), 1)
	require.ErrorContains(t, err, "failed to move time")
}

func TestDurations(t *testing.T) {
	t.Parallel()

	assert.InDelta(t, 604800, Week.Seconds(), 0)
	assert.InDelta(t, 2592000, Month.Seconds(), 0)
	assert.InDelta(t, 31536000, Year.Seconds(), 0)
}
