// Package devnet talks to the development node through its non-standard
// JSON-RPC methods.
package devnet

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/ethereum/go-ethereum/rpc"

	"github.com/quill-fi/quill-tooling/pkg/logger"
)

// Common durations for moving time forward.
const (
	Day   = 24 * time.Hour
	Week  = 7 * Day
	Month = 30 * Day
	Year  = 365 * Day
)

// Client is a JSON-RPC client of an anvil or hardhat node.
type Client struct {
	url  string
	lggr logger.Logger
}

// New returns a client for the node at url. No connection is made until a
// method is called.
func New(lggr logger.Logger, url string) *Client {
	return &Client{url: url, lggr: lggr}
}

// IncreaseTime moves the chain clock forward by seconds. The change is
// applied with the next mined block.
func (c *Client) IncreaseTime(ctx context.Context, seconds uint64) error {
	client, err := rpc.DialContext(ctx, c.url)
	if err != nil {
		return fmt.Errorf("failed to connect to %s: %w", c.url, err)
	}
	defer client.Close()

	var result json.RawMessage
	if err = client.CallContext(ctx, &result, "evm_increaseTime", seconds); err != nil {
		return fmt.Errorf("failed to move time, ensure the node is running and accessible at %s: %w", c.url, err)
	}
	c.lggr.Debugw("evm_increaseTime", "url", c.url, "seconds", seconds, "result", string(result))

	return nil
}
