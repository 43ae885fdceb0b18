// Package forge runs foundry's forge binary as an external process.
package forge

import (
	"slices"
	"strings"
)

// Invocation describes one `forge script` run.
type Invocation struct {
	Script    string   // Script path relative to the forge project root
	Args      []string // Positional arguments passed to the script entry point
	Sig       string   // Entry point signature, e.g. run(uint256); empty uses run()
	ChainID   string
	RPCURL    string
	Broadcast bool
	Flags     []string          // Extra forge flags appended after the standard ones
	Env       map[string]string // Variables added to the child environment
	Unset     []string          // Variables removed from the child environment
}

// Argv returns the forge arguments, without the binary name.
func (i Invocation) Argv() []string {
	argv := append([]string{"script", i.Script}, i.Args...)
	if i.Sig != "" {
		argv = append(argv, "--sig", i.Sig)
	}
	if i.ChainID != "" {
		argv = append(argv, "--chain-id", i.ChainID)
	}
	if i.RPCURL != "" {
		argv = append(argv, "--rpc-url", i.RPCURL)
	}
	if i.Broadcast {
		argv = append(argv, "--broadcast")
	}

	return append(argv, i.Flags...)
}

// Environ builds the child environment from base: Unset variables are dropped
// and Env entries replace or extend the rest. The caller's environment is
// never modified.
func (i Invocation) Environ(base []string) []string {
	out := make([]string, 0, len(base)+len(i.Env))
	for _, kv := range base {
		name, _, _ := strings.Cut(kv, "=")
		if slices.Contains(i.Unset, name) {
			continue
		}
		if _, ok := i.Env[name]; ok {
			continue
		}
		out = append(out, kv)
	}

	keys := make([]string, 0, len(i.Env))
	for k := range i.Env {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	for _, k := range keys {
		out = append(out, k+"="+i.Env[k])
	}

	return out
}
