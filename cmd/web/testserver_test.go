package main

import (
	"context"
	"github.com/myrjola/droneconfigurator/internal/e2etest"
	"github.com/stretchr/testify/require"
	"io"
	"testing"
)

// testLookupEnv configures an ephemeral server with an in-memory database and no waiting.
func testLookupEnv(overrides map[string]string) func(string) (string, bool) {
	return func(key string) (string, bool) {
		if v, ok := overrides[key]; ok {
			return v, true
		}
		switch key {
		case "CONFIGURATOR_ADDR":
			return "localhost:0", true
		case "CONFIGURATOR_SQLITE_URL":
			return ":memory:", true
		case "CONFIGURATOR_DEBUG_ADDR":
			return "", true
		case "CONFIGURATOR_LOAD_DELAY", "CONFIGURATOR_LEAD_DELAY":
			return "0s", true
		default:
			return "", false
		}
	}
}

// startTestServer starts the server and stops it when the test finishes.
func startTestServer(t *testing.T, w io.Writer, lookupEnv func(string) (string, bool)) *e2etest.Server {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	server, err := e2etest.StartServer(ctx, w, lookupEnv, run)
	require.NoError(t, err)
	return server
}
