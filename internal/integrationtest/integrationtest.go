// Package integrationtest provides helpers used in HTTP integration tests.
package integrationtest

import (
	"context"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/go-petr/pet-ledger/cmd/httpserver"
	"github.com/go-petr/pet-ledger/internal/engine"
	"github.com/go-petr/pet-ledger/pkg/configpkg"
)

// SetupServer returns test server backed by an empty ledger.
func SetupServer(t *testing.T) *httpserver.Server {
	t.Helper()

	gin.SetMode(gin.TestMode)

	server, err := httpserver.New(zerolog.Nop(), configpkg.Config{})
	if err != nil {
		t.Fatalf(`httpserver.New(logger, config) returned error: %v`, err)
	}

	return server
}

// Seed replays a CSV transaction log straight into the server's ledger.
func Seed(t *testing.T, server *httpserver.Server, log string) engine.Stats {
	t.Helper()

	stats, err := server.Ledger.Replay(context.Background(), strings.NewReader(log))
	if err != nil {
		t.Fatalf("seeding ledger failed. err: %v", err)
	}

	return stats
}
