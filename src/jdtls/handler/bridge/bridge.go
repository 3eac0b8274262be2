// Package bridge implements the JSON-RPC handlers exposed to connected editors.
package bridge

import (
	"context"
	"fmt"

	"github.com/gofrs/uuid"
	tally "github.com/uber-go/tally/v4"
	"github.com/jdtbridge/jdtls-bridge/src/jdtls/controller/contentprovider"
	"github.com/jdtbridge/jdtls-bridge/src/jdtls/controller/registry"
	session "github.com/jdtbridge/jdtls-bridge/src/jdtls/controller/session"
	"github.com/jdtbridge/jdtls-bridge/src/jdtls/entity"
	"github.com/jdtbridge/jdtls-bridge/src/jdtls/internal/jsonrpcfx"
	"go.lsp.dev/jsonrpc2"
	"go.uber.org/fx"
)

// Module registers the editor-facing JSON-RPC surface.
var Module = fx.Invoke(New)

// Params are the dependencies of the editor handler.
type Params struct {
	fx.In

	Sessions session.Controller
	Registry registry.Registry
	Contents contentprovider.Provider
	JSONRPC  jsonrpcfx.JSONRPCModule
	Stats    tally.Scope
}

// New wires a connection manager into the JSON-RPC module so each incoming
// editor connection gets its own session and request router.
func New(p Params) error {
	c := jsonRPCConnectionManager{
		sessions: p.Sessions,
		registry: p.Registry,
		contents: p.Contents,
		stats:    p.Stats.SubScope("json_rpc"),
	}
	return p.JSONRPC.RegisterConnectionManager(&c)
}

type jsonRPCConnectionManager struct {
	sessions session.Controller
	registry registry.Registry
	contents contentprovider.Provider
	stats    tally.Scope
}

// NewConnection will store a new connection and return a router that includes its UUID.
func (c *jsonRPCConnectionManager) NewConnection(ctx context.Context, conn *jsonrpc2.Conn) (jsonrpcfx.Router, error) {
	id, err := c.sessions.InitSession(ctx, conn)
	if err != nil {
		return nil, fmt.Errorf("error while creating new connection: %w", err)
	}

	r := jsonRPCRouter{
		sessions: c.sessions,
		registry: c.registry,
		contents: c.contents,
		uuid:     id,
		stats:    c.stats,
	}

	return &r, nil
}

// RemoveConnection cleans up a closed connection.
func (c *jsonRPCConnectionManager) RemoveConnection(ctx context.Context, id uuid.UUID) {
	// Ensure the session is removed even if no Exit call has been received.
	ctx = context.WithValue(ctx, entity.SessionContextKey, id)
	c.sessions.EndSession(ctx, id)
}
