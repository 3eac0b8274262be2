package bridge

import (
	"context"

	"github.com/gofrs/uuid"
	tally "github.com/uber-go/tally/v4"
	"github.com/jdtbridge/jdtls-bridge/src/jdtls/controller/contentprovider"
	"github.com/jdtbridge/jdtls-bridge/src/jdtls/controller/registry"
	session "github.com/jdtbridge/jdtls-bridge/src/jdtls/controller/session"
	"github.com/jdtbridge/jdtls-bridge/src/jdtls/entity"
	"github.com/jdtbridge/jdtls-bridge/src/jdtls/internal/jdt"
	"go.lsp.dev/jsonrpc2"
	"go.lsp.dev/protocol"
)

// MethodRequestFullShutdown directs the bridge to stop the language server on the next 'exit' call.
const MethodRequestFullShutdown = "jdtls/requestFullShutdown"

type jsonRPCRouter struct {
	sessions session.Controller
	registry registry.Registry
	contents contentprovider.Provider
	uuid     uuid.UUID
	stats    tally.Scope
}

// HandleReq handles routing for a single request.
func (r *jsonRPCRouter) HandleReq(ctx context.Context, reply jsonrpc2.Replier, req jsonrpc2.Request) error {
	ctx = context.WithValue(ctx, entity.SessionContextKey, r.uuid)

	switch req.Method() {
	// Lifecycle related methods.
	case protocol.MethodInitialize:
		return r.Initialize(ctx, reply, req)

	case protocol.MethodInitialized:
		return r.Initialized(ctx, reply, req)

	case protocol.MethodShutdown:
		return r.Shutdown(ctx, reply, req)

	case protocol.MethodExit:
		return r.Exit(ctx, reply, req)

	case MethodRequestFullShutdown:
		return r.RequestFullShutdown(ctx, reply, req)

	// Workspace methods.
	case protocol.MethodWorkspaceExecuteCommand:
		return r.ExecuteCommand(ctx, reply, req)

	// Virtual document methods.
	case jdt.MethodClassFileContents:
		return r.ClassFileContents(ctx, reply, req)

	case jdt.MethodProjectConfigurationUpdate:
		return r.ProjectConfigurationUpdate(ctx, reply, req)

	case jdt.MethodBuildWorkspace:
		return r.BuildWorkspace(ctx, reply, req)

	default:
		return jsonrpc2.MethodNotFoundHandler(ctx, reply, req)
	}
}

func (r *jsonRPCRouter) UUID() uuid.UUID {
	return r.uuid
}
