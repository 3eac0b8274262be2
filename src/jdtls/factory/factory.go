package factory

import (
	"github.com/gofrs/uuid"
	"github.com/jdtbridge/jdtls-bridge/src/jdtls/entity"
	"go.lsp.dev/jsonrpc2"
)

// UUID is a user-defined factory for a random uuid.UUID.
func UUID() uuid.UUID {
	return uuid.Must(uuid.NewV4())
}

// JSONRPCRequest is a user-defined factory for a JSON-RPC request containing the specified method and parameters.
func JSONRPCRequest(method string, params interface{}) jsonrpc2.Request {
	req, _ := jsonrpc2.NewCall(jsonrpc2.NewNumberID(5), method, params)
	return req
}

// JSONRPCNotification is a user-defined factory for a JSON-RPC notification.
func JSONRPCNotification(method string, params interface{}) jsonrpc2.Request {
	req, _ := jsonrpc2.NewNotification(method, params)
	return req
}

// Session is a factory for a session entity rooted at the given workspace path.
func Session(workspaceRoot string) *entity.Session {
	return &entity.Session{
		UUID:          UUID(),
		WorkspaceRoot: workspaceRoot,
		State:         entity.StateIdle,
	}
}
