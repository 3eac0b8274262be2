package bridge

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jdtbridge/jdtls-bridge/src/jdtls/mapper"
	"go.lsp.dev/jsonrpc2"
)

// ExecuteCommand dispatches a workspace/executeCommand request to the host
// command registry. Commands aimed at the language server itself go through
// the java.execute.workspaceCommand passthrough.
func (r *jsonRPCRouter) ExecuteCommand(ctx context.Context, reply jsonrpc2.Replier, req jsonrpc2.Request) error {
	params, err := mapper.RequestToExecuteCommandParams(req)
	if err != nil {
		return reply(ctx, nil, err)
	}

	args := make([]json.RawMessage, 0, len(params.Arguments))
	for _, arg := range params.Arguments {
		raw, ok := arg.(json.RawMessage)
		if !ok {
			return reply(ctx, nil, fmt.Errorf("unexpected argument type %T for command %q", arg, params.Command))
		}
		args = append(args, raw)
	}

	stopwatch := r.stats.Timer("execute_command").Start()
	result, err := r.registry.Execute(ctx, params.Command, args)
	stopwatch.Stop()
	return reply(ctx, result, err)
}

// BuildWorkspace forwards a build request to the language server and replies
// with the numeric build status.
func (r *jsonRPCRouter) BuildWorkspace(ctx context.Context, reply jsonrpc2.Replier, req jsonrpc2.Request) error {
	full := false
	if len(req.Params()) > 0 {
		if err := json.Unmarshal(req.Params(), &full); err != nil {
			return reply(ctx, nil, fmt.Errorf("%s: %w", jsonrpc2.ErrParse, err))
		}
	}

	status, _, err := r.sessions.CompileWorkspace(ctx, full)
	if err != nil {
		return reply(ctx, nil, err)
	}
	return reply(ctx, int(status), nil)
}

// ProjectConfigurationUpdate asks the language server to re-read the build
// file named in the request.
func (r *jsonRPCRouter) ProjectConfigurationUpdate(ctx context.Context, reply jsonrpc2.Replier, req jsonrpc2.Request) error {
	params, err := mapper.RequestToTextDocumentIdentifier(req)
	if err != nil {
		return reply(ctx, nil, err)
	}

	err = r.sessions.UpdateProjectConfiguration(ctx, *params)
	return reply(ctx, nil, err)
}
