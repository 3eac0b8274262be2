package bridge

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/jdtbridge/jdtls-bridge/src/jdtls/internal/errors"
	"github.com/jdtbridge/jdtls-bridge/src/jdtls/internal/jdt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.lsp.dev/jsonrpc2"
	"go.lsp.dev/protocol"
	"go.uber.org/mock/gomock"
)

func TestExecuteCommandDispatchesRegisteredHandler(t *testing.T) {
	r, _, _ := newTestRouter(t)

	var gotArgs []json.RawMessage
	require.NoError(t, r.registry.Register("java.sample.command", func(ctx context.Context, args []json.RawMessage) (interface{}, error) {
		gotArgs = args
		return "done", nil
	}))

	params := protocol.ExecuteCommandParams{
		Command:   "java.sample.command",
		Arguments: []interface{}{"file:///w/A.java", 7},
	}
	req, _ := jsonrpc2.NewCall(jsonrpc2.NewNumberID(1), protocol.MethodWorkspaceExecuteCommand, params)

	var result interface{}
	replier := func(ctx context.Context, res interface{}, err error) error {
		result = res
		return err
	}
	require.NoError(t, r.HandleReq(context.Background(), replier, req))
	assert.Equal(t, "done", result)
	require.Len(t, gotArgs, 2)
	assert.JSONEq(t, `"file:///w/A.java"`, string(gotArgs[0]))
	assert.JSONEq(t, `7`, string(gotArgs[1]))
}

func TestExecuteCommandUnknown(t *testing.T) {
	r, _, _ := newTestRouter(t)

	params := protocol.ExecuteCommandParams{Command: "java.not.registered"}
	req, _ := jsonrpc2.NewCall(jsonrpc2.NewNumberID(1), protocol.MethodWorkspaceExecuteCommand, params)

	err := r.HandleReq(context.Background(), newMockReplier(), req)
	require.Error(t, err)
	var notFound *errors.CommandNotFoundError
	assert.ErrorAs(t, err, &notFound)
}

func TestBuildWorkspace(t *testing.T) {
	r, sessions, _ := newTestRouter(t)
	sessions.EXPECT().CompileWorkspace(gomock.Any(), true).
		Return(jdt.CompileSucceeded, time.Second, nil)

	req, _ := jsonrpc2.NewCall(jsonrpc2.NewNumberID(1), jdt.MethodBuildWorkspace, true)

	var result interface{}
	replier := func(ctx context.Context, res interface{}, err error) error {
		result = res
		return err
	}
	require.NoError(t, r.HandleReq(context.Background(), replier, req))
	assert.Equal(t, int(jdt.CompileSucceeded), result)
}

func TestProjectConfigurationUpdate(t *testing.T) {
	r, sessions, _ := newTestRouter(t)
	sessions.EXPECT().UpdateProjectConfiguration(gomock.Any(),
		protocol.TextDocumentIdentifier{URI: "file:///w/build.gradle"}).Return(nil)

	params := protocol.TextDocumentIdentifier{URI: "file:///w/build.gradle"}
	req, _ := jsonrpc2.NewCall(jsonrpc2.NewNumberID(1), jdt.MethodProjectConfigurationUpdate, params)

	require.NoError(t, r.HandleReq(context.Background(), newMockReplier(), req))
}
