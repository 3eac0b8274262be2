package mapper

import (
	"encoding/json"
	"testing"

	"github.com/jdtbridge/jdtls-bridge/src/jdtls/factory"
	"github.com/jdtbridge/jdtls-bridge/src/jdtls/internal/jdt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.lsp.dev/protocol"
)

func TestRequestToInitializeParams(t *testing.T) {
	req := factory.JSONRPCRequest(protocol.MethodInitialize, protocol.InitializeParams{
		RootURI: "file:///home/user/project",
	})

	params, err := RequestToInitializeParams(req)
	require.NoError(t, err)
	assert.Equal(t, protocol.DocumentURI("file:///home/user/project"), params.RootURI)
}

func TestRequestToInitializeParamsInvalid(t *testing.T) {
	req := factory.JSONRPCRequest(protocol.MethodInitialize, "not an object")

	_, err := RequestToInitializeParams(req)
	assert.Error(t, err)
}

func TestRequestToExecuteCommandParams(t *testing.T) {
	req := factory.JSONRPCRequest(protocol.MethodWorkspaceExecuteCommand, protocol.ExecuteCommandParams{
		Command:   "java.workspace.compile",
		Arguments: []interface{}{true, "file:///w/A.java"},
	})

	params, err := RequestToExecuteCommandParams(req)
	require.NoError(t, err)
	assert.Equal(t, "java.workspace.compile", params.Command)
	require.Len(t, params.Arguments, 2)

	// Arguments keep their raw bytes so each handler can decode its own types.
	raw, ok := params.Arguments[0].(json.RawMessage)
	require.True(t, ok)
	assert.JSONEq(t, `true`, string(raw))
}

func TestRequestToStatusReport(t *testing.T) {
	req := factory.JSONRPCNotification(jdt.MethodStatus, jdt.StatusReport{
		Type:    jdt.StatusStarted,
		Message: "Ready",
	})

	status, err := RequestToStatusReport(req)
	require.NoError(t, err)
	assert.Equal(t, jdt.StatusStarted, status.Type)
	assert.Equal(t, "Ready", status.Message)
}

func TestRequestToProgressReport(t *testing.T) {
	req := factory.JSONRPCNotification(jdt.MethodProgressReport, jdt.ProgressReport{
		Task:      "Building workspace",
		WorkDone:  47,
		TotalWork: 100,
	})

	progress, err := RequestToProgressReport(req)
	require.NoError(t, err)
	assert.Equal(t, "Building workspace", progress.Task)
	assert.Equal(t, 47, progress.WorkDone)
}

func TestRequestToActionableNotification(t *testing.T) {
	req := factory.JSONRPCNotification(jdt.MethodActionableNotification, jdt.ActionableNotification{
		Severity: protocol.MessageTypeWarning,
		Message:  "Incomplete classpath",
		Commands: []protocol.Command{{Title: "More Information", Command: "java.ignoreIncompleteClasspath.help"}},
	})

	notification, err := RequestToActionableNotification(req)
	require.NoError(t, err)
	assert.Equal(t, protocol.MessageTypeWarning, notification.Severity)
	require.Len(t, notification.Commands, 1)
	assert.Equal(t, "More Information", notification.Commands[0].Title)
}

func TestRequestToTextDocumentIdentifier(t *testing.T) {
	req := factory.JSONRPCRequest(jdt.MethodClassFileContents, protocol.TextDocumentIdentifier{
		URI: "jdt://contents/rt.jar/java.util/List.class",
	})

	doc, err := RequestToTextDocumentIdentifier(req)
	require.NoError(t, err)
	assert.Equal(t, protocol.DocumentURI("jdt://contents/rt.jar/java.util/List.class"), doc.URI)
}
