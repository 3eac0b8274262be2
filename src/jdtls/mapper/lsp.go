package mapper

import (
	"encoding/json"
	"fmt"

	"github.com/jdtbridge/jdtls-bridge/src/jdtls/internal/jdt"
	"go.lsp.dev/jsonrpc2"
	"go.lsp.dev/protocol"
)

// RequestToInitializeParams maps the parameters from a jsonrpc2.Request into protocol.InitializeParams.
func RequestToInitializeParams(req jsonrpc2.Request) (*protocol.InitializeParams, error) {
	params := protocol.InitializeParams{}
	if err := json.Unmarshal(req.Params(), &params); err != nil {
		return nil, wrapErrParse(err)
	}
	return &params, nil
}

// RequestToInitializedParams maps the parameters from a jsonrpc2.Request into protocol.InitializedParams.
func RequestToInitializedParams(req jsonrpc2.Request) (*protocol.InitializedParams, error) {
	params := protocol.InitializedParams{}
	if err := json.Unmarshal(req.Params(), &params); err != nil {
		return nil, wrapErrParse(err)
	}
	return &params, nil
}

// RequestToExecuteCommandParams maps the parameters from a jsonrpc2.Request into protocol.ExecuteCommandParams.
func RequestToExecuteCommandParams(req jsonrpc2.Request) (*protocol.ExecuteCommandParams, error) {
	params := protocol.ExecuteCommandParams{}
	if err := json.Unmarshal(req.Params(), &params); err != nil {
		return nil, wrapErrParse(err)
	}

	// Keep the raw bytes for each argument so commands can unmarshal into their
	// own parameter types.
	rawArgs := []interface{}{}
	for _, arg := range params.Arguments {
		rawArg, err := json.Marshal(arg)
		if err != nil {
			return nil, wrapErrParse(err)
		}
		rawArgs = append(rawArgs, json.RawMessage(rawArg))
	}

	params.Arguments = rawArgs
	return &params, nil
}

// RequestToTextDocumentIdentifier maps the parameters from a jsonrpc2.Request into a protocol.TextDocumentIdentifier.
func RequestToTextDocumentIdentifier(req jsonrpc2.Request) (*protocol.TextDocumentIdentifier, error) {
	params := protocol.TextDocumentIdentifier{}
	if err := json.Unmarshal(req.Params(), &params); err != nil {
		return nil, wrapErrParse(err)
	}
	return &params, nil
}

// RequestToStatusReport maps the parameters from a jsonrpc2.Request into a jdt.StatusReport.
func RequestToStatusReport(req jsonrpc2.Request) (*jdt.StatusReport, error) {
	params := jdt.StatusReport{}
	if err := json.Unmarshal(req.Params(), &params); err != nil {
		return nil, wrapErrParse(err)
	}
	return &params, nil
}

// RequestToProgressReport maps the parameters from a jsonrpc2.Request into a jdt.ProgressReport.
func RequestToProgressReport(req jsonrpc2.Request) (*jdt.ProgressReport, error) {
	params := jdt.ProgressReport{}
	if err := json.Unmarshal(req.Params(), &params); err != nil {
		return nil, wrapErrParse(err)
	}
	return &params, nil
}

// RequestToActionableNotification maps the parameters from a jsonrpc2.Request into a jdt.ActionableNotification.
func RequestToActionableNotification(req jsonrpc2.Request) (*jdt.ActionableNotification, error) {
	params := jdt.ActionableNotification{}
	if err := json.Unmarshal(req.Params(), &params); err != nil {
		return nil, wrapErrParse(err)
	}
	return &params, nil
}

// RequestToExecuteClientCommandParams maps the parameters from a jsonrpc2.Request into jdt.ExecuteClientCommandParams.
func RequestToExecuteClientCommandParams(req jsonrpc2.Request) (*jdt.ExecuteClientCommandParams, error) {
	params := jdt.ExecuteClientCommandParams{}
	if err := json.Unmarshal(req.Params(), &params); err != nil {
		return nil, wrapErrParse(err)
	}
	return &params, nil
}

func wrapErrParse(err error) error {
	return fmt.Errorf("%s: %w", jsonrpc2.ErrParse, err)
}
