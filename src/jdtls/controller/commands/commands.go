// Package commands registers the built-in host commands exposed to the editor
// and to server-initiated executeClientCommand requests.
package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/jdtbridge/jdtls-bridge/src/jdtls/controller/registry"
	session "github.com/jdtbridge/jdtls-bridge/src/jdtls/controller/session"
	editorgw "github.com/jdtbridge/jdtls-bridge/src/jdtls/gateway/editor"
	"go.lsp.dev/protocol"
	"go.lsp.dev/uri"
	"go.uber.org/fx"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

// Host command names.
const (
	CommandOpenServerLog           = "java.open.serverLog"
	CommandOpenFormatterSettings   = "java.open.formatterSettings"
	CommandOpenOutputChannel       = "java.open.outputChannel"
	CommandCleanWorkspace          = "java.clean.workspace"
	CommandCompileWorkspace        = "java.workspace.compile"
	CommandUpdateSourceAttachment  = "java.project.updateSourceAttachment"
	CommandApplyWorkspaceEdit      = "java.apply.workspaceEdit"
	CommandExecuteWorkspaceCommand = "java.execute.workspaceCommand"
	CommandProjectConfigUpdate     = "java.projectConfiguration.update"
	CommandIgnoreIncompleteCP      = "java.ignoreIncompleteClasspath"
	CommandIgnoreIncompleteCPHelp  = "java.ignoreIncompleteClasspath.help"
	CommandShowReferences          = "java.show.references"
	CommandShowImplementations     = "java.show.implementations"
	CommandServerDownload          = "java.server.download"
)

const (
	_msgCleanConfirm = "Clean the Java language server workspace? The server working directory will be wiped on the next start."
	_msgCleanQueued  = "Workspace clean requested. Restart the Java language server to apply."
	_msgClasspathHelp = "Some Java source files are outside a project on the build path. " +
		"Code assist is limited to the default classpath for those files."
	_msgDownloadPointer = "Automatic server download is not supported. Install the Eclipse JDT Language Server and point server.installDir at it."

	_titleClean = "Clean and Restart"
)

// Module registers the built-in commands at application start.
var Module = fx.Invoke(Register)

// Params are the dependencies of the built-in host commands.
type Params struct {
	fx.In

	Registry registry.Registry
	Sessions session.Controller
	Editor   editorgw.Gateway
	Logger   *zap.SugaredLogger
}

type commands struct {
	registry registry.Registry
	sessions session.Controller
	editor   editorgw.Gateway
	logger   *zap.SugaredLogger

	mu                  sync.Mutex
	ignoredClasspathMsg bool
}

// Register wires every built-in command into the host registry.
func Register(p Params) error {
	c := &commands{
		registry: p.Registry,
		sessions: p.Sessions,
		editor:   p.Editor,
		logger:   p.Logger,
	}

	return multierr.Combine(
		c.registry.Register(CommandOpenServerLog, c.reported(c.openServerLog)),
		c.registry.Register(CommandOpenFormatterSettings, c.reported(c.openFormatterSettings)),
		c.registry.Register(CommandOpenOutputChannel, c.reported(c.openServerLog)),
		c.registry.Register(CommandCleanWorkspace, c.reported(c.cleanWorkspace)),
		c.registry.Register(CommandCompileWorkspace, c.reported(c.compileWorkspace)),
		c.registry.Register(CommandUpdateSourceAttachment, c.reported(c.updateSourceAttachment)),
		c.registry.Register(CommandApplyWorkspaceEdit, c.reported(c.applyWorkspaceEdit)),
		c.registry.Register(CommandExecuteWorkspaceCommand, c.reported(c.executeWorkspaceCommand)),
		c.registry.Register(CommandProjectConfigUpdate, c.reported(c.projectConfigurationUpdate)),
		c.registry.Register(CommandIgnoreIncompleteCP, c.reported(c.ignoreIncompleteClasspath)),
		c.registry.Register(CommandIgnoreIncompleteCPHelp, c.reported(c.incompleteClasspathHelp)),
		c.registry.Register(CommandShowReferences, c.reported(c.showReferences)),
		c.registry.Register(CommandShowImplementations, c.reported(c.showImplementations)),
		c.registry.Register(CommandServerDownload, c.reported(c.serverDownload)),
	)
}

// reported converts handler failures into editor error messages so a command
// can never crash the host. The error is still returned to the caller.
func (c *commands) reported(handler registry.Handler) registry.Handler {
	return func(ctx context.Context, args []json.RawMessage) (interface{}, error) {
		result, err := handler(ctx, args)
		if err != nil {
			c.logger.Warnw("host command failed", zap.Error(err))
			c.editor.ShowMessage(ctx, &protocol.ShowMessageParams{
				Type:    protocol.MessageTypeError,
				Message: err.Error(),
			})
		}
		return result, err
	}
}

func (c *commands) openServerLog(ctx context.Context, args []json.RawMessage) (interface{}, error) {
	path, err := c.sessions.ServerLogPath(ctx)
	if err != nil {
		return nil, err
	}

	_, err = c.editor.ShowDocument(ctx, &protocol.ShowDocumentParams{
		URI:       uri.File(path),
		TakeFocus: true,
	})
	return nil, err
}

func (c *commands) openFormatterSettings(ctx context.Context, args []json.RawMessage) (interface{}, error) {
	// Formatter settings live in an Eclipse formatter XML profile. Without a
	// configured profile there is nothing to open yet.
	c.editor.ShowMessage(ctx, &protocol.ShowMessageParams{
		Type:    protocol.MessageTypeInfo,
		Message: "No formatter profile configured. Set server.formatterProfile to an Eclipse formatter XML file.",
	})
	return nil, nil
}

func (c *commands) cleanWorkspace(ctx context.Context, args []json.RawMessage) (interface{}, error) {
	selection, err := c.editor.ShowMessageRequest(ctx, &protocol.ShowMessageRequestParams{
		Type:    protocol.MessageTypeWarning,
		Message: _msgCleanConfirm,
		Actions: []protocol.MessageActionItem{{Title: _titleClean}},
	})
	if err != nil {
		return nil, err
	}
	if selection == nil || selection.Title != _titleClean {
		return nil, nil
	}

	if err := c.sessions.CleanWorkspaceOnNextStart(ctx); err != nil {
		return nil, err
	}
	c.editor.ShowMessage(ctx, &protocol.ShowMessageParams{
		Type:    protocol.MessageTypeInfo,
		Message: _msgCleanQueued,
	})
	return nil, nil
}

func (c *commands) compileWorkspace(ctx context.Context, args []json.RawMessage) (interface{}, error) {
	full := false
	if len(args) > 0 {
		if err := json.Unmarshal(args[0], &full); err != nil {
			return nil, fmt.Errorf("decoding full build flag: %w", err)
		}
	}

	status, _, err := c.sessions.CompileWorkspace(ctx, full)
	if err != nil {
		return nil, err
	}
	return int(status), nil
}

func (c *commands) updateSourceAttachment(ctx context.Context, args []json.RawMessage) (interface{}, error) {
	if len(args) < 2 {
		return nil, fmt.Errorf("%s requires a class file URI and a source path", CommandUpdateSourceAttachment)
	}

	var classFileURI, sourcePath string
	if err := multierr.Combine(
		json.Unmarshal(args[0], &classFileURI),
		json.Unmarshal(args[1], &sourcePath),
	); err != nil {
		return nil, fmt.Errorf("decoding source attachment arguments: %w", err)
	}

	if err := c.sessions.UpdateSourceAttachment(ctx, protocol.DocumentURI(classFileURI), sourcePath); err != nil {
		return nil, err
	}

	c.editor.ShowMessage(ctx, &protocol.ShowMessageParams{
		Type:    protocol.MessageTypeInfo,
		Message: "Source attachment updated.",
	})
	return nil, nil
}

func (c *commands) applyWorkspaceEdit(ctx context.Context, args []json.RawMessage) (interface{}, error) {
	if len(args) < 1 {
		return nil, fmt.Errorf("%s requires a workspace edit", CommandApplyWorkspaceEdit)
	}

	var edit protocol.WorkspaceEdit
	if err := json.Unmarshal(args[0], &edit); err != nil {
		return nil, fmt.Errorf("decoding workspace edit: %w", err)
	}

	applied, err := c.sessions.ApplyWorkspaceEdit(ctx, &protocol.ApplyWorkspaceEditParams{Edit: edit})
	if err != nil {
		return nil, err
	}
	return applied, nil
}

func (c *commands) executeWorkspaceCommand(ctx context.Context, args []json.RawMessage) (interface{}, error) {
	if len(args) < 1 {
		return nil, fmt.Errorf("%s requires a command name", CommandExecuteWorkspaceCommand)
	}

	var command string
	if err := json.Unmarshal(args[0], &command); err != nil {
		return nil, fmt.Errorf("decoding command name: %w", err)
	}

	forwarded := make([]interface{}, 0, len(args)-1)
	for _, raw := range args[1:] {
		forwarded = append(forwarded, json.RawMessage(raw))
	}

	return c.sessions.ExecuteWorkspaceCommand(ctx, command, forwarded...)
}

func (c *commands) projectConfigurationUpdate(ctx context.Context, args []json.RawMessage) (interface{}, error) {
	if len(args) < 1 {
		return nil, fmt.Errorf("%s requires a document URI", CommandProjectConfigUpdate)
	}

	var docURI string
	if err := json.Unmarshal(args[0], &docURI); err != nil {
		return nil, fmt.Errorf("decoding document URI: %w", err)
	}

	return nil, c.sessions.UpdateProjectConfiguration(ctx, protocol.TextDocumentIdentifier{
		URI: protocol.DocumentURI(docURI),
	})
}

func (c *commands) ignoreIncompleteClasspath(ctx context.Context, args []json.RawMessage) (interface{}, error) {
	c.mu.Lock()
	c.ignoredClasspathMsg = true
	c.mu.Unlock()
	return nil, nil
}

func (c *commands) incompleteClasspathHelp(ctx context.Context, args []json.RawMessage) (interface{}, error) {
	c.editor.ShowMessage(ctx, &protocol.ShowMessageParams{
		Type:    protocol.MessageTypeInfo,
		Message: _msgClasspathHelp,
	})
	return nil, nil
}

func (c *commands) showReferences(ctx context.Context, args []json.RawMessage) (interface{}, error) {
	return nil, c.forwardToEditor(ctx, CommandShowReferences, args)
}

func (c *commands) showImplementations(ctx context.Context, args []json.RawMessage) (interface{}, error) {
	return nil, c.forwardToEditor(ctx, CommandShowImplementations, args)
}

// forwardToEditor passes a UI command through to the editor untouched; the
// editor owns rendering of reference and implementation lists.
func (c *commands) forwardToEditor(ctx context.Context, command string, args []json.RawMessage) error {
	forwarded := make([]interface{}, 0, len(args))
	for _, raw := range args {
		forwarded = append(forwarded, json.RawMessage(raw))
	}
	return c.editor.Notify(ctx, command, forwarded)
}

func (c *commands) serverDownload(ctx context.Context, args []json.RawMessage) (interface{}, error) {
	c.editor.ShowMessage(ctx, &protocol.ShowMessageParams{
		Type:    protocol.MessageTypeWarning,
		Message: _msgDownloadPointer,
	})
	return nil, nil
}
