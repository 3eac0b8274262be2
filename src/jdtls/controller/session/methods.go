package session

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/gofrs/uuid"
	"github.com/jdtbridge/jdtls-bridge/src/jdtls/entity"
	"github.com/jdtbridge/jdtls-bridge/src/jdtls/internal/errors"
	"github.com/jdtbridge/jdtls-bridge/src/jdtls/internal/events"
	"github.com/jdtbridge/jdtls-bridge/src/jdtls/internal/jdt"
	"github.com/jdtbridge/jdtls-bridge/src/jdtls/internal/outputchannel"
	"go.lsp.dev/jsonrpc2"
	"go.lsp.dev/protocol"
	"go.lsp.dev/uri"
	"go.uber.org/zap"
)

// Initialize launches the language server for the editor's workspace and runs
// the initialize exchange against it. The session reaches Ready only once the
// server reports a Started status.
func (c *controller) Initialize(ctx context.Context, params *protocol.InitializeParams) (*protocol.InitializeResult, error) {
	s, err := c.sessions.GetFromContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("getting session from context: %w", err)
	}

	s.InitializeParams = params
	s.WorkspaceRoot = c.workspaces.FindRoot(workspacePathFromParams(params))

	// One active session per workspace root. Checked before any transport work,
	// and enforced again inside Set against concurrent initializes.
	if existing, err := c.sessions.GetActiveByWorkspaceRoot(ctx, s.WorkspaceRoot); err == nil && existing.UUID != s.UUID {
		return nil, &errors.DuplicateWorkspaceError{WorkspaceRoot: s.WorkspaceRoot, ActiveUUID: existing.UUID}
	}

	s.State = entity.StateStarting
	if err := c.sessions.Set(ctx, s); err != nil {
		return nil, err
	}

	serverDir, err := c.workspaces.PrepareLaunch(s.WorkspaceRoot)
	if err != nil {
		c.abortStartup(ctx, s)
		return nil, fmt.Errorf("preparing server working directory: %w", err)
	}

	handle, err := c.transports.Connect(ctx, s.WorkspaceRoot, serverDir)
	if err != nil {
		c.abortStartup(ctx, s)
		return nil, err
	}

	conn := jsonrpc2.NewConn(handle.Stream())
	link := newServerLink(s.UUID, conn, handle, c.logger)

	if logsDir, err := c.workspaces.LogsDir(s.WorkspaceRoot); err == nil {
		if output, err := outputchannel.New(outputchannel.Params{
			FS:             c.fs,
			ServerInfoFile: c.serverInfoFile,
		}, logsDir, _serverLogName); err == nil {
			link.output = output
		}
	}

	c.linksMu.Lock()
	c.links[s.UUID] = link
	c.linksMu.Unlock()

	// The server side context outlives this request and carries the session
	// UUID so routed notifications can reach the right editor connection.
	serverCtx := context.WithValue(context.Background(), entity.SessionContextKey, s.UUID)
	conn.Go(serverCtx, c.serverRouter(serverCtx, link))
	go c.watchTransport(serverCtx, link)

	link.setState(entity.StateInitializing)
	s.State = entity.StateInitializing
	if err := c.sessions.Set(ctx, s); err != nil {
		c.logger.Errorw("storing session state", zap.Error(err))
	}

	var result protocol.InitializeResult
	if _, err := conn.Call(ctx, protocol.MethodInitialize, params, &result); err != nil {
		link.stop()
		c.abortStartup(ctx, s)
		return nil, &errors.ConnectFailedError{Err: err}
	}

	return &result, nil
}

// Initialized forwards the handshake completion notification to the server.
func (c *controller) Initialized(ctx context.Context, params *protocol.InitializedParams) error {
	link, err := c.linkFromContext(ctx)
	if err != nil {
		return err
	}
	return link.conn.Notify(ctx, protocol.MethodInitialized, params)
}

// Shutdown forwards the shutdown request to the server prior to exit.
func (c *controller) Shutdown(ctx context.Context) error {
	link, err := c.linkFromContext(ctx)
	if err != nil {
		// Without a server link there is nothing to shut down.
		return nil
	}
	if _, err := link.conn.Call(ctx, protocol.MethodShutdown, nil, nil); err != nil {
		c.logger.Warnw("server shutdown request failed", zap.Error(err))
	}
	return nil
}

// Exit cleans up after an individual connection, or shuts the whole service down
// when a full shutdown was requested.
func (c *controller) Exit(ctx context.Context) error {
	if link, err := c.linkFromContext(ctx); err == nil {
		if err := link.conn.Notify(ctx, protocol.MethodExit, nil); err != nil {
			c.logger.Debugw("server exit notify failed", zap.Error(err))
		}
	}

	if c.fullShutdown {
		// Zero out the timer to trigger immediate shutdown.
		c.idleTimerMu.Lock()
		c.idleTimer.Reset(0)
		c.idleTimerMu.Unlock()
		return nil
	}

	s, err := c.sessions.GetFromContext(ctx)
	if err != nil {
		return fmt.Errorf("error during session exit: %w", err)
	}
	return c.EndSession(ctx, s.UUID)
}

// CompileWorkspace requests a workspace build and reports the outcome with the
// measured wall-clock duration. A Failed outcome is surfaced to the user as an
// error notification, not returned as an error.
func (c *controller) CompileWorkspace(ctx context.Context, full bool) (jdt.CompileWorkspaceStatus, time.Duration, error) {
	link, err := c.linkFromContext(ctx)
	if err != nil {
		return jdt.CompileFailed, 0, err
	}

	started := c.clock.Now()
	var status jdt.CompileWorkspaceStatus
	if err := link.roundTrip(ctx, jdt.MethodBuildWorkspace, full, &status); err != nil {
		if errors.IsCancelled(err) {
			return jdt.CompileCancelled, c.clock.Since(started), nil
		}
		return jdt.CompileFailed, c.clock.Since(started), err
	}
	elapsed := c.clock.Since(started)
	c.stats.Timer("compile_workspace").Record(elapsed)

	text := fmt.Sprintf("Workspace build %s in %s.", status, elapsed.Round(10*time.Millisecond))
	switch status {
	case jdt.CompileSucceeded:
		c.editorGateway.LogMessage(ctx, &protocol.LogMessageParams{Type: protocol.MessageTypeInfo, Message: text})
	case jdt.CompileCancelled:
		c.editorGateway.LogMessage(ctx, &protocol.LogMessageParams{Type: protocol.MessageTypeLog, Message: text})
	default:
		c.editorGateway.ShowMessage(ctx, &protocol.ShowMessageParams{Type: protocol.MessageTypeError, Message: text})
	}

	return status, elapsed, nil
}

// UpdateProjectConfiguration tells the server that a build descriptor changed.
func (c *controller) UpdateProjectConfiguration(ctx context.Context, doc protocol.TextDocumentIdentifier) error {
	link, err := c.linkFromContext(ctx)
	if err != nil {
		return err
	}
	return link.notify(ctx, jdt.MethodProjectConfigurationUpdate, doc)
}

// ExecuteWorkspaceCommand forwards an arbitrary workspace command to the server.
func (c *controller) ExecuteWorkspaceCommand(ctx context.Context, command string, args ...interface{}) (json.RawMessage, error) {
	link, err := c.linkFromContext(ctx)
	if err != nil {
		return nil, err
	}

	stopwatch := c.stats.Timer("round_trip").Start()
	defer stopwatch.Stop()

	var result json.RawMessage
	if err := link.roundTrip(ctx, protocol.MethodWorkspaceExecuteCommand, &protocol.ExecuteCommandParams{
		Command:   command,
		Arguments: args,
	}, &result); err != nil {
		return nil, err
	}
	return result, nil
}

// ClassFileContents fetches decompiled or attached source for a class file URI.
// A cancelled fetch yields empty content and the Cancelled outcome so partial
// results are never rendered.
func (c *controller) ClassFileContents(ctx context.Context, doc protocol.TextDocumentIdentifier) (string, error) {
	link, err := c.linkFromContext(ctx)
	if err != nil {
		return "", err
	}

	var contents string
	if err := link.roundTrip(ctx, jdt.MethodClassFileContents, doc, &contents); err != nil {
		return "", err
	}
	return contents, nil
}

// UpdateSourceAttachment resolves the current attachment for a class file, then
// persists the new source path. A server-reported resolution failure aborts the
// update and surfaces the server's message. Success invalidates any cached
// contents for the class file.
func (c *controller) UpdateSourceAttachment(ctx context.Context, classFileURI protocol.DocumentURI, sourcePath string) error {
	resolved, err := c.sourceAttachmentCommand(ctx, jdt.CommandResolveSourceAttachment, &jdt.SourceAttachmentRequest{
		ClassFileURI: uri.URI(classFileURI),
	})
	if err != nil {
		return err
	}

	attributes := resolved.Attributes
	if attributes == nil {
		attributes = &jdt.SourceAttachmentAttribute{}
	}
	attributes.SourceAttachmentPath = sourcePath

	if _, err := c.sourceAttachmentCommand(ctx, jdt.CommandUpdateSourceAttachment, &jdt.SourceAttachmentRequest{
		ClassFileURI: uri.URI(classFileURI),
		Attributes:   attributes,
	}); err != nil {
		return err
	}

	if err := c.bus.Publish(events.TopicClassFileInvalidated, events.NewInvalidation(string(classFileURI))); err != nil {
		c.logger.Warnw("publishing class file invalidation", zap.Error(err))
	}
	return nil
}

func (c *controller) sourceAttachmentCommand(ctx context.Context, command string, req *jdt.SourceAttachmentRequest) (*jdt.SourceAttachmentResult, error) {
	raw, err := c.ExecuteWorkspaceCommand(ctx, command, req)
	if err != nil {
		return nil, err
	}

	var result jdt.SourceAttachmentResult
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &result); err != nil {
			return nil, fmt.Errorf("decoding %s result: %w", command, err)
		}
	}
	if result.ErrorMessage != "" {
		return nil, &errors.ResolutionError{Message: result.ErrorMessage}
	}
	return &result, nil
}

// ApplyWorkspaceEdit forwards a workspace edit to the editor and reports
// whether it was applied. Edits originate from server state, so they are gated
// on the same Ready/Degraded window as outbound commands.
func (c *controller) ApplyWorkspaceEdit(ctx context.Context, params *protocol.ApplyWorkspaceEditParams) (bool, error) {
	link, err := c.linkFromContext(ctx)
	if err != nil {
		return false, err
	}
	if state := link.currentState(); !state.CanDispatch() {
		return false, &errors.SessionNotReadyError{State: state.String()}
	}

	result, err := c.editorGateway.ApplyEdit(ctx, params)
	if err != nil {
		return false, err
	}
	return result.Applied, nil
}

// abortStartup records the terminal Stopped state after a failed launch.
func (c *controller) abortStartup(ctx context.Context, s *entity.Session) {
	s.State = entity.StateStopped
	if err := c.sessions.Set(ctx, s); err != nil {
		c.logger.Errorw("storing stopped session", zap.Error(err))
	}
}

// watchTransport stops the session when the wire closes underneath it, which
// rejects all pending commands and releases the transport.
func (c *controller) watchTransport(ctx context.Context, link *serverLink) {
	<-link.conn.Done()
	if link.currentState() != entity.StateStopped {
		c.logger.Infow("language server connection closed", zap.Stringer("uuid", link.id))
	}
	link.stop()
	c.markStopped(ctx, link.id)
}

func (c *controller) markStopped(ctx context.Context, id uuid.UUID) {
	s, err := c.sessions.Get(ctx, id)
	if err != nil {
		return
	}
	if s.State != entity.StateStopped {
		s.State = entity.StateStopped
		if err := c.sessions.Set(ctx, s); err != nil {
			c.logger.Errorw("storing stopped session", zap.Error(err))
		}
	}
}

// workspacePathFromParams picks the workspace start path from initialize params.
func workspacePathFromParams(params *protocol.InitializeParams) string {
	if params == nil {
		return ""
	}
	if len(params.WorkspaceFolders) > 0 {
		return uri.URI(params.WorkspaceFolders[0].URI).Filename()
	}
	if params.RootURI != "" {
		return params.RootURI.Filename()
	}
	return params.RootPath
}
