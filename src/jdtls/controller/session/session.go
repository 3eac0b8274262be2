// Package session implements the lifecycle and dispatch logic for one JDT
// Language Server connection per workspace root.
package session

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/gofrs/uuid"
	"github.com/jdtbridge/jdtls-bridge/src/jdtls/controller/registry"
	"github.com/jdtbridge/jdtls-bridge/src/jdtls/entity"
	editorgw "github.com/jdtbridge/jdtls-bridge/src/jdtls/gateway/editor"
	"github.com/jdtbridge/jdtls-bridge/src/jdtls/internal/clock"
	"github.com/jdtbridge/jdtls-bridge/src/jdtls/internal/errors"
	"github.com/jdtbridge/jdtls-bridge/src/jdtls/internal/events"
	"github.com/jdtbridge/jdtls-bridge/src/jdtls/internal/fs"
	"github.com/jdtbridge/jdtls-bridge/src/jdtls/internal/jdt"
	"github.com/jdtbridge/jdtls-bridge/src/jdtls/internal/serverinfo"
	"github.com/jdtbridge/jdtls-bridge/src/jdtls/internal/transport"
	"github.com/jdtbridge/jdtls-bridge/src/jdtls/internal/workspacedir"
	"github.com/jdtbridge/jdtls-bridge/src/jdtls/mapper"
	repo "github.com/jdtbridge/jdtls-bridge/src/jdtls/repository/session"
	tally "github.com/uber-go/tally/v4"
	"go.lsp.dev/jsonrpc2"
	"go.lsp.dev/protocol"
	"go.uber.org/config"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

const (
	// Configuration keys
	_idleTimeoutMinutesKey = "idleTimeoutMinutes"

	_serverLogName = "jdtls-server"

	_statusReady = "Ready"
)

// Module is the Fx module for this package.
var Module = fx.Provide(New)

// Controller orchestrates the business logic for each request.
type Controller interface {
	// LSP lifecycle methods, editor side.
	Initialize(ctx context.Context, params *protocol.InitializeParams) (*protocol.InitializeResult, error)
	Initialized(ctx context.Context, params *protocol.InitializedParams) error
	Shutdown(ctx context.Context) error
	Exit(ctx context.Context) error

	// Outbound operations, valid only while the session can dispatch.
	CompileWorkspace(ctx context.Context, full bool) (jdt.CompileWorkspaceStatus, time.Duration, error)
	UpdateProjectConfiguration(ctx context.Context, doc protocol.TextDocumentIdentifier) error
	ExecuteWorkspaceCommand(ctx context.Context, command string, args ...interface{}) (json.RawMessage, error)
	ClassFileContents(ctx context.Context, doc protocol.TextDocumentIdentifier) (string, error)
	UpdateSourceAttachment(ctx context.Context, classFileURI protocol.DocumentURI, sourcePath string) error
	ApplyWorkspaceEdit(ctx context.Context, params *protocol.ApplyWorkspaceEditParams) (bool, error)

	// State reports the lifecycle state of the session on the context.
	State(ctx context.Context) (entity.SessionState, error)
	// ServerLogPath returns the server log file for the session on the context.
	ServerLogPath(ctx context.Context) (string, error)
	// CleanWorkspaceOnNextStart marks the session's server dir for wiping.
	CleanWorkspaceOnNextStart(ctx context.Context) error

	// Custom methods for use within this service.
	InitSession(ctx context.Context, conn *jsonrpc2.Conn) (uuid.UUID, error)
	EndSession(ctx context.Context, uuid uuid.UUID) error
	RequestFullShutdown(ctx context.Context) error
}

// Params are inbound parameters to initialize a new controller.
type Params struct {
	fx.In

	Shutdowner     fx.Shutdowner
	Sessions       repo.Repository
	EditorGateway  editorgw.Gateway
	Transports     transport.Selector
	Workspaces     workspacedir.WorkspaceDir
	Registry       registry.Registry
	Bus            events.Bus
	Clock          clock.Clock
	FS             fs.BridgeFS
	ServerInfoFile serverinfo.ServerInfoFile
	Logger         *zap.SugaredLogger
	Config         config.Provider
	Stats          tally.Scope
}

type controller struct {
	sessions       repo.Repository
	editorGateway  editorgw.Gateway
	transports     transport.Selector
	workspaces     workspacedir.WorkspaceDir
	registry       registry.Registry
	bus            events.Bus
	clock          clock.Clock
	fs             fs.BridgeFS
	serverInfoFile serverinfo.ServerInfoFile
	logger         *zap.SugaredLogger
	stats          tally.Scope

	shutdowner         fx.Shutdowner
	fullShutdown       bool
	idleTimer          *time.Timer
	idleTimerMu        sync.Mutex
	idleTimeoutMinutes time.Duration

	linksMu sync.Mutex
	links   map[uuid.UUID]*serverLink

	progressHideDelay time.Duration
}

// New constructs a new top-level controller for the service.
func New(p Params) (Controller, error) {
	ctx := context.Background()

	var timeoutMinutesRaw int64
	if err := p.Config.Get(_idleTimeoutMinutesKey).Populate(&timeoutMinutesRaw); err != nil {
		return nil, fmt.Errorf("unable to get idle timeout from config: %w", err)
	}
	if timeoutMinutesRaw == 0 {
		return nil, fmt.Errorf("config key %q must be set to a non-zero value", _idleTimeoutMinutesKey)
	}

	c := &controller{
		sessions:       p.Sessions,
		editorGateway:  p.EditorGateway,
		transports:     p.Transports,
		workspaces:     p.Workspaces,
		registry:       p.Registry,
		bus:            p.Bus,
		clock:          p.Clock,
		fs:             p.FS,
		serverInfoFile: p.ServerInfoFile,
		logger:         p.Logger,
		stats:          p.Stats.SubScope("session"),
		shutdowner:     p.Shutdowner,

		idleTimeoutMinutes: time.Duration(timeoutMinutesRaw) * time.Minute,
		links:              map[uuid.UUID]*serverLink{},
		progressHideDelay:  _progressHideDelay,
	}
	c.refreshIdleTimer(ctx)

	return c, nil
}

// InitSession creates a new empty session and returns its UUID.
func (c *controller) InitSession(ctx context.Context, conn *jsonrpc2.Conn) (uuid.UUID, error) {
	defer c.refreshIdleTimer(ctx)

	id, err := uuid.NewV4()
	if err != nil {
		return uuid.Nil, err
	}

	session := mapper.UUIDToSession(id, conn)
	if err := c.editorGateway.RegisterClient(ctx, id, conn); err != nil {
		return uuid.Nil, err
	}

	if err := c.sessions.Set(ctx, session); err != nil {
		return uuid.Nil, err
	}
	return id, nil
}

// EndSession stops the language server link and removes all session state, during
// or after the last JSON-RPC request.
func (c *controller) EndSession(ctx context.Context, id uuid.UUID) error {
	defer c.refreshIdleTimer(ctx)

	c.linksMu.Lock()
	link := c.links[id]
	delete(c.links, id)
	c.linksMu.Unlock()

	if link != nil {
		link.stop()
	}

	if err := c.editorGateway.DeregisterClient(ctx, id); err != nil {
		c.logger.Error(err)
	}

	return c.sessions.Delete(ctx, id)
}

// RequestFullShutdown will set the controller to treat subsequent Shutdown and
// Exit requests as requests to exit the entire process.
func (c *controller) RequestFullShutdown(ctx context.Context) error {
	c.fullShutdown = true
	return nil
}

// State reports the current lifecycle state for the session on the context.
func (c *controller) State(ctx context.Context) (entity.SessionState, error) {
	link, err := c.linkFromContext(ctx)
	if err != nil {
		s, err := c.sessions.GetFromContext(ctx)
		if err != nil {
			return entity.StateIdle, err
		}
		return s.State, nil
	}
	return link.currentState(), nil
}

// ServerLogPath returns the path of the server log for the current session.
func (c *controller) ServerLogPath(ctx context.Context) (string, error) {
	link, err := c.linkFromContext(ctx)
	if err != nil {
		return "", err
	}
	if link.output == nil {
		return "", errors.New("no server log for this session")
	}
	return link.output.Path(), nil
}

// CleanWorkspaceOnNextStart marks the server working directory to be wiped
// before the next launch for this workspace root.
func (c *controller) CleanWorkspaceOnNextStart(ctx context.Context) error {
	s, err := c.sessions.GetFromContext(ctx)
	if err != nil {
		return err
	}
	if s.WorkspaceRoot == "" {
		return errors.New("session has no workspace root")
	}
	return c.workspaces.RequestClean(s.WorkspaceRoot)
}

func (c *controller) linkFromContext(ctx context.Context) (*serverLink, error) {
	id, err := mapper.ContextToSessionUUID(ctx)
	if err != nil {
		return nil, err
	}

	c.linksMu.Lock()
	defer c.linksMu.Unlock()
	link, ok := c.links[id]
	if !ok {
		return nil, &errors.UUIDNotFoundError{UUID: id}
	}
	return link, nil
}

// refreshIdleTimer ensures that the service shuts down after a defined inactivity period with no connections.
func (c *controller) refreshIdleTimer(ctx context.Context) error {
	c.idleTimerMu.Lock()
	defer c.idleTimerMu.Unlock()

	// First call initializes new timer and leaves it running prior to first connection.
	if c.idleTimer == nil {
		c.idleTimer = time.NewTimer(c.idleTimeoutMinutes)
		go func() {
			<-c.idleTimer.C
			c.logger.Info("Shutdown signal received.")
			if err := c.shutdowner.Shutdown(); err != nil {
				os.Exit(1)
			}
		}()
		return nil
	}

	// Subsequent calls stop the timer and reset it only if no connections are active.
	currentSessions, err := c.sessions.SessionCount(ctx)
	if err != nil {
		return fmt.Errorf("error resetting timeout: %w", err)
	}

	c.idleTimer.Stop()
	if currentSessions == 0 {
		c.idleTimer.Reset(c.idleTimeoutMinutes)
	}
	return nil
}
