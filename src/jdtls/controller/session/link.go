package session

import (
	"context"
	stderrors "errors"
	"io"
	"sync"
	"time"

	"github.com/gofrs/uuid"
	"github.com/jdtbridge/jdtls-bridge/src/jdtls/entity"
	"github.com/jdtbridge/jdtls-bridge/src/jdtls/internal/errors"
	"github.com/jdtbridge/jdtls-bridge/src/jdtls/internal/outputchannel"
	"go.lsp.dev/jsonrpc2"
	"go.uber.org/zap"
)

// pendingCommand tracks one in-flight round trip so that stopping the session
// can reject it and a caller cancellation can be told apart from session end.
type pendingCommand struct {
	cancel context.CancelFunc
	ended  bool
}

// serverLink owns the wire to one language server process: the jsonrpc2
// connection, the transport handle, the pending round-trip table, and the
// session's lifecycle state. The transport is released exactly once.
type serverLink struct {
	id     uuid.UUID
	conn   jsonrpc2.Conn
	handle io.Closer
	output outputchannel.Channel

	logger *zap.SugaredLogger

	mu      sync.Mutex
	state   entity.SessionState
	pending map[uuid.UUID]*pendingCommand

	// readySeen stays true once a Started status arrives, so that a late
	// Starting notification cannot revive the busy indicator.
	readySeen bool
	hideTimer *time.Timer

	stopOnce sync.Once
}

func newServerLink(id uuid.UUID, conn jsonrpc2.Conn, handle io.Closer, logger *zap.SugaredLogger) *serverLink {
	return &serverLink{
		id:      id,
		conn:    conn,
		handle:  handle,
		logger:  logger,
		state:   entity.StateStarting,
		pending: map[uuid.UUID]*pendingCommand{},
	}
}

func (l *serverLink) currentState() entity.SessionState {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.state
}

// setState applies a transition. Stopped is terminal and never left.
func (l *serverLink) setState(s entity.SessionState) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.state == entity.StateStopped {
		return
	}
	l.state = s
}

// markReady transitions to Ready and records the one-time ready marker.
// Returns false if the session is already stopped.
func (l *serverLink) markReady() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.state == entity.StateStopped {
		return false
	}
	l.state = entity.StateReady
	l.readySeen = true
	return true
}

func (l *serverLink) isReadySeen() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.readySeen
}

// roundTrip performs one gated request/response exchange with the server. It
// fails with SessionNotReadyError without touching the transport unless the
// session is Ready or Degraded, resolves with Cancelled when the caller's
// context is cancelled, and rejects with SessionEndedError when the session
// stops while the call is outstanding.
func (l *serverLink) roundTrip(ctx context.Context, method string, params, result interface{}) error {
	l.mu.Lock()
	if !l.state.CanDispatch() {
		state := l.state
		l.mu.Unlock()
		return &errors.SessionNotReadyError{State: state.String()}
	}

	token := uuid.Must(uuid.NewV4())
	callCtx, cancel := context.WithCancel(ctx)
	pc := &pendingCommand{cancel: cancel}
	l.pending[token] = pc
	l.mu.Unlock()

	defer func() {
		cancel()
		l.mu.Lock()
		delete(l.pending, token)
		l.mu.Unlock()
	}()

	_, err := l.conn.Call(callCtx, method, params, result)
	if err == nil {
		return nil
	}

	l.mu.Lock()
	ended := pc.ended
	l.mu.Unlock()

	switch {
	case ended:
		return &errors.SessionEndedError{}
	case ctx.Err() != nil:
		// Caller cancellation. Any late response is discarded by the wire layer.
		return errors.Cancelled
	default:
		var respErr *jsonrpc2.Error
		if stderrors.As(err, &respErr) {
			return &errors.ResolutionError{Message: respErr.Message}
		}
		return err
	}
}

// notify sends a gated one-way notification to the server.
func (l *serverLink) notify(ctx context.Context, method string, params interface{}) error {
	l.mu.Lock()
	if !l.state.CanDispatch() {
		state := l.state
		l.mu.Unlock()
		return &errors.SessionNotReadyError{State: state.String()}
	}
	l.mu.Unlock()

	return l.conn.Notify(ctx, method, params)
}

// stop transitions the session to Stopped, rejects every outstanding round trip
// with SessionEndedError, and releases the transport. Safe to call repeatedly;
// the transport close happens exactly once.
func (l *serverLink) stop() {
	l.stopOnce.Do(func() {
		l.mu.Lock()
		l.state = entity.StateStopped
		rejected := make([]*pendingCommand, 0, len(l.pending))
		for _, pc := range l.pending {
			pc.ended = true
			rejected = append(rejected, pc)
		}
		if l.hideTimer != nil {
			l.hideTimer.Stop()
			l.hideTimer = nil
		}
		l.mu.Unlock()

		for _, pc := range rejected {
			pc.cancel()
		}

		if l.conn != nil {
			l.conn.Close()
		}
		if l.handle != nil {
			if err := l.handle.Close(); err != nil {
				l.logger.Warnw("closing server transport", zap.Error(err))
			}
		}
		if l.output != nil {
			if err := l.output.Close(); err != nil {
				l.logger.Warnw("closing server log", zap.Error(err))
			}
		}
	})
}
