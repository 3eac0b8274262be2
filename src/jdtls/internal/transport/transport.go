// Package transport selects and establishes the wire to the JDT Language Server:
// a development socket, a launched-server socket, or spawned-process stdio.
package transport

import (
	"context"
	"fmt"
	"io"
	"net"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/jdtbridge/jdtls-bridge/src/jdtls/internal/errors"
	"github.com/jdtbridge/jdtls-bridge/src/jdtls/internal/executor"
	"github.com/jdtbridge/jdtls-bridge/src/jdtls/internal/launcher"
	"go.lsp.dev/jsonrpc2"
	"go.uber.org/fx"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

const (
	// EnvClientPort names the development socket variable: the server is already
	// running and listening on this port.
	EnvClientPort = "JDTLS_CLIENT_PORT"
	// EnvServerPort names the launch-and-connect variable: spawn the server and
	// dial this port once it is up.
	EnvServerPort = "JDTLS_SERVER_PORT"

	_dialAttempts    = 20
	_dialInterval    = 250 * time.Millisecond
	_serverStderrLog = "server-stderr.log"
)

// Module is the Fx module for this package.
var Module = fx.Provide(New)

// Handle owns one established transport: the wire stream and, when we spawned
// the server, its child process. Close is idempotent.
type Handle struct {
	rwc  io.ReadWriteCloser
	proc *exec.Cmd

	closeOnce sync.Once
	closeErr  error
}

// Stream returns the jsonrpc2 stream over this transport.
func (h *Handle) Stream() jsonrpc2.Stream {
	return jsonrpc2.NewStream(h.rwc)
}

// Close releases the wire and reaps the child process if one was spawned.
// Subsequent calls return the first result.
func (h *Handle) Close() error {
	h.closeOnce.Do(func() {
		var err error
		if h.rwc != nil {
			err = multierr.Append(err, h.rwc.Close())
		}
		if h.proc != nil && h.proc.Process != nil {
			err = multierr.Append(err, h.proc.Process.Kill())
			// Reap, ignoring the expected kill error.
			h.proc.Wait()
		}
		h.closeErr = err
	})
	return h.closeErr
}

// Selector establishes a transport to the language server for one session.
type Selector interface {
	// Connect picks the transport per environment priority and establishes it.
	// A missing way to reach any server yields TransportUnavailableError; a
	// failed spawn or dial yields ConnectFailedError.
	Connect(ctx context.Context, workspaceRoot, serverDir string) (*Handle, error)
}

// Params are inbound parameters to construct a Selector.
type Params struct {
	fx.In

	Logger   *zap.SugaredLogger
	Launcher launcher.Launcher
	Executor executor.Executor
}

type selector struct {
	logger   *zap.SugaredLogger
	launcher launcher.Launcher
	executor executor.Executor
}

// New creates a new Selector.
func New(p Params) Selector {
	return &selector{
		logger:   p.Logger,
		launcher: p.Launcher,
		executor: p.Executor,
	}
}

func (s *selector) Connect(ctx context.Context, workspaceRoot, serverDir string) (*Handle, error) {
	if port := os.Getenv(EnvClientPort); port != "" {
		s.logger.Infow("connecting to development server socket", "port", port)
		return s.dialOnly(ctx, port)
	}

	if port := os.Getenv(EnvServerPort); port != "" {
		s.logger.Infow("launching server with socket transport", "port", port)
		return s.launchAndDial(ctx, workspaceRoot, serverDir, port)
	}

	s.logger.Infow("launching server with stdio transport", "workspaceRoot", workspaceRoot)
	return s.launchStdio(workspaceRoot, serverDir)
}

func (s *selector) dialOnly(ctx context.Context, port string) (*Handle, error) {
	conn, err := (&net.Dialer{}).DialContext(ctx, "tcp", net.JoinHostPort("localhost", port))
	if err != nil {
		return nil, &errors.ConnectFailedError{Err: err}
	}
	return &Handle{rwc: conn}, nil
}

func (s *selector) launchAndDial(ctx context.Context, workspaceRoot, serverDir, port string) (*Handle, error) {
	cmd, err := s.launcher.BuildCommand(workspaceRoot, serverDir)
	if err != nil {
		return nil, err
	}
	s.logJavaRuntime(cmd.Path)
	cmd.Env = append(os.Environ(), fmt.Sprintf("CLIENT_PORT=%s", port))
	cmd.Stderr, _ = os.Create(filepath.Join(serverDir, _serverStderrLog))

	if err := s.executor.StartCommand(cmd, cmd.Env); err != nil {
		return nil, &errors.ConnectFailedError{Err: err}
	}

	// The server needs a moment to open its listener after spawn.
	var conn net.Conn
	for i := 0; i < _dialAttempts; i++ {
		conn, err = (&net.Dialer{}).DialContext(ctx, "tcp", net.JoinHostPort("localhost", port))
		if err == nil {
			return &Handle{rwc: conn, proc: cmd}, nil
		}
		select {
		case <-ctx.Done():
			err = ctx.Err()
			i = _dialAttempts
		case <-time.After(_dialInterval):
		}
	}

	if cmd.Process != nil {
		cmd.Process.Kill()
		cmd.Wait()
	}
	return nil, &errors.ConnectFailedError{Err: err}
}

func (s *selector) launchStdio(workspaceRoot, serverDir string) (*Handle, error) {
	cmd, err := s.launcher.BuildCommand(workspaceRoot, serverDir)
	if err != nil {
		return nil, err
	}
	s.logJavaRuntime(cmd.Path)

	stdin, err := cmd.StdinPipe()
	if err != nil {
		return nil, &errors.ConnectFailedError{Err: err}
	}
	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return nil, &errors.ConnectFailedError{Err: err}
	}
	cmd.Stderr, _ = os.Create(filepath.Join(serverDir, _serverStderrLog))

	if err := s.executor.StartCommand(cmd, nil); err != nil {
		return nil, &errors.ConnectFailedError{Err: err}
	}

	return &Handle{
		rwc:  &stdioPipe{in: stdin, out: stdout},
		proc: cmd,
	}, nil
}

// logJavaRuntime records the version banner of the java binary about to launch
// the server. A failed version check is logged and does not block the launch.
func (s *selector) logJavaRuntime(java string) {
	_, stderr, _, err := s.executor.Run(exec.Command(java, "-version"))
	if err != nil {
		s.logger.Warnw("java version check failed", "java", java, zap.Error(err))
		return
	}
	// java prints its version banner to stderr.
	if line, _, _ := strings.Cut(stderr, "\n"); line != "" {
		s.logger.Infow("java runtime", "java", java, "version", line)
	}
}

// stdioPipe joins a child process's stdin and stdout into one read-write-closer.
type stdioPipe struct {
	in  io.WriteCloser
	out io.ReadCloser
}

func (p *stdioPipe) Read(b []byte) (int, error)  { return p.out.Read(b) }
func (p *stdioPipe) Write(b []byte) (int, error) { return p.in.Write(b) }

func (p *stdioPipe) Close() error {
	return multierr.Append(p.in.Close(), p.out.Close())
}
