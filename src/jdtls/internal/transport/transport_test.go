package transport

import (
	"context"
	"net"
	"os/exec"
	"testing"

	"github.com/jdtbridge/jdtls-bridge/src/jdtls/internal/errors"
	"github.com/jdtbridge/jdtls-bridge/src/jdtls/internal/executor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

type fakeLauncher struct {
	cmd *exec.Cmd
	err error
}

func (f *fakeLauncher) BuildCommand(workspaceRoot, serverDir string) (*exec.Cmd, error) {
	return f.cmd, f.err
}

func (f *fakeLauncher) ServerInstallDir() string { return "" }

func TestDialDevelopmentSocket(t *testing.T) {
	defer goleak.VerifyNone(t)

	ln, err := net.Listen("tcp", "localhost:0")
	require.NoError(t, err)
	defer ln.Close()

	accepted := make(chan net.Conn, 1)
	go func() {
		conn, err := ln.Accept()
		if err == nil {
			accepted <- conn
		}
	}()

	_, port, err := net.SplitHostPort(ln.Addr().String())
	require.NoError(t, err)
	t.Setenv(EnvClientPort, port)

	s := New(Params{
		Logger:   zap.NewNop().Sugar(),
		Launcher: &fakeLauncher{},
		Executor: executor.NewExecutor(),
	})

	handle, err := s.Connect(context.Background(), t.TempDir(), t.TempDir())
	require.NoError(t, err)
	require.NotNil(t, handle)

	server := <-accepted
	defer server.Close()

	// Wire is live in both directions.
	go server.Write([]byte("ok"))
	buf := make([]byte, 2)
	_, err = handle.rwc.Read(buf)
	require.NoError(t, err)
	assert.Equal(t, "ok", string(buf))

	// Close is idempotent.
	assert.NoError(t, handle.Close())
	assert.NoError(t, handle.Close())
}

func TestDialDevelopmentSocketRefused(t *testing.T) {
	// Grab a port with no listener behind it.
	ln, err := net.Listen("tcp", "localhost:0")
	require.NoError(t, err)
	_, port, err := net.SplitHostPort(ln.Addr().String())
	require.NoError(t, err)
	ln.Close()

	t.Setenv(EnvClientPort, port)

	s := New(Params{
		Logger:   zap.NewNop().Sugar(),
		Launcher: &fakeLauncher{},
		Executor: executor.NewExecutor(),
	})

	_, err = s.Connect(context.Background(), t.TempDir(), t.TempDir())
	require.Error(t, err)
	var connectErr *errors.ConnectFailedError
	assert.ErrorAs(t, err, &connectErr)
}

func TestSpawnFailurePropagatesAsTransportUnavailable(t *testing.T) {
	t.Setenv(EnvClientPort, "")
	t.Setenv(EnvServerPort, "")

	s := New(Params{
		Logger:   zap.NewNop().Sugar(),
		Launcher: &fakeLauncher{err: &errors.TransportUnavailableError{Reason: "no server install"}},
		Executor: executor.NewExecutor(),
	})

	_, err := s.Connect(context.Background(), t.TempDir(), t.TempDir())
	require.Error(t, err)
	var unavailable *errors.TransportUnavailableError
	assert.ErrorAs(t, err, &unavailable)
}

func TestLogJavaRuntime(t *testing.T) {
	core, recorded := observer.New(zap.InfoLevel)

	tests := []struct {
		name     string
		execFunc func(cmd *exec.Cmd) error
		wantLogs int
	}{
		{
			name: "banner first line logged",
			execFunc: func(cmd *exec.Cmd) error {
				cmd.Stderr.Write([]byte("openjdk version \"21.0.2\" 2024-01-16\nOpenJDK Runtime Environment\n"))
				return nil
			},
			wantLogs: 1,
		},
		{
			name:     "failed check does not log a version",
			execFunc: func(cmd *exec.Cmd) error { return assert.AnError },
			wantLogs: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := New(Params{
				Logger:   zap.New(core).Sugar(),
				Launcher: &fakeLauncher{},
				Executor: executor.NewExecutor(executor.WithExecFunc(tt.execFunc)),
			}).(*selector)

			s.logJavaRuntime("/usr/bin/java")

			logs := recorded.FilterMessage("java runtime").TakeAll()
			require.Len(t, logs, tt.wantLogs)
			if tt.wantLogs > 0 {
				assert.Equal(t, "openjdk version \"21.0.2\" 2024-01-16", logs[0].ContextMap()["version"])
			}
		})
	}
}

func TestStdioSpawnStartError(t *testing.T) {
	t.Setenv(EnvClientPort, "")
	t.Setenv(EnvServerPort, "")

	s := New(Params{
		Logger:   zap.NewNop().Sugar(),
		Launcher: &fakeLauncher{cmd: exec.Command("/nonexistent/java")},
		Executor: executor.NewExecutor(),
	})

	_, err := s.Connect(context.Background(), t.TempDir(), t.TempDir())
	require.Error(t, err)
	var connectErr *errors.ConnectFailedError
	assert.ErrorAs(t, err, &connectErr)
}
