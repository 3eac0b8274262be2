package executor

import (
	"errors"
	"os/exec"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx"
	"go.uber.org/fx/fxtest"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

// Instantiates the new Executor through the fx module
func fxExecutor(t *testing.T) (Executor, *observer.ObservedLogs) {
	var e Executor
	core, recorded := observer.New(zap.InfoLevel)
	logger := zap.New(core).Sugar()

	fxtest.New(t,
		fx.Provide(func() *zap.SugaredLogger { return logger }),
		Module,
		fx.Populate(&e),
	).RequireStart().RequireStop()

	return e, recorded
}

func TestRun(t *testing.T) {
	e, recorded := fxExecutor(t)

	t.Run("captures stdout and stderr", func(t *testing.T) {
		binPath, err := exec.LookPath("sh")
		if errors.Is(err, exec.ErrNotFound) {
			t.Skip("no sh available")
		}
		require.NoError(t, err)

		stdout, stderr, exitCode, err := e.Run(exec.Command("sh", "-c", "echo out; echo err 1>&2"))
		require.NoError(t, err)
		assert.Equal(t, "out\n", stdout)
		assert.Equal(t, "err\n", stderr)
		assert.Equal(t, 0, exitCode)

		logs := recorded.TakeAll()
		require.Len(t, logs, 1)
		assert.Equal(t, binPath, logs[0].ContextMap()["Path"])
	})

	t.Run("nonzero exit", func(t *testing.T) {
		if _, err := exec.LookPath("sh"); errors.Is(err, exec.ErrNotFound) {
			t.Skip("no sh available")
		}

		_, _, exitCode, err := e.Run(exec.Command("sh", "-c", "exit 3"))
		assert.Error(t, err)
		assert.Equal(t, 3, exitCode)
	})

	t.Run("command never starts", func(t *testing.T) {
		_, _, exitCode, err := e.Run(exec.Command("/nonexistent/binary"))
		assert.Error(t, err)
		assert.Equal(t, -1, exitCode)
	})
}

func TestStartCommand(t *testing.T) {
	var started *exec.Cmd
	e := NewExecutor(WithStartFunc(func(cmd *exec.Cmd) error {
		started = cmd
		return nil
	}))

	cmd := exec.Command("java", "-version")
	env := []string{"KEY1=VAL1"}
	require.NoError(t, e.StartCommand(cmd, env))
	require.NotNil(t, started)
	assert.Equal(t, env, started.Env)
}
