package registry

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/jdtbridge/jdtls-bridge/src/jdtls/internal/errors"
	"go.uber.org/zap"
)

func newTestRegistry() Registry {
	return New(Params{Logger: zap.NewNop().Sugar()})
}

func TestRegister(t *testing.T) {
	r := newTestRegistry()

	handler := func(ctx context.Context, args []json.RawMessage) (interface{}, error) {
		return nil, nil
	}

	assert.NoError(t, r.Register("java.sample.command", handler))
	assert.Error(t, r.Register("java.sample.command", handler))
	assert.Error(t, r.Register("java.other.command", nil))
}

func TestExecute(t *testing.T) {
	r := newTestRegistry()

	require.NoError(t, r.Register("java.sample.echo", func(ctx context.Context, args []json.RawMessage) (interface{}, error) {
		var s string
		require.NoError(t, json.Unmarshal(args[0], &s))
		return s, nil
	}))

	t.Run("registered command", func(t *testing.T) {
		result, err := r.Execute(context.Background(), "java.sample.echo", []json.RawMessage{json.RawMessage(`"hello"`)})
		require.NoError(t, err)
		assert.Equal(t, "hello", result)
	})

	t.Run("unknown command", func(t *testing.T) {
		_, err := r.Execute(context.Background(), "java.missing", nil)
		require.Error(t, err)
		var notFound *errors.CommandNotFoundError
		require.ErrorAs(t, err, &notFound)
		assert.Equal(t, "java.missing", notFound.Command)
	})
}

func TestCommands(t *testing.T) {
	r := newTestRegistry()
	handler := func(ctx context.Context, args []json.RawMessage) (interface{}, error) {
		return nil, nil
	}

	require.NoError(t, r.Register("java.b", handler))
	require.NoError(t, r.Register("java.a", handler))

	assert.Equal(t, []string{"java.a", "java.b"}, r.Commands())
}
