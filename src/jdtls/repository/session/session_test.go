package session

import (
	"context"
	"testing"

	"github.com/gofrs/uuid"
	"github.com/jdtbridge/jdtls-bridge/src/jdtls/entity"
	"github.com/jdtbridge/jdtls-bridge/src/jdtls/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	tally "github.com/uber-go/tally/v4"
)

func TestSessionRepository(t *testing.T) {
	testScope := tally.NewTestScope("testing", make(map[string]string, 0))
	t.Run("should Set and Get successfully", func(t *testing.T) {
		id := uuid.Must(uuid.NewV4())
		session := &entity.Session{
			UUID: id,
		}

		repository := New(testScope)

		err := repository.Set(context.Background(), session)
		require.NoError(t, err)
		val, err := repository.Get(context.Background(), id)
		require.NoError(t, err)
		assert.Equal(t, id, val.UUID)
	})

	t.Run("should fail to get something that was not Set", func(t *testing.T) {
		repository := New(testScope)

		id := uuid.Must(uuid.NewV4())
		_, err := repository.Get(context.Background(), id)
		require.Error(t, err)
		var nf *errors.UUIDNotFoundError
		require.ErrorAs(t, err, &nf)
		assert.Equal(t, id, nf.UUID)
	})

	t.Run("should reject nil session", func(t *testing.T) {
		repository := New(testScope)
		assert.Error(t, repository.Set(context.Background(), nil))
	})
}

func TestGetFromContext(t *testing.T) {
	testScope := tally.NewTestScope("testing", make(map[string]string, 0))
	t.Run("should get when uuid is in context", func(t *testing.T) {
		id := uuid.Must(uuid.NewV4())
		session := &entity.Session{
			UUID: id,
		}

		repository := New(testScope)
		ctx := context.WithValue(context.Background(), entity.SessionContextKey, id)
		err := repository.Set(ctx, session)
		require.NoError(t, err)
		val, err := repository.GetFromContext(ctx)
		assert.NoError(t, err)
		assert.Equal(t, id, val.UUID)
	})

	t.Run("should fail when uuid is missing from context", func(t *testing.T) {
		repository := New(testScope)

		_, err := repository.GetFromContext(context.Background())
		require.Error(t, err)
	})
}

func TestWorkspaceRootInvariant(t *testing.T) {
	ctx := context.Background()
	testScope := tally.NewTestScope("testing", make(map[string]string, 0))
	repository := New(testScope)

	active := &entity.Session{
		UUID:          uuid.Must(uuid.NewV4()),
		WorkspaceRoot: "/home/user/project",
		State:         entity.StateReady,
	}
	require.NoError(t, repository.Set(ctx, active))

	// A second active session for the same root is rejected.
	duplicate := &entity.Session{
		UUID:          uuid.Must(uuid.NewV4()),
		WorkspaceRoot: "/home/user/project",
		State:         entity.StateStarting,
	}
	err := repository.Set(ctx, duplicate)
	require.Error(t, err)
	var dup *errors.DuplicateWorkspaceError
	require.ErrorAs(t, err, &dup)
	assert.Equal(t, active.UUID, dup.ActiveUUID)

	// Once the prior session is stopped, the new one may go active.
	active.State = entity.StateStopped
	require.NoError(t, repository.Set(ctx, active))
	require.NoError(t, repository.Set(ctx, duplicate))

	found, err := repository.GetActiveByWorkspaceRoot(ctx, "/home/user/project")
	require.NoError(t, err)
	assert.Equal(t, duplicate.UUID, found.UUID)

	// A stopped session updating itself never conflicts.
	require.NoError(t, repository.Set(ctx, active))
}

func TestGetActiveByWorkspaceRoot(t *testing.T) {
	ctx := context.Background()
	testScope := tally.NewTestScope("testing", make(map[string]string, 0))
	repository := New(testScope)

	_, err := repository.GetActiveByWorkspaceRoot(ctx, "/nowhere")
	assert.ErrorIs(t, err, errors.NoActiveSessionError)

	stopped := &entity.Session{
		UUID:          uuid.Must(uuid.NewV4()),
		WorkspaceRoot: "/home/user/project",
		State:         entity.StateStopped,
	}
	require.NoError(t, repository.Set(ctx, stopped))
	_, err = repository.GetActiveByWorkspaceRoot(ctx, "/home/user/project")
	assert.ErrorIs(t, err, errors.NoActiveSessionError)
}

func TestDelete(t *testing.T) {
	ctx := context.Background()
	testScope := tally.NewTestScope("testing", make(map[string]string, 0))
	repository := New(testScope)

	session1 := &entity.Session{
		UUID: uuid.Must(uuid.NewV4()),
	}
	session2 := &entity.Session{
		UUID: uuid.Must(uuid.NewV4()),
	}

	repository.Set(ctx, session1)
	repository.Set(ctx, session2)

	// First deletion is successful. Multiple deletions return no error.
	assert.NoError(t, repository.Delete(ctx, session2.UUID))
	assert.NoError(t, repository.Delete(ctx, session2.UUID))
	_, err := repository.Get(ctx, session2.UUID)
	assert.Error(t, err)

	// Other session unaffected.
	result, err := repository.Get(ctx, session1.UUID)
	require.NoError(t, err)
	assert.Equal(t, session1.UUID, result.UUID)

	count, err := repository.SessionCount(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}
