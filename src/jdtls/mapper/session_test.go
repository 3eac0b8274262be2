package mapper

import (
	"context"
	"testing"

	"github.com/jdtbridge/jdtls-bridge/src/jdtls/entity"
	"github.com/jdtbridge/jdtls-bridge/src/jdtls/factory"
	"github.com/jdtbridge/jdtls-bridge/src/jdtls/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionModelRoundTrip(t *testing.T) {
	session := factory.Session("/home/user/project")
	session.State = entity.StateReady

	m := SessionToModel(session)
	assert.Equal(t, session.UUID, m.UUID)
	assert.Equal(t, "/home/user/project", m.WorkspaceRoot)

	back, err := ModelToSession(m)
	require.NoError(t, err)
	assert.Equal(t, session.UUID, back.UUID)
	assert.Equal(t, entity.StateReady, back.State)
}

func TestUUIDToSession(t *testing.T) {
	id := factory.UUID()
	session := UUIDToSession(id, nil)
	assert.Equal(t, id, session.UUID)
	assert.Equal(t, entity.StateIdle, session.State)
}

func TestContextToSessionUUID(t *testing.T) {
	id := factory.UUID()
	ctx := context.WithValue(context.Background(), entity.SessionContextKey, id)

	got, err := ContextToSessionUUID(ctx)
	require.NoError(t, err)
	assert.Equal(t, id, got)

	_, err = ContextToSessionUUID(context.Background())
	assert.ErrorIs(t, err, errors.NoSessionOnContextError)
}
