package bridge

import (
	"context"
	"errors"
	"testing"

	"github.com/gofrs/uuid"
	"github.com/jdtbridge/jdtls-bridge/src/jdtls/controller/contentprovider/contentprovidermock"
	"github.com/jdtbridge/jdtls-bridge/src/jdtls/controller/registry"
	"github.com/jdtbridge/jdtls-bridge/src/jdtls/controller/session/sessionmock"
	"github.com/jdtbridge/jdtls-bridge/src/jdtls/entity"
	"github.com/jdtbridge/jdtls-bridge/src/jdtls/factory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	tally "github.com/uber-go/tally/v4"
	"go.lsp.dev/jsonrpc2"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

func newMockReplier() jsonrpc2.Replier {
	return func(ctx context.Context, result interface{}, err error) error {
		return err
	}
}

func newTestRouter(t *testing.T) (*jsonRPCRouter, *sessionmock.MockController, *contentprovidermock.MockProvider) {
	t.Helper()
	ctrl := gomock.NewController(t)
	sessions := sessionmock.NewMockController(ctrl)
	contents := contentprovidermock.NewMockProvider(ctrl)
	r := &jsonRPCRouter{
		sessions: sessions,
		registry: newNoopRegistry(),
		contents: contents,
		uuid:     factory.UUID(),
		stats:    tally.NoopScope,
	}
	return r, sessions, contents
}

func newNoopRegistry() registry.Registry {
	return registry.New(registry.Params{Logger: zap.NewNop().Sugar()})
}

func TestNewConnection(t *testing.T) {
	ctrl := gomock.NewController(t)
	sessions := sessionmock.NewMockController(ctrl)
	sessions.EXPECT().InitSession(gomock.Any(), gomock.Any()).Return(factory.UUID(), nil)

	cm := jsonRPCConnectionManager{
		sessions: sessions,
		registry: newNoopRegistry(),
		contents: contentprovidermock.NewMockProvider(ctrl),
		stats:    tally.NoopScope,
	}

	router, err := cm.NewConnection(context.Background(), nil)
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, router.UUID())
}

func TestNewConnectionError(t *testing.T) {
	ctrl := gomock.NewController(t)
	sessions := sessionmock.NewMockController(ctrl)
	sessions.EXPECT().InitSession(gomock.Any(), gomock.Any()).Return(uuid.Nil, errors.New("session limit"))

	cm := jsonRPCConnectionManager{sessions: sessions, stats: tally.NoopScope}

	_, err := cm.NewConnection(context.Background(), nil)
	assert.Error(t, err)
}

func TestRemoveConnectionCarriesSessionUUID(t *testing.T) {
	ctrl := gomock.NewController(t)
	sessions := sessionmock.NewMockController(ctrl)
	cm := jsonRPCConnectionManager{sessions: sessions, stats: tally.NoopScope}

	id := factory.UUID()
	sessions.EXPECT().EndSession(gomock.Any(), id).DoAndReturn(
		func(ctx context.Context, endID uuid.UUID) error {
			ctxID, ok := ctx.Value(entity.SessionContextKey).(uuid.UUID)
			require.True(t, ok, "context must carry the session UUID")
			assert.Equal(t, id, ctxID)
			return nil
		})

	cm.RemoveConnection(context.Background(), id)
}
