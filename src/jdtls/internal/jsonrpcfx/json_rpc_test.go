package jsonrpcfx

import (
	"context"
	"errors"
	"net"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gofrs/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.lsp.dev/jsonrpc2"
	"go.uber.org/config"
	"go.uber.org/fx/fxtest"
	"go.uber.org/zap"
)

type fakeInfoFile struct {
	mu     sync.Mutex
	fields map[string]string
	err    error
}

func (f *fakeInfoFile) UpdateField(key string, value string) error {
	if f.err != nil {
		return f.err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.fields == nil {
		f.fields = map[string]string{}
	}
	f.fields[key] = value
	return nil
}

func (f *fakeInfoFile) GetField(key string) (string, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	v, ok := f.fields[key]
	return v, ok
}

type fakeRouter struct {
	id uuid.UUID
}

func (f *fakeRouter) HandleReq(ctx context.Context, reply jsonrpc2.Replier, req jsonrpc2.Request) error {
	return nil
}

func (f *fakeRouter) UUID() uuid.UUID { return f.id }

type fakeConnectionManager struct {
	router  Router
	err     error
	removed []uuid.UUID
}

func (f *fakeConnectionManager) NewConnection(ctx context.Context, conn *jsonrpc2.Conn) (Router, error) {
	return f.router, f.err
}

func (f *fakeConnectionManager) RemoveConnection(ctx context.Context, id uuid.UUID) {
	f.removed = append(f.removed, id)
}

func newConfigProvider(t *testing.T, yaml string) config.Provider {
	t.Helper()
	prov, err := config.NewYAML(config.Source(strings.NewReader(yaml)))
	require.NoError(t, err)
	return prov
}

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		params  func(t *testing.T) Params
		wantErr bool
	}{
		{
			name:    "missing required params",
			params:  func(t *testing.T) Params { return Params{} },
			wantErr: true,
		},
		{
			name: "all required params are present",
			params: func(t *testing.T) Params {
				return Params{
					Lifecycle: fxtest.NewLifecycle(t),
					Config:    newConfigProvider(t, "jsonrpc:\n  address: \"127.0.0.1:0\"\n"),
					Logger:    zap.NewNop().Sugar(),
				}
			},
			wantErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.params(t))

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestRegisterConnectionManager(t *testing.T) {
	m := module{}
	mgr := &fakeConnectionManager{}

	assert.NoError(t, m.RegisterConnectionManager(mgr))
	assert.Error(t, m.RegisterConnectionManager(mgr))
}

func TestServeStream(t *testing.T) {
	id := uuid.Must(uuid.NewV4())

	tests := []struct {
		name       string
		mgr        *fakeConnectionManager
		wantErr    bool
		wantRemove bool
	}{
		{
			name:    "no connection manager registered",
			mgr:     nil,
			wantErr: true,
		},
		{
			name:    "failed NewConnection",
			mgr:     &fakeConnectionManager{err: errors.New("sample error")},
			wantErr: true,
		},
		{
			name:       "successful connection until closed",
			mgr:        &fakeConnectionManager{router: &fakeRouter{id: id}},
			wantRemove: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := module{logger: zap.NewNop().Sugar()}
			if tt.mgr != nil {
				require.NoError(t, m.RegisterConnectionManager(tt.mgr))
			}

			clientSide, serverSide := net.Pipe()
			conn := jsonrpc2.NewConn(jsonrpc2.NewStream(serverSide))
			go clientSide.Close()

			err := m.ServeStream(context.Background(), conn)

			if tt.wantErr {
				assert.Error(t, err)
			}
			if tt.wantRemove {
				assert.Equal(t, []uuid.UUID{id}, tt.mgr.removed)
			}
		})
	}
}

func TestSetup(t *testing.T) {
	m := module{logger: zap.NewNop().Sugar()}
	assert.Error(t, m.setup())

	m = module{Address: "127.0.0.1:0"}
	require.NoError(t, m.setup())
	defer m.ln.Close()
	assert.NotEqual(t, "127.0.0.1:0", m.Address)
}

func TestProcessConfig(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantErr bool
	}{
		{
			name: "valid configuration",
			yaml: "jsonrpc:\n  address: \"127.0.0.1:5859\"\n",
		},
		{
			name:    "missing address key",
			yaml:    "jsonrpc:\n  other: value\n",
			wantErr: true,
		},
		{
			name:    "incorrectly formatted entry",
			yaml:    "jsonrpc:\n  address:\n    key: val\n",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := module{logger: zap.NewNop().Sugar()}
			err := m.processConfig(newConfigProvider(t, tt.yaml))

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestStartRecordsAddress(t *testing.T) {
	info := &fakeInfoFile{}
	m := module{
		Address:        "127.0.0.1:0",
		serverInfoFile: info,
		logger:         zap.NewNop().Sugar(),
	}
	require.NoError(t, m.setup())

	go m.start()

	assert.Eventually(t, func() bool {
		addr, ok := info.GetField(_outputKey)
		return ok && addr == m.Address
	}, time.Second, 10*time.Millisecond)

	m.ln.Close()
}

func TestOnStart(t *testing.T) {
	m := module{logger: zap.NewNop().Sugar()}
	assert.Error(t, m.OnStart(context.Background()))
}
