package serverinfo

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/config"
	"go.uber.org/fx/fxtest"
	"go.uber.org/zap"
)

func newTestConfig(t *testing.T, yaml string) config.Provider {
	t.Helper()
	provider, err := config.NewYAML(config.Source(strings.NewReader(yaml)))
	require.NoError(t, err)
	return provider
}

func TestNew(t *testing.T) {
	infoPath := filepath.Join(t.TempDir(), "jdtls-bridge.json")

	tests := []struct {
		name    string
		yaml    string
		wantErr bool
	}{
		{
			name: "all required params are present",
			yaml: "serverInfoFilePath: " + infoPath,
		},
		{
			name:    "missing info file path",
			yaml:    "unrelated: value",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(Params{
				Config:    newTestConfig(t, tt.yaml),
				Lifecycle: fxtest.NewLifecycle(t),
				Logger:    zap.NewNop().Sugar(),
			})

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestUpdateAndGetField(t *testing.T) {
	infoPath := filepath.Join(t.TempDir(), "jdtls-bridge.json")
	m := module{
		logger:       zap.NewNop().Sugar(),
		infofile:     infoPath,
		fileContents: make(map[string]string),
	}

	require.NoError(t, m.UpdateField("lsp-address", "localhost:5036"))
	require.NoError(t, m.UpdateField("server-log", "/tmp/server.log"))

	val, ok := m.GetField("lsp-address")
	assert.True(t, ok)
	assert.Equal(t, "localhost:5036", val)

	_, ok = m.GetField("missing")
	assert.False(t, ok)

	// File on disk reflects all written fields.
	raw, err := os.ReadFile(infoPath)
	require.NoError(t, err)
	contents := map[string]string{}
	require.NoError(t, json.Unmarshal(raw, &contents))
	assert.Equal(t, "/tmp/server.log", contents["server-log"])
}

func TestOnStop(t *testing.T) {
	t.Run("file removed", func(t *testing.T) {
		tempFile, err := os.CreateTemp("", "test")
		assert.NoError(t, err)
		defer os.Remove(tempFile.Name())

		m := module{
			logger:   zap.NewNop().Sugar(),
			infofile: tempFile.Name(),
		}

		// Ensure no error return and file no longer present on disk.
		err = m.OnStop(context.Background())
		assert.NoError(t, err)
		_, err = os.Stat(tempFile.Name())
		assert.True(t, os.IsNotExist(err))
	})
}
