package core

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/config"
)

func TestNewSugaredLogger(t *testing.T) {
	tests := []struct {
		name          string
		loggingConfig string
		expectError   bool
	}{
		{
			name: "info level json encoding",
			loggingConfig: `
logging:
  level: info
  development: false
  encoding: json
`,
			expectError: false,
		},
		{
			name: "debug level console encoding",
			loggingConfig: `
logging:
  level: debug
  development: true
  encoding: console
`,
			expectError: false,
		},
		{
			name: "default encoding when unset",
			loggingConfig: `
logging:
  level: error
  development: false
`,
			expectError: false,
		},
		{
			name: "invalid level",
			loggingConfig: `
logging:
  level: loud
`,
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			provider, err := config.NewYAML(config.Source(strings.NewReader(tt.loggingConfig)))
			require.NoError(t, err)

			sugar, err := NewSugaredLogger(provider)

			if tt.expectError {
				assert.Error(t, err)
				assert.Nil(t, sugar)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, sugar)
			assert.NotNil(t, NewLogger(sugar))
		})
	}
}
