// Package entity contains the domain logic for the jdtls-bridge service.
package entity

import (
	"github.com/gofrs/uuid"
	"go.lsp.dev/jsonrpc2"
	"go.lsp.dev/protocol"
)

type keyType string

// SessionContextKey indicates the key to be used to identify the session UUID in the context.
const SessionContextKey keyType = "SessionUUID"

// ServerConfigKey is the config key that contains language server launch configuration.
const ServerConfigKey = "server"

// SessionState is the lifecycle state of one language server connection.
type SessionState int

// Lifecycle states. Stopped is terminal.
const (
	StateIdle SessionState = iota
	StateStarting
	StateInitializing
	StateReady
	StateDegraded
	StateStopped
)

// String implements fmt.Stringer.
func (s SessionState) String() string {
	switch s {
	case StateIdle:
		return "Idle"
	case StateStarting:
		return "Starting"
	case StateInitializing:
		return "Initializing"
	case StateReady:
		return "Ready"
	case StateDegraded:
		return "Degraded"
	case StateStopped:
		return "Stopped"
	}
	return "Unknown"
}

// CanDispatch reports whether outbound commands may be sent to the server in
// this state.
func (s SessionState) CanDispatch() bool {
	return s == StateReady || s == StateDegraded
}

// Active reports whether the session currently holds or is acquiring a transport.
// At most one active session may exist per workspace root.
func (s SessionState) Active() bool {
	return s != StateIdle && s != StateStopped
}

// Session entity representing one lifetime of a connected language server.
type Session struct {
	UUID             uuid.UUID                  `json:"uuid" zap:"uuid"`
	InitializeParams *protocol.InitializeParams `json:"-" zap:"-"`
	Conn             *jsonrpc2.Conn             `json:"-" zap:"-"`
	WorkspaceRoot    string                     `json:"workspaceRoot" zap:"workspaceRoot"`
	State            SessionState               `json:"state" zap:"state"`
}

// ServerConfig defines the properties needed to launch the language server.
type ServerConfig struct {
	// JavaHome overrides $JAVA_HOME when locating the java executable.
	JavaHome string `yaml:"javaHome"`
	// InstallDir is the root of the server installation, containing plugins/ and config_*/.
	InstallDir string `yaml:"installDir"`
	// JVMArgs are appended to the server java command line.
	JVMArgs []string `yaml:"jvmArgs"`
}
