package errors

import (
	stderr "errors"
	"fmt"

	"github.com/gofrs/uuid"
)

// UUIDNotFoundError is a service domain error for a session that is not found.
type UUIDNotFoundError struct {
	UUID uuid.UUID
}

// Error is an implementation of the error interface.
func (n *UUIDNotFoundError) Error() string {
	return fmt.Sprintf("UUID %q not found", n.UUID)
}

// NotFoundUUID returns a UUID and true if UUIDNotFoundError is part of the
// error chain.
func NotFoundUUID(e error) (_ uuid.UUID, ok bool) {
	var nf *UUIDNotFoundError
	if !stderr.As(e, &nf) {
		return uuid.Nil, false
	}
	return nf.UUID, true
}

// DuplicateWorkspaceError indicates that a second session attempted to go active
// for a workspace root that already has an active session.
type DuplicateWorkspaceError struct {
	WorkspaceRoot string
	ActiveUUID    uuid.UUID
}

// Error is an implementation of the error interface.
func (d *DuplicateWorkspaceError) Error() string {
	return fmt.Sprintf("workspace root %q already has active session %q", d.WorkspaceRoot, d.ActiveUUID)
}

// TransportUnavailableError indicates that no viable way to reach a language
// server could be constructed: no spawnable executable and no reachable address.
type TransportUnavailableError struct {
	Reason string
}

// Error is an implementation of the error interface.
func (t *TransportUnavailableError) Error() string {
	return fmt.Sprintf("no viable language server transport: %s", t.Reason)
}

// ConnectFailedError indicates a transport level connect error. This is terminal
// for the session and is not retried.
type ConnectFailedError struct {
	Err error
}

// Error is an implementation of the error interface.
func (c *ConnectFailedError) Error() string {
	return fmt.Sprintf("language server connect failed: %v", c.Err)
}

// Unwrap exposes the underlying transport error.
func (c *ConnectFailedError) Unwrap() error {
	return c.Err
}

// SessionNotReadyError indicates that a command was dispatched while the session
// was outside the Ready and Degraded states.
type SessionNotReadyError struct {
	State string
}

// Error is an implementation of the error interface.
func (s *SessionNotReadyError) Error() string {
	return fmt.Sprintf("session is not ready for commands (state %q)", s.State)
}

// SessionEndedError indicates that the session stopped while a command was still
// outstanding. All pending commands are rejected with this error on stop.
type SessionEndedError struct{}

// Error is an implementation of the error interface.
func (s *SessionEndedError) Error() string {
	return "session ended before the command completed"
}

// ResolutionError carries a server reported failure for a single request. It is
// local to that command and does not affect session state.
type ResolutionError struct {
	Message string
}

// Error is an implementation of the error interface.
func (r *ResolutionError) Error() string {
	return r.Message
}

// CommandNotFoundError indicates a lookup miss in the host command registry.
type CommandNotFoundError struct {
	Command string
}

// Error is an implementation of the error interface.
func (c *CommandNotFoundError) Error() string {
	return fmt.Sprintf("command %q is not registered", c.Command)
}
