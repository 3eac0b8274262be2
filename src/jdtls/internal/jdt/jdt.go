// Package jdt defines the JDT Language Server message kinds used beyond the base
// LSP protocol, with the payload shapes the server sends and expects.
package jdt

import (
	"go.lsp.dev/protocol"
	"go.lsp.dev/uri"
)

// Custom notification and request methods exchanged with the JDT Language Server.
const (
	// MethodStatus is a server notification carrying lifecycle status.
	MethodStatus = "language/status"
	// MethodProgressReport is a server notification carrying task progress.
	MethodProgressReport = "language/progressReport"
	// MethodActionableNotification is a server notification that may offer
	// follow-up commands to the user.
	MethodActionableNotification = "language/actionableNotification"
	// MethodExecuteClientCommand is a reverse request where the server asks the
	// client to execute a locally registered command.
	MethodExecuteClientCommand = "workspace/executeClientCommand"
	// MethodSendNotification is a reverse request where the server asks the client
	// to re-emit a named notification to the editor.
	MethodSendNotification = "workspace/notify"
	// MethodBuildWorkspace requests a workspace compilation.
	MethodBuildWorkspace = "java/buildWorkspace"
	// MethodClassFileContents fetches decompiled or attached source for a class file.
	MethodClassFileContents = "java/classFileContents"
	// MethodProjectConfigurationUpdate notifies the server that build descriptors changed.
	MethodProjectConfigurationUpdate = "java/projectConfigurationUpdate"
)

// Workspace commands executed on the server via workspace/executeCommand.
const (
	CommandResolveSourceAttachment = "java.project.resolveSourceAttachment"
	CommandUpdateSourceAttachment  = "java.project.updateSourceAttachment"
)

// URIScheme is the custom scheme under which class file contents are exposed to
// the editor as read-only virtual documents.
const URIScheme = "jdt"

// StatusKind discriminates language/status notifications.
type StatusKind string

// Status kinds sent by the server.
const (
	StatusStarting StatusKind = "Starting"
	StatusStarted  StatusKind = "Started"
	StatusError    StatusKind = "Error"
	StatusMessage  StatusKind = "Message"
)

// StatusReport is the payload of a language/status notification.
type StatusReport struct {
	Type    StatusKind `json:"type"`
	Message string     `json:"message"`
}

// ProgressReport is the payload of a language/progressReport notification.
type ProgressReport struct {
	ID        string `json:"id,omitempty"`
	Task      string `json:"task,omitempty"`
	Subtask   string `json:"subTask,omitempty"`
	Status    string `json:"status"`
	WorkDone  int    `json:"workDone,omitempty"`
	TotalWork int    `json:"totalWork,omitempty"`
	Complete  bool   `json:"complete"`
}

// ActionableNotification is the payload of a language/actionableNotification.
// When Commands is empty it is a plain user-facing message keyed by severity.
type ActionableNotification struct {
	Severity protocol.MessageType `json:"severity"`
	Message  string               `json:"message"`
	Data     interface{}          `json:"data,omitempty"`
	Commands []protocol.Command   `json:"commands,omitempty"`
}

// ExecuteClientCommandParams is the payload of workspace/executeClientCommand
// and workspace/notify.
type ExecuteClientCommandParams struct {
	Command   string        `json:"command"`
	Arguments []interface{} `json:"arguments,omitempty"`
}

// CompileWorkspaceStatus is the result of java/buildWorkspace.
type CompileWorkspaceStatus int

// Compile outcomes as reported by the server.
const (
	CompileFailed    CompileWorkspaceStatus = 0
	CompileSucceeded CompileWorkspaceStatus = 1
	CompileWitherror CompileWorkspaceStatus = 2
	CompileCancelled CompileWorkspaceStatus = 3
)

// String implements fmt.Stringer.
func (s CompileWorkspaceStatus) String() string {
	switch s {
	case CompileFailed:
		return "Failed"
	case CompileSucceeded:
		return "Succeeded"
	case CompileWitherror:
		return "Witherror"
	case CompileCancelled:
		return "Cancelled"
	}
	return "Unknown"
}

// SourceAttachmentAttribute holds the attachment metadata for one class file.
type SourceAttachmentAttribute struct {
	SourceAttachmentPath     string `json:"sourceAttachmentPath,omitempty"`
	SourceAttachmentEncoding string `json:"sourceAttachmentEncoding,omitempty"`
}

// SourceAttachmentRequest identifies the class file whose attachment is being
// resolved or updated.
type SourceAttachmentRequest struct {
	ClassFileURI uri.URI                    `json:"classFileUri"`
	Attributes   *SourceAttachmentAttribute `json:"attributes,omitempty"`
}

// SourceAttachmentResult is returned by both attachment commands. A non-empty
// ErrorMessage reports a server side resolution failure.
type SourceAttachmentResult struct {
	ErrorMessage string                     `json:"errorMessage,omitempty"`
	Attributes   *SourceAttachmentAttribute `json:"attributes,omitempty"`
}
