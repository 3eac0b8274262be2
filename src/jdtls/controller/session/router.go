package session

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jdtbridge/jdtls-bridge/src/jdtls/entity"
	"github.com/jdtbridge/jdtls-bridge/src/jdtls/internal/jdt"
	"github.com/jdtbridge/jdtls-bridge/src/jdtls/mapper"
	"go.lsp.dev/jsonrpc2"
	"go.lsp.dev/protocol"
	"go.uber.org/zap"
)

// _progressHideDelay keeps the last progress text visible briefly after a task
// completes, so quick successive tasks do not flicker the status bar.
const _progressHideDelay = 3 * time.Second

// serverRouter demultiplexes messages originating from the language server:
// lifecycle status, progress, actionable notifications, reverse requests, and
// standard window/workspace traffic forwarded to the editor.
func (c *controller) serverRouter(ctx context.Context, link *serverLink) jsonrpc2.Handler {
	return func(_ context.Context, reply jsonrpc2.Replier, req jsonrpc2.Request) error {
		switch req.Method() {
		case jdt.MethodStatus:
			status, err := mapper.RequestToStatusReport(req)
			if err != nil {
				return err
			}
			c.handleStatus(ctx, link, status)
			return nil

		case jdt.MethodProgressReport:
			progress, err := mapper.RequestToProgressReport(req)
			if err != nil {
				return err
			}
			c.handleProgress(ctx, link, progress)
			return nil

		case jdt.MethodActionableNotification:
			notification, err := mapper.RequestToActionableNotification(req)
			if err != nil {
				return err
			}
			c.handleActionable(ctx, notification)
			return nil

		case jdt.MethodExecuteClientCommand:
			params, err := mapper.RequestToExecuteClientCommandParams(req)
			if err != nil {
				return reply(ctx, nil, err)
			}
			result, err := c.registry.Execute(ctx, params.Command, rawArguments(params.Arguments))
			return reply(ctx, result, err)

		case jdt.MethodSendNotification:
			params, err := mapper.RequestToExecuteClientCommandParams(req)
			if err != nil {
				return reply(ctx, nil, err)
			}
			err = c.editorGateway.Notify(ctx, params.Command, params.Arguments)
			return reply(ctx, nil, err)

		case protocol.MethodWindowLogMessage:
			var params protocol.LogMessageParams
			if err := json.Unmarshal(req.Params(), &params); err != nil {
				return err
			}
			if link.output != nil {
				fmt.Fprintln(link.output, params.Message)
			}
			// Mirror server log output into the editor's log view.
			if w, err := c.editorGateway.GetLogMessageWriter(ctx, _serverLogName); err == nil {
				fmt.Fprintln(w, params.Message)
			}
			return nil

		case protocol.MethodWindowShowMessage:
			var params protocol.ShowMessageParams
			if err := json.Unmarshal(req.Params(), &params); err != nil {
				return err
			}
			return c.editorGateway.ShowMessage(ctx, &params)

		case protocol.MethodTextDocumentPublishDiagnostics:
			var params protocol.PublishDiagnosticsParams
			if err := json.Unmarshal(req.Params(), &params); err != nil {
				return err
			}
			return c.editorGateway.PublishDiagnostics(ctx, &params)

		case protocol.MethodWorkspaceApplyEdit:
			var params protocol.ApplyWorkspaceEditParams
			if err := json.Unmarshal(req.Params(), &params); err != nil {
				return reply(ctx, nil, err)
			}
			result, err := c.editorGateway.ApplyEdit(ctx, &params)
			return reply(ctx, result, err)

		default:
			return jsonrpc2.MethodNotFoundHandler(ctx, reply, req)
		}
	}
}

// handleStatus applies a lifecycle status notification. Started opens the
// dispatch gate; once it has been seen, later Starting text is suppressed.
func (c *controller) handleStatus(ctx context.Context, link *serverLink, status *jdt.StatusReport) {
	switch status.Type {
	case jdt.StatusStarted:
		if !link.markReady() {
			return
		}
		c.editorGateway.SetStatus(ctx, false, _statusReady)

	case jdt.StatusStarting:
		if link.isReadySeen() {
			return
		}
		c.editorGateway.SetStatus(ctx, true, status.Message)

	case jdt.StatusError:
		if link.currentState().CanDispatch() {
			link.setState(entity.StateDegraded)
		}
		c.editorGateway.SetStatus(ctx, false, status.Message)
		c.editorGateway.ShowMessage(ctx, &protocol.ShowMessageParams{
			Type:    protocol.MessageTypeError,
			Message: status.Message,
		})

	case jdt.StatusMessage:
		c.editorGateway.ShowMessage(ctx, &protocol.ShowMessageParams{
			Type:    protocol.MessageTypeInfo,
			Message: status.Message,
		})
	}
}

// handleProgress surfaces task progress in the status bar. The busy indicator
// is hidden on a delay after completion rather than immediately.
func (c *controller) handleProgress(ctx context.Context, link *serverLink, progress *jdt.ProgressReport) {
	link.mu.Lock()
	if link.hideTimer != nil {
		link.hideTimer.Stop()
		link.hideTimer = nil
	}
	link.mu.Unlock()

	if progress.Complete {
		timer := c.clock.AfterFunc(c.progressHideDelay, func() {
			c.editorGateway.SetStatus(ctx, false, _statusReady)
		})
		link.mu.Lock()
		link.hideTimer = timer
		link.mu.Unlock()
		return
	}

	c.editorGateway.SetStatus(ctx, true, progressText(progress))
}

// handleActionable renders an actionable notification. Without commands it is a
// plain message; with commands the user's selection is dispatched through the
// host command registry, and no selection is a no-op.
func (c *controller) handleActionable(ctx context.Context, notification *jdt.ActionableNotification) {
	if len(notification.Commands) == 0 {
		c.editorGateway.ShowMessage(ctx, &protocol.ShowMessageParams{
			Type:    notification.Severity,
			Message: notification.Message,
		})
		return
	}

	actions := make([]protocol.MessageActionItem, 0, len(notification.Commands))
	for _, cmd := range notification.Commands {
		actions = append(actions, protocol.MessageActionItem{Title: cmd.Title})
	}

	selection, err := c.editorGateway.ShowMessageRequest(ctx, &protocol.ShowMessageRequestParams{
		Type:    notification.Severity,
		Message: notification.Message,
		Actions: actions,
	})
	if err != nil {
		c.logger.Warnw("actionable notification prompt failed", zap.Error(err))
		return
	}
	if selection == nil {
		return
	}

	for _, cmd := range notification.Commands {
		if cmd.Title != selection.Title {
			continue
		}
		if _, err := c.registry.Execute(ctx, cmd.Command, rawArguments(cmd.Arguments)); err != nil {
			c.logger.Warnw("actionable notification command failed",
				zap.String("command", cmd.Command), zap.Error(err))
			c.editorGateway.ShowMessage(ctx, &protocol.ShowMessageParams{
				Type:    protocol.MessageTypeError,
				Message: err.Error(),
			})
		}
		return
	}
}

func progressText(progress *jdt.ProgressReport) string {
	task := progress.Task
	if progress.Subtask != "" {
		task = fmt.Sprintf("%s: %s", task, progress.Subtask)
	}
	if progress.TotalWork > 0 {
		percent := 100 * progress.WorkDone / progress.TotalWork
		return fmt.Sprintf("%d%% %s", percent, task)
	}
	return task
}

// rawArguments re-encodes loosely typed command arguments for registry handlers.
func rawArguments(args []interface{}) []json.RawMessage {
	out := make([]json.RawMessage, 0, len(args))
	for _, arg := range args {
		raw, err := json.Marshal(arg)
		if err != nil {
			continue
		}
		out = append(out, raw)
	}
	return out
}
