// Package events provides the in-process publish/subscribe channel used to fan
// out session events, such as class file content invalidation.
package events

import (
	"context"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

// TopicClassFileInvalidated carries the class file URI whose cached contents
// must be discarded.
const TopicClassFileInvalidated = "classfile-invalidated"

// Module is the Fx module for this package.
var Module = fx.Provide(New)

// Bus is the process-wide event channel.
type Bus interface {
	message.Publisher
	message.Subscriber
}

// Params define values used to construct the Bus.
type Params struct {
	fx.In

	Lifecycle fx.Lifecycle
	Logger    *zap.SugaredLogger
}

// New creates a Bus backed by a watermill go-channel Pub/Sub.
func New(p Params) Bus {
	bus := gochannel.NewGoChannel(gochannel.Config{}, &zapAdapter{logger: p.Logger})

	p.Lifecycle.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return bus.Close()
		},
	})

	return bus
}

// NewInvalidation builds an invalidation message for one class file URI.
func NewInvalidation(classFileURI string) *message.Message {
	return message.NewMessage(watermill.NewUUID(), []byte(classFileURI))
}

// zapAdapter bridges watermill logging onto the service logger.
type zapAdapter struct {
	logger *zap.SugaredLogger
}

func (a *zapAdapter) Error(msg string, err error, fields watermill.LogFields) {
	a.logger.Errorw(msg, append(fieldPairs(fields), "error", err)...)
}

func (a *zapAdapter) Info(msg string, fields watermill.LogFields) {
	a.logger.Infow(msg, fieldPairs(fields)...)
}

func (a *zapAdapter) Debug(msg string, fields watermill.LogFields) {
	a.logger.Debugw(msg, fieldPairs(fields)...)
}

func (a *zapAdapter) Trace(msg string, fields watermill.LogFields) {
	a.logger.Debugw(msg, fieldPairs(fields)...)
}

func (a *zapAdapter) With(fields watermill.LogFields) watermill.LoggerAdapter {
	return &zapAdapter{logger: a.logger.With(fieldPairs(fields)...)}
}

func fieldPairs(fields watermill.LogFields) []interface{} {
	pairs := make([]interface{}, 0, len(fields)*2)
	for k, v := range fields {
		pairs = append(pairs, k, v)
	}
	return pairs
}
