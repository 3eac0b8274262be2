package registry

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"sync"

	"github.com/jdtbridge/jdtls-bridge/src/jdtls/internal/errors"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

// Module is an fx module providing the host command registry.
var Module = fx.Options(fx.Provide(New))

// Handler executes one host command with the raw arguments from the request.
type Handler func(ctx context.Context, args []json.RawMessage) (interface{}, error)

// Registry holds the commands that execute on the host rather than being
// forwarded to the language server.
type Registry interface {
	// Register adds a command. Registering a name twice is an error.
	Register(name string, handler Handler) error
	// Execute runs the named command, returning CommandNotFoundError on a miss.
	Execute(ctx context.Context, name string, args []json.RawMessage) (interface{}, error)
	// Commands returns the sorted names of all registered commands.
	Commands() []string
}

// Params define values used by the registry.
type Params struct {
	fx.In

	Logger *zap.SugaredLogger
}

type registry struct {
	mu       sync.Mutex
	handlers map[string]Handler
	logger   *zap.SugaredLogger
}

// New creates an empty command registry.
func New(p Params) Registry {
	return &registry{
		handlers: make(map[string]Handler),
		logger:   p.Logger,
	}
}

func (r *registry) Register(name string, handler Handler) error {
	if handler == nil {
		return fmt.Errorf("nil handler for command %q", name)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.handlers[name]; ok {
		return fmt.Errorf("command %q is already registered", name)
	}
	r.handlers[name] = handler
	return nil
}

func (r *registry) Execute(ctx context.Context, name string, args []json.RawMessage) (interface{}, error) {
	r.mu.Lock()
	handler, ok := r.handlers[name]
	r.mu.Unlock()

	if !ok {
		return nil, &errors.CommandNotFoundError{Command: name}
	}

	r.logger.Debugw("executing host command", zap.String("command", name))
	return handler(ctx, args)
}

func (r *registry) Commands() []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	names := make([]string, 0, len(r.handlers))
	for name := range r.handlers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
