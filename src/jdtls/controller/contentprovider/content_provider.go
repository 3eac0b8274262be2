// Package contentprovider serves read-only virtual documents for class files
// surfaced under the jdt scheme, caching contents until they are invalidated.
package contentprovider

import (
	"context"
	"fmt"
	"sync"

	session "github.com/jdtbridge/jdtls-bridge/src/jdtls/controller/session"
	"github.com/jdtbridge/jdtls-bridge/src/jdtls/internal/events"
	"github.com/jdtbridge/jdtls-bridge/src/jdtls/internal/jdt"
	"go.lsp.dev/protocol"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

// Module is the Fx module for this package.
var Module = fx.Provide(New)

// Provider resolves the contents of jdt virtual documents.
type Provider interface {
	// Contents returns the source text for a class file URI, fetching it from
	// the language server on a cache miss.
	Contents(ctx context.Context, doc protocol.TextDocumentIdentifier) (string, error)
	// Invalidate drops the cached contents for one URI.
	Invalidate(classFileURI string)
}

// Params are inbound parameters to construct a Provider.
type Params struct {
	fx.In

	Lifecycle fx.Lifecycle
	Bus       events.Bus
	Sessions  session.Controller
	Logger    *zap.SugaredLogger
}

// ClassFileSource is the slice of the session controller used by the provider.
type ClassFileSource interface {
	ClassFileContents(ctx context.Context, doc protocol.TextDocumentIdentifier) (string, error)
}

type provider struct {
	sessions ClassFileSource
	logger   *zap.SugaredLogger

	mu    sync.Mutex
	cache map[string]string
}

// New creates a Provider and subscribes it to class file invalidation events.
func New(p Params) (Provider, error) {
	prov := &provider{
		sessions: p.Sessions,
		logger:   p.Logger,
		cache:    map[string]string{},
	}

	subscribeCtx, cancel := context.WithCancel(context.Background())
	p.Lifecycle.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			messages, err := p.Bus.Subscribe(subscribeCtx, events.TopicClassFileInvalidated)
			if err != nil {
				return fmt.Errorf("subscribing to invalidation events: %w", err)
			}
			go func() {
				for msg := range messages {
					prov.Invalidate(string(msg.Payload))
					msg.Ack()
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			cancel()
			return nil
		},
	})

	return prov, nil
}

func (p *provider) Contents(ctx context.Context, doc protocol.TextDocumentIdentifier) (string, error) {
	if !isJDTScheme(string(doc.URI)) {
		return "", fmt.Errorf("unsupported scheme for virtual document %q", doc.URI)
	}

	key := string(doc.URI)
	p.mu.Lock()
	cached, ok := p.cache[key]
	p.mu.Unlock()
	if ok {
		return cached, nil
	}

	contents, err := p.sessions.ClassFileContents(ctx, doc)
	if err != nil {
		// A cancelled or failed fetch is never cached and never rendered.
		return "", err
	}

	p.mu.Lock()
	p.cache[key] = contents
	p.mu.Unlock()
	return contents, nil
}

func (p *provider) Invalidate(classFileURI string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	delete(p.cache, classFileURI)
}

func isJDTScheme(u string) bool {
	return len(u) > len(jdt.URIScheme)+3 && u[:len(jdt.URIScheme)+3] == jdt.URIScheme+"://"
}
