// Package app assembles the bridge's fx application module.
package app

import (
	"context"
	"time"

	tally "github.com/uber-go/tally/v4"
	"github.com/jdtbridge/jdtls-bridge/src/jdtls/controller/commands"
	"github.com/jdtbridge/jdtls-bridge/src/jdtls/controller/contentprovider"
	"github.com/jdtbridge/jdtls-bridge/src/jdtls/controller/registry"
	session "github.com/jdtbridge/jdtls-bridge/src/jdtls/controller/session"
	editorgw "github.com/jdtbridge/jdtls-bridge/src/jdtls/gateway/editor"
	"github.com/jdtbridge/jdtls-bridge/src/jdtls/handler/bridge"
	"github.com/jdtbridge/jdtls-bridge/src/jdtls/internal/clock"
	"github.com/jdtbridge/jdtls-bridge/src/jdtls/internal/core"
	"github.com/jdtbridge/jdtls-bridge/src/jdtls/internal/events"
	"github.com/jdtbridge/jdtls-bridge/src/jdtls/internal/executor"
	"github.com/jdtbridge/jdtls-bridge/src/jdtls/internal/fs"
	"github.com/jdtbridge/jdtls-bridge/src/jdtls/internal/jsonrpcfx"
	"github.com/jdtbridge/jdtls-bridge/src/jdtls/internal/launcher"
	"github.com/jdtbridge/jdtls-bridge/src/jdtls/internal/serverinfo"
	"github.com/jdtbridge/jdtls-bridge/src/jdtls/internal/transport"
	"github.com/jdtbridge/jdtls-bridge/src/jdtls/internal/workspacedir"
	sessionrepo "github.com/jdtbridge/jdtls-bridge/src/jdtls/repository/session"
	"go.uber.org/fx"
)

// Module defines the jdtls-bridge application module.
var Module = fx.Options(
	fx.Provide(editorgw.New), // outbounds
	bridge.Module,            // inbounds
	jsonrpcfx.Module,
	fs.Module,
	executor.Module,
	events.Module,
	launcher.Module,
	transport.Module,
	workspacedir.Module,
	serverinfo.Module,
	core.ConfigModule,
	core.LoggerModule,
	session.Module,
	registry.Module,
	contentprovider.Module,
	commands.Module,
	fx.Provide(clock.New),
	fx.Provide(sessionrepo.New),
	fx.Provide(func(lc fx.Lifecycle) tally.Scope {
		rs, closer := tally.NewRootScope(tally.ScopeOptions{
			Tags: map[string]string{
				"service": "jdtls-bridge",
			},
		}, 1*time.Second)

		lc.Append(fx.Hook{
			OnStop: func(ctx context.Context) error {
				return closer.Close()
			},
		})

		return rs
	}),
	fx.Decorate(decorateEnvContext),
	fx.Decorate(decorateConfigProvider),
	fx.Provide(func() Context {
		return Context{
			Environment:        "local",
			RuntimeEnvironment: "local",
		}
	}),
)
