package main

import (
	"github.com/jdtbridge/jdtls-bridge/src/jdtls/app"
	"go.uber.org/fx"
)

func opts() fx.Option {
	return fx.Options(
		app.Module,
	)
}

func main() {
	fx.New(opts()).Run()
}
