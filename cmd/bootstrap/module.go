package bootstrap

import (
	"cinebook/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	CatalogModule,
	components.LedgerModule,
	components.UseCaseModule,
	components.HandlerModule,
)
