package bootstrap

import (
	"gin-storefront/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	DBModule,
	JWTModule,
	components.PersistenceModule,
	components.RepositoryModule,
	CatalogModule,
	components.UseCaseModule,
	components.HandlerModule,
)
