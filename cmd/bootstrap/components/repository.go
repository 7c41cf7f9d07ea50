package components

import (
	"gin-storefront/internal/infra/readstore"
	"gin-storefront/internal/infra/uow"
	"gin-storefront/internal/usecase/shared"

	"go.uber.org/fx"
)

// RepositoryModule exposes the write side. Repositories are created per transaction by the UoW.
var RepositoryModule = fx.Module("repository",
	fx.Provide(
		uow.NewPostgresUoW,
		NewTxRunner,
	),
)

func NewTxRunner(u shared.UnitOfWork) readstore.TxRunner {
	return u
}
