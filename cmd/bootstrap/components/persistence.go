package components

import (
	"book-courier/internal/infra/readstore"
	"book-courier/internal/infra/repository"
	"book-courier/internal/infra/uow"
	"book-courier/internal/usecase/queries"
	"book-courier/internal/usecase/shared"

	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	readstoreModule,
	repositoryModule,
)

var readstoreModule = fx.Module("persistence/readstore",
	fx.Provide(
		fx.Annotate(
			readstore.NewUserReadStore,
			fx.As(new(queries.UserReadStore)),
		),
		fx.Annotate(
			readstore.NewBookReadStore,
			fx.As(new(queries.BookReadStore)),
		),
		fx.Annotate(
			readstore.NewOrderReadStore,
			fx.As(new(queries.OrderReadStore)),
		),
		fx.Annotate(
			readstore.NewSellerRequestReadStore,
			fx.As(new(queries.SellerRequestReadStore)),
		),
	),
)

// Repositories stay concrete; use cases only reach them through the UnitOfWork.
var repositoryModule = fx.Module("persistence/repository",
	fx.Provide(
		repository.NewBookRepository,
		repository.NewOrderRepository,
		repository.NewUserRepository,
		repository.NewSellerRequestRepository,
		fx.Annotate(
			uow.NewMongoUoW,
			fx.As(new(shared.UnitOfWork)),
		),
	),
)
