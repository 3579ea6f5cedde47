package uow

import (
	"context"

	"book-courier/internal/infra/repository"
	"book-courier/internal/pkg/config"
	"book-courier/internal/pkg/errs"
	"book-courier/internal/usecase/shared"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readconcern"
	"go.mongodb.org/mongo-driver/mongo/writeconcern"
)

var errSessionStart = errs.New("failed to start mongo session")

type MongoUoW struct {
	client        *mongo.Client
	transactional bool
	repos         repos
}

type repos struct {
	books          *repository.BookRepository
	orders         *repository.OrderRepository
	users          *repository.UserRepository
	sellerRequests *repository.SellerRequestRepository
}

func NewMongoUoW(
	client *mongo.Client,
	cfg config.Config,
	books *repository.BookRepository,
	orders *repository.OrderRepository,
	users *repository.UserRepository,
	sellerRequests *repository.SellerRequestRepository,
) *MongoUoW {
	return &MongoUoW{
		client:        client,
		transactional: cfg.Mongo.Transactions,
		repos: repos{
			books:          books,
			orders:         orders,
			users:          users,
			sellerRequests: sellerRequests,
		},
	}
}

// Within runs fn inside a multi-document transaction when enabled. The driver retries
// fn on TransientTransactionError and retries the commit on UnknownTransactionCommitResult.
// Without transactions fn runs directly and each write commits on its own.
func (u *MongoUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	if !u.transactional {
		return fn(ctx, &mongoTx{repos: u.repos})
	}

	sess, err := u.client.StartSession()
	if err != nil {
		return errs.Mark(err, errSessionStart)
	}
	defer sess.EndSession(ctx)

	txOpts := options.Transaction().
		SetReadConcern(readconcern.Snapshot()).
		SetWriteConcern(writeconcern.Majority())

	_, err = sess.WithTransaction(ctx, func(sc mongo.SessionContext) (any, error) {
		// repositories pick the session up from sc
		return nil, fn(sc, &mongoTx{repos: u.repos, transactional: true})
	}, txOpts)
	return err
}

type mongoTx struct {
	repos         repos
	transactional bool
}

func (t *mongoTx) Books() shared.BookRepository                   { return t.repos.books }
func (t *mongoTx) Orders() shared.OrderRepository                 { return t.repos.orders }
func (t *mongoTx) Users() shared.UserRepository                   { return t.repos.users }
func (t *mongoTx) SellerRequests() shared.SellerRequestRepository { return t.repos.sellerRequests }
func (t *mongoTx) Transactional() bool                            { return t.transactional }
