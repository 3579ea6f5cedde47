//go:build unit

package commands_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"book-courier/internal/domain/order"
	"book-courier/internal/infra/lock"
	"book-courier/internal/pkg/clock"
	"book-courier/internal/pkg/config"
	"book-courier/internal/pkg/errs"
	"book-courier/internal/pkg/metrics"
	"book-courier/internal/usecase/commands"
	"book-courier/tests/common/builder"
	"book-courier/tests/common/memstore"
	commandsmock "book-courier/tests/mock/commands"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type CheckoutCommandsTestSuite struct {
	suite.Suite
	mockCtrl  *gomock.Controller
	gateway   *commandsmock.MockPaymentGateway
	locker    *commandsmock.MockConfirmationLocker
	publisher *commandsmock.MockEventPublisher
	metrics   *commandsmock.MockCheckoutMetrics
	store     *memstore.Store
	clock     *clock.MockClock
	cfg       config.Config
	bookID    string
}

func (s *CheckoutCommandsTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.gateway = commandsmock.NewMockPaymentGateway(s.mockCtrl)
	s.locker = commandsmock.NewMockConfirmationLocker(s.mockCtrl)
	s.publisher = commandsmock.NewMockEventPublisher(s.mockCtrl)
	s.metrics = commandsmock.NewMockCheckoutMetrics(s.mockCtrl)
	s.clock = clock.NewMockClock(time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC))
	s.cfg = config.NewTestConfig()
	s.store = memstore.New()
	s.bookID = s.seedBook(s.store, 3)
}

func (s *CheckoutCommandsTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestCheckoutCommandsSuite(t *testing.T) {
	suite.Run(t, new(CheckoutCommandsTestSuite))
}

func (s *CheckoutCommandsTestSuite) seedBook(store *memstore.Store, quantity int) string {
	b := builder.NewBookBuilder()
	return store.PutBook(memstore.Book{
		ID:       b.ID,
		Title:    b.Title,
		Image:    b.Image,
		Category: b.Category,
		Price:    b.Price,
		Quantity: quantity,
		Seller:   b.Seller,
	})
}

func (s *CheckoutCommandsTestSuite) newCommands(store *memstore.Store) commands.CheckoutCommands {
	return commands.NewCheckoutCommands(store, s.gateway, s.locker, s.publisher, s.metrics, s.clock, s.cfg)
}

func (s *CheckoutCommandsTestSuite) expectLock(sessionID string) {
	s.locker.EXPECT().Acquire(gomock.Any(), "checkout:confirm:"+sessionID).
		Return(func(context.Context) {}, nil).Times(1)
}

// ================================================================================
// TestCreateSession
// ================================================================================

func (s *CheckoutCommandsTestSuite) TestCreateSession() {
	req := commands.CreateSessionRequest{
		BookID:        s.bookID,
		Title:         "  The Go Programming Language ",
		Description:   "A classic introduction",
		Image:         "https://example.com/gopl.png",
		Price:         decimal.RequireFromString("35.50"),
		CustomerEmail: "Reader@Example.com",
	}

	s.Run("success: returns the hosted page URL", func() {
		s.gateway.EXPECT().CreateCheckoutSession(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, p commands.CheckoutSessionParams) (*commands.CheckoutSession, error) {
				s.Equal("The Go Programming Language", p.LineItem.Name)
				s.Equal(int64(3550), p.LineItem.UnitAmount)
				s.Equal(int64(1), p.LineItem.Quantity)
				s.Equal("reader@example.com", p.CustomerEmail)
				s.Equal(s.bookID, p.Metadata[commands.MetadataBookID])
				s.Equal("reader@example.com", p.Metadata[commands.MetadataCustomer])
				s.Equal("http://localhost:5173/payment-success?session_id={CHECKOUT_SESSION_ID}", p.SuccessURL)
				s.Equal("http://localhost:5173/book/"+s.bookID, p.CancelURL)
				return &commands.CheckoutSession{ID: "cs_1", URL: "https://checkout.stripe.com/c/pay/cs_1"}, nil
			}).Times(1)
		s.metrics.EXPECT().CheckoutSessionCreated(true).Times(1)

		url, err := s.newCommands(s.store).CreateSession(context.Background(), req)
		s.Require().NoError(err)
		s.Equal("https://checkout.stripe.com/c/pay/cs_1", url)
	})

	s.Run("error: invalid requests never reach the processor", func() {
		cases := []struct {
			name   string
			mutate func(*commands.CreateSessionRequest)
		}{
			{name: "missing book id", mutate: func(r *commands.CreateSessionRequest) { r.BookID = " " }},
			{name: "missing title", mutate: func(r *commands.CreateSessionRequest) { r.Title = "" }},
			{name: "zero price", mutate: func(r *commands.CreateSessionRequest) { r.Price = decimal.Zero }},
			{name: "negative price", mutate: func(r *commands.CreateSessionRequest) { r.Price = decimal.NewFromInt(-1) }},
			{name: "invalid customer email", mutate: func(r *commands.CreateSessionRequest) { r.CustomerEmail = "nobody" }},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				r := req
				tc.mutate(&r)
				_, err := s.newCommands(s.store).CreateSession(context.Background(), r)
				s.Require().Error(err)
				s.ErrorIs(err, commands.ErrInvalidCheckout)
				s.True(errs.Is(err, errs.ErrValidation))
			})
		}
	})

	s.Run("error: processor failure is recorded and wrapped", func() {
		s.gateway.EXPECT().CreateCheckoutSession(gomock.Any(), gomock.Any()).
			Return(nil, errors.New("stripe down")).Times(1)
		s.metrics.EXPECT().CheckoutSessionCreated(false).Times(1)

		_, err := s.newCommands(s.store).CreateSession(context.Background(), req)
		s.Require().Error(err)
		s.Contains(err.Error(), "stripe down")
	})
}

// ================================================================================
// TestConfirmPayment
// ================================================================================

func (s *CheckoutCommandsTestSuite) TestConfirmPayment_CreatesOrder() {
	session := builder.NewCheckoutSessionBuilder().With(func(b *builder.CheckoutSessionBuilder) {
		b.BookID = s.bookID
	}).Build()

	s.expectLock(session.ID)
	s.gateway.EXPECT().RetrieveCheckoutSession(gomock.Any(), session.ID).Return(session, nil).Times(1)
	s.publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, e commands.Event) error {
			s.Equal(commands.EventOrderCreated, e.Type)
			return nil
		}).Times(1)
	s.metrics.EXPECT().PaymentConfirmed(metrics.ResultCreated).Times(1)

	res, err := s.newCommands(s.store).ConfirmPayment(context.Background(), session.ID)
	s.Require().NoError(err)
	s.False(res.IsExisting)
	s.Equal("pi_test_123", res.TransactionID)

	o, ok := s.store.Order(res.OrderID)
	s.Require().True(ok)
	s.Equal(s.bookID, o.BookID)
	s.Equal("reader@example.com", o.Customer)
	s.Equal(order.StatusPending, o.Status)
	s.True(decimal.RequireFromString("35.50").Equal(o.Price))
	s.Equal("seller@example.com", o.Seller.Email)

	b, _ := s.store.Book(s.bookID)
	s.Equal(2, b.Quantity)
	s.Equal(commands.PaymentStatusPaid, b.PaymentStatus)
}

func (s *CheckoutCommandsTestSuite) TestConfirmPayment_IsIdempotent() {
	session := builder.NewCheckoutSessionBuilder().With(func(b *builder.CheckoutSessionBuilder) {
		b.BookID = s.bookID
	}).Build()

	s.locker.EXPECT().Acquire(gomock.Any(), gomock.Any()).Return(func(context.Context) {}, nil).Times(2)
	s.gateway.EXPECT().RetrieveCheckoutSession(gomock.Any(), session.ID).Return(session, nil).Times(2)
	s.publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil).Times(1)
	s.metrics.EXPECT().PaymentConfirmed(metrics.ResultCreated).Times(1)
	s.metrics.EXPECT().PaymentConfirmed(metrics.ResultExisting).Times(1)

	uc := s.newCommands(s.store)
	first, err := uc.ConfirmPayment(context.Background(), session.ID)
	s.Require().NoError(err)
	second, err := uc.ConfirmPayment(context.Background(), session.ID)
	s.Require().NoError(err)

	s.Equal(first.OrderID, second.OrderID)
	s.True(second.IsExisting)
	s.Len(s.store.Orders(), 1)
	b, _ := s.store.Book(s.bookID)
	s.Equal(2, b.Quantity)
}

func (s *CheckoutCommandsTestSuite) TestConfirmPayment_FallsBackToSessionData() {
	session := builder.NewCheckoutSessionBuilder().With(func(b *builder.CheckoutSessionBuilder) {
		b.BookID = s.bookID
		b.Customer = ""
		b.CustomerEmail = "buyer@example.com"
	}).WithoutPaymentIntent().Build()

	s.expectLock(session.ID)
	s.gateway.EXPECT().RetrieveCheckoutSession(gomock.Any(), session.ID).Return(session, nil).Times(1)
	s.publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil).Times(1)
	s.metrics.EXPECT().PaymentConfirmed(metrics.ResultCreated).Times(1)

	res, err := s.newCommands(s.store).ConfirmPayment(context.Background(), session.ID)
	s.Require().NoError(err)
	s.Equal(session.ID, res.TransactionID)

	o, _ := s.store.Order(res.OrderID)
	s.Equal("buyer@example.com", o.Customer)
	s.Equal(session.ID, o.TransactionID)
}

func (s *CheckoutCommandsTestSuite) TestConfirmPayment_PublishFailureIsIgnored() {
	session := builder.NewCheckoutSessionBuilder().With(func(b *builder.CheckoutSessionBuilder) {
		b.BookID = s.bookID
	}).Build()

	s.expectLock(session.ID)
	s.gateway.EXPECT().RetrieveCheckoutSession(gomock.Any(), session.ID).Return(session, nil).Times(1)
	s.publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(errors.New("broker down")).Times(1)
	s.metrics.EXPECT().PaymentConfirmed(metrics.ResultCreated).Times(1)

	res, err := s.newCommands(s.store).ConfirmPayment(context.Background(), session.ID)
	s.Require().NoError(err)
	s.NotEmpty(res.OrderID)
}

func (s *CheckoutCommandsTestSuite) TestConfirmPayment_Errors() {
	s.Run("unpaid session creates nothing", func() {
		session := builder.NewCheckoutSessionBuilder().With(func(b *builder.CheckoutSessionBuilder) {
			b.BookID = s.bookID
		}).Unpaid().Build()
		s.expectLock(session.ID)
		s.gateway.EXPECT().RetrieveCheckoutSession(gomock.Any(), session.ID).Return(session, nil).Times(1)
		s.metrics.EXPECT().PaymentConfirmed(metrics.ResultUnpaid).Times(1)

		_, err := s.newCommands(s.store).ConfirmPayment(context.Background(), session.ID)
		s.ErrorIs(err, commands.ErrPaymentIncomplete)
		s.True(errs.Is(err, errs.ErrValidation))
		s.Empty(s.store.Orders())
	})

	s.Run("out of stock", func() {
		store := memstore.New()
		bookID := s.seedBook(store, 0)
		session := builder.NewCheckoutSessionBuilder().With(func(b *builder.CheckoutSessionBuilder) {
			b.BookID = bookID
		}).Build()
		s.expectLock(session.ID)
		s.gateway.EXPECT().RetrieveCheckoutSession(gomock.Any(), session.ID).Return(session, nil).Times(1)
		s.metrics.EXPECT().PaymentConfirmed(metrics.ResultOutOfStock).Times(1)

		_, err := s.newCommands(store).ConfirmPayment(context.Background(), session.ID)
		s.ErrorIs(err, commands.ErrOutOfStock)
		s.Empty(store.Orders())
		b, _ := store.Book(bookID)
		s.Equal(0, b.Quantity)
	})

	s.Run("paid session without purchaser email", func() {
		session := builder.NewCheckoutSessionBuilder().With(func(b *builder.CheckoutSessionBuilder) {
			b.BookID = s.bookID
			b.Customer = ""
			b.CustomerEmail = ""
		}).Build()
		s.expectLock(session.ID)
		s.gateway.EXPECT().RetrieveCheckoutSession(gomock.Any(), session.ID).Return(session, nil).Times(1)
		s.metrics.EXPECT().PaymentConfirmed(metrics.ResultError).Times(1)

		_, err := s.newCommands(s.store).ConfirmPayment(context.Background(), session.ID)
		s.ErrorIs(err, commands.ErrInvalidCheckout)
		s.True(errs.Is(err, errs.ErrValidation))
		s.Contains(err.Error(), "customer email is required")
		s.Empty(s.store.Orders())
		b, _ := s.store.Book(s.bookID)
		s.Equal(3, b.Quantity)
	})

	s.Run("unknown book", func() {
		session := builder.NewCheckoutSessionBuilder().With(func(b *builder.CheckoutSessionBuilder) {
			b.BookID = "65a0000000000000000000ff"
		}).Build()
		s.expectLock(session.ID)
		s.gateway.EXPECT().RetrieveCheckoutSession(gomock.Any(), session.ID).Return(session, nil).Times(1)
		s.metrics.EXPECT().PaymentConfirmed(metrics.ResultNotFound).Times(1)

		_, err := s.newCommands(s.store).ConfirmPayment(context.Background(), session.ID)
		s.ErrorIs(err, commands.ErrBookNotFound)
	})

	s.Run("malformed book id", func() {
		session := builder.NewCheckoutSessionBuilder().With(func(b *builder.CheckoutSessionBuilder) {
			b.BookID = "not-an-object-id"
		}).Build()
		s.expectLock(session.ID)
		s.gateway.EXPECT().RetrieveCheckoutSession(gomock.Any(), session.ID).Return(session, nil).Times(1)
		s.metrics.EXPECT().PaymentConfirmed(metrics.ResultNotFound).Times(1)

		_, err := s.newCommands(s.store).ConfirmPayment(context.Background(), session.ID)
		s.ErrorIs(err, commands.ErrBookNotFound)
	})

	s.Run("blank session id", func() {
		s.metrics.EXPECT().PaymentConfirmed(metrics.ResultError).Times(1)

		_, err := s.newCommands(s.store).ConfirmPayment(context.Background(), "  ")
		s.ErrorIs(err, commands.ErrSessionIDRequired)
	})

	s.Run("confirmation already running", func() {
		s.locker.EXPECT().Acquire(gomock.Any(), "checkout:confirm:cs_busy").
			Return(nil, commands.ErrLockHeld).Times(1)
		s.metrics.EXPECT().PaymentConfirmed(metrics.ResultInProgress).Times(1)

		_, err := s.newCommands(s.store).ConfirmPayment(context.Background(), "cs_busy")
		s.ErrorIs(err, commands.ErrConfirmationInProgress)
		s.True(errs.Is(err, errs.ErrConflict))
	})

	s.Run("processor failure", func() {
		s.expectLock("cs_fail")
		s.gateway.EXPECT().RetrieveCheckoutSession(gomock.Any(), "cs_fail").
			Return(nil, errors.New("no such checkout.session")).Times(1)
		s.metrics.EXPECT().PaymentConfirmed(metrics.ResultError).Times(1)

		_, err := s.newCommands(s.store).ConfirmPayment(context.Background(), "cs_fail")
		s.Require().Error(err)
		s.Contains(err.Error(), "no such checkout.session")
	})
}

// ================================================================================
// Concurrent confirmations
// ================================================================================

func (s *CheckoutCommandsTestSuite) TestConfirmPayment_ConcurrentInsertWins() {
	for _, tc := range []struct {
		name  string
		store *memstore.Store
	}{
		{name: "standalone store compensates stock", store: memstore.New()},
		{name: "transactional store rolls back", store: memstore.New(memstore.Transactional())},
	} {
		s.Run(tc.name, func() {
			bookID := s.seedBook(tc.store, 3)
			session := builder.NewCheckoutSessionBuilder().With(func(b *builder.CheckoutSessionBuilder) {
				b.BookID = bookID
			}).Build()

			var winner string
			tc.store.BeforeOrderInsert = func(st *memstore.Store, o *order.Order) {
				st.BeforeOrderInsert = nil
				winner = st.PutOrder(memstore.Order{
					BookID:        o.BookID(),
					TransactionID: o.TransactionID(),
					Customer:      o.Customer(),
					Status:        order.StatusPending,
				})
			}

			s.expectLock(session.ID)
			s.gateway.EXPECT().RetrieveCheckoutSession(gomock.Any(), session.ID).Return(session, nil).Times(1)
			s.metrics.EXPECT().PaymentConfirmed(metrics.ResultExisting).Times(1)

			res, err := s.newCommands(tc.store).ConfirmPayment(context.Background(), session.ID)
			s.Require().NoError(err)
			s.True(res.IsExisting)
			s.Equal(winner, res.OrderID)
			s.Len(tc.store.Orders(), 1)

			// the winner took its copy outside this store, so ours must be back
			b, _ := tc.store.Book(bookID)
			s.Equal(3, b.Quantity)
		})
	}
}

func (s *CheckoutCommandsTestSuite) TestConfirmPayment_ParallelDuplicates() {
	const workers = 8
	store := memstore.New()
	bookID := s.seedBook(store, workers)
	session := builder.NewCheckoutSessionBuilder().With(func(b *builder.CheckoutSessionBuilder) {
		b.BookID = bookID
	}).Build()

	s.gateway.EXPECT().RetrieveCheckoutSession(gomock.Any(), session.ID).Return(session, nil).Times(workers)
	s.publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil).Times(1)
	s.metrics.EXPECT().PaymentConfirmed(metrics.ResultCreated).Times(1)
	s.metrics.EXPECT().PaymentConfirmed(metrics.ResultExisting).Times(workers - 1)

	// without a lock every worker races through the store
	uc := commands.NewCheckoutCommands(store, s.gateway, lock.NopLocker{}, s.publisher, s.metrics, s.clock, s.cfg)

	results := make([]*commands.ConfirmPaymentResult, workers)
	failures := make([]error, workers)
	var wg sync.WaitGroup
	for i := range workers {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], failures[i] = uc.ConfirmPayment(context.Background(), session.ID)
		}(i)
	}
	wg.Wait()

	created := 0
	for i := range workers {
		s.Require().NoError(failures[i])
		s.Equal(results[0].OrderID, results[i].OrderID)
		if !results[i].IsExisting {
			created++
		}
	}
	s.Equal(1, created)
	s.Len(store.Orders(), 1)
	b, _ := store.Book(bookID)
	s.Equal(workers-1, b.Quantity)
}
