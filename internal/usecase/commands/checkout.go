package commands

import (
	"context"
	"strings"
	"time"

	"book-courier/internal/domain/order"
	"book-courier/internal/domain/user"
	"book-courier/internal/infra"
	"book-courier/internal/pkg/clock"
	"book-courier/internal/pkg/config"
	"book-courier/internal/pkg/errs"
	"book-courier/internal/pkg/logctx"
	"book-courier/internal/pkg/metrics"
	"book-courier/internal/pkg/money"
	"book-courier/internal/usecase/shared"

	"github.com/shopspring/decimal"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

var (
	ErrPaymentIncomplete      = errs.Classified("payment not completed", errs.ErrValidation)
	ErrOutOfStock             = errs.Classified("book out of stock", errs.ErrValidation)
	ErrSessionIDRequired      = errs.Classified("session id is required", errs.ErrValidation)
	ErrInvalidCheckout        = errs.Classified("invalid checkout request", errs.ErrValidation)
	ErrConfirmationInProgress = errs.Classified("payment confirmation already in progress", errs.ErrConflict)

	// a concurrent confirmation inserted the order first
	errDuplicateTransaction = errs.New("order already recorded for transaction")
)

var tracer = otel.Tracer("book-courier/usecase/commands")

type CreateSessionRequest struct {
	BookID        string
	Title         string
	Description   string
	Image         string
	Price         decimal.Decimal
	Quantity      int
	CustomerEmail string
}

type ConfirmPaymentResult struct {
	OrderID       string
	TransactionID string
	IsExisting    bool
}

type CheckoutCommands interface {
	// CreateSession asks the payment processor for a hosted checkout page and returns its URL.
	CreateSession(ctx context.Context, req CreateSessionRequest) (string, error)
	// ConfirmPayment turns a paid checkout session into exactly one order.
	ConfirmPayment(ctx context.Context, sessionID string) (*ConfirmPaymentResult, error)
}

type checkoutCommandsImpl struct {
	uow       shared.UnitOfWork
	gateway   PaymentGateway
	locker    ConfirmationLocker
	publisher EventPublisher
	metrics   CheckoutMetrics
	clock     clock.Clock
	client    config.ClientConfig
}

func NewCheckoutCommands(
	uow shared.UnitOfWork,
	gateway PaymentGateway,
	locker ConfirmationLocker,
	publisher EventPublisher,
	m CheckoutMetrics,
	clk clock.Clock,
	cfg config.Config,
) CheckoutCommands {
	return &checkoutCommandsImpl{
		uow:       uow,
		gateway:   gateway,
		locker:    locker,
		publisher: publisher,
		metrics:   m,
		clock:     clk,
		client:    cfg.Client,
	}
}

func (uc *checkoutCommandsImpl) CreateSession(ctx context.Context, req CreateSessionRequest) (string, error) {
	ctx, span := tracer.Start(ctx, "checkout.create_session",
		trace.WithAttributes(attribute.String("book.id", req.BookID)))
	defer span.End()

	params, err := uc.sessionParams(req)
	if err != nil {
		return "", err
	}

	session, err := uc.gateway.CreateCheckoutSession(ctx, params)
	uc.metrics.CheckoutSessionCreated(err == nil)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "create checkout session")
		return "", errs.Wrap(err, "create checkout session")
	}

	span.SetAttributes(attribute.String("checkout.session_id", session.ID))
	return session.URL, nil
}

func (uc *checkoutCommandsImpl) sessionParams(req CreateSessionRequest) (CheckoutSessionParams, error) {
	bookID := strings.TrimSpace(req.BookID)
	if bookID == "" {
		return CheckoutSessionParams{}, errs.Wrap(ErrInvalidCheckout, "book id is required")
	}
	if strings.TrimSpace(req.Title) == "" {
		return CheckoutSessionParams{}, errs.Wrap(ErrInvalidCheckout, "title is required")
	}
	if !req.Price.IsPositive() {
		return CheckoutSessionParams{}, errs.Wrap(ErrInvalidCheckout, "price must be greater than zero")
	}
	email, err := user.NewEmail(req.CustomerEmail)
	if err != nil {
		return CheckoutSessionParams{}, errs.Wrap(ErrInvalidCheckout, err.Error())
	}
	unitAmount, err := money.ToMinorUnits(req.Price)
	if err != nil {
		return CheckoutSessionParams{}, errs.Wrap(ErrInvalidCheckout, err.Error())
	}
	quantity := req.Quantity
	if quantity < 1 {
		quantity = 1
	}

	return CheckoutSessionParams{
		LineItem: CheckoutLineItem{
			Name:        strings.TrimSpace(req.Title),
			Description: strings.TrimSpace(req.Description),
			Image:       strings.TrimSpace(req.Image),
			UnitAmount:  unitAmount,
			Quantity:    int64(quantity),
		},
		CustomerEmail: email.Value(),
		Metadata: map[string]string{
			MetadataBookID:   bookID,
			MetadataCustomer: email.Value(),
		},
		SuccessURL: uc.client.SuccessURL(),
		CancelURL:  uc.client.CancelURL(bookID),
	}, nil
}

func (uc *checkoutCommandsImpl) ConfirmPayment(ctx context.Context, sessionID string) (result *ConfirmPaymentResult, err error) {
	sessionID = strings.TrimSpace(sessionID)
	ctx, span := tracer.Start(ctx, "checkout.confirm_payment",
		trace.WithAttributes(attribute.String("checkout.session_id", sessionID)))
	defer func() {
		uc.metrics.PaymentConfirmed(confirmationResult(result, err))
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, "confirm payment")
		}
		span.End()
	}()

	if sessionID == "" {
		return nil, ErrSessionIDRequired
	}

	release, err := uc.locker.Acquire(ctx, "checkout:confirm:"+sessionID)
	if err != nil {
		if errs.Is(err, ErrLockHeld) {
			return nil, ErrConfirmationInProgress
		}
		return nil, errs.Wrap(err, "acquire confirmation lock")
	}
	defer release(context.WithoutCancel(ctx))

	session, err := uc.gateway.RetrieveCheckoutSession(ctx, sessionID)
	if err != nil {
		return nil, errs.Wrap(err, "retrieve checkout session")
	}
	if !session.Paid() {
		return nil, ErrPaymentIncomplete
	}

	transactionID := session.TransactionID()
	span.SetAttributes(attribute.String("payment.transaction_id", transactionID))

	customer := session.Metadata[MetadataCustomer]
	if customer == "" {
		customer = session.CustomerEmail
	}
	now := uc.clock.Now()

	var (
		existing *shared.OrderSnapshot
		created  *order.Order
		orderID  string
	)
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		existing, created, orderID = nil, nil, ""

		snap, ferr := tx.Orders().FindByTransactionID(ctx, transactionID)
		if ferr == nil {
			existing = snap
			return nil
		}
		if !infra.IsKind(ferr, infra.KindNotFound) {
			return ferr
		}

		b, ferr := tx.Books().FindByID(ctx, session.Metadata[MetadataBookID])
		if ferr != nil {
			if infra.IsKind(ferr, infra.KindNotFound) || infra.IsKind(ferr, infra.KindInvalidID) {
				return ErrBookNotFound
			}
			return ferr
		}
		if b.Quantity < 1 {
			return ErrOutOfStock
		}

		o, oerr := order.NewOrder(order.Params{
			BookID:        b.ID,
			Title:         b.Title,
			Image:         b.Image,
			Category:      b.Category,
			TransactionID: transactionID,
			Customer:      customer,
			Seller:        b.Seller,
			Price:         money.FromMinorUnits(session.AmountTotal),
		}, now)
		if oerr != nil {
			return errs.Wrap(ErrInvalidCheckout, oerr.Error())
		}

		taken, derr := tx.Books().DecrementStock(ctx, b.ID, session.PaymentStatus, now)
		if derr != nil {
			return derr
		}
		if !taken {
			return ErrOutOfStock
		}

		id, cerr := tx.Orders().Create(ctx, o)
		if cerr != nil {
			if !tx.Transactional() {
				if rerr := tx.Books().RestoreStock(ctx, b.ID, now); rerr != nil {
					logctx.From(ctx).Error("failed to restore stock after order insert failure",
						zap.String("book_id", b.ID),
						zap.String("transaction_id", transactionID),
						zap.Error(rerr))
				}
			}
			if infra.IsKind(cerr, infra.KindDuplicateKey) {
				return errDuplicateTransaction
			}
			return cerr
		}

		created, orderID = o, id
		return nil
	})

	switch {
	case errs.Is(err, errDuplicateTransaction):
		return uc.loadExisting(ctx, transactionID)
	case errs.Is(err, ErrOutOfStock):
		// a twin confirmation of the same payment may have taken the last copy
		if res, lerr := uc.loadExisting(ctx, transactionID); lerr == nil {
			return res, nil
		}
		return nil, err
	case err != nil:
		return nil, err
	case existing != nil:
		return &ConfirmPaymentResult{OrderID: existing.ID, TransactionID: transactionID, IsExisting: true}, nil
	}

	publish(ctx, uc.publisher, Event{
		Type:       EventOrderCreated,
		Key:        orderID,
		OccurredAt: now,
		Payload:    newOrderCreatedPayload(orderID, created),
	})
	logctx.From(ctx).Info("order created from checkout session",
		zap.String("order_id", orderID),
		zap.String("transaction_id", transactionID),
		zap.String("book_id", created.BookID()))

	return &ConfirmPaymentResult{OrderID: orderID, TransactionID: transactionID}, nil
}

func (uc *checkoutCommandsImpl) loadExisting(ctx context.Context, transactionID string) (*ConfirmPaymentResult, error) {
	var snap *shared.OrderSnapshot
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var ferr error
		snap, ferr = tx.Orders().FindByTransactionID(ctx, transactionID)
		return ferr
	})
	if err != nil {
		return nil, errs.Wrap(err, "load order recorded by concurrent confirmation")
	}
	return &ConfirmPaymentResult{OrderID: snap.ID, TransactionID: transactionID, IsExisting: true}, nil
}

type orderCreatedPayload struct {
	OrderID       string    `json:"orderId"`
	BookID        string    `json:"bookId"`
	TransactionID string    `json:"transactionId"`
	Customer      string    `json:"customer"`
	SellerEmail   string    `json:"sellerEmail"`
	Price         string    `json:"price"`
	CreatedAt     time.Time `json:"createdAt"`
}

func newOrderCreatedPayload(orderID string, o *order.Order) orderCreatedPayload {
	return orderCreatedPayload{
		OrderID:       orderID,
		BookID:        o.BookID(),
		TransactionID: o.TransactionID(),
		Customer:      o.Customer(),
		SellerEmail:   o.Seller().Email,
		Price:         o.Price().StringFixed(2),
		CreatedAt:     o.CreatedAt(),
	}
}

func confirmationResult(result *ConfirmPaymentResult, err error) string {
	switch {
	case err == nil && result != nil && result.IsExisting:
		return metrics.ResultExisting
	case err == nil:
		return metrics.ResultCreated
	case errs.Is(err, ErrPaymentIncomplete):
		return metrics.ResultUnpaid
	case errs.Is(err, ErrOutOfStock):
		return metrics.ResultOutOfStock
	case errs.Is(err, ErrBookNotFound):
		return metrics.ResultNotFound
	case errs.Is(err, ErrConfirmationInProgress):
		return metrics.ResultInProgress
	default:
		return metrics.ResultError
	}
}
