package commands

import (
	"context"

	"book-courier/internal/domain/order"
	"book-courier/internal/infra"
	"book-courier/internal/pkg/clock"
	"book-courier/internal/pkg/errs"
	"book-courier/internal/usecase/shared"
)

var (
	ErrOrderNotFound      = errs.Classified("order not found", errs.ErrNotFound)
	ErrInvalidOrderStatus = errs.Classified("invalid order status", errs.ErrValidation)
)

type OrderCommands interface {
	UpdateStatus(ctx context.Context, id, status string) error
	// Cancel removes the order; stock is not returned.
	Cancel(ctx context.Context, id string) error
}

type orderCommandsImpl struct {
	uow       shared.UnitOfWork
	publisher EventPublisher
	clock     clock.Clock
}

func NewOrderCommands(uow shared.UnitOfWork, publisher EventPublisher, clk clock.Clock) OrderCommands {
	return &orderCommandsImpl{
		uow:       uow,
		publisher: publisher,
		clock:     clk,
	}
}

func (uc *orderCommandsImpl) UpdateStatus(ctx context.Context, id, status string) error {
	s, err := order.NewStatus(status)
	if err != nil {
		return ErrInvalidOrderStatus
	}

	now := uc.clock.Now()
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Orders().UpdateStatus(ctx, id, s, now)
	})
	if err != nil {
		return translateOrderErr(err)
	}

	publish(ctx, uc.publisher, Event{
		Type:       EventOrderStatusChanged,
		Key:        id,
		OccurredAt: now,
		Payload: map[string]string{
			"orderId": id,
			"status":  s.String(),
		},
	})
	return nil
}

func (uc *orderCommandsImpl) Cancel(ctx context.Context, id string) error {
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Orders().Delete(ctx, id)
	})
	return translateOrderErr(err)
}

func translateOrderErr(err error) error {
	if infra.IsKind(err, infra.KindNotFound) || infra.IsKind(err, infra.KindInvalidID) {
		return ErrOrderNotFound
	}
	return err
}
