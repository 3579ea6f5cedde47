package commands

import (
	"context"

	"book-courier/internal/domain/sellerrequest"
	"book-courier/internal/domain/user"
	"book-courier/internal/infra"
	"book-courier/internal/pkg/clock"
	"book-courier/internal/pkg/errs"
	"book-courier/internal/pkg/logctx"
	"book-courier/internal/usecase/shared"

	"go.uber.org/zap"
)

var (
	ErrSellerRequestExists   = errs.Classified("seller request already submitted", errs.ErrConflict)
	ErrSellerRequestNotFound = errs.Classified("seller request not found", errs.ErrNotFound)
	ErrAlreadySeller         = errs.Classified("user already has seller privileges", errs.ErrConflict)
)

// Promotion transitions recorded in metrics.
const (
	PromotionRequested = "requested"
	PromotionApproved  = "approved"
	PromotionRejected  = "rejected"
)

type SellerRequestCommands interface {
	Request(ctx context.Context, email string) error
	// Approve promotes the requester to seller and consumes the request.
	Approve(ctx context.Context, email string) error
	Reject(ctx context.Context, email string) error
}

type sellerRequestCommandsImpl struct {
	uow       shared.UnitOfWork
	publisher EventPublisher
	metrics   PromotionMetrics
	clock     clock.Clock
}

func NewSellerRequestCommands(
	uow shared.UnitOfWork,
	publisher EventPublisher,
	m PromotionMetrics,
	clk clock.Clock,
) SellerRequestCommands {
	return &sellerRequestCommandsImpl{
		uow:       uow,
		publisher: publisher,
		metrics:   m,
		clock:     clk,
	}
}

func (uc *sellerRequestCommandsImpl) Request(ctx context.Context, email string) error {
	e, err := user.NewEmail(email)
	if err != nil {
		return errs.Wrap(ErrInvalidUser, err.Error())
	}

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		current, ferr := tx.Users().FindByEmail(ctx, e.Value())
		switch {
		case ferr == nil:
			if current.Role == user.RoleSeller || current.Role == user.RoleAdmin {
				return ErrAlreadySeller
			}
		case !infra.IsKind(ferr, infra.KindNotFound):
			return ferr
		}

		cerr := tx.SellerRequests().Create(ctx, sellerrequest.NewSellerRequest(e, uc.clock.Now()))
		if infra.IsKind(cerr, infra.KindDuplicateKey) {
			return ErrSellerRequestExists
		}
		return cerr
	})
	if err != nil {
		return err
	}

	uc.metrics.PromotionTransition(PromotionRequested)
	return nil
}

func (uc *sellerRequestCommandsImpl) Approve(ctx context.Context, email string) error {
	e, err := user.NewEmail(email)
	if err != nil {
		return ErrSellerRequestNotFound
	}

	now := uc.clock.Now()
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		deleted, derr := tx.SellerRequests().DeleteByEmail(ctx, e.Value())
		if derr != nil {
			return derr
		}
		if !deleted {
			return ErrSellerRequestNotFound
		}

		uerr := tx.Users().UpdateRole(ctx, e.Value(), user.RoleSeller, now)
		if uerr == nil {
			return nil
		}
		if !tx.Transactional() {
			if rerr := tx.SellerRequests().Create(ctx, sellerrequest.NewSellerRequest(e, now)); rerr != nil {
				logctx.From(ctx).Error("failed to restore seller request after role update failure",
					zap.String("email", e.Value()),
					zap.Error(rerr))
			}
		}
		if infra.IsKind(uerr, infra.KindNotFound) {
			return ErrUserNotFound
		}
		return uerr
	})
	if err != nil {
		return err
	}

	uc.metrics.PromotionTransition(PromotionApproved)
	publish(ctx, uc.publisher, Event{
		Type:       EventSellerPromoted,
		Key:        e.Value(),
		OccurredAt: now,
		Payload:    map[string]string{"email": e.Value(), "role": user.RoleSeller.String()},
	})
	return nil
}

func (uc *sellerRequestCommandsImpl) Reject(ctx context.Context, email string) error {
	normalized := user.NormalizeEmail(email)

	var deleted bool
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var derr error
		deleted, derr = tx.SellerRequests().DeleteByEmail(ctx, normalized)
		return derr
	})
	if err != nil {
		return err
	}
	if !deleted {
		return ErrSellerRequestNotFound
	}

	uc.metrics.PromotionTransition(PromotionRejected)
	return nil
}
