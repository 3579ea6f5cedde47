package commands

import (
	"context"

	"book-courier/internal/domain/book"
	"book-courier/internal/domain/user"
	"book-courier/internal/infra"
	"book-courier/internal/pkg/clock"
	"book-courier/internal/pkg/errs"
	"book-courier/internal/usecase/shared"
)

var (
	ErrBookNotFound = errs.Classified("book not found", errs.ErrNotFound)
	ErrInvalidBook  = errs.Classified("invalid book", errs.ErrValidation)
)

type CreateBookRequest = book.Params

type CreateBookResult struct {
	ID string
}

type BookCommands interface {
	Create(ctx context.Context, req CreateBookRequest, sellerEmail string) (*CreateBookResult, error)
	Update(ctx context.Context, id string, patch book.Patch) error
}

type bookCommandsImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewBookCommands(uow shared.UnitOfWork, clk clock.Clock) BookCommands {
	return &bookCommandsImpl{
		uow:   uow,
		clock: clk,
	}
}

func (uc *bookCommandsImpl) Create(ctx context.Context, req CreateBookRequest, sellerEmail string) (*CreateBookResult, error) {
	email, err := user.NewEmail(sellerEmail)
	if err != nil {
		return nil, errs.Wrap(ErrInvalidBook, err.Error())
	}

	var id string
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		seller := book.Seller{Email: email.Value()}
		profile, ferr := tx.Users().FindByEmail(ctx, email.Value())
		switch {
		case ferr == nil:
			seller.Name = profile.Name
			seller.Image = profile.Image
		case !infra.IsKind(ferr, infra.KindNotFound):
			return ferr
		}

		b, berr := book.NewBook(req, seller, uc.clock.Now())
		if berr != nil {
			return errs.Wrap(ErrInvalidBook, berr.Error())
		}

		var cerr error
		id, cerr = tx.Books().Create(ctx, b)
		return cerr
	})
	if err != nil {
		return nil, err
	}

	return &CreateBookResult{ID: id}, nil
}

func (uc *bookCommandsImpl) Update(ctx context.Context, id string, patch book.Patch) error {
	normalized, err := patch.Normalize()
	if err != nil {
		return errs.Wrap(ErrInvalidBook, err.Error())
	}
	if normalized.IsEmpty() {
		return errs.Wrap(ErrInvalidBook, "no fields to update")
	}

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Books().Update(ctx, id, normalized, uc.clock.Now())
	})
	if infra.IsKind(err, infra.KindNotFound) || infra.IsKind(err, infra.KindInvalidID) {
		return ErrBookNotFound
	}
	return err
}
