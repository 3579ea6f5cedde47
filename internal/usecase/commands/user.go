package commands

import (
	"context"

	"book-courier/internal/domain/user"
	"book-courier/internal/infra"
	"book-courier/internal/pkg/clock"
	"book-courier/internal/pkg/errs"
	"book-courier/internal/usecase/shared"
)

var (
	ErrUserNotFound = errs.Classified("user not found", errs.ErrNotFound)
	ErrInvalidUser  = errs.Classified("invalid user", errs.ErrValidation)
	ErrInvalidRole  = errs.Classified("invalid role", errs.ErrValidation)
)

type RegisterUserRequest struct {
	Email string
	Name  string
	Image string
}

type RegisterUserResult struct {
	Created bool
}

type UserCommands interface {
	// Register inserts a first-time user as a customer or refreshes the login of a known one.
	Register(ctx context.Context, req RegisterUserRequest) (*RegisterUserResult, error)
	UpdateProfile(ctx context.Context, email string, profile user.Profile) error
	// UpdateRole sets any valid role and clears a pending promotion request.
	UpdateRole(ctx context.Context, email, role string) error
}

type userCommandsImpl struct {
	uow       shared.UnitOfWork
	publisher EventPublisher
	clock     clock.Clock
}

func NewUserCommands(uow shared.UnitOfWork, publisher EventPublisher, clk clock.Clock) UserCommands {
	return &userCommandsImpl{
		uow:       uow,
		publisher: publisher,
		clock:     clk,
	}
}

func (uc *userCommandsImpl) Register(ctx context.Context, req RegisterUserRequest) (*RegisterUserResult, error) {
	email, err := user.NewEmail(req.Email)
	if err != nil {
		return nil, errs.Wrap(ErrInvalidUser, err.Error())
	}
	u, err := user.NewUser(email, req.Name, req.Image, uc.clock.Now())
	if err != nil {
		return nil, errs.Wrap(ErrInvalidUser, err.Error())
	}

	var created bool
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var uerr error
		created, uerr = tx.Users().Upsert(ctx, u)
		return uerr
	})
	if err != nil {
		return nil, err
	}

	return &RegisterUserResult{Created: created}, nil
}

func (uc *userCommandsImpl) UpdateProfile(ctx context.Context, email string, profile user.Profile) error {
	if err := profile.Validate(); err != nil {
		return errs.Wrap(ErrInvalidUser, err.Error())
	}
	if profile.IsEmpty() {
		return errs.Wrap(ErrInvalidUser, "no fields to update")
	}

	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Users().UpdateProfile(ctx, user.NormalizeEmail(email), profile, uc.clock.Now())
	})
	if infra.IsKind(err, infra.KindNotFound) {
		return ErrUserNotFound
	}
	return err
}

func (uc *userCommandsImpl) UpdateRole(ctx context.Context, email, role string) error {
	r, err := user.NewRole(role)
	if err != nil {
		return ErrInvalidRole
	}
	normalized := user.NormalizeEmail(email)
	if normalized == "" {
		return errs.Wrap(ErrInvalidUser, "email is required")
	}

	now := uc.clock.Now()
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if uerr := tx.Users().UpdateRole(ctx, normalized, r, now); uerr != nil {
			return uerr
		}
		_, derr := tx.SellerRequests().DeleteByEmail(ctx, normalized)
		return derr
	})
	if infra.IsKind(err, infra.KindNotFound) {
		return ErrUserNotFound
	}
	if err != nil {
		return err
	}

	if r == user.RoleSeller {
		publish(ctx, uc.publisher, Event{
			Type:       EventSellerPromoted,
			Key:        normalized,
			OccurredAt: now,
			Payload:    map[string]string{"email": normalized, "role": r.String()},
		})
	}
	return nil
}
