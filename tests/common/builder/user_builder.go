//go:build unit || e2e

package builder

import (
	"time"

	"book-courier/internal/domain/user"
	"book-courier/internal/usecase/queries"
	"book-courier/internal/usecase/shared"
)

type UserBuilder struct {
	Email string
	Name  string
	Image string
	Role  string
	Now   time.Time
}

func NewUserBuilder() *UserBuilder {
	return &UserBuilder{
		Email: "reader@example.com",
		Name:  "Test Reader",
		Image: "https://example.com/avatar.png",
		Role:  "customer",
		Now:   time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC),
	}
}

func (u *UserBuilder) With(mutate func(*UserBuilder)) *UserBuilder {
	mutate(u)
	return u
}

func (u *UserBuilder) WithEmail(email string) *UserBuilder {
	u.Email = email
	return u
}

func (u *UserBuilder) WithName(name string) *UserBuilder {
	u.Name = name
	return u
}

func (u *UserBuilder) WithRole(role string) *UserBuilder {
	u.Role = role
	return u
}

func (u *UserBuilder) AsSeller() *UserBuilder {
	return u.WithRole("seller")
}

func (u *UserBuilder) AsAdmin() *UserBuilder {
	return u.WithRole("admin")
}

// Build methods
func (u *UserBuilder) BuildDomain() (*user.User, error) {
	email, err := user.NewEmail(u.Email)
	if err != nil {
		return nil, err
	}
	return user.NewUser(email, u.Name, u.Image, u.Now)
}

func (u *UserBuilder) BuildSnapshot() *shared.UserSnapshot {
	return &shared.UserSnapshot{
		Email: user.NormalizeEmail(u.Email),
		Name:  u.Name,
		Image: u.Image,
		Role:  user.ParseRole(u.Role),
	}
}

func (u *UserBuilder) BuildView() *queries.UserView {
	return &queries.UserView{
		Email:        user.NormalizeEmail(u.Email),
		Name:         u.Name,
		Image:        u.Image,
		Role:         u.Role,
		LastLoggedIn: u.Now,
		CreatedAt:    u.Now,
		UpdatedAt:    u.Now,
	}
}
