package user

import (
	"strings"
	"time"
	"unicode/utf8"
)

type User struct {
	email        Email
	name         string
	image        string
	role         Role
	lastLoggedIn time.Time
	createdAt    time.Time
	updatedAt    time.Time
}

// NewUser registers a first-time user. Every account starts as a customer.
func NewUser(email Email, name, image string, now time.Time) (*User, error) {
	name = strings.TrimSpace(name)
	if utf8.RuneCountInString(name) > MaxNameLength {
		return nil, ErrNameTooLong
	}
	return &User{
		email:        email,
		name:         name,
		image:        strings.TrimSpace(image),
		role:         RoleCustomer,
		lastLoggedIn: now,
		createdAt:    now,
		updatedAt:    now,
	}, nil
}

func (u *User) Email() Email            { return u.email }
func (u *User) Name() string            { return u.name }
func (u *User) Image() string           { return u.image }
func (u *User) Role() Role              { return u.role }
func (u *User) LastLoggedIn() time.Time { return u.lastLoggedIn }
func (u *User) CreatedAt() time.Time    { return u.createdAt }
func (u *User) UpdatedAt() time.Time    { return u.updatedAt }

// Profile is the user-editable part of an account.
type Profile struct {
	Name  *string
	Image *string
}

func (p Profile) Validate() error {
	if p.Name != nil && utf8.RuneCountInString(strings.TrimSpace(*p.Name)) > MaxNameLength {
		return ErrNameTooLong
	}
	return nil
}

func (p Profile) IsEmpty() bool {
	return p.Name == nil && p.Image == nil
}
