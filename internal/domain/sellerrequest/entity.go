package sellerrequest

import (
	"time"

	"book-courier/internal/domain/user"
)

// Status is derived from the requester's current role, never stored.
type Status string

const (
	StatusPending  Status = "Pending"
	StatusAccepted Status = "Accepted"
)

func DeriveStatus(role user.Role) Status {
	if role == user.RoleSeller {
		return StatusAccepted
	}
	return StatusPending
}

type SellerRequest struct {
	email     user.Email
	createdAt time.Time
}

func NewSellerRequest(email user.Email, now time.Time) *SellerRequest {
	return &SellerRequest{email: email, createdAt: now}
}

func (r *SellerRequest) Email() user.Email    { return r.email }
func (r *SellerRequest) CreatedAt() time.Time { return r.createdAt }
