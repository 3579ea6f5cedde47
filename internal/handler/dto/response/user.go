package response

import (
	"time"

	"book-courier/internal/usecase/queries"

	"github.com/jinzhu/copier"
)

type UserResponse struct {
	Email        string    `json:"email"`
	Name         string    `json:"name"`
	Image        string    `json:"image"`
	Role         string    `json:"role"`
	LastLoggedIn time.Time `json:"lastLoggedIn"`
	CreatedAt    time.Time `json:"createdAt"`
}

func FromUserList(views []*queries.UserView) []*UserResponse {
	res := make([]*UserResponse, 0, len(views))
	_ = copier.Copy(&res, &views)
	return res
}

type RegisterUserResponse struct {
	Created bool `json:"created"`
}

type RoleResponse struct {
	Role string `json:"role"`
}
