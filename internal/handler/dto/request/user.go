package request

import (
	"book-courier/internal/domain/user"
	"book-courier/internal/usecase/commands"
)

type RegisterUserRequest struct {
	Email string `json:"email" binding:"required,email"`
	Name  string `json:"name" binding:"max=100"`
	Image string `json:"image"`
}

func (r *RegisterUserRequest) ToCommand() commands.RegisterUserRequest {
	return commands.RegisterUserRequest{Email: r.Email, Name: r.Name, Image: r.Image}
}

type UpdateProfileRequest struct {
	Name  *string `json:"name" binding:"omitempty,max=100"`
	Image *string `json:"image"`
}

func (r *UpdateProfileRequest) ToDomain() user.Profile {
	return user.Profile{Name: r.Name, Image: r.Image}
}

type UpdateRoleRequest struct {
	Email string `json:"email" binding:"required,email"`
	Role  string `json:"role" binding:"required"`
}
