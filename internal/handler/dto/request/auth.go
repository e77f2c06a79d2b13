package request

import (
	"gas-agency/internal/usecase/commands"
)

type RegisterCustomerRequest struct {
	Name     string `json:"name" binding:"required,max=100"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Phone    string `json:"phone" binding:"required,max=20"`
	Address  string `json:"address" binding:"required,max=300"`
}

func (r *RegisterCustomerRequest) ToCommand() commands.RegisterCustomerRequest {
	return commands.RegisterCustomerRequest{
		Name:     r.Name,
		Email:    r.Email,
		Password: r.Password,
		Phone:    r.Phone,
		Address:  r.Address,
	}
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

type RefreshRequest struct {
	SessionToken string `json:"session_token" binding:"required"`
}

type LogoutRequest struct {
	SessionToken string `json:"session_token" binding:"required"`
}
