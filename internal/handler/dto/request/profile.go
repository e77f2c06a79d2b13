package request

import (
	"gas-agency/internal/usecase/commands"
)

type UpdateProfileRequest struct {
	Name    *string `json:"name" binding:"omitempty,max=100"`
	Phone   *string `json:"phone" binding:"omitempty,max=20"`
	Address *string `json:"address" binding:"omitempty,max=300"`
}

func (r *UpdateProfileRequest) ToCommand() commands.UpdateProfileRequest {
	return commands.UpdateProfileRequest{
		Name:    r.Name,
		Phone:   r.Phone,
		Address: r.Address,
	}
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" binding:"required"`
	NewPassword     string `json:"new_password" binding:"required,min=6"`
}
