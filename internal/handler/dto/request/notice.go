package request

import (
	"gas-agency/internal/usecase/commands"

	"github.com/google/uuid"
)

type PostNoticeRequest struct {
	Message          string     `json:"message" binding:"required,max=2000"`
	TargetType       string     `json:"target_type" binding:"required,oneof=global specific"`
	TargetCustomerID *uuid.UUID `json:"target_customer_id" binding:"omitempty"`
}

func (r *PostNoticeRequest) ToCommand() commands.PostNoticeRequest {
	return commands.PostNoticeRequest{
		Message:          r.Message,
		TargetType:       r.TargetType,
		TargetCustomerID: r.TargetCustomerID,
	}
}
