package response

import (
	"gas-agency/internal/usecase/commands"

	"github.com/google/uuid"
)

type LoginResponse struct {
	AccountID    uuid.UUID `json:"account_id"`
	Role         string    `json:"role"`
	AccessToken  string    `json:"access_token"`
	SessionToken string    `json:"session_token"`
}

func NewLoginResponse(result *commands.LoginResult) LoginResponse {
	return LoginResponse{
		AccountID:    result.AccountID,
		Role:         result.Role.String(),
		AccessToken:  result.AccessToken,
		SessionToken: result.SessionToken,
	}
}

type RegisterCustomerResponse struct {
	CustomerID uuid.UUID `json:"customer_id"`
}

type MeResponse struct {
	AccountID uuid.UUID `json:"account_id"`
	Role      string    `json:"role"`
}
