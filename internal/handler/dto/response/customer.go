package response

import (
	"time"

	"gas-agency/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type CustomerResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Address   string    `json:"address"`
	Quota     int       `json:"quota"`
	CreatedAt time.Time `json:"created_at"`
}

func NewCustomerResponse(view *queries.CustomerView) (CustomerResponse, error) {
	var resp CustomerResponse
	if err := copier.Copy(&resp, view); err != nil {
		return CustomerResponse{}, err
	}
	return resp, nil
}

func NewCustomerListResponse(views []*queries.CustomerView) ([]CustomerResponse, error) {
	resps := make([]CustomerResponse, 0, len(views))
	for _, view := range views {
		resp, err := NewCustomerResponse(view)
		if err != nil {
			return nil, err
		}
		resps = append(resps, resp)
	}
	return resps, nil
}
