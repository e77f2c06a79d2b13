package response

import (
	"time"

	"gas-agency/internal/usecase/commands"
	"gas-agency/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type BookingResponse struct {
	ID            uuid.UUID  `json:"id"`
	CustomerID    uuid.UUID  `json:"customer_id"`
	CustomerEmail string     `json:"customer_email"`
	Payment       string     `json:"payment"`
	Status        string     `json:"status"`
	CreatedAt     time.Time  `json:"created_at"`
	ReviewedBy    *uuid.UUID `json:"reviewed_by,omitempty"`
	ReviewedAt    *time.Time `json:"reviewed_at,omitempty"`
}

func NewBookingResponse(view *queries.BookingView) (BookingResponse, error) {
	var resp BookingResponse
	if err := copier.Copy(&resp, view); err != nil {
		return BookingResponse{}, err
	}
	return resp, nil
}

func NewBookingListResponse(views []*queries.BookingView) ([]BookingResponse, error) {
	resps := make([]BookingResponse, 0, len(views))
	for _, view := range views {
		resp, err := NewBookingResponse(view)
		if err != nil {
			return nil, err
		}
		resps = append(resps, resp)
	}
	return resps, nil
}

type CreateBookingResponse struct {
	BookingID      uuid.UUID `json:"booking_id"`
	Status         string    `json:"status"`
	RemainingQuota int       `json:"remaining_quota"`
}

func NewCreateBookingResponse(result *commands.CreateBookingResult) CreateBookingResponse {
	return CreateBookingResponse{
		BookingID:      result.BookingID,
		Status:         result.Status,
		RemainingQuota: result.RemainingQuota,
	}
}

type ReviewBookingResponse struct {
	BookingID uuid.UUID `json:"booking_id"`
	Status    string    `json:"status"`
}
