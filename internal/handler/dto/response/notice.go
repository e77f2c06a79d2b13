package response

import (
	"time"

	"gas-agency/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type NoticeResponse struct {
	ID               uuid.UUID  `json:"id"`
	Message          string     `json:"message"`
	TargetType       string     `json:"target_type"`
	TargetCustomerID *uuid.UUID `json:"target_customer_id,omitempty"`
	PostedBy         uuid.UUID  `json:"posted_by"`
	CreatedAt        time.Time  `json:"created_at"`
}

func NewNoticeListResponse(views []*queries.NoticeView) ([]NoticeResponse, error) {
	resps := make([]NoticeResponse, 0, len(views))
	for _, view := range views {
		var resp NoticeResponse
		if err := copier.Copy(&resp, view); err != nil {
			return nil, err
		}
		resps = append(resps, resp)
	}
	return resps, nil
}

type PostNoticeResponse struct {
	NoticeID uuid.UUID `json:"notice_id"`
}
