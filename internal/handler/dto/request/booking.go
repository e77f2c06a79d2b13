package request

type CreateBookingRequest struct {
	Payment string `json:"payment" binding:"required,oneof=cash upi card"`
}

type ReviewBookingRequest struct {
	Status string `json:"status" binding:"required,oneof=Approved Rejected"`
}
