package relay

import (
	"avery/pkg/models"
)

// NewOrderRequest is the POST /new-order body. Pointer fields distinguish a
// missing section from an empty one during shape validation.
type NewOrderRequest struct {
	CustomerInfo *models.CustomerInfo `json:"customerInfo"`
	Order        *models.OrderDetails `json:"order"`
}

func (r NewOrderRequest) Submission() models.OrderSubmission {
	return models.OrderSubmission{
		CustomerInfo: *r.CustomerInfo,
		Order:        *r.Order,
	}
}

type OrderResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}
