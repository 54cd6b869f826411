package relay

import (
	"fmt"
)

// ValidateOrderSubmission checks the shape of a storefront order before any
// side effect happens. A rejected submission is never persisted.
func ValidateOrderSubmission(req NewOrderRequest) error {
	if req.CustomerInfo == nil {
		return fmt.Errorf("customerInfo is required")
	}
	if req.Order == nil {
		return fmt.Errorf("order is required")
	}
	if len(req.Order.Items) == 0 {
		return fmt.Errorf("order.items must contain at least one item")
	}
	if req.Order.TotalAmount <= 0 {
		return fmt.Errorf("order.totalAmount must be positive")
	}

	info := req.CustomerInfo
	if info.Name == "" {
		return fmt.Errorf("customerInfo.name is required")
	}
	if info.Phone == "" {
		return fmt.Errorf("customerInfo.phone is required")
	}
	if info.Address == "" {
		return fmt.Errorf("customerInfo.address is required")
	}
	if info.DeliveryTime == "" {
		return fmt.Errorf("customerInfo.deliveryTime is required")
	}
	if _, ok := PaymentLabel(info.PaymentMethod); !ok {
		return fmt.Errorf("unknown paymentMethod: %q (allowed: card, cash)", info.PaymentMethod)
	}

	for i, item := range req.Order.Items {
		if item.DisplayTitle() == "" {
			return fmt.Errorf("order.items[%d]: title is required", i)
		}
		if item.Quantity <= 0 {
			return fmt.Errorf("order.items[%d]: quantity must be positive", i)
		}
		if item.Price < 0 {
			return fmt.Errorf("order.items[%d]: price must be non-negative", i)
		}
	}

	return nil
}
