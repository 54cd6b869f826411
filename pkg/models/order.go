package models

// OrderItem is one line of a storefront order. The storefront has shipped both
// "title" and "name" for the display string, so both are accepted.
type OrderItem struct {
	Title    string  `json:"title,omitempty"`
	Name     string  `json:"name,omitempty"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`
}

func (i OrderItem) DisplayTitle() string {
	if i.Title != "" {
		return i.Title
	}
	return i.Name
}

type CustomerInfo struct {
	Name          string `json:"name"`
	Phone         string `json:"phone"`
	Address       string `json:"address"`
	DeliveryTime  string `json:"deliveryTime"`
	PaymentMethod string `json:"paymentMethod"`
	Comment       string `json:"comment,omitempty"`
}

type OrderDetails struct {
	Items       []OrderItem `json:"items"`
	TotalAmount float64     `json:"totalAmount"`
}

// OrderSubmission is the structured order as it arrives from the web storefront.
type OrderSubmission struct {
	CustomerInfo CustomerInfo `json:"customerInfo"`
	Order        OrderDetails `json:"order"`
}
