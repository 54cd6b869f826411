package constants

import "time"

const (
	CollectionMessages = "messages"
	CollectionOrders   = "orders"
)

// OrderMarker is the literal prefix that classifies a chat text as an order.
const OrderMarker = "🌸 Нове замовлення!"

const (
	NoUsernamePlaceholder = "no username"
	NoCommentPlaceholder  = "Немає"
)

const (
	PaymentMethodCard = "card"
	PaymentMethodCash = "cash"
)

const (
	ShutdownTimeout = 5 * time.Second
)

const (
	DefaultServerPort         = 3000
	DefaultPollTimeoutSeconds = 60
	DefaultDataDir            = "data"
	DefaultMessagesFile       = "messages.json"
	DefaultOrdersFile         = "orders.json"
)
