package relay

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"avery/internal/constants"
	"avery/pkg/models"
)

// Classify returns the collection an inbound chat text belongs to. A text is
// an order iff it begins with the literal order marker.
func Classify(text string) string {
	if strings.HasPrefix(text, constants.OrderMarker) {
		return constants.CollectionOrders
	}
	return constants.CollectionMessages
}

var paymentLabels = map[string]string{
	constants.PaymentMethodCard: "Карткою",
	constants.PaymentMethodCash: "Готівкою",
}

func PaymentLabel(method string) (string, bool) {
	label, ok := paymentLabels[method]
	return label, ok
}

// FormatChatNotification renders the admin notification for a forwarded chat
// message or chat-submitted order.
func FormatChatNotification(msg models.ChatMessage, collection string) string {
	kind := "message"
	if collection == constants.CollectionOrders {
		kind = "order"
	}

	name := msg.From.FirstName
	if msg.From.LastName != "" {
		name += " " + msg.From.LastName
	}

	username := msg.From.Username
	if username == "" {
		username = constants.NoUsernamePlaceholder
	}

	return fmt.Sprintf("New %s received:\nFrom: %s (@%s)\nMessage: %s", kind, name, username, msg.Text)
}

// NewChatRecord builds the persisted record for an inbound chat event. The
// body is the raw text; absent display fields stay null.
func NewChatRecord(msg models.ChatMessage, now time.Time) models.Record {
	rec := models.NewRecord(msg.Text, now)

	senderID := msg.From.ID
	rec.SenderID = &senderID

	if msg.From.Username != "" {
		username := msg.From.Username
		rec.Username = &username
	}
	if msg.From.FirstName != "" {
		firstName := msg.From.FirstName
		rec.FirstName = &firstName
	}
	if msg.From.LastName != "" {
		lastName := msg.From.LastName
		rec.LastName = &lastName
	}

	return rec
}

// FormatOrderNotification renders the admin notification for a structured web
// order. Unrecognized payment methods are rejected, never silently relabeled.
func FormatOrderNotification(sub models.OrderSubmission) (string, error) {
	label, ok := PaymentLabel(sub.CustomerInfo.PaymentMethod)
	if !ok {
		return "", fmt.Errorf("unknown payment method: %q", sub.CustomerInfo.PaymentMethod)
	}

	comment := sub.CustomerInfo.Comment
	if comment == "" {
		comment = constants.NoCommentPlaceholder
	}

	lines := make([]string, 0, len(sub.Order.Items))
	for _, item := range sub.Order.Items {
		lines = append(lines, fmt.Sprintf("%s - %dшт. x %sгрн.",
			item.DisplayTitle(), item.Quantity, formatAmount(item.Price)))
	}

	var b strings.Builder
	b.WriteString(constants.OrderMarker)
	b.WriteString("\n\n")
	b.WriteString(fmt.Sprintf("Ім'я: %s\n", sub.CustomerInfo.Name))
	b.WriteString(fmt.Sprintf("Телефон: %s\n", sub.CustomerInfo.Phone))
	b.WriteString(fmt.Sprintf("Адреса: %s\n", sub.CustomerInfo.Address))
	b.WriteString(fmt.Sprintf("Час доставки: %s\n", sub.CustomerInfo.DeliveryTime))
	b.WriteString(fmt.Sprintf("Оплата: %s\n", label))
	b.WriteString(fmt.Sprintf("Коментар: %s\n", comment))
	b.WriteString("\nЗамовлення:\n")
	b.WriteString(strings.Join(lines, "\n"))
	b.WriteString(fmt.Sprintf("\n\nСума: %sгрн.", formatAmount(sub.Order.TotalAmount)))

	return b.String(), nil
}

// NewOrderRecord builds the persisted record for a web order. Web submissions
// carry no chat identity, so every sender field stays null and the body is
// the rendered notification.
func NewOrderRecord(notification string, now time.Time) models.Record {
	return models.NewRecord(notification, now)
}

func formatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
