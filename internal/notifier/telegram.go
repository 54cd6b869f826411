package notifier

import (
	"context"
	"fmt"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"avery/pkg/metrics"
)

// Client is the slice of the Telegram API the notifier needs.
type Client interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

type TelegramNotifier struct {
	client Client
	chatID int64
}

func NewTelegramNotifier(client Client, chatID int64) *TelegramNotifier {
	return &TelegramNotifier{
		client: client,
		chatID: chatID,
	}
}

func (n *TelegramNotifier) Notify(ctx context.Context, text string) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	start := time.Now()
	_, err := n.client.Send(tgbotapi.NewMessage(n.chatID, text))
	metrics.NotificationDuration.Observe(float64(time.Since(start).Milliseconds()))

	if err != nil {
		metrics.NotificationsTotal.WithLabelValues("error").Inc()
		return fmt.Errorf("failed to send admin notification: %w", err)
	}

	metrics.NotificationsTotal.WithLabelValues("ok").Inc()
	return nil
}
