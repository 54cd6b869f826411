package notifier

import (
	"context"
	"errors"
	"testing"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"avery/internal/config"
)

type fakeClient struct {
	err  error
	sent []tgbotapi.MessageConfig
}

func (c *fakeClient) Send(ch tgbotapi.Chattable) (tgbotapi.Message, error) {
	if c.err != nil {
		return tgbotapi.Message{}, c.err
	}
	if msg, ok := ch.(tgbotapi.MessageConfig); ok {
		c.sent = append(c.sent, msg)
	}
	return tgbotapi.Message{}, nil
}

func TestTelegramNotifier(t *testing.T) {
	client := &fakeClient{}
	n := NewTelegramNotifier(client, 777)

	err := n.Notify(context.Background(), "🌸 Нове замовлення!")
	require.NoError(t, err)

	require.Len(t, client.sent, 1)
	assert.Equal(t, int64(777), client.sent[0].ChatID)
	assert.Equal(t, "🌸 Нове замовлення!", client.sent[0].Text)
}

func TestTelegramNotifier_SendFailure(t *testing.T) {
	client := &fakeClient{err: errors.New("telegram down")}
	n := NewTelegramNotifier(client, 777)

	err := n.Notify(context.Background(), "hello")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "telegram down")
}

func TestTelegramNotifier_CancelledContext(t *testing.T) {
	client := &fakeClient{}
	n := NewTelegramNotifier(client, 777)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := n.Notify(ctx, "hello")
	require.Error(t, err)
	assert.Empty(t, client.sent)
}

type countingNotifier struct {
	err   error
	calls int
}

func (n *countingNotifier) Notify(ctx context.Context, text string) error {
	n.calls++
	return n.err
}

func TestCircuitBreakerNotifier_Disabled(t *testing.T) {
	next := &countingNotifier{}
	n := NewCircuitBreakerNotifier(next, config.CircuitBreakerConfig{Enabled: false})

	require.NoError(t, n.Notify(context.Background(), "hi"))
	assert.Equal(t, 1, next.calls)
}

func TestCircuitBreakerNotifier_PassesThrough(t *testing.T) {
	next := &countingNotifier{}
	n := NewCircuitBreakerNotifier(next, config.CircuitBreakerConfig{Enabled: true})

	require.NoError(t, n.Notify(context.Background(), "hi"))
	assert.Equal(t, 1, next.calls)
}

func TestCircuitBreakerNotifier_OpensAfterFailures(t *testing.T) {
	next := &countingNotifier{err: errors.New("telegram down")}
	n := NewCircuitBreakerNotifier(next, config.CircuitBreakerConfig{
		Enabled:      true,
		FailureRatio: 0.5,
		MinRequests:  3,
	})

	for i := 0; i < 3; i++ {
		require.Error(t, n.Notify(context.Background(), "hi"))
	}

	callsBefore := next.calls
	err := n.Notify(context.Background(), "hi")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "circuit breaker is open")
	assert.Equal(t, callsBefore, next.calls)
}
