package bot

import (
	"context"
	"errors"
	"testing"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"avery/internal/config"
	"avery/internal/constants"
	"avery/internal/logger"
	"avery/pkg/models"
)

type fakeSender struct {
	err  error
	sent []tgbotapi.MessageConfig
}

func (s *fakeSender) Send(c tgbotapi.Chattable) (tgbotapi.Message, error) {
	if s.err != nil {
		return tgbotapi.Message{}, s.err
	}
	if msg, ok := c.(tgbotapi.MessageConfig); ok {
		s.sent = append(s.sent, msg)
	}
	return tgbotapi.Message{}, nil
}

type stubRelay struct {
	collection string
	err        error
	got        *models.ChatMessage
}

func (s *stubRelay) IngestOrder(ctx context.Context, sub models.OrderSubmission) (*models.Record, error) {
	return nil, errors.New("not used")
}

func (s *stubRelay) IngestChat(ctx context.Context, msg models.ChatMessage) (string, error) {
	s.got = &msg
	if s.err != nil {
		return "", s.err
	}
	return s.collection, nil
}

func (s *stubRelay) ListOrders(ctx context.Context) ([]models.Record, error) {
	return nil, nil
}

func storefrontConfig() config.StorefrontConfig {
	return config.StorefrontConfig{
		StoreURL:  "avery.com.ua",
		WebAppURL: "https://avery.com.ua",
	}
}

func update(text string) tgbotapi.Update {
	return tgbotapi.Update{
		Message: &tgbotapi.Message{
			Chat: &tgbotapi.Chat{ID: 1001},
			From: &tgbotapi.User{
				ID:        42,
				UserName:  "olena_k",
				FirstName: "Олена",
			},
			Text: text,
		},
	}
}

func TestHandleUpdate_Start(t *testing.T) {
	sender := &fakeSender{}
	svc := &stubRelay{}
	d := NewDispatcher(sender, svc, storefrontConfig(), logger.NopLogger())

	d.HandleUpdate(context.Background(), update(CommandStart))

	require.Len(t, sender.sent, 1)
	assert.Equal(t, int64(1001), sender.sent[0].ChatID)
	assert.Contains(t, sender.sent[0].Text, "телеграм бот AVERY")

	keyboard, ok := sender.sent[0].ReplyMarkup.(tgbotapi.InlineKeyboardMarkup)
	require.True(t, ok)
	require.Len(t, keyboard.InlineKeyboard, 1)
	require.Len(t, keyboard.InlineKeyboard[0], 1)
	button := keyboard.InlineKeyboard[0][0]
	assert.Equal(t, "🛍️ Відкрити магазин", button.Text)
	require.NotNil(t, button.URL)
	assert.Equal(t, "https://avery.com.ua", *button.URL)

	assert.Nil(t, svc.got)
}

func TestHandleUpdate_Store(t *testing.T) {
	sender := &fakeSender{}
	d := NewDispatcher(sender, &stubRelay{}, storefrontConfig(), logger.NopLogger())

	d.HandleUpdate(context.Background(), update(CommandStore))

	require.Len(t, sender.sent, 1)
	assert.Equal(t, "🛍️ Відвідайте наш магазин: avery.com.ua", sender.sent[0].Text)
	assert.Nil(t, sender.sent[0].ReplyMarkup)
}

func TestHandleUpdate_Shop(t *testing.T) {
	sender := &fakeSender{}
	d := NewDispatcher(sender, &stubRelay{}, storefrontConfig(), logger.NopLogger())

	d.HandleUpdate(context.Background(), update(CommandShop))

	require.Len(t, sender.sent, 1)
	assert.Equal(t, "Відкрийте наш магазин прямо в Telegram:", sender.sent[0].Text)

	_, ok := sender.sent[0].ReplyMarkup.(tgbotapi.InlineKeyboardMarkup)
	assert.True(t, ok)
}

func TestHandleUpdate_CommandVariantsRelayAsText(t *testing.T) {
	sender := &fakeSender{}
	svc := &stubRelay{collection: constants.CollectionMessages}
	d := NewDispatcher(sender, svc, storefrontConfig(), logger.NopLogger())

	// Commands are matched by exact equality, so addressed and padded
	// variants go down the ingest path like any other text.
	d.HandleUpdate(context.Background(), update("/start@AveryBot"))

	require.NotNil(t, svc.got)
	assert.Equal(t, "/start@AveryBot", svc.got.Text)
	require.Len(t, sender.sent, 1)
	assert.Equal(t, "Дякуємо за ваше повідомлення! Ми отримали його та скоро відповімо. 🌟", sender.sent[0].Text)
}

func TestHandleUpdate_RelaysPlainText(t *testing.T) {
	sender := &fakeSender{}
	svc := &stubRelay{collection: constants.CollectionMessages}
	d := NewDispatcher(sender, svc, storefrontConfig(), logger.NopLogger())

	d.HandleUpdate(context.Background(), update("коли відкриті?"))

	require.NotNil(t, svc.got)
	assert.Equal(t, "коли відкриті?", svc.got.Text)
	assert.Equal(t, int64(42), svc.got.From.ID)
	assert.Equal(t, "olena_k", svc.got.From.Username)

	require.Len(t, sender.sent, 1)
	assert.Equal(t, "Дякуємо за ваше повідомлення! Ми отримали його та скоро відповімо. 🌟", sender.sent[0].Text)
}

func TestHandleUpdate_OrderConfirmation(t *testing.T) {
	sender := &fakeSender{}
	svc := &stubRelay{collection: constants.CollectionOrders}
	d := NewDispatcher(sender, svc, storefrontConfig(), logger.NopLogger())

	d.HandleUpdate(context.Background(), update(constants.OrderMarker+"\n\nІм'я: Олена"))

	require.Len(t, sender.sent, 1)
	assert.Equal(t, "Ваше замовлення вдало отримано! Найближчим часом вам відповість наш подарунковий спеціаліст 🎀", sender.sent[0].Text)
}

func TestHandleUpdate_RelayFailureSkipsConfirmation(t *testing.T) {
	sender := &fakeSender{}
	svc := &stubRelay{err: errors.New("disk full")}
	d := NewDispatcher(sender, svc, storefrontConfig(), logger.NopLogger())

	d.HandleUpdate(context.Background(), update("hi"))

	require.NotNil(t, svc.got)
	assert.Empty(t, sender.sent)
}

func TestHandleUpdate_IgnoresNonText(t *testing.T) {
	sender := &fakeSender{}
	svc := &stubRelay{}
	d := NewDispatcher(sender, svc, storefrontConfig(), logger.NopLogger())

	d.HandleUpdate(context.Background(), tgbotapi.Update{})
	d.HandleUpdate(context.Background(), tgbotapi.Update{
		Message: &tgbotapi.Message{Chat: &tgbotapi.Chat{ID: 1}},
	})

	assert.Nil(t, svc.got)
	assert.Empty(t, sender.sent)
}

func TestHandleUpdate_DropsMessageWithoutSender(t *testing.T) {
	sender := &fakeSender{}
	svc := &stubRelay{}
	d := NewDispatcher(sender, svc, storefrontConfig(), logger.NopLogger())

	d.HandleUpdate(context.Background(), tgbotapi.Update{
		Message: &tgbotapi.Message{
			Chat: &tgbotapi.Chat{ID: 1},
			Text: "anonymous",
		},
	})

	assert.Nil(t, svc.got)
	assert.Empty(t, sender.sent)
}

func TestCommands(t *testing.T) {
	cmds := Commands()
	require.Len(t, cmds, 3)
	assert.Equal(t, "/start", cmds[0].Command)
	assert.Equal(t, "/store", cmds[1].Command)
	assert.Equal(t, "/shop", cmds[2].Command)
}
