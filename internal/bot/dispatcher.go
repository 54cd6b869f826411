package bot

import (
	"context"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"avery/internal/config"
	"avery/internal/constants"
	"avery/internal/logger"
	"avery/internal/relay"
	"avery/pkg/logging"
	"avery/pkg/metrics"
	"avery/pkg/models"
)

// Sender is the slice of the Telegram API the dispatcher needs.
type Sender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

// Dispatcher routes inbound chat updates. Commands get canned storefront
// replies; any other text is relayed and the sender gets a confirmation.
type Dispatcher struct {
	sender     Sender
	service    relay.Service
	storefront config.StorefrontConfig
	log        logger.Logger
}

func NewDispatcher(sender Sender, service relay.Service, storefront config.StorefrontConfig, log logger.Logger) *Dispatcher {
	return &Dispatcher{
		sender:     sender,
		service:    service,
		storefront: storefront,
		log:        log,
	}
}

func (d *Dispatcher) HandleUpdate(ctx context.Context, update tgbotapi.Update) {
	msg := update.Message
	if msg == nil || msg.Text == "" {
		return
	}

	ctx = logging.WithChatID(ctx, msg.Chat.ID)

	switch msg.Text {
	case CommandStart:
		metrics.BotCommandsTotal.WithLabelValues("start").Inc()
		reply := tgbotapi.NewMessage(msg.Chat.ID, startReply)
		reply.ReplyMarkup = storefrontKeyboard(d.storefront.WebAppURL)
		d.reply(ctx, reply)
	case CommandStore:
		metrics.BotCommandsTotal.WithLabelValues("store").Inc()
		d.reply(ctx, tgbotapi.NewMessage(msg.Chat.ID, storeReply(d.storefront.StoreURL)))
	case CommandShop:
		metrics.BotCommandsTotal.WithLabelValues("shop").Inc()
		reply := tgbotapi.NewMessage(msg.Chat.ID, shopReply)
		reply.ReplyMarkup = storefrontKeyboard(d.storefront.WebAppURL)
		d.reply(ctx, reply)
	default:
		d.ingest(ctx, msg)
	}
}

// ingest relays a non-command text. The confirmation is only sent after the
// relay succeeded; a failed relay is logged and the sender hears nothing.
func (d *Dispatcher) ingest(ctx context.Context, msg *tgbotapi.Message) {
	if msg.From == nil {
		d.log.WarnwCtx(ctx, "Dropping message without sender")
		return
	}

	chatMsg := models.ChatMessage{
		From: models.Sender{
			ID:        msg.From.ID,
			Username:  msg.From.UserName,
			FirstName: msg.From.FirstName,
			LastName:  msg.From.LastName,
		},
		Text: msg.Text,
	}

	collection, err := d.service.IngestChat(ctx, chatMsg)
	if err != nil {
		d.log.ErrorwCtx(ctx, "Failed to relay chat message", "error", err)
		return
	}

	confirmation := messageConfirmation
	if collection == constants.CollectionOrders {
		confirmation = orderConfirmation
	}
	d.reply(ctx, tgbotapi.NewMessage(msg.Chat.ID, confirmation))
}

func (d *Dispatcher) reply(ctx context.Context, msg tgbotapi.MessageConfig) {
	if _, err := d.sender.Send(msg); err != nil {
		d.log.ErrorwCtx(ctx, "Failed to send reply", "error", err)
	}
}
