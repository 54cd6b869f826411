package bot

import (
	"context"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"avery/internal/logger"
)

// Bot runs the long-polling loop and hands each update to the dispatcher.
type Bot struct {
	api         *tgbotapi.BotAPI
	dispatcher  *Dispatcher
	log         logger.Logger
	pollTimeout int
}

func New(api *tgbotapi.BotAPI, dispatcher *Dispatcher, log logger.Logger, pollTimeoutSeconds int) *Bot {
	return &Bot{
		api:         api,
		dispatcher:  dispatcher,
		log:         log,
		pollTimeout: pollTimeoutSeconds,
	}
}

// Run polls until the context is cancelled. Cancellation is a normal
// shutdown, not an error.
func (b *Bot) Run(ctx context.Context) error {
	cfg := tgbotapi.NewUpdate(0)
	cfg.Timeout = b.pollTimeout

	updates := b.api.GetUpdatesChan(cfg)

	b.log.Infow("Bot polling started", "username", b.api.Self.UserName)

	for {
		select {
		case <-ctx.Done():
			b.api.StopReceivingUpdates()
			b.log.Infow("Bot polling stopped")
			return nil
		case update, ok := <-updates:
			if !ok {
				return nil
			}
			b.dispatcher.HandleUpdate(ctx, update)
		}
	}
}
