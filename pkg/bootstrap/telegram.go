package bootstrap

import (
	"context"
	"fmt"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"avery/internal/bot"
	"avery/pkg/retry"
)

// InitTelegram performs the startup handshake with the Telegram API. The
// handshake is retried with backoff; Telegram being briefly unreachable at
// boot should not kill the process.
func InitTelegram(ctx context.Context, base *Base) (*tgbotapi.BotAPI, error) {
	startup := base.Config.Telegram.Startup
	policy := retry.Policy{
		MaxAttempts:     startup.MaxAttempts,
		InitialInterval: startup.InitialInterval,
		MaxInterval:     startup.MaxInterval,
		Multiplier:      startup.Multiplier,
	}

	var api *tgbotapi.BotAPI
	err := retry.Retry(ctx, policy, func() error {
		var err error
		api, err = tgbotapi.NewBotAPI(base.Config.Telegram.Token)
		return err
	}, func(attempt int, err error, nextDelay time.Duration) {
		base.Logger.Warnw("Telegram handshake failed, retrying",
			"attempt", attempt,
			"error", err,
			"next_delay", nextDelay,
		)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to telegram: %w", err)
	}

	base.Logger.Infow("Bot activated successfully", "username", api.Self.UserName)

	if _, err := api.Request(tgbotapi.NewSetMyCommands(bot.Commands()...)); err != nil {
		base.Logger.Warnw("Failed to register bot commands", "error", err)
	}

	return api, nil
}
