package bot

import (
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

const (
	CommandStart = "/start"
	CommandStore = "/store"
	CommandShop  = "/shop"
)

const (
	startReply = "Привіт! Це телеграм бот AVERY, який залюбки доставить твоє повідомлення до людини, що вирішить твоє подарункове питання 💐🍫🎁\n\nЗалиши своє повідомлення, і ми його неодмінно прочитаємо якомога швидше!"
	shopReply  = "Відкрийте наш магазин прямо в Telegram:"

	orderConfirmation   = "Ваше замовлення вдало отримано! Найближчим часом вам відповість наш подарунковий спеціаліст 🎀"
	messageConfirmation = "Дякуємо за ваше повідомлення! Ми отримали його та скоро відповімо. 🌟"

	storefrontButtonText = "🛍️ Відкрити магазин"
)

// Commands is the menu registered with Telegram on startup.
func Commands() []tgbotapi.BotCommand {
	return []tgbotapi.BotCommand{
		{Command: CommandStart, Description: "Start the bot"},
		{Command: CommandStore, Description: "Крамниця AVERY (у браузері)"},
		{Command: CommandShop, Description: "Крамниця AVERY (у Telegram)"},
	}
}

func storeReply(storeURL string) string {
	return fmt.Sprintf("🛍️ Відвідайте наш магазин: %s", storeURL)
}

// storefrontKeyboard attaches an inline button opening the storefront. The
// pinned SDK predates web-app buttons, so this is a plain URL button.
func storefrontKeyboard(storefrontURL string) tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonURL(storefrontButtonText, storefrontURL),
		),
	)
}
