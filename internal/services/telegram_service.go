package services

import (
	"log"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// TelegramService pushes operational notices (login alerts, new intakes) to
// the clinic's Telegram chat. Safe to use with a nil receiver or empty
// config: sends become no-ops.
type TelegramService struct {
	bot    *tgbotapi.BotAPI
	chatID int64
}

func NewTelegramService(botToken string, chatID int64) *TelegramService {
	if botToken == "" || chatID == 0 {
		return nil
	}
	bot, err := tgbotapi.NewBotAPI(botToken)
	if err != nil {
		log.Printf("[tg][init] bot init failed, notifications disabled: %v", err)
		return nil
	}
	return &TelegramService{bot: bot, chatID: chatID}
}

func (t *TelegramService) Notify(text string) error {
	if t == nil || t.bot == nil {
		return nil
	}
	msg := tgbotapi.NewMessage(t.chatID, text)
	if _, err := t.bot.Send(msg); err != nil {
		log.Printf("[tg][send] failed: %v", err)
		return err
	}
	return nil
}
