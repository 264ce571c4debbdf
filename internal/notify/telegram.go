package notify

import (
	"context"
	"errors"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// Telegram delivers reminders to one chat through a bot
type Telegram struct {
	api    *tgbotapi.BotAPI
	chatID int64
}

// NewTelegram connects to the Bot API with token
func NewTelegram(token string, chatID int64) (*Telegram, error) {
	return NewTelegramWithClient(token, tgbotapi.APIEndpoint, chatID, nil)
}

// NewTelegramWithClient connects to a Bot API compatible endpoint. A nil client
// uses the default HTTP client.
func NewTelegramWithClient(token, endpoint string, chatID int64, client tgbotapi.HTTPClient) (*Telegram, error) {
	if token == "" {
		return nil, errors.New("telegram token is empty")
	}
	if chatID == 0 {
		return nil, errors.New("telegram chat id is not set")
	}

	var (
		api *tgbotapi.BotAPI
		err error
	)
	if client == nil {
		api, err = tgbotapi.NewBotAPIWithAPIEndpoint(token, endpoint)
	} else {
		api, err = tgbotapi.NewBotAPIWithClient(token, endpoint, client)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to create bot: %w", err)
	}
	return &Telegram{api: api, chatID: chatID}, nil
}

// SendReminder posts the reminder to the configured chat
func (t *Telegram) SendReminder(ctx context.Context, r Reminder) error {
	msg := tgbotapi.NewMessage(t.chatID, r.Text())
	if _, err := t.api.Send(msg); err != nil {
		return fmt.Errorf("failed to send reminder: %w", err)
	}
	return nil
}
