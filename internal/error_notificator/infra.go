package error_notificator

import (
	"context"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// Infra sends alerts to a single operator chat through a Telegram bot.
type Infra struct {
	bot    *tgbotapi.BotAPI
	chatID int64
}

func NewInfra(token string, chatID int64) (*Infra, error) {
	return NewInfraWithEndpoint(token, chatID, tgbotapi.APIEndpoint)
}

// NewInfraWithEndpoint is NewInfra against a non-default Bot API server.
func NewInfraWithEndpoint(token string, chatID int64, endpoint string) (*Infra, error) {
	bot, err := tgbotapi.NewBotAPIWithAPIEndpoint(token, endpoint)
	if err != nil {
		return nil, fmt.Errorf("init alert bot: %w", err)
	}
	return &Infra{bot: bot, chatID: chatID}, nil
}

func (i *Infra) Notify(_ context.Context, err error, details string) error {
	text := fmt.Sprintf("❗ voice_agents error\n\nError: %v\n\nDetails: %s", err, details)

	if _, sendErr := i.bot.Send(tgbotapi.NewMessage(i.chatID, text)); sendErr != nil {
		return fmt.Errorf("send alert: %w", sendErr)
	}
	return nil
}
