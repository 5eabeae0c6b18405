// Package telegram posts rendered leaderboards back into a chat using the
// Telegram Bot API.
package telegram

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"

	"github.com/edgard/reactop/internal/report"
)

// Publisher sends a finished report to a single chat.
type Publisher struct {
	bot    *bot.Bot
	chatID int64
	logger *slog.Logger
}

// NewPublisher creates a Publisher using the go-telegram/bot library.
func NewPublisher(token string, chatID int64, logger *slog.Logger) (*Publisher, error) {
	if token == "" {
		return nil, fmt.Errorf("telegram bot token cannot be empty")
	}
	if chatID == 0 {
		return nil, fmt.Errorf("telegram chat ID cannot be zero")
	}
	if logger == nil {
		logger = slog.Default()
	}
	log := logger.With("component", "telegram_publisher")

	b, err := bot.New(token)
	if err != nil {
		log.Error("Failed to create Telegram bot instance", "error", err)
		return nil, fmt.Errorf("failed to create telegram bot: %w", err)
	}

	return &Publisher{bot: b, chatID: chatID, logger: log}, nil
}

// Publish sends the rendered report as a single message. Link previews are
// disabled so the top entry's deep link does not unfurl above the list.
func (p *Publisher) Publish(ctx context.Context, rep *report.Report) error {
	me, err := p.bot.GetMe(ctx)
	if err != nil {
		return fmt.Errorf("failed to get bot info: %w", err)
	}
	p.logger.Debug("Publishing report", "bot_username", me.Username, "chat_id", p.chatID, "entries", len(rep.Entries))

	_, err = p.bot.SendMessage(ctx, &bot.SendMessageParams{
		ChatID: p.chatID,
		Text:   rep.Text(),
		LinkPreviewOptions: &models.LinkPreviewOptions{
			IsDisabled: bot.True(),
		},
	})
	if err != nil {
		return fmt.Errorf("failed to send report message: %w", err)
	}

	p.logger.Info("Report published", "chat_id", p.chatID, "entries", len(rep.Entries))
	return nil
}
