// Package notify provides the Telegram notification channel: it formats
// client summaries for inbound calls, answers bot commands, and delivers
// messages to the configured chat with rate limiting.
package notify

import (
	"context"
	"fmt"

	"callscreen_backend/platform/config"
	"callscreen_backend/platform/logger"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"golang.org/x/time/rate"
)

const channelName = "telegram"

// BotAPI is the subset of the Telegram bot client the sender uses.
type BotAPI interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
	Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error)
}

// BotFactory creates BotAPI instances (allows mocking)
type BotFactory func(token string) (BotAPI, error)

// defaultBotFactory creates a real Telegram bot client.
var defaultBotFactory BotFactory = func(token string) (BotAPI, error) {
	return tgbotapi.NewBotAPI(token)
}

// Sender delivers messages to the configured Telegram chat. A nil Sender
// is valid and inert, mirroring an unconfigured channel.
type Sender struct {
	bot     BotAPI
	chatID  int64
	limiter *rate.Limiter
	log     *logger.Logger
}

// NewSender creates the Telegram sender. Returns nil when no token is
// configured; the service then runs without a notification channel.
func NewSender(cfg config.TelegramConfig, log *logger.Logger) (*Sender, error) {
	return NewSenderWithFactory(cfg, log, defaultBotFactory)
}

// NewSenderWithFactory creates a Sender with a custom bot factory (for testing).
func NewSenderWithFactory(cfg config.TelegramConfig, log *logger.Logger, factory BotFactory) (*Sender, error) {
	if !cfg.IsTelegramEnabled() {
		return nil, nil
	}

	bot, err := factory(cfg.GetTelegramToken())
	if err != nil {
		return nil, fmt.Errorf("create telegram bot: %w", err)
	}

	return &Sender{
		bot:    bot,
		chatID: cfg.GetTelegramChatID(),
		// The Bot API rejects floods; stay under 30 messages per minute.
		limiter: rate.NewLimiter(rate.Limit(30.0/60.0), 30),
		log:     log,
	}, nil
}

// Configured reports whether the channel can deliver messages.
func (s *Sender) Configured() bool {
	return s != nil && s.bot != nil
}

// SendMessage delivers one HTML-formatted message to the configured chat.
// Sends are dropped with an error when the rate limit is exhausted rather
// than queued; call notifications lose value quickly.
func (s *Sender) SendMessage(ctx context.Context, text string) error {
	if !s.Configured() {
		return nil
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	if !s.limiter.Allow() {
		return fmt.Errorf("telegram rate limit exceeded")
	}

	msg := tgbotapi.NewMessage(s.chatID, text)
	msg.ParseMode = tgbotapi.ModeHTML
	msg.DisableWebPagePreview = true

	if _, err := s.bot.Send(msg); err != nil {
		s.log.NotifyError(channelName, err)
		return fmt.Errorf("telegram send: %w", err)
	}
	return nil
}

// RegisterWebhook points the bot's webhook at this deployment so inbound
// commands reach /webhook/telegram. Returns the registered URL.
func (s *Sender) RegisterWebhook(baseURL string) (string, error) {
	if !s.Configured() {
		return "", fmt.Errorf("telegram channel not configured")
	}

	webhookURL := baseURL + "/webhook/telegram"
	wh, err := tgbotapi.NewWebhook(webhookURL)
	if err != nil {
		return "", fmt.Errorf("build webhook config: %w", err)
	}
	wh.DropPendingUpdates = true

	if _, err := s.bot.Request(wh); err != nil {
		return "", fmt.Errorf("set telegram webhook: %w", err)
	}
	return webhookURL, nil
}
