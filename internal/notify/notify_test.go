package notify

import (
	"context"
	"strings"
	"testing"
	"time"

	"callscreen_backend/internal/directory"
	"callscreen_backend/internal/events"
	"callscreen_backend/platform/logger"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/google/uuid"
)

type fakeBot struct {
	sent     []tgbotapi.Chattable
	requests []tgbotapi.Chattable
	sendErr  error
}

func (f *fakeBot) Send(c tgbotapi.Chattable) (tgbotapi.Message, error) {
	if f.sendErr != nil {
		return tgbotapi.Message{}, f.sendErr
	}
	f.sent = append(f.sent, c)
	return tgbotapi.Message{}, nil
}

func (f *fakeBot) Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error) {
	f.requests = append(f.requests, c)
	return &tgbotapi.APIResponse{Ok: true}, nil
}

type testConfig struct {
	enabled bool
}

func (c testConfig) GetTelegramToken() string {
	if !c.enabled {
		return ""
	}
	return "12345:secret"
}
func (c testConfig) GetTelegramChatID() int64 { return -4928923400 }
func (c testConfig) IsTelegramEnabled() bool  { return c.enabled }
func (c testConfig) GetLineNumber() string    { return "0033185093039" }

type fakeDirectory struct {
	record directory.ClientRecord
	stats  directory.Stats
}

func (d fakeDirectory) Lookup(string) directory.ClientRecord { return d.record }
func (d fakeDirectory) Stats() directory.Stats               { return d.stats }

func newTestSender(t *testing.T) (*Sender, *fakeBot) {
	t.Helper()
	bot := &fakeBot{}
	sender, err := NewSenderWithFactory(testConfig{enabled: true}, logger.New("development"), func(string) (BotAPI, error) {
		return bot, nil
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return sender, bot
}

func TestSenderDisabledWhenNoToken(t *testing.T) {
	sender, err := NewSenderWithFactory(testConfig{}, logger.New("development"), func(string) (BotAPI, error) {
		t.Fatal("factory must not be called without a token")
		return nil, nil
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sender.Configured() {
		t.Fatal("expected unconfigured sender")
	}
	if err := sender.SendMessage(context.Background(), "dropped"); err != nil {
		t.Fatalf("nil sender must be inert, got %v", err)
	}
}

func TestSendMessageUsesHTMLAndChatID(t *testing.T) {
	sender, bot := newTestSender(t)

	if err := sender.SendMessage(context.Background(), "<b>salut</b>"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(bot.sent) != 1 {
		t.Fatalf("expected 1 message, got %d", len(bot.sent))
	}

	msg, ok := bot.sent[0].(tgbotapi.MessageConfig)
	if !ok {
		t.Fatalf("expected MessageConfig, got %T", bot.sent[0])
	}
	if msg.ChatID != -4928923400 {
		t.Fatalf("unexpected chat id %d", msg.ChatID)
	}
	if msg.ParseMode != tgbotapi.ModeHTML {
		t.Fatalf("expected HTML parse mode, got %q", msg.ParseMode)
	}
	if msg.Text != "<b>salut</b>" {
		t.Fatalf("unexpected text %q", msg.Text)
	}
}

func TestCommanderNumero(t *testing.T) {
	sender, bot := newTestSender(t)
	dir := fakeDirectory{record: directory.UnknownClient("0612345678")}
	commander := NewCommander(sender, dir, testConfig{enabled: true}, logger.New("development"))

	result, err := commander.Execute(context.Background(), "/numero 0612345678")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Status != "ok" || result.Command != "numero" {
		t.Fatalf("unexpected result %+v", result)
	}
	if len(bot.sent) != 1 {
		t.Fatalf("expected 1 message, got %d", len(bot.sent))
	}

	text := bot.sent[0].(tgbotapi.MessageConfig).Text
	if !strings.Contains(text, "RECHERCHE") {
		t.Fatalf("expected search headline, got %q", text)
	}
	if !strings.Contains(text, "INCONNU") {
		t.Fatalf("expected unknown placeholder in message, got %q", text)
	}
}

func TestCommanderIBAN(t *testing.T) {
	sender, bot := newTestSender(t)
	commander := NewCommander(sender, fakeDirectory{}, testConfig{enabled: true}, logger.New("development"))

	result, err := commander.Execute(context.Background(), "/iban FR7612345000110000000000000")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Command != "iban" {
		t.Fatalf("unexpected result %+v", result)
	}

	text := bot.sent[0].(tgbotapi.MessageConfig).Text
	if !strings.Contains(text, "Banque française (12345)") {
		t.Fatalf("expected fallback label in message, got %q", text)
	}
}

func TestCommanderUnknownText(t *testing.T) {
	sender, bot := newTestSender(t)
	commander := NewCommander(sender, fakeDirectory{}, testConfig{enabled: true}, logger.New("development"))

	result, err := commander.Execute(context.Background(), "bonjour")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Status != "unknown" {
		t.Fatalf("unexpected result %+v", result)
	}
	if len(bot.sent) != 0 {
		t.Fatal("unrecognized text must not trigger a send")
	}
}

func TestModuleRelaysCallReceived(t *testing.T) {
	sender, bot := newTestSender(t)
	log := logger.New("development")
	module := NewModule(sender, fakeDirectory{}, testConfig{enabled: true}, nil, log)

	bus := events.NewInMemoryBus(log)
	module.RegisterHandlers(bus)

	record := directory.ClientRecord{
		LastName:  "MARTIN",
		FirstName: "Jean",
		Phone:     "0669290606",
		Status:    directory.StatusProspect,
		CallCount: 3,
	}
	err := bus.PublishSync(context.Background(), events.CallReceived{
		BaseEvent: events.NewBaseEvent(),
		EventID:   uuid.New(),
		Caller:    "0669290606",
		CallType:  "incoming",
		Client:    record,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(bot.sent) != 1 {
		t.Fatalf("expected 1 message, got %d", len(bot.sent))
	}
	text := bot.sent[0].(tgbotapi.MessageConfig).Text
	if !strings.Contains(text, "APPEL ENTRANT") {
		t.Fatalf("expected call headline, got %q", text)
	}
	if !strings.Contains(text, "MARTIN") || !strings.Contains(text, "Appels: 3") {
		t.Fatalf("expected client details in message, got %q", text)
	}
}

func TestFormatClientMessageEscapesHTML(t *testing.T) {
	record := directory.ClientRecord{
		LastName:  "<script>",
		FirstName: "Jean & Co",
		Phone:     "0669290606",
		Status:    directory.StatusProspect,
	}

	text := FormatClientMessage(record, ContextCall, "0033185093039", time.Now())
	if strings.Contains(text, "<script>") {
		t.Fatal("expected client data to be HTML-escaped")
	}
	if !strings.Contains(text, "&lt;script&gt;") || !strings.Contains(text, "Jean &amp; Co") {
		t.Fatalf("expected escaped values, got %q", text)
	}
}

func TestFormatClientMessageUnknownCaller(t *testing.T) {
	text := FormatClientMessage(directory.UnknownClient("junk"), ContextCall, "0033185093039", time.Now())
	if !strings.HasPrefix(text, "❓") {
		t.Fatalf("expected unknown-caller emoji, got %q", text)
	}
	if !strings.Contains(text, "Non référencé") {
		t.Fatalf("expected unknown status in message, got %q", text)
	}
}

func TestRegisterWebhook(t *testing.T) {
	sender, bot := newTestSender(t)

	url, err := sender.RegisterWebhook("https://svc.example.com")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if url != "https://svc.example.com/webhook/telegram" {
		t.Fatalf("unexpected webhook url %q", url)
	}
	if len(bot.requests) != 1 {
		t.Fatalf("expected 1 API request, got %d", len(bot.requests))
	}
}
