package notify

import (
	"context"
	"time"

	"callscreen_backend/internal/directory"
	"callscreen_backend/internal/events"
	apphttp "callscreen_backend/internal/http"
	"callscreen_backend/platform/config"
	"callscreen_backend/platform/logger"
	"callscreen_backend/platform/validator"
)

// DirectoryReader is the directory access the notification channel needs.
type DirectoryReader interface {
	Lookup(rawPhone string) directory.ClientRecord
	Stats() directory.Stats
}

// Module is the notification bounded context module. It is both
// HTTP-facing (bot webhook, diagnostics) and an event subscriber.
type Module struct {
	handler *Handler
	sender  *Sender
	cfg     config.LineConfig
	log     *logger.Logger
}

// NewModule creates and initializes the notify module with all its dependencies.
func NewModule(sender *Sender, dir DirectoryReader, cfg config.LineConfig, val *validator.Validator, log *logger.Logger) *Module {
	commander := NewCommander(sender, dir, cfg, log)
	handler := NewHandler(commander, sender, val)

	return &Module{
		handler: handler,
		sender:  sender,
		cfg:     cfg,
		log:     log,
	}
}

// Name returns the module identifier.
func (m *Module) Name() string {
	return "notify"
}

// RegisterHandlers subscribes the channel to the domain events it relays.
func (m *Module) RegisterHandlers(bus events.Bus) {
	bus.Subscribe(events.CallReceived{}.EventName(), events.HandlerFunc(m.onCallReceived))
	bus.Subscribe(events.ClientsUploaded{}.EventName(), events.HandlerFunc(m.onClientsUploaded))
	bus.Subscribe(events.DirectoryCleared{}.EventName(), events.HandlerFunc(m.onDirectoryCleared))
}

// RegisterRoutes mounts the bot webhook and channel diagnostics.
func (m *Module) RegisterRoutes(rc *apphttp.RouterContext) {
	rc.Root.POST("/webhook/telegram", m.handler.HandleTelegramWebhook)
	rc.Root.GET("/test-telegram", m.handler.HandleTestMessage)
	rc.Root.GET("/fix-webhook", m.handler.HandleFixWebhook)
}

func (m *Module) onCallReceived(ctx context.Context, event events.Event) error {
	call, ok := event.(events.CallReceived)
	if !ok {
		return nil
	}
	message := FormatClientMessage(call.Client, ContextCall, m.cfg.GetLineNumber(), time.Now())
	return m.sender.SendMessage(ctx, message)
}

func (m *Module) onClientsUploaded(ctx context.Context, event events.Event) error {
	upload, ok := event.(events.ClientsUploaded)
	if !ok {
		return nil
	}
	return m.sender.SendMessage(ctx, FormatUploadMessage(upload.Filename, upload.Stored, upload.BanksDetected))
}

func (m *Module) onDirectoryCleared(ctx context.Context, event events.Event) error {
	cleared, ok := event.(events.DirectoryCleared)
	if !ok {
		return nil
	}
	return m.sender.SendMessage(ctx, FormatClearedMessage(cleared.Removed))
}

// Compile-time check that Module implements http.Module
var _ apphttp.Module = (*Module)(nil)
