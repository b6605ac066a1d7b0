package http

import (
	"callscreen_backend/internal/directory"
	"callscreen_backend/platform/config"
	"callscreen_backend/platform/logger"
)

// RouterConfig combines the config interfaces needed by the HTTP router.
type RouterConfig interface {
	config.HTTPConfig
	config.TelegramConfig
	config.LineConfig
}

// NotifierStatus exposes whether the notification channel is usable,
// for the health surface.
type NotifierStatus interface {
	Configured() bool
}

// App holds the fully initialized application dependencies.
// This is populated by main.go (the composition root) and passed to the router.
type App struct {
	// Config holds the router configuration.
	Config RouterConfig
	// Logger is the structured logger.
	Logger *logger.Logger
	// Directory backs the health and keep-alive counters.
	Directory *directory.Directory
	// Notifier reports notification-channel readiness.
	Notifier NotifierStatus
	// Modules contains all HTTP-facing domain modules.
	Modules []Module
}
