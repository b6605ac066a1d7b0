// Package config provides centralized application configuration.
// Configuration is loaded once from the environment in main and injected
// into modules through the narrow interfaces defined here.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// HTTPConfig provides HTTP server settings.
type HTTPConfig interface {
	GetHTTPAddr() string
	GetCORSAllowAll() bool
	GetCORSOrigins() []string
}

// TelegramConfig provides settings for the Telegram notification channel.
type TelegramConfig interface {
	GetTelegramToken() string
	GetTelegramChatID() int64
	IsTelegramEnabled() bool
}

// LineConfig identifies the monitored telephony line.
type LineConfig interface {
	GetLineNumber() string
}

// UploadConfig provides client-file upload limits.
type UploadConfig interface {
	GetUploadMaxBytes() int64
}

// Config holds all application configuration loaded from the environment.
type Config struct {
	Env            string
	HTTPAddr       string
	CORSAllowAll   bool
	CORSOrigins    []string
	TelegramToken  string
	TelegramChatID int64
	LineNumber     string
	UploadMaxBytes int64
	KeepAlive      bool
	KeepAlivePing  time.Duration
}

// Load reads configuration from the environment, applying defaults.
// TELEGRAM_TOKEN and CHAT_ID are optional: when missing the service still
// serves lookups and uploads, and notification endpoints report 503.
func Load() (*Config, error) {
	_ = godotenv.Load()

	corsOrigins := splitCSV(getEnv("CORS_ORIGINS", "*"))
	corsAllowAll := strings.EqualFold(getEnv("CORS_ALLOW_ALL", "true"), "true")
	if containsWildcard(corsOrigins) {
		corsAllowAll = true
	}

	token := getEnv("TELEGRAM_TOKEN", "")
	chatID, err := parseChatID(getEnv("CHAT_ID", "-4928923400"))
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		Env:            getEnv("APP_ENV", "development"),
		HTTPAddr:       getEnv("HTTP_ADDR", ":8080"),
		CORSAllowAll:   corsAllowAll,
		CORSOrigins:    corsOrigins,
		TelegramToken:  token,
		TelegramChatID: chatID,
		LineNumber:     getEnv("OVH_LINE_NUMBER", "0033185093039"),
		UploadMaxBytes: parseBytes(getEnv("UPLOAD_MAX_BYTES", "10485760")),
		KeepAlive:      strings.EqualFold(getEnv("RENDER", ""), "true") || getEnv("RENDER", "") == "1",
		KeepAlivePing:  mustDuration(getEnv("KEEP_ALIVE_PING", "10m")),
	}

	if cfg.TelegramToken != "" && !strings.Contains(cfg.TelegramToken, ":") {
		return nil, fmt.Errorf("TELEGRAM_TOKEN is malformed (expected <bot id>:<secret>)")
	}

	return cfg, nil
}

// HTTPConfig implementation
func (c *Config) GetHTTPAddr() string      { return c.HTTPAddr }
func (c *Config) GetCORSAllowAll() bool    { return c.CORSAllowAll }
func (c *Config) GetCORSOrigins() []string { return c.CORSOrigins }

// TelegramConfig implementation
func (c *Config) GetTelegramToken() string { return c.TelegramToken }
func (c *Config) GetTelegramChatID() int64 { return c.TelegramChatID }
func (c *Config) IsTelegramEnabled() bool  { return c.TelegramToken != "" }

// LineConfig implementation
func (c *Config) GetLineNumber() string { return c.LineNumber }

// UploadConfig implementation
func (c *Config) GetUploadMaxBytes() int64 { return c.UploadMaxBytes }
