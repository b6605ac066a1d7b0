// Package ingest provides the client-export ingestion bounded context:
// file upload, directory browsing, point search, stats and clearing.
package ingest

import (
	"callscreen_backend/internal/directory"
	"callscreen_backend/internal/events"
	apphttp "callscreen_backend/internal/http"
	"callscreen_backend/platform/config"
	"callscreen_backend/platform/logger"
	"callscreen_backend/platform/validator"
)

// Module is the ingestion bounded context module implementing http.Module.
type Module struct {
	handler *Handler
}

// NewModule creates and initializes the ingest module with all its dependencies.
func NewModule(dir *directory.Directory, bus events.Bus, cfg config.UploadConfig, val *validator.Validator, log *logger.Logger) *Module {
	service := NewService(dir, bus, log)
	handler := NewHandler(service, cfg, val)

	return &Module{handler: handler}
}

// Name returns the module identifier.
func (m *Module) Name() string {
	return "ingest"
}

// RegisterRoutes mounts ingestion routes on the provided router context.
func (m *Module) RegisterRoutes(rc *apphttp.RouterContext) {
	rc.Root.POST("/upload", m.handler.HandleUpload)
	rc.Root.GET("/clients", m.handler.HandleListClients)
	rc.Root.GET("/search/:phone", m.handler.HandleSearch)
	rc.Root.GET("/stats", m.handler.HandleStats)
	rc.Root.GET("/clear", m.handler.HandleClear)
	rc.Root.GET("/banks", m.handler.HandleListBanks)
}

// Compile-time check that Module implements http.Module
var _ apphttp.Module = (*Module)(nil)
