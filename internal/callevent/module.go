// Package callevent provides the telephony webhook bounded context: it
// receives inbound call notifications from the OVH switch, enriches them
// with directory data, and publishes the result on the event bus.
package callevent

import (
	"callscreen_backend/internal/directory"
	"callscreen_backend/internal/events"
	apphttp "callscreen_backend/internal/http"
	"callscreen_backend/platform/logger"
)

// Module is the telephony webhook module implementing http.Module.
type Module struct {
	handler *Handler
}

// NewModule creates and initializes the callevent module with all its dependencies.
func NewModule(dir *directory.Directory, bus events.Bus, log *logger.Logger) *Module {
	service := NewService(dir, bus, log)
	handler := NewHandler(service)

	return &Module{handler: handler}
}

// Name returns the module identifier.
func (m *Module) Name() string {
	return "callevent"
}

// RegisterRoutes mounts the telephony webhook routes.
// The switch is configured with a GET URL template; POST carries CTI
// payloads. Both land on the same resolution path.
func (m *Module) RegisterRoutes(rc *apphttp.RouterContext) {
	rc.Root.GET("/webhook/ovh", m.handler.HandleCallEvent)
	rc.Root.POST("/webhook/ovh", m.handler.HandleCallEvent)
}

// Compile-time check that Module implements http.Module
var _ apphttp.Module = (*Module)(nil)
