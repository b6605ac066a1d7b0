package callevent

import (
	"context"

	"callscreen_backend/internal/directory"
	"callscreen_backend/internal/events"
	"callscreen_backend/platform/logger"

	"github.com/google/uuid"
)

// Service resolves inbound call events against the directory.
type Service struct {
	dir *directory.Directory
	bus events.Bus
	log *logger.Logger
}

// NewService creates the call-event service.
func NewService(dir *directory.Directory, bus events.Bus, log *logger.Logger) *Service {
	return &Service{dir: dir, bus: bus, log: log}
}

// Resolve looks the caller up, publishes a CallReceived event, and returns
// the resolved record. A miss still resolves: the synthesized unknown
// record keeps the notification flowing, enrichment is best effort.
func (s *Service) Resolve(ctx context.Context, caller, callType string) directory.ClientRecord {
	record := s.dir.Lookup(caller)

	s.log.WithContext(ctx).CallEvent(caller, callType, record.Known())

	s.bus.Publish(ctx, events.CallReceived{
		BaseEvent: events.NewBaseEvent(),
		EventID:   uuid.New(),
		Caller:    caller,
		CallType:  callType,
		Client:    record,
	})

	return record
}
