// Package events provides domain event definitions for decoupled,
// event-driven communication between modules.
// Infrastructure (Bus, Handler) is in platform/events.
package events

import (
	"callscreen_backend/internal/directory"
	"callscreen_backend/platform/events"

	"github.com/google/uuid"
)

// Re-export platform types for convenience
type (
	Event       = events.Event
	Bus         = events.Bus
	Handler     = events.Handler
	HandlerFunc = events.HandlerFunc
	BaseEvent   = events.BaseEvent
	InMemoryBus = events.InMemoryBus
)

// Re-export platform functions
var (
	NewBaseEvent   = events.NewBaseEvent
	NewInMemoryBus = events.NewInMemoryBus
)

// CallReceived is published when the telephony webhook reports an inbound
// call and the directory has resolved the caller.
type CallReceived struct {
	BaseEvent
	EventID   uuid.UUID              `json:"eventId"`
	Caller    string                 `json:"caller"`
	CallType  string                 `json:"callType"`
	Client    directory.ClientRecord `json:"client"`
}

func (e CallReceived) EventName() string { return "telephony.call.received" }

// ClientsUploaded is published after an export file replaced the directory.
type ClientsUploaded struct {
	BaseEvent
	EventID       uuid.UUID `json:"eventId"`
	Filename      string    `json:"filename"`
	Stored        int       `json:"stored"`
	BanksDetected int       `json:"banksDetected"`
	ElapsedMs     float64   `json:"elapsedMs"`
}

func (e ClientsUploaded) EventName() string { return "directory.clients.uploaded" }

// DirectoryCleared is published when the directory is emptied.
type DirectoryCleared struct {
	BaseEvent
	EventID uuid.UUID `json:"eventId"`
	Removed int       `json:"removed"`
}

func (e DirectoryCleared) EventName() string { return "directory.cleared" }
