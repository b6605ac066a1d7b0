package ingest

import (
	"context"
	"time"

	"callscreen_backend/internal/directory"
	"callscreen_backend/internal/events"
	"callscreen_backend/platform/logger"

	"github.com/google/uuid"
)

// Service implements the ingestion use cases on top of the directory.
type Service struct {
	dir *directory.Directory
	bus events.Bus
	log *logger.Logger
}

// NewService creates the ingestion service.
func NewService(dir *directory.Directory, bus events.Bus, log *logger.Logger) *Service {
	return &Service{dir: dir, bus: bus, log: log}
}

// IngestResult summarizes one export ingestion.
type IngestResult struct {
	Stored        int
	BanksDetected int
	Elapsed       time.Duration
}

// Ingest replaces the directory with the records parsed from the export
// content and publishes a ClientsUploaded event.
func (s *Service) Ingest(ctx context.Context, filename, content string) IngestResult {
	start := time.Now()
	stored := s.dir.LoadFile(filename, content)
	elapsed := time.Since(start)
	banksDetected := s.dir.BanksDetected()

	s.log.WithContext(ctx).UploadEvent(filename, countLines(content), stored, banksDetected, float64(elapsed.Milliseconds()))

	s.bus.Publish(ctx, events.ClientsUploaded{
		BaseEvent:     events.NewBaseEvent(),
		EventID:       uuid.New(),
		Filename:      filename,
		Stored:        stored,
		BanksDetected: banksDetected,
		ElapsedMs:     float64(elapsed.Milliseconds()),
	})

	return IngestResult{Stored: stored, BanksDetected: banksDetected, Elapsed: elapsed}
}

// Search resolves a phone number, counting the access like a call would.
func (s *Service) Search(rawPhone string) directory.ClientRecord {
	return s.dir.Lookup(rawPhone)
}

// Clients returns up to limit stored records.
func (s *Service) Clients(limit int) []directory.ClientRecord {
	return s.dir.Snapshot(limit)
}

// Stats returns the aggregate directory view.
func (s *Service) Stats() directory.Stats {
	return s.dir.Stats()
}

// Clear empties the directory and publishes a DirectoryCleared event.
func (s *Service) Clear(ctx context.Context) int {
	removed := s.dir.Clear()
	s.log.WithContext(ctx).Info("directory cleared", "removed", removed)

	s.bus.Publish(ctx, events.DirectoryCleared{
		BaseEvent: events.NewBaseEvent(),
		EventID:   uuid.New(),
		Removed:   removed,
	})
	return removed
}

func countLines(content string) int {
	if content == "" {
		return 0
	}
	count := 1
	for _, r := range content {
		if r == '\n' {
			count++
		}
	}
	return count
}
