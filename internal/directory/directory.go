package directory

import (
	"sort"
	"strings"
	"sync"
	"time"

	"callscreen_backend/internal/bank"
	"callscreen_backend/platform/phone"
)

// Directory is the in-memory mapping from canonical phone number to client
// record. A single mutex guards both reads and writes: load volume is a few
// hundred records and lookups mutate call counters, so a coarse lock is the
// simplest correct design.
type Directory struct {
	mu      sync.Mutex
	clients map[string]*ClientRecord

	banksDetected int
	lastUpload    *time.Time
	filename      string
}

// New creates an empty directory.
func New() *Directory {
	return &Directory{clients: make(map[string]*ClientRecord)}
}

// Load parses the full text of an export and replaces the directory with
// the successfully parsed records, keyed by canonical phone. Later lines
// overwrite earlier ones for the same number. Malformed lines are skipped
// silently; the previous state stays visible until the swap, so a
// concurrent lookup never observes a half-built directory.
// Returns the number of records stored.
func (d *Directory) Load(rawText string) int {
	return d.LoadFile("", rawText)
}

// LoadFile is Load with the source filename recorded for the stats surface.
func (d *Directory) LoadFile(filename, rawText string) int {
	now := time.Now()
	next := make(map[string]*ClientRecord)
	banksDetected := 0

	for _, line := range strings.Split(rawText, "\n") {
		record, ok := parseLineSafe(line, now)
		if !ok {
			continue
		}
		if record.IBAN != "" && bank.Known(record.IBAN) {
			banksDetected++
		}
		next[record.Phone] = &record
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	d.clients = next
	d.banksDetected = banksDetected
	d.lastUpload = &now
	d.filename = filename
	return len(next)
}

// parseLineSafe shields the batch from any panic while parsing one line.
func parseLineSafe(line string, now time.Time) (record ClientRecord, ok bool) {
	defer func() {
		if recover() != nil {
			ok = false
		}
	}()
	parsed, reason := parseLine(line, now)
	return parsed, reason == lineParsed
}

// Lookup resolves a raw phone number to a client record. On a hit the
// stored record's call count and last-call timestamp are updated and a copy
// reflecting the new state is returned. A normalization failure or a miss
// yields a synthesized unknown-caller record carrying the input verbatim.
func (d *Directory) Lookup(rawPhone string) ClientRecord {
	canonical, ok := phone.Normalize(rawPhone)
	if !ok {
		return UnknownClient(rawPhone)
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	record, found := d.clients[canonical]
	if !found {
		return UnknownClient(rawPhone)
	}

	now := time.Now()
	record.CallCount++
	record.LastCall = &now
	return record.clone()
}

// Clear empties the directory and resets the upload counters, returning
// the number of records removed.
func (d *Directory) Clear() int {
	d.mu.Lock()
	defer d.mu.Unlock()

	removed := len(d.clients)
	d.clients = make(map[string]*ClientRecord)
	d.banksDetected = 0
	d.lastUpload = nil
	d.filename = ""
	return removed
}

// Size returns the number of stored records.
func (d *Directory) Size() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.clients)
}

// Snapshot returns copies of up to limit records, ordered by phone number.
func (d *Directory) Snapshot(limit int) []ClientRecord {
	d.mu.Lock()
	defer d.mu.Unlock()

	phones := make([]string, 0, len(d.clients))
	for key := range d.clients {
		phones = append(phones, key)
	}
	sort.Strings(phones)

	if limit > 0 && len(phones) > limit {
		phones = phones[:limit]
	}

	records := make([]ClientRecord, 0, len(phones))
	for _, key := range phones {
		records = append(records, d.clients[key].clone())
	}
	return records
}

// NameCount is one entry of a frequency ranking.
type NameCount struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// Stats is the aggregate view served by the stats and health surfaces.
type Stats struct {
	TotalClients  int         `json:"total_clients"`
	BanksDetected int         `json:"banks_detected"`
	LastUpload    *time.Time  `json:"last_upload"`
	Filename      string      `json:"filename,omitempty"`
	TopBanks      []NameCount `json:"top_banks"`
	TopCities     []NameCount `json:"top_cities"`
}

// Stats computes the aggregate view, including top-10 bank and city
// rankings over the stored records.
func (d *Directory) Stats() Stats {
	d.mu.Lock()
	defer d.mu.Unlock()

	banks := make(map[string]int)
	cities := make(map[string]int)
	for _, record := range d.clients {
		banks[record.Bank]++
		cities[record.City]++
	}

	var lastUpload *time.Time
	if d.lastUpload != nil {
		t := *d.lastUpload
		lastUpload = &t
	}

	return Stats{
		TotalClients:  len(d.clients),
		BanksDetected: d.banksDetected,
		LastUpload:    lastUpload,
		Filename:      d.filename,
		TopBanks:      topCounts(banks, 10),
		TopCities:     topCounts(cities, 10),
	}
}

// BanksDetected returns how many records of the last load matched a known
// branch code.
func (d *Directory) BanksDetected() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.banksDetected
}

func topCounts(counts map[string]int, limit int) []NameCount {
	ranking := make([]NameCount, 0, len(counts))
	for name, count := range counts {
		ranking = append(ranking, NameCount{Name: name, Count: count})
	}
	sort.Slice(ranking, func(i, j int) bool {
		if ranking[i].Count != ranking[j].Count {
			return ranking[i].Count > ranking[j].Count
		}
		return ranking[i].Name < ranking[j].Name
	})
	if len(ranking) > limit {
		ranking = ranking[:limit]
	}
	return ranking
}
