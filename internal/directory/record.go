// Package directory implements the in-memory client directory: parsing of
// pipe-delimited customer exports, canonical phone keys, bank labels, and
// call-count tracking on lookups. The directory is rebuilt wholesale on
// each ingestion; nothing is persisted across restarts.
package directory

import "time"

// Placeholder stands in for fields the export format never supplies.
const Placeholder = "N/A"

// Status tells whether a record came from an ingested file or was
// synthesized for an unknown caller.
type Status string

const (
	// StatusProspect marks records sourced from an ingested file.
	StatusProspect Status = "Prospect"
	// StatusUnknown marks records synthesized on a lookup miss.
	StatusUnknown Status = "Non référencé"
)

// ClientRecord is one customer entry. JSON tags match the wire format the
// dashboard and the notification templates consume.
type ClientRecord struct {
	LastName   string     `json:"nom"`
	FirstName  string     `json:"prenom"`
	BirthDate  string     `json:"date_naissance"`
	BirthPlace string     `json:"lieu_naissance"`
	Gender     string     `json:"sexe"`
	Profession string     `json:"profession"`
	Company    string     `json:"entreprise"`
	Email      string     `json:"email"`
	Address    string     `json:"adresse"`
	City       string     `json:"ville"`
	PostalCode string     `json:"code_postal"`
	Phone      string     `json:"telephone"`
	IBAN       string     `json:"iban"`
	SWIFT      string     `json:"swift"`
	Bank       string     `json:"banque"`
	Status     Status     `json:"statut"`
	CallCount  int        `json:"nb_appels"`
	LastCall   *time.Time `json:"dernier_appel"`
	UploadedAt *time.Time `json:"date_upload"`
	Notes      string     `json:"notes"`
}

// Known reports whether the record was resolved from the directory.
func (r ClientRecord) Known() bool {
	return r.Status != StatusUnknown
}

// clone returns an independent copy. Pointer fields are duplicated so
// callers can never reach directory-internal state through the copy.
func (r ClientRecord) clone() ClientRecord {
	out := r
	if r.LastCall != nil {
		t := *r.LastCall
		out.LastCall = &t
	}
	if r.UploadedAt != nil {
		t := *r.UploadedAt
		out.UploadedAt = &t
	}
	return out
}

// UnknownClient synthesizes the record returned for a directory miss.
// The caller's input phone is preserved verbatim, normalized or not, so the
// notification still shows what the switch reported.
func UnknownClient(rawPhone string) ClientRecord {
	return ClientRecord{
		LastName:   "INCONNU",
		FirstName:  "CLIENT",
		BirthDate:  Placeholder,
		BirthPlace: Placeholder,
		Gender:     Placeholder,
		Profession: Placeholder,
		Company:    Placeholder,
		Email:      Placeholder,
		Address:    Placeholder,
		City:       Placeholder,
		PostalCode: Placeholder,
		Phone:      rawPhone,
		IBAN:       Placeholder,
		SWIFT:      Placeholder,
		Bank:       Placeholder,
		Status:     StatusUnknown,
	}
}
