package backup

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/tazman887/rork-organizator-nunta/internal/domain"
)

// ErrUnknownFormat is returned when an imported file matches neither the
// snapshot shape nor the legacy per-key split.
var ErrUnknownFormat = errors.New("unrecognized backup format")

// legacySnapshot is the shape older backups used: one top-level key per
// storage slot instead of a single document.
type legacySnapshot struct {
	State    *domain.WeddingDetails `json:"wedding_state"`
	Tasks    []domain.Task          `json:"wedding_tasks"`
	Guests   []domain.Guest         `json:"wedding_guests"`
	Expenses []domain.Expense       `json:"wedding_budget"`
	Tables   []domain.Table         `json:"wedding_tables"`
}

// Export renders the document as an indented JSON backup.
func Export(doc domain.Document) ([]byte, error) {
	doc.Normalize()
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling backup: %w", err)
	}
	return data, nil
}

// Import parses a backup in either the current document format or the
// legacy per-key split and returns a normalized document. Importing
// fully overwrites local state; that decision belongs to the caller.
func Import(data []byte) (*domain.Document, error) {
	var probe map[string]json.RawMessage
	if err := json.Unmarshal(data, &probe); err != nil {
		return nil, fmt.Errorf("parsing backup: %w", err)
	}

	if _, ok := probe["weddingState"]; ok {
		var doc domain.Document
		if err := json.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("parsing backup document: %w", err)
		}
		doc.Normalize()
		return &doc, nil
	}

	if hasLegacyKey(probe) {
		var legacy legacySnapshot
		if err := json.Unmarshal(data, &legacy); err != nil {
			return nil, fmt.Errorf("parsing legacy backup: %w", err)
		}
		doc := domain.Document{
			Tasks:    legacy.Tasks,
			Guests:   legacy.Guests,
			Expenses: legacy.Expenses,
			Tables:   legacy.Tables,
		}
		if legacy.State != nil {
			doc.WeddingState = *legacy.State
		}
		doc.Normalize()
		return &doc, nil
	}

	return nil, ErrUnknownFormat
}

func hasLegacyKey(probe map[string]json.RawMessage) bool {
	for _, key := range []string{"wedding_state", "wedding_tasks", "wedding_guests", "wedding_budget", "wedding_tables"} {
		if _, ok := probe[key]; ok {
			return true
		}
	}
	return false
}
