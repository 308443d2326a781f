package seed

import (
	"context"
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"

	"github.com/tazman887/rork-organizator-nunta/internal/backup"
	"github.com/tazman887/rork-organizator-nunta/internal/store"
)

// LoadFromFile seeds the local snapshot store from a JSON file on first
// run. Returns nil if path is empty (seeding disabled) or a snapshot
// already exists. Both the document format and the legacy per-key backup
// split are accepted.
func LoadFromFile(path string, s *store.SnapshotStore) error {
	if path == "" {
		return nil
	}

	existing, err := s.Fetch(context.Background())
	if err != nil {
		return fmt.Errorf("checking existing snapshot: %w", err)
	}
	if existing != nil {
		log.Debug("seed: snapshot already present, skipping")
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading seed file %s: %w", path, err)
	}

	doc, err := backup.Import(data)
	if err != nil {
		return fmt.Errorf("parsing seed file %s: %w", path, err)
	}

	if err := s.Put(context.Background(), doc); err != nil {
		return fmt.Errorf("writing seed snapshot: %w", err)
	}

	log.WithField("guests", len(doc.Guests)).Info("seeded snapshot from file")
	return nil
}
