package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	bolt "go.etcd.io/bbolt"

	"github.com/tazman887/rork-organizator-nunta/internal/domain"
)

var (
	snapshotBucket = []byte("snapshot")
	snapshotKey    = []byte("document")
)

// SnapshotStore keeps the whole planning document under a single key in
// a local bbolt file. It is the local-first side of the synchronizer:
// every mutation is written through here before the debounced remote
// save fires.
type SnapshotStore struct {
	db *bolt.DB
}

func NewSnapshotStore(path string) (*SnapshotStore, error) {
	db, err := bolt.Open(path, 0600, &bolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("opening bbolt db at %s: %w", path, err)
	}

	// Reason: bucket must exist before any read/write operations
	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(snapshotBucket)
		return err
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("creating snapshot bucket: %w", err)
	}

	return &SnapshotStore{db: db}, nil
}

func (s *SnapshotStore) Fetch(_ context.Context) (*domain.Document, error) {
	var doc *domain.Document

	err := s.db.View(func(tx *bolt.Tx) error {
		data := tx.Bucket(snapshotBucket).Get(snapshotKey)
		if data == nil {
			return nil
		}

		var d domain.Document
		if err := json.Unmarshal(data, &d); err != nil {
			return fmt.Errorf("unmarshaling snapshot: %w", err)
		}
		d.Normalize()
		doc = &d
		return nil
	})
	if err != nil {
		return nil, err
	}

	return doc, nil
}

func (s *SnapshotStore) Put(_ context.Context, doc *domain.Document) error {
	data, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("marshaling snapshot: %w", err)
	}

	return s.db.Update(func(tx *bolt.Tx) error {
		if err := tx.Bucket(snapshotBucket).Put(snapshotKey, data); err != nil {
			return fmt.Errorf("writing snapshot: %w", err)
		}
		return nil
	})
}

func (s *SnapshotStore) Close() error {
	return s.db.Close()
}
