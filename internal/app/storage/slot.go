/*
Package storage provides the durable key-value slot backing session persistence.

The slot is a single named key inside a local bbolt file. It holds the
JSON-serialized identity of the current visitor so a session survives process
restarts. Absence of the key means no session.
*/
package storage

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"go.etcd.io/bbolt"
)

// ErrSlotEmpty indicates the slot holds no record.
var ErrSlotEmpty = errors.New("session slot is empty")

const (
	sessionBucket = "session"

	// SessionSlotKey is the single named key holding the serialized identity.
	// The name is carried over from the platform's original client-side slot.
	SessionSlotKey = "mindful_campus_user"
)

// SlotStore provides a bbolt-backed durable slot.
type SlotStore struct {
	db *bbolt.DB
}

// Open opens a bbolt-backed slot store at the provided path.
func Open(path string) (*SlotStore, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}

	cleanPath := filepath.Clean(path)
	db, err := bbolt.Open(cleanPath, 0o600, &bbolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("open storage db: %w", err)
	}

	store := &SlotStore{db: db}
	if err := store.ensureBuckets(); err != nil {
		_ = db.Close()
		return nil, err
	}

	return store, nil
}

// Close closes the underlying bbolt database.
func (s *SlotStore) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Write persists the payload under the session slot key, replacing any previous record.
func (s *SlotStore) Write(ctx context.Context, payload []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || s.db == nil {
		return fmt.Errorf("storage is not configured")
	}
	if len(payload) == 0 {
		return fmt.Errorf("slot payload is required")
	}

	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket([]byte(sessionBucket))
		if bucket == nil {
			return fmt.Errorf("session bucket is missing")
		}
		return bucket.Put([]byte(SessionSlotKey), payload)
	})
}

// Read fetches the slot payload. It returns ErrSlotEmpty when no record exists.
func (s *SlotStore) Read(ctx context.Context) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if s == nil || s.db == nil {
		return nil, fmt.Errorf("storage is not configured")
	}

	var payload []byte
	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket([]byte(sessionBucket))
		if bucket == nil {
			return fmt.Errorf("session bucket is missing")
		}

		value := bucket.Get([]byte(SessionSlotKey))
		if value == nil {
			return ErrSlotEmpty
		}

		payload = make([]byte, len(value))
		copy(payload, value)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return payload, nil
}

// Delete removes the slot record. Deleting an already empty slot is not an error.
func (s *SlotStore) Delete(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || s.db == nil {
		return fmt.Errorf("storage is not configured")
	}

	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket([]byte(sessionBucket))
		if bucket == nil {
			return fmt.Errorf("session bucket is missing")
		}
		return bucket.Delete([]byte(SessionSlotKey))
	})
}

// ensureBuckets creates the session bucket when the database file is new.
func (s *SlotStore) ensureBuckets() error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		if _, err := tx.CreateBucketIfNotExists([]byte(sessionBucket)); err != nil {
			return fmt.Errorf("create session bucket: %w", err)
		}
		return nil
	})
}
