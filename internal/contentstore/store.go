package contentstore

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"portfolio-be/internal/pkg/logger"
	"portfolio-be/internal/repository/contract"

	"github.com/go-playground/validator/v10"
)

// Listener is told about every successful collection write.
type Listener interface {
	CollectionSaved(ctx context.Context, key Key, size int)
}

// Store persists single records and whole collections as JSON values in a
// key-value repository. It has no versioning and no merge logic: a save
// replaces the value under its key.
type Store struct {
	repo     contract.KeyValueRepository
	ack      *Acknowledger
	logger   logger.ILogger
	validate *validator.Validate

	mu        sync.RWMutex
	listeners []Listener
}

func New(repo contract.KeyValueRepository, ack *Acknowledger, log logger.ILogger) *Store {
	return &Store{
		repo:     repo,
		ack:      ack,
		logger:   log,
		validate: validator.New(),
	}
}

func (s *Store) Subscribe(l Listener) {
	s.mu.Lock()
	s.listeners = append(s.listeners, l)
	s.mu.Unlock()
}

// Acknowledgment is the current "saved" notice, empty when none is live.
func (s *Store) Acknowledgment() string {
	return s.ack.Current()
}

// GetRecord decodes the value under key into dst. A missing or corrupt value
// reports found == false; only repository failures are returned as errors.
func (s *Store) GetRecord(ctx context.Context, key Key, dst interface{}) (bool, error) {
	raw, found, err := s.repo.Get(ctx, string(key))
	if err != nil {
		return false, fmt.Errorf("read %s: %w", key, err)
	}
	if !found {
		return false, nil
	}
	if err := s.decodeRecord(raw, dst); err != nil {
		s.logCorrupt(key, err)
		return false, nil
	}
	return true, nil
}

// PutRecord stores a single value. It does not raise the saved notice.
func (s *Store) PutRecord(ctx context.Context, key Key, value interface{}) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	if err := s.repo.Set(ctx, string(key), raw); err != nil {
		return fmt.Errorf("write %s: %w", key, err)
	}
	return nil
}

// Remove deletes the given keys. Missing keys are not an error.
func (s *Store) Remove(ctx context.Context, keys ...Key) error {
	names := make([]string, len(keys))
	for i, k := range keys {
		names[i] = string(k)
	}
	if err := s.repo.Delete(ctx, names...); err != nil {
		return fmt.Errorf("delete %v: %w", names, err)
	}
	return nil
}

func (s *Store) decodeRecord(raw []byte, dst interface{}) error {
	if err := json.Unmarshal(raw, dst); err != nil {
		return fmt.Errorf("%w: %v", ErrCorruptStore, err)
	}
	if err := s.validateValue(dst); err != nil {
		return fmt.Errorf("%w: %v", ErrCorruptStore, err)
	}
	return nil
}

func (s *Store) validateValue(v interface{}) error {
	// Plain strings such as the OAuth state carry no struct tags.
	switch v.(type) {
	case *string, string:
		return nil
	}
	return s.validate.Struct(v)
}

func (s *Store) logCorrupt(key Key, err error) {
	s.logger.Warn("ContentStore", "Ignoring corrupt stored value", map[string]interface{}{
		"key":   string(key),
		"error": err.Error(),
	})
}

func (s *Store) notifySaved(ctx context.Context, key Key, size int) {
	s.ack.Signal(SavedMessage)

	s.mu.RLock()
	listeners := append([]Listener(nil), s.listeners...)
	s.mu.RUnlock()

	for _, l := range listeners {
		l.CollectionSaved(ctx, key, size)
	}
}
