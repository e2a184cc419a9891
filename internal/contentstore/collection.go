package contentstore

import (
	"context"
	"encoding/json"
	"fmt"
)

// Collection is the ordered sequence of one record type under a single key.
// Insertion order is display order.
type Collection[T any] struct {
	store *Store
	key   Key
}

func NewCollection[T any](store *Store, key Key) *Collection[T] {
	return &Collection[T]{store: store, key: key}
}

func (c *Collection[T]) Key() Key {
	return c.key
}

// Load returns the stored records, or an empty slice when nothing has been
// saved. A corrupt value is logged and loads as empty.
func (c *Collection[T]) Load(ctx context.Context) ([]T, error) {
	records, err := c.read(ctx)
	if err == nil {
		return records, nil
	}
	if isCorrupt(err) {
		c.store.logCorrupt(c.key, err)
		return []T{}, nil
	}
	return nil, err
}

// Check reports ErrCorruptStore when the stored value would load as empty
// because it is malformed.
func (c *Collection[T]) Check(ctx context.Context) error {
	_, err := c.read(ctx)
	return err
}

// Save replaces the whole collection with records in one write, then raises
// the saved notice and informs listeners.
func (c *Collection[T]) Save(ctx context.Context, records []T) error {
	if records == nil {
		records = []T{}
	}
	for i := range records {
		if err := c.store.validate.Struct(&records[i]); err != nil {
			return fmt.Errorf("record %d of %s: %w", i, c.key, err)
		}
	}

	raw, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("encode %s: %w", c.key, err)
	}
	if err := c.store.repo.Set(ctx, string(c.key), raw); err != nil {
		return fmt.Errorf("write %s: %w", c.key, err)
	}

	c.store.notifySaved(ctx, c.key, len(records))
	return nil
}

func (c *Collection[T]) read(ctx context.Context) ([]T, error) {
	raw, found, err := c.store.repo.Get(ctx, string(c.key))
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", c.key, err)
	}
	if !found {
		return []T{}, nil
	}

	var records []T
	if err := json.Unmarshal(raw, &records); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorruptStore, err)
	}
	if records == nil {
		// A stored JSON null is not a collection.
		return nil, fmt.Errorf("%w: null collection", ErrCorruptStore)
	}
	for i := range records {
		if err := c.store.validate.Struct(&records[i]); err != nil {
			return nil, fmt.Errorf("%w: record %d: %v", ErrCorruptStore, i, err)
		}
	}
	return records, nil
}
