package contract

import "context"

// KeyValueRepository is the persistence boundary of the content store: opaque
// values under string keys. A missing key is reported with found == false,
// never as an error.
type KeyValueRepository interface {
	Get(ctx context.Context, key string) (value []byte, found bool, err error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, keys ...string) error
}
