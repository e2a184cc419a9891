package contentstore

import "errors"

// ErrCorruptStore marks a stored value that does not match its expected shape.
// Reads fail closed: the value is reported as absent.
var ErrCorruptStore = errors.New("stored value is corrupt")

func isCorrupt(err error) bool {
	return errors.Is(err, ErrCorruptStore)
}
