package contentstore

import (
	"time"

	"github.com/patrickmn/go-cache"
)

const (
	SavedMessage = "Changes saved successfully!"
	AckTTL       = 3 * time.Second

	ackKey = "save_ack"
)

// Acknowledger holds the transient "saved" notice shown after a write.
type Acknowledger struct {
	cache *cache.Cache
}

func NewAcknowledger(ttl time.Duration) *Acknowledger {
	return &Acknowledger{
		cache: cache.New(ttl, ttl),
	}
}

// Signal replaces any current notice and restarts its timer.
func (a *Acknowledger) Signal(message string) {
	a.cache.Set(ackKey, message, cache.DefaultExpiration)
}

// Current returns the live notice, or "" once it has expired.
func (a *Acknowledger) Current() string {
	if x, found := a.cache.Get(ackKey); found {
		return x.(string)
	}
	return ""
}
