package cache

import "github.com/acaipro/storefront-service/internal/domain/model"

// SessionStore defines the interface for cart session storage.
type SessionStore interface {
	With(sessionID string, fn func(cart *model.Cart))
	Exists(sessionID string) bool
	Delete(sessionID string)
	Clear()
	Stop()
}

// Metrics provides session store performance metrics.
type Metrics struct {
	Hits      int64
	Misses    int64
	Evictions int64
	Size      int
	Capacity  int
}

// SessionStoreWithMetrics extends SessionStore with metrics reporting.
type SessionStoreWithMetrics interface {
	SessionStore
	Metrics() Metrics
}
