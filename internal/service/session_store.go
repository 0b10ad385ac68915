// Package service contains the business logic for the storefront service.
package service

import (
	"hash/fnv"
	"sync"
	"sync/atomic"
	"time"

	"github.com/acaipro/storefront-service/internal/domain/model"
	"github.com/acaipro/storefront-service/internal/metrics"
	"github.com/acaipro/storefront-service/internal/service/cache"
)

// cachedTime provides a cached time value updated periodically.
// This reduces the overhead of frequent time.Now() calls.
var (
	cachedTime     atomic.Value
	cachedTimeOnce sync.Once
)

func init() {
	initCachedTime()
}

// initCachedTime starts the background time updater.
func initCachedTime() {
	cachedTimeOnce.Do(func() {
		cachedTime.Store(time.Now())
		go func() {
			ticker := time.NewTicker(100 * time.Millisecond)
			for t := range ticker.C {
				cachedTime.Store(t)
			}
		}()
	})
}

// now returns the cached current time (updated every 100ms).
// Use this for non-critical time checks like session expiration.
func now() time.Time {
	if t := cachedTime.Load(); t != nil {
		if cachedT, ok := t.(time.Time); ok {
			return cachedT
		}
	}
	return time.Now()
}

// ShardedSessionStore keeps cart sessions in memory, distributed across
// multiple shards to reduce lock contention. Each shard is an LRU with TTL
// expiration; an expired or evicted session simply yields a fresh empty cart.
type ShardedSessionStore struct {
	shards    []*sessionShard
	numShards int
	shardMask uint32
}

// NewShardedSessionStore creates a session store with the specified total
// capacity, TTL, and number of shards. numShards is rounded up to a power of 2.
func NewShardedSessionStore(capacity int, ttl time.Duration, numShards int) *ShardedSessionStore {
	if numShards <= 0 {
		numShards = 16
	}
	// Round up to next power of 2
	n := 1
	for n < numShards {
		n *= 2
	}
	numShards = n

	perShardCapacity := capacity / numShards
	if perShardCapacity < 1 {
		perShardCapacity = 1
	}

	shards := make([]*sessionShard, numShards)
	for i := range shards {
		shards[i] = newSessionShard(perShardCapacity, ttl)
	}

	return &ShardedSessionStore{
		shards:    shards,
		numShards: numShards,
		shardMask: uint32(numShards - 1),
	}
}

// getShard returns the shard for the given session id using FNV hash.
func (s *ShardedSessionStore) getShard(sessionID string) *sessionShard {
	h := fnv.New32a()
	h.Write([]byte(sessionID))
	return s.shards[h.Sum32()&s.shardMask]
}

// With runs fn on the session's cart under the shard lock, creating an empty
// cart when the session is new or has expired. Mutations made by fn refresh
// the session's TTL.
func (s *ShardedSessionStore) With(sessionID string, fn func(cart *model.Cart)) {
	s.getShard(sessionID).With(sessionID, fn)
}

// Exists reports whether a live, unexpired session is stored.
func (s *ShardedSessionStore) Exists(sessionID string) bool {
	return s.getShard(sessionID).Exists(sessionID)
}

// Delete removes a session.
func (s *ShardedSessionStore) Delete(sessionID string) {
	s.getShard(sessionID).Delete(sessionID)
}

// Clear removes all sessions from all shards.
func (s *ShardedSessionStore) Clear() {
	for _, shard := range s.shards {
		shard.Clear()
	}
}

// Stop gracefully shuts down all shards.
func (s *ShardedSessionStore) Stop() {
	for _, shard := range s.shards {
		shard.Stop()
	}
}

// Metrics returns aggregated metrics from all shards.
func (s *ShardedSessionStore) Metrics() cache.Metrics {
	var total cache.Metrics
	for _, shard := range s.shards {
		m := shard.Metrics()
		total.Hits += m.Hits
		total.Misses += m.Misses
		total.Evictions += m.Evictions
		total.Size += m.Size
		total.Capacity += m.Capacity
	}
	metrics.UpdateSessionMetrics(total.Size, total.Capacity)
	return total
}

// sessionShard provides thread-safe LRU session storage with TTL expiration.
type sessionShard struct {
	mu        sync.Mutex
	capacity  int
	ttl       time.Duration
	items     map[string]*sessionEntry
	head      *sessionEntry
	tail      *sessionEntry
	stopCh    chan struct{}
	hits      int64
	misses    int64
	evictions int64
}

// sessionEntry represents a single stored cart with expiration tracking.
type sessionEntry struct {
	sessionID string
	cart      *model.Cart
	expiresAt time.Time
	prev      *sessionEntry
	next      *sessionEntry
}

// newSessionShard creates a shard with the specified capacity and TTL.
// A background goroutine periodically cleans up expired sessions.
func newSessionShard(capacity int, ttl time.Duration) *sessionShard {
	s := &sessionShard{
		capacity: capacity,
		ttl:      ttl,
		items:    make(map[string]*sessionEntry, capacity),
		stopCh:   make(chan struct{}),
	}
	go s.startCleanup()
	return s
}

// With runs fn on the session's cart under the shard lock.
func (s *sessionShard) With(sessionID string, fn func(cart *model.Cart)) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.items[sessionID]
	if ok && time.Now().After(entry.expiresAt) {
		// Expired session restarts with an empty cart
		s.removeEntry(entry)
		ok = false
	}

	if !ok {
		atomic.AddInt64(&s.misses, 1)
		metrics.RecordSessionStoreOperation("get", "miss")
		entry = &sessionEntry{
			sessionID: sessionID,
			cart:      model.NewCart(),
		}
		s.items[sessionID] = entry
		s.addToFront(entry)
		if len(s.items) > s.capacity {
			s.removeTail()
			atomic.AddInt64(&s.evictions, 1)
			metrics.RecordSessionStoreOperation("evict", "capacity")
		}
	} else {
		atomic.AddInt64(&s.hits, 1)
		metrics.RecordSessionStoreOperation("get", "hit")
		s.moveToFront(entry)
	}

	entry.expiresAt = now().Add(s.ttl)
	fn(entry.cart)
}

// Exists reports whether a live session is stored, without refreshing its TTL.
func (s *sessionShard) Exists(sessionID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.items[sessionID]
	if !ok {
		return false
	}
	return !time.Now().After(entry.expiresAt)
}

// Delete removes a session.
func (s *sessionShard) Delete(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if entry, ok := s.items[sessionID]; ok {
		s.removeEntry(entry)
		metrics.RecordSessionStoreOperation("delete", "success")
	}
}

// Metrics returns current shard metrics.
func (s *sessionShard) Metrics() cache.Metrics {
	s.mu.Lock()
	defer s.mu.Unlock()

	return cache.Metrics{
		Hits:      atomic.LoadInt64(&s.hits),
		Misses:    atomic.LoadInt64(&s.misses),
		Evictions: atomic.LoadInt64(&s.evictions),
		Size:      len(s.items),
		Capacity:  s.capacity,
	}
}

// startCleanup runs an adaptive background cleanup routine.
func (s *sessionShard) startCleanup() {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			// Adaptive cleanup - only run if shard is more than 80% full
			s.mu.Lock()
			shouldCleanup := len(s.items) > (s.capacity * 80 / 100)
			s.mu.Unlock()

			if shouldCleanup {
				s.cleanup()
			}
		case <-s.stopCh:
			return
		}
	}
}

// cleanup removes all expired sessions from the shard.
func (s *sessionShard) cleanup() {
	s.mu.Lock()
	defer s.mu.Unlock()

	currentTime := now()
	for _, entry := range s.items {
		if currentTime.After(entry.expiresAt) {
			s.removeEntry(entry)
		}
	}
}

// removeEntry removes an entry from both the map and the linked list.
func (s *sessionShard) removeEntry(entry *sessionEntry) {
	delete(s.items, entry.sessionID)
	s.remove(entry)
}

// moveToFront moves an existing entry to the front of the LRU list.
func (s *sessionShard) moveToFront(entry *sessionEntry) {
	if entry == s.head {
		return
	}
	s.remove(entry)
	s.addToFront(entry)
}

// addToFront adds an entry to the front of the LRU list.
func (s *sessionShard) addToFront(entry *sessionEntry) {
	entry.prev = nil
	entry.next = s.head
	if s.head != nil {
		s.head.prev = entry
	}
	s.head = entry
	if s.tail == nil {
		s.tail = entry
	}
}

// remove removes an entry from the linked list without touching the map.
func (s *sessionShard) remove(entry *sessionEntry) {
	if entry.prev != nil {
		entry.prev.next = entry.next
	} else {
		s.head = entry.next
	}
	if entry.next != nil {
		entry.next.prev = entry.prev
	} else {
		s.tail = entry.prev
	}
}

// removeTail removes the least recently used session from the shard.
func (s *sessionShard) removeTail() {
	if s.tail == nil {
		return
	}
	delete(s.items, s.tail.sessionID)
	s.remove(s.tail)
}

// Clear removes all sessions from the shard.
func (s *sessionShard) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.items = make(map[string]*sessionEntry, s.capacity)
	s.head = nil
	s.tail = nil

	atomic.StoreInt64(&s.hits, 0)
	atomic.StoreInt64(&s.misses, 0)
	atomic.StoreInt64(&s.evictions, 0)
}

// Stop gracefully shuts down the shard and cleans up resources.
func (s *sessionShard) Stop() {
	close(s.stopCh)
}
