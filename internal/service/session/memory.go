// Package session bounds per-conversation transcripts for the
// assistant. Both backends enforce a TTL and a size cap so an abandoned
// browser tab cannot grow state forever.
package session

import (
	"context"
	"sync"
	"time"

	"FinHub/internal/domain/models"
)

// maxTurns caps how much transcript a single session keeps. Older turns
// roll off; the assistant only needs recent context.
const maxTurns = 50

type memoryEntry struct {
	turns    []models.ChatTurn
	access   time.Time
	expireAt time.Time
}

func (e *memoryEntry) expired() bool {
	return time.Now().After(e.expireAt)
}

// MemoryStore is an in-process SessionStore with TTL expiry and LRU
// eviction once maxSessions is reached.
type MemoryStore struct {
	mu          sync.Mutex
	data        map[string]*memoryEntry
	ttl         time.Duration
	maxSessions int

	cleanupTicker *time.Ticker
}

// NewMemoryStore creates a bounded in-memory session store.
func NewMemoryStore(ttl time.Duration, maxSessions int) *MemoryStore {
	if ttl <= 0 {
		ttl = 30 * time.Minute
	}
	if maxSessions <= 0 {
		maxSessions = 1000
	}
	ms := &MemoryStore{
		data:          make(map[string]*memoryEntry),
		ttl:           ttl,
		maxSessions:   maxSessions,
		cleanupTicker: time.NewTicker(5 * time.Minute),
	}
	go ms.cleanupExpired()
	return ms
}

// Get returns a copy of the session transcript.
func (ms *MemoryStore) Get(_ context.Context, sessionID string) ([]models.ChatTurn, bool) {
	ms.mu.Lock()
	defer ms.mu.Unlock()

	entry, ok := ms.data[sessionID]
	if !ok || entry.expired() {
		if ok {
			delete(ms.data, sessionID)
		}
		return nil, false
	}
	entry.access = time.Now()

	out := make([]models.ChatTurn, len(entry.turns))
	copy(out, entry.turns)
	return out, true
}

// Append adds turns to the session, creating it if needed. Each append
// refreshes the TTL.
func (ms *MemoryStore) Append(_ context.Context, sessionID string, turns ...models.ChatTurn) error {
	ms.mu.Lock()
	defer ms.mu.Unlock()

	entry, ok := ms.data[sessionID]
	if !ok || entry.expired() {
		if len(ms.data) >= ms.maxSessions {
			ms.evictLRU()
		}
		entry = &memoryEntry{}
		ms.data[sessionID] = entry
	}
	entry.turns = append(entry.turns, turns...)
	if len(entry.turns) > maxTurns {
		entry.turns = entry.turns[len(entry.turns)-maxTurns:]
	}
	entry.access = time.Now()
	entry.expireAt = time.Now().Add(ms.ttl)
	return nil
}

func (ms *MemoryStore) evictLRU() {
	var oldestKey string
	oldestTime := time.Now()
	for key, entry := range ms.data {
		if entry.access.Before(oldestTime) {
			oldestTime = entry.access
			oldestKey = key
		}
	}
	if oldestKey != "" {
		delete(ms.data, oldestKey)
	}
}

func (ms *MemoryStore) cleanupExpired() {
	for range ms.cleanupTicker.C {
		ms.mu.Lock()
		for key, entry := range ms.data {
			if entry.expired() {
				delete(ms.data, key)
			}
		}
		ms.mu.Unlock()
	}
}

// Close stops the cleanup ticker.
func (ms *MemoryStore) Close() error {
	if ms.cleanupTicker != nil {
		ms.cleanupTicker.Stop()
	}
	return nil
}
