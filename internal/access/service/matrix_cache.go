// Package service provides in-process supporting services for access control.
package service

import (
	"sync"
	"time"

	"github.com/google/uuid"

	accessDomain "github.com/badgeops/badgeops/internal/access/domain"
)

// MatrixCache caches permission matrices per role.
//
// The cache stores immutable *Matrix snapshots and swaps whole pointers, so a
// concurrent reader always observes either the previous complete grant set or
// the new complete grant set, never a mix. It is a derived cache, not the
// system of record: Replace on the matrix use case refreshes it in-process,
// and every entry expires after the configured TTL so a matrix written by
// another process (a CLI command against the same database, another server
// instance) is picked up within one TTL window.
type MatrixCache interface {
	// Get returns the cached matrix for a role, if present and not expired.
	Get(roleID uuid.UUID) (*accessDomain.Matrix, bool)

	// Put stores a matrix snapshot. The caller must not mutate the matrix
	// after handing it to the cache.
	Put(matrix *accessDomain.Matrix)
}

type matrixEntry struct {
	matrix   *accessDomain.Matrix
	storedAt time.Time
}

// matrixCache implements MatrixCache with a mutex-guarded map of snapshots.
type matrixCache struct {
	mu      sync.RWMutex
	ttl     time.Duration
	now     func() time.Time
	entries map[uuid.UUID]matrixEntry
}

// NewMatrixCache creates an empty MatrixCache whose entries expire after ttl.
// A ttl of zero or less disables expiry.
func NewMatrixCache(ttl time.Duration) MatrixCache {
	return &matrixCache{
		ttl:     ttl,
		now:     time.Now,
		entries: make(map[uuid.UUID]matrixEntry),
	}
}

func (c *matrixCache) Get(roleID uuid.UUID) (*accessDomain.Matrix, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	entry, ok := c.entries[roleID]
	if !ok {
		return nil, false
	}
	if c.ttl > 0 && c.now().Sub(entry.storedAt) >= c.ttl {
		return nil, false
	}
	return entry.matrix, true
}

func (c *matrixCache) Put(matrix *accessDomain.Matrix) {
	if matrix == nil {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[matrix.RoleID] = matrixEntry{matrix: matrix, storedAt: c.now()}
}
