package service

import (
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	accessDomain "github.com/badgeops/badgeops/internal/access/domain"
)

func matrixWithGrant(roleID uuid.UUID, areas ...accessDomain.AreaGrant) *accessDomain.Matrix {
	return &accessDomain.Matrix{RoleID: roleID, Areas: areas}
}

func TestMatrixCache(t *testing.T) {
	t.Run("GetMissingReturnsFalse", func(t *testing.T) {
		cache := NewMatrixCache(time.Minute)
		_, ok := cache.Get(uuid.Must(uuid.NewV7()))
		assert.False(t, ok)
	})

	t.Run("PutThenGet", func(t *testing.T) {
		cache := NewMatrixCache(time.Minute)
		roleID := uuid.Must(uuid.NewV7())
		matrix := matrixWithGrant(roleID, accessDomain.AreaGrant{Title: "Generate ID"})

		cache.Put(matrix)

		got, ok := cache.Get(roleID)
		assert.True(t, ok)
		assert.Equal(t, matrix, got)
	})

	t.Run("PutNilIsNoop", func(t *testing.T) {
		cache := NewMatrixCache(time.Minute)
		cache.Put(nil)
	})

	t.Run("EntryExpiresAfterTTL", func(t *testing.T) {
		cache := NewMatrixCache(time.Minute).(*matrixCache)
		roleID := uuid.Must(uuid.NewV7())

		current := time.Now().UTC()
		cache.now = func() time.Time { return current }
		cache.Put(matrixWithGrant(roleID))

		_, ok := cache.Get(roleID)
		assert.True(t, ok)

		current = current.Add(time.Minute)
		_, ok = cache.Get(roleID)
		assert.False(t, ok)
	})

	t.Run("ZeroTTLNeverExpires", func(t *testing.T) {
		cache := NewMatrixCache(0).(*matrixCache)
		roleID := uuid.Must(uuid.NewV7())

		current := time.Now().UTC()
		cache.now = func() time.Time { return current }
		cache.Put(matrixWithGrant(roleID))

		current = current.Add(24 * time.Hour)
		_, ok := cache.Get(roleID)
		assert.True(t, ok)
	})

	t.Run("PutResetsExpiry", func(t *testing.T) {
		cache := NewMatrixCache(time.Minute).(*matrixCache)
		roleID := uuid.Must(uuid.NewV7())

		current := time.Now().UTC()
		cache.now = func() time.Time { return current }
		cache.Put(matrixWithGrant(roleID))

		current = current.Add(45 * time.Second)
		cache.Put(matrixWithGrant(roleID))

		current = current.Add(45 * time.Second)
		_, ok := cache.Get(roleID)
		assert.True(t, ok)
	})
}

func TestMatrixCacheAtomicReplace(t *testing.T) {
	// A reader polling Get during concurrent Put calls must always observe a
	// complete snapshot: either the old grant set or the new one, never a mix
	// of both.
	cache := NewMatrixCache(time.Minute)
	roleID := uuid.Must(uuid.NewV7())

	oldSet := matrixWithGrant(roleID,
		accessDomain.AreaGrant{Title: "Generate ID", Actions: accessDomain.ActionSet{View: true}},
		accessDomain.AreaGrant{Title: "Employee Management", Actions: accessDomain.ActionSet{View: true}},
	)
	newSet := matrixWithGrant(roleID,
		accessDomain.AreaGrant{Title: "Generate ID", Actions: accessDomain.ActionSet{View: true, Generate: true}},
		accessDomain.AreaGrant{Title: "Employee Management", Actions: accessDomain.ActionSet{View: true, Edit: true}},
	)
	cache.Put(oldSet)

	var wg sync.WaitGroup
	stop := make(chan struct{})
	mixed := make(chan *accessDomain.Matrix, 1)

	wg.Add(1)
	go func() {
		defer wg.Done()
		for {
			select {
			case <-stop:
				return
			default:
			}

			matrix, ok := cache.Get(roleID)
			if !ok {
				continue
			}
			if matrix != oldSet && matrix != newSet {
				select {
				case mixed <- matrix:
				default:
				}
				return
			}
		}
	}()

	wg.Add(1)
	go func() {
		defer wg.Done()
		for i := 0; i < 1000; i++ {
			if i%2 == 0 {
				cache.Put(newSet)
			} else {
				cache.Put(oldSet)
			}
		}
		close(stop)
	}()

	wg.Wait()

	select {
	case matrix := <-mixed:
		t.Fatalf("observed a matrix that is neither the old nor the new snapshot: %+v", matrix)
	default:
	}
}
