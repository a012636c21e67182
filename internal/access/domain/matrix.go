package domain

import (
	"time"

	"github.com/google/uuid"
)

// Role represents an operator role owning at most one permission matrix.
type Role struct {
	ID        uuid.UUID
	Name      string
	CreatedAt time.Time
}

// Matrix is the complete grant set for one role. It is rebuilt and replaced
// wholesale on update; there are no partial patch semantics.
type Matrix struct {
	RoleID    uuid.UUID
	Areas     []AreaGrant
	UpdatedAt time.Time
}

// Lookup answers a point grant query. It canonicalizes the requested area
// title, checks it against every top-level area first, and only if no
// top-level area matches, against every sub-area nested under any top-level
// area. The first structural match terminates the search; a top-level area and
// a sub-area that canonicalize to the same key are never merged.
//
// Lookup never fails: an unknown area, an unknown action, or an empty matrix
// all resolve to false. A missing grant must never be read as "not yet
// configured, so allow".
func (m *Matrix) Lookup(areaTitle string, action Action) bool {
	key := CanonicalKey(areaTitle)
	if key == "" {
		return false
	}

	for i := range m.Areas {
		if CanonicalKey(m.Areas[i].Title) == key {
			return m.Areas[i].Actions.Allows(action)
		}
	}

	for i := range m.Areas {
		for j := range m.Areas[i].Subareas {
			if CanonicalKey(m.Areas[i].Subareas[j].Title) == key {
				return m.Areas[i].Subareas[j].Actions.Allows(action)
			}
		}
	}

	return false
}
