// Package domain defines the ID card template model: the visual layouts a
// credential record references when the card is printed.
package domain

import (
	"time"

	"github.com/google/uuid"

	"github.com/badgeops/badgeops/internal/errors"
)

// Template represents one card layout. Layout is an opaque JSON document the
// rendering front end interprets; the server stores and versions it but never
// inspects individual fields.
type Template struct {
	ID        uuid.UUID
	Name      string
	Layout    map[string]any
	IsDefault bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Template errors.
var (
	// ErrTemplateNotFound indicates the requested template does not exist.
	ErrTemplateNotFound = errors.Wrap(errors.ErrNotFound, "template not found")
)
