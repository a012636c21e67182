// Package service provides supporting services for the credential lifecycle.
package service

import (
	"crypto/rand"
	"encoding/base32"

	apperrors "github.com/badgeops/badgeops/internal/errors"
)

// CodeService generates verification codes for credential records.
type CodeService interface {
	// GenerateCode creates a new opaque verification code. Codes carry enough
	// entropy that enumeration is infeasible; uniqueness across all records is
	// enforced by the storage layer's unique constraint.
	GenerateCode() (string, error)
}

// codeService implements CodeService with crypto/rand.
type codeService struct{}

// codeEncoding is unpadded base32: codes end up on printed cards and in URLs,
// so the alphabet stays case-insensitive friendly and free of URL-hostile
// characters.
var codeEncoding = base32.StdEncoding.WithPadding(base32.NoPadding)

// GenerateCode creates a 160-bit random code encoded as 32 base32 characters.
func (c *codeService) GenerateCode() (string, error) {
	randomBytes := make([]byte, 20)
	if _, err := rand.Read(randomBytes); err != nil {
		return "", apperrors.Wrap(err, "failed to generate verification code")
	}
	return codeEncoding.EncodeToString(randomBytes), nil
}

// NewCodeService creates a new CodeService instance.
func NewCodeService() CodeService {
	return &codeService{}
}
