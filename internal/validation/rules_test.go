package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"

	apperrors "github.com/badgeops/badgeops/internal/errors"
)

func TestWrapValidationError(t *testing.T) {
	t.Run("NilReturnsNil", func(t *testing.T) {
		assert.Nil(t, WrapValidationError(nil))
	})

	t.Run("WrapsAsInvalidInput", func(t *testing.T) {
		err := WrapValidationError(apperrors.New("name is required"))
		assert.True(t, apperrors.Is(err, apperrors.ErrInvalidInput))
	})
}

func TestPasswordStrength(t *testing.T) {
	rule := PasswordStrength{
		MinLength:     8,
		RequireUpper:  true,
		RequireLower:  true,
		RequireNumber: true,
	}

	tests := []struct {
		name     string
		password string
		wantErr  bool
	}{
		{"Valid", "Operator1pass", false},
		{"TooShort", "Op1", true},
		{"NoUppercase", "operator1pass", true},
		{"NoLowercase", "OPERATOR1PASS", true},
		{"NoNumber", "Operatorpass", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := rule.Validate(tt.password)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}

	t.Run("NonStringValue", func(t *testing.T) {
		assert.Error(t, rule.Validate(42))
	})
}

func TestEmail(t *testing.T) {
	assert.NoError(t, Email.Validate("clerk@example.com"))
	assert.Error(t, Email.Validate("not-an-email"))
}

func TestNoWhitespace(t *testing.T) {
	assert.NoError(t, NoWhitespace.Validate("Generate-Id"))
	assert.Error(t, NoWhitespace.Validate(" padded "))
}

func TestNotBlank(t *testing.T) {
	assert.NoError(t, NotBlank.Validate("ID Template"))
	assert.Error(t, NotBlank.Validate("   "))
}
