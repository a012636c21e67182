package dto

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestLoginRequest_Validate(t *testing.T) {
	t.Run("Success_ValidRequest", func(t *testing.T) {
		req := LoginRequest{
			Email:    "operator@example.com",
			Password: "super-secret-password",
		}

		err := req.Validate()
		assert.NoError(t, err)
	})

	t.Run("Error_MissingEmail", func(t *testing.T) {
		req := LoginRequest{
			Password: "super-secret-password",
		}

		err := req.Validate()
		assert.Error(t, err)
	})

	t.Run("Error_InvalidEmail", func(t *testing.T) {
		req := LoginRequest{
			Email:    "not-an-email",
			Password: "super-secret-password",
		}

		err := req.Validate()
		assert.Error(t, err)
	})

	t.Run("Error_BlankPassword", func(t *testing.T) {
		req := LoginRequest{
			Email:    "operator@example.com",
			Password: "   ",
		}

		err := req.Validate()
		assert.Error(t, err)
	})
}

func TestCreateOperatorRequest_Validate(t *testing.T) {
	validRequest := func() CreateOperatorRequest {
		return CreateOperatorRequest{
			Name:     "Test Operator",
			Email:    "operator@example.com",
			Password: "super-secret-password",
			RoleID:   uuid.Must(uuid.NewV7()).String(),
			IsActive: true,
		}
	}

	t.Run("Success_ValidRequest", func(t *testing.T) {
		req := validRequest()

		err := req.Validate()
		assert.NoError(t, err)
	})

	t.Run("Error_MissingName", func(t *testing.T) {
		req := validRequest()
		req.Name = ""

		err := req.Validate()
		assert.Error(t, err)
	})

	t.Run("Error_ShortPassword", func(t *testing.T) {
		req := validRequest()
		req.Password = "short"

		err := req.Validate()
		assert.Error(t, err)
	})

	t.Run("Error_MissingRoleID", func(t *testing.T) {
		req := validRequest()
		req.RoleID = ""

		err := req.Validate()
		assert.Error(t, err)
	})
}

func TestUpdateOperatorRequest_Validate(t *testing.T) {
	validRequest := func() UpdateOperatorRequest {
		return UpdateOperatorRequest{
			Name:     "Test Operator",
			Email:    "operator@example.com",
			RoleID:   uuid.Must(uuid.NewV7()).String(),
			IsActive: true,
		}
	}

	t.Run("Success_EmptyPasswordKeepsCurrent", func(t *testing.T) {
		req := validRequest()

		err := req.Validate()
		assert.NoError(t, err)
	})

	t.Run("Success_NewPassword", func(t *testing.T) {
		req := validRequest()
		req.Password = "another-secret-password"

		err := req.Validate()
		assert.NoError(t, err)
	})

	t.Run("Error_ShortNewPassword", func(t *testing.T) {
		req := validRequest()
		req.Password = "short"

		err := req.Validate()
		assert.Error(t, err)
	})
}
