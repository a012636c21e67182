package http

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	accessDomain "github.com/badgeops/badgeops/internal/access/domain"
	credentialDomain "github.com/badgeops/badgeops/internal/credential/domain"
	credentialUseCase "github.com/badgeops/badgeops/internal/credential/usecase"
	operatorDomain "github.com/badgeops/badgeops/internal/operator/domain"
	operatorHTTP "github.com/badgeops/badgeops/internal/operator/http"
)

type mockCredentialUseCase struct {
	mock.Mock
}

func (m *mockCredentialUseCase) Create(ctx context.Context, actorID, roleID uuid.UUID, input *credentialUseCase.CreateCredentialInput) (*credentialDomain.Credential, error) {
	args := m.Called(ctx, actorID, roleID, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*credentialDomain.Credential), args.Error(1)
}

func (m *mockCredentialUseCase) Get(ctx context.Context, credentialID uuid.UUID) (*credentialDomain.Credential, error) {
	args := m.Called(ctx, credentialID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*credentialDomain.Credential), args.Error(1)
}

func (m *mockCredentialUseCase) List(ctx context.Context, offset, limit int, employeeID *uuid.UUID) ([]*credentialDomain.Credential, error) {
	args := m.Called(ctx, offset, limit, employeeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*credentialDomain.Credential), args.Error(1)
}

func (m *mockCredentialUseCase) RequestTransition(ctx context.Context, actorID, roleID, credentialID uuid.UUID, target credentialDomain.Status) (*credentialDomain.Credential, error) {
	args := m.Called(ctx, actorID, roleID, credentialID, target)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*credentialDomain.Credential), args.Error(1)
}

func (m *mockCredentialUseCase) Delete(ctx context.Context, actorID, roleID, credentialID uuid.UUID) error {
	args := m.Called(ctx, actorID, roleID, credentialID)
	return args.Error(0)
}

func (m *mockCredentialUseCase) ExpireOverdue(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func testLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func testOperator() *operatorDomain.Operator {
	return &operatorDomain.Operator{
		ID:     uuid.Must(uuid.NewV7()),
		RoleID: uuid.Must(uuid.NewV7()),
	}
}

// withOperator injects the authenticated operator the way the authentication
// middleware does.
func withOperator(operator *operatorDomain.Operator) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := operatorHTTP.WithOperator(c.Request.Context(), operator)
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}

func testCredential(status credentialDomain.Status) *credentialDomain.Credential {
	now := time.Now().UTC()
	return &credentialDomain.Credential{
		ID:         uuid.Must(uuid.NewV7()),
		EmployeeID: uuid.Must(uuid.NewV7()),
		TemplateID: uuid.Must(uuid.NewV7()),
		VerifyCode: "c51a72fcf2144a2db1c948a15f19a081",
		Status:     status,
		IssuedAt:   now,
		ExpiresAt:  now.AddDate(1, 0, 0),
		CreatedBy:  uuid.Must(uuid.NewV7()),
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

func setupCredentialRouter(useCase credentialUseCase.CredentialUseCase, operator *operatorDomain.Operator) *gin.Engine {
	gin.SetMode(gin.TestMode)
	handler := NewCredentialHandler(useCase, testLogger())

	router := gin.New()
	group := router.Group("/v1", withOperator(operator))
	group.POST("/credentials", handler.CreateHandler)
	group.GET("/credentials", handler.ListHandler)
	group.GET("/credentials/:id", handler.GetHandler)
	group.POST("/credentials/:id/transition", handler.TransitionHandler)
	group.DELETE("/credentials/:id", handler.DeleteHandler)
	return router
}

func TestCredentialHandler_Create(t *testing.T) {
	operator := testOperator()

	t.Run("Success_IssuesCredential", func(t *testing.T) {
		useCase := new(mockCredentialUseCase)
		credential := testCredential(credentialDomain.StatusCreated)
		useCase.On("Create", mock.Anything, operator.ID, operator.RoleID, mock.Anything).
			Return(credential, nil)

		router := setupCredentialRouter(useCase, operator)
		body, _ := json.Marshal(map[string]string{
			"employee_id": credential.EmployeeID.String(),
			"template_id": credential.TemplateID.String(),
		})
		req := httptest.NewRequest(http.MethodPost, "/v1/credentials", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Contains(t, w.Body.String(), credential.ID.String())
		useCase.AssertExpectations(t)
	})

	t.Run("Error_MissingFields", func(t *testing.T) {
		useCase := new(mockCredentialUseCase)

		router := setupCredentialRouter(useCase, operator)
		req := httptest.NewRequest(http.MethodPost, "/v1/credentials", bytes.NewReader([]byte(`{}`)))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		useCase.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Error_InvalidEmployeeID", func(t *testing.T) {
		useCase := new(mockCredentialUseCase)

		router := setupCredentialRouter(useCase, operator)
		body, _ := json.Marshal(map[string]string{
			"employee_id": "not-a-uuid",
			"template_id": uuid.Must(uuid.NewV7()).String(),
		})
		req := httptest.NewRequest(http.MethodPost, "/v1/credentials", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})
}

func TestCredentialHandler_Transition(t *testing.T) {
	operator := testOperator()

	transitionRequest := func(router *gin.Engine, credentialID, status string) *httptest.ResponseRecorder {
		body, _ := json.Marshal(map[string]string{"status": status})
		req := httptest.NewRequest(http.MethodPost,
			fmt.Sprintf("/v1/credentials/%s/transition", credentialID), bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		return w
	}

	t.Run("Success_LegalEdge", func(t *testing.T) {
		useCase := new(mockCredentialUseCase)
		credential := testCredential(credentialDomain.StatusReadyToPrint)
		useCase.On("RequestTransition", mock.Anything, operator.ID, operator.RoleID,
			credential.ID, credentialDomain.StatusReadyToPrint).
			Return(credential, nil)

		router := setupCredentialRouter(useCase, operator)
		w := transitionRequest(router, credential.ID.String(), "ready_to_print")

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"ready_to_print"`)
		useCase.AssertExpectations(t)
	})

	t.Run("Error_IllegalEdgeReturns409", func(t *testing.T) {
		useCase := new(mockCredentialUseCase)
		credentialID := uuid.Must(uuid.NewV7())
		useCase.On("RequestTransition", mock.Anything, operator.ID, operator.RoleID,
			credentialID, credentialDomain.StatusPrinted).
			Return(nil, credentialDomain.ErrTransitionNotAllowed)

		router := setupCredentialRouter(useCase, operator)
		w := transitionRequest(router, credentialID.String(), "printed")

		assert.Equal(t, http.StatusConflict, w.Code)
		assert.Contains(t, w.Body.String(), "invalid_transition")
	})

	t.Run("Error_DeniedActionReturns403", func(t *testing.T) {
		useCase := new(mockCredentialUseCase)
		credentialID := uuid.Must(uuid.NewV7())
		useCase.On("RequestTransition", mock.Anything, operator.ID, operator.RoleID,
			credentialID, credentialDomain.StatusLost).
			Return(nil, accessDomain.ErrActionNotPermitted)

		router := setupCredentialRouter(useCase, operator)
		w := transitionRequest(router, credentialID.String(), "lost")

		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("Error_UnknownRecordReturns404", func(t *testing.T) {
		useCase := new(mockCredentialUseCase)
		credentialID := uuid.Must(uuid.NewV7())
		useCase.On("RequestTransition", mock.Anything, operator.ID, operator.RoleID,
			credentialID, credentialDomain.StatusLost).
			Return(nil, credentialDomain.ErrCredentialNotFound)

		router := setupCredentialRouter(useCase, operator)
		w := transitionRequest(router, credentialID.String(), "lost")

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("Error_MalformedIDReturns404", func(t *testing.T) {
		useCase := new(mockCredentialUseCase)

		router := setupCredentialRouter(useCase, operator)
		w := transitionRequest(router, "abc", "lost")

		assert.Equal(t, http.StatusNotFound, w.Code)
		useCase.AssertNotCalled(t, "RequestTransition",
			mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Error_BlankStatus", func(t *testing.T) {
		useCase := new(mockCredentialUseCase)

		router := setupCredentialRouter(useCase, operator)
		w := transitionRequest(router, uuid.Must(uuid.NewV7()).String(), "")

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})
}

func TestCredentialHandler_List(t *testing.T) {
	operator := testOperator()

	t.Run("Success_List", func(t *testing.T) {
		useCase := new(mockCredentialUseCase)
		credentials := []*credentialDomain.Credential{
			testCredential(credentialDomain.StatusCreated),
			testCredential(credentialDomain.StatusPrinted),
		}
		useCase.On("List", mock.Anything, 0, mock.Anything, (*uuid.UUID)(nil)).
			Return(credentials, nil)

		router := setupCredentialRouter(useCase, operator)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/credentials", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), credentials[0].ID.String())
		assert.Contains(t, w.Body.String(), credentials[1].ID.String())
	})

	t.Run("Success_FilterByEmployeeID", func(t *testing.T) {
		useCase := new(mockCredentialUseCase)
		credential := testCredential(credentialDomain.StatusCreated)
		useCase.On("List", mock.Anything, 0, mock.Anything, &credential.EmployeeID).
			Return([]*credentialDomain.Credential{credential}, nil)

		router := setupCredentialRouter(useCase, operator)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet,
			"/v1/credentials?employee_id="+credential.EmployeeID.String(), nil))

		assert.Equal(t, http.StatusOK, w.Code)
		useCase.AssertExpectations(t)
	})

	t.Run("Error_InvalidEmployeeID", func(t *testing.T) {
		useCase := new(mockCredentialUseCase)

		router := setupCredentialRouter(useCase, operator)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet,
			"/v1/credentials?employee_id=not-a-uuid", nil))

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})
}

func TestCredentialHandler_Delete(t *testing.T) {
	operator := testOperator()

	t.Run("Success_Delete", func(t *testing.T) {
		useCase := new(mockCredentialUseCase)
		credentialID := uuid.Must(uuid.NewV7())
		useCase.On("Delete", mock.Anything, operator.ID, operator.RoleID, credentialID).
			Return(nil)

		router := setupCredentialRouter(useCase, operator)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodDelete,
			"/v1/credentials/"+credentialID.String(), nil))

		assert.Equal(t, http.StatusNoContent, w.Code)
		useCase.AssertExpectations(t)
	})

	t.Run("Error_DeniedDeleteReturns403", func(t *testing.T) {
		useCase := new(mockCredentialUseCase)
		credentialID := uuid.Must(uuid.NewV7())
		useCase.On("Delete", mock.Anything, operator.ID, operator.RoleID, credentialID).
			Return(accessDomain.ErrActionNotPermitted)

		router := setupCredentialRouter(useCase, operator)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodDelete,
			"/v1/credentials/"+credentialID.String(), nil))

		assert.Equal(t, http.StatusForbidden, w.Code)
	})
}
