package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/badgeops/badgeops/internal/credential/http/dto"
	credentialUseCase "github.com/badgeops/badgeops/internal/credential/usecase"
	"github.com/badgeops/badgeops/internal/httputil"
)

// VerifyHandler handles the public, unauthenticated verify-by-code surface.
// Any code that does not resolve exactly returns 404 with no hint about
// whether it was close to a real one.
type VerifyHandler struct {
	verificationUseCase credentialUseCase.VerificationUseCase
	logger              *slog.Logger
}

// NewVerifyHandler creates a new verify handler with required dependencies.
func NewVerifyHandler(
	verificationUseCase credentialUseCase.VerificationUseCase,
	logger *slog.Logger,
) *VerifyHandler {
	return &VerifyHandler{
		verificationUseCase: verificationUseCase,
		logger:              logger,
	}
}

// VerifyHandler resolves a verification code to the card's effective status.
// GET /v1/verify/:code - Public, no authentication.
func (h *VerifyHandler) VerifyHandler(c *gin.Context) {
	credential, err := h.verificationUseCase.Verify(c.Request.Context(), c.Param("code"))
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	httputil.MakeJSONResponse(c, http.StatusOK, dto.MapCredentialToVerifyResponse(credential))
}
