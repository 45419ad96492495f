// Package http provides HTTP handlers for secret management operations.
// Secrets are encrypted bound to their owner and can only be revealed by that owner.
package http

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	authHTTP "github.com/corpassist/secrets/internal/auth/http"
	apperrors "github.com/corpassist/secrets/internal/errors"
	"github.com/corpassist/secrets/internal/httputil"
	"github.com/corpassist/secrets/internal/secrets/http/dto"
	secretsUseCase "github.com/corpassist/secrets/internal/secrets/usecase"
	customValidation "github.com/corpassist/secrets/internal/validation"
)

// SecretHandler handles HTTP requests for secret management operations.
// The requesting user is always the subject of the authenticated token.
type SecretHandler struct {
	secretUseCase secretsUseCase.SecretUseCase
	logger        *slog.Logger
}

// NewSecretHandler creates a new secret handler with required dependencies.
func NewSecretHandler(secretUseCase secretsUseCase.SecretUseCase, logger *slog.Logger) *SecretHandler {
	return &SecretHandler{
		secretUseCase: secretUseCase,
		logger:        logger,
	}
}

// StoreHandler encrypts and stores a new secret for the authenticated user.
// POST /v1/secrets
// Returns 201 Created with secret metadata (excludes plaintext value for security).
func (h *SecretHandler) StoreHandler(c *gin.Context) {
	userID, ok := h.requestingUser(c)
	if !ok {
		return
	}

	var req dto.StoreSecretRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	ref, err := h.secretUseCase.StoreSecret(c.Request.Context(), req.ToCommand(userID))
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusCreated, dto.MapSecretReferenceToResponse(ref))
}

// RevealHandler decrypts a secret owned by the authenticated user.
// GET /v1/secrets/:id
// Returns 200 OK with the plaintext value, 403 Forbidden for other users' secrets.
func (h *SecretHandler) RevealHandler(c *gin.Context) {
	userID, ok := h.requestingUser(c)
	if !ok {
		return
	}

	secretID, ok := h.secretID(c)
	if !ok {
		return
	}

	secret, err := h.secretUseCase.RevealSecret(c.Request.Context(), secretID, userID)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapSecretRevealedToResponse(secret))
}

// RemoveHandler requests removal of a secret.
// DELETE /v1/secrets/:id
// Removal is not supported: owners get 501 Not Implemented, other users 403 Forbidden.
func (h *SecretHandler) RemoveHandler(c *gin.Context) {
	userID, ok := h.requestingUser(c)
	if !ok {
		return
	}

	secretID, ok := h.secretID(c)
	if !ok {
		return
	}

	if err := h.secretUseCase.RemoveSecret(c.Request.Context(), secretID, userID); err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.Data(http.StatusNoContent, "application/json", nil)
}

// ListHandler retrieves the authenticated user's secrets with pagination support.
// GET /v1/secrets?offset=0&limit=50
// Returns 200 OK with paginated secret list (excludes plaintext value for security).
func (h *SecretHandler) ListHandler(c *gin.Context) {
	userID, ok := h.requestingUser(c)
	if !ok {
		return
	}

	page, err := httputil.ParsePage(c)
	if err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	refs, err := h.secretUseCase.ListSecrets(c.Request.Context(), userID, page.Offset, page.Limit)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapSecretReferencesToListResponse(refs))
}

func (h *SecretHandler) requestingUser(c *gin.Context) (uuid.UUID, bool) {
	userID, ok := authHTTP.GetUserID(c.Request.Context())
	if !ok {
		httputil.HandleErrorGin(c, apperrors.ErrUnauthorized, h.logger)
		return uuid.Nil, false
	}
	return userID, true
}

func (h *SecretHandler) secretID(c *gin.Context) (uuid.UUID, bool) {
	secretID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httputil.HandleBadRequestGin(c, fmt.Errorf("invalid secret id: must be a UUID"), h.logger)
		return uuid.Nil, false
	}
	return secretID, true
}
