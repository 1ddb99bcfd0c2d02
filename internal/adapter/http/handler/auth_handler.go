package handler

import (
	"encoding/json"
	"net/http"

	"github.com/vmorales/condoledger/internal/adapter/http/dto"
	"github.com/vmorales/condoledger/internal/adapter/http/middleware"
	"github.com/vmorales/condoledger/internal/domain"
	"github.com/vmorales/condoledger/internal/infrastructure/auth"
	"github.com/vmorales/condoledger/internal/infrastructure/metrics"
	"github.com/vmorales/condoledger/internal/usecase"
)

// AuthHandler handles authentication endpoints
type AuthHandler struct {
	userUseCase *usecase.UserUseCase
	jwtManager  *auth.JWTManager
	metrics     *metrics.Metrics
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(userUseCase *usecase.UserUseCase, jwtManager *auth.JWTManager, m *metrics.Metrics) *AuthHandler {
	return &AuthHandler{
		userUseCase: userUseCase,
		jwtManager:  jwtManager,
		metrics:     m,
	}
}

// LoginResponse represents a login response
type LoginResponse struct {
	Token string   `json:"token"`
	User  UserInfo `json:"user"`
}

// UserInfo represents user information
type UserInfo struct {
	ID         string      `json:"id"`
	NationalID string      `json:"national_id"`
	Name       string      `json:"name,omitempty"`
	UnitID     int         `json:"unit_id"`
	Role       domain.Role `json:"role"`
}

// Login validates credentials and issues a JWT.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	user, err := h.userUseCase.Authenticate(r.Context(), req.NationalID, req.Password)
	if err != nil {
		h.metrics.AuthAttempts.WithLabelValues("failure").Inc()
		writeError(w, mapDomainError(err), "invalid credentials", "")
		return
	}

	token, err := h.jwtManager.Generate(user)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to generate token", err.Error())
		return
	}

	h.metrics.AuthAttempts.WithLabelValues("success").Inc()

	writeJSON(w, http.StatusOK, LoginResponse{
		Token: token,
		User: UserInfo{
			ID:         user.ID,
			NationalID: user.NationalID,
			Name:       user.Name,
			UnitID:     user.UnitID,
			Role:       user.Role,
		},
	})
}

// CreateUser registers a new account.
func (h *AuthHandler) CreateUser(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	user, err := h.userUseCase.CreateUser(r.Context(), req.ToUseCaseInput())
	if err != nil {
		writeError(w, mapDomainError(err), "failed to create user", err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, UserInfo{
		ID:         user.ID,
		NationalID: user.NationalID,
		Name:       user.Name,
		UnitID:     user.UnitID,
		Role:       user.Role,
	})
}

// GetCurrentUser returns the current authenticated user
func (h *AuthHandler) GetCurrentUser(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUserFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized", "")
		return
	}

	writeJSON(w, http.StatusOK, UserInfo{
		ID:         user.ID,
		NationalID: user.NationalID,
		Name:       user.Name,
		UnitID:     user.UnitID,
		Role:       user.Role,
	})
}
