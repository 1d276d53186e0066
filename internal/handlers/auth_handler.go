package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/pocketledger/pocketledger/internal/logger"
	"github.com/pocketledger/pocketledger/internal/models"
	"github.com/pocketledger/pocketledger/internal/models/user"
	"github.com/pocketledger/pocketledger/internal/service"
)

type AuthHandler struct {
	authService *service.AuthService
	log         *logger.Logger
}

func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		log:         logger.New("auth-handler"),
	}
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req user.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	_, err := h.authService.Register(r.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEmailTaken):
			respondError(w, http.StatusBadRequest, "email already in use")
		case isValidationError(err):
			respondError(w, http.StatusBadRequest, err.Error())
		default:
			h.log.Error("register failed: %v", err)
			respondError(w, http.StatusInternalServerError, "server error")
		}
		return
	}

	respondJSON(w, http.StatusCreated, models.MessageResponse{Message: "user created"})
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req user.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	token, u, err := h.authService.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		// Unknown accounts and wrong passwords map to different statuses.
		switch {
		case errors.Is(err, service.ErrUserNotFound):
			respondError(w, http.StatusNotFound, "user not found")
		case errors.Is(err, service.ErrInvalidPassword):
			respondError(w, http.StatusUnauthorized, "invalid password")
		default:
			h.log.Error("login failed: %v", err)
			respondError(w, http.StatusInternalServerError, "server error")
		}
		return
	}

	respondJSON(w, http.StatusOK, user.LoginResponse{
		Token: token,
		User: user.Public{
			ID:    u.ID,
			Name:  u.Name,
			Email: u.Email,
		},
	})
}
