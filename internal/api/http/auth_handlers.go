package httpapi

import (
	"encoding/json"
	"net/http"

	"github.com/sirupsen/logrus"

	"buntudelice/internal/auth"
	"buntudelice/internal/domain"
)

type tokenResponse struct {
	AccessToken  string      `json:"access_token"`
	RefreshToken string      `json:"refresh_token,omitempty"`
	UserID       string      `json:"user_id"`
	Role         domain.Role `json:"role"`
}

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	var input struct {
		Name     string `json:"name"`
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "invalid payload", http.StatusBadRequest)
		return
	}
	if input.Email == "" || input.Password == "" {
		http.Error(w, "email and password are required", http.StatusBadRequest)
		return
	}

	exists, err := h.Users.EmailExists(r.Context(), input.Email)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	if exists {
		http.Error(w, "email already registered", http.StatusConflict)
		return
	}

	hashed, err := auth.HashPassword(input.Password)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	user := domain.User{
		Name:     input.Name,
		Email:    input.Email,
		Password: hashed,
		Role:     domain.RoleUser,
	}
	if err := h.Users.CreateUser(r.Context(), &user); err != nil {
		writeServiceError(w, err)
		return
	}

	access, refresh, err := h.Sessions.GenerateTokens(user.ID, user.Role)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	logrus.WithField("user_id", user.ID).Info("user registered")
	writeJSON(w, http.StatusCreated, tokenResponse{
		AccessToken:  access,
		RefreshToken: refresh,
		UserID:       user.ID.String(),
		Role:         user.Role,
	})
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	var input struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "invalid payload", http.StatusBadRequest)
		return
	}

	user, err := h.Users.GetUserByEmail(r.Context(), input.Email)
	if err != nil {
		http.Error(w, "invalid credentials", http.StatusUnauthorized)
		return
	}
	if auth.CheckPassword(user.Password, input.Password) != nil {
		http.Error(w, "invalid credentials", http.StatusUnauthorized)
		return
	}

	access, refresh, err := h.Sessions.GenerateTokens(user.ID, user.Role)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, tokenResponse{
		AccessToken:  access,
		RefreshToken: refresh,
		UserID:       user.ID.String(),
		Role:         user.Role,
	})
}

func (h *Handler) refresh(w http.ResponseWriter, r *http.Request) {
	var input struct {
		RefreshToken string `json:"refresh_token"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "invalid payload", http.StatusBadRequest)
		return
	}

	userID, err := h.Sessions.ParseRefreshToken(input.RefreshToken)
	if err != nil {
		http.Error(w, "invalid refresh token", http.StatusUnauthorized)
		return
	}

	user, err := h.Users.GetUser(r.Context(), userID)
	if err != nil {
		http.Error(w, "invalid refresh token", http.StatusUnauthorized)
		return
	}

	access, err := h.Sessions.GenerateAccessToken(user.ID, user.Role)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, tokenResponse{
		AccessToken: access,
		UserID:      user.ID.String(),
		Role:        user.Role,
	})
}
