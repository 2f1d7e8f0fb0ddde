package handlers

import (
	"Corexus/internal/config"
	"Corexus/internal/frontend"
	"Corexus/internal/middleware"
	"Corexus/internal/model"
	"Corexus/internal/service"
	"Corexus/internal/web"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

// UserHandler JSON API пользователей.
type UserHandler struct {
	UserService *service.UserService
	Logger      *zap.SugaredLogger
	Config      *config.Config
	validate    *validator.Validate
}

// NewUserHandler создаёт хендлер пользователей
func NewUserHandler(userService *service.UserService, logger *zap.SugaredLogger, cfg *config.Config) *UserHandler {
	return &UserHandler{UserService: userService, Logger: logger, Config: cfg, validate: validator.New()}
}

type RegisterRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
	FullName string `json:"full_name" validate:"max=200"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// TokenResponse ответ с токеном доступа.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// Register регистрация пользователя
func (h *UserHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.Logger.Warnw("Register: invalid request body", "error", err)
		writeError(w, http.StatusBadRequest, "invalid request")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid email or password")
		return
	}

	user, err := h.UserService.Register(r.Context(), req.Email, req.Password, req.FullName)
	switch {
	case errors.Is(err, service.ErrLoginTaken):
		writeError(w, http.StatusConflict, "Email already registered")
		return
	case errors.Is(err, service.ErrPasswordTooLong):
		writeError(w, http.StatusBadRequest, "password must be at most 72 bytes")
		return
	case err != nil:
		h.Logger.Errorw("Register: service error", "email", req.Email, "error", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	h.Logger.Infow("user registered", "user_id", user.ID)
	h.issueToken(w, r, user)
}

// Login вход по email и паролю
func (h *UserHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.Logger.Warnw("Login: invalid request body", "error", err)
		writeError(w, http.StatusBadRequest, "invalid request")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid email or password")
		return
	}

	user, err := h.UserService.Login(r.Context(), req.Email, req.Password)
	switch {
	case errors.Is(err, service.ErrInvalidCredentials):
		writeError(w, http.StatusUnauthorized, "Incorrect email or password")
		return
	case errors.Is(err, service.ErrInactiveUser):
		writeError(w, http.StatusBadRequest, "Inactive user")
		return
	case err != nil:
		h.Logger.Errorw("Login: service error", "email", req.Email, "error", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	h.issueToken(w, r, user)
}

// Me текущий активный пользователь
func (h *UserHandler) Me(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "Could not validate credentials")
		return
	}

	user, err := h.UserService.ActiveUser(r.Context(), userID)
	switch {
	case errors.Is(err, service.ErrUserNotFound):
		writeError(w, http.StatusUnauthorized, "Could not validate credentials")
		return
	case errors.Is(err, service.ErrInactiveUser):
		writeError(w, http.StatusBadRequest, "Inactive user")
		return
	case err != nil:
		h.Logger.Errorw("Me: service error", "user_id", userID, "error", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	writeJSON(w, http.StatusOK, user)
}

// issueToken подписывает токен, кладёт его в cookie и отдаёт в теле ответа.
func (h *UserHandler) issueToken(w http.ResponseWriter, r *http.Request, user *model.User) {
	token, err := middleware.NewToken(user.ID, user.Email, h.Config.AuthSecret, h.Config.TokenTTL)
	if err != nil {
		h.Logger.Errorw("issueToken: sign error", "user_id", user.ID, "error", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}
	store := web.NewCookieStorage(w, r, h.Config.TokenTTL, h.Config.EnableHTTPS)
	if err := store.SetItem(frontend.TokenKey, token); err != nil {
		h.Logger.Errorw("issueToken: store error", "user_id", user.ID, "error", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}
	writeJSON(w, http.StatusOK, TokenResponse{AccessToken: token, TokenType: "bearer"})
}
