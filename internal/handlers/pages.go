package handlers

import (
	"Corexus/internal/config"
	"Corexus/internal/frontend"
	"Corexus/internal/middleware"
	"Corexus/internal/service"
	"Corexus/internal/web"
	"errors"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

// PageHandler отдаёт HTML-страницы через frontend.Router.
// Роль localStorage браузера здесь играют cookie.
type PageHandler struct {
	router      *frontend.Router
	renderer    *web.Renderer
	UserService *service.UserService
	Logger      *zap.SugaredLogger
	Config      *config.Config
	validate    *validator.Validate
}

// NewPageHandler создаёт хендлер страниц
func NewPageHandler(
	router *frontend.Router,
	renderer *web.Renderer,
	userService *service.UserService,
	logger *zap.SugaredLogger,
	cfg *config.Config,
) *PageHandler {
	return &PageHandler{
		router:      router,
		renderer:    renderer,
		UserService: userService,
		Logger:      logger,
		Config:      cfg,
		validate:    validator.New(),
	}
}

// Paths пути страниц для регистрации в chi.
func (h *PageHandler) Paths() []string { return h.router.Paths() }

func (h *PageHandler) storage(w http.ResponseWriter, r *http.Request) *web.CookieStorage {
	return web.NewCookieStorage(w, r, h.Config.TokenTTL, h.Config.EnableHTTPS)
}

// Page GET-запрос страницы: рендер или редирект гарда.
func (h *PageHandler) Page(w http.ResponseWriter, r *http.Request) {
	out, err := h.router.Resolve(r.URL.Path, h.storage(w, r))
	if errors.Is(err, frontend.ErrNotFound) {
		h.NotFound(w, r)
		return
	}
	if out.IsRedirect() {
		http.Redirect(w, r, out.Redirect, http.StatusFound)
		return
	}
	h.render(w, http.StatusOK, out.View, web.PageData{})
}

// NotFound страница 404.
func (h *PageHandler) NotFound(w http.ResponseWriter, r *http.Request) {
	h.render(w, http.StatusNotFound, frontend.NotFoundPage(r.URL.Path), web.PageData{})
}

type loginForm struct {
	Email    string `validate:"required,email"`
	Password string `validate:"required"`
}

// LoginSubmit обработка формы входа: кладёт токен в хранилище и ведёт на дашборд.
func (h *PageHandler) LoginSubmit(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.Logger.Warnw("LoginSubmit: invalid form", "error", err)
		h.render(w, http.StatusBadRequest, frontend.LoginPage(), web.PageData{Error: "Invalid form"})
		return
	}
	form := loginForm{
		Email:    strings.TrimSpace(r.PostFormValue("email")),
		Password: r.PostFormValue("password"),
	}
	if err := h.validate.Struct(form); err != nil {
		h.render(w, http.StatusBadRequest, frontend.LoginPage(), web.PageData{Error: "Enter a valid email and password", Email: form.Email})
		return
	}

	user, err := h.UserService.Login(r.Context(), form.Email, form.Password)
	switch {
	case errors.Is(err, service.ErrInvalidCredentials):
		h.render(w, http.StatusUnauthorized, frontend.LoginPage(), web.PageData{Error: "Incorrect email or password", Email: form.Email})
		return
	case errors.Is(err, service.ErrInactiveUser):
		h.render(w, http.StatusBadRequest, frontend.LoginPage(), web.PageData{Error: "Inactive user", Email: form.Email})
		return
	case err != nil:
		h.Logger.Errorw("LoginSubmit: service error", "email", form.Email, "error", err)
		h.render(w, http.StatusInternalServerError, frontend.LoginPage(), web.PageData{Error: "Internal error", Email: form.Email})
		return
	}

	token, err := middleware.NewToken(user.ID, user.Email, h.Config.AuthSecret, h.Config.TokenTTL)
	if err != nil {
		h.Logger.Errorw("LoginSubmit: token error", "user_id", user.ID, "error", err)
		h.render(w, http.StatusInternalServerError, frontend.LoginPage(), web.PageData{Error: "Internal error"})
		return
	}
	if err := h.storage(w, r).SetItem(frontend.TokenKey, token); err != nil {
		h.Logger.Errorw("LoginSubmit: store token", "user_id", user.ID, "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	http.Redirect(w, r, frontend.DashboardPath, http.StatusSeeOther)
}

// Logout удаляет токен и ведёт на /login.
func (h *PageHandler) Logout(w http.ResponseWriter, r *http.Request) {
	out, err := frontend.Logout(h.storage(w, r))
	if err != nil {
		h.Logger.Errorw("Logout: storage error", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	http.Redirect(w, r, out.Redirect, http.StatusSeeOther)
}

func (h *PageHandler) render(w http.ResponseWriter, status int, v *frontend.View, data web.PageData) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := h.renderer.Render(w, v, data); err != nil {
		h.Logger.Errorw("render page", "page", v.Name, "error", err)
	}
}
