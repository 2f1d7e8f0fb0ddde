package handlers

import (
	"Corexus/internal/config"
	"Corexus/internal/frontend"
	"Corexus/internal/middleware"
	"Corexus/internal/service"
	"Corexus/internal/web"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"
)

type Handler struct {
	Router chi.Router
}

// NewHandler разводящий для хендлеров
func NewHandler(
	userService *service.UserService,
	logger *zap.SugaredLogger,
	config *config.Config,
) *Handler {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.Recoverer)
	r.Use(middleware.WithGzip)
	r.Use(middleware.WithLogging)
	r.Use(middleware.WithAuth(config.AuthSecret))

	// Handlers
	pageHandler := NewPageHandler(frontend.DefaultRouter(), web.NewRenderer(), userService, logger, config)
	userHandler := NewUserHandler(userService, logger, config)

	// Page routes
	for _, path := range pageHandler.Paths() {
		r.Get(path, pageHandler.Page)
	}
	r.Post(frontend.LoginPath, pageHandler.LoginSubmit)
	r.Post(frontend.LogoutPath, pageHandler.Logout)
	r.NotFound(pageHandler.NotFound)

	// API routes
	r.Route("/api", func(api chi.Router) {
		api.Use(cors.Handler(cors.Options{
			AllowedOrigins:   config.CORSOrigins,
			AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodOptions},
			AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
			AllowCredentials: true,
			MaxAge:           300,
		}))
		api.NotFound(func(w http.ResponseWriter, r *http.Request) {
			writeError(w, http.StatusNotFound, "Not Found")
		})

		api.Get("/", Root)
		api.Get("/status", Status)

		api.Post("/user/register", userHandler.Register)
		api.Post("/user/login", userHandler.Login)
		api.Get("/user/me", userHandler.Me)
	})

	return &Handler{Router: r}
}
