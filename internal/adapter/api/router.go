package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"golang.org/x/time/rate"

	"github.com/flickerrrrrz/iprawnik/internal/adapter/api/handler"
	"github.com/flickerrrrrz/iprawnik/internal/adapter/api/middleware"
	"github.com/flickerrrrrz/iprawnik/internal/adapter/metrics"
	"github.com/flickerrrrrz/iprawnik/internal/usecase"
)

// RouterDeps bundles everything the HTTP router needs.
type RouterDeps struct {
	Logger    *slog.Logger
	Metrics   *metrics.TenancyMetrics
	JWTSecret string

	Auth       usecase.AuthUseCase
	Onboarding usecase.OnboardingUseCase
	Members    usecase.MemberUseCase
	Matters    usecase.MatterUseCase
	Documents  usecase.DocumentUseCase
	Tasks      usecase.TaskUseCase
}

// NewRouter creates and configures the main HTTP router.
func NewRouter(deps RouterDeps) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Logging(deps.Logger, deps.Metrics))
	r.Use(middleware.Auth(deps.JWTSecret, deps.Logger))

	authHandler := handler.NewAuthHandler(deps.Auth, deps.Logger)
	tenantHandler := handler.NewTenantHandler(deps.Onboarding, deps.Members, deps.Logger)
	matterHandler := handler.NewMatterHandler(deps.Matters, deps.Logger)
	documentHandler := handler.NewDocumentHandler(deps.Documents, deps.Logger)
	taskHandler := handler.NewTaskHandler(deps.Tasks, deps.Logger)

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})

	r.Route("/auth", func(r chi.Router) {
		r.Use(middleware.RateLimit(rate.Limit(1), 5))
		r.Post("/signup", authHandler.Signup)
		r.Post("/login", authHandler.Login)
	})

	r.Post("/onboarding", tenantHandler.Onboard)
	r.Get("/tenant", tenantHandler.Current)
	r.Get("/members", tenantHandler.ListMembers)

	r.Route("/matters", func(r chi.Router) {
		r.Get("/", matterHandler.List)
		r.Post("/", matterHandler.Create)
		r.Get("/{id}", matterHandler.Get)
		r.Patch("/{id}", matterHandler.Update)
		r.Delete("/{id}", matterHandler.Delete)
	})

	r.Route("/documents", func(r chi.Router) {
		r.Get("/", documentHandler.List)
		r.Post("/", documentHandler.Create)
	})

	r.Route("/tasks", func(r chi.Router) {
		r.Get("/", taskHandler.List)
		r.Post("/", taskHandler.Create)
	})

	return r
}
