package httpadapter

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/getsentry/sentry-go"
	sentryhttp "github.com/getsentry/sentry-go/http"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"campaign-wizard/internal/core/port"
)

// AccountVerifier checks a password set through a reset. found is false
// when the account never set one.
type AccountVerifier interface {
	Verify(ctx context.Context, email, password string) (ok, found bool, err error)
}

// Services groups the use cases served over HTTP.
type Services struct {
	Wizard   port.WizardUseCase
	Launch   port.LaunchUseCase
	Reset    port.PasswordResetUseCase
	Accounts AccountVerifier
}

// Handler contains dependencies and routes. It is an inbound adapter for HTTP.
// It holds the use cases executing business logic and a logger for structured
// logging. Routes are registered on a chi.Router for convenient method
// handling.
type Handler struct {
	svc    Services
	auth   *Authenticator
	logger *slog.Logger
	router chi.Router
}

// NewHandler creates a handler with all routes configured. Wizard routes
// require a bearer token issued by auth; the session of every call is the
// token's subject. Panics are recovered, and reported to Sentry when a
// client is initialised.
func NewHandler(svc Services, auth *Authenticator, logger *slog.Logger) *Handler {
	h := &Handler{svc: svc, auth: auth, logger: logger}
	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.Recoverer)
	if sentry.CurrentHub().Client() != nil {
		r.Use(sentryhttp.New(sentryhttp.Options{Repanic: true}).Handle)
	}

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/catalog", h.handleCatalog)
		r.Post("/auth/sign-in", h.handleSignIn)

		r.Route("/password-reset", func(r chi.Router) {
			r.Post("/", h.handleResetStart)
			r.Get("/{resetID}", h.handleResetSession)
			r.Post("/{resetID}/email", h.handleResetEmail)
			r.Post("/{resetID}/resend", h.handleResetResend)
			r.Post("/{resetID}/code", h.handleResetCode)
			r.Post("/{resetID}/password", h.handleResetPassword)
			r.Post("/{resetID}/back", h.handleResetBack)
		})

		r.Group(func(r chi.Router) {
			r.Use(auth.Middleware)

			r.Get("/me", h.handleMe)

			r.Route("/onboarding", func(r chi.Router) {
				r.Get("/intro", h.handleIntroShown)
				r.Post("/intro", h.handleMarkIntroShown)
				r.Get("/business-profile", h.handleGetBusinessProfile)
				r.Put("/business-profile", h.handleSaveBusinessProfile)
				r.Get("/connection", h.handleGetConnection)
				r.Post("/connection/select", h.handleSelectConnection)
				r.Post("/connection/next", h.handleNextConnection)
				r.Post("/connection/previous", h.handlePreviousConnection)
			})

			r.Route("/setup", func(r chi.Router) {
				r.Post("/preview", h.handlePreviewSetup)
				r.Get("/draft", h.handleGetCampaignDraft)
				r.Put("/draft", h.handleSaveCampaignDraft)
			})

			r.Route("/creative", func(r chi.Router) {
				r.Get("/", h.handleGetCreative)
				r.Put("/", h.handleSaveCreative)
				r.Put("/format", h.handleSetCreativeFormat)
				r.Post("/media", h.handleAddCreativeMedia)
				r.Delete("/media/{mediaID}", h.handleRemoveCreativeMedia)
				r.Post("/complete", h.handleCompleteCreative)
			})

			r.Route("/ad-sets", func(r chi.Router) {
				r.Get("/", h.handleListAdSets)
				r.Post("/generate", h.handleGenerateAdSets)
				r.Patch("/{adSetID}", h.handleEditAdSet)
			})

			r.Route("/launch", func(r chi.Router) {
				r.Get("/", h.handleLaunchStatus)
				r.Post("/", h.handleLaunch)
				r.Delete("/", h.handleAbortLaunch)
				r.Post("/payment", h.handleCheckPayment)
			})

			r.Route("/campaigns", func(r chi.Router) {
				r.Get("/", h.handleListCampaigns)
				r.Get("/summary", h.handleCampaignSummary)
				r.Get("/export.xlsx", h.handleExportCampaigns)
			})
		})
	})
	h.router = r
	return h
}

// Router returns the underlying http.Handler.
func (h *Handler) Router() http.Handler {
	return h.router
}
