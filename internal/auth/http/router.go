package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/scanpass/scanpass/internal/auth/service"
	"github.com/scanpass/scanpass/internal/auth/store"
	"github.com/scanpass/scanpass/pkg/httpx"
	"github.com/scanpass/scanpass/pkg/jwtx"
	"github.com/scanpass/scanpass/pkg/slogx"

	_ "github.com/scanpass/scanpass/api" // Swagger docs
	httpSwagger "github.com/swaggo/http-swagger"
)

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	verifier     jwtx.Verifier
	buildVersion string
	startTime    time.Time
	logger       *slog.Logger
	dev          bool

	store store.Store

	AuthService  *service.AuthService
	QRService    *service.QRService
	ResetService *service.PasswordResetService
}

func NewRouter(
	verifier jwtx.Verifier,
	buildVersion string,
	st store.Store,
	logger *slog.Logger,
	dev bool,
) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
		verifier:     verifier,
		buildVersion: buildVersion,
		startTime:    time.Now(),
		logger:       logger,
		dev:          dev,
		store:        st,
	}

	// Set default middleware chain
	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerAuth()
	r.registerQR()
	r.registerSystem()

	r.Mux.Handle("/swagger/", httpSwagger.Handler())
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title			ScanPass API
//	@version		0.1.0
//	@description	Email and password authentication service issuing JWT session tokens and per-user QR code artifacts.
//	@description
//	@description				Session tokens are signed with HS256 and expire after one hour.
//
//	@license.name				MIT
//	@license.url				https://opensource.org/licenses/MIT
//
//	@host						localhost:8080
//	@BasePath					/
//
//	@schemes					http https
//
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				JWT session token. Format: "Bearer {token}".
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

func (r *Router) registerAuth() {
	registerHandler := &RegisterHandler{AuthService: r.AuthService, Dev: r.dev}
	loginHandler := &LoginHandler{AuthService: r.AuthService, Dev: r.dev}
	meHandler := &MeHandler{AuthService: r.AuthService, Dev: r.dev}
	resetHandler := &PasswordResetHandler{ResetService: r.ResetService, Dev: r.dev}

	r.Mux.Handle("POST /auth/register", registerHandler)
	r.Mux.Handle("POST /auth/login", loginHandler)
	r.Mux.Handle("POST /auth/forgot-password", http.HandlerFunc(resetHandler.HandleForgot))
	r.Mux.Handle("POST /auth/reset-password", http.HandlerFunc(resetHandler.HandleReset))

	r.Mux.Handle("GET /auth/me",
		httpx.Chain(meHandler,
			httpx.AuthnMiddleware(r.verifier),
		),
	)
}

func (r *Router) registerQR() {
	h := &QRHandler{QRService: r.QRService, Dev: r.dev}

	r.Mux.Handle("GET /qr/current",
		httpx.Chain(http.HandlerFunc(h.HandleCurrent),
			httpx.AuthnMiddleware(r.verifier),
		),
	)
	r.Mux.Handle("PUT /qr/refresh",
		httpx.Chain(http.HandlerFunc(h.HandleRefresh),
			httpx.AuthnMiddleware(r.verifier),
		),
	)
}

func (r *Router) registerSystem() {
	r.Mux.Handle("GET /livez", LivezHandler(r.startTime, r.buildVersion))
	r.Mux.Handle("GET /readyz", ReadyzHandler(r.startTime, r.buildVersion, r.store))
}
