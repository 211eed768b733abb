package router

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/dtroode/accounts-server/internal/api/http/handler"
	"github.com/dtroode/accounts-server/internal/api/http/middleware"
	"github.com/dtroode/accounts-server/internal/apierror"
	"github.com/dtroode/accounts-server/internal/config"
	"github.com/dtroode/accounts-server/internal/logger"
	"github.com/dtroode/accounts-server/internal/model"
)

// Services bundles the application services exposed over HTTP.
type Services struct {
	Passkey  handler.PasskeyService
	Auth     handler.AuthService
	Account  handler.AccountService
	Image    handler.ImageService
	Post     handler.PostService
	Waitlist handler.WaitlistService
}

// Router wires handlers and middleware into a gorilla/mux router.
type Router struct {
	services       Services
	sessionManager model.SessionManager
	contextManager model.ContextManager
	db             handler.Pinger
	session        config.Session
	logger         *logger.Logger
}

// New creates new HTTP Router instance.
func New(
	services Services,
	sessionManager model.SessionManager,
	contextManager model.ContextManager,
	db handler.Pinger,
	session config.Session,
	logger *logger.Logger,
) *Router {
	return &Router{
		services:       services,
		sessionManager: sessionManager,
		contextManager: contextManager,
		db:             db,
		session:        session,
		logger:         logger,
	}
}

// Register builds the route table. Every route is logged; routes under the
// authenticated subrouters require a session.
func (r *Router) Register() http.Handler {
	logging := middleware.NewLogging(r.logger)
	authenticate := middleware.NewAuthenticate(r.sessionManager, r.contextManager, r.session.CookieName, r.logger)
	sessions := handler.NewSessionCookie(r.sessionManager, r.session.CookieName, r.session.TTL, r.session.Secure)

	m := mux.NewRouter()
	m.Use(logging.Handle)
	m.NotFoundHandler = logging.Handle(http.HandlerFunc(notFound))

	health := handler.NewHealth(r.db, r.logger)
	m.HandleFunc("/health", health.Check).Methods(http.MethodGet)

	api := m.PathPrefix("/api").Subrouter()

	public := api.NewRoute().Subrouter()
	public.Use(authenticate.Optional)

	private := api.NewRoute().Subrouter()
	private.Use(authenticate.Required)

	r.registerPasskeyRoutes(public, private, sessions)
	r.registerAuthRoutes(public, private, sessions)
	r.registerAccountRoutes(private, sessions)
	r.registerContentRoutes(public, private)

	return m
}

func (r *Router) registerPasskeyRoutes(public, private *mux.Router, sessions *handler.SessionCookie) {
	h := handler.NewPasskey(r.services.Passkey, sessions, r.contextManager, r.logger)

	public.HandleFunc("/auth/webauthn/authenticate", h.Authenticate).Methods(http.MethodPost)
	public.HandleFunc("/auth/webauthn/link-passkey", h.LinkPasskey).Methods(http.MethodPost)
	private.HandleFunc("/auth/webauthn/delete-passkey", h.DeletePasskey).Methods(http.MethodDelete)
	private.HandleFunc("/auth/webauthn/linked-passkeys", h.LinkedPasskeys).Methods(http.MethodGet)
}

func (r *Router) registerAuthRoutes(public, private *mux.Router, sessions *handler.SessionCookie) {
	h := handler.NewAuth(r.services.Auth, sessions, r.contextManager, r.logger)

	public.HandleFunc("/auth/register", h.Register).Methods(http.MethodPost)
	public.HandleFunc("/auth/login", h.Login).Methods(http.MethodPost)
	public.HandleFunc("/auth/logout", h.Logout).Methods(http.MethodPost)
	public.HandleFunc("/auth/forgot-password", h.ForgotPassword).Methods(http.MethodPost)
	public.HandleFunc("/auth/reset-password", h.ResetPassword).Methods(http.MethodPost)
	public.HandleFunc("/auth/otp/request", h.RequestOneTimePassword).Methods(http.MethodPost)
	public.HandleFunc("/auth/otp/verify", h.VerifyOneTimePassword).Methods(http.MethodPost)

	private.HandleFunc("/auth/session", h.Session).Methods(http.MethodGet)
	private.HandleFunc("/auth/verify-email", h.VerifyEmail).Methods(http.MethodPost)
	private.HandleFunc("/auth/verify-email/resend", h.ResendVerification).Methods(http.MethodPost)
}

func (r *Router) registerAccountRoutes(private *mux.Router, sessions *handler.SessionCookie) {
	h := handler.NewAccount(r.services.Account, sessions, r.contextManager, r.logger)

	private.HandleFunc("/user", h.Get).Methods(http.MethodGet)
	private.HandleFunc("/user", h.Update).Methods(http.MethodPatch)
	private.HandleFunc("/user", h.Delete).Methods(http.MethodDelete)
	private.HandleFunc("/user/password", h.ChangePassword).Methods(http.MethodPut)
	private.HandleFunc("/user/subscription", h.Subscription).Methods(http.MethodGet)
	private.HandleFunc("/user/linked-accounts", h.LinkedAccounts).Methods(http.MethodGet)
	private.HandleFunc("/user/linked-accounts/{id}", h.UnlinkAccount).Methods(http.MethodDelete)
}

func (r *Router) registerContentRoutes(public, private *mux.Router) {
	images := handler.NewImage(r.services.Image, r.contextManager, r.logger)
	public.HandleFunc("/images/upload", images.Upload).Methods(http.MethodPost)

	posts := handler.NewPost(r.services.Post, r.contextManager, r.logger)
	private.HandleFunc("/posts", posts.List).Methods(http.MethodGet)
	private.HandleFunc("/posts", posts.Create).Methods(http.MethodPost)
	private.HandleFunc("/posts/{id}", posts.Delete).Methods(http.MethodDelete)

	waitlist := handler.NewWaitlist(r.services.Waitlist, r.logger)
	public.HandleFunc("/waitlist", waitlist.Join).Methods(http.MethodPost)
}

func notFound(w http.ResponseWriter, _ *http.Request) {
	apierror.Write(w, apierror.New(http.StatusNotFound, "not found"))
}
