package router

import (
	"context"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/dtroode/simple-twitter-server/internal/api/http/handler"
	"github.com/dtroode/simple-twitter-server/internal/api/http/middleware"
	"github.com/dtroode/simple-twitter-server/internal/api/http/response"
	"github.com/dtroode/simple-twitter-server/internal/logger"
	"github.com/dtroode/simple-twitter-server/internal/model"
)

const pingTimeout = 2 * time.Second

// Services groups the business services exposed over HTTP.
type Services struct {
	Auth          handler.AuthService
	Authenticator middleware.Authenticator
	User          handler.UserService
	Tweet         handler.TweetService
	Admin         handler.AdminService
}

// Router builds the HTTP handler tree.
type Router struct {
	services       Services
	contextManager model.ContextManager
	pinger         model.Pinger
	registry       *prometheus.Registry
	maxUploadBytes int64
	logger         *logger.Logger
}

// New creates a new Router instance.
func New(
	services Services,
	contextManager model.ContextManager,
	pinger model.Pinger,
	registry *prometheus.Registry,
	maxUploadBytes int64,
	logger *logger.Logger,
) *Router {
	return &Router{
		services:       services,
		contextManager: contextManager,
		pinger:         pinger,
		registry:       registry,
		maxUploadBytes: maxUploadBytes,
		logger:         logger,
	}
}

// Register mounts every route and returns the root handler.
func (r *Router) Register() http.Handler {
	authHandler := handler.NewAuth(r.services.Auth, r.logger)
	userHandler := handler.NewUser(r.services.User, r.contextManager, r.maxUploadBytes, r.logger)
	tweetHandler := handler.NewTweet(r.services.Tweet, r.contextManager, r.logger)
	adminHandler := handler.NewAdmin(r.services.Admin, r.logger)

	authenticate := middleware.NewAuthenticate(r.services.Authenticator, r.contextManager, r.logger)
	authorize := middleware.NewAuthorize(r.contextManager, r.logger)

	root := mux.NewRouter()
	root.Use(
		middleware.RequestID,
		middleware.NewRecovery(r.logger).Handle,
		middleware.NewLogging(r.logger).Handle,
		middleware.NewMetrics(r.registry).Handle,
	)
	root.NotFoundHandler = http.HandlerFunc(notFound)

	root.HandleFunc("/healthz", r.healthz).Methods(http.MethodGet)
	root.Handle("/metrics", promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{})).Methods(http.MethodGet)

	root.HandleFunc("/users/signin", authHandler.SignIn(model.RoleUser)).Methods(http.MethodPost)
	root.HandleFunc("/users", authHandler.SignUp).Methods(http.MethodPost)
	root.HandleFunc("/admin/signin", authHandler.SignIn(model.RoleAdmin)).Methods(http.MethodPost)

	users := root.PathPrefix("/users").Subrouter()
	users.Use(authenticate.Handle)
	users.HandleFunc("/{id}", userHandler.GetProfile).Methods(http.MethodGet)
	users.HandleFunc("/{id}", userHandler.UpdateProfile).Methods(http.MethodPut)
	users.HandleFunc("/{id}/setting", userHandler.UpdateSettings).Methods(http.MethodPut)
	users.HandleFunc("/{id}/tweets", userHandler.GetTweets).Methods(http.MethodGet)
	users.HandleFunc("/{id}/replied_tweets", userHandler.GetRepliedTweets).Methods(http.MethodGet)
	users.HandleFunc("/{id}/likes", userHandler.GetLikes).Methods(http.MethodGet)
	users.HandleFunc("/{id}/followings", userHandler.GetFollowings).Methods(http.MethodGet)
	users.HandleFunc("/{id}/followers", userHandler.GetFollowers).Methods(http.MethodGet)

	tweets := root.PathPrefix("/tweets").Subrouter()
	tweets.Use(authenticate.Handle)
	tweets.HandleFunc("", tweetHandler.List).Methods(http.MethodGet)
	tweets.HandleFunc("", tweetHandler.Post).Methods(http.MethodPost)
	tweets.HandleFunc("/{id}", tweetHandler.Get).Methods(http.MethodGet)
	tweets.HandleFunc("/{id}/like", tweetHandler.Like).Methods(http.MethodPost)
	tweets.HandleFunc("/{id}/unlike", tweetHandler.Unlike).Methods(http.MethodPost)
	tweets.HandleFunc("/{id}/replies", tweetHandler.Replies).Methods(http.MethodGet)
	tweets.HandleFunc("/{id}/replies", tweetHandler.Reply).Methods(http.MethodPost)

	admin := root.PathPrefix("/admin").Subrouter()
	admin.Use(authenticate.Handle, authorize.Require(model.RoleAdmin))
	admin.HandleFunc("/users", adminHandler.ListUsers).Methods(http.MethodGet)
	admin.HandleFunc("/tweets", adminHandler.ListTweets).Methods(http.MethodGet)
	admin.HandleFunc("/tweets/{id}", adminHandler.DeleteTweet).Methods(http.MethodDelete)

	return root
}

func (r *Router) healthz(w http.ResponseWriter, req *http.Request) {
	ctx, cancel := context.WithTimeout(req.Context(), pingTimeout)
	defer cancel()

	if err := r.pinger.Ping(ctx); err != nil {
		r.logger.Error("health check failed", "error", err.Error())
		response.Error(w, http.StatusServiceUnavailable, "database unavailable")
		return
	}
	response.JSON(w, http.StatusOK, response.Envelope{Status: response.StatusSuccess})
}

func notFound(w http.ResponseWriter, _ *http.Request) {
	response.Error(w, http.StatusNotFound, "not found")
}
