// Package httpapi serves the user authority over JSON/HTTP.
//
// Routes:
//
//	GET    /test          identity of the session cookie
//	GET    /getAllUsers   the directory
//	POST   /add-user      create an account (201)
//	PUT    /user/{id}     edit an account, returns the directory
//	DELETE /users/{id}    remove an account, returns the directory
//	POST   /login         form username,password; sets the session cookie
//	POST   /signin        self-service signup (201)
//	POST   /logout        clears the session cookie
//	GET    /metrics       Prometheus metrics
//
// Every error body is {"message": "..."}.
package httpapi

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-playground/validator"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/dmitrijs2005/userconsole/internal/logging"
	"github.com/dmitrijs2005/userconsole/internal/server/auth"
	"github.com/dmitrijs2005/userconsole/internal/server/models"
	"github.com/dmitrijs2005/userconsole/internal/server/services"
)

// Service is the business logic behind the handlers.
type Service interface {
	List(ctx context.Context) ([]models.User, error)
	Create(ctx context.Context, in services.NewUser) (*models.User, error)
	Update(ctx context.Context, id string, patch services.UserPatch) ([]models.User, error)
	Delete(ctx context.Context, id string) ([]models.User, error)
	Signup(ctx context.Context, name, email, password string) (*models.User, error)
	Login(ctx context.Context, email, password string) (string, error)
	Session(ctx context.Context, token string) (auth.Identity, error)
	SessionTTL() time.Duration
}

type Handler struct {
	svc        Service
	log        logging.Logger
	validate   *validator.Validate
	cookieName string
	metrics    *metrics
}

// NewHandler builds the handler set. Metrics are registered on reg.
func NewHandler(svc Service, log logging.Logger, cookieName string, reg *prometheus.Registry) *Handler {
	return &Handler{
		svc:        svc,
		log:        log,
		validate:   validator.New(),
		cookieName: cookieName,
		metrics:    newMetrics(reg),
	}
}

// Routes returns the router serving every endpoint.
func (h *Handler) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(
		middleware.RequestID,
		h.accessLog,
		middleware.Recoverer,
		h.metrics.instrument,
	)

	r.Post("/login", h.login)
	r.Post("/signin", h.signup)
	r.Post("/logout", h.logout)

	r.Group(func(r chi.Router) {
		r.Use(h.requireSession)
		r.Get("/test", h.session)
		r.Get("/getAllUsers", h.listUsers)
		r.Post("/add-user", h.createUser)
		r.Put("/user/{id}", h.updateUser)
		r.Delete("/users/{id}", h.deleteUser)
	})

	r.Handle("/metrics", h.metrics.handler())
	return r
}

func (h *Handler) logger(r *http.Request, op string) logging.Logger {
	return h.log.With("op", op, "request_id", middleware.GetReqID(r.Context()))
}
