package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/go-chi/chi/v5/middleware"

	"github.com/tmbewe/bccargo/internal/handlers"
)

const (
	compressLevel = 5
)

type Middleware interface {
	Handle(h http.Handler) http.Handler
}

type Router struct {
	address string
	router  *chi.Mux
}

func NewRouter(address string, h *handlers.HandlerSet, gate Middleware, middlewares ...Middleware) *Router {

	r := chi.NewRouter()

	for _, m := range middlewares {
		r.Use(m.Handle)
	}
	r.Use(middleware.Compress(compressLevel))

	r.Get("/healthz", h.HandleHealth)
	r.Post("/orders", h.HandleCreateOrder)
	r.Post("/auth/register", h.HandleRegister)
	r.Post("/auth/login", h.HandleLogin)

	r.Group(func(r chi.Router) {

		r.Use(gate.Handle)
		r.Get("/orders", h.HandleListOrders)
		r.Patch("/orders", h.HandleUpdateOrderStatus)
	})

	return &Router{router: r, address: address}
}

func (r *Router) ListenAndServe() error {
	err := http.ListenAndServe(r.address, r.router)
	return err
}

// Handler exposes the mux for tests.
func (r *Router) Handler() http.Handler {
	return r.router
}
