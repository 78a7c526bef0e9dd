package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

// NewRouter wires the storefront routes. The returned handler is
// wrapped in otelhttp so every request carries a span.
func NewRouter(products *ProductHandler, carts *CartHandler, requestTimeout time.Duration) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Recoverer)
	r.Use(RequestIDMiddleware)
	r.Use(LogMiddleware)
	r.Use(middleware.Timeout(requestTimeout))
	r.Use(middleware.Compress(5))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	})

	r.Get("/", products.Index)
	r.Route("/products", func(r chi.Router) {
		r.Get("/", products.ListProducts)
		r.Get("/{id}", products.GetProduct)
	})

	r.Route("/cart", func(r chi.Router) {
		r.Get("/", carts.GetCart)
		r.Get("/count", carts.GetCount)
		r.Post("/items", carts.AddItem)
		r.Post("/items/{id}/increment", carts.Increment)
		r.Post("/items/{id}/decrement", carts.Decrement)
		r.Delete("/items/{id}", carts.Remove)
		r.Delete("/", carts.Clear)
	})
	r.Post("/checkout", carts.Checkout)

	return otelhttp.NewHandler(r, "storefront")
}
