package http

import (
	"context"
	"embed"
	"errors"
	"html/template"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	log "github.com/sirupsen/logrus"

	"storefront/internal/cart"
	"storefront/internal/catalog"
)

//go:embed templates/*.html
var templatesFS embed.FS

var tmpl = template.Must(template.ParseFS(templatesFS, "templates/*.html"))

// ProductHandler serves the storefront pages and fragments backed by
// the catalog service.
type ProductHandler struct {
	catalog *catalog.Service
	engine  *cart.Engine
	timeout time.Duration
}

func NewProductHandler(svc *catalog.Service, engine *cart.Engine, timeout time.Duration) *ProductHandler {
	return &ProductHandler{
		catalog: svc,
		engine:  engine,
		timeout: timeout,
	}
}

type indexData struct {
	Products  []catalog.Product
	LoadError bool
	CartItems template.HTML
	CartCount string
}

type listData struct {
	Products  []catalog.Product
	LoadError bool
}

// Index serves the full page: header with badge, content region with
// the product list, cart panel.
func (h *ProductHandler) Index(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	// A full page load starts from live cart state, as the cart-items
	// region can hold a transient checkout notice.
	items := h.engine.Items()
	data := indexData{
		CartItems: template.HTML(cart.RenderCart(items)),
		CartCount: cart.RenderCount(items),
	}

	products, err := h.catalog.ListProducts(ctx)
	if err != nil {
		log.WithError(err).Error("listing products failed")
		data.LoadError = true
	}
	data.Products = products

	h.renderTemplate(w, "layout.html", data)
}

// ListProducts serves the product list fragment for a content swap.
func (h *ProductHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	data := listData{}
	products, err := h.catalog.ListProducts(ctx)
	if err != nil {
		log.WithError(err).Error("listing products failed")
		data.LoadError = true
	}
	data.Products = products

	h.renderTemplate(w, "product_list.html", data)
	h.notifySwap(r)
}

// GetProduct serves the product detail fragment for a content swap.
func (h *ProductHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		http.NotFound(w, r)
		return
	}

	product, err := h.catalog.GetProduct(ctx, id)
	if err != nil {
		if errors.Is(err, catalog.ErrProductNotFound) {
			http.NotFound(w, r)
			return
		}
		log.WithError(err).Error("fetching product failed")
		http.Error(w, "catalog unavailable", http.StatusBadGateway)
		return
	}

	h.renderTemplate(w, "product_detail.html", product)
	h.notifySwap(r)
}

func (h *ProductHandler) renderTemplate(w http.ResponseWriter, name string, data any) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := tmpl.ExecuteTemplate(w, name, data); err != nil {
		log.WithError(err).Error("template execution failed")
	}
}

// notifySwap tells the cart engine which region the client is about to
// replace with this response. HTMX sends the swap target along with
// the request.
func (h *ProductHandler) notifySwap(r *http.Request) {
	if target := strings.TrimSpace(r.Header.Get("HX-Target")); target != "" {
		h.engine.NotifySwap(target)
	}
}
