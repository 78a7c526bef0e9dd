package http

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"storefront/internal/cart"
)

// CartHandler translates HTMX requests into cart commands. Every
// command response carries the refreshed cart panel plus an
// out-of-band swap for the header badge, so one round trip updates
// both places the cart is visible.
type CartHandler struct {
	engine *cart.Engine
	page   *PageModel
}

func NewCartHandler(engine *cart.Engine, page *PageModel) *CartHandler {
	return &CartHandler{
		engine: engine,
		page:   page,
	}
}

func (h *CartHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	// Rendered from live state rather than the page region: after a
	// checkout the cart-items region holds the confirmation notice,
	// which a fresh cart fetch should not replay.
	items := h.engine.Items()
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	fmt.Fprint(w, cart.RenderCart(items))
	fmt.Fprintf(w, `<span id="cart-count" hx-swap-oob="true">%s</span>`, cart.RenderCount(items))
}

func (h *CartHandler) GetCount(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	fmt.Fprint(w, cart.RenderCount(h.engine.Items()))
}

func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form body", http.StatusBadRequest)
		return
	}

	h.engine.AddFromValues(map[string]string{
		"id":        r.Form.Get("id"),
		"title":     r.Form.Get("title"),
		"price":     r.Form.Get("price"),
		"thumbnail": r.Form.Get("thumbnail"),
	})
	h.writeCartPanel(w)
}

func (h *CartHandler) Increment(w http.ResponseWriter, r *http.Request) {
	h.engine.Increment(pathID(r))
	h.writeCartPanel(w)
}

func (h *CartHandler) Decrement(w http.ResponseWriter, r *http.Request) {
	h.engine.Decrement(pathID(r))
	h.writeCartPanel(w)
}

func (h *CartHandler) Remove(w http.ResponseWriter, r *http.Request) {
	h.engine.Remove(pathID(r))
	h.writeCartPanel(w)
}

func (h *CartHandler) Clear(w http.ResponseWriter, r *http.Request) {
	h.engine.Clear()
	h.writeCartPanel(w)
}

func (h *CartHandler) Checkout(w http.ResponseWriter, r *http.Request) {
	h.engine.Checkout()
	h.writeCartPanel(w)
}

// pathID parses the {id} route parameter. An unparsable id yields 0,
// which no cart line carries, so the command is a no-op.
func pathID(r *http.Request) int64 {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		return 0
	}
	return id
}

func (h *CartHandler) writeCartPanel(w http.ResponseWriter) {
	panel, ok := h.page.Get(cart.RegionCartItems)
	if !ok {
		panel = cart.RenderCart(h.engine.Items())
	}
	count, ok := h.page.Get(cart.RegionCartCount)
	if !ok {
		count = cart.RenderCount(h.engine.Items())
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	fmt.Fprint(w, panel)
	// Out-of-band badge swap rides along with the panel.
	fmt.Fprintf(w, `<span id="cart-count" hx-swap-oob="true">%s</span>`, count)
}
