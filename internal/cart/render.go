package cart

import (
	"fmt"
	"strconv"
	"strings"

	"storefront/internal/domain"
)

// Fixed ids of the page regions the engine renders into.
const (
	RegionCartItems = "cart-items"
	RegionCartCount = "cart-count"
	RegionContent   = "content"
)

const emptyCartMessage = `<p class="cart-empty">Your cart is empty.</p>`

var htmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#39;",
)

// EscapeHTML replaces the five markup-sensitive characters with their
// entity equivalents. Applied to every catalog-supplied string that
// lands in a fragment.
func EscapeHTML(s string) string {
	return htmlEscaper.Replace(s)
}

// RenderItem renders one cart line: thumbnail, title, unit price,
// quantity controls and the line total.
func RenderItem(it domain.Item) string {
	var b strings.Builder
	fmt.Fprintf(&b, `<div class="cart-item" id="cart-item-%d">`, it.ID)
	if it.Thumbnail != "" {
		fmt.Fprintf(&b, `<img class="cart-item-thumb" src="%s" alt="">`, EscapeHTML(it.Thumbnail))
	}
	fmt.Fprintf(&b, `<span class="cart-item-title">%s</span>`, EscapeHTML(it.Title))
	fmt.Fprintf(&b, `<span class="cart-item-price">$%s</span>`, formatMoney(it.Price))
	fmt.Fprintf(&b, `<span class="cart-item-controls">`)
	fmt.Fprintf(&b, `<button hx-post="/cart/items/%d/decrement" hx-target="#cart-items" hx-swap="innerHTML">-</button>`, it.ID)
	fmt.Fprintf(&b, `<span class="cart-item-qty">%d</span>`, it.Quantity)
	fmt.Fprintf(&b, `<button hx-post="/cart/items/%d/increment" hx-target="#cart-items" hx-swap="innerHTML">+</button>`, it.ID)
	fmt.Fprintf(&b, `<button hx-delete="/cart/items/%d" hx-target="#cart-items" hx-swap="innerHTML">&times;</button>`, it.ID)
	fmt.Fprintf(&b, `</span>`)
	fmt.Fprintf(&b, `<span class="cart-item-total">$%s</span>`, formatMoney(it.LineTotal()))
	b.WriteString(`</div>`)
	return b.String()
}

// RenderCart renders the cart panel body: every line in order followed
// by the running total, or a fixed message when the cart is empty.
func RenderCart(items []domain.Item) string {
	if len(items) == 0 {
		return emptyCartMessage
	}

	var b strings.Builder
	for _, it := range items {
		b.WriteString(RenderItem(it))
	}
	fmt.Fprintf(&b, `<div class="cart-total">Total: $%s</div>`, formatMoney(domain.Total(items)))
	return b.String()
}

// RenderCount renders the header badge text: total quantity across all
// lines, as a decimal string.
func RenderCount(items []domain.Item) string {
	return strconv.Itoa(domain.Count(items))
}

func renderCheckoutNotice() string {
	return `<p class="cart-notice">Thank you for your order! This demo stops short of charging you.</p>`
}

func formatMoney(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}
