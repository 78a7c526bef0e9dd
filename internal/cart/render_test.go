package cart

import (
	"fmt"
	"strings"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"

	"storefront/internal/domain"
)

func TestEscapeHTML(t *testing.T) {
	assert.Equal(t, "&amp;&lt;&gt;&quot;&#39;", EscapeHTML(`&<>"'`))
	assert.Equal(t, "plain text", EscapeHTML("plain text"))
	assert.Equal(t,
		"&lt;script&gt;alert(&#39;x&#39;)&lt;/script&gt;",
		EscapeHTML("<script>alert('x')</script>"))
}

func TestRenderCart_Empty(t *testing.T) {
	html := RenderCart(nil)

	assert.Contains(t, html, "Your cart is empty")
	assert.NotContains(t, html, "cart-total")
}

func TestRenderCart_TotalsAndOrder(t *testing.T) {
	items := []domain.Item{
		{ID: 2, Title: "Hat", Price: 15.5, Quantity: 1},
		{ID: 1, Title: "Shirt", Price: 10, Quantity: 2},
	}

	html := RenderCart(items)

	assert.Contains(t, html, "Total: $35.50")
	assert.Less(t, strings.Index(html, "Hat"), strings.Index(html, "Shirt"),
		"items render in cart order")
}

func TestRenderItem_EscapesTitle(t *testing.T) {
	html := RenderItem(domain.Item{ID: 1, Title: `<b>"Bold" & 'Brash'</b>`, Price: 1, Quantity: 1})

	assert.NotContains(t, html, "<b>")
	assert.Contains(t, html, "&lt;b&gt;&quot;Bold&quot; &amp; &#39;Brash&#39;&lt;/b&gt;")
}

func TestRenderItem_Affordances(t *testing.T) {
	html := RenderItem(domain.Item{ID: 42, Title: "Mug", Price: 4, Quantity: 3})

	assert.Contains(t, html, `hx-post="/cart/items/42/increment"`)
	assert.Contains(t, html, `hx-post="/cart/items/42/decrement"`)
	assert.Contains(t, html, `hx-delete="/cart/items/42"`)
	assert.Contains(t, html, `<span class="cart-item-qty">3</span>`)
	assert.Contains(t, html, "$12.00")
}

func TestRenderItem_TwoDecimalPrices(t *testing.T) {
	html := RenderItem(domain.Item{ID: 1, Title: "Mug", Price: 4.5, Quantity: 2})

	assert.Contains(t, html, "$4.50")
	assert.Contains(t, html, "$9.00")
}

func TestRenderCount(t *testing.T) {
	assert.Equal(t, "0", RenderCount(nil))
	assert.Equal(t, "5", RenderCount([]domain.Item{
		{ID: 1, Quantity: 2},
		{ID: 2, Quantity: 3},
	}))
}

func TestRenderCart_Golden(t *testing.T) {
	items := []domain.Item{
		{ID: 1, Title: `Classic "Tee" <XL>`, Price: 10, Thumbnail: "https://cdn.example.com/tee.png", Quantity: 2},
		{ID: 2, Title: "Hat & Scarf", Price: 15.5, Quantity: 1},
	}

	g := goldie.New(t, goldie.WithNameSuffix(".golden"))
	g.Assert(t, "cart_two_items", []byte(RenderCart(items)))
}

func TestRenderCountMatchesTotalQuantity(t *testing.T) {
	items := []domain.Item{
		{ID: 1, Quantity: 1},
		{ID: 2, Quantity: 4},
		{ID: 3, Quantity: 2},
	}

	assert.Equal(t, fmt.Sprintf("%d", domain.Count(items)), RenderCount(items))
}
