package cart

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"

	"storefront/internal/catalog"
)

// Add commands accept loosely shaped input: a structured product, a
// JSON-encoded product string, or a bag of string attributes lifted
// off a page element. Everything funnels through a validated decode;
// anything that doesn't yield a product with a usable id makes the
// command a no-op.

type productPayload struct {
	ID        *int64  `json:"id"`
	Title     string  `json:"title"`
	Price     float64 `json:"price"`
	Thumbnail string  `json:"thumbnail"`
}

// decodeProduct validates v into a catalog.Product. The second return
// is false when v is malformed or carries no id.
func decodeProduct(v any) (catalog.Product, bool) {
	switch p := v.(type) {
	case catalog.Product:
		if p.ID == 0 {
			return catalog.Product{}, false
		}
		return p, true
	case *catalog.Product:
		if p == nil || p.ID == 0 {
			return catalog.Product{}, false
		}
		return *p, true
	case string:
		return decodeProductJSON([]byte(p))
	case []byte:
		return decodeProductJSON(p)
	case json.RawMessage:
		return decodeProductJSON(p)
	default:
		return catalog.Product{}, false
	}
}

func decodeProductJSON(data []byte) (catalog.Product, bool) {
	var payload productPayload
	if err := json.Unmarshal(data, &payload); err != nil {
		return catalog.Product{}, false
	}
	if payload.ID == nil {
		return catalog.Product{}, false
	}
	return catalog.Product{
		ID:        *payload.ID,
		Title:     payload.Title,
		Price:     payload.Price,
		Thumbnail: payload.Thumbnail,
	}, true
}

// productFromValues builds a product from string-keyed element
// attributes (id, title, price, thumbnail). A non-numeric id rejects
// the whole input; a non-numeric price coerces to 0.
func productFromValues(vals map[string]string) (catalog.Product, bool) {
	id, ok := parseID(vals["id"])
	if !ok {
		return catalog.Product{}, false
	}
	return catalog.Product{
		ID:        id,
		Title:     vals["title"],
		Price:     parseNumber(vals["price"]),
		Thumbnail: vals["thumbnail"],
	}, true
}

func parseID(s string) (int64, bool) {
	id, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return 0, false
	}
	return id, true
}

// parseNumber coerces s to a finite float, treating anything else as
// 0 so a bad attribute never propagates NaN into totals. ParseFloat
// accepts "NaN" and "Inf" spellings, so the parsed value is checked
// too.
func parseNumber(s string) float64 {
	n, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(n) || math.IsInf(n, 0) {
		return 0
	}
	return n
}
