package domain

// Item is one line in the cart: a catalog product captured at the time
// it was first added, plus a quantity. Price, title and thumbnail are
// the values seen at add time; they are not refreshed from the catalog
// afterwards.
type Item struct {
	ID        int64   `json:"id"`
	Title     string  `json:"title"`
	Price     float64 `json:"price"`
	Thumbnail string  `json:"thumbnail"`
	Quantity  int     `json:"quantity"`
}

// LineTotal is the item's price times its quantity.
func (i Item) LineTotal() float64 {
	return i.Price * float64(i.Quantity)
}

// Total returns the sum of line totals over all items.
func Total(items []Item) float64 {
	var sum float64
	for _, it := range items {
		sum += it.LineTotal()
	}
	return sum
}

// Count returns the sum of quantities over all items.
func Count(items []Item) int {
	var n int
	for _, it := range items {
		n += it.Quantity
	}
	return n
}
