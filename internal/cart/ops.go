package cart

import (
	"storefront/internal/catalog"
	"storefront/internal/domain"
)

// Pure cart transformations. Each takes the current item list and
// returns the next one; none of them touch storage or the page.

// addItem appends the product as a new line with quantity 1, or bumps
// the quantity of the existing line with the same id. The captured
// title/price/thumbnail of an existing line stay as they were unless
// refresh is set.
func addItem(items []domain.Item, p catalog.Product, refresh bool) []domain.Item {
	for i, it := range items {
		if it.ID == p.ID {
			next := cloneItems(items)
			next[i].Quantity++
			if refresh {
				next[i].Title = p.Title
				next[i].Price = p.Price
				next[i].Thumbnail = p.Thumbnail
			}
			return next
		}
	}

	return append(cloneItems(items), domain.Item{
		ID:        p.ID,
		Title:     p.Title,
		Price:     p.Price,
		Thumbnail: p.Thumbnail,
		Quantity:  1,
	})
}

// incrementItem bumps the quantity of the line with the given id.
// Unknown ids are a no-op.
func incrementItem(items []domain.Item, id int64) []domain.Item {
	for i, it := range items {
		if it.ID == id {
			next := cloneItems(items)
			next[i].Quantity++
			return next
		}
	}
	return items
}

// decrementItem lowers the quantity of the line with the given id,
// removing the line entirely when the quantity would drop to zero or
// below. Unknown ids are a no-op.
func decrementItem(items []domain.Item, id int64) []domain.Item {
	for i, it := range items {
		if it.ID == id {
			if it.Quantity <= 1 {
				return removeItem(items, id)
			}
			next := cloneItems(items)
			next[i].Quantity--
			return next
		}
	}
	return items
}

// removeItem drops the line with the given id. Unknown ids are a no-op.
func removeItem(items []domain.Item, id int64) []domain.Item {
	for i, it := range items {
		if it.ID == id {
			next := make([]domain.Item, 0, len(items)-1)
			next = append(next, items[:i]...)
			next = append(next, items[i+1:]...)
			return next
		}
	}
	return items
}

// clearCart empties the cart.
func clearCart([]domain.Item) []domain.Item {
	return nil
}
