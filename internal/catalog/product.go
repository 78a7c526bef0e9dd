package catalog

// Product mirrors the shape of the upstream catalog API payloads.
// Extra fields in the upstream response are ignored.
type Product struct {
	ID          int64   `json:"id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Thumbnail   string  `json:"thumbnail"`
}

type productList struct {
	Products []Product `json:"products"`
}
