package domain

// Product models a catalogue entry as the remote system exposes it.
type Product struct {
	ID          string  `json:"_id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Stock       int     `json:"stock"`
}

// CreateProductData is the payload for creating or fully editing a product.
type CreateProductData struct {
	Name        string  `json:"name" validate:"required"`
	Description string  `json:"description" validate:"required"`
	Price       float64 `json:"price" validate:"required,gt=0"`
	Stock       int     `json:"stock" validate:"gte=0"`
}

// StockUpdateData carries the absolute stock value sent to the server after
// a stock adjustment. The client always resolves baseline+delta locally and
// transmits the result, never the delta itself.
type StockUpdateData struct {
	Stock int `json:"stock" validate:"gte=0"`
}
