package entity

import "github.com/shopspring/decimal"

// CartItem línea del carrito. Invariante: a lo sumo un CartItem por ID de producto;
// Quantity siempre >= 1 (una cantidad <= 0 elimina la línea).
type CartItem struct {
	ID        int             `json:"id"`
	Title     string          `json:"title"`
	Price     decimal.Decimal `json:"price"`
	Thumbnail string          `json:"thumbnail"`
	Quantity  int             `json:"quantity"`
}

// Subtotal devuelve price × quantity.
func (i CartItem) Subtotal() decimal.Decimal {
	return i.Price.Mul(decimal.NewFromInt(int64(i.Quantity)))
}
