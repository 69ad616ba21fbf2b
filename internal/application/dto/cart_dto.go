package dto

import (
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/catalogo-pro/internal/domain/entity"
)

// AddCartItemRequest entrada para agregar un producto al carrito. La cantidad
// no se recibe: la primera vez entra con 1 y las repeticiones incrementan.
type AddCartItemRequest struct {
	ID        int             `json:"id" validate:"required"`
	Title     string          `json:"title" validate:"required"`
	Price     decimal.Decimal `json:"price"`
	Thumbnail string          `json:"thumbnail"`
}

// UpdateQuantityRequest entrada para fijar la cantidad de una línea.
// Una cantidad <= 0 elimina la línea.
type UpdateQuantityRequest struct {
	Quantity int `json:"quantity"`
}

// CartResponse estado del carrito con sus lecturas derivadas.
type CartResponse struct {
	Items      []entity.CartItem `json:"items"`
	TotalItems int               `json:"total_items"`
	TotalPrice decimal.Decimal   `json:"total_price"`
}
