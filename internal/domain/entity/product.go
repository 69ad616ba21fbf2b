package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto del catálogo externo (solo lectura).
// DateAdded no viene del API: se deriva determinísticamente del ID al momento
// de la carga (ver catalog.DateForProduct). El producto nunca se persiste localmente.
type Product struct {
	ID                 int             `json:"id"`
	Title              string          `json:"title"`
	Description        string          `json:"description"`
	Price              decimal.Decimal `json:"price"`
	DiscountPercentage float64         `json:"discountPercentage"`
	Rating             float64         `json:"rating"`
	Stock              int             `json:"stock"`
	Brand              string          `json:"brand"`
	Category           string          `json:"category"` // slug de categoría
	Thumbnail          string          `json:"thumbnail"`
	Images             []string        `json:"images"`
	DateAdded          time.Time       `json:"dateAdded"`
}
