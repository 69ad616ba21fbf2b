package dto

import (
	"github.com/tu-usuario/catalogo-pro/internal/application/catalog"
	"github.com/tu-usuario/catalogo-pro/internal/domain/entity"
)

// ListProductsRequest criterios del listado (query params).
// From/To en formato YYYY-MM-DD; vacíos desactivan el filtro por fechas.
type ListProductsRequest struct {
	Query    string `query:"q"`
	Category string `query:"category"`
	From     string `query:"from"`
	To       string `query:"to"`
	Page     int    `query:"page"`
}

// ProductListResponse listado filtrado y paginado.
type ProductListResponse struct {
	Items []entity.Product `json:"items"`
	Page  PageResponse     `json:"page"`
}

// ChartResponse serie temporal de altas al catálogo.
type ChartResponse struct {
	Points []catalog.Point `json:"points"`
}
