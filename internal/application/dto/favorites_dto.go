package dto

import "github.com/tu-usuario/catalogo-pro/internal/domain/entity"

// FavoritesResponse ids favoritos de la sesión en orden de inserción.
type FavoritesResponse struct {
	Favorites []int `json:"favorites"`
}

// ToggleFavoriteResponse resultado de alternar un favorito.
type ToggleFavoriteResponse struct {
	ID       int  `json:"id"`
	Favorite bool `json:"favorite"`
}

// FavoriteProductsResponse productos favoritos resueltos contra el API externo.
// Failed lista los ids que no pudieron traerse (política de éxito parcial).
type FavoriteProductsResponse struct {
	Items  []entity.Product `json:"items"`
	Failed []int            `json:"failed,omitempty"`
}
