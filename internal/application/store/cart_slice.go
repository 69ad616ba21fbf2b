package store

import (
	"context"
	"encoding/json"
	"slices"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/catalogo-pro/internal/domain/entity"
)

// initializeCart carga las líneas persistidas o deja el carrito vacío.
// Requiere s.mu tomado.
func (s *Store) initializeCart(ctx context.Context) {
	raw, found := s.readSlot(ctx, s.cartKey())
	if !found {
		return
	}

	var items []entity.CartItem
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		s.log.Warn().Err(err).Msg("carrito persistido corrupto, se usa carrito vacío")
		return
	}
	s.items = items
}

// CartItems devuelve una copia de las líneas del carrito.
func (s *Store) CartItems() []entity.CartItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.items)
}

// AddToCart agrega el producto al carrito: si ya existe una línea con el mismo
// id incrementa su cantidad en 1, si no agrega una línea nueva con cantidad 1.
// La cantidad del argumento se ignora. Persiste tras la mutación.
func (s *Store) AddToCart(ctx context.Context, item entity.CartItem) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].ID == item.ID {
			s.items[i].Quantity++
			s.persistCart(ctx)
			return
		}
	}

	item.Quantity = 1
	s.items = append(s.items, item)
	s.persistCart(ctx)
}

// RemoveFromCart elimina la línea con el id dado. Si no existe, no es un error.
// Persiste tras la mutación.
func (s *Store) RemoveFromCart(ctx context.Context, id int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.items = slices.DeleteFunc(s.items, func(it entity.CartItem) bool {
		return it.ID == id
	})
	s.persistCart(ctx)
}

// UpdateQuantity fija la cantidad de la línea con el id dado; una cantidad <= 0
// elimina la línea. Las demás líneas no se tocan. Persiste tras la mutación.
func (s *Store) UpdateQuantity(ctx context.Context, id, quantity int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if quantity <= 0 {
		s.items = slices.DeleteFunc(s.items, func(it entity.CartItem) bool {
			return it.ID == id
		})
		s.persistCart(ctx)
		return
	}

	for i := range s.items {
		if s.items[i].ID == id {
			s.items[i].Quantity = quantity
			break
		}
	}
	s.persistCart(ctx)
}

// ClearCart vacía el carrito y elimina la entrada persistida por completo
// (no persiste una colección vacía).
func (s *Store) ClearCart(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.items = nil
	s.removeSlot(ctx, s.cartKey())
}

// TotalItems suma las cantidades de todas las líneas (lectura derivada).
func (s *Store) TotalItems() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	total := 0
	for _, it := range s.items {
		total += it.Quantity
	}
	return total
}

// TotalPrice suma price × quantity de todas las líneas (lectura derivada).
func (s *Store) TotalPrice() decimal.Decimal {
	s.mu.Lock()
	defer s.mu.Unlock()

	total := decimal.Zero
	for _, it := range s.items {
		total = total.Add(it.Subtotal())
	}
	return total
}

// persistCart serializa y escribe las líneas. Requiere s.mu tomado.
func (s *Store) persistCart(ctx context.Context) {
	data, err := json.Marshal(s.items)
	if err != nil {
		s.log.Error().Err(err).Msg("serializar carrito")
		return
	}
	s.writeSlot(ctx, s.cartKey(), string(data))
}
