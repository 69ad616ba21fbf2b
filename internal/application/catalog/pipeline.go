// Package catalog contiene la vista derivada del catálogo: filtrado, paginación,
// asignación de fecha de alta y serie temporal para la gráfica. Todas las
// funciones son puras: el resultado es reconstruible en cualquier momento a
// partir de (productos, criterios).
package catalog

import (
	"strings"
	"time"

	"github.com/tu-usuario/catalogo-pro/internal/domain/entity"
)

// PageSize tamaño fijo de página del listado.
const PageSize = 10

// CategoryAll valor de categoría que desactiva el filtro por categoría.
const CategoryAll = "all"

// Criteria criterios de filtrado del listado. From/To en cero desactivan el
// filtro por fechas; si To es cero se usa From como fin del rango.
type Criteria struct {
	Query    string
	Category string
	From     time.Time
	To       time.Time
}

// Filter aplica los tres filtros (texto, categoría, rango de fechas) por
// intersección. Cada filtro es puro, por lo que el orden no altera el resultado.
func Filter(products []entity.Product, c Criteria) []entity.Product {
	filtered := make([]entity.Product, 0, len(products))

	query := strings.ToLower(strings.TrimSpace(c.Query))
	byDate := !c.From.IsZero()
	var fromTime, toTime time.Time
	if byDate {
		to := c.To
		if to.IsZero() {
			to = c.From
		}
		fromTime = startOfDay(c.From)
		toTime = endOfDay(to)
	}

	for _, p := range products {
		if query != "" &&
			!strings.Contains(strings.ToLower(p.Title), query) &&
			!strings.Contains(strings.ToLower(p.Description), query) {
			continue
		}
		if c.Category != "" && c.Category != CategoryAll && p.Category != c.Category {
			continue
		}
		if byDate && (p.DateAdded.Before(fromTime) || p.DateAdded.After(toTime)) {
			continue
		}
		filtered = append(filtered, p)
	}

	return filtered
}

// PageCount devuelve ceil(total / PageSize).
func PageCount(total int) int {
	return (total + PageSize - 1) / PageSize
}

// Paginate devuelve la página pedida (1-indexada). Una página fuera de rango
// produce un slice vacío; es responsabilidad del llamador volver a la página 1
// cuando cambian los criterios.
func Paginate(products []entity.Product, page int) []entity.Product {
	if page < 1 {
		page = 1
	}
	start := (page - 1) * PageSize
	if start >= len(products) {
		return []entity.Product{}
	}
	end := start + PageSize
	if end > len(products) {
		end = len(products)
	}
	return products[start:end]
}

// startOfDay devuelve las 00:00:00.000 del día de t en hora local.
func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// endOfDay devuelve las 23:59:59.999... del día de t en hora local. Se fija la
// hora de pared directamente: sumar 24h rompe en días con cambio de horario.
func endOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, int(time.Second-time.Nanosecond), t.Location())
}
