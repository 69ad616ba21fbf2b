package catalog

import (
	"sort"
	"time"

	"github.com/tu-usuario/catalogo-pro/internal/domain/entity"
)

const dayLayout = "2006-01-02"

// Point punto de la serie temporal de la gráfica: productos acumulados hasta
// la fecha y altas de ese día.
type Point struct {
	Date     string `json:"date"`
	Products int    `json:"products"`
	Added    int    `json:"added"`
}

// Series agrupa los productos por día calendario de alta (ignorando la hora),
// ordena los días ascendentemente y acumula el total corrido por día.
func Series(products []entity.Product) []Point {
	buckets := make(map[string]int)
	for _, p := range products {
		day := p.DateAdded.Format(dayLayout)
		buckets[day]++
	}

	days := make([]string, 0, len(buckets))
	for day := range buckets {
		days = append(days, day)
	}
	sort.Strings(days) // el layout YYYY-MM-DD ordena cronológicamente

	series := make([]Point, 0, len(days))
	cumulative := 0
	for _, day := range days {
		cumulative += buckets[day]
		series = append(series, Point{
			Date:     day,
			Products: cumulative,
			Added:    buckets[day],
		})
	}
	return series
}

// StampDates asigna DateAdded a cada producto con DateForProduct usando el
// mismo ancla "now" para toda la colección.
func StampDates(products []entity.Product, now time.Time) []entity.Product {
	for i := range products {
		products[i].DateAdded = DateForProduct(products[i].ID, now)
	}
	return products
}
