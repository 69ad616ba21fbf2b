package catalog

import (
	"math"
	"time"
)

// dateWindowDays ventana máxima de antigüedad asignada a un producto.
const dateWindowDays = 180

// DateForProduct deriva una fecha de alta pseudoaleatoria pero determinística a
// partir del ID del producto (el API externo no expone fecha de creación).
// Para un mismo ID y un mismo día calendario el resultado es siempre el mismo;
// el ancla "now" avanza a diario, lo cual es una limitación asumida.
func DateForProduct(id int, now time.Time) time.Time {
	seed := float64(id * 12345)
	fraction := math.Abs(math.Sin(seed)) * 10000
	daysAgo := int(math.Floor(math.Mod(fraction, dateWindowDays)))
	return now.AddDate(0, 0, -daysAgo)
}
