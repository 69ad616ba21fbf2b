package catalog_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tu-usuario/catalogo-pro/internal/application/catalog"
	"github.com/tu-usuario/catalogo-pro/internal/domain/entity"
)

func TestDateForProduct_DeterministicoEnElMismoDia(t *testing.T) {
	now := time.Date(2026, 9, 1, 10, 30, 0, 0, time.Local)

	for _, id := range []int{1, 7, 42, 999, 12345} {
		first := catalog.DateForProduct(id, now)
		second := catalog.DateForProduct(id, now)
		assert.True(t, first.Equal(second),
			"dos llamadas con el mismo id %d el mismo día deben dar la misma fecha", id)
	}
}

func TestDateForProduct_DentroDeLaVentana(t *testing.T) {
	now := time.Date(2026, 9, 1, 10, 30, 0, 0, time.Local)
	oldest := now.AddDate(0, 0, -180)

	for id := 1; id <= 200; id++ {
		d := catalog.DateForProduct(id, now)
		assert.False(t, d.After(now), "id %d: la fecha nunca es futura", id)
		assert.True(t, d.After(oldest), "id %d: la fecha no supera 180 días de antigüedad", id)
	}
}

func TestDateForProduct_IdsDistintosVarian(t *testing.T) {
	now := time.Date(2026, 9, 1, 10, 30, 0, 0, time.Local)

	seen := make(map[string]bool)
	for id := 1; id <= 50; id++ {
		seen[catalog.DateForProduct(id, now).Format("2006-01-02")] = true
	}
	// No exigimos unicidad (hay colisiones por diseño), solo dispersión razonable.
	assert.Greater(t, len(seen), 10, "50 ids deben repartirse en más de 10 días distintos")
}

func TestStampDates_AsignaFechaATodos(t *testing.T) {
	now := time.Date(2026, 9, 1, 10, 30, 0, 0, time.Local)
	products := []entity.Product{{ID: 1}, {ID: 2}, {ID: 3}}

	stamped := catalog.StampDates(products, now)
	require.Len(t, stamped, 3)
	for _, p := range stamped {
		assert.False(t, p.DateAdded.IsZero(), "todo producto debe quedar con fecha asignada")
		assert.True(t, p.DateAdded.Equal(catalog.DateForProduct(p.ID, now)))
	}
}
