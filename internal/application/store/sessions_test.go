package store_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tu-usuario/catalogo-pro/internal/application/store"
	"github.com/tu-usuario/catalogo-pro/internal/domain/entity"
	"github.com/tu-usuario/catalogo-pro/internal/domain/repository"
	"github.com/tu-usuario/catalogo-pro/internal/infrastructure/memory"
	"github.com/tu-usuario/catalogo-pro/pkg/logger"
)

// gatedBridge retiene las lecturas hasta que se abra la compuerta, para
// observar qué pasa mientras una sesión todavía se está hidratando.
type gatedBridge struct {
	repository.StorageBridge
	gate chan struct{}
}

func (b *gatedBridge) Read(ctx context.Context, key string) (string, bool, error) {
	<-b.gate
	return b.StorageBridge.Read(ctx, key)
}

func TestSessions_ReutilizaElContenedor(t *testing.T) {
	sessions := store.NewSessions(memory.NewBridge(), logger.Nop(), nil, 0)
	ctx := context.Background()

	first := sessions.Get(ctx, "sesion-a", "")
	second := sessions.Get(ctx, "sesion-a", "")
	assert.Same(t, first, second, "la misma sesión reutiliza su contenedor")
}

func TestSessions_AislaSesiones(t *testing.T) {
	sessions := store.NewSessions(memory.NewBridge(), logger.Nop(), nil, 0)
	ctx := context.Background()

	a := sessions.Get(ctx, "sesion-a", "")
	b := sessions.Get(ctx, "sesion-b", "")

	a.ToggleFavorite(ctx, 7)
	assert.True(t, a.IsFavorite(7))
	assert.False(t, b.IsFavorite(7), "los favoritos de una sesión no se filtran a otra")
}

func TestSessions_HidrataDesdeElPuente(t *testing.T) {
	bridge := memory.NewBridge()
	ctx := context.Background()

	primera := store.NewSessions(bridge, logger.Nop(), nil, 0)
	primera.Get(ctx, "sesion-a", "").ToggleFavorite(ctx, 7)

	// Proceso nuevo: otro registro sobre el mismo puente.
	segunda := store.NewSessions(bridge, logger.Nop(), nil, 0)
	assert.True(t, segunda.Get(ctx, "sesion-a", "").IsFavorite(7))
}

func TestSessions_GetEsperaLaHidratacion(t *testing.T) {
	inner := memory.NewBridge()
	ctx := context.Background()

	// Estado persistido por un proceso anterior.
	previa := store.NewSessions(inner, logger.Nop(), nil, 0)
	previa.Get(ctx, "sesion-a", "").AddToCart(ctx, entity.CartItem{ID: 1, Title: "Camiseta"})

	gate := make(chan struct{})
	sessions := store.NewSessions(&gatedBridge{StorageBridge: inner, gate: gate}, logger.Nop(), nil, 0)

	got := make(chan *store.Store, 2)
	for i := 0; i < 2; i++ {
		go func() { got <- sessions.Get(ctx, "sesion-a", "") }()
	}

	// Con la compuerta cerrada ningún Get debe entregar el contenedor: una
	// mutación sobre un contenedor a medio hidratar pisaría el estado persistido.
	select {
	case <-got:
		t.Fatal("Get entregó un contenedor sin hidratar")
	case <-time.After(50 * time.Millisecond):
	}

	close(gate)
	st := <-got
	assert.Same(t, st, <-got, "las dos peticiones concurrentes comparten el contenedor")

	st.AddToCart(ctx, entity.CartItem{ID: 2, Title: "Pantalón"})
	require.Len(t, st.CartItems(), 2, "la mutación conserva las líneas persistidas")
}

func TestSessions_DesalojaContenedoresInactivos(t *testing.T) {
	bridge := memory.NewBridge()
	sessions := store.NewSessions(bridge, logger.Nop(), nil, 20*time.Millisecond)
	ctx := context.Background()

	sessions.Get(ctx, "sesion-a", "").ToggleFavorite(ctx, 7)
	require.Equal(t, 1, sessions.Len())

	time.Sleep(40 * time.Millisecond)

	// Un acceso posterior desaloja la sesión inactiva...
	sessions.Get(ctx, "sesion-b", "")
	assert.Equal(t, 1, sessions.Len(), "la sesión inactiva se desaloja del registro")

	// ...y la desalojada rehidrata su estado durable al volver.
	assert.True(t, sessions.Get(ctx, "sesion-a", "").IsFavorite(7))
}
