package memory_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tu-usuario/catalogo-pro/internal/infrastructure/memory"
)

func TestBridge_RoundTrip(t *testing.T) {
	bridge := memory.NewBridge()
	ctx := context.Background()

	_, found, err := bridge.Read(ctx, "theme:x")
	require.NoError(t, err)
	assert.False(t, found, "una clave ausente no es un error")

	require.NoError(t, bridge.Write(ctx, "theme:x", "dark"))
	value, found, err := bridge.Read(ctx, "theme:x")
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, "dark", value)

	require.NoError(t, bridge.Write(ctx, "theme:x", "light"))
	value, _, _ = bridge.Read(ctx, "theme:x")
	assert.Equal(t, "light", value, "la última escritura gana")

	require.NoError(t, bridge.Remove(ctx, "theme:x"))
	_, found, err = bridge.Read(ctx, "theme:x")
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, bridge.Remove(ctx, "theme:x"), "eliminar una clave ausente no es un error")
}

func TestNoopBridge_TodoEsAusenteYNadaFalla(t *testing.T) {
	bridge := memory.NoopBridge{}
	ctx := context.Background()

	require.NoError(t, bridge.Write(ctx, "k", "v"))
	_, found, err := bridge.Read(ctx, "k")
	require.NoError(t, err)
	assert.False(t, found)
	require.NoError(t, bridge.Remove(ctx, "k"))
}
