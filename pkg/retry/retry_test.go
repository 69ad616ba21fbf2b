package retry_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tu-usuario/catalogo-pro/pkg/retry"
)

var errTransitorio = errors.New("fallo transitorio")

func fastCfg(maxAttempts int) retry.Config {
	return retry.Config{
		MaxAttempts: maxAttempts,
		Backoff:     retry.LinearBackoff(time.Millisecond),
	}
}

func TestDo_ExitoAlPrimerIntento(t *testing.T) {
	calls := 0
	err := retry.Do(context.Background(), fastCfg(3), func() error {
		calls++
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, 1, calls)
}

func TestDo_ReintentaHastaExito(t *testing.T) {
	calls := 0
	err := retry.Do(context.Background(), fastCfg(3), func() error {
		calls++
		if calls < 3 {
			return errTransitorio
		}
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, 3, calls)
}

func TestDo_AgotaIntentosYDevuelveElUltimoError(t *testing.T) {
	calls := 0
	err := retry.Do(context.Background(), fastCfg(3), func() error {
		calls++
		return errTransitorio
	})
	assert.ErrorIs(t, err, errTransitorio)
	assert.Equal(t, 3, calls, "no debe pasar de MaxAttempts")
}

func TestDo_ShouldRetryCortaElCiclo(t *testing.T) {
	errPermanente := errors.New("fallo permanente")
	cfg := fastCfg(5)
	cfg.ShouldRetry = func(err error) bool { return !errors.Is(err, errPermanente) }

	calls := 0
	err := retry.Do(context.Background(), cfg, func() error {
		calls++
		return errPermanente
	})
	assert.ErrorIs(t, err, errPermanente)
	assert.Equal(t, 1, calls, "un error no reintentable corta al primer intento")
}

func TestDoWithResult_DevuelveElResultado(t *testing.T) {
	got, err := retry.DoWithResult(context.Background(), fastCfg(2), func() (int, error) {
		return 42, nil
	})
	require.NoError(t, err)
	assert.Equal(t, 42, got)
}

func TestDo_ContextoCanceladoAntesDeEmpezar(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	calls := 0
	err := retry.Do(ctx, fastCfg(3), func() error {
		calls++
		return errTransitorio
	})
	assert.ErrorIs(t, err, context.Canceled)
	assert.Zero(t, calls)
}

func TestDo_ContextoCanceladoDuranteLaEspera(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	cfg := retry.Config{
		MaxAttempts: 3,
		Backoff:     retry.LinearBackoff(time.Second),
	}
	go func() {
		time.Sleep(10 * time.Millisecond)
		cancel()
	}()

	err := retry.Do(ctx, cfg, func() error { return errTransitorio })
	assert.ErrorIs(t, err, context.Canceled)
}
