// Package retry ofrece reintentos acotados con backoff para llamadas salientes.
package retry

import (
	"context"
	"time"
)

const defaultDelay = 500 * time.Millisecond

// Backoff calcula la espera antes del intento n (1-indexado).
type Backoff func(attempt int) time.Duration

// ShouldRetry decide si un error amerita reintento.
type ShouldRetry func(error) bool

// Config parámetros del ciclo de reintentos.
type Config struct {
	MaxAttempts int
	Backoff     Backoff
	ShouldRetry ShouldRetry
}

func (c *Config) normalize() {
	if c.MaxAttempts <= 0 {
		c.MaxAttempts = 1
	}
	if c.Backoff == nil {
		c.Backoff = LinearBackoff(defaultDelay)
	}
	if c.ShouldRetry == nil {
		c.ShouldRetry = func(error) bool { return true }
	}
}

// LinearBackoff espera delay*n antes del intento n.
func LinearBackoff(delay time.Duration) Backoff {
	return func(attempt int) time.Duration {
		return time.Duration(attempt) * delay
	}
}

// Do ejecuta fn hasta que tenga éxito, se agoten los intentos o el contexto se cancele.
func Do(ctx context.Context, c Config, fn func() error) error {
	_, err := DoWithResult(ctx, c, func() (struct{}, error) {
		return struct{}{}, fn()
	})
	return err
}

// DoWithResult ejecuta fn y devuelve su resultado. Entre intentos respeta el
// backoff configurado; si el contexto se cancela durante la espera, devuelve
// el error del contexto envolviendo el último fallo.
func DoWithResult[T any](ctx context.Context, c Config, fn func() (T, error)) (T, error) {
	var (
		zero, result T
		err          error
	)

	if err = ctx.Err(); err != nil {
		return zero, err
	}

	c.normalize()
	timer := time.NewTimer(0)
	defer timer.Stop()

	for attempt := 1; attempt <= c.MaxAttempts; attempt++ {
		result, err = fn()
		if err == nil || !c.ShouldRetry(err) {
			return result, err
		}
		if attempt == c.MaxAttempts {
			break
		}

		timer.Reset(c.Backoff(attempt))
		select {
		case <-ctx.Done():
			return zero, ctx.Err()
		case <-timer.C:
		}
	}

	return zero, err
}
