package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/tu-usuario/catalogo-pro/internal/domain/repository"
)

var _ repository.StorageBridge = (*BridgeRepo)(nil)

// BridgeRepo implementación del puerto StorageBridge sobre PostgreSQL.
// Cada slot de estado es una fila de kv_slots; Write hace upsert.
type BridgeRepo struct {
	pool *pgxpool.Pool
}

// NewBridgeRepository construye el adaptador de persistencia clave-valor.
func NewBridgeRepository(pool *pgxpool.Pool) *BridgeRepo {
	return &BridgeRepo{pool: pool}
}

// EnsureSchema crea la tabla de slots si no existe.
func (r *BridgeRepo) EnsureSchema(ctx context.Context) error {
	query := `
		CREATE TABLE IF NOT EXISTS kv_slots (
			key        TEXT PRIMARY KEY,
			value      TEXT NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`
	if _, err := r.pool.Exec(ctx, query); err != nil {
		return fmt.Errorf("crear tabla kv_slots: %w", err)
	}
	return nil
}

// Read obtiene el valor de la clave; una clave ausente no es un error.
func (r *BridgeRepo) Read(ctx context.Context, key string) (string, bool, error) {
	query := `SELECT value FROM kv_slots WHERE key = $1`
	var value string
	err := r.pool.QueryRow(ctx, query, key).Scan(&value)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("read slot: %w", err)
	}
	return value, true, nil
}

// Write guarda el valor bajo la clave (upsert).
func (r *BridgeRepo) Write(ctx context.Context, key, value string) error {
	query := `
		INSERT INTO kv_slots (key, value, updated_at)
		VALUES ($1, $2, now())
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = now()`
	if _, err := r.pool.Exec(ctx, query, key, value); err != nil {
		return fmt.Errorf("write slot: %w", err)
	}
	return nil
}

// Remove elimina la clave; eliminar una clave ausente no es un error.
func (r *BridgeRepo) Remove(ctx context.Context, key string) error {
	query := `DELETE FROM kv_slots WHERE key = $1`
	if _, err := r.pool.Exec(ctx, query, key); err != nil {
		return fmt.Errorf("remove slot: %w", err)
	}
	return nil
}
