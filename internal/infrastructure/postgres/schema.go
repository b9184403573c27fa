package postgres

import (
	"context"
	"fmt"
)

// schema tablas del historial. position conserva el orden (0 = más reciente).
const schema = `
CREATE TABLE IF NOT EXISTS recent_services (
	position       INT PRIMARY KEY,
	name           TEXT NOT NULL,
	description    TEXT NOT NULL DEFAULT '',
	original_price NUMERIC NOT NULL
);

CREATE TABLE IF NOT EXISTS quote_history (
	position     INT PRIMARY KEY,
	id           TEXT NOT NULL UNIQUE,
	client_name  TEXT NOT NULL,
	project_name TEXT NOT NULL,
	total_amount NUMERIC NOT NULL,
	quote_date   TEXT NOT NULL,
	snapshot     JSONB NOT NULL
);`

// EnsureSchema crea las tablas si no existen.
func EnsureSchema(ctx context.Context, q Querier) error {
	if _, err := q.Exec(ctx, schema); err != nil {
		return fmt.Errorf("crear esquema: %w", err)
	}
	return nil
}
