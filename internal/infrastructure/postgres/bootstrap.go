package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"
)

// EnsureDatabase creates the target database when it does not exist yet.
// It connects through the maintenance database and must only be called for
// local development hosts; managed hosts pre-create the database and this
// step is skipped entirely (see Config.IsLocalDB).
func EnsureDatabase(ctx context.Context, adminDSN, dbName string) error {
	conn, err := pgx.Connect(ctx, adminDSN)
	if err != nil {
		return err
	}
	defer func() { _ = conn.Close(ctx) }()

	var exists bool
	if err := conn.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM pg_database WHERE datname = $1)`, dbName,
	).Scan(&exists); err != nil {
		return err
	}
	if exists {
		return nil
	}
	// CREATE DATABASE cannot be parameterized; the name comes from trusted
	// configuration, quoted as an identifier.
	_, err = conn.Exec(ctx, `CREATE DATABASE `+pgx.Identifier{dbName}.Sanitize())
	return err
}
