package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog/log"

	"skid-extractor/internal/report"
)

// Execer is the part of a pgx pool or connection the store needs.
type Execer interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
}

// SkillStore persists the merged id/handle/name table in PostgreSQL.
type SkillStore struct {
	db    Execer
	table string
}

// NewSkillStore creates a store writing to the named table.
func NewSkillStore(db Execer, table string) (*SkillStore, error) {
	if table == "" {
		return nil, errors.New("empty table name")
	}
	return &SkillStore{
		db:    db,
		table: pgx.Identifier{table}.Sanitize(),
	}, nil
}

// Connect opens a pool and checks it can reach the server.
func Connect(ctx context.Context, databaseURL string) (*pgxpool.Pool, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("connect PostgreSQL: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping PostgreSQL: %w", err)
	}
	log.Info().Msg("Connected to PostgreSQL")

	return pool, nil
}

// EnsureSchema creates the table if it does not exist yet.
func (s *SkillStore) EnsureSchema(ctx context.Context) error {
	ddl := fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (
	id     BIGINT PRIMARY KEY,
	handle TEXT NOT NULL,
	name   TEXT
)`, s.table)

	if _, err := s.db.Exec(ctx, ddl); err != nil {
		return fmt.Errorf("create table: %w", err)
	}

	log.Info().Str("table", s.table).Msg("Table schema ensured")
	return nil
}

// Upsert inserts or updates every row keyed by id. Rows without a name store NULL.
func (s *SkillStore) Upsert(ctx context.Context, rows []report.Row) (affected int, err error) {
	query := fmt.Sprintf(`INSERT INTO %s (id, handle, name) VALUES ($1, $2, $3)
ON CONFLICT (id) DO UPDATE SET handle = EXCLUDED.handle, name = EXCLUDED.name`, s.table)

	for _, r := range rows {
		name := pgtype.Text{String: r.Name, Valid: r.Name != ""}
		tag, execErr := s.db.Exec(ctx, query, r.ID, r.Handle, name)
		if execErr != nil {
			return affected, fmt.Errorf("upsert id %d: %w", r.ID, execErr)
		}
		affected += int(tag.RowsAffected())
	}

	log.Info().Int("rows", len(rows)).Int("affected", affected).Msg("Upserted table rows")
	return affected, nil
}
