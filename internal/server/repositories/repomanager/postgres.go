package repomanager

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dmitrijs2005/userconsole/internal/dbx"
	"github.com/dmitrijs2005/userconsole/internal/server/migrations"
	"github.com/dmitrijs2005/userconsole/internal/server/repositories/users"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
)

var gooseUpContext = goose.UpContext

type PostgresRepositoryManager struct {
	db *sql.DB
}

func NewPostgresRepositoryManager(db *sql.DB) *PostgresRepositoryManager {
	return &PostgresRepositoryManager{db: db}
}

// OpenPostgres connects to dsn through the pgx driver and checks the
// connection before returning.
func OpenPostgres(ctx context.Context, dsn string) (*PostgresRepositoryManager, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}
	return NewPostgresRepositoryManager(db), nil
}

func (m *PostgresRepositoryManager) Users() users.Repository {
	return users.NewPostgresRepository(m.db)
}

func (m *PostgresRepositoryManager) WithinTx(ctx context.Context, fn func(ctx context.Context, repo users.Repository) error) error {
	return dbx.WithTx(ctx, m.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		return fn(ctx, users.NewPostgresRepository(tx))
	})
}

func (m *PostgresRepositoryManager) RunMigrations(ctx context.Context) error {
	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect("pgx"); err != nil {
		return err
	}

	if err := gooseUpContext(ctx, m.db, "."); err != nil {
		return fmt.Errorf("run migrations: %w", err)
	}

	return nil
}

func (m *PostgresRepositoryManager) Close() error {
	return m.db.Close()
}
