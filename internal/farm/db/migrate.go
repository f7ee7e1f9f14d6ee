package db

import (
	"context"
	"embed"
	"fmt"

	"github.com/pressly/goose/v3"
)

//go:embed migrations/*.sql
var migrations embed.FS

// gooseDialects maps gorm dialector names to goose dialects.
var gooseDialects = map[string]string{
	"postgres": "postgres",
	"sqlite":   "sqlite3",
}

// Migrate applies the embedded goose migrations to the repository's database.
func (r *Repository) Migrate(ctx context.Context) error {
	dialect, ok := gooseDialects[r.db.Dialector.Name()]
	if !ok {
		return fmt.Errorf("no migration dialect for %q", r.db.Dialector.Name())
	}

	sqlDB, err := r.db.DB()
	if err != nil {
		return err
	}

	goose.SetBaseFS(migrations)
	if err := goose.SetDialect(dialect); err != nil {
		return err
	}
	return goose.UpContext(ctx, sqlDB, "migrations")
}
