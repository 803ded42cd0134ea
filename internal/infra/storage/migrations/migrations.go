package migrations

import (
	"context"
	"embed"
	"fmt"
	"sort"
	"strings"

	"github.com/m04kA/SMC-SalonReservations/pkg/dbmetrics"
)

//go:embed *.sql
var files embed.FS

const (
	createVersionsTable = `CREATE TABLE IF NOT EXISTS schema_migrations (version TEXT PRIMARY KEY, applied_at TIMESTAMPTZ NOT NULL DEFAULT now())`
	isApplied           = `SELECT EXISTS(SELECT 1 FROM schema_migrations WHERE version = $1)`
	markApplied         = `INSERT INTO schema_migrations (version) VALUES ($1)`
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
}

// Files возвращает имена встроенных миграций в порядке применения
func Files() ([]string, error) {
	entries, err := files.ReadDir(".")
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".sql") {
			continue
		}
		names = append(names, e.Name())
	}
	sort.Strings(names)

	return names, nil
}

// Up применяет ещё не применённые миграции по порядку имён файлов
// Возвращает количество применённых миграций
func Up(ctx context.Context, db dbmetrics.DBExecutor, log Logger) (int, error) {
	names, err := Files()
	if err != nil {
		return 0, fmt.Errorf("migrations: read embedded files: %w", err)
	}

	if _, err := db.ExecContext(ctx, createVersionsTable); err != nil {
		return 0, fmt.Errorf("migrations: create schema_migrations: %w", err)
	}

	applied := 0
	for _, name := range names {
		var done bool
		if err := db.QueryRowContext(ctx, isApplied, name).Scan(&done); err != nil {
			return applied, fmt.Errorf("migrations: check %s: %w", name, err)
		}
		if done {
			continue
		}

		body, err := files.ReadFile(name)
		if err != nil {
			return applied, fmt.Errorf("migrations: read %s: %w", name, err)
		}

		if _, err := db.ExecContext(ctx, string(body)); err != nil {
			return applied, fmt.Errorf("migrations: apply %s: %w", name, err)
		}
		if _, err := db.ExecContext(ctx, markApplied, name); err != nil {
			return applied, fmt.Errorf("migrations: mark %s: %w", name, err)
		}

		if log != nil {
			log.Info("Migration applied: %s", name)
		}
		applied++
	}

	return applied, nil
}
