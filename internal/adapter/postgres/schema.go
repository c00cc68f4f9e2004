package postgres

import (
	"context"
	"fmt"
	"io/fs"

	"github.com/Masterminds/squirrel"
	"github.com/pressly/goose/v3"

	"github.com/heartmarshall/resource-registry/migrations"
)

// SchemaChecker compares the migration version applied to the database with
// the newest embedded migration.
type SchemaChecker struct {
	db Querier
}

// NewSchemaChecker creates a SchemaChecker.
func NewSchemaChecker(db Querier) *SchemaChecker {
	return &SchemaChecker{db: db}
}

// SchemaVersion returns the applied and the expected migration versions.
func (c *SchemaChecker) SchemaVersion(ctx context.Context) (applied, expected int64, err error) {
	expected, err = LatestMigration(migrations.FS)
	if err != nil {
		return 0, 0, err
	}

	query, args, err := Builder().
		Select("COALESCE(MAX(version_id), 0)").
		From("goose_db_version").
		Where(squirrel.Eq{"is_applied": true}).
		ToSql()
	if err != nil {
		return 0, 0, fmt.Errorf("build schema version query: %w", err)
	}

	if err := c.db.QueryRow(ctx, query, args...).Scan(&applied); err != nil {
		return 0, 0, fmt.Errorf("read schema version: %w", err)
	}
	return applied, expected, nil
}

// LatestMigration returns the highest version among the *.sql files of fsys.
func LatestMigration(fsys fs.FS) (int64, error) {
	names, err := fs.Glob(fsys, "*.sql")
	if err != nil {
		return 0, fmt.Errorf("list migrations: %w", err)
	}

	var latest int64
	for _, name := range names {
		v, err := goose.NumericComponent(name)
		if err != nil {
			return 0, fmt.Errorf("migration %s: %w", name, err)
		}
		latest = max(latest, v)
	}
	return latest, nil
}
