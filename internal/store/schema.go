package store

import (
	"context"
	"fmt"

	"github.com/ecomdash/analytics-api/internal/dependency"
	"github.com/ecomdash/analytics-api/internal/entity"
)

type schemaStore struct {
	*PostgresStore
}

// Schema returns an object implementing the schema probe interface.
func (ps *PostgresStore) Schema() dependency.Schema {
	return &schemaStore{
		PostgresStore: ps,
	}
}

type tableNameRow struct {
	TableName string `db:"table_name"`
}

const existingTablesQuery = `
	SELECT table_name
	FROM information_schema.tables
	WHERE table_schema = 'public'
	AND table_name IN (:tables)`

// ExistingTables reports per-table presence for every candidate. Tables the
// probe doesn't find come back Absent; only the probe query itself failing is
// an error.
func (ss *schemaStore) ExistingTables(ctx context.Context, candidates []string) (entity.TableSet, error) {
	set := make(entity.TableSet, len(candidates))
	for _, name := range candidates {
		set[name] = entity.TableAbsent
	}
	if len(candidates) == 0 {
		return set, nil
	}

	rows, err := QueryListNamed[tableNameRow](ctx, ss.db, existingTablesQuery, map[string]any{
		"tables": candidates,
	})
	if err != nil {
		return nil, fmt.Errorf("can't probe table existence: %w", err)
	}

	for _, r := range rows {
		set[r.TableName] = entity.TablePresent
	}
	return set, nil
}
