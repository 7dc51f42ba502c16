package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/classicmodels/api/internal/storage"
)

// table is a generic repository over one entity table. It is parameterized by
// the row type and driven entirely by the column metadata declared in the
// entity's domain package, so one implementation serves every entity. Key
// columns are a slice: single-key and composite-key tables share the same
// code paths, with the key arity checked at query-build time.
type table[T any] struct {
	name    string
	keyCols []string
	cols    []string
	insCols []string
	updCols []string
}

func newTable[T any](name string, keyCols, cols, insCols, updCols []string) table[T] {
	return table[T]{name: name, keyCols: keyCols, cols: cols, insCols: insCols, updCols: updCols}
}

func (t *table[T]) selectList() string {
	return strings.Join(t.cols, ", ")
}

// keyClause renders "k1 = $off AND k2 = $off+1" starting at placeholder off.
func (t *table[T]) keyClause(off int) string {
	parts := make([]string, len(t.keyCols))
	for i, col := range t.keyCols {
		parts[i] = fmt.Sprintf("%s = $%d", col, off+i)
	}
	return strings.Join(parts, " AND ")
}

func (t *table[T]) notFound() error {
	return fmt.Errorf("%s: %w", t.name, storage.ErrNotFound)
}

// all returns every row, in database order.
func (t *table[T]) all(ctx context.Context, db *sqlx.DB) ([]T, error) {
	var out []T
	query := fmt.Sprintf("SELECT %s FROM %s", t.selectList(), t.name)
	if err := db.SelectContext(ctx, &out, query); err != nil {
		return nil, fmt.Errorf("list %s: %w", t.name, err)
	}
	return out, nil
}

// get fetches one row by its key value(s).
func (t *table[T]) get(ctx context.Context, db *sqlx.DB, keys ...any) (T, error) {
	var out T
	query := fmt.Sprintf("SELECT %s FROM %s WHERE %s", t.selectList(), t.name, t.keyClause(1))
	if err := db.GetContext(ctx, &out, query, keys...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return out, t.notFound()
		}
		return out, fmt.Errorf("get %s: %w", t.name, err)
	}
	return out, nil
}

// listBy returns every row whose column col equals v. Used for the
// parent-scoped listings of composite-key entities.
func (t *table[T]) listBy(ctx context.Context, db *sqlx.DB, col string, v any) ([]T, error) {
	var out []T
	query := fmt.Sprintf("SELECT %s FROM %s WHERE %s = $1", t.selectList(), t.name, col)
	if err := db.SelectContext(ctx, &out, query, v); err != nil {
		return nil, fmt.Errorf("list %s by %s: %w", t.name, col, err)
	}
	return out, nil
}

// insert writes a new row and returns it as persisted, including any
// database-generated key column.
func (t *table[T]) insert(ctx context.Context, db *sqlx.DB, ent T) (T, error) {
	var out T
	named := make([]string, len(t.insCols))
	for i, col := range t.insCols {
		named[i] = ":" + col
	}
	query := fmt.Sprintf(
		"INSERT INTO %s (%s) VALUES (%s) RETURNING %s",
		t.name, strings.Join(t.insCols, ", "), strings.Join(named, ", "), t.selectList(),
	)
	rows, err := sqlx.NamedQueryContext(ctx, db, query, ent)
	if err != nil {
		return out, fmt.Errorf("insert %s: %w", t.name, err)
	}
	defer rows.Close()
	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return out, fmt.Errorf("insert %s: %w", t.name, err)
		}
		return out, fmt.Errorf("insert %s: no row returned", t.name)
	}
	if err := rows.StructScan(&out); err != nil {
		return out, fmt.Errorf("insert %s: %w", t.name, err)
	}
	return out, nil
}

// update overwrites the columns present in fields on the row identified by
// keys and returns the mutated row. Columns absent from the map keep their
// stored values; key columns are never assignable. The SET list follows the
// declared update-column order so the statement text is deterministic.
func (t *table[T]) update(ctx context.Context, db *sqlx.DB, fields map[string]any, keys ...any) (T, error) {
	var (
		sets []string
		args []any
	)
	for _, col := range t.updCols {
		v, ok := fields[col]
		if !ok {
			continue
		}
		args = append(args, v)
		sets = append(sets, fmt.Sprintf("%s = $%d", col, len(args)))
	}
	if len(sets) == 0 {
		// Nothing to assign; the lookup still reports a missing row.
		return t.get(ctx, db, keys...)
	}

	args = append(args, keys...)
	query := fmt.Sprintf(
		"UPDATE %s SET %s WHERE %s RETURNING %s",
		t.name, strings.Join(sets, ", "), t.keyClause(len(args)-len(keys)+1), t.selectList(),
	)

	var out T
	if err := db.QueryRowxContext(ctx, query, args...).StructScan(&out); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return out, t.notFound()
		}
		return out, fmt.Errorf("update %s: %w", t.name, err)
	}
	return out, nil
}

// del removes the row identified by keys.
func (t *table[T]) del(ctx context.Context, db *sqlx.DB, keys ...any) error {
	query := fmt.Sprintf("DELETE FROM %s WHERE %s", t.name, t.keyClause(1))
	res, err := db.ExecContext(ctx, query, keys...)
	if err != nil {
		return fmt.Errorf("delete %s: %w", t.name, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return t.notFound()
	}
	return nil
}
