package subject

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/jakefish18/wanikani-parser/internal/database"
)

// buildMultiRowInsert builds a multi-row INSERT query.
func buildMultiRowInsert(table string, columns []string, rowCount int) string {
	placeholder := "(" + strings.Repeat("?, ", len(columns)-1) + "?)"
	values := strings.Repeat(placeholder+", ", rowCount-1) + placeholder
	return fmt.Sprintf("INSERT INTO %s (%s) VALUES %s", table, strings.Join(columns, ", "), values)
}

// insertReturningID inserts a single row and returns its auto-increment id.
// A unique violation is reported as ErrDuplicate.
func insertReturningID(ctx context.Context, tx *sqlx.Tx, table string, columns []string, args ...interface{}) (int64, error) {
	result, err := tx.ExecContext(ctx, buildMultiRowInsert(table, columns, 1), args...)
	if err != nil {
		if database.IsUniqueViolation(err) {
			return 0, fmt.Errorf("insert %s: %w", table, ErrDuplicate)
		}
		return 0, fmt.Errorf("insert %s: %w", table, err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("get %s insert ID: %w", table, err)
	}
	return id, nil
}

func existsByURL(ctx context.Context, db *sqlx.DB, table, url string) (bool, error) {
	var exists bool
	query := fmt.Sprintf("SELECT EXISTS(SELECT 1 FROM %s WHERE url = ?)", table)
	if err := db.GetContext(ctx, &exists, query, url); err != nil {
		return false, fmt.Errorf("check %s existence: %w", table, err)
	}
	return exists, nil
}

// getOne runs a single-row query and maps sql.ErrNoRows to ErrNotFound.
func getOne(ctx context.Context, db *sqlx.DB, dest interface{}, query string, args ...interface{}) error {
	if err := db.GetContext(ctx, dest, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrNotFound
		}
		return err
	}
	return nil
}

// NullString maps an empty optional value to NULL.
func NullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
