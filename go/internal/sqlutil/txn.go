package sqlutil

import (
	"context"
	"database/sql"
)

// Transact executes fn inside a *sql.Tx without binding the tx to a single
// Queries type, so one unit of work can span several repositories.
// If fn returns an error the tx rolls back, else it commits.
func Transact(ctx context.Context, db *sql.DB, fn func(tx *sql.Tx) error) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	if err := fn(tx); err != nil {
		_ = tx.Rollback()
		return err
	}
	return tx.Commit()
}
