package schedule

import (
	"context"
	"database/sql"

	"github.com/clubdesk/clubdesk/go/internal/attendance"
	"github.com/clubdesk/clubdesk/go/internal/events"
	"github.com/clubdesk/clubdesk/go/internal/groups"
	"github.com/clubdesk/clubdesk/go/internal/sqlutil"
)

// SQLStores is the production StoreProvider. Each Transact call opens one
// database transaction and hands the orchestrator repositories bound to it.
type SQLStores struct {
	db         *sql.DB
	events     *events.Repository
	attendance *attendance.Repository
	groups     *groups.Repository
}

// NewSQLStores creates a StoreProvider over a shared database handle
func NewSQLStores(db *sql.DB, eventsRepo *events.Repository, attendanceRepo *attendance.Repository, groupsRepo *groups.Repository) *SQLStores {
	return &SQLStores{
		db:         db,
		events:     eventsRepo,
		attendance: attendanceRepo,
		groups:     groupsRepo,
	}
}

// Transact runs fn against transaction-bound repositories, committing on
// success and rolling back on error
func (p *SQLStores) Transact(ctx context.Context, fn func(s Stores) error) error {
	return sqlutil.Transact(ctx, p.db, func(tx *sql.Tx) error {
		return fn(Stores{
			Events:     p.events.WithTx(tx),
			Attendance: p.attendance.WithTx(tx),
			Groups:     p.groups.WithTx(tx),
		})
	})
}
