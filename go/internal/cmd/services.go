package main

import (
	"database/sql"

	"github.com/clubdesk/clubdesk/go/clients/identity"
	"github.com/clubdesk/clubdesk/go/internal/attendance"
	attendancedb "github.com/clubdesk/clubdesk/go/internal/attendance/db"
	"github.com/clubdesk/clubdesk/go/internal/auth"
	"github.com/clubdesk/clubdesk/go/internal/events"
	eventsdb "github.com/clubdesk/clubdesk/go/internal/events/db"
	"github.com/clubdesk/clubdesk/go/internal/gateway"
	"github.com/clubdesk/clubdesk/go/internal/groups"
	groupsdb "github.com/clubdesk/clubdesk/go/internal/groups/db"
	"github.com/clubdesk/clubdesk/go/internal/members"
	membersdb "github.com/clubdesk/clubdesk/go/internal/members/db"
	"github.com/clubdesk/clubdesk/go/internal/notify"
	notifydb "github.com/clubdesk/clubdesk/go/internal/notify/db"
	"github.com/clubdesk/clubdesk/go/internal/orgs"
	orgsdb "github.com/clubdesk/clubdesk/go/internal/orgs/db"
	"github.com/clubdesk/clubdesk/go/internal/schedule"
	"github.com/jonboulle/clockwork"
)

type Services struct {
	Gateway *gateway.Gateway
	Notify  *notify.App
}

func setupServices(database *sql.DB, cfg *Config) *Services {
	// Wire up dependency injection chain
	// Database layer -> Repository layer -> App layer -> Gateway

	orgsRepo := orgs.NewRepository(orgsdb.New(database))
	orgsApp := orgs.NewApp(orgsRepo)

	membersRepo := members.NewRepository(membersdb.New(database))
	membersApp := members.NewApp(membersRepo, orgsRepo)

	groupsRepo := groups.NewRepository(groupsdb.New(database))
	groupsApp := groups.NewApp(groupsRepo, orgsRepo)

	eventsRepo := events.NewRepository(eventsdb.New(database))
	eventsApp := events.NewApp(eventsRepo)

	attendanceRepo := attendance.NewRepository(attendancedb.New(database))
	attendanceApp := attendance.NewApp(attendanceRepo)

	notifyRepo := notify.NewRepository(notifydb.New(database))
	notifyApp := notify.NewApp(notifyRepo)

	authorizer := auth.NewMembershipAuthorizer(membersApp)

	stores := schedule.NewSQLStores(database, eventsRepo, attendanceRepo, groupsRepo)
	scheduleApp := schedule.NewApp(
		stores,
		groupsApp,
		membersApp,
		eventsApp,
		authorizer,
		notifyApp,
		clockwork.NewRealClock(),
	)

	identityClient := identity.NewClient(cfg.Identity.URL)

	return &Services{
		Gateway: gateway.New(orgsApp, membersApp, groupsApp, eventsApp, attendanceApp, scheduleApp, identityClient),
		Notify:  notifyApp,
	}
}
