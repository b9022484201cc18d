package main

import (
	"context"
	"fmt"
	"os"

	"github.com/clubdesk/clubdesk/go/internal/dbconfig"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type seedUser struct {
	id    uuid.UUID
	name  string
	email string
	roles []string
}

// Seeds a small demo club: one organization, a handful of users with mixed
// roles, two training groups and the archive bucket. Safe to run twice;
// every insert is an upsert.
func main() {
	ctx := context.Background()

	cfg := dbconfig.NewConfigFromEnv()
	pool, err := pgxpool.New(ctx, cfg.DSN())
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to connect: %v\n", err)
		os.Exit(1)
	}
	defer pool.Close()

	orgID := uuid.MustParse("6f0c3f3a-0001-4000-8000-000000000001")
	if _, err := pool.Exec(ctx, `
        INSERT INTO organizations (id, name)
        VALUES ($1, $2)
        ON CONFLICT (id) DO NOTHING
    `, orgID, "Demo Tennis Academy"); err != nil {
		fmt.Fprintf(os.Stderr, "error inserting organization: %v\n", err)
		os.Exit(1)
	}

	users := []seedUser{
		{uuid.MustParse("6f0c3f3a-0002-4000-8000-000000000001"), "Mara Vogel", "mara@example.com", []string{"MANAGER"}},
		{uuid.MustParse("6f0c3f3a-0002-4000-8000-000000000002"), "Jonas Keller", "jonas@example.com", []string{"COACH"}},
		{uuid.MustParse("6f0c3f3a-0002-4000-8000-000000000003"), "Lena Brunner", "lena@example.com", []string{"COACH", "PARENT"}},
		{uuid.MustParse("6f0c3f3a-0002-4000-8000-000000000004"), "Tim Brunner", "tim@example.com", []string{"PLAYER"}},
		{uuid.MustParse("6f0c3f3a-0002-4000-8000-000000000005"), "Ana Ruiz", "ana@example.com", []string{"PLAYER"}},
		{uuid.MustParse("6f0c3f3a-0002-4000-8000-000000000006"), "Iris Stamm", "iris@example.com", []string{"PARENT"}},
	}

	var inserted, skipped int
	for _, u := range users {
		tag, err := pool.Exec(ctx, `
            INSERT INTO users (id, full_name, email)
            VALUES ($1, $2, $3)
            ON CONFLICT (email) DO NOTHING
        `, u.id, u.name, u.email)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error inserting user %s: %v\n", u.email, err)
			os.Exit(1)
		}
		if tag.RowsAffected() == 1 {
			inserted++
		} else {
			skipped++
		}

		for _, role := range u.roles {
			if _, err := pool.Exec(ctx, `
                INSERT INTO memberships (organization_id, user_id, role, active)
                VALUES ($1, $2, $3, TRUE)
                ON CONFLICT (organization_id, user_id, role) DO UPDATE SET active = TRUE
            `, orgID, u.id, role); err != nil {
				fmt.Fprintf(os.Stderr, "error inserting membership for %s: %v\n", u.email, err)
				os.Exit(1)
			}
		}
	}

	headCoach := users[1]
	groupA := uuid.MustParse("6f0c3f3a-0003-4000-8000-000000000001")
	groupB := uuid.MustParse("6f0c3f3a-0003-4000-8000-000000000002")
	archive := uuid.MustParse("6f0c3f3a-0003-4000-8000-00000000000f")
	groupRows := [][3]interface{}{
		{groupA, "Juniors A", headCoach.id},
		{groupB, "Juniors B", nil},
		{archive, "Archive", nil},
	}
	for _, g := range groupRows {
		if _, err := pool.Exec(ctx, `
            INSERT INTO groups (id, organization_id, name, head_coach_id)
            VALUES ($1, $2, $3, $4)
            ON CONFLICT (organization_id, name) DO NOTHING
        `, g[0], orgID, g[1], g[2]); err != nil {
			fmt.Fprintf(os.Stderr, "error inserting group %v: %v\n", g[1], err)
			os.Exit(1)
		}
	}

	for _, playerID := range []uuid.UUID{users[3].id, users[4].id} {
		if _, err := pool.Exec(ctx, `
            INSERT INTO group_players (group_id, player_id)
            VALUES ($1, $2)
            ON CONFLICT (group_id, player_id) DO NOTHING
        `, groupA, playerID); err != nil {
			fmt.Fprintf(os.Stderr, "error linking player: %v\n", err)
			os.Exit(1)
		}
	}

	// Lena guards Tim and can view his events
	if _, err := pool.Exec(ctx, `
        INSERT INTO guardians (player_id, guardian_id, can_view, can_edit, is_primary)
        VALUES ($1, $2, TRUE, TRUE, TRUE)
        ON CONFLICT (player_id, guardian_id) DO NOTHING
    `, users[3].id, users[2].id); err != nil {
		fmt.Fprintf(os.Stderr, "error linking guardian: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Seed complete: %d users inserted, %d already present\n", inserted, skipped)
}
