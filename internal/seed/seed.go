package seed

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/crypto/bcrypt"
)

// Apply inserts a demo account for manual testing. It is idempotent via
// ON CONFLICT.
func Apply(ctx context.Context, pool *pgxpool.Pool) error {
	if err := ensureUser(ctx, pool, "demo@coolbreeze.pk", "Demo1234", "Demo", "User"); err != nil {
		return fmt.Errorf("ensure demo user: %w", err)
	}
	return nil
}

func ensureUser(ctx context.Context, pool *pgxpool.Pool, email, password, firstName, lastName string) error {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	const q = `
INSERT INTO users (email, password_hash, first_name, last_name)
VALUES ($1, $2, $3, $4)
ON CONFLICT (lower(email)) DO NOTHING
`
	_, err = pool.Exec(ctx, q, email, string(hashed), firstName, lastName)
	return err
}
