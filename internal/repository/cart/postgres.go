package cart

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log"

	"coolbreeze/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type postgresRepo struct {
	pool   *pgxpool.Pool
	logger *log.Logger
}

func NewPostgres(pool *pgxpool.Pool, logger *log.Logger) Repository {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &postgresRepo{pool: pool, logger: logger}
}

func (r *postgresRepo) ListByUser(ctx context.Context, userID string) ([]domain.CartItem, error) {
	const q = `
SELECT id::text, user_id::text, product_id, title, brand, price, features, created_at
FROM cart_items
WHERE user_id = $1
ORDER BY created_at DESC
`
	rows, err := r.pool.Query(ctx, q, userID)
	if err != nil {
		r.logger.Printf("cart repo: list user_id=%s error=%v", userID, err)
		return nil, err
	}
	defer rows.Close()

	var result []domain.CartItem
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *item)
	}
	if err := rows.Err(); err != nil {
		r.logger.Printf("cart repo: list rows user_id=%s error=%v", userID, err)
		return nil, err
	}
	return result, nil
}

func (r *postgresRepo) Insert(ctx context.Context, item domain.CartItem) (*domain.CartItem, error) {
	featJSON, err := json.Marshal(item.Features)
	if err != nil {
		return nil, err
	}

	// UNIQUE (user_id, product_id) makes duplicate adds a constraint
	// violation rather than a check-then-act race.
	const q = `
INSERT INTO cart_items (user_id, product_id, title, brand, price, features)
VALUES ($1, $2, $3, $4, $5, $6)
RETURNING id::text, created_at
`
	out := item
	err = r.pool.QueryRow(ctx, q,
		item.UserID,
		item.ProductID,
		item.Title,
		item.Brand,
		item.Price,
		featJSON,
	).Scan(&out.ID, &out.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, domain.ErrAlreadyExists
		}
		r.logger.Printf("cart repo: insert user_id=%s product_id=%s error=%v", item.UserID, item.ProductID, err)
		return nil, err
	}
	return &out, nil
}

func (r *postgresRepo) Delete(ctx context.Context, userID, itemID string) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM cart_items WHERE id = $1 AND user_id = $2`, itemID, userID)
	if err != nil {
		r.logger.Printf("cart repo: delete id=%s user_id=%s error=%v", itemID, userID, err)
		return err
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func scanItem(row pgx.Row) (*domain.CartItem, error) {
	var item domain.CartItem
	var featJSON []byte
	err := row.Scan(
		&item.ID,
		&item.UserID,
		&item.ProductID,
		&item.Title,
		&item.Brand,
		&item.Price,
		&featJSON,
		&item.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	if len(featJSON) > 0 {
		if err := json.Unmarshal(featJSON, &item.Features); err != nil {
			return nil, err
		}
	}
	return &item, nil
}
