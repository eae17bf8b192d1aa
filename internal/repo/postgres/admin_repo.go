package postgres

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/mariposa/wedding-rsvp/internal/domain"
)

type AdminRepo interface {
	Get(ctx context.Context) (*domain.AdminCredential, error)
	Create(ctx context.Context, passwordHash string) (*domain.AdminCredential, error)
}

type AdminRepoImpl struct{ pool *pgxpool.Pool }

func NewAdminRepo(pool *pgxpool.Pool) *AdminRepoImpl { return &AdminRepoImpl{pool: pool} }

// Get returns the singleton credential row, or nil when none exists.
func (r *AdminRepoImpl) Get(ctx context.Context) (*domain.AdminCredential, error) {
	const q = `SELECT id, password_hash FROM admin_credentials ORDER BY id LIMIT 1`
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	var c domain.AdminCredential
	err := r.pool.QueryRow(ctx, q).Scan(&c.ID, &c.PasswordHash)
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *AdminRepoImpl) Create(ctx context.Context, passwordHash string) (*domain.AdminCredential, error) {
	const q = `INSERT INTO admin_credentials (password_hash) VALUES ($1) RETURNING id, password_hash`
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	var c domain.AdminCredential
	err := r.pool.QueryRow(ctx, q, passwordHash).Scan(&c.ID, &c.PasswordHash)
	if err != nil {
		return nil, err
	}
	return &c, nil
}
