package postgres

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/mariposa/wedding-rsvp/internal/domain"
)

type RsvpRepo interface {
	CreateWithGuests(ctx context.Context, in *domain.SubmitRsvpRequest, guests []domain.GuestInput) (*domain.Rsvp, error)
	ListWithGuests(ctx context.Context) ([]domain.Rsvp, error)
	Stats(ctx context.Context) (*domain.Stats, error)
}

type RsvpRepoImpl struct{ pool *pgxpool.Pool }

func NewRsvpRepo(pool *pgxpool.Pool) *RsvpRepoImpl { return &RsvpRepoImpl{pool: pool} }

const rsvpCols = `id, first_name, last_name, email, phone, response, created_at`

// CreateWithGuests persists the RSVP and its guest list in one transaction.
// Guests are inserted in input order; any failure rolls everything back.
func (r *RsvpRepoImpl) CreateWithGuests(ctx context.Context, in *domain.SubmitRsvpRequest, guests []domain.GuestInput) (*domain.Rsvp, error) {
	const insertRsvp = `INSERT INTO rsvps (first_name, last_name, email, phone, response)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING ` + rsvpCols
	const insertGuest = `INSERT INTO additional_guests (rsvp_id, first_name, last_name)
		VALUES ($1, $2, $3)
		RETURNING id, rsvp_id, first_name, last_name`

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	var rsvp domain.Rsvp
	err = tx.QueryRow(ctx, insertRsvp,
		in.FirstName, in.LastName, in.Email, in.Phone, in.Response,
	).Scan(
		&rsvp.ID, &rsvp.FirstName, &rsvp.LastName, &rsvp.Email, &rsvp.Phone,
		&rsvp.Response, &rsvp.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	rsvp.AdditionalGuests = make([]domain.AdditionalGuest, 0, len(guests))
	for _, g := range guests {
		var guest domain.AdditionalGuest
		err = tx.QueryRow(ctx, insertGuest,
			rsvp.ID, g.FirstName, g.LastName,
		).Scan(&guest.ID, &guest.RsvpID, &guest.FirstName, &guest.LastName)
		if err != nil {
			return nil, err
		}
		rsvp.AdditionalGuests = append(rsvp.AdditionalGuests, guest)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	return &rsvp, nil
}

// ListWithGuests returns every RSVP, most recent first, with its guest list
// attached. A single left join keeps it to one round trip.
func (r *RsvpRepoImpl) ListWithGuests(ctx context.Context) ([]domain.Rsvp, error) {
	const q = `
		SELECT r.id, r.first_name, r.last_name, r.email, r.phone, r.response, r.created_at,
		       ag.id, ag.first_name, ag.last_name
		FROM rsvps r
		LEFT JOIN additional_guests ag ON ag.rsvp_id = r.id
		ORDER BY r.created_at DESC, r.id DESC, ag.id`

	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	rows, err := r.pool.Query(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	rsvps := make([]domain.Rsvp, 0)
	for rows.Next() {
		var (
			rsvp          domain.Rsvp
			guestID       *int64
			gFirst, gLast *string
		)
		if err := rows.Scan(
			&rsvp.ID, &rsvp.FirstName, &rsvp.LastName, &rsvp.Email, &rsvp.Phone,
			&rsvp.Response, &rsvp.CreatedAt,
			&guestID, &gFirst, &gLast,
		); err != nil {
			return nil, err
		}

		// Join rows for the same RSVP arrive contiguously.
		if len(rsvps) == 0 || rsvps[len(rsvps)-1].ID != rsvp.ID {
			rsvp.AdditionalGuests = make([]domain.AdditionalGuest, 0)
			rsvps = append(rsvps, rsvp)
		}
		if guestID != nil {
			last := &rsvps[len(rsvps)-1]
			last.AdditionalGuests = append(last.AdditionalGuests, domain.AdditionalGuest{
				ID:        *guestID,
				RsvpID:    last.ID,
				FirstName: *gFirst,
				LastName:  *gLast,
			})
		}
	}
	return rsvps, rows.Err()
}

func (r *RsvpRepoImpl) Stats(ctx context.Context) (*domain.Stats, error) {
	const q = `
		SELECT
			COUNT(*) AS total,
			COUNT(*) FILTER (WHERE response = 'yes') AS attending,
			COUNT(*) FILTER (WHERE response = 'no') AS not_attending,
			(SELECT COUNT(*) FROM additional_guests) AS total_guests
		FROM rsvps`

	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	var s domain.Stats
	err := r.pool.QueryRow(ctx, q).Scan(&s.Total, &s.Attending, &s.NotAttending, &s.TotalGuests)
	if err != nil {
		return nil, err
	}
	return &s, nil
}
