package subscriber

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"shipment-service/internal/entities"
	"shipment-service/internal/repository"
	"shipment-service/internal/service/subscriber"
)

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Create(ctx context.Context, email, ipAddress string) (*entities.NewsletterSubscriber, error) {
	query := `INSERT INTO newsletter_subscribers (email, is_active, ip_address)
		VALUES ($1, TRUE, $2)
		RETURNING id, email, is_active, ip_address, created_at, updated_at`

	var subscriberDB SubscriberDB
	err := r.querier.QueryRow(ctx, query, email, ipAddress).Scan(
		&subscriberDB.ID,
		&subscriberDB.Email,
		&subscriberDB.IsActive,
		&subscriberDB.IPAddress,
		&subscriberDB.CreatedAt,
		&subscriberDB.UpdatedAt,
	)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return nil, subscriber.ErrEmailConflict
		}
		return nil, fmt.Errorf("unexpected subscriber repository create error: %w", err)
	}

	return ToDomain(&subscriberDB), nil
}

func (r *Repository) GetByEmail(ctx context.Context, email string) (*entities.NewsletterSubscriber, error) {
	query := `SELECT id, email, is_active, ip_address, created_at, updated_at
		FROM newsletter_subscribers
		WHERE email = $1`

	var subscriberDB SubscriberDB
	err := r.querier.QueryRow(ctx, query, email).Scan(
		&subscriberDB.ID,
		&subscriberDB.Email,
		&subscriberDB.IsActive,
		&subscriberDB.IPAddress,
		&subscriberDB.CreatedAt,
		&subscriberDB.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, subscriber.ErrSubscriberNotFound
		}
		return nil, fmt.Errorf("unexpected subscriber repository getbyemail error: %w", err)
	}

	return ToDomain(&subscriberDB), nil
}

func (r *Repository) SetActive(ctx context.Context, id int64, isActive bool) error {
	query := `UPDATE newsletter_subscribers
		SET is_active = $2,
			updated_at = NOW()
		WHERE id = $1`

	result, err := r.querier.Exec(ctx, query, id, isActive)
	if err != nil {
		return fmt.Errorf("unexpected subscriber repository setactive error: %w", err)
	}

	if result.RowsAffected() == 0 {
		return subscriber.ErrSubscriberNotFound
	}

	return nil
}
