//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=subscriber_test
package subscriber

import (
	"context"

	"shipment-service/internal/entities"
)

type Repository interface {
	Create(ctx context.Context, email, ipAddress string) (*entities.NewsletterSubscriber, error)
	GetByEmail(ctx context.Context, email string) (*entities.NewsletterSubscriber, error)
	SetActive(ctx context.Context, id int64, isActive bool) error
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
