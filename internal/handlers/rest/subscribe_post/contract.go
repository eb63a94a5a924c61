//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=subscribe_post_test
package subscribe_post

import (
	"context"

	"shipment-service/internal/entities"
	"shipment-service/pkg/logger"
)

type handlerLogger interface {
	Debug(msg string, fields ...logger.Field)
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	Subscribe(ctx context.Context, rawEmail, ipAddress string) (entities.SubscribeOutcome, error)
}
