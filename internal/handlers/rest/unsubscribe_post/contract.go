//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=unsubscribe_post_test
package unsubscribe_post

import (
	"context"

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
	Unsubscribe(ctx context.Context, rawEmail string) error
}
