//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=track_get_test
package track_get

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
	Search(ctx context.Context, rawTrackingID string) (*entities.TrackingResult, error)
}
