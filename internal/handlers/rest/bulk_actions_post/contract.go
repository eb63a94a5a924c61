//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=bulk_actions_post_test
package bulk_actions_post

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
	UpdateStatus(ctx context.Context, ids []int64, status entities.ShipmentStatusType) (int64, error)
	ClearExpectedArrival(ctx context.Context, ids []int64) (int64, error)
	DuplicateShipment(ctx context.Context, id int64) (*entities.Shipment, error)
}
