//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=shipment_test
package shipment

import (
	"context"

	"shipment-service/internal/entities"
)

type Repository interface {
	Create(ctx context.Context, shipmentModifyEntity entities.ShipmentModify) (*entities.Shipment, error)
	Update(ctx context.Context, shipmentModifyEntity entities.ShipmentModify) (*entities.Shipment, error)
	GetByID(ctx context.Context, id int64) (*entities.Shipment, error)
	GetByTrackingID(ctx context.Context, trackingID string) (*entities.Shipment, error)
	GetAll(ctx context.Context) ([]entities.Shipment, error)
	UpdateStatus(ctx context.Context, ids []int64, status entities.ShipmentStatusType) (int64, error)
	ClearExpectedArrival(ctx context.Context, ids []int64) (int64, error)
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
