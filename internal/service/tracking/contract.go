//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=tracking_test
package tracking

import (
	"context"

	"shipment-service/internal/entities"
)

type ShipmentProvider interface {
	GetShipmentByTrackingID(ctx context.Context, trackingID string) (*entities.Shipment, error)
}
