package bulk_actions_post

import (
	"context"
	"errors"
	"fmt"

	"shipment-service/internal/entities"
	"shipment-service/internal/service/shipment"
)

var ErrUnknownAction = errors.New("unknown bulk action")

type actionFunc func(ctx context.Context, service Service, ids []int64) (int64, error)

func statusAction(status entities.ShipmentStatusType) actionFunc {
	return func(ctx context.Context, service Service, ids []int64) (int64, error) {
		return service.UpdateStatus(ctx, ids, status)
	}
}

// Реестр именованных массовых операций. Ключи — стабильная часть API,
// смена имени ломает админку.
var actions = map[string]actionFunc{
	"mark_as_processing":       statusAction(entities.StatusProcessing),
	"mark_as_in_transit":       statusAction(entities.StatusInTransit),
	"mark_as_arrived_at_hub":   statusAction(entities.StatusArrivedAtHub),
	"mark_as_out_for_delivery": statusAction(entities.StatusOutForDelivery),
	"mark_as_delivered":        statusAction(entities.StatusDelivered),
	"mark_as_delayed":          statusAction(entities.StatusDelayed),
	"mark_as_on_hold":          statusAction(entities.StatusOnHold),
	"mark_as_returned":         statusAction(entities.StatusReturned),
	"clear_expected_arrival": func(ctx context.Context, service Service, ids []int64) (int64, error) {
		return service.ClearExpectedArrival(ctx, ids)
	},
	"duplicate_shipments": func(ctx context.Context, service Service, ids []int64) (int64, error) {
		var duplicated int64
		for _, id := range ids {
			if _, err := service.DuplicateShipment(ctx, id); err != nil {
				if errors.Is(err, shipment.ErrShipmentNotFound) {
					continue
				}
				return duplicated, fmt.Errorf("duplicate shipment %d: %w", id, err)
			}
			duplicated++
		}
		return duplicated, nil
	},
}

func runAction(ctx context.Context, service Service, name string, ids []int64) (int64, error) {
	action, ok := actions[name]
	if !ok {
		return 0, ErrUnknownAction
	}

	return action(ctx, service, ids)
}
