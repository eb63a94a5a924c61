//go:build wireinject
// +build wireinject

package app

import (
	"context"

	bulk_actions_post "shipment-service/internal/handlers/rest/bulk_actions_post"
	expected_arrival_clear_post "shipment-service/internal/handlers/rest/expected_arrival_clear_post"
	shipment_duplicate_post "shipment-service/internal/handlers/rest/shipment_duplicate_post"
	shipment_get "shipment-service/internal/handlers/rest/shipment_get"
	shipment_post "shipment-service/internal/handlers/rest/shipment_post"
	shipment_put "shipment-service/internal/handlers/rest/shipment_put"
	shipments_get "shipment-service/internal/handlers/rest/shipments_get"
	status_update_post "shipment-service/internal/handlers/rest/status_update_post"
	subscribe_post "shipment-service/internal/handlers/rest/subscribe_post"
	unsubscribe_post "shipment-service/internal/handlers/rest/unsubscribe_post"
	track_get "shipment-service/internal/handlers/rest/track_get"
	"shipment-service/internal/pkg/config"

	shipmentRepo "shipment-service/internal/repository/shipment"
	subscriberRepo "shipment-service/internal/repository/subscriber"
	shipmentService "shipment-service/internal/service/shipment"
	subscriberService "shipment-service/internal/service/subscriber"
	trackingService "shipment-service/internal/service/tracking"

	"shipment-service/pkg/logger"
	"shipment-service/pkg/querier"
	"shipment-service/pkg/tx"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/google/wire"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Application struct {
	ServiceShipment   ServiceShipment
	ServiceSubscriber ServiceSubscriber
	ServiceTracking   ServiceTracking
}

type ServiceShipment interface {
	shipment_get.Service
	shipment_post.Service
	shipment_put.Service
	shipments_get.Service
	shipment_duplicate_post.Service
	status_update_post.Service
	expected_arrival_clear_post.Service
	bulk_actions_post.Service
}

type ServiceSubscriber interface {
	subscribe_post.Service
	unsubscribe_post.Service
}

type ServiceTracking interface {
	track_get.Service
}

// InitializeApplication для HTTP сервиса (cmd/service)
func InitializeApplication(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	cfg *config.Config,
) (*Application, error) {
	wire.Build(
		provideTxManager,
		provideQuerier,

		provideShipmentRepository,
		provideSubscriberRepository,

		provideShipmentOptions,
		provideServiceShipment,
		provideServiceSubscriber,
		provideServiceTracking,

		wire.Struct(new(Application), "*"),

		wire.Bind(new(ServiceShipment), new(*shipmentService.Shipment)),
		wire.Bind(new(ServiceSubscriber), new(*subscriberService.Subscriber)),
		wire.Bind(new(ServiceTracking), new(*trackingService.Tracking)),

		wire.Bind(new(shipmentService.Repository), new(*shipmentRepo.Repository)),
		wire.Bind(new(subscriberService.Repository), new(*subscriberRepo.Repository)),
		wire.Bind(new(trackingService.ShipmentProvider), new(*shipmentService.Shipment)),

		wire.Bind(new(shipmentService.TxManager), new(*tx.Manager)),
		wire.Bind(new(subscriberService.TxManager), new(*tx.Manager)),
	)
	return &Application{}, nil
}

func provideTxManager(pool *pgxpool.Pool) *tx.Manager {
	return tx.New(pool)
}

func provideQuerier(pool *pgxpool.Pool, getter *pgxv5.CtxGetter) *querier.Querier {
	return querier.New(pool, getter)
}

func provideShipmentRepository(querier *querier.Querier) *shipmentRepo.Repository {
	return shipmentRepo.New(querier)
}

func provideSubscriberRepository(querier *querier.Querier) *subscriberRepo.Repository {
	return subscriberRepo.New(querier)
}

func provideShipmentOptions(cfg *config.Config) shipmentService.Options {
	return shipmentService.Options{
		EnforceStatusFlow: cfg.Tracking.EnforceStatusFlow,
	}
}

func provideServiceShipment(
	repository shipmentService.Repository,
	txManager shipmentService.TxManager,
	opts shipmentService.Options,
) *shipmentService.Shipment {
	return shipmentService.New(repository, txManager, opts)
}

func provideServiceSubscriber(
	repository subscriberService.Repository,
	txManager subscriberService.TxManager,
) *subscriberService.Subscriber {
	return subscriberService.New(repository, txManager)
}

func provideServiceTracking(
	provider trackingService.ShipmentProvider,
	cfg *config.Config,
) *trackingService.Tracking {
	return trackingService.New(provider, cfg.Tracking.PublicBaseURL)
}
