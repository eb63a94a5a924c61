package shipment

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"shipment-service/internal/entities"
	"shipment-service/internal/repository"
	"shipment-service/internal/service/shipment"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const shipmentColumns = `id, tracking_id, service, status,
		sender_name, sender_contact, sender_address,
		receiver_name, receiver_contact, receiver_address,
		quantity, weight_kg, price_usd, remarks,
		current_location, date_sent, expected_arrival, map_location,
		package_image, id_document, created_at, updated_at`

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Create(ctx context.Context, shipmentModifyEntity entities.ShipmentModify) (*entities.Shipment, error) {
	modifyDB := FromDomainModify(&shipmentModifyEntity)

	query := `INSERT INTO shipments (
			tracking_id, service, status,
			sender_name, sender_contact, sender_address,
			receiver_name, receiver_contact, receiver_address,
			quantity, weight_kg, price_usd, remarks,
			current_location, date_sent, expected_arrival, map_location,
			package_image, id_document)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19)
		RETURNING ` + shipmentColumns

	var shipmentDB ShipmentDB
	err := r.querier.QueryRow(
		ctx,
		query,
		modifyDB.TrackingID,
		modifyDB.Service,
		modifyDB.Status,
		modifyDB.SenderName,
		modifyDB.SenderContact,
		modifyDB.SenderAddress,
		modifyDB.ReceiverName,
		modifyDB.ReceiverContact,
		modifyDB.ReceiverAddress,
		modifyDB.Quantity,
		modifyDB.WeightKg,
		modifyDB.PriceUSD,
		modifyDB.Remarks,
		modifyDB.CurrentLocation,
		modifyDB.DateSent,
		modifyDB.ExpectedArrival,
		modifyDB.MapLocation,
		modifyDB.PackageImage,
		modifyDB.IDDocument,
	).Scan(shipmentDB.scanFields()...)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return nil, shipment.ErrTrackingIDConflict
		}
		return nil, fmt.Errorf("unexpected shipment repository create error: %w", err)
	}

	return ToDomain(&shipmentDB), nil
}

func (r *Repository) Update(ctx context.Context, shipmentModifyEntity entities.ShipmentModify) (*entities.Shipment, error) {
	modifyDB := FromDomainModify(&shipmentModifyEntity)

	builder := qb.
		Update("shipments")

	// опциональные поля
	if modifyDB.TrackingID != nil {
		builder = builder.Set("tracking_id", modifyDB.TrackingID)
	}
	if modifyDB.Service != nil {
		builder = builder.Set("service", modifyDB.Service)
	}
	if modifyDB.Status != nil {
		builder = builder.Set("status", modifyDB.Status)
	}
	if modifyDB.SenderName != nil {
		builder = builder.Set("sender_name", modifyDB.SenderName)
	}
	if modifyDB.SenderContact != nil {
		builder = builder.Set("sender_contact", modifyDB.SenderContact)
	}
	if modifyDB.SenderAddress != nil {
		builder = builder.Set("sender_address", modifyDB.SenderAddress)
	}
	if modifyDB.ReceiverName != nil {
		builder = builder.Set("receiver_name", modifyDB.ReceiverName)
	}
	if modifyDB.ReceiverContact != nil {
		builder = builder.Set("receiver_contact", modifyDB.ReceiverContact)
	}
	if modifyDB.ReceiverAddress != nil {
		builder = builder.Set("receiver_address", modifyDB.ReceiverAddress)
	}
	if modifyDB.Quantity != nil {
		builder = builder.Set("quantity", modifyDB.Quantity)
	}
	if modifyDB.WeightKg != nil {
		builder = builder.Set("weight_kg", modifyDB.WeightKg)
	}
	if modifyDB.PriceUSD != nil {
		builder = builder.Set("price_usd", modifyDB.PriceUSD)
	}
	if modifyDB.Remarks != nil {
		builder = builder.Set("remarks", modifyDB.Remarks)
	}
	if modifyDB.CurrentLocation != nil {
		builder = builder.Set("current_location", modifyDB.CurrentLocation)
	}
	if modifyDB.DateSent != nil {
		builder = builder.Set("date_sent", modifyDB.DateSent)
	}
	if modifyDB.ExpectedArrival != nil {
		builder = builder.Set("expected_arrival", modifyDB.ExpectedArrival)
	}
	if modifyDB.MapLocation != nil {
		builder = builder.Set("map_location", modifyDB.MapLocation)
	}
	if modifyDB.PackageImage != nil {
		builder = builder.Set("package_image", modifyDB.PackageImage)
	}
	if modifyDB.IDDocument != nil {
		builder = builder.Set("id_document", modifyDB.IDDocument)
	}

	builder = builder.Set("updated_at", sq.Expr("NOW()"))

	builder = builder.
		Where(sq.Eq{"id": modifyDB.ID}).
		Suffix("RETURNING " + shipmentColumns)

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected shipment repository update error: %w", err)
	}

	var shipmentDB ShipmentDB
	err = r.querier.QueryRow(ctx, query, args...).Scan(shipmentDB.scanFields()...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, shipment.ErrShipmentNotFound
		}

		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return nil, shipment.ErrTrackingIDConflict
		}

		return nil, fmt.Errorf("unexpected shipment repository update error: %w", err)
	}

	return ToDomain(&shipmentDB), nil
}

func (r *Repository) GetByID(ctx context.Context, id int64) (*entities.Shipment, error) {
	query := `SELECT ` + shipmentColumns + `
		FROM shipments
		WHERE id = $1`

	var shipmentDB ShipmentDB
	err := r.querier.QueryRow(ctx, query, id).Scan(shipmentDB.scanFields()...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, shipment.ErrShipmentNotFound
		}

		return nil, fmt.Errorf("unexpected shipment repository getbyid error: %w", err)
	}

	return ToDomain(&shipmentDB), nil
}

func (r *Repository) GetByTrackingID(ctx context.Context, trackingID string) (*entities.Shipment, error) {
	query := `SELECT ` + shipmentColumns + `
		FROM shipments
		WHERE tracking_id = $1`

	var shipmentDB ShipmentDB
	err := r.querier.QueryRow(ctx, query, trackingID).Scan(shipmentDB.scanFields()...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, shipment.ErrShipmentNotFound
		}

		return nil, fmt.Errorf("unexpected shipment repository getbytrackingid error: %w", err)
	}

	return ToDomain(&shipmentDB), nil
}

func (r *Repository) GetAll(ctx context.Context) ([]entities.Shipment, error) {
	query := `SELECT ` + shipmentColumns + `
	FROM shipments
	ORDER BY created_at DESC`

	rows, err := r.querier.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("unexpected shipment repository getall error: %w", err)
	}
	defer rows.Close()

	shipmentModels := make([]ShipmentDB, 0, 8)
	for rows.Next() {
		var shipmentDB ShipmentDB
		err := rows.Scan(shipmentDB.scanFields()...)
		if err != nil {
			return nil, fmt.Errorf("unexpected shipment repository getall error: %w", err)
		}
		shipmentModels = append(shipmentModels, shipmentDB)
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("unexpected shipment repository getall error: %w", err)
	}

	return ToDomainList(shipmentModels), nil
}

// UpdateStatus выставляет статус всему набору идентификаторов одним запросом.
// Несуществующие идентификаторы молча пропускаются, возвращается число
// обновлённых строк.
func (r *Repository) UpdateStatus(ctx context.Context, ids []int64, status entities.ShipmentStatusType) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}

	builder := qb.
		Update("shipments").
		Set("status", status.String()).
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": ids})

	query, args, err := builder.ToSql()
	if err != nil {
		return 0, fmt.Errorf("unexpected shipment repository updatestatus error: %w", err)
	}

	result, err := r.querier.Exec(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("unexpected shipment repository updatestatus error: %w", err)
	}

	return result.RowsAffected(), nil
}

// ClearExpectedArrival обнуляет expected_arrival у набора идентификаторов.
// Повторный вызов по уже пустым строкам не является ошибкой.
func (r *Repository) ClearExpectedArrival(ctx context.Context, ids []int64) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}

	builder := qb.
		Update("shipments").
		Set("expected_arrival", nil).
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": ids})

	query, args, err := builder.ToSql()
	if err != nil {
		return 0, fmt.Errorf("unexpected shipment repository clearexpectedarrival error: %w", err)
	}

	result, err := r.querier.Exec(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("unexpected shipment repository clearexpectedarrival error: %w", err)
	}

	return result.RowsAffected(), nil
}
