package shipment

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/AlekSi/pointer"
	"shipment-service/internal/entities"
)

// Options управляет поведением сервиса. Политика строгих переходов статуса
// по умолчанию выключена: исходная система позволяет выставить любой статус.
type Options struct {
	EnforceStatusFlow bool
}

type Shipment struct {
	repository Repository
	txManager  TxManager
	opts       Options
}

func New(repository Repository, txManager TxManager, opts Options) *Shipment {
	return &Shipment{
		repository: repository,
		txManager:  txManager,
		opts:       opts,
	}
}

func (s *Shipment) CreateShipment(ctx context.Context, shipmentModify entities.ShipmentModify) (*entities.Shipment, error) {
	if shipmentModify.SenderName == nil ||
		shipmentModify.ReceiverName == nil ||
		shipmentModify.Service == nil {
		return nil, ErrMissingRequiredFields
	}

	if !isValidName(*shipmentModify.SenderName) || !isValidName(*shipmentModify.ReceiverName) {
		return nil, ErrMissingRequiredFields
	}
	if err := validateModifyFields(&shipmentModify); err != nil {
		return nil, err
	}

	applyCreateDefaults(&shipmentModify)

	// Оператор задал идентификатор сам: одна попытка, конфликт наружу.
	if shipmentModify.TrackingID != nil {
		created, err := s.repository.Create(ctx, shipmentModify)
		if err != nil {
			return nil, fmt.Errorf("create shipment: %w", err)
		}
		return created, nil
	}

	created, err := s.createWithGeneratedTrackingID(ctx, shipmentModify)
	if err != nil {
		return nil, fmt.Errorf("create shipment: %w", err)
	}
	return created, nil
}

// createWithGeneratedTrackingID перегенерирует идентификатор при конфликте
// уникальности вместо надежды на одноразовую случайность.
func (s *Shipment) createWithGeneratedTrackingID(ctx context.Context, shipmentModify entities.ShipmentModify) (*entities.Shipment, error) {
	var lastErr error
	for attempt := 0; attempt < maxGenerateAttempts; attempt++ {
		shipmentModify.TrackingID = pointer.To(NewTrackingID())

		created, err := s.repository.Create(ctx, shipmentModify)
		if err == nil {
			return created, nil
		}
		lastErr = err

		if !errors.Is(err, ErrTrackingIDConflict) {
			return nil, err
		}
	}

	return nil, fmt.Errorf("tracking id generation exhausted after %d attempts: %w", maxGenerateAttempts, lastErr)
}

func (s *Shipment) UpdateShipment(ctx context.Context, shipmentModify entities.ShipmentModify) (*entities.Shipment, error) {
	if shipmentModify.ID == nil {
		return nil, ErrInvalidShipmentID
	}
	if !hasUpdatableFields(&shipmentModify) {
		return nil, fmt.Errorf("no fields to update: %w", ErrMissingRequiredFields)
	}

	if shipmentModify.SenderName != nil && !isValidName(*shipmentModify.SenderName) {
		return nil, ErrMissingRequiredFields
	}
	if shipmentModify.ReceiverName != nil && !isValidName(*shipmentModify.ReceiverName) {
		return nil, ErrMissingRequiredFields
	}
	if err := validateModifyFields(&shipmentModify); err != nil {
		return nil, err
	}

	if s.opts.EnforceStatusFlow && shipmentModify.Status != nil {
		var updated *entities.Shipment
		err := s.txManager.Do(ctx, func(ctx context.Context) error {
			current, err := s.repository.GetByID(ctx, *shipmentModify.ID)
			if err != nil {
				return err
			}
			if !isAllowedTransition(current.Status, *shipmentModify.Status) {
				return ErrStatusFlowViolation
			}

			updated, err = s.repository.Update(ctx, shipmentModify)
			return err
		})
		if err != nil {
			return nil, fmt.Errorf("failed to update shipment: %w", err)
		}
		return updated, nil
	}

	updated, err := s.repository.Update(ctx, shipmentModify)
	if err != nil {
		return nil, fmt.Errorf("failed to update shipment: %w", err)
	}
	return updated, nil
}

func (s *Shipment) GetShipmentByTrackingID(ctx context.Context, trackingID string) (*entities.Shipment, error) {
	shipmentEntity, err := s.repository.GetByTrackingID(ctx, trackingID)
	if err != nil {
		return nil, fmt.Errorf("failed to get shipment: %w", err)
	}

	return shipmentEntity, nil
}

func (s *Shipment) GetShipments(ctx context.Context) ([]entities.Shipment, error) {
	shipments, err := s.repository.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get shipments: %w", err)
	}

	return shipments, nil
}

// UpdateStatus массово выставляет статус выбранным отправлениям и возвращает
// число затронутых строк. Построчных бизнес-правил нет: несуществующие
// идентификаторы пропускаются.
func (s *Shipment) UpdateStatus(ctx context.Context, ids []int64, status entities.ShipmentStatusType) (int64, error) {
	if !isValidStatus(status.String()) {
		return 0, ErrInvalidStatus
	}
	if len(ids) == 0 {
		return 0, nil
	}

	updated, err := s.repository.UpdateStatus(ctx, ids, status)
	if err != nil {
		return 0, fmt.Errorf("failed to update status: %w", err)
	}

	return updated, nil
}

func (s *Shipment) ClearExpectedArrival(ctx context.Context, ids []int64) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}

	updated, err := s.repository.ClearExpectedArrival(ctx, ids)
	if err != nil {
		return 0, fmt.Errorf("failed to clear expected arrival: %w", err)
	}

	return updated, nil
}

// DuplicateShipment копирует все поля кроме идентичности и таймстемпов,
// назначает свежий tracking id и сбрасывает статус в processing.
// Без обрамляющей транзакции: после unique violation постгрес отвергает
// следующие запросы той же транзакции (25P02), каждая попытка вставки
// должна идти отдельным стейтментом.
func (s *Shipment) DuplicateShipment(ctx context.Context, id int64) (*entities.Shipment, error) {
	source, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to duplicate shipment: %w", err)
	}

	duplicated, err := s.createWithGeneratedTrackingID(ctx, copyForDuplicate(source))
	if err != nil {
		return nil, fmt.Errorf("failed to duplicate shipment: %w", err)
	}

	return duplicated, nil
}

func copyForDuplicate(source *entities.Shipment) entities.ShipmentModify {
	modify := entities.ShipmentModify{
		Service:         pointer.To(source.Service),
		Status:          pointer.To(entities.DefaultShipmentStatus),
		SenderName:      pointer.To(source.SenderName),
		SenderContact:   pointer.To(source.SenderContact),
		SenderAddress:   pointer.To(source.SenderAddress),
		ReceiverName:    pointer.To(source.ReceiverName),
		ReceiverContact: pointer.To(source.ReceiverContact),
		ReceiverAddress: pointer.To(source.ReceiverAddress),
		Quantity:        pointer.To(source.Quantity),
		WeightKg:        pointer.To(source.WeightKg),
		PriceUSD:        pointer.To(source.PriceUSD),
		CurrentLocation: pointer.To(source.CurrentLocation),
		DateSent:        pointer.To(source.DateSent),
		ExpectedArrival: source.ExpectedArrival,
		PackageImage:    pointer.To(source.PackageImage),
		IDDocument:      pointer.To(source.IDDocument),
	}
	if source.Remarks != "" {
		modify.Remarks = pointer.To(source.Remarks)
	}
	if source.MapLocation != "" {
		modify.MapLocation = pointer.To(source.MapLocation)
	}
	return modify
}

func validateModifyFields(shipmentModify *entities.ShipmentModify) error {
	if shipmentModify.TrackingID != nil && !isValidTrackingID(*shipmentModify.TrackingID) {
		return ErrInvalidTrackingID
	}
	if shipmentModify.Service != nil && !isValidService(shipmentModify.Service.String()) {
		return ErrInvalidService
	}
	if shipmentModify.Status != nil && !isValidStatus(shipmentModify.Status.String()) {
		return ErrInvalidStatus
	}
	if shipmentModify.Quantity != nil && !isValidQuantity(*shipmentModify.Quantity) {
		return ErrInvalidQuantity
	}
	if shipmentModify.WeightKg != nil && !isValidWeight(*shipmentModify.WeightKg) {
		return ErrInvalidWeight
	}
	if shipmentModify.PriceUSD != nil && !isValidPrice(*shipmentModify.PriceUSD) {
		return ErrInvalidPrice
	}
	if shipmentModify.MapLocation != nil {
		normalized, ok := normalizeMapEmbed(*shipmentModify.MapLocation)
		if !ok {
			return ErrInvalidMapEmbed
		}
		shipmentModify.MapLocation = pointer.To(normalized)
	}
	return nil
}

func hasUpdatableFields(m *entities.ShipmentModify) bool {
	return m.TrackingID != nil ||
		m.Service != nil ||
		m.Status != nil ||
		m.SenderName != nil ||
		m.SenderContact != nil ||
		m.SenderAddress != nil ||
		m.ReceiverName != nil ||
		m.ReceiverContact != nil ||
		m.ReceiverAddress != nil ||
		m.Quantity != nil ||
		m.WeightKg != nil ||
		m.PriceUSD != nil ||
		m.Remarks != nil ||
		m.CurrentLocation != nil ||
		m.DateSent != nil ||
		m.ExpectedArrival != nil ||
		m.MapLocation != nil ||
		m.PackageImage != nil ||
		m.IDDocument != nil
}

func applyCreateDefaults(m *entities.ShipmentModify) {
	if m.Status == nil {
		m.Status = pointer.To(entities.DefaultShipmentStatus)
	}
	if m.Quantity == nil {
		m.Quantity = pointer.To(int32(1))
	}
	if m.WeightKg == nil {
		m.WeightKg = pointer.To(0.0)
	}
	if m.PriceUSD == nil {
		m.PriceUSD = pointer.To(0.0)
	}
	if m.SenderContact == nil {
		m.SenderContact = pointer.To("")
	}
	if m.SenderAddress == nil {
		m.SenderAddress = pointer.To("")
	}
	if m.ReceiverContact == nil {
		m.ReceiverContact = pointer.To("")
	}
	if m.ReceiverAddress == nil {
		m.ReceiverAddress = pointer.To("")
	}
	if m.CurrentLocation == nil {
		m.CurrentLocation = pointer.To("")
	}
	if m.DateSent == nil {
		m.DateSent = pointer.To(time.Now().UTC())
	}
	if m.PackageImage == nil || *m.PackageImage == "" {
		m.PackageImage = pointer.To(entities.PlaceholderImageURL)
	}
	if m.IDDocument == nil || *m.IDDocument == "" {
		m.IDDocument = pointer.To(entities.PlaceholderImageURL)
	}
}
