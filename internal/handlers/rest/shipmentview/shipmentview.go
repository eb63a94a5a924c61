// Package shipmentview собирает JSON-представление отправления.
// Общий для всех эндпоинтов, отдающих отправление целиком.
package shipmentview

import (
	"shipment-service/internal/entities"
	"shipment-service/internal/generated/dto"
	"shipment-service/internal/pkg/badges"
)

func FromEntity(shipmentEntity *entities.Shipment) dto.Shipment {
	serviceBadge := badges.ForService(shipmentEntity.Service)
	statusBadge := badges.ForStatus(shipmentEntity.Status)

	shipmentDTO := dto.Shipment{
		ID:              shipmentEntity.ID,
		TrackingID:      shipmentEntity.TrackingID,
		Service:         shipmentEntity.Service.String(),
		ServiceLabel:    serviceBadge.Label,
		ServiceColor:    serviceBadge.Color,
		Status:          shipmentEntity.Status.String(),
		StatusLabel:     statusBadge.Label,
		StatusColor:     statusBadge.Color,
		SenderName:      shipmentEntity.SenderName,
		SenderContact:   shipmentEntity.SenderContact,
		SenderAddress:   shipmentEntity.SenderAddress,
		ReceiverName:    shipmentEntity.ReceiverName,
		ReceiverContact: shipmentEntity.ReceiverContact,
		ReceiverAddress: shipmentEntity.ReceiverAddress,
		Quantity:        shipmentEntity.Quantity,
		WeightKg:        shipmentEntity.WeightKg,
		PriceUSD:        shipmentEntity.PriceUSD,
		PriceDisplay:    badges.FormatPrice(shipmentEntity.PriceUSD),
		CurrentLocation: shipmentEntity.CurrentLocation,
		DateSent:        shipmentEntity.DateSent,
		ExpectedArrival: shipmentEntity.ExpectedArrival,
		PackageImage:    shipmentEntity.PackageImage,
		IDDocument:      shipmentEntity.IDDocument,
		CreatedAt:       shipmentEntity.CreatedAt,
		UpdatedAt:       shipmentEntity.UpdatedAt,
	}

	if shipmentEntity.Remarks != "" {
		remarks := shipmentEntity.Remarks
		shipmentDTO.Remarks = &remarks
	}
	if shipmentEntity.MapLocation != "" {
		mapLocation := shipmentEntity.MapLocation
		shipmentDTO.MapLocation = &mapLocation
	}

	return shipmentDTO
}

func FromEntityList(shipments []entities.Shipment) []dto.Shipment {
	result := make([]dto.Shipment, 0, len(shipments))
	for i := range shipments {
		result = append(result, FromEntity(&shipments[i]))
	}

	return result
}
