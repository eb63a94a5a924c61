package shipment

import (
	"shipment-service/internal/entities"
)

func ToDomain(m *ShipmentDB) *entities.Shipment {
	if m == nil {
		return nil
	}

	shipmentEntity := &entities.Shipment{
		ID:              m.ID,
		TrackingID:      m.TrackingID,
		Service:         entities.ShipmentServiceType(m.Service),
		Status:          entities.ShipmentStatusType(m.Status),
		SenderName:      m.SenderName,
		SenderContact:   m.SenderContact,
		SenderAddress:   m.SenderAddress,
		ReceiverName:    m.ReceiverName,
		ReceiverContact: m.ReceiverContact,
		ReceiverAddress: m.ReceiverAddress,
		Quantity:        m.Quantity,
		WeightKg:        m.WeightKg,
		PriceUSD:        m.PriceUSD,
		CurrentLocation: m.CurrentLocation,
		DateSent:        m.DateSent,
		ExpectedArrival: m.ExpectedArrival,
		PackageImage:    m.PackageImage,
		IDDocument:      m.IDDocument,
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}
	if m.Remarks != nil {
		shipmentEntity.Remarks = *m.Remarks
	}
	if m.MapLocation != nil {
		shipmentEntity.MapLocation = *m.MapLocation
	}
	return shipmentEntity
}

func FromDomainModify(shipmentModify *entities.ShipmentModify) *ShipmentModifyDB {
	if shipmentModify == nil {
		return nil
	}
	modifyDB := &ShipmentModifyDB{
		ID:              shipmentModify.ID,
		TrackingID:      shipmentModify.TrackingID,
		SenderName:      shipmentModify.SenderName,
		SenderContact:   shipmentModify.SenderContact,
		SenderAddress:   shipmentModify.SenderAddress,
		ReceiverName:    shipmentModify.ReceiverName,
		ReceiverContact: shipmentModify.ReceiverContact,
		ReceiverAddress: shipmentModify.ReceiverAddress,
		Quantity:        shipmentModify.Quantity,
		WeightKg:        shipmentModify.WeightKg,
		PriceUSD:        shipmentModify.PriceUSD,
		Remarks:         shipmentModify.Remarks,
		CurrentLocation: shipmentModify.CurrentLocation,
		DateSent:        shipmentModify.DateSent,
		ExpectedArrival: shipmentModify.ExpectedArrival,
		MapLocation:     shipmentModify.MapLocation,
		PackageImage:    shipmentModify.PackageImage,
		IDDocument:      shipmentModify.IDDocument,
	}

	if shipmentModify.Service != nil {
		serviceType := shipmentModify.Service.String()
		modifyDB.Service = &serviceType
	}
	if shipmentModify.Status != nil {
		statusType := shipmentModify.Status.String()
		modifyDB.Status = &statusType
	}

	return modifyDB
}

func ToDomainList(modelsDB []ShipmentDB) []entities.Shipment {
	if len(modelsDB) == 0 {
		return []entities.Shipment{}
	}

	result := make([]entities.Shipment, len(modelsDB))
	for i, modelDB := range modelsDB {
		result[i] = *ToDomain(&modelDB)
	}
	return result
}
