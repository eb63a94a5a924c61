package shipment_put

import (
	"encoding/json"
	"errors"
	"net/http"

	"shipment-service/internal/entities"
	"shipment-service/internal/generated/dto"
	"shipment-service/internal/handlers/rest/shipmentview"
	"shipment-service/internal/service/shipment"
	"shipment-service/pkg/logger"
)

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	handlerLog := log.With()

	return &Handler{
		log:     handlerLog,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var shipmentUpdateDTO dto.ShipmentUpdate
	err := json.NewDecoder(r.Body).Decode(&shipmentUpdateDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	shipmentModifyEntity := entities.ShipmentModify{
		ID:              &shipmentUpdateDTO.ID,
		TrackingID:      shipmentUpdateDTO.TrackingID,
		SenderName:      shipmentUpdateDTO.SenderName,
		SenderContact:   shipmentUpdateDTO.SenderContact,
		SenderAddress:   shipmentUpdateDTO.SenderAddress,
		ReceiverName:    shipmentUpdateDTO.ReceiverName,
		ReceiverContact: shipmentUpdateDTO.ReceiverContact,
		ReceiverAddress: shipmentUpdateDTO.ReceiverAddress,
		Quantity:        shipmentUpdateDTO.Quantity,
		WeightKg:        shipmentUpdateDTO.WeightKg,
		PriceUSD:        shipmentUpdateDTO.PriceUSD,
		Remarks:         shipmentUpdateDTO.Remarks,
		CurrentLocation: shipmentUpdateDTO.CurrentLocation,
		DateSent:        shipmentUpdateDTO.DateSent,
		ExpectedArrival: shipmentUpdateDTO.ExpectedArrival,
		MapLocation:     shipmentUpdateDTO.MapLocation,
		PackageImage:    shipmentUpdateDTO.PackageImage,
		IDDocument:      shipmentUpdateDTO.IDDocument,
	}
	if shipmentUpdateDTO.Service != nil {
		serviceType := entities.ShipmentServiceType(*shipmentUpdateDTO.Service)
		shipmentModifyEntity.Service = &serviceType
	}
	if shipmentUpdateDTO.Status != nil {
		statusType := entities.ShipmentStatusType(*shipmentUpdateDTO.Status)
		shipmentModifyEntity.Status = &statusType
	}

	updatedEntity, err := h.service.UpdateShipment(r.Context(), shipmentModifyEntity)
	if err != nil {
		switch {
		case errors.Is(err, shipment.ErrMissingRequiredFields),
			errors.Is(err, shipment.ErrInvalidShipmentID),
			errors.Is(err, shipment.ErrInvalidTrackingID),
			errors.Is(err, shipment.ErrInvalidService),
			errors.Is(err, shipment.ErrInvalidStatus),
			errors.Is(err, shipment.ErrInvalidQuantity),
			errors.Is(err, shipment.ErrInvalidWeight),
			errors.Is(err, shipment.ErrInvalidPrice),
			errors.Is(err, shipment.ErrInvalidMapEmbed):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, shipment.ErrShipmentNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, shipment.ErrStatusFlowViolation),
			errors.Is(err, shipment.ErrTrackingIDConflict):
			w.WriteHeader(http.StatusConflict)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(shipmentview.FromEntity(updatedEntity))
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
