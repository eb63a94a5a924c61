package shipment_post

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
	var shipmentCreateDTO dto.ShipmentCreate
	err := json.NewDecoder(r.Body).Decode(&shipmentCreateDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	serviceType := entities.ShipmentServiceType(shipmentCreateDTO.Service)
	shipmentModifyEntity := entities.ShipmentModify{
		TrackingID:      shipmentCreateDTO.TrackingID,
		Service:         &serviceType,
		SenderName:      &shipmentCreateDTO.SenderName,
		SenderContact:   shipmentCreateDTO.SenderContact,
		SenderAddress:   shipmentCreateDTO.SenderAddress,
		ReceiverName:    &shipmentCreateDTO.ReceiverName,
		ReceiverContact: shipmentCreateDTO.ReceiverContact,
		ReceiverAddress: shipmentCreateDTO.ReceiverAddress,
		Quantity:        shipmentCreateDTO.Quantity,
		WeightKg:        shipmentCreateDTO.WeightKg,
		PriceUSD:        shipmentCreateDTO.PriceUSD,
		Remarks:         shipmentCreateDTO.Remarks,
		CurrentLocation: shipmentCreateDTO.CurrentLocation,
		DateSent:        shipmentCreateDTO.DateSent,
		ExpectedArrival: shipmentCreateDTO.ExpectedArrival,
		MapLocation:     shipmentCreateDTO.MapLocation,
		PackageImage:    shipmentCreateDTO.PackageImage,
		IDDocument:      shipmentCreateDTO.IDDocument,
	}
	if shipmentCreateDTO.Status != nil {
		statusType := entities.ShipmentStatusType(*shipmentCreateDTO.Status)
		shipmentModifyEntity.Status = &statusType
	}

	createdEntity, err := h.service.CreateShipment(r.Context(), shipmentModifyEntity)
	if err != nil {
		switch {
		case errors.Is(err, shipment.ErrMissingRequiredFields),
			errors.Is(err, shipment.ErrInvalidTrackingID),
			errors.Is(err, shipment.ErrInvalidService),
			errors.Is(err, shipment.ErrInvalidStatus),
			errors.Is(err, shipment.ErrInvalidQuantity),
			errors.Is(err, shipment.ErrInvalidWeight),
			errors.Is(err, shipment.ErrInvalidPrice),
			errors.Is(err, shipment.ErrInvalidMapEmbed):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, shipment.ErrTrackingIDConflict):
			w.WriteHeader(http.StatusConflict)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	err = json.NewEncoder(w).Encode(shipmentview.FromEntity(createdEntity))
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
