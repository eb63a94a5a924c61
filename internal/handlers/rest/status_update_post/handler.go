package status_update_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"shipment-service/internal/entities"
	"shipment-service/internal/generated/dto"
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
	var statusUpdateDTO dto.StatusUpdateRequest
	err := json.NewDecoder(r.Body).Decode(&statusUpdateDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	affected, err := h.service.UpdateStatus(
		r.Context(),
		statusUpdateDTO.IDs,
		entities.ShipmentStatusType(statusUpdateDTO.Status),
	)
	if err != nil {
		switch {
		case errors.Is(err, shipment.ErrInvalidStatus):
			w.WriteHeader(http.StatusBadRequest)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := dto.AffectedResponse{
		Affected: affected,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(response)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
