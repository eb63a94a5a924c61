package expected_arrival_clear_post

import (
	"encoding/json"
	"net/http"

	"shipment-service/internal/generated/dto"
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
	var clearDTO dto.ClearExpectedArrivalRequest
	err := json.NewDecoder(r.Body).Decode(&clearDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	affected, err := h.service.ClearExpectedArrival(r.Context(), clearDTO.IDs)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
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
