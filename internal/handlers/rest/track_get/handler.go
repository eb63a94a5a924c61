package track_get

import (
	"encoding/json"
	"errors"
	"net/http"

	"shipment-service/internal/generated/dto"
	"shipment-service/internal/handlers/rest/shipmentview"
	"shipment-service/internal/service/tracking"
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
	trackingID := r.URL.Query().Get("tracking_id")

	result, err := h.service.Search(r.Context(), trackingID)
	if err != nil {
		switch {
		case errors.Is(err, tracking.ErrNotFound):
			w.WriteHeader(http.StatusNotFound)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := dto.TrackingResponse{
		Shipment:    shipmentview.FromEntity(result.Shipment),
		TrackingURL: result.TrackingURL,
		RefreshedAt: result.RefreshedAt,
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
