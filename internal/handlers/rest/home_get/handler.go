package home_get

import (
	"encoding/json"
	"net/http"

	"shipment-service/internal/entities"
	"shipment-service/internal/generated/dto"
	"shipment-service/pkg/logger"
)

type Handler struct {
	log        handlerLogger
	siteTitle  string
	siteHeader string
}

func New(log handlerLogger, siteTitle, siteHeader string) *Handler {
	handlerLog := log.With()

	return &Handler{
		log:        handlerLog,
		siteTitle:  siteTitle,
		siteHeader: siteHeader,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	services := entities.ShipmentServices()
	labels := make([]string, 0, len(services))
	for _, service := range services {
		labels = append(labels, service.DisplayLabel())
	}

	response := dto.HomeResponse{
		SiteTitle:  h.siteTitle,
		SiteHeader: h.siteHeader,
		Services:   labels,
	}

	w.Header().Set("Content-Type", "application/json")
	err := json.NewEncoder(w).Encode(response)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
