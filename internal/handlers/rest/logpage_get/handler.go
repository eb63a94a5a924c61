package logpage_get

import (
	"encoding/json"
	"net/http"

	"shipment-service/internal/generated/dto"
	"shipment-service/pkg/logger"
)

type Handler struct {
	log       handlerLogger
	siteTitle string
}

func New(log handlerLogger, siteTitle string) *Handler {
	handlerLog := log.With()

	return &Handler{
		log:       handlerLog,
		siteTitle: siteTitle,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	response := dto.LogpageResponse{
		Title: h.siteTitle,
		Body:  "Enter your tracking number on the home page to follow your shipment.",
	}

	w.Header().Set("Content-Type", "application/json")
	err := json.NewEncoder(w).Encode(response)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
