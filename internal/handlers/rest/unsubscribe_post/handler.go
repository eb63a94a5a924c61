package unsubscribe_post

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"shipment-service/internal/generated/dto"
	"shipment-service/internal/service/subscriber"
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
	email, ok := h.extractEmail(r)
	if !ok {
		h.respond(w, http.StatusBadRequest, dto.SubscribeResponse{
			Success: false,
			Message: "Please enter a valid email address.",
		})
		return
	}

	err := h.service.Unsubscribe(r.Context(), email)
	if err != nil {
		switch {
		case errors.Is(err, subscriber.ErrInvalidEmail):
			h.respond(w, http.StatusBadRequest, dto.SubscribeResponse{
				Success: false,
				Message: "Please enter a valid email address.",
			})
		case errors.Is(err, subscriber.ErrSubscriberNotFound):
			h.respond(w, http.StatusBadRequest, dto.SubscribeResponse{
				Success: false,
				Message: "This email is not subscribed.",
			})
		default:
			h.log.With(
				logger.NewField("error", err),
			).Error("unsubscribe newsletter")
			h.respond(w, http.StatusInternalServerError, dto.SubscribeResponse{
				Success: false,
				Message: "Something went wrong. Please try again later.",
			})
		}
		return
	}

	h.respond(w, http.StatusOK, dto.SubscribeResponse{
		Success: true,
		Message: "You have been unsubscribed.",
	})
}

// extractEmail принимает и форму со страницы, и JSON от SPA-клиента.
func (h *Handler) extractEmail(r *http.Request) (string, bool) {
	contentType := r.Header.Get("Content-Type")
	if strings.HasPrefix(contentType, "application/json") {
		var unsubscribeDTO dto.SubscribeRequest
		if err := json.NewDecoder(r.Body).Decode(&unsubscribeDTO); err != nil {
			return "", false
		}
		return unsubscribeDTO.Email, true
	}

	if err := r.ParseForm(); err != nil {
		return "", false
	}

	return r.PostFormValue("email"), true
}

func (h *Handler) respond(w http.ResponseWriter, status int, response dto.SubscribeResponse) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	err := json.NewEncoder(w).Encode(response)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
