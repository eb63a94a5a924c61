package tracking

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"shipment-service/internal/entities"
	"shipment-service/internal/service/shipment"
)

// Tracking — публичный поиск отправления. В отличие от админского слоя
// чужие ошибки наружу не выдаются: любой ненайденный или кривой
// идентификатор выглядит одинаково.
type Tracking struct {
	provider      ShipmentProvider
	publicBaseURL string
	now           func() time.Time
}

func New(provider ShipmentProvider, publicBaseURL string) *Tracking {
	return &Tracking{
		provider:      provider,
		publicBaseURL: strings.TrimRight(publicBaseURL, "/"),
		now:           time.Now,
	}
}

func (t *Tracking) Search(ctx context.Context, rawTrackingID string) (*entities.TrackingResult, error) {
	trackingID := strings.TrimSpace(rawTrackingID)
	if trackingID == "" {
		return nil, ErrNotFound
	}

	found, err := t.provider.GetShipmentByTrackingID(ctx, trackingID)
	if err != nil {
		if errors.Is(err, shipment.ErrShipmentNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to search shipment: %w", err)
	}

	return &entities.TrackingResult{
		Shipment:    found,
		TrackingURL: t.trackingURL(found.TrackingID),
		RefreshedAt: t.now().UTC(),
	}, nil
}

// trackingURL строит каноническую ссылку на страницу отслеживания.
// Схема всегда https независимо от того, как пришёл запрос.
func (t *Tracking) trackingURL(trackingID string) string {
	query := url.Values{"tracking_id": {trackingID}}
	return t.publicBaseURL + "/track?" + query.Encode()
}
