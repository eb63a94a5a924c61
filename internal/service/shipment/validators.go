package shipment

import (
	"net/url"
	"strings"

	"shipment-service/internal/entities"
)

const maxTrackingIDLength = 255

func isValidName(name string) bool {
	return strings.TrimSpace(name) != ""
}

func isValidTrackingID(trackingID string) bool {
	trackingID = strings.TrimSpace(trackingID)
	return trackingID != "" && len(trackingID) <= maxTrackingIDLength
}

func isValidService(service string) bool {
	switch entities.ShipmentServiceType(service) {
	case entities.ServiceNeoLite,
		entities.ServiceComone,
		entities.ServiceDirectFreight,
		entities.ServiceDexi,
		entities.ServiceUPS,
		entities.ServiceZepto,
		entities.ServicePgeon,
		entities.ServiceRoadbull,
		entities.ServiceLWE,
		entities.ServiceSPC,
		entities.ServiceDHLEcommerce:
		return true
	default:
		return false
	}
}

func isValidStatus(status string) bool {
	switch status {
	case "processing", "in_transit", "arrived_at_hub", "out_for_delivery",
		"delivered", "delayed", "on_hold", "returned":
		return true
	default:
		return false
	}
}

func isValidQuantity(quantity int32) bool {
	return quantity > 0
}

func isValidWeight(weightKg float64) bool {
	return weightKg >= 0
}

func isValidPrice(priceUSD float64) bool {
	return priceUSD >= 0
}

// Карта принимается только как встраиваемая ссылка с хоста из списка
// разрешённых. Произвольная разметка в map_location не хранится.
var allowedMapEmbedHosts = map[string]struct{}{
	"www.google.com":        {},
	"google.com":            {},
	"maps.google.com":       {},
	"www.openstreetmap.org": {},
	"openstreetmap.org":     {},
}

// normalizeMapEmbed принимает либо голый URL, либо iframe-сниппет и
// возвращает извлечённый URL. Пустая строка валидна и означает "карты нет".
func normalizeMapEmbed(raw string) (string, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", true
	}

	embedURL := raw
	if strings.Contains(raw, "<iframe") {
		start := strings.Index(raw, `src="`)
		if start < 0 {
			return "", false
		}
		rest := raw[start+len(`src="`):]
		end := strings.Index(rest, `"`)
		if end < 0 {
			return "", false
		}
		embedURL = rest[:end]
	}

	parsed, err := url.Parse(embedURL)
	if err != nil {
		return "", false
	}
	if parsed.Scheme != "https" {
		return "", false
	}
	if _, ok := allowedMapEmbedHosts[parsed.Host]; !ok {
		return "", false
	}

	return parsed.String(), true
}

// Прямой порядок жизненного цикла. Используется только при включённой
// политике строгих переходов; delayed/on_hold/returned доступны из любого
// незавершённого статуса.
var statusRank = map[entities.ShipmentStatusType]int{
	entities.StatusProcessing:     0,
	entities.StatusInTransit:      1,
	entities.StatusArrivedAtHub:   2,
	entities.StatusOutForDelivery: 3,
	entities.StatusDelivered:      4,
}

func isAllowedTransition(from, to entities.ShipmentStatusType) bool {
	if from == to {
		return true
	}
	if from == entities.StatusDelivered {
		return false
	}

	toRank, toLinear := statusRank[to]
	if !toLinear {
		// delayed, on_hold, returned
		return true
	}

	fromRank, fromLinear := statusRank[from]
	if !fromLinear {
		// возврат из delayed/on_hold/returned в основную цепочку
		return true
	}

	return toRank > fromRank
}
