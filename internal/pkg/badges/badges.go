// Package badges формирует отображаемые метки отправления для админской
// поверхности: цветной бейдж статуса и службы, форматированная цена.
// Чистые функции над сущностью, без HTML.
package badges

import (
	"fmt"

	"shipment-service/internal/entities"
)

type Badge struct {
	Label string
	Color string
}

// defaultColor используется для значений без выделенного цвета.
const defaultColor = "#6c757d"

var statusColors = map[entities.ShipmentStatusType]string{
	entities.StatusProcessing:     "#ffc107",
	entities.StatusInTransit:      "#17a2b8",
	entities.StatusArrivedAtHub:   "#007bff",
	entities.StatusOutForDelivery: "#fd7e14",
	entities.StatusDelivered:      "#28a745",
	entities.StatusDelayed:        "#dc3545",
	entities.StatusOnHold:         defaultColor,
	entities.StatusReturned:       "#343a40",
}

func ForStatus(status entities.ShipmentStatusType) Badge {
	color, ok := statusColors[status]
	if !ok {
		color = defaultColor
	}

	return Badge{
		Label: status.DisplayLabel(),
		Color: color,
	}
}

// ForService отдаёт нейтральный бейдж: службы — статические метки без
// собственной цветовой схемы.
func ForService(service entities.ShipmentServiceType) Badge {
	return Badge{
		Label: service.DisplayLabel(),
		Color: defaultColor,
	}
}

// FormatPrice отображает цену с символом валюты и двумя знаками после запятой.
func FormatPrice(priceUSD float64) string {
	return fmt.Sprintf("$%.2f", priceUSD)
}
