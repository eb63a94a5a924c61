package entities

import "time"

// TrackingResult — публичный ответ поиска по tracking id: само отправление,
// каноническая ссылка на страницу отслеживания и момент выдачи данных.
type TrackingResult struct {
	Shipment    *Shipment
	TrackingURL string
	RefreshedAt time.Time
}
