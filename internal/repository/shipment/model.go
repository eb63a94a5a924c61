package shipment

import "time"

type ShipmentDB struct {
	ID              int64
	TrackingID      string
	Service         string
	Status          string
	SenderName      string
	SenderContact   string
	SenderAddress   string
	ReceiverName    string
	ReceiverContact string
	ReceiverAddress string
	Quantity        int32
	WeightKg        float64
	PriceUSD        float64
	Remarks         *string
	CurrentLocation string
	DateSent        time.Time
	ExpectedArrival *time.Time
	MapLocation     *string
	PackageImage    string
	IDDocument      string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// scanFields возвращает указатели на поля в порядке shipmentColumns.
func (m *ShipmentDB) scanFields() []any {
	return []any{
		&m.ID,
		&m.TrackingID,
		&m.Service,
		&m.Status,
		&m.SenderName,
		&m.SenderContact,
		&m.SenderAddress,
		&m.ReceiverName,
		&m.ReceiverContact,
		&m.ReceiverAddress,
		&m.Quantity,
		&m.WeightKg,
		&m.PriceUSD,
		&m.Remarks,
		&m.CurrentLocation,
		&m.DateSent,
		&m.ExpectedArrival,
		&m.MapLocation,
		&m.PackageImage,
		&m.IDDocument,
		&m.CreatedAt,
		&m.UpdatedAt,
	}
}

type ShipmentModifyDB struct {
	ID              *int64
	TrackingID      *string
	Service         *string
	Status          *string
	SenderName      *string
	SenderContact   *string
	SenderAddress   *string
	ReceiverName    *string
	ReceiverContact *string
	ReceiverAddress *string
	Quantity        *int32
	WeightKg        *float64
	PriceUSD        *float64
	Remarks         *string
	CurrentLocation *string
	DateSent        *time.Time
	ExpectedArrival *time.Time
	MapLocation     *string
	PackageImage    *string
	IDDocument      *string
}
