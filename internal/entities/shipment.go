package entities

import (
	"time"
)

type Shipment struct {
	ID              int64
	TrackingID      string
	Service         ShipmentServiceType
	Status          ShipmentStatusType
	SenderName      string
	SenderContact   string
	SenderAddress   string
	ReceiverName    string
	ReceiverContact string
	ReceiverAddress string
	Quantity        int32
	WeightKg        float64
	PriceUSD        float64
	Remarks         string
	CurrentLocation string
	DateSent        time.Time
	ExpectedArrival *time.Time
	MapLocation     string
	PackageImage    string
	IDDocument      string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

type ShipmentStatusType string

const (
	StatusProcessing     ShipmentStatusType = "processing"
	StatusInTransit      ShipmentStatusType = "in_transit"
	StatusArrivedAtHub   ShipmentStatusType = "arrived_at_hub"
	StatusOutForDelivery ShipmentStatusType = "out_for_delivery"
	StatusDelivered      ShipmentStatusType = "delivered"
	StatusDelayed        ShipmentStatusType = "delayed"
	StatusOnHold         ShipmentStatusType = "on_hold"
	StatusReturned       ShipmentStatusType = "returned"
)

const DefaultShipmentStatus = StatusProcessing

func (t ShipmentStatusType) String() string {
	return string(t)
}

// DisplayLabel возвращает человекочитаемую метку статуса.
func (t ShipmentStatusType) DisplayLabel() string {
	switch t {
	case StatusProcessing:
		return "Processing"
	case StatusInTransit:
		return "In Transit"
	case StatusArrivedAtHub:
		return "Arrived at Hub"
	case StatusOutForDelivery:
		return "Out for Delivery"
	case StatusDelivered:
		return "Delivered"
	case StatusDelayed:
		return "Delayed"
	case StatusOnHold:
		return "On Hold"
	case StatusReturned:
		return "Returned to Sender"
	default:
		return string(t)
	}
}

type ShipmentServiceType string

// Закрытый набор служб доставки: статические метки, не живые интеграции.
const (
	ServiceNeoLite       ShipmentServiceType = "NeoLite-Logistics"
	ServiceComone        ShipmentServiceType = "Comone Express"
	ServiceDirectFreight ShipmentServiceType = "Direct Freight Express"
	ServiceDexi          ShipmentServiceType = "Dex-i Express"
	ServiceUPS           ShipmentServiceType = "UPS Express"
	ServiceZepto         ShipmentServiceType = "ZeptoExpress"
	ServicePgeon         ShipmentServiceType = "Pgeon Delivery"
	ServiceRoadbull      ShipmentServiceType = "Roadbull"
	ServiceLWE           ShipmentServiceType = "LWE"
	ServiceSPC           ShipmentServiceType = "SPC"
	ServiceDHLEcommerce  ShipmentServiceType = "DHL Ecommerce"
)

func (t ShipmentServiceType) String() string {
	return string(t)
}

// ShipmentServices возвращает все поддерживаемые службы в порядке объявления.
func ShipmentServices() []ShipmentServiceType {
	return []ShipmentServiceType{
		ServiceNeoLite,
		ServiceComone,
		ServiceDirectFreight,
		ServiceDexi,
		ServiceUPS,
		ServiceZepto,
		ServicePgeon,
		ServiceRoadbull,
		ServiceLWE,
		ServiceSPC,
		ServiceDHLEcommerce,
	}
}

func (t ShipmentServiceType) DisplayLabel() string {
	if t == ServiceNeoLite {
		return "NeoLite Logistics"
	}
	return string(t)
}

// Ссылка-заглушка, когда фото посылки или документ не загружены.
const PlaceholderImageURL = "https://res.cloudinary.com/demo/image/upload/sample.jpg"

type ShipmentModify struct {
	ID              *int64
	TrackingID      *string
	Service         *ShipmentServiceType
	Status          *ShipmentStatusType
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
