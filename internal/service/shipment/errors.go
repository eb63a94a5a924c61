package shipment

import "errors"

var (
	ErrMissingRequiredFields = errors.New("missing required fields")
	ErrInvalidShipmentID     = errors.New("invalid shipment id")
	ErrInvalidTrackingID     = errors.New("invalid tracking id")
	ErrInvalidService        = errors.New("invalid service")
	ErrInvalidStatus         = errors.New("invalid status")
	ErrInvalidQuantity       = errors.New("invalid quantity")
	ErrInvalidWeight         = errors.New("invalid weight")
	ErrInvalidPrice          = errors.New("invalid price")
	ErrInvalidMapEmbed       = errors.New("invalid map embed")
	ErrStatusFlowViolation   = errors.New("status flow violation")

	ErrShipmentNotFound   = errors.New("shipment not found")
	ErrTrackingIDConflict = errors.New("tracking id already exists")
)
