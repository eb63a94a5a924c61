package shipment

import (
	"strings"

	"github.com/google/uuid"
)

const (
	trackingIDLength    = 12
	maxGenerateAttempts = 5
)

// NewTrackingID генерирует случайный идентификатор: uuid4 без дефисов,
// первые 12 символов в верхнем регистре.
func NewTrackingID() string {
	raw := strings.ReplaceAll(uuid.NewString(), "-", "")
	return strings.ToUpper(raw[:trackingIDLength])
}
