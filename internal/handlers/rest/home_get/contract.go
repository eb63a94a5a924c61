//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=home_get_test
package home_get

import (
	"shipment-service/pkg/logger"
)

type handlerLogger interface {
	Debug(msg string, fields ...logger.Field)
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}
