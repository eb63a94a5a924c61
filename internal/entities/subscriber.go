package entities

import "time"

type NewsletterSubscriber struct {
	ID        int64
	Email     string
	IsActive  bool
	IPAddress string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// SubscribeOutcome описывает результат попытки подписки.
type SubscribeOutcome string

const (
	SubscribeCreated     SubscribeOutcome = "created"
	SubscribeReactivated SubscribeOutcome = "reactivated"
)
