package subscriber

import "time"

type SubscriberDB struct {
	ID        int64
	Email     string
	IsActive  bool
	IPAddress string
	CreatedAt time.Time
	UpdatedAt time.Time
}
