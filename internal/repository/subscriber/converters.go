package subscriber

import (
	"shipment-service/internal/entities"
)

func ToDomain(m *SubscriberDB) *entities.NewsletterSubscriber {
	if m == nil {
		return nil
	}

	return &entities.NewsletterSubscriber{
		ID:        m.ID,
		Email:     m.Email,
		IsActive:  m.IsActive,
		IPAddress: m.IPAddress,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}
