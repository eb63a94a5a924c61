package subscriber

import (
	"context"
	"errors"
	"fmt"

	"shipment-service/internal/entities"
)

type Subscriber struct {
	repository Repository
	txManager  TxManager
}

func New(repository Repository, txManager TxManager) *Subscriber {
	return &Subscriber{
		repository: repository,
		txManager:  txManager,
	}
}

// Subscribe нормализует адрес, проверяет его и заводит подписку.
// Повторная подписка активного адреса отклоняется, неактивный адрес
// реактивируется. Проверка и вставка идут в одной транзакции, гонка
// конкурентных вставок закрывается ловлей конфликта уникальности.
func (s *Subscriber) Subscribe(ctx context.Context, rawEmail, ipAddress string) (entities.SubscribeOutcome, error) {
	email := normalizeEmail(rawEmail)
	if !isValidEmail(email) {
		return "", ErrInvalidEmail
	}

	var outcome entities.SubscribeOutcome
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		existing, err := s.repository.GetByEmail(ctx, email)
		switch {
		case err == nil:
			if existing.IsActive {
				return ErrAlreadySubscribed
			}
			if err := s.repository.SetActive(ctx, existing.ID, true); err != nil {
				return err
			}
			outcome = entities.SubscribeReactivated
			return nil
		case errors.Is(err, ErrSubscriberNotFound):
			// адреса нет, создаём ниже
		default:
			return err
		}

		if _, err := s.repository.Create(ctx, email, ipAddress); err != nil {
			// Конкурентная вставка успела раньше: адрес уже подписан.
			if errors.Is(err, ErrEmailConflict) {
				return ErrAlreadySubscribed
			}
			return err
		}
		outcome = entities.SubscribeCreated
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrAlreadySubscribed) {
			return "", ErrAlreadySubscribed
		}
		return "", fmt.Errorf("failed to subscribe: %w", err)
	}

	return outcome, nil
}

// Unsubscribe деактивирует подписку, не удаляя строку.
func (s *Subscriber) Unsubscribe(ctx context.Context, rawEmail string) error {
	email := normalizeEmail(rawEmail)
	if !isValidEmail(email) {
		return ErrInvalidEmail
	}

	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		existing, err := s.repository.GetByEmail(ctx, email)
		if err != nil {
			return err
		}

		return s.repository.SetActive(ctx, existing.ID, false)
	})
	if err != nil {
		if errors.Is(err, ErrSubscriberNotFound) {
			return ErrSubscriberNotFound
		}
		return fmt.Errorf("failed to unsubscribe: %w", err)
	}

	return nil
}
