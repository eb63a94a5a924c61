package subscriber

import "errors"

var (
	ErrInvalidEmail      = errors.New("invalid email")
	ErrAlreadySubscribed = errors.New("email already subscribed")

	ErrSubscriberNotFound = errors.New("subscriber not found")
	ErrEmailConflict      = errors.New("email already exists")
)
