package subscriber

import (
	"net/mail"
	"strings"
)

const maxEmailLength = 254

// normalizeEmail приводит адрес к каноническому виду для дедупликации:
// обрезанные пробелы, нижний регистр.
func normalizeEmail(raw string) string {
	return strings.ToLower(strings.TrimSpace(raw))
}

func isValidEmail(email string) bool {
	if email == "" || len(email) > maxEmailLength {
		return false
	}

	parsed, err := mail.ParseAddress(email)
	if err != nil {
		return false
	}

	// Адрес с display name ("Bob <bob@x.y>") не принимается как есть.
	return parsed.Address == email
}
