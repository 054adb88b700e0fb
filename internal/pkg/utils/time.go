package utils

import (
	"appointment-booking-service/internal/pkg/constvars"
	"appointment-booking-service/internal/pkg/exceptions"
	"strings"
)

// ReformatExternalDate turns DD/MM/YYYY into YYYY-MM-DD by reordering the
// three parts. Padding is kept exactly as given and no calendar check is made,
// so "05/1/2025" becomes "2025-1-05".
func ReformatExternalDate(date string) (string, error) {
	parts := strings.Split(date, constvars.ExternalDateSeparator)
	if len(parts) != 3 {
		return "", exceptions.ErrInvalidCancellationDate(date)
	}
	day, month, year := parts[0], parts[1], parts[2]
	return strings.Join([]string{year, month, day}, constvars.BackendDateSeparator), nil
}
