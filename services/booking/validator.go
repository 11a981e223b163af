package booking

import (
	"regexp"

	"psicocitas/models"
)

var emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// IsSpam reports whether the hidden honeypot field was filled in. Callers
// must accept such submissions silently and do nothing, so bots get no
// distinguishing signal.
func IsSpam(sub models.BookingSubmission) bool {
	return sub.Honeypot != ""
}

// Validate checks required fields first, then the email format. It is pure
// and total: same input, same result, never panics.
func Validate(sub models.BookingSubmission) error {
	required := []string{
		sub.GuardianName,
		sub.PatientName,
		sub.PatientAge,
		sub.Email,
		sub.Phone,
		sub.SessionType,
	}
	for _, v := range required {
		if v == "" {
			return ErrMissingField
		}
	}

	if !emailRegex.MatchString(sub.Email) {
		return ErrInvalidEmail
	}

	return nil
}
