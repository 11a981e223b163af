package booking

import (
	"net/url"
	"strings"

	"psicocitas/models"
)

// Form field names as rendered by the site's booking form.
const (
	fieldHoneypot     = "company"
	fieldGuardianName = "guardian_name"
	fieldPatientName  = "patient_name"
	fieldPatientAge   = "patient_age"
	fieldEmail        = "email"
	fieldPhone        = "phone"
	fieldSessionType  = "session_type"
	fieldMessage      = "message"
)

// FromForm builds a BookingSubmission from raw form values. Every field is
// trimmed of surrounding whitespace; absent fields become empty strings.
// No validation happens here.
func FromForm(form url.Values) models.BookingSubmission {
	get := func(key string) string {
		return strings.TrimSpace(form.Get(key))
	}

	return models.BookingSubmission{
		GuardianName: get(fieldGuardianName),
		PatientName:  get(fieldPatientName),
		PatientAge:   get(fieldPatientAge),
		Email:        get(fieldEmail),
		Phone:        get(fieldPhone),
		SessionType:  get(fieldSessionType),
		Message:      get(fieldMessage),
		Honeypot:     get(fieldHoneypot),
	}
}
