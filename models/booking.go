package models

// NoMessagePlaceholder is shown in notifications when the optional
// message field was left empty.
const NoMessagePlaceholder = "Sin mensaje"

// BookingSubmission is one booking form submission. It lives for the
// duration of a single request: built by the normalizer, consumed by the
// validator, recorder and notifier.
type BookingSubmission struct {
	GuardianName string `json:"guardianName"`
	PatientName  string `json:"patientName"`
	PatientAge   string `json:"patientAge"`
	Email        string `json:"email"`
	Phone        string `json:"phone"`
	SessionType  string `json:"sessionType"`
	Message      string `json:"message"`

	// Honeypot carries the hidden "company" form field. Legitimate users
	// never fill it; any value means a bot.
	Honeypot string `json:"-"`
}

// DisplayMessage returns the free-text message, or the placeholder when
// the submitter left it empty.
func (s BookingSubmission) DisplayMessage() string {
	if s.Message == "" {
		return NoMessagePlaceholder
	}
	return s.Message
}
