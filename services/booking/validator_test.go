package booking

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"psicocitas/models"
)

func validSubmission() models.BookingSubmission {
	return models.BookingSubmission{
		GuardianName: "Maria Lopez",
		PatientName:  "Juan Lopez",
		PatientAge:   "9",
		Email:        "maria@example.com",
		Phone:        "3001234567",
		SessionType:  "Presencial",
		Message:      "Primera consulta",
	}
}

func TestValidate_RequiredFields(t *testing.T) {
	clear := []struct {
		name  string
		strip func(*models.BookingSubmission)
	}{
		{"guardian_name", func(s *models.BookingSubmission) { s.GuardianName = "" }},
		{"patient_name", func(s *models.BookingSubmission) { s.PatientName = "" }},
		{"patient_age", func(s *models.BookingSubmission) { s.PatientAge = "" }},
		{"email", func(s *models.BookingSubmission) { s.Email = "" }},
		{"phone", func(s *models.BookingSubmission) { s.Phone = "" }},
		{"session_type", func(s *models.BookingSubmission) { s.SessionType = "" }},
	}

	for _, tc := range clear {
		t.Run(tc.name, func(t *testing.T) {
			sub := validSubmission()
			tc.strip(&sub)
			assert.ErrorIs(t, Validate(sub), ErrMissingField)
		})
	}

	// The message is optional.
	sub := validSubmission()
	sub.Message = ""
	assert.NoError(t, Validate(sub))
}

func TestValidate_EmailFormat(t *testing.T) {
	tests := []struct {
		email string
		ok    bool
	}{
		{"a@b.co", true},
		{"maria.lopez@clinic.example.org", true},
		{"a@b", false},
		{"a b@c.com", false},
		{"@c.com", false},
		{"a@.com", false},
		{"", false},
	}

	for _, tc := range tests {
		t.Run(tc.email, func(t *testing.T) {
			sub := validSubmission()
			sub.Email = tc.email
			err := Validate(sub)
			if tc.email == "" {
				// Empty email trips the required check, not the format check.
				assert.ErrorIs(t, err, ErrMissingField)
				return
			}
			if tc.ok {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, ErrInvalidEmail)
			}
		})
	}
}

func TestValidate_RequiredBeforeFormat(t *testing.T) {
	sub := validSubmission()
	sub.Email = "not-an-email"
	sub.Phone = ""
	assert.ErrorIs(t, Validate(sub), ErrMissingField)
}

func TestValidate_Idempotent(t *testing.T) {
	sub := validSubmission()
	sub.Email = "a@b"

	first := Validate(sub)
	second := Validate(sub)
	require.Error(t, first)
	assert.Equal(t, first, second)
}

func TestIsSpam(t *testing.T) {
	sub := validSubmission()
	assert.False(t, IsSpam(sub))

	sub.Honeypot = "Acme Inc"
	assert.True(t, IsSpam(sub))
}

func TestFromForm_TrimsAndDefaults(t *testing.T) {
	form := url.Values{}
	form.Set("guardian_name", "  Maria Lopez ")
	form.Set("patient_name", "Juan")
	form.Set("patient_age", " 9")
	form.Set("email", " maria@example.com ")
	form.Set("phone", "3001234567")
	form.Set("session_type", "Virtual")
	// "message" and "company" absent on purpose.

	sub := FromForm(form)
	assert.Equal(t, "Maria Lopez", sub.GuardianName)
	assert.Equal(t, "9", sub.PatientAge)
	assert.Equal(t, "maria@example.com", sub.Email)
	assert.Empty(t, sub.Message)
	assert.Empty(t, sub.Honeypot)
	assert.Equal(t, models.NoMessagePlaceholder, sub.DisplayMessage())
}

func TestFromForm_Honeypot(t *testing.T) {
	form := url.Values{}
	form.Set("company", " bot corp ")

	sub := FromForm(form)
	assert.Equal(t, "bot corp", sub.Honeypot)
	assert.True(t, IsSpam(sub))
}
