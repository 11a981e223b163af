package notify

import (
	"fmt"
	"strings"

	"psicocitas/models"
)

const messageTitle = "Nueva solicitud de cita"

// htmlEscaper maps the five HTML-significant characters to entities. Every
// submission field interpolated into HTML passes through it; plain-text
// bodies carry the raw values.
var htmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#39;",
)

func escapeHTML(value string) string {
	return htmlEscaper.Replace(value)
}

// submissionFields lists the labeled fields in display order, shared by the
// email and WhatsApp bodies.
func submissionFields(sub models.BookingSubmission) [][2]string {
	return [][2]string{
		{"Acudiente", sub.GuardianName},
		{"Paciente", sub.PatientName},
		{"Edad", sub.PatientAge},
		{"Correo", sub.Email},
		{"Telefono", sub.Phone},
		{"Modalidad", sub.SessionType},
		{"Mensaje", sub.DisplayMessage()},
	}
}

// plainTextBody renders the submission one labeled line per field.
func plainTextBody(sub models.BookingSubmission) string {
	lines := []string{messageTitle}
	for _, f := range submissionFields(sub) {
		lines = append(lines, fmt.Sprintf("%s: %s", f[0], f[1]))
	}
	return strings.Join(lines, "\n")
}

// htmlBody renders the submission as a paragraph list with every value
// entity-escaped.
func htmlBody(sub models.BookingSubmission) string {
	var b strings.Builder
	fmt.Fprintf(&b, "<h2>%s</h2>\n", messageTitle)
	for _, f := range submissionFields(sub) {
		fmt.Fprintf(&b, "<p><strong>%s:</strong> %s</p>\n", f[0], escapeHTML(f[1]))
	}
	return b.String()
}
