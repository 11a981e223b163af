package notify

import (
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"

	"psicocitas/config"
	"psicocitas/models"
	"psicocitas/utils"
)

const resendEndpoint = "https://api.resend.com/emails"

// EmailChannel notifies staff through Resend transactional email.
type EmailChannel struct {
	APIKey   string
	From     string
	To       string
	SiteName string

	// Endpoint is overridable in tests.
	Endpoint string

	client *resty.Client
}

func NewEmailChannel(cfg *config.Config) *EmailChannel {
	return &EmailChannel{
		APIKey:   cfg.ResendAPIKey,
		From:     cfg.BookingEmailFrom,
		To:       cfg.BookingEmailTo,
		SiteName: cfg.SiteName,
		Endpoint: resendEndpoint,
		client:   resty.New().SetTimeout(outboundTimeout(cfg)),
	}
}

func (e *EmailChannel) Name() string {
	return "email"
}

func (e *EmailChannel) Configured() bool {
	return e.APIKey != "" && e.From != "" && e.To != ""
}

// Send posts to the Resend API. Reply-to is set to the submitter so staff
// can answer directly from their inbox.
func (e *EmailChannel) Send(ctx context.Context, sub models.BookingSubmission) error {
	html := htmlBody(sub)
	if e.SiteName != "" {
		html += fmt.Sprintf("<p><em>%s</em></p>\n", escapeHTML(e.SiteName))
	}

	payload := map[string]interface{}{
		"from":     e.From,
		"to":       []string{e.To},
		"reply_to": sub.Email,
		"subject":  fmt.Sprintf("%s - %s", messageTitle, sub.PatientName),
		"html":     html,
		"text":     plainTextBody(sub),
	}

	resp, err := e.client.R().
		SetContext(ctx).
		SetAuthToken(e.APIKey).
		SetHeader("Content-Type", "application/json").
		SetBody(payload).
		Post(e.Endpoint)
	if err != nil {
		utils.GetLogger().Error("Resend API error", zap.Error(err))
		return fmt.Errorf("%w: %v", ErrEmailDelivery, err)
	}
	if resp.IsError() {
		utils.GetLogger().Error("Resend API error",
			zap.Int("status", resp.StatusCode()),
			zap.String("body", resp.String()),
		)
		return fmt.Errorf("%w: status %d", ErrEmailDelivery, resp.StatusCode())
	}
	return nil
}

func outboundTimeout(cfg *config.Config) time.Duration {
	if cfg.OutboundTimeoutSeconds > 0 {
		return time.Duration(cfg.OutboundTimeoutSeconds) * time.Second
	}
	return 10 * time.Second
}
