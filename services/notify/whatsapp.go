package notify

import (
	"context"
	"fmt"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"

	"psicocitas/config"
	"psicocitas/models"
	"psicocitas/utils"
)

const whatsAppBaseURL = "https://graph.facebook.com/v19.0"

// WhatsAppChannel notifies staff through the WhatsApp Cloud API.
type WhatsAppChannel struct {
	Token         string
	PhoneNumberID string
	To            string

	// BaseURL is overridable in tests.
	BaseURL string

	client *resty.Client
}

func NewWhatsAppChannel(cfg *config.Config) *WhatsAppChannel {
	return &WhatsAppChannel{
		Token:         cfg.WhatsAppToken,
		PhoneNumberID: cfg.WhatsAppPhoneNumberID,
		To:            cfg.WhatsAppTo,
		BaseURL:       whatsAppBaseURL,
		client:        resty.New().SetTimeout(outboundTimeout(cfg)),
	}
}

func (w *WhatsAppChannel) Name() string {
	return "whatsapp"
}

func (w *WhatsAppChannel) Configured() bool {
	return w.Token != "" && w.PhoneNumberID != "" && w.To != ""
}

func (w *WhatsAppChannel) Send(ctx context.Context, sub models.BookingSubmission) error {
	payload := map[string]interface{}{
		"messaging_product": "whatsapp",
		"to":                w.To,
		"type":              "text",
		"text":              map[string]string{"body": plainTextBody(sub)},
	}

	resp, err := w.client.R().
		SetContext(ctx).
		SetAuthToken(w.Token).
		SetHeader("Content-Type", "application/json").
		SetBody(payload).
		Post(fmt.Sprintf("%s/%s/messages", w.BaseURL, w.PhoneNumberID))
	if err != nil {
		utils.GetLogger().Error("WhatsApp API error", zap.Error(err))
		return fmt.Errorf("%w: %v", ErrMessageDelivery, err)
	}
	if resp.IsError() {
		utils.GetLogger().Error("WhatsApp API error",
			zap.Int("status", resp.StatusCode()),
			zap.String("body", resp.String()),
		)
		return fmt.Errorf("%w: status %d", ErrMessageDelivery, resp.StatusCode())
	}
	return nil
}
