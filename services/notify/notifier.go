package notify

import (
	"context"

	"go.uber.org/zap"

	"psicocitas/config"
	"psicocitas/models"
	"psicocitas/utils"
)

// Notifier fans a submission out to every configured channel, in order.
type Notifier struct {
	Channels []Channel
}

// NewNotifier assembles the channel set from configuration. Channels whose
// config bundle is incomplete stay in the list and are skipped at send time.
func NewNotifier(cfg *config.Config) *Notifier {
	return &Notifier{
		Channels: []Channel{
			NewEmailChannel(cfg),
			NewWhatsAppChannel(cfg),
		},
	}
}

// SendAll delivers to each configured channel sequentially. The first hard
// failure aborts the fan-out; already-delivered notifications are not
// retracted. A run where every channel was skipped is a success.
func (n *Notifier) SendAll(ctx context.Context, sub models.BookingSubmission) error {
	logger := utils.GetLogger()

	for _, ch := range n.Channels {
		if !ch.Configured() {
			logger.Info("Notification skipped: channel not configured",
				zap.String("channel", ch.Name()))
			continue
		}
		if err := ch.Send(ctx, sub); err != nil {
			return &DeliveryError{Channel: ch.Name(), Err: err}
		}
		logger.Info("Notification sent", zap.String("channel", ch.Name()))
	}
	return nil
}
