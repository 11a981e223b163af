package booking

import (
	"context"
	"errors"
	"net/url"

	"go.uber.org/zap"

	"psicocitas/services/notify"
	"psicocitas/utils"
)

// DefaultBookingService implements Service. Stages run strictly in order:
// normalize, honeypot, validate, record, notify. The first hard failure is
// terminal; side effects already made are not rolled back.
type DefaultBookingService struct {
	Recorder Recorder
	Notifier ChannelNotifier
}

func (s *DefaultBookingService) Submit(ctx context.Context, form url.Values) Outcome {
	logger := utils.GetLogger()

	sub := FromForm(form)

	if IsSpam(sub) {
		// Bots get a success-shaped nothing.
		logger.Debug("Honeypot tripped, suppressing submission")
		return Outcome{Kind: OutcomeSpamSuppressed}
	}

	if err := Validate(sub); err != nil {
		return Outcome{Kind: OutcomeRejected, Reason: err.Error()}
	}

	if err := s.Recorder.Record(ctx, sub); err != nil {
		switch {
		case errors.Is(err, ErrSheetConfigMissing):
			logger.Error("Booking recorder misconfigured", zap.Error(err))
			return Outcome{Kind: OutcomeConfigError, Reason: ErrSheetConfigMissing.Error()}
		case errors.Is(err, ErrTabNotFound):
			logger.Error("Booking tab not found", zap.Error(err))
			return Outcome{Kind: OutcomeConfigError, Reason: ErrTabNotFound.Error()}
		default:
			logger.Error("Booking record failed", zap.Error(err))
			return Outcome{Kind: OutcomeRecordFailed, Reason: ErrRecordFailed.Error()}
		}
	}

	if err := s.Notifier.SendAll(ctx, sub); err != nil {
		logger.Error("Booking notification failed", zap.Error(err))

		reason := "Notification delivery failed"
		switch {
		case errors.Is(err, notify.ErrEmailDelivery):
			reason = notify.ErrEmailDelivery.Error()
		case errors.Is(err, notify.ErrMessageDelivery):
			reason = notify.ErrMessageDelivery.Error()
		}

		var de *notify.DeliveryError
		channel := ""
		if errors.As(err, &de) {
			channel = de.Channel
		}
		return Outcome{Kind: OutcomeNotifyFailed, Reason: reason, Channel: channel}
	}

	logger.Info("Booking submission delivered", zap.String("patient", sub.PatientName))
	return Outcome{Kind: OutcomeDelivered}
}
