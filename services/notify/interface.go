package notify

import (
	"context"
	"errors"
	"fmt"

	"psicocitas/models"
)

// Channel delivery failures. Their text is what the caller sees on a 502;
// provider detail stays in the logs.
var (
	ErrEmailDelivery   = errors.New("Email delivery failed")
	ErrMessageDelivery = errors.New("WhatsApp delivery failed")
)

// Channel is one staff notification channel. A channel is active iff its
// whole config bundle is present; inactive channels are skipped, not failed.
type Channel interface {
	Name() string
	Configured() bool
	Send(ctx context.Context, sub models.BookingSubmission) error
}

// DeliveryError names the channel that failed so the orchestrator can
// report which leg of the fan-out broke.
type DeliveryError struct {
	Channel string
	Err     error
}

func (e *DeliveryError) Error() string {
	return fmt.Sprintf("%s: %v", e.Channel, e.Err)
}

func (e *DeliveryError) Unwrap() error {
	return e.Err
}
