package booking

import (
	"context"
	"net/url"

	"psicocitas/models"
)

// Service runs the whole intake pipeline for one form submission.
type Service interface {
	Submit(ctx context.Context, form url.Values) Outcome
}

// ChannelNotifier fans a submission out to the configured channels.
type ChannelNotifier interface {
	SendAll(ctx context.Context, sub models.BookingSubmission) error
}

// OutcomeKind is the terminal state of a submission. Exactly one is
// produced per request.
type OutcomeKind int

const (
	// OutcomeSpamSuppressed: honeypot tripped, silently accepted, nothing done.
	OutcomeSpamSuppressed OutcomeKind = iota
	// OutcomeRejected: validation failed, caller-fixable.
	OutcomeRejected
	// OutcomeConfigError: recorder configuration incomplete or tab missing.
	OutcomeConfigError
	// OutcomeRecordFailed: spreadsheet append failed.
	OutcomeRecordFailed
	// OutcomeNotifyFailed: a configured channel failed after recording.
	OutcomeNotifyFailed
	// OutcomeDelivered: recorded, and every configured channel notified.
	OutcomeDelivered
)

func (k OutcomeKind) String() string {
	switch k {
	case OutcomeSpamSuppressed:
		return "spam_suppressed"
	case OutcomeRejected:
		return "rejected"
	case OutcomeConfigError:
		return "config_error"
	case OutcomeRecordFailed:
		return "record_failed"
	case OutcomeNotifyFailed:
		return "notify_failed"
	case OutcomeDelivered:
		return "delivered"
	}
	return "unknown"
}

// Outcome is the pipeline result handed to the HTTP layer. Reason carries
// only caller-safe text; provider detail never leaves the logs.
type Outcome struct {
	Kind    OutcomeKind
	Reason  string
	Channel string
}
