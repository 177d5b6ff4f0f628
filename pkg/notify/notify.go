package notify

import (
	"context"
	"time"

	"github.com/daralshefa/chatbot/backend/pkg/logger"

	"golang.org/x/sync/errgroup"
)

// EventKind identifies one of the user actions the chatbot records.
type EventKind string

const (
	KindAppointment      EventKind = "appointment"
	KindInsuranceInquiry EventKind = "insurance_inquiry"
	KindApprovalInquiry  EventKind = "approval_inquiry"
)

const defaultChannelTimeout = 15 * time.Second

// Event is one completed user action, ready to be fanned out to the
// notification channels. Recipient is the notification inbox for this event
// kind, resolved by the caller; it may be empty when no inbox is configured.
type Event struct {
	Kind      EventKind
	Fields    map[string]string
	Recipient string
}

// SheetPayload is the JSON object mirrored to the spreadsheet webhook.
func (e Event) SheetPayload() map[string]string {
	payload := make(map[string]string, len(e.Fields)+1)
	for k, v := range e.Fields {
		payload[k] = v
	}
	payload["type"] = string(e.Kind)
	return payload
}

// DispatchResult reports the per-channel outcome of one fan-out.
type DispatchResult struct {
	EmailOK bool
	SheetOK bool
}

// EmailSender delivers one rendered notification email.
type EmailSender interface {
	Send(ctx context.Context, msg EmailMessage) error
}

// WebhookPoster delivers one JSON payload to a webhook URL.
type WebhookPoster interface {
	Post(ctx context.Context, url string, payload any) error
}

// Dispatcher fans a completed user event out to the email and sheet-mirror
// channels. The channels are independent: both are always attempted, each
// under its own timeout, and a failure in one is logged and reported in the
// result without affecting the other or the caller.
type Dispatcher struct {
	email      EmailSender
	sheet      WebhookPoster
	webhookURL string
	timeout    time.Duration
}

// DispatcherParams configures a Dispatcher.
type DispatcherParams struct {
	Email           EmailSender
	Sheet           WebhookPoster
	SheetWebhookURL string
	ChannelTimeout  time.Duration
}

// NewDispatcher creates a Dispatcher. A zero ChannelTimeout falls back to 15s.
func NewDispatcher(params DispatcherParams) *Dispatcher {
	timeout := params.ChannelTimeout
	if timeout <= 0 {
		timeout = defaultChannelTimeout
	}
	return &Dispatcher{
		email:      params.Email,
		sheet:      params.Sheet,
		webhookURL: params.SheetWebhookURL,
		timeout:    timeout,
	}
}

// Dispatch sends event to both channels and returns when both have completed
// or timed out. These are auxiliary notifications: losing a spreadsheet copy
// must never roll back the owning business record, so no error escapes here.
func (d *Dispatcher) Dispatch(ctx context.Context, event Event) DispatchResult {
	var result DispatchResult

	g := new(errgroup.Group)
	g.Go(func() error {
		result.EmailOK = d.sendEmail(ctx, event)
		return nil
	})
	g.Go(func() error {
		result.SheetOK = d.postSheet(ctx, event)
		return nil
	})
	g.Wait()

	return result
}

func (d *Dispatcher) sendEmail(ctx context.Context, event Event) bool {
	if event.Recipient == "" {
		logger.Warn("No notification recipient configured, skipping email", "kind", event.Kind)
		return false
	}

	msg, err := RenderEmail(event)
	if err != nil {
		logger.Error("Failed to render notification email", "kind", event.Kind, "err", err)
		return false
	}

	ctx, cancel := context.WithTimeout(ctx, d.timeout)
	defer cancel()
	if err := d.email.Send(ctx, msg); err != nil {
		logger.Error("Failed to send notification email", "kind", event.Kind, "err", err)
		return false
	}
	return true
}

func (d *Dispatcher) postSheet(ctx context.Context, event Event) bool {
	if d.webhookURL == "" {
		logger.Warn("No sheet webhook configured, skipping mirror", "kind", event.Kind)
		return false
	}

	ctx, cancel := context.WithTimeout(ctx, d.timeout)
	defer cancel()
	if err := d.sheet.Post(ctx, d.webhookURL, event.SheetPayload()); err != nil {
		logger.Error("Failed to mirror event to sheet", "kind", event.Kind, "err", err)
		return false
	}
	return true
}
