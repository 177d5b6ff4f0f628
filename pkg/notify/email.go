package notify

import (
	"context"

	"github.com/wneessen/go-mail"
)

// SMTPSender delivers notification email over SMTP.
type SMTPSender struct {
	client *mail.Client
	from   string
}

// SMTPSenderParams configures an SMTPSender.
type SMTPSenderParams struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

// NewSMTPSender creates an SMTP-backed EmailSender.
func NewSMTPSender(params SMTPSenderParams) (*SMTPSender, error) {
	opts := []mail.Option{
		mail.WithPort(params.Port),
		mail.WithTLSPortPolicy(mail.TLSOpportunistic),
	}
	if params.Username != "" {
		opts = append(opts,
			mail.WithSMTPAuth(mail.SMTPAuthPlain),
			mail.WithUsername(params.Username),
			mail.WithPassword(params.Password),
		)
	}

	client, err := mail.NewClient(params.Host, opts...)
	if err != nil {
		return nil, err
	}

	return &SMTPSender{
		client: client,
		from:   params.From,
	}, nil
}

// Send delivers one rendered message. The context bounds the whole
// dial-and-send exchange.
func (s *SMTPSender) Send(ctx context.Context, msg EmailMessage) error {
	m := mail.NewMsg()
	if err := m.From(s.from); err != nil {
		return err
	}
	if err := m.To(msg.To); err != nil {
		return err
	}
	m.Subject(msg.Subject)
	m.SetBodyString(mail.TypeTextHTML, msg.HTMLBody)

	return s.client.DialAndSendWithContext(ctx, m)
}
