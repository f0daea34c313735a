// Package notify tells the office about new contact form submissions.
package notify

import (
	"context"
	"fmt"
	"net/http"
	"net/mail"
	"strings"
	"time"

	"github.com/madrasa/internal/db"
	"github.com/rs/zerolog"
	"github.com/sendgrid/rest"
	"github.com/sendgrid/sendgrid-go"
	sgmail "github.com/sendgrid/sendgrid-go/helpers/mail"
)

// Notifier is told about every accepted contact submission. Delivery is
// best-effort: failures are logged and never reach the visitor.
type Notifier interface {
	ContactSubmitted(ctx context.Context, sub db.ContactSubmission)
}

// LogNotifier only writes a log line.
type LogNotifier struct {
	logger zerolog.Logger
}

// NewLogNotifier returns a notifier that logs submissions.
func NewLogNotifier(logger zerolog.Logger) *LogNotifier {
	return &LogNotifier{logger: logger}
}

// ContactSubmitted logs the submission reference.
func (n *LogNotifier) ContactSubmitted(_ context.Context, sub db.ContactSubmission) {
	n.logger.Info().
		Str("reference", sub.Reference).
		Str("inquiry_type", sub.InquiryType).
		Str("priority", sub.Priority).
		Msg("contact submission received")
}

const (
	sendgridHost     = "https://api.sendgrid.com"
	sendgridEndpoint = "/v3/mail/send"
)

// DefaultTimeout bounds one SendGrid call.
const DefaultTimeout = 10 * time.Second

type sendFunc func(ctx context.Context, req rest.Request) (*rest.Response, error)

// SendgridNotifier emails the office through SendGrid.
type SendgridNotifier struct {
	key     string
	host    string
	from    *sgmail.Email
	to      []mail.Address
	timeout time.Duration
	logger  zerolog.Logger
	send    sendFunc
}

// NewSendgridNotifier builds a notifier sending from `from` to every address in `to`.
func NewSendgridNotifier(key, from string, to []string, logger zerolog.Logger) (*SendgridNotifier, error) {
	sender, err := mail.ParseAddress(from)
	if err != nil {
		return nil, fmt.Errorf("parse notify.from: %w", err)
	}
	recipients := make([]mail.Address, 0, len(to))
	for _, raw := range to {
		raw = strings.TrimSpace(raw)
		if raw == "" {
			continue
		}
		addr, err := mail.ParseAddress(raw)
		if err != nil {
			return nil, fmt.Errorf("parse notify.to: %w", err)
		}
		recipients = append(recipients, *addr)
	}
	if len(recipients) == 0 {
		return nil, fmt.Errorf("notify.to is empty")
	}
	n := &SendgridNotifier{
		key:     key,
		host:    sendgridHost,
		from:    sgmail.NewEmail(sender.Name, sender.Address),
		to:      recipients,
		timeout: DefaultTimeout,
		logger:  logger,
	}
	n.send = n.sendHTTP
	return n, nil
}

// sendHTTP 使用带超时的客户端，避免 SendGrid 无响应时阻塞提交请求。
func (n *SendgridNotifier) sendHTTP(ctx context.Context, req rest.Request) (*rest.Response, error) {
	client := &rest.Client{HTTPClient: &http.Client{Timeout: n.timeout}}
	return client.SendWithContext(ctx, req)
}

func (n *SendgridNotifier) prepare(sub db.ContactSubmission) *sgmail.SGMailV3 {
	p := sgmail.NewPersonalization()
	p.Subject = fmt.Sprintf("[Contact] %s", sub.Subject)
	for _, to := range n.to {
		p.AddTos(sgmail.NewEmail(to.Name, to.Address))
	}

	m := sgmail.NewV3Mail()
	m.SetFrom(n.from)
	m.SetReplyTo(sgmail.NewEmail(sub.FullName(), sub.Email))
	m.AddPersonalizations(p)
	m.AddContent(sgmail.NewContent("text/plain", plainBody(sub)))
	return m
}

func plainBody(sub db.ContactSubmission) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Reference: %s\n", sub.Reference)
	fmt.Fprintf(&b, "From: %s <%s>\n", sub.FullName(), sub.Email)
	if sub.Phone != "" {
		fmt.Fprintf(&b, "Phone: %s\n", sub.Phone)
	}
	fmt.Fprintf(&b, "Inquiry: %s (priority %s)\n\n", sub.InquiryType, sub.Priority)
	b.WriteString(sub.Message)
	b.WriteString("\n")
	return b.String()
}

// ContactSubmitted sends one email within the notifier timeout. Errors are logged.
func (n *SendgridNotifier) ContactSubmitted(ctx context.Context, sub db.ContactSubmission) {
	req := sendgrid.GetRequest(n.key, sendgridEndpoint, n.host)
	req.Method = http.MethodPost
	req.Body = sgmail.GetRequestBody(n.prepare(sub))

	ctx, cancel := context.WithTimeout(ctx, n.timeout)
	defer cancel()
	res, err := n.send(ctx, req)
	if err != nil {
		n.logger.Error().Err(err).Str("reference", sub.Reference).Msg("sending contact notification")
		return
	}
	if res.StatusCode >= http.StatusBadRequest {
		n.logger.Error().Int("status", res.StatusCode).Str("body", res.Body).Str("reference", sub.Reference).Msg("sending contact notification")
		return
	}
	n.logger.Debug().Str("reference", sub.Reference).Msg("contact notification sent")
}
