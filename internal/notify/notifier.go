package notify

import (
	"context"
	"fmt"
	"strings"
	"time"

	"contact-form-backend/internal/database/models"
	apperrors "contact-form-backend/internal/errors"

	"gopkg.in/gomail.v2"
)

// Options configures the SMTP notifier
type Options struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
	To       []string
	Timeout  time.Duration
}

// Enabled reports whether enough is configured to send mail
func (o Options) Enabled() bool {
	return strings.TrimSpace(o.Host) != "" && len(cleanAddrs(o.To)) > 0
}

// ParseRecipients splits a comma separated address list
func ParseRecipients(list string) []string {
	return cleanAddrs(strings.Split(list, ","))
}

type sender interface {
	DialAndSend(m ...*gomail.Message) error
}

// SMTPNotifier mails a plain-text summary of each submission
type SMTPNotifier struct {
	opts   Options
	sender sender
}

// Ensure SMTPNotifier implements NotifierInterface
var _ NotifierInterface = (*SMTPNotifier)(nil)

// NewSMTPNotifier creates a notifier sending through opts.Host
func NewSMTPNotifier(opts Options) *SMTPNotifier {
	if opts.Port == 0 {
		opts.Port = 587
	}
	if opts.Timeout == 0 {
		opts.Timeout = 10 * time.Second
	}
	if strings.TrimSpace(opts.From) == "" {
		opts.From = opts.Username
	}
	return &SMTPNotifier{
		opts:   opts,
		sender: gomail.NewDialer(opts.Host, opts.Port, opts.Username, opts.Password),
	}
}

// New returns an SMTP notifier, or a no-op one when mail is not configured
func New(opts Options) NotifierInterface {
	if !opts.Enabled() {
		return NopNotifier{}
	}
	return NewSMTPNotifier(opts)
}

// Notify sends the summary, giving up when ctx ends or the timeout passes
func (n *SMTPNotifier) Notify(ctx context.Context, submission *models.Submission) error {
	msg, err := BuildMessage(n.opts.From, n.opts.To, submission)
	if err != nil {
		return err
	}

	done := make(chan error, 1)
	go func() {
		done <- n.sender.DialAndSend(msg)
	}()

	wait := n.opts.Timeout
	if dl, ok := ctx.Deadline(); ok {
		if d := time.Until(dl); d > 0 && d < wait {
			wait = d
		}
	}

	select {
	case err := <-done:
		if err != nil {
			return fmt.Errorf("failed to send notification: %w", err)
		}
		return nil
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(wait):
		return context.DeadlineExceeded
	}
}

// BuildMessage renders the notification mail for submission
func BuildMessage(from string, to []string, submission *models.Submission) (*gomail.Message, error) {
	from = strings.TrimSpace(from)
	if from == "" {
		return nil, fmt.Errorf("notification sender is required")
	}
	recipients := cleanAddrs(to)
	if len(recipients) == 0 {
		return nil, fmt.Errorf("notification recipient is required")
	}
	if submission == nil {
		return nil, fmt.Errorf("submission is required")
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", from)
	msg.SetHeader("To", recipients...)
	msg.SetHeader("Reply-To", submission.Email)
	msg.SetHeader("Subject", fmt.Sprintf("Nový kontaktní formulář #%d", submission.ID))
	msg.SetBody("text/plain", body(submission))
	return msg, nil
}

func body(s *models.Submission) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Jméno: %s\n", s.Name)
	fmt.Fprintf(&b, "Email: %s\n", s.Email)
	fmt.Fprintf(&b, "Telefon: %s\n", s.Phone)
	fmt.Fprintf(&b, "PSČ: %s\n", s.PostalCode)
	fmt.Fprintf(&b, "Odesláno: %s\n", s.SubmittedAt.UTC().Format(models.TimestampLayout))
	if s.Message != "" {
		fmt.Fprintf(&b, "\n%s\n", s.Message)
	}
	return b.String()
}

func cleanAddrs(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		out = append(out, s)
	}
	return out
}

// NopNotifier is used when SMTP is not configured
type NopNotifier struct{}

// Notify always reports that notifications are disabled
func (NopNotifier) Notify(context.Context, *models.Submission) error {
	return apperrors.ErrNotifierDisabled
}
