// Package smtp provides a mailer.Mailer delivering through an SMTP relay.
package smtp

import (
	"context"
	"fmt"
	"strings"
	"time"
	"travel/pkg/mailer"

	"github.com/wneessen/go-mail"
	"golang.org/x/time/rate"
)

// Options configures the SMTP mailer.
type Options struct {
	Host     string
	Port     int
	Username string
	Password string
	// From is the sender address of every message.
	From string
	// TLSPolicy is one of "mandatory", "opportunistic" or "none".
	TLSPolicy string
	// SendsPerSecond throttles deliveries. Zero or less disables throttling.
	SendsPerSecond float64
	Timeout        time.Duration
}

// sender is the subset of *mail.Client used to deliver messages.
type sender interface {
	DialAndSendWithContext(ctx context.Context, messages ...*mail.Msg) error
}

// Mailer sends messages through an SMTP server. It is safe for concurrent use.
type Mailer struct {
	client  sender
	from    string
	limiter *rate.Limiter
}

var _ mailer.Mailer = (*Mailer)(nil)

func tlsPolicy(s string) (mail.TLSPolicy, error) {
	switch strings.ToLower(s) {
	case "", "opportunistic":
		return mail.TLSOpportunistic, nil
	case "mandatory":
		return mail.TLSMandatory, nil
	case "none":
		return mail.NoTLS, nil
	default:
		return mail.NoTLS, fmt.Errorf("unknown tls policy %q", s)
	}
}

func limiter(sendsPerSecond float64) *rate.Limiter {
	if sendsPerSecond <= 0 {
		return rate.NewLimiter(rate.Inf, 0)
	}

	return rate.NewLimiter(rate.Limit(sendsPerSecond), 1)
}

// New creates a Mailer for the given relay.
func New(options Options) (*Mailer, error) {
	policy, err := tlsPolicy(options.TLSPolicy)
	if err != nil {
		return nil, err
	}

	opts := []mail.Option{
		mail.WithPort(options.Port),
		mail.WithTLSPolicy(policy),
	}
	if options.Timeout > 0 {
		opts = append(opts, mail.WithTimeout(options.Timeout))
	}
	if options.Username != "" {
		opts = append(opts,
			mail.WithSMTPAuth(mail.SMTPAuthPlain),
			mail.WithUsername(options.Username),
			mail.WithPassword(options.Password))
	}

	client, err := mail.NewClient(options.Host, opts...)
	if err != nil {
		return nil, fmt.Errorf("could not create smtp client: %w", err)
	}

	return newMailer(client, options.From, limiter(options.SendsPerSecond)), nil
}

func newMailer(client sender, from string, limiter *rate.Limiter) *Mailer {
	return &Mailer{client: client, from: from, limiter: limiter}
}

// BuildMessage converts msg into a MIME message sent from the given address.
func BuildMessage(from string, msg mailer.Message) (*mail.Msg, error) {
	m := mail.NewMsg()
	if err := m.From(from); err != nil {
		return nil, fmt.Errorf("could not set sender: %w", err)
	}
	if err := m.To(msg.To...); err != nil {
		return nil, fmt.Errorf("could not set recipients: %w", err)
	}
	m.Subject(msg.Subject)
	m.SetBodyString(mail.TypeTextPlain, msg.Text)
	if msg.HTML != "" {
		m.AddAlternativeString(mail.TypeTextHTML, msg.HTML)
	}

	return m, nil
}

// Send waits for the throttle and delivers msg.
func (m *Mailer) Send(ctx context.Context, msg mailer.Message) error {
	if len(msg.To) == 0 {
		return fmt.Errorf("message has no recipients")
	}
	built, err := BuildMessage(m.from, msg)
	if err != nil {
		return err
	}
	if err := m.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("could not wait for send slot: %w", err)
	}
	if err := m.client.DialAndSendWithContext(ctx, built); err != nil {
		return fmt.Errorf("could not send e-mail: %w", err)
	}

	return nil
}
