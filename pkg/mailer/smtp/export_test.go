package smtp

import (
	"context"

	"github.com/wneessen/go-mail"
	"golang.org/x/time/rate"
)

type SenderFunc func(ctx context.Context, messages ...*mail.Msg) error

func (f SenderFunc) DialAndSendWithContext(ctx context.Context, messages ...*mail.Msg) error {
	return f(ctx, messages...)
}

func NewWithSender(s SenderFunc, from string, l *rate.Limiter) *Mailer {
	return newMailer(s, from, l)
}
