package mailer

import (
	"context"
	"travel/pkg/logger"

	"go.uber.org/zap"
)

// Log is a Mailer that writes messages to the context logger instead of
// delivering them. It is used when no SMTP host is configured.
type Log struct{}

var _ Mailer = Log{}

func (Log) Send(ctx context.Context, msg Message) error {
	logger.Info(ctx, "e-mail not delivered, no smtp host configured",
		zap.Strings("to", msg.To),
		zap.String("subject", msg.Subject),
		zap.String("body", msg.Text))

	return nil
}
