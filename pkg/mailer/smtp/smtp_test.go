package smtp_test

import (
	"context"
	"errors"
	"testing"
	"time"
	"travel/pkg/mailer"
	"travel/pkg/mailer/smtp"

	"github.com/stretchr/testify/require"
	"github.com/wneessen/go-mail"
	"golang.org/x/time/rate"
)

func TestBuildMessage(t *testing.T) {
	m, err := smtp.BuildMessage("noreply@example.com", mailer.Message{
		To:      []string{"guest@example.com"},
		Subject: "Booking Confirmation - Sea view",
		Text:    "Dear guest",
		HTML:    "<p>Dear guest</p>",
	})
	require.NoError(t, err)

	rcpts, err := m.GetRecipients()
	require.NoError(t, err)
	require.Len(t, rcpts, 1)
	to := m.GetTo()
	require.Len(t, to, 1)
	require.Equal(t, "guest@example.com", to[0].Address)
	require.Equal(t, []string{"Booking Confirmation - Sea view"}, m.GetGenHeader(mail.HeaderSubject))
}

func TestBuildMessage_InvalidAddress(t *testing.T) {
	_, err := smtp.BuildMessage("noreply@example.com", mailer.Message{To: []string{"not an address"}})
	require.Error(t, err)
}

func TestNew_UnknownTLSPolicy(t *testing.T) {
	_, err := smtp.New(smtp.Options{Host: "localhost", Port: 25, TLSPolicy: "sometimes"})
	require.Error(t, err)
}

func TestMailer_Send(t *testing.T) {
	var sent []*mail.Msg
	m := smtp.NewWithSender(func(_ context.Context, messages ...*mail.Msg) error {
		sent = append(sent, messages...)

		return nil
	}, "noreply@example.com", rate.NewLimiter(rate.Inf, 0))

	err := m.Send(context.Background(), mailer.Message{To: []string{"a@example.com"}, Subject: "hi", Text: "x"})
	require.NoError(t, err)
	require.Len(t, sent, 1)
}

func TestMailer_Send_NoRecipients(t *testing.T) {
	m := smtp.NewWithSender(func(context.Context, ...*mail.Msg) error {
		t.Fatal("must not send")

		return nil
	}, "noreply@example.com", rate.NewLimiter(rate.Inf, 0))

	require.Error(t, m.Send(context.Background(), mailer.Message{Subject: "hi"}))
}

func TestMailer_Send_Error(t *testing.T) {
	boom := errors.New("connection refused")
	m := smtp.NewWithSender(func(context.Context, ...*mail.Msg) error {
		return boom
	}, "noreply@example.com", rate.NewLimiter(rate.Inf, 0))

	err := m.Send(context.Background(), mailer.Message{To: []string{"a@example.com"}})
	require.ErrorIs(t, err, boom)
}

func TestMailer_Send_Throttled(t *testing.T) {
	m := smtp.NewWithSender(func(context.Context, ...*mail.Msg) error {
		return nil
	}, "noreply@example.com", rate.NewLimiter(rate.Every(time.Hour), 1))

	msg := mailer.Message{To: []string{"a@example.com"}}
	require.NoError(t, m.Send(context.Background(), msg))

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	require.Error(t, m.Send(ctx, msg))
}
