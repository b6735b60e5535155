// Package mailer defines outgoing e-mail delivery.
package mailer

import "context"

// Message is a single e-mail. HTML is optional; when set it is sent as an
// alternative to Text.
type Message struct {
	To      []string
	Subject string
	Text    string
	HTML    string
}

// Mailer delivers messages.
//
//go:generate mockgen -package mockmailer -source=interface.go -destination=mock/mockmailer.go *
type Mailer interface {
	Send(ctx context.Context, msg Message) error
}
