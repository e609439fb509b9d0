// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package mail delivers transactional email over SMTP.

The shop sends two kinds of mail: password reset codes to account holders and
purchase requests to suppliers. Both go through the [Sender] interface so the
services can be tested without a mail server.
*/
package mail

import (
	"context"
	"fmt"
	"log/slog"

	"gopkg.in/gomail.v2"
)

// Message is a single outbound email.
type Message struct {
	To       string
	Subject  string
	TextBody string
	HTMLBody string
}

// Sender delivers a [Message].
type Sender interface {
	Send(ctx context.Context, message Message) error
}

// SMTPSender implements [Sender] with an authenticated SMTP submission dialer.
//
// A new connection is opened per message; the volume here does not justify a
// long-lived daemon connection.
type SMTPSender struct {
	dialer *gomail.Dialer
	from   string
	logger *slog.Logger
}

// NewSMTPSender creates a sender that authenticates as username and uses it
// as the From address.
func NewSMTPSender(host string, port int, username, password string, logger *slog.Logger) *SMTPSender {
	return &SMTPSender{
		dialer: gomail.NewDialer(host, port, username, password),
		from:   username,
		logger: logger,
	}
}

// Send delivers the message. It returns early when ctx is already done.
func (sender *SMTPSender) Send(ctx context.Context, message Message) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("mail_send_cancelled: %w", err)
	}

	envelope := gomail.NewMessage()
	envelope.SetHeader("From", sender.from)
	envelope.SetHeader("To", message.To)
	envelope.SetHeader("Subject", message.Subject)
	envelope.SetBody("text/plain", message.TextBody)
	if message.HTMLBody != "" {
		envelope.AddAlternative("text/html", message.HTMLBody)
	}

	if err := sender.dialer.DialAndSend(envelope); err != nil {
		return fmt.Errorf("mail_send_failed: %w", err)
	}

	sender.logger.InfoContext(ctx, "mail_sent", slog.String("subject", message.Subject))
	return nil
}
