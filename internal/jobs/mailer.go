package jobs

import (
	"fmt"
	"net/smtp"
	"strings"

	"eduplatform/config"
)

type MailSender interface {
	Send(to []string, subject, body string) error
}

var mailer MailSender = SMTPMailer{}

// SetMailer swaps the outbound mail transport (tests install a recorder).
func SetMailer(m MailSender) {
	mailer = m
}

type SMTPMailer struct{}

func NewSMTPMailer() SMTPMailer {
	return SMTPMailer{}
}

// cleanHeader strips CR/LF so values that originate from user input (course
// names, addresses) cannot smuggle extra headers into the message.
func cleanHeader(v string) string {
	v = strings.ReplaceAll(v, "\r", "")
	return strings.ReplaceAll(v, "\n", "")
}

func buildMessage(from string, to []string, subject, body string) []byte {
	clean := make([]string, 0, len(to))
	for _, addr := range to {
		clean = append(clean, cleanHeader(addr))
	}

	return []byte("Subject: " + cleanHeader(subject) + "\r\n" +
		"From: " + cleanHeader(from) + "\r\n" +
		"To: " + strings.Join(clean, ",") + "\r\n" +
		"Content-Type: text/plain; charset=UTF-8\r\n" +
		"\r\n" +
		body + "\r\n")
}

func (SMTPMailer) Send(to []string, subject, body string) error {
	from := config.SMTP_FROM
	auth := smtp.PlainAuth("", from, config.SMTP_PASSWORD, config.SMTP_HOST)

	addr := config.SMTP_HOST + ":" + config.SMTP_PORT
	if err := smtp.SendMail(addr, auth, from, to, buildMessage(from, to, subject, body)); err != nil {
		return fmt.Errorf("smtp send: %w", err)
	}
	return nil
}
