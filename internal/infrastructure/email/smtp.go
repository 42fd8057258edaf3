package email

import (
	"context"
	"fmt"
	"net/smtp"
	"strings"
)

// Message is a single outbound email. Recipients go in Bcc only so that
// follower addresses are never exposed to each other.
type Message struct {
	Subject string
	Body    string
	Bcc     []string
}

// Sender delivers messages best-effort; callers decide whether a failure
// matters.
type Sender interface {
	Send(ctx context.Context, msg Message) error
}

type smtpSender struct {
	addr string
	from string
}

// NewSMTPSender returns a Sender backed by a plain SMTP relay.
func NewSMTPSender(host, port, from string) Sender {
	return &smtpSender{
		addr: host + ":" + port,
		from: from,
	}
}

// Send delivers one message with every recipient in the bcc field. A message
// missing its subject, body, or recipients is dropped silently rather than
// treated as an error.
func (s *smtpSender) Send(ctx context.Context, msg Message) error {
	if msg.Subject == "" || msg.Body == "" || len(msg.Bcc) == 0 {
		return nil
	}

	return smtp.SendMail(s.addr, nil, s.from, msg.Bcc, buildPayload(s.from, msg))
}

// buildPayload assembles the RFC 5322 payload. Bcc recipients are passed to
// the SMTP envelope only and never appear in the headers.
func buildPayload(from string, msg Message) []byte {
	var b strings.Builder

	fmt.Fprintf(&b, "From: %s\r\n", from)
	fmt.Fprintf(&b, "Subject: %s\r\n", msg.Subject)
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/plain; charset=\"utf-8\"\r\n")
	b.WriteString("\r\n")
	b.WriteString(msg.Body)

	return []byte(b.String())
}
