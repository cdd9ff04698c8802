package ports

import "context"

// Mail is one outbound message. HTML takes precedence over Text when both
// are set.
type Mail struct {
	To      []string
	CC      []string
	BCC     []string
	Subject string
	Text    string
	HTML    string
}

// MailSender delivers mail. Implementations live in infrastructure.
type MailSender interface {
	Send(ctx context.Context, mail Mail) error
}
