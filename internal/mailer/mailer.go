package mailer

import "context"

type Service interface {
	Send(ctx context.Context, e Email) error
}

type Email struct {
	FromName string // optional: "Jana Distrib"
	From     string // required: "no-reply@janadistrib.fr"

	To []string

	Subject string

	TextBody string
	HTMLBody string

	Headers map[string]string // optional extra headers (Reply-To, ...)
}
