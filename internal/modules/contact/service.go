package contact

import (
	"context"
	"strings"
	"time"

	"github.com/Neruaka/jana-distrib-ecommerce/internal/mailer"
)

// Message is a validated contact or quote-request submission. The storefront
// cart posts its quote requests here with the cart summary in Body.
type Message struct {
	Name    string
	Email   string
	Subject string
	Body    string
}

type Service struct {
	mail         mailer.Service
	contactEmail string // shop inbox
	from         string
	fromName     string
}

func NewService(mail mailer.Service, contactEmail, from, fromName string) *Service {
	return &Service{
		mail:         mail,
		contactEmail: contactEmail,
		from:         from,
		fromName:     fromName,
	}
}

// Send delivers the message to the shop, then a confirmation to the sender.
// The confirmation is best effort: the shop copy is the one that matters.
func (s *Service) Send(ctx context.Context, m Message) error {
	notif := mailer.Email{
		FromName: s.fromName,
		From:     s.from,
		To:       []string{s.contactEmail},
		Subject:  "[Jana Distrib] " + m.Subject,
		HTMLBody: buildNotificationHTML(m),
		TextBody: buildNotificationText(m),
		Headers:  map[string]string{"Reply-To": m.Email},
	}
	if err := s.mail.Send(ctx, notif); err != nil {
		return err
	}

	confirm := mailer.Email{
		FromName: s.fromName,
		From:     s.from,
		To:       []string{m.Email},
		Subject:  "Votre message a bien été reçu - Jana Distrib",
		HTMLBody: buildConfirmationHTML(m),
		TextBody: buildConfirmationText(m),
	}
	_ = s.mail.Send(ctx, confirm)

	return nil
}

func buildNotificationText(m Message) string {
	var b strings.Builder
	b.WriteString("Nouveau message de contact\n\n")
	b.WriteString("Nom : " + m.Name + "\n")
	b.WriteString("Email : " + m.Email + "\n")
	b.WriteString("Sujet : " + m.Subject + "\n")
	b.WriteString("Date : " + time.Now().Format("02/01/2006 15:04") + "\n\n")
	b.WriteString(m.Body + "\n")
	return b.String()
}

func buildNotificationHTML(m Message) string {
	body := strings.ReplaceAll(htmlEscape(m.Body), "\n", "<br>")
	return `
<html>
  <body style="font-family: sans-serif;">
    <h2>Nouveau message de contact</h2>
    <p><strong>Nom :</strong> ` + htmlEscape(m.Name) + `</p>
    <p><strong>Email :</strong> ` + htmlEscape(m.Email) + `</p>
    <p><strong>Sujet :</strong> ` + htmlEscape(m.Subject) + `</p>
    <p><strong>Date :</strong> ` + time.Now().Format("02/01/2006 15:04") + `</p>
    <hr>
    <p>` + body + `</p>
    <p style="color:#666;font-size:12px;">Message envoyé depuis le site Jana Distrib. Répondre directement à : ` + htmlEscape(m.Email) + `</p>
  </body>
</html>
`
}

func buildConfirmationText(m Message) string {
	return "Bonjour " + m.Name + ",\n\n" +
		"Nous avons bien reçu votre message concernant : " + m.Subject + "\n" +
		"Notre équipe vous répondra dans les plus brefs délais.\n\n" +
		"Merci de nous avoir contactés !\n\n" +
		"Cordialement,\nL'équipe Jana Distrib"
}

func buildConfirmationHTML(m Message) string {
	return `
<html>
  <body style="font-family: sans-serif;">
    <h2>Message reçu</h2>
    <p>Bonjour <strong>` + htmlEscape(m.Name) + `</strong>,</p>
    <p>Nous avons bien reçu votre message concernant : <strong>` + htmlEscape(m.Subject) + `</strong></p>
    <p>Notre équipe vous répondra dans les plus brefs délais.</p>
    <p>Merci de nous avoir contactés !</p>
    <p>Cordialement,<br>L'équipe Jana Distrib</p>
  </body>
</html>
`
}

func htmlEscape(s string) string {
	r := strings.NewReplacer(
		"&", "&amp;",
		"<", "&lt;",
		">", "&gt;",
		`"`, "&quot;",
	)
	return r.Replace(s)
}
