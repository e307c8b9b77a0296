package contact

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Neruaka/jana-distrib-ecommerce/internal/mailer"
)

func sampleMessage() Message {
	return Message{
		Name:    "Marie Dupont",
		Email:   "marie@example.fr",
		Subject: "Demande de devis - Panier de Marie Dupont",
		Body:    "Bonjour,\n3 x Tomates grappe\n1 x Huile d'olive 1L",
	}
}

func TestSendDeliversNotificationAndConfirmation(t *testing.T) {
	mock := &mailer.Mock{}
	svc := NewService(mock, "contact@janadistrib.fr", "noreply@janadistrib.fr", "Jana Distrib")

	require.NoError(t, svc.Send(context.Background(), sampleMessage()))
	require.Len(t, mock.Sent, 2)

	notif := mock.Sent[0]
	require.Equal(t, []string{"contact@janadistrib.fr"}, notif.To)
	require.Equal(t, "[Jana Distrib] Demande de devis - Panier de Marie Dupont", notif.Subject)
	require.Equal(t, "marie@example.fr", notif.Headers["Reply-To"])
	require.Contains(t, notif.TextBody, "Marie Dupont")
	require.Contains(t, notif.TextBody, "3 x Tomates grappe")

	confirm := mock.Sent[1]
	require.Equal(t, []string{"marie@example.fr"}, confirm.To)
	require.Equal(t, "Votre message a bien été reçu - Jana Distrib", confirm.Subject)
	require.Empty(t, confirm.Headers)
}

func TestSendEscapesHTMLInBodies(t *testing.T) {
	mock := &mailer.Mock{}
	svc := NewService(mock, "contact@janadistrib.fr", "noreply@janadistrib.fr", "Jana Distrib")

	m := sampleMessage()
	m.Name = `<script>alert("x")</script>`
	require.NoError(t, svc.Send(context.Background(), m))

	require.NotContains(t, mock.Sent[0].HTMLBody, "<script>")
	require.Contains(t, mock.Sent[0].HTMLBody, "&lt;script&gt;")
}

func TestSendNotificationFailurePropagates(t *testing.T) {
	mock := &mailer.Mock{Err: errors.New("smtp down")}
	svc := NewService(mock, "contact@janadistrib.fr", "noreply@janadistrib.fr", "Jana Distrib")

	require.Error(t, svc.Send(context.Background(), sampleMessage()))
	require.Empty(t, mock.Sent)
}

// failsAfter delivers the first n emails and errors on the rest.
type failsAfter struct {
	n    int
	sent []mailer.Email
}

func (f *failsAfter) Send(ctx context.Context, e mailer.Email) error {
	if len(f.sent) >= f.n {
		return errors.New("smtp down")
	}
	f.sent = append(f.sent, e)
	return nil
}

func TestSendConfirmationFailureIsSwallowed(t *testing.T) {
	m := &failsAfter{n: 1}
	svc := NewService(m, "contact@janadistrib.fr", "noreply@janadistrib.fr", "Jana Distrib")

	require.NoError(t, svc.Send(context.Background(), sampleMessage()))
	require.Len(t, m.sent, 1)
	require.Equal(t, []string{"contact@janadistrib.fr"}, m.sent[0].To)
}
