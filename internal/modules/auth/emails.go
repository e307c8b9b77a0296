package auth

func buildResetPasswordEmail(resetURL string) (html, text string) {
	text = "Bonjour,\n\n" +
		"Vous avez demandé la réinitialisation de votre mot de passe.\n" +
		"Cliquez sur ce lien pour choisir un nouveau mot de passe (valable 1 heure) :\n\n" +
		resetURL + "\n\n" +
		"Si vous n'êtes pas à l'origine de cette demande, ignorez cet email.\n\n" +
		"L'équipe Jana Distrib"

	html = `
<html>
  <body style="font-family: sans-serif;">
    <h2>Réinitialisation de mot de passe</h2>
    <p>Bonjour,</p>
    <p>Vous avez demandé la réinitialisation de votre mot de passe.</p>
    <p><a href="` + resetURL + `">Cliquez ici pour choisir un nouveau mot de passe</a></p>
    <p>Ce lien expire dans 1 heure.</p>
    <p>Si vous n'êtes pas à l'origine de cette demande, ignorez cet email.</p>
    <p>L'équipe Jana Distrib</p>
  </body>
</html>
`
	return html, text
}
