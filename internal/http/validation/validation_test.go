package validation

import (
	"errors"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/require"
)

type contactInput struct {
	Name    string `json:"name" binding:"required" validate:"required"`
	Email   string `json:"email" binding:"required,email" validate:"required,email"`
	Message string `json:"message" binding:"required,min=10" validate:"required,min=10"`
}

func TestFromBindErrorMapsToJSONTags(t *testing.T) {
	v := validator.New()
	in := contactInput{Email: "not-an-email", Message: "court"}

	err := v.Struct(in)
	require.Error(t, err)

	fields := FromBindError(err, &in)
	require.Equal(t, "Ce champ est requis.", fields["name"])
	require.Equal(t, "Adresse email invalide.", fields["email"])
	require.Equal(t, "Minimum 10 caractères.", fields["message"])
}

func TestFromBindErrorNonValidatorError(t *testing.T) {
	fields := FromBindError(errors.New("unexpected EOF"), &contactInput{})

	require.Len(t, fields, 1)
	require.Equal(t, "Données de requête invalides.", fields["_"])
}
