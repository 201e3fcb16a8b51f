package server

import (
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// Credentials is the validated field set shared by login and registration.
// Registration composes it with its extra fields rather than inheriting.
type Credentials struct {
	Username string `validate:"required,max=30"`
	Password string `validate:"required"`
}

type LoginForm struct {
	Credentials
}

type RegisterForm struct {
	Credentials
	ConfirmPassword string `validate:"required,eqcsfield=Credentials.Password"`
	LanguagePref    string `validate:"required"`
}

func parseLoginForm(r *http.Request) (*LoginForm, error) {
	if err := r.ParseForm(); err != nil {
		return nil, err
	}

	form := &LoginForm{
		Credentials: Credentials{
			Username: r.PostFormValue("username"),
			Password: r.PostFormValue("password"),
		},
	}

	return form, validate.Struct(form)
}

func parseRegisterForm(r *http.Request) (*RegisterForm, error) {
	if err := r.ParseForm(); err != nil {
		return nil, err
	}

	form := &RegisterForm{
		Credentials: Credentials{
			Username: r.PostFormValue("username"),
			Password: r.PostFormValue("password"),
		},
		ConfirmPassword: r.PostFormValue("confirm_password"),
		LanguagePref:    r.PostFormValue("language_pref"),
	}

	return form, validate.Struct(form)
}

// formErrorMessage maps a validation failure onto the message shown inline on
// the form.
func formErrorMessage(err error) string {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) || len(validationErrors) == 0 {
		return "invalid input"
	}

	fieldError := validationErrors[0]

	switch {
	case fieldError.Field() == "ConfirmPassword" && fieldError.Tag() == "eqcsfield":
		return "passwords do not match"
	case fieldError.Tag() == "required":
		return fieldError.Field() + " is required"
	case fieldError.Tag() == "max":
		return fieldError.Field() + " is too long"
	default:
		return "invalid input"
	}
}
