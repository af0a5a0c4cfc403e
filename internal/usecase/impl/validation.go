// Package impl contains the application-specific business rules implementations.
package impl

import (
	"reflect"
	"regexp"
	"strings"

	domainerrors "blog/internal/domain/errors"
	"blog/internal/usecase"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

// Field rules for the signup form.
var (
	usernamePattern = regexp.MustCompile(`^[a-zA-Z0-9_-]{3,20}$`)
	passwordPattern = regexp.MustCompile(`^.{3,20}$`)
	emailPattern    = regexp.MustCompile(`^[\S]+@[\S]+\.[\S]+$`)
)

// User-facing messages, one per failing field.
const (
	msgInvalidUsername  = "That's not a valid username."
	msgInvalidPassword  = "That wasn't a valid password."
	msgPasswordMismatch = "Your passwords didn't match."
	msgInvalidEmail     = "That's not a valid email."
	msgUserExists       = "That user already exists."
	msgInvalidLogin     = "Invalid login."
	msgPostIncomplete   = "Error: Subject and content are both required"
)

var shapeMessages = map[string]string{
	domainerrors.FieldUsername: msgInvalidUsername,
	domainerrors.FieldPassword: msgInvalidPassword,
	domainerrors.FieldEmail:    msgInvalidEmail,
}

// signUpShape is the part of the signup form checked by format alone.
type signUpShape struct {
	Username string `form:"username" validate:"username"`
	Password string `form:"password" validate:"password"`
	Email    string `form:"email" validate:"omitempty,basicemail"`
}

// newFormValidator registers the blog's field rules and reports failures
// under their form field names.
func newFormValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("form"), ",")
		if name == "" || name == "-" {
			return fld.Name
		}

		return name
	})

	mustRegisterPattern(v, "username", usernamePattern)
	mustRegisterPattern(v, "password", passwordPattern)
	mustRegisterPattern(v, "basicemail", emailPattern)

	return v
}

func mustRegisterPattern(v *validator.Validate, tag string, pattern *regexp.Regexp) {
	err := v.RegisterValidation(tag, func(fl validator.FieldLevel) bool {
		return pattern.MatchString(fl.Field().String())
	})
	if err != nil {
		panic(err)
	}
}

// validateSignUp runs every check that needs no storage and collects all failures.
func validateSignUp(v *validator.Validate, input *usecase.SignUpInput) domainerrors.ValidationErrors {
	errs := domainerrors.NewValidationErrors()

	err := v.Struct(&signUpShape{
		Username: input.Username,
		Password: input.Password,
		Email:    input.Email,
	})
	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) {
		for _, fe := range fieldErrs {
			if msg, ok := shapeMessages[fe.Field()]; ok {
				errs.Add(fe.Field(), domainerrors.KindShape, msg)
			}
		}
	}

	// A malformed password already has its own message.
	if !errs.Has(domainerrors.FieldPassword) && input.Password != input.Verify {
		errs.Add(domainerrors.FieldVerify, domainerrors.KindMismatch, msgPasswordMismatch)
	}

	return errs
}
