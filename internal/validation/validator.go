// Package validation checks GraphQL mutation inputs before they reach storage.
package validation

import (
	"errors"
	"reflect"
	"regexp"
	"strings"

	"blog-api/internal/apperror"

	"github.com/go-playground/validator/v10"
)

var slugPattern = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)

type Validator struct {
	validate *validator.Validate
}

func New() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})

	// Registration of a static rule on a fresh instance cannot fail.
	_ = v.RegisterValidation("slug", func(fl validator.FieldLevel) bool {
		return IsSlug(fl.Field().String())
	})

	v.RegisterStructValidation(registerRules, RegisterInput{})

	return &Validator{validate: v}
}

func IsSlug(s string) bool {
	return slugPattern.MatchString(s)
}

// Struct validates input and returns *apperror.ValidationError on failure.
func (v *Validator) Struct(input interface{}) error {
	err := v.validate.Struct(input)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return apperror.Internal("validation failed", err)
	}

	issues := make([]apperror.Issue, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		issues = append(issues, toIssue(fe))
	}
	return apperror.NewValidation(issues...)
}

func registerRules(sl validator.StructLevel) {
	in := sl.Current().Interface().(RegisterInput)

	if in.ConfirmPassword != in.Password {
		sl.ReportError(in.ConfirmPassword, "confirmPassword", "ConfirmPassword", "eqfield", MessagePasswordMismatch)
	}

	if missing := PasswordComplexity(in.Password); len(missing) > 0 {
		sl.ReportError(in.Password, "password", "Password", "complexity", complexityMessage(missing))
	}
}

func toIssue(fe validator.FieldError) apperror.Issue {
	path := strings.Split(fe.Namespace(), ".")
	structName := path[0]
	if len(path) > 1 {
		path = path[1:]
	}

	code, ok := codes[fe.Tag()]
	if !ok {
		code = CodeCustom
	}

	return apperror.Issue{
		Code:    code,
		Path:    path,
		Message: message(structName, fe),
	}
}

func message(structName string, fe validator.FieldError) string {
	switch fe.Tag() {
	case "eqfield", "complexity":
		return fe.Param()
	}
	if msg, ok := messages[structName+"."+fe.Field()+"|"+fe.Tag()]; ok {
		return msg
	}
	if msg, ok := fallbacks[fe.Tag()]; ok {
		return msg
	}
	return "Invalid input"
}
