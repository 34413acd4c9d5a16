// Package validation wraps go-playground/validator with english messages and catalog tags.
package validation

import (
	"errors"
	"reflect"
	"regexp"
	"strings"
	"sync"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"
	"golang.org/x/text/language"

	apperrors "github.com/narwhalmedia/catalog/pkg/errors"
)

// SlugPattern matches lowercase words joined by single hyphens.
var SlugPattern = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)

// Validator holds a configured validator and its translator.
type Validator struct {
	validate   *validator.Validate
	translator ut.Translator
}

var (
	once     sync.Once
	instance *Validator
)

// Get returns the shared validator, building it on first use.
func Get() *Validator {
	once.Do(func() {
		instance = newValidator()
	})
	return instance
}

func newValidator() *Validator {
	enLoc := en.New()
	uni := ut.New(enLoc, enLoc)
	trans, _ := uni.GetTranslator("en")

	v := validator.New(validator.WithRequiredStructEnabled())

	// report json names so issues line up with payload fields
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		tag := fld.Tag.Get("json")
		if tag == "-" || tag == "" {
			return fld.Name
		}
		if idx := strings.Index(tag, ","); idx >= 0 {
			tag = tag[:idx]
		}
		return tag
	})

	_ = en_translations.RegisterDefaultTranslations(v, trans)

	_ = v.RegisterValidation("slug", func(fl validator.FieldLevel) bool {
		return SlugPattern.MatchString(fl.Field().String())
	})
	_ = v.RegisterValidation("iso6391", func(fl validator.FieldLevel) bool {
		return IsLanguageCode(fl.Field().String())
	})

	registerMessage(v, trans, "slug", "{0} must contain only lowercase letters, numbers and single hyphens")
	registerMessage(v, trans, "iso6391", "{0} must be a valid ISO-639-1 language code")
	registerMessage(v, trans, "min", "{0} must be at least {1} characters")
	registerMessage(v, trans, "max", "{0} must be at most {1} characters")

	return &Validator{validate: v, translator: trans}
}

// Struct validates s and returns one issue per failing field, or nil.
func (v *Validator) Struct(s interface{}) []apperrors.Issue {
	err := v.validate.Struct(s)
	if err == nil {
		return nil
	}

	var invalid *validator.InvalidValidationError
	if errors.As(err, &invalid) {
		return []apperrors.Issue{{Message: invalid.Error()}}
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []apperrors.Issue{{Message: err.Error()}}
	}

	issues := make([]apperrors.Issue, 0, len(verrs))
	for _, fe := range verrs {
		issues = append(issues, apperrors.Issue{
			Field:   fieldPath(fe),
			Message: fe.Translate(v.translator),
		})
	}
	return issues
}

// Var validates a single value against tag and reports it under field.
func (v *Validator) Var(field string, value interface{}, tag string) []apperrors.Issue {
	err := v.validate.Var(value, tag)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []apperrors.Issue{{Field: field, Message: err.Error()}}
	}
	issues := make([]apperrors.Issue, 0, len(verrs))
	for _, fe := range verrs {
		msg := fe.Translate(v.translator)
		// Var has no field name to substitute
		msg = strings.TrimSpace(strings.TrimPrefix(msg, fe.Field()))
		issues = append(issues, apperrors.Issue{Field: field, Message: msg})
	}
	return issues
}

// IsLanguageCode reports whether code is a two-letter ISO-639-1 code.
func IsLanguageCode(code string) bool {
	if len(code) != 2 || strings.ToLower(code) != code {
		return false
	}
	base, err := language.ParseBase(code)
	if err != nil {
		return false
	}
	return base.String() == code
}

// fieldPath drops the root struct name from the namespace.
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if idx := strings.Index(ns, "."); idx >= 0 {
		return ns[idx+1:]
	}
	return fe.Field()
}

func registerMessage(v *validator.Validate, trans ut.Translator, tag, text string) {
	_ = v.RegisterTranslation(tag, trans,
		func(ut ut.Translator) error {
			return ut.Add(tag, text, true)
		},
		func(ut ut.Translator, fe validator.FieldError) string {
			msg, _ := ut.T(tag, fe.Field(), fe.Param())
			return msg
		},
	)
}
