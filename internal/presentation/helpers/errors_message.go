package helpers

import (
	"strings"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"
)

var translator ut.Translator

func init() {
	eng := en.New()
	translator, _ = ut.New(eng, eng).GetTranslator("en")
}

// GetErrorMessages renders validation failures as a single comma separated
// line suitable for an ErrorResponse body.
func GetErrorMessages(validate *validator.Validate, errs error) string {
	validationErrs, ok := errs.(validator.ValidationErrors)
	if !ok {
		return errs.Error()
	}

	en_translations.RegisterDefaultTranslations(validate, translator)

	messages := make([]string, 0, len(validationErrs))
	for _, e := range validationErrs {
		messages = append(messages, e.Translate(translator))
	}
	return strings.Join(messages, ", ")
}
