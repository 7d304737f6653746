package rekuest

import (
	"strings"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	enTranslations "github.com/go-playground/validator/v10/translations/en"
	idTranslations "github.com/go-playground/validator/v10/translations/id"
	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/andhikaputrab/vgsales-dashboard/internal/model"
	"github.com/andhikaputrab/vgsales-dashboard/internal/pkg/pgerr"
	"github.com/andhikaputrab/vgsales-dashboard/internal/util"
	"github.com/andhikaputrab/vgsales-dashboard/internal/util/i18n"
)

var Validate = util.NewValidator()

var customMessages = map[string]map[string]string{
	"en": {
		"metric":    "{0} must be one of " + metricList(),
		"dimension": "{0} must be one of " + dimensionList(),
	},
	"id": {
		"metric":    "{0} harus salah satu dari " + metricList(),
		"dimension": "{0} harus salah satu dari " + dimensionList(),
	},
}

func init() {
	var err error
	entr, _ := i18n.UT.GetTranslator("en")
	err = enTranslations.RegisterDefaultTranslations(Validate, entr)
	if err != nil {
		log.Warn().Err(err).Str("locale", "en").Msg("could not register translation")
	}

	idtr, _ := i18n.UT.GetTranslator("id")
	err = idTranslations.RegisterDefaultTranslations(Validate, idtr)
	if err != nil {
		log.Warn().Err(err).Str("locale", "id").Msg("could not register translation")
	}

	translators := map[string]ut.Translator{
		"en": entr,
		"id": idtr,
	}

	for l, t := range translators {
		for tag, text := range customMessages[l] {
			tag, text := tag, text
			err = Validate.RegisterTranslation(tag, t, func(ut ut.Translator) error {
				return ut.Add(tag, text, true)
			}, func(ut ut.Translator, fe validator.FieldError) string {
				t, _ := ut.T(tag, fe.Field())
				return t
			})
			if err != nil {
				log.Warn().Err(err).Str("locale", l).Str("tag", tag).Msg("could not register translation for custom validation")
			}
		}
	}
}

func metricList() string {
	names := make([]string, 0, len(model.Metrics))
	for _, m := range model.Metrics {
		names = append(names, string(m))
	}
	return strings.Join(names, ", ")
}

func dimensionList() string {
	names := make([]string, 0, len(model.Dimensions))
	for _, d := range model.Dimensions {
		names = append(names, string(d))
	}
	return strings.Join(names, ", ")
}

type ErrorResponse struct {
	Field     string `json:"field,omitempty"`
	Violation string `json:"violation"`
	Message   string `json:"message"`
}

func TranslatorFromCtx(ctx *fiber.Ctx) ut.Translator {
	if trans, ok := ctx.Locals(i18n.LocalsKeyTranslator).(ut.Translator); ok {
		return trans
	}
	return i18n.UT.GetFallback()
}

// translate translates errors into ErrorResponses
func translate(utt ut.Translator, ve validator.ValidationErrors) []*ErrorResponse {
	trans := make([]*ErrorResponse, 0, len(ve))

	for _, fe := range ve {
		trans = append(trans, &ErrorResponse{
			Field:     fe.Namespace(),
			Violation: fe.Tag(),
			Message:   fe.Translate(utt),
		})
	}

	return trans
}

func validateStruct(utt ut.Translator, s any) []*ErrorResponse {
	err := Validate.Struct(s)
	if err != nil {
		errs, ok := err.(validator.ValidationErrors)
		if !ok {
			panic(err)
		}
		return translate(utt, errs)
	}
	return nil
}

// ValidBody will decode the JSON body of *fiber.Ctx into dest and validate it using
// the validator singleton. If the validation passed it will return a nil, otherwise it
// will return an error. Notice that dest shall always be a pointer.
func ValidBody(ctx *fiber.Ctx, dest any) error {
	if err := json.Unmarshal(ctx.Body(), dest); err != nil {
		return pgerr.ErrInvalidReq.Msg("invalid request: %s", err)
	}

	return ValidStruct(ctx, dest)
}

func ValidStruct(ctx *fiber.Ctx, dest any) error {
	if err := validateStruct(TranslatorFromCtx(ctx), dest); err != nil {
		return pgerr.NewInvalidViolations(err)
	}

	return nil
}

// Valid validates dest outside of a request, reporting violations in the fallback language.
func Valid(dest any) error {
	if err := validateStruct(i18n.UT.GetFallback(), dest); err != nil {
		return pgerr.NewInvalidViolations(err)
	}

	return nil
}
