package i18n

import (
	"github.com/go-playground/locales/en"
	"github.com/go-playground/locales/id"
	ut "github.com/go-playground/universal-translator"
)

const LocalsKeyTranslator = "T"

// UT falls back to English. Indonesian is offered for the dashboard's original audience.
var UT = ut.New(en.New(), en.New(), id.New())
