package validation

import (
	"strings"
	"unicode"

	"github.com/go-playground/locales/ar"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
)

const genericMessage = "قيمة غير صالحة"

// Arabic messages shown next to the form fields. {0} is the tag parameter.
var arMessages = map[string]string{
	"required": "هذا الحقل إلزامي",
	"notblank": "هذا الحقل إلزامي",
	"phone8":   "رقم الهاتف يجب أن يتكون من 8 أرقام بالضبط",
	"cin8":     "رقم بطاقة التعريف يجب أن يتكون من 8 أرقام",
	"oneof":    "القيمة غير مقبولة، القيم المسموح بها: {0}",
	"gtefield": "يجب أن يكون التاريخ مساويا أو لاحقا لـ {0}",
	"gte":      "يجب أن تكون القيمة أكبر من أو تساوي {0}",
	"lte":      "يجب أن تكون القيمة أصغر من أو تساوي {0}",
	"gt":       "يجب أن تكون القيمة أكبر من {0}",
	"min":      "القيمة أو الطول أقل من الحد الأدنى ({0})",
	"max":      "القيمة أو الطول أكبر من الحد الأقصى ({0})",
}

func newTranslator() ut.Translator {
	arabic := ar.New()
	uni := ut.New(arabic, arabic)
	trans, _ := uni.GetTranslator("ar")
	return trans
}

func registerTranslations(v *validator.Validate, trans ut.Translator) error {
	for tag, text := range arMessages {
		tag, text := tag, text
		err := v.RegisterTranslation(tag, trans,
			func(t ut.Translator) error { return t.Add(tag, text, true) },
			func(t ut.Translator, fe validator.FieldError) string {
				s, err := t.T(tag, paramLabel(fe))
				if err != nil || s == "" {
					return genericMessage
				}
				return s
			},
		)
		if err != nil {
			return err
		}
	}
	return nil
}

// fieldKey strips the root struct name from the namespace so nested errors
// read like "candidates[0].fullName".
func fieldKey(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.Index(ns, "."); i >= 0 {
		return ns[i+1:]
	}
	return fe.Field()
}

func paramLabel(fe validator.FieldError) string {
	switch fe.Tag() {
	case "oneof":
		return strings.Join(strings.Fields(fe.Param()), "، ")
	case "gtefield", "ltefield", "eqfield":
		return lowerFirst(fe.Param())
	}
	return fe.Param()
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	r := []rune(s)
	r[0] = unicode.ToLower(r[0])
	return string(r)
}
