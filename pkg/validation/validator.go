package validation

import (
	"errors"
	"reflect"
	"strings"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"

	apperrors "association-console/pkg/errors"
	"association-console/pkg/metrics"
)

// CustomValidator wraps validator.Validate for Echo.
type CustomValidator struct {
	validator  *validator.Validate
	translator ut.Translator
}

// Validate implements echo.Validator. A failed check is returned as an
// *errors.ValidationError carrying Arabic per-field messages.
func (cv *CustomValidator) Validate(i interface{}) error {
	if err := cv.validator.Struct(i); err != nil {
		metrics.ValidationRejectionsTotal.WithLabelValues(formName(i)).Inc()
		return cv.Translate(err)
	}
	return nil
}

// Translate converts validator errors into a field -> message map. Other
// errors are returned unchanged.
func (cv *CustomValidator) Translate(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	fields := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		msg := fe.Translate(cv.translator)
		if msg == "" || msg == fe.Error() {
			msg = genericMessage
		}
		fields[fieldKey(fe)] = msg
	}
	return apperrors.NewValidationError(fields)
}

// New builds the validator with the custom rules and Arabic messages.
func New() *CustomValidator {
	v := validator.New()

	// Use JSON tag names for errors instead of Go struct names.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			name = strings.SplitN(fld.Tag.Get("form"), ",", 2)[0]
		}
		if name == "-" {
			return ""
		}
		return name
	})

	registerNullTypes(v)

	// The server must not start with a broken rule set.
	if err := registerRules(v); err != nil {
		panic("validation rules registration failed: " + err.Error())
	}

	trans := newTranslator()
	if err := registerTranslations(v, trans); err != nil {
		panic("validation translations registration failed: " + err.Error())
	}

	return &CustomValidator{validator: v, translator: trans}
}

func formName(i interface{}) string {
	t := reflect.TypeOf(i)
	for t != nil && t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	if t == nil {
		return "unknown"
	}
	return t.Name()
}

// FieldErrors returns the per-field messages carried by err, or nil.
func FieldErrors(err error) map[string]string {
	var verr *apperrors.ValidationError
	if errors.As(err, &verr) {
		return verr.Fields
	}
	return nil
}
