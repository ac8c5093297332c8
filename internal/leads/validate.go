package leads

import (
	"github.com/go-playground/validator/v10"
	"github.com/myrjola/droneconfigurator/internal/errors"
	"github.com/myrjola/droneconfigurator/internal/models"
	"strings"
)

var validate = validator.New()

// FieldErrors maps form field names to a message shown next to the field.
type FieldErrors map[string]string

// fieldMessages is keyed by struct field name.
var fieldMessages = map[string]struct {
	formField string
	message   string
}{
	"Name":           {formField: "name", message: "Введите имя"},
	"Company":        {formField: "company", message: "Введите название компании"},
	"Email":          {formField: "email", message: "Введите корректный email"},
	"Phone":          {formField: "phone", message: "Введите номер телефона"},
	"AdditionalInfo": {formField: "additionalInfo", message: "Слишком длинный текст"},
}

// NormalizeContact trims surrounding whitespace from every field.
func NormalizeContact(c models.Contact) models.Contact {
	return models.Contact{
		Name:           strings.TrimSpace(c.Name),
		Company:        strings.TrimSpace(c.Company),
		Email:          strings.TrimSpace(c.Email),
		Phone:          strings.TrimSpace(c.Phone),
		AdditionalInfo: strings.TrimSpace(c.AdditionalInfo),
	}
}

// ValidateContact returns nil when the contact can be submitted.
func ValidateContact(c models.Contact) (FieldErrors, error) {
	err := validate.Struct(c)
	if err == nil {
		return nil, nil
	}
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return nil, errors.Wrap(err, "validate contact")
	}
	fieldErrors := FieldErrors{}
	for _, fe := range validationErrors {
		m, ok := fieldMessages[fe.StructField()]
		if !ok {
			return nil, errors.New("no message for field " + fe.StructField())
		}
		fieldErrors[m.formField] = m.message
	}
	return fieldErrors, nil
}
