package validator

import (
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

// studentIDPattern matches school-issued IDs like 2025-1-00001.
var studentIDPattern = regexp.MustCompile(`^\d{4}-\d-\d{5}$`)

// FieldErrors maps a request field to its validation messages. It implements
// error so usecases can report uniqueness failures through the same 422 path
// as struct-tag validation.
type FieldErrors map[string][]string

func (e FieldErrors) Error() string {
	return "validation failed"
}

func (e FieldErrors) Add(field, message string) {
	e[field] = append(e[field], message)
}

type CustomValidator struct {
	validator *validator.Validate
}

func NewValidator() *CustomValidator {
	v := validator.New()

	// Report fields by their json name so error keys match the wire format.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	v.RegisterValidation("student_id", func(fl validator.FieldLevel) bool {
		return studentIDPattern.MatchString(fl.Field().String())
	})

	return &CustomValidator{validator: v}
}

func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

// FormatValidationErrors converts validator.ValidationErrors into the
// field -> messages structure used by 422 responses.
func (cv *CustomValidator) FormatValidationErrors(err error) FieldErrors {
	errors := make(FieldErrors)

	if validationErrors, ok := err.(validator.ValidationErrors); ok {
		for _, e := range validationErrors {
			field := e.Field()
			label := strings.ReplaceAll(field, "_", " ")
			switch e.Tag() {
			case "required", "required_if", "required_with":
				errors.Add(field, "The "+label+" field is required.")
			case "email":
				errors.Add(field, "The "+label+" must be a valid email address.")
			case "min":
				errors.Add(field, "The "+label+" must be at least "+e.Param()+" characters.")
			case "max":
				errors.Add(field, "The "+label+" may not be greater than "+e.Param()+" characters.")
			case "oneof":
				errors.Add(field, "The selected "+label+" is invalid.")
			case "eqfield":
				errors.Add(field, "The "+label+" does not match.")
			case "datetime":
				errors.Add(field, "The "+label+" is not a valid date.")
			case "student_id":
				errors.Add(field, "The "+label+" format is invalid.")
			default:
				errors.Add(field, "The "+label+" is invalid.")
			}
		}
	}

	return errors
}
