package validation

import (
	"reflect"
	"strings"
	"sync"

	"cardcheck/internal/creditcard"

	"github.com/go-playground/validator/v10"
)

var (
	structValidator *validator.Validate
	once            sync.Once
)

// Struct returns the shared go-playground validator with the card tags
// registered:
//
//	luhn        string passes creditcard.IsValid
//	cardnetwork string classifies to a known card network
func Struct() *validator.Validate {
	once.Do(func() {
		v := validator.New(validator.WithRequiredStructEnabled())
		v.RegisterTagNameFunc(jsonFieldName)
		_ = v.RegisterValidation("luhn", func(fl validator.FieldLevel) bool {
			return creditcard.IsValid(fl.Field().String())
		})
		_ = v.RegisterValidation("cardnetwork", func(fl validator.FieldLevel) bool {
			return creditcard.DetermineCardType(fl.Field().String()).IsNetwork()
		})
		structValidator = v
	})
	return structValidator
}

// ValidateStruct runs the struct tags of s and returns field errors keyed by
// JSON field name, or nil when s is valid.
func ValidateStruct(s interface{}) map[string]string {
	err := Struct().Struct(s)
	if err == nil {
		return nil
	}

	errs, ok := err.(validator.ValidationErrors)
	if !ok {
		return map[string]string{"_": err.Error()}
	}

	out := make(map[string]string, len(errs))
	for _, fe := range errs {
		out[fe.Field()] = message(fe)
	}
	return out
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "luhn":
		return MsgInvalidCardNumber
	case "cardnetwork":
		return MsgUnsupportedNetwork
	case "numeric", "number":
		return MsgNotDigits
	case "min":
		return "must be at least " + fe.Param()
	case "max":
		return "must be at most " + fe.Param()
	case "len":
		return "must have length " + fe.Param()
	case "dive":
		return "is invalid"
	default:
		return "failed " + fe.Tag() + " validation"
	}
}

func jsonFieldName(f reflect.StructField) string {
	name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
	if name == "-" {
		return ""
	}
	if name == "" {
		return f.Name
	}
	return name
}
