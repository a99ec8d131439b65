package utils

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

func ValidateStruct(s any) error {
	return validate.Struct(s)
}

// FirstValidationError คืนข้อความของ field แรกที่ validate ไม่ผ่าน
// รูปแบบ "field: message" เหมือนเดิม
func FirstValidationError(err error) string {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) || len(validationErrors) == 0 {
		return err.Error()
	}

	fieldError := validationErrors[0]
	field := lowerFirst(fieldError.Field())

	switch fieldError.Tag() {
	case "required":
		return fmt.Sprintf("%s: is required", field)
	case "email":
		return fmt.Sprintf("%s: must be a valid email address", field)
	case "min":
		if fieldError.Kind() == reflect.String {
			return fmt.Sprintf("%s: must be at least %s characters", field, fieldError.Param())
		}
		return fmt.Sprintf("%s: must be at least %s", field, fieldError.Param())
	case "max":
		if fieldError.Kind() == reflect.String {
			return fmt.Sprintf("%s: must be at most %s characters", field, fieldError.Param())
		}
		return fmt.Sprintf("%s: must be at most %s", field, fieldError.Param())
	case "oneof":
		return fmt.Sprintf("%s: must be one of [%s]", field, strings.ReplaceAll(fieldError.Param(), " ", ", "))
	}
	return fmt.Sprintf("%s: is invalid", field)
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	runes := []rune(s)
	runes[0] = unicode.ToLower(runes[0])
	return string(runes)
}
