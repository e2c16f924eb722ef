package models

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// Report violations under the json field name, not the Go field name.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// fieldMessages maps a json field name and the violated validator tag to the
// client-facing message. Both length bounds of the password collapse into one
// message.
var fieldMessages = map[string]map[string]string{
	"firstName": {
		"required": `"firstName" is required`,
		"min":      `Please enter a "firstName"`,
	},
	"lastName": {
		"required": `"lastName" is required`,
		"min":      `Please enter a "lastName"`,
	},
	"emailAddress": {
		"required": `"emailAddress" is required`,
		"email":    `Please Provide a valid "emailAddress"`,
	},
	"password": {
		"required": `"password" is required`,
		"min":      `"password" should be between 8 - 20 characters`,
		"max":      `"password" should be between 8 - 20 characters`,
	},
	"title": {
		"required": `"title" is required`,
	},
	"description": {
		"required": `"description" is required`,
	},
}

// validateRequest runs struct validation and translates every violation into
// its message, preserving struct field order.
func validateRequest(req any) []string {
	err := validate.Struct(req)
	if err == nil {
		return nil
	}

	violations, ok := err.(validator.ValidationErrors)
	if !ok {
		return []string{err.Error()}
	}

	msgs := make([]string, 0, len(violations))
	for _, fe := range violations {
		if m, ok := fieldMessages[fe.Field()][fe.Tag()]; ok {
			msgs = append(msgs, m)
			continue
		}
		msgs = append(msgs, fe.Error())
	}
	return msgs
}
