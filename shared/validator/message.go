package validator

import (
	"errors"
	"strings"

	val "github.com/go-playground/validator/v10"
)

const violationSeparator = "; "

var templates = map[string]string{
	"required":    "{field} is required",
	"email":       "{field} must be a valid email address",
	"enum":        "{field} has an unsupported value",
	"oneof":       "{field} must be one of {param}",
	"datetime":    "{field} must match the format {param}",
	"gtfield":     "{field} must be after {param}",
	"dmin":        "{field} must be at least {param}",
	"gt":          "{field} must be greater than {param}",
	"gte":         "{field} must be greater than or equal to {param}",
	"min":         "{field} must be greater than or equal to {param}",
	"lte":         "{field} must be less than or equal to {param}",
	"max":         "{field} must be less than or equal to {param}",
	"len":         "{field} must be exactly {param} characters long",
	"alphanum":    "{field} must contain only letters and digits",
	"unique":      "{field} must not repeat {param}",
	"mimetypes":   "{field} must be one of {param}",
	"maxfilesize": "{field} must not exceed {param} MB",
}

// message turns validation errors into one line for the API client, one clause
// per violated field. Tags without a template fall back to the library text.
func message(err error) string {
	var violations val.ValidationErrors
	if !errors.As(err, &violations) {
		return err.Error()
	}

	lines := make([]string, 0, len(violations))

	for _, violation := range violations {
		template, ok := templates[violation.Tag()]
		if !ok {
			lines = append(lines, violation.Error())

			continue
		}

		lines = append(lines, strings.NewReplacer(
			"{field}", violation.Field(),
			"{param}", violation.Param(),
		).Replace(template))
	}

	return strings.Join(lines, violationSeparator)
}
