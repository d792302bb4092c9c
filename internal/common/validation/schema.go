package validation

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

const rootField = "(root)"

type ValidationResult struct {
	Valid  bool              `json:"valid"`
	Errors []ValidationError `json:"errors,omitempty"`
}

type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
}

// Schema is a compiled JSON schema that can validate many documents.
type Schema struct {
	compiled *gojsonschema.Schema
}

// Compile parses a JSON schema given as a decoded document (map or struct).
func Compile(schema interface{}) (*Schema, error) {
	compiled, err := gojsonschema.NewSchema(gojsonschema.NewGoLoader(schema))
	if err != nil {
		return nil, fmt.Errorf("invalid schema: %w", err)
	}
	return &Schema{compiled: compiled}, nil
}

// Validate checks a decoded document against the schema.
func (s *Schema) Validate(input interface{}) *ValidationResult {
	result, err := s.compiled.Validate(gojsonschema.NewGoLoader(input))
	if err != nil {
		return &ValidationResult{
			Valid: false,
			Errors: []ValidationError{{
				Field:   rootField,
				Message: err.Error(),
				Code:    "UNREADABLE_DOCUMENT",
			}},
		}
	}
	return toValidationResult(result)
}

func toValidationResult(result *gojsonschema.Result) *ValidationResult {
	errors := make([]ValidationError, 0, len(result.Errors()))
	for _, desc := range result.Errors() {
		errors = append(errors, ValidationError{
			Field:   fieldOf(desc),
			Message: desc.Description(),
			Code:    codeOf(desc.Type()),
		})
	}
	return &ValidationResult{
		Valid:  result.Valid(),
		Errors: errors,
	}
}

// fieldOf reports the offending property path. Required and additional-property
// errors are raised on the parent object, so the property name is appended.
func fieldOf(desc gojsonschema.ResultError) string {
	field := desc.Field()
	switch desc.Type() {
	case "required", "additional_property_not_allowed":
		if prop, ok := desc.Details()["property"].(string); ok && prop != "" {
			if field == "" || field == rootField {
				return prop
			}
			return field + "." + prop
		}
	}
	if field == "" {
		return rootField
	}
	return field
}

func codeOf(errorType string) string {
	switch errorType {
	case "required":
		return "REQUIRED_FIELD_MISSING"
	case "invalid_type":
		return "INVALID_TYPE"
	case "enum":
		return "INVALID_ENUM_VALUE"
	case "additional_property_not_allowed":
		return "EXTRA_FIELD"
	case "number_gte", "number_gt":
		return "MINIMUM_VIOLATION"
	case "number_lte", "number_lt":
		return "MAXIMUM_VIOLATION"
	case "string_gte":
		return "MIN_LENGTH_VIOLATION"
	case "string_lte":
		return "MAX_LENGTH_VIOLATION"
	case "array_min_items":
		return "MIN_ITEMS_VIOLATION"
	case "pattern":
		return "PATTERN_MISMATCH"
	default:
		return strings.ToUpper(errorType)
	}
}

var taskTypePattern = regexp.MustCompile(`^[a-z]+(-[a-z]+)*$`)

// ValidateTaskType validates a task type follows the kebab-case naming convention.
func ValidateTaskType(taskType string) error {
	if !taskTypePattern.MatchString(taskType) {
		return fmt.Errorf("task type must be kebab-case (e.g. score-riasec), got %q", taskType)
	}
	return nil
}

// GetErrorMessages returns a simple list of error messages
func (vr *ValidationResult) GetErrorMessages() []string {
	messages := make([]string, len(vr.Errors))
	for i, err := range vr.Errors {
		messages[i] = fmt.Sprintf("%s: %s", err.Field, err.Message)
	}
	return messages
}

// HasErrors checks if validation has errors for specific field
func (vr *ValidationResult) HasErrors(field string) bool {
	for _, err := range vr.Errors {
		if err.Field == field {
			return true
		}
	}
	return false
}

// GetErrorsForField returns errors for a specific field
func (vr *ValidationResult) GetErrorsForField(field string) []ValidationError {
	var fieldErrors []ValidationError
	for _, err := range vr.Errors {
		if err.Field == field || strings.HasPrefix(err.Field, field+".") {
			fieldErrors = append(fieldErrors, err)
		}
	}
	return fieldErrors
}
