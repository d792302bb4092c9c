package validation

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const assessmentSchema = `{
  "type": "object",
  "required": ["submissionId", "responses"],
  "additionalProperties": false,
  "properties": {
    "submissionId": {"type": "string", "minLength": 1},
    "userId": {"type": "string"},
    "responses": {"type": "array", "minItems": 1, "items": {"type": ["number", "string", "null"]}},
    "variant": {"type": "string", "enum": ["standard", "hook"]}
  }
}`

func compileTestSchema(t *testing.T) *Schema {
	t.Helper()
	var doc map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(assessmentSchema), &doc))
	schema, err := Compile(doc)
	require.NoError(t, err)
	return schema
}

func TestSchemaValidate(t *testing.T) {
	schema := compileTestSchema(t)

	tests := []struct {
		name      string
		input     map[string]interface{}
		valid     bool
		wantField string
		wantCode  string
	}{
		{
			name:  "valid",
			input: map[string]interface{}{"submissionId": "s-1", "responses": []interface{}{1, "music", nil}},
			valid: true,
		},
		{
			name:      "missing responses",
			input:     map[string]interface{}{"submissionId": "s-1"},
			wantField: "responses",
			wantCode:  "REQUIRED_FIELD_MISSING",
		},
		{
			name:      "responses not an array",
			input:     map[string]interface{}{"submissionId": "s-1", "responses": "1,2,3"},
			wantField: "responses",
			wantCode:  "INVALID_TYPE",
		},
		{
			name:      "empty responses",
			input:     map[string]interface{}{"submissionId": "s-1", "responses": []interface{}{}},
			wantField: "responses",
			wantCode:  "MIN_ITEMS_VIOLATION",
		},
		{
			name:      "object response",
			input:     map[string]interface{}{"submissionId": "s-1", "responses": []interface{}{map[string]interface{}{"a": 1}}},
			wantField: "responses.0",
			wantCode:  "INVALID_TYPE",
		},
		{
			name:      "bad variant",
			input:     map[string]interface{}{"submissionId": "s-1", "responses": []interface{}{1}, "variant": "quick"},
			wantField: "variant",
			wantCode:  "INVALID_ENUM_VALUE",
		},
		{
			name:      "extra field",
			input:     map[string]interface{}{"submissionId": "s-1", "responses": []interface{}{1}, "score": 3},
			wantField: "score",
			wantCode:  "EXTRA_FIELD",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := schema.Validate(tt.input)
			assert.Equal(t, tt.valid, res.Valid)
			if tt.valid {
				assert.Empty(t, res.Errors)
				return
			}
			require.True(t, res.HasErrors(tt.wantField), "errors: %v", res.GetErrorMessages())
			assert.Equal(t, tt.wantCode, res.GetErrorsForField(tt.wantField)[0].Code)
		})
	}
}

func TestSchemaErrorMessages(t *testing.T) {
	res := compileTestSchema(t).Validate(map[string]interface{}{"responses": []interface{}{1}})
	assert.False(t, res.Valid)
	assert.Equal(t, []string{"submissionId: submissionId is required"}, res.GetErrorMessages())
}

func TestCompileInvalidSchema(t *testing.T) {
	_, err := Compile(map[string]interface{}{"type": 12})
	assert.ErrorContains(t, err, "invalid schema")
}

func TestGetErrorsForFieldIncludesNested(t *testing.T) {
	res := &ValidationResult{Errors: []ValidationError{
		{Field: "responses.3", Code: "INVALID_TYPE"},
		{Field: "responsesCount", Code: "INVALID_TYPE"},
		{Field: "variant", Code: "INVALID_ENUM_VALUE"},
	}}
	assert.Len(t, res.GetErrorsForField("responses"), 1)
	assert.False(t, res.HasErrors("responses"))
}

func TestValidateTaskType(t *testing.T) {
	assert.NoError(t, ValidateTaskType("score-riasec"))
	assert.NoError(t, ValidateTaskType("score-multiple-intelligence"))
	assert.Error(t, ValidateTaskType("Score_RIASEC"))
	assert.Error(t, ValidateTaskType("score-"))
	assert.Error(t, ValidateTaskType(""))
}
