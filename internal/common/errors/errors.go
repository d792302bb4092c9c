// Package errors provides standardized error handling for BPMN workflow integration.
package errors

import (
	stderrors "errors"
	"fmt"
	"strings"
	"time"
)

// ==========================
// 1. Standard Error Types
// ==========================

// ErrorCode represents standardized internal error codes.
type ErrorCode string

// Assessment job errors.
const (
	ErrCodeParseError             ErrorCode = "PARSE_ERROR"
	ErrCodeAssessmentInputInvalid ErrorCode = "ASSESSMENT_INPUT_INVALID"
	ErrCodeUnknownInstrument      ErrorCode = "UNKNOWN_INSTRUMENT"
	ErrCodeScoringTimeout         ErrorCode = "SCORING_TIMEOUT"
	ErrCodeJobCompletionFailed    ErrorCode = "JOB_COMPLETION_FAILED"
	ErrCodeInternal               ErrorCode = "INTERNAL_ERROR"
)

// Broker errors raised by the zeebe client wrapper.
const (
	ErrCodeBrokerUnavailable ErrorCode = "BROKER_UNAVAILABLE"
	ErrCodeBrokerTimeout     ErrorCode = "BROKER_TIMEOUT"
	ErrCodeBrokerRejected    ErrorCode = "BROKER_REJECTED"
)

// StandardError represents a structured application error.
type StandardError struct {
	Code      ErrorCode              `json:"code"`
	Message   string                 `json:"message"`
	Details   string                 `json:"details,omitempty"`
	Retryable bool                   `json:"retryable"`
	Metadata  map[string]interface{} `json:"metadata,omitempty"`
	Timestamp time.Time              `json:"timestamp"`
}

func (e *StandardError) Error() string {
	return fmt.Sprintf("StandardError[%s]: %s", e.Code, e.Message)
}

// WithMetadata attaches a key to the error metadata and returns the error.
func (e *StandardError) WithMetadata(key string, value interface{}) *StandardError {
	if e.Metadata == nil {
		e.Metadata = make(map[string]interface{})
	}
	e.Metadata[key] = value
	return e
}

// AsStandardError unwraps err to a *StandardError when one is in its chain.
func AsStandardError(err error) (*StandardError, bool) {
	var stdErr *StandardError
	if stderrors.As(err, &stdErr) {
		return stdErr, true
	}
	return nil, false
}

// ==========================
// 2. BPMN Error Integration
// ==========================

// BPMNError represents an error that can be thrown to the Camunda workflow engine.
type BPMNError struct {
	Code           string                 `json:"code"`
	Message        string                 `json:"message"`
	Details        string                 `json:"details,omitempty"`
	Retryable      bool                   `json:"retryable"`
	Retries        int                    `json:"retries"`
	ErrorVariables map[string]interface{} `json:"errorVariables,omitempty"`
}

func (e *BPMNError) Error() string {
	return fmt.Sprintf("BPMNError[%s]: %s", e.Code, e.Message)
}

// ToErrorVariables returns a map suitable for setting Camunda job fail variables.
func (e *BPMNError) ToErrorVariables() map[string]interface{} {
	vars := map[string]interface{}{
		"errorCode":    e.Code,
		"errorMessage": e.Message,
		"errorDetails": e.Details,
		"retryable":    e.Retryable,
	}
	for k, v := range e.ErrorVariables {
		vars[k] = v
	}
	return vars
}

// ==========================
// 3. Error Constructors
// ==========================

// NewParseError reports job variables that are not a JSON document.
func NewParseError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeParseError,
		Message:   "Failed to parse job variables",
		Details:   err.Error(),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewAssessmentInputInvalidError reports job variables that do not match the activity input schema.
func NewAssessmentInputInvalidError(details string) *StandardError {
	return &StandardError{
		Code:      ErrCodeAssessmentInputInvalid,
		Message:   "Assessment input validation failed",
		Details:   details,
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewUnknownInstrumentError reports a task routed to an instrument with no catalog.
func NewUnknownInstrumentError(instrument string) *StandardError {
	return &StandardError{
		Code:      ErrCodeUnknownInstrument,
		Message:   "Unknown assessment instrument",
		Details:   fmt.Sprintf("instrument: %s", instrument),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewScoringTimeoutError reports a job whose deadline expired before completion.
func NewScoringTimeoutError(instrument string) *StandardError {
	return &StandardError{
		Code:      ErrCodeScoringTimeout,
		Message:   "Assessment scoring timeout",
		Details:   fmt.Sprintf("instrument: %s", instrument),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewJobCompletionFailedError reports a complete command rejected by the gateway.
func NewJobCompletionFailedError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeJobCompletionFailed,
		Message:   "Failed to complete job",
		Details:   err.Error(),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewBrokerError wraps a zeebe gateway failure under one of the broker codes.
func NewBrokerError(code ErrorCode, operation string, err error) *StandardError {
	return &StandardError{
		Code:      code,
		Message:   fmt.Sprintf("Zeebe operation '%s' failed", operation),
		Details:   err.Error(),
		Retryable: code != ErrCodeBrokerRejected,
		Timestamp: time.Now().UTC(),
	}
}

func NewInternalError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeInternal,
		Message:   "Unexpected error",
		Details:   err.Error(),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// ==========================
// 4. Mapping & Retry Policy
// ==========================

var BPMNErrorMapping = map[ErrorCode]string{
	ErrCodeParseError:             "PARSE_ERROR",
	ErrCodeAssessmentInputInvalid: "ASSESSMENT_INPUT_INVALID",
	ErrCodeUnknownInstrument:      "UNKNOWN_INSTRUMENT",
	ErrCodeScoringTimeout:         "SCORING_TIMEOUT",
	ErrCodeJobCompletionFailed:    "JOB_COMPLETION_FAILED",
	ErrCodeInternal:               "INTERNAL_ERROR",
	ErrCodeBrokerUnavailable:      "BROKER_UNAVAILABLE",
	ErrCodeBrokerTimeout:          "BROKER_TIMEOUT",
	ErrCodeBrokerRejected:         "BROKER_REJECTED",
}

func GetRetryCount(code ErrorCode) int {
	switch code {
	case ErrCodeJobCompletionFailed,
		ErrCodeBrokerUnavailable:
		return 3

	case ErrCodeScoringTimeout,
		ErrCodeBrokerTimeout:
		return 2

	default:
		return 0 // Business errors: no retry
	}
}

func ConvertToBPMNError(stdErr *StandardError) *BPMNError {
	bpmnCode, exists := BPMNErrorMapping[stdErr.Code]
	if !exists {
		bpmnCode = string(stdErr.Code)
	}

	retries := GetRetryCount(stdErr.Code)
	if !stdErr.Retryable {
		retries = 0
	}

	vars := map[string]interface{}{
		"originalErrorCode": string(stdErr.Code),
		"timestamp":         stdErr.Timestamp.Format(time.RFC3339),
	}
	for k, v := range stdErr.Metadata {
		vars[k] = v
	}

	return &BPMNError{
		Code:           bpmnCode,
		Message:        stdErr.Message,
		Details:        stdErr.Details,
		Retryable:      stdErr.Retryable,
		Retries:        retries,
		ErrorVariables: vars,
	}
}

func GetErrorCategory(code ErrorCode) string {
	codeStr := string(code)
	switch {
	case strings.Contains(codeStr, "PARSE") || strings.Contains(codeStr, "INVALID"):
		return "VALIDATION"
	case strings.Contains(codeStr, "INSTRUMENT") || strings.Contains(codeStr, "SCORING"):
		return "SCORING"
	case strings.Contains(codeStr, "JOB") || strings.Contains(codeStr, "BROKER"):
		return "WORKFLOW"
	default:
		return "OTHER"
	}
}
