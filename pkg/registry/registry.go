// pkg/registry/registry.go
package registry

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"orientation-workers/internal/common/validation"
)

func LoadRegistry(path string) (*ActivityRegistry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var reg ActivityRegistry
	if err := json.Unmarshal(data, &reg); err != nil {
		return nil, fmt.Errorf("failed to parse registry %s: %w", path, err)
	}
	return &reg, nil
}

// SaveRegistry writes the registry as indented JSON, creating parent directories.
func SaveRegistry(reg *ActivityRegistry, path string) error {
	data, err := json.MarshalIndent(reg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal registry: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("failed to write registry file: %w", err)
	}
	return nil
}

// Lookup finds the activity bound to a zeebe task type.
func (r *ActivityRegistry) Lookup(taskType string) (*Activity, bool) {
	for i := range r.Activities {
		if r.Activities[i].TaskType == taskType {
			return &r.Activities[i], true
		}
	}
	return nil, false
}

// TaskTypes lists the task types in registry order.
func (r *ActivityRegistry) TaskTypes() []string {
	out := make([]string, len(r.Activities))
	for i, activity := range r.Activities {
		out[i] = activity.TaskType
	}
	return out
}

// Touch stamps LastUpdated with the given time.
func (r *ActivityRegistry) Touch(now time.Time) {
	r.LastUpdated = now.UTC().Format(time.RFC3339)
}

// Validate reports every structural problem in the registry at once.
func (r *ActivityRegistry) Validate() error {
	if len(r.Activities) == 0 {
		return fmt.Errorf("registry contains no activities")
	}

	var errs []error
	ids := make(map[string]bool)
	taskTypes := make(map[string]bool)
	for _, activity := range r.Activities {
		if activity.ID == "" {
			errs = append(errs, fmt.Errorf("activity missing required field: ID"))
			continue
		}
		if ids[activity.ID] {
			errs = append(errs, fmt.Errorf("duplicate activity ID: %s", activity.ID))
		}
		ids[activity.ID] = true

		if activity.DisplayName == "" {
			errs = append(errs, fmt.Errorf("activity %s missing required field: DisplayName", activity.ID))
		}
		if activity.Category == "" {
			errs = append(errs, fmt.Errorf("activity %s missing required field: Category", activity.ID))
		}
		if err := validation.ValidateTaskType(activity.TaskType); err != nil {
			errs = append(errs, fmt.Errorf("activity %s: %w", activity.ID, err))
		} else if taskTypes[activity.TaskType] {
			errs = append(errs, fmt.Errorf("duplicate task type: %s", activity.TaskType))
		}
		taskTypes[activity.TaskType] = true

		if id, ok := InstrumentFor(activity.TaskType); !ok || string(id) != activity.Instrument {
			errs = append(errs, fmt.Errorf("activity %s: task type %q does not serve instrument %q",
				activity.ID, activity.TaskType, activity.Instrument))
		}
		if activity.ImplementationStatus != "" && !validStatuses[activity.ImplementationStatus] {
			errs = append(errs, fmt.Errorf("activity %s: unknown status %q", activity.ID, activity.ImplementationStatus))
		}
		if _, err := time.ParseDuration(activity.Timeout); err != nil {
			errs = append(errs, fmt.Errorf("activity %s: invalid timeout %q", activity.ID, activity.Timeout))
		}
		if _, err := validation.Compile(activity.InputSchema); err != nil {
			errs = append(errs, fmt.Errorf("activity %s input schema: %w", activity.ID, err))
		}
		if _, err := validation.Compile(activity.OutputSchema); err != nil {
			errs = append(errs, fmt.Errorf("activity %s output schema: %w", activity.ID, err))
		}
	}
	return errors.Join(errs...)
}

// UpdateField sets one scalar field of the activity with the given ID.
func (r *ActivityRegistry) UpdateField(id, field, value string) error {
	var activity *Activity
	for i := range r.Activities {
		if r.Activities[i].ID == id {
			activity = &r.Activities[i]
			break
		}
	}
	if activity == nil {
		return fmt.Errorf("activity with ID %s not found", id)
	}

	switch field {
	case "status":
		if !validStatuses[value] {
			return fmt.Errorf("unknown status: %s", value)
		}
		activity.ImplementationStatus = value
	case "version":
		activity.Version = value
	case "displayName":
		activity.DisplayName = value
	case "description":
		activity.Description = value
	case "timeout":
		if _, err := time.ParseDuration(value); err != nil {
			return fmt.Errorf("invalid timeout value: %w", err)
		}
		activity.Timeout = value
	case "retries":
		retries, err := strconv.Atoi(value)
		if err != nil || retries < 0 {
			return fmt.Errorf("invalid retries value: %s", value)
		}
		activity.Retries = retries
	default:
		return fmt.Errorf("unknown field: %s", field)
	}
	return nil
}

// InputValidators compiles the input schema of every activity, keyed by task type.
func (r *ActivityRegistry) InputValidators() (map[string]*validation.Schema, error) {
	out := make(map[string]*validation.Schema, len(r.Activities))
	for _, activity := range r.Activities {
		schema, err := validation.Compile(activity.InputSchema)
		if err != nil {
			return nil, fmt.Errorf("activity %s input schema: %w", activity.ID, err)
		}
		out[activity.TaskType] = schema
	}
	return out, nil
}

// Load returns the registry stored at path, or the built-in one when path is empty.
func Load(path string) (*ActivityRegistry, error) {
	if path == "" {
		return Default(), nil
	}
	reg, err := LoadRegistry(path)
	if err != nil {
		return nil, err
	}
	if err := reg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid registry %s: %w", path, err)
	}
	return reg, nil
}
