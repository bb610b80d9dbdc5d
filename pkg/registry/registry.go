// pkg/registry/registry.go
package registry

import (
	"encoding/json"
	"fmt"
	"os"

	"mortgage-workers/internal/common/validation"
)

// Load reads and validates the activity registry from disk.
func Load(path string) (*ActivityRegistry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read activity registry: %w", err)
	}
	var reg ActivityRegistry
	if err := json.Unmarshal(data, &reg); err != nil {
		return nil, fmt.Errorf("failed to parse activity registry: %w", err)
	}
	if err := reg.Validate(); err != nil {
		return nil, err
	}
	return &reg, nil
}

// Validate checks activity IDs and task type uniqueness.
func (r *ActivityRegistry) Validate() error {
	seen := make(map[string]string, len(r.Activities))
	for _, activity := range r.Activities {
		if err := validation.ValidateActivityNaming(activity.ID); err != nil {
			return fmt.Errorf("activity %q: %w", activity.ID, err)
		}
		if activity.TaskType == "" {
			return fmt.Errorf("activity %q: missing task type", activity.ID)
		}
		if prev, dup := seen[activity.TaskType]; dup {
			return fmt.Errorf("task type %q declared by both %q and %q", activity.TaskType, prev, activity.ID)
		}
		seen[activity.TaskType] = activity.ID

		if len(activity.InputSchema) > 0 {
			schemaJSON, err := activity.InputSchemaJSON()
			if err == nil {
				err = validation.CompileSchema(schemaJSON)
			}
			if err != nil {
				return fmt.Errorf("activity %q: input schema: %w", activity.ID, err)
			}
		}
		if len(activity.OutputSchema) > 0 {
			schemaJSON, err := activity.OutputSchemaJSON()
			if err == nil {
				err = validation.CompileSchema(schemaJSON)
			}
			if err != nil {
				return fmt.Errorf("activity %q: output schema: %w", activity.ID, err)
			}
		}
	}
	return nil
}

// FindByTaskType returns the activity registered for a Zeebe task type.
func (r *ActivityRegistry) FindByTaskType(taskType string) (*Activity, bool) {
	for i := range r.Activities {
		if r.Activities[i].TaskType == taskType {
			return &r.Activities[i], true
		}
	}
	return nil, false
}

// ActiveActivities returns the activities whose implementation is live.
func (r *ActivityRegistry) ActiveActivities() []Activity {
	active := make([]Activity, 0, len(r.Activities))
	for _, activity := range r.Activities {
		if activity.ImplementationStatus == StatusActive {
			active = append(active, activity)
		}
	}
	return active
}
