// pkg/registry/schema.go
package registry

import "encoding/json"

// Implementation statuses recognized by the worker manager.
const (
	StatusActive     = "active"
	StatusPlanned    = "planned"
	StatusDeprecated = "deprecated"
)

type ActivityRegistry struct {
	Version     string     `json:"version"`
	LastUpdated string     `json:"lastUpdated"`
	Activities  []Activity `json:"activities"`
}

type Activity struct {
	ID                   string                 `json:"id"`
	DisplayName          string                 `json:"displayName"`
	Description          string                 `json:"description"`
	Category             string                 `json:"category"`
	Version              string                 `json:"version"`
	TaskType             string                 `json:"taskType"`
	ImplementationStatus string                 `json:"implementationStatus"`
	InputSchema          map[string]interface{} `json:"inputSchema"`
	OutputSchema         map[string]interface{} `json:"outputSchema"`
	ErrorCodes           []string               `json:"errorCodes"`
	Timeout              string                 `json:"timeout"`
	Retries              int                    `json:"retries"`
	Workflows            []string               `json:"workflows"`
	Tags                 []string               `json:"tags"`
}

// InputSchemaJSON renders the input schema for gojsonschema loaders.
func (a *Activity) InputSchemaJSON() (string, error) {
	data, err := json.Marshal(a.InputSchema)
	return string(data), err
}

// OutputSchemaJSON renders the output schema for gojsonschema loaders.
func (a *Activity) OutputSchemaJSON() (string, error) {
	data, err := json.Marshal(a.OutputSchema)
	return string(data), err
}
