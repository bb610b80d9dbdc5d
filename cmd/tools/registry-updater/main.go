// cmd/tools/registry-updater/main.go
//
// registry-updater maintains configs/activity-registry.json. Schemas and
// error codes are still edited by hand; this tool covers the common cases
// of registering a planned activity, flipping its status, and validating
// the file before commit.
package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"mortgage-workers/pkg/registry"
)

var registryPath string

func main() {
	addCmd := flag.NewFlagSet("add", flag.ExitOnError)
	updateCmd := flag.NewFlagSet("update", flag.ExitOnError)
	validateCmd := flag.NewFlagSet("validate", flag.ExitOnError)

	idAdd := addCmd.String("id", "", "Activity ID (e.g., intake.application.parse)")
	displayName := addCmd.String("displayName", "", "Display name (e.g., Parse Application)")
	description := addCmd.String("description", "", "Description")
	category := addCmd.String("category", "", "Category (e.g., intake)")
	taskType := addCmd.String("taskType", "", "Zeebe task type (e.g., parse-application)")
	version := addCmd.String("version", "1.0.0", "Version")
	implStatus := addCmd.String("status", registry.StatusPlanned, "Implementation status (active, planned, deprecated)")
	addCmd.StringVar(&registryPath, "path", "configs/activity-registry.json", "Path to registry file")

	idUpdate := updateCmd.String("id", "", "Activity ID to update")
	field := updateCmd.String("field", "", "Field to update (status, version, ...)")
	value := updateCmd.String("value", "", "New value for the field")
	updateCmd.StringVar(&registryPath, "path", "configs/activity-registry.json", "Path to registry file")

	validateCmd.StringVar(&registryPath, "path", "configs/activity-registry.json", "Path to registry file")

	if len(os.Args) < 2 {
		help()
		os.Exit(1)
	}

	switch os.Args[1] {
	case "add":
		addCmd.Parse(os.Args[2:])
		if *idAdd == "" || *displayName == "" || *description == "" || *category == "" || *taskType == "" {
			fmt.Println("Error: id, displayName, description, category, and taskType are required for add.")
			addCmd.Usage()
			os.Exit(1)
		}
		activity := registry.Activity{
			ID:                   *idAdd,
			DisplayName:          *displayName,
			Description:          *description,
			Category:             *category,
			Version:              *version,
			TaskType:             *taskType,
			ImplementationStatus: *implStatus,
			InputSchema:          map[string]interface{}{},
			OutputSchema:         map[string]interface{}{},
			ErrorCodes:           []string{},
			Timeout:              "10s",
			Retries:              3,
			Workflows:            []string{},
			Tags:                 []string{},
		}
		if err := addActivity(&activity); err != nil {
			fmt.Printf("Error adding activity: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Added activity: %s\n", *idAdd)

	case "update":
		updateCmd.Parse(os.Args[2:])
		if *idUpdate == "" || *field == "" || *value == "" {
			fmt.Println("Error: id, field, and value are required for update.")
			updateCmd.Usage()
			os.Exit(1)
		}
		if err := updateActivity(*idUpdate, *field, *value); err != nil {
			fmt.Printf("Error updating activity: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Updated activity %s, field %s to %s\n", *idUpdate, *field, *value)

	case "validate":
		validateCmd.Parse(os.Args[2:])
		reg, err := registry.Load(registryPath)
		if err != nil {
			fmt.Printf("Registry validation failed: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Registry validation passed. Found %d activities (%d active).\n",
			len(reg.Activities), len(reg.ActiveActivities()))

	case "help":
		fallthrough
	default:
		help()
	}
}

func addActivity(activity *registry.Activity) error {
	reg, err := registry.Load(registryPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			reg = &registry.ActivityRegistry{
				Version:     "1.0.0",
				LastUpdated: time.Now().Format("2006-01-02"),
				Activities:  []registry.Activity{},
			}
		} else {
			return fmt.Errorf("failed to load registry: %w", err)
		}
	}

	for _, existing := range reg.Activities {
		if existing.ID == activity.ID {
			return fmt.Errorf("activity with ID %s already exists", activity.ID)
		}
		if existing.TaskType == activity.TaskType {
			return fmt.Errorf("task type %s already registered to %s", activity.TaskType, existing.ID)
		}
	}

	reg.Activities = append(reg.Activities, *activity)
	reg.LastUpdated = time.Now().Format("2006-01-02")

	if err := reg.Validate(); err != nil {
		return fmt.Errorf("resulting registry is invalid: %w", err)
	}
	return saveRegistry(reg, registryPath)
}

func updateActivity(id, field, value string) error {
	reg, err := registry.Load(registryPath)
	if err != nil {
		return fmt.Errorf("failed to load registry: %w", err)
	}

	found := false
	for i := range reg.Activities {
		if reg.Activities[i].ID != id {
			continue
		}
		found = true
		switch field {
		case "status":
			reg.Activities[i].ImplementationStatus = value
		case "version":
			reg.Activities[i].Version = value
		case "displayName":
			reg.Activities[i].DisplayName = value
		case "description":
			reg.Activities[i].Description = value
		case "category":
			reg.Activities[i].Category = value
		case "taskType":
			reg.Activities[i].TaskType = value
		case "timeout":
			reg.Activities[i].Timeout = value
		case "retries":
			retries, err := strconv.Atoi(value)
			if err != nil {
				return fmt.Errorf("invalid retries value: %w", err)
			}
			reg.Activities[i].Retries = retries
		default:
			return fmt.Errorf("unknown field: %s", field)
		}
		break
	}

	if !found {
		return fmt.Errorf("activity with ID %s not found", id)
	}

	reg.LastUpdated = time.Now().Format("2006-01-02")

	if err := reg.Validate(); err != nil {
		return fmt.Errorf("resulting registry is invalid: %w", err)
	}
	return saveRegistry(reg, registryPath)
}

func saveRegistry(reg *registry.ActivityRegistry, path string) error {
	data, err := json.MarshalIndent(reg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal registry: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write registry file: %w", err)
	}
	return nil
}

func help() {
	fmt.Println(`
Usage: registry-updater <command> [flags]

Commands:
  add      Add a new activity to the registry
  update   Update an existing activity's field
  validate Validate the registry file
  help     Show this help message

Examples:
  registry-updater add -id underwriting.assessment.calculate-dti -displayName "Calculate DTI" -description "Computes debt-to-income ratios" -category underwriting -taskType calculate-dti
  registry-updater update -id underwriting.assessment.calculate-dti -field status -value active
  registry-updater validate -path configs/activity-registry.json`)
}
