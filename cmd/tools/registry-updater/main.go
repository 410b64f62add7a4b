// cmd/tools/registry-updater/main.go
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

	"mergington-activities/pkg/registry"
)

var seedPath string

func main() {
	addCmd := flag.NewFlagSet("add", flag.ExitOnError)
	updateCmd := flag.NewFlagSet("update", flag.ExitOnError)
	validateCmd := flag.NewFlagSet("validate", flag.ExitOnError)

	// Add command flags
	nameAdd := addCmd.String("name", "", "Activity name (e.g., Chess Club)")
	description := addCmd.String("description", "", "Description")
	schedule := addCmd.String("schedule", "", "Schedule (e.g., Fridays, 3:30 PM - 5:00 PM)")
	maxParticipants := addCmd.Int("max", 0, "Maximum number of participants")
	addCmd.StringVar(&seedPath, "path", "configs/activities.json", "Path to seed file")

	// Update command flags
	nameUpdate := updateCmd.String("name", "", "Activity name to update")
	field := updateCmd.String("field", "", "Field to update (description, schedule, max_participants)")
	value := updateCmd.String("value", "", "New value for the field")
	updateCmd.StringVar(&seedPath, "path", "configs/activities.json", "Path to seed file")

	// Validate command flags
	validateCmd.StringVar(&seedPath, "path", "configs/activities.json", "Path to seed file")

	if len(os.Args) < 2 {
		help()
		os.Exit(1)
	}

	switch os.Args[1] {
	case "add":
		addCmd.Parse(os.Args[2:])
		if *nameAdd == "" || *description == "" || *schedule == "" {
			fmt.Println("Error: name, description, and schedule are required for add.")
			addCmd.Usage()
			os.Exit(1)
		}
		activity := registry.SeedActivity{
			Name:            *nameAdd,
			Description:     *description,
			Schedule:        *schedule,
			MaxParticipants: *maxParticipants,
			Participants:    []string{},
		}
		if err := addActivity(&activity); err != nil {
			fmt.Printf("Error adding activity: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Added activity: %s\n", *nameAdd)

	case "update":
		updateCmd.Parse(os.Args[2:])
		if *nameUpdate == "" || *field == "" || *value == "" {
			fmt.Println("Error: name, field, and value are required for update.")
			updateCmd.Usage()
			os.Exit(1)
		}
		if err := updateActivity(*nameUpdate, *field, *value); err != nil {
			fmt.Printf("Error updating activity: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Updated activity %s, field %s to %s\n", *nameUpdate, *field, *value)

	case "validate":
		validateCmd.Parse(os.Args[2:])
		if err := validateSeedFile(); err != nil {
			fmt.Printf("Seed validation failed: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("Seed validation passed.")

	case "help":
		fallthrough
	default:
		help()
	}
}

func addActivity(activity *registry.SeedActivity) error {
	seed, err := registry.LoadSeed(seedPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			seed = &registry.SeedFile{
				Version:    "1.0.0",
				Activities: []registry.SeedActivity{},
			}
		} else {
			return fmt.Errorf("failed to load seed: %w", err)
		}
	}

	for _, a := range seed.Activities {
		if a.Name == activity.Name {
			return fmt.Errorf("activity %q already exists", activity.Name)
		}
	}

	seed.Activities = append(seed.Activities, *activity)
	return saveSeed(seed)
}

func updateActivity(name, field, value string) error {
	seed, err := registry.LoadSeed(seedPath)
	if err != nil {
		return fmt.Errorf("failed to load seed: %w", err)
	}

	for i := range seed.Activities {
		if seed.Activities[i].Name != name {
			continue
		}
		switch field {
		case "description":
			seed.Activities[i].Description = value
		case "schedule":
			seed.Activities[i].Schedule = value
		case "max_participants":
			max, err := strconv.Atoi(value)
			if err != nil {
				return fmt.Errorf("max_participants must be an integer: %w", err)
			}
			seed.Activities[i].MaxParticipants = max
		default:
			return fmt.Errorf("unknown field %q", field)
		}
		return saveSeed(seed)
	}

	return fmt.Errorf("activity %q not found", name)
}

// validateSeedFile runs the same checks the server runs at startup: JSON
// schema plus duplicate detection.
func validateSeedFile() error {
	seed, err := registry.LoadSeed(seedPath)
	if err != nil {
		return err
	}
	if _, err := registry.New(seed); err != nil {
		return err
	}
	return nil
}

func saveSeed(seed *registry.SeedFile) error {
	seed.LastUpdated = time.Now().UTC().Format(time.RFC3339)

	data, err := json.MarshalIndent(seed, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal seed: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(seedPath), 0o755); err != nil {
		return fmt.Errorf("failed to create seed directory: %w", err)
	}

	if err := os.WriteFile(seedPath, data, 0o644); err != nil {
		return fmt.Errorf("failed to write seed file: %w", err)
	}
	return nil
}

func help() {
	fmt.Println(`registry-updater maintains the activity seed file.

Usage:
  registry-updater add -name <name> -description <text> -schedule <text> -max <n> [-path <file>]
  registry-updater update -name <name> -field <field> -value <value> [-path <file>]
  registry-updater validate [-path <file>]`)
}
