// cmd/tools/registry-updater/main.go
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"orientation-workers/pkg/registry"
)

const defaultRegistryPath = "configs/activity-registry.json"

func main() {
	if len(os.Args) < 2 {
		help(os.Stdout)
		os.Exit(1)
	}

	if err := run(os.Args[1], os.Args[2:]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(command string, args []string) error {
	switch command {
	case "export":
		exportCmd := flag.NewFlagSet("export", flag.ExitOnError)
		path := exportCmd.String("path", defaultRegistryPath, "Path to write the registry file")
		exportCmd.Parse(args)

		reg := registry.Default()
		if err := registry.SaveRegistry(reg, *path); err != nil {
			return err
		}
		fmt.Printf("Exported %d activities to %s\n", len(reg.Activities), *path)

	case "update":
		updateCmd := flag.NewFlagSet("update", flag.ExitOnError)
		path := updateCmd.String("path", defaultRegistryPath, "Path to registry file")
		id := updateCmd.String("id", "", "Activity ID to update (e.g., assessment.score.riasec)")
		field := updateCmd.String("field", "", "Field to update (status, version, displayName, description, timeout, retries)")
		value := updateCmd.String("value", "", "New value for the field")
		updateCmd.Parse(args)

		if *id == "" || *field == "" || *value == "" {
			updateCmd.Usage()
			return fmt.Errorf("id, field, and value are required for update")
		}
		if err := updateActivity(*path, *id, *field, *value, time.Now()); err != nil {
			return err
		}
		fmt.Printf("Updated activity %s, field %s to %s\n", *id, *field, *value)

	case "validate":
		validateCmd := flag.NewFlagSet("validate", flag.ExitOnError)
		path := validateCmd.String("path", defaultRegistryPath, "Path to registry file")
		validateCmd.Parse(args)

		reg, err := registry.Load(*path)
		if err != nil {
			return fmt.Errorf("registry validation failed: %w", err)
		}
		fmt.Printf("Registry validation passed. Found %d activities.\n", len(reg.Activities))

	case "help":
		help(os.Stdout)

	default:
		help(os.Stderr)
		return fmt.Errorf("unknown command %q", command)
	}
	return nil
}

func updateActivity(path, id, field, value string, now time.Time) error {
	reg, err := registry.LoadRegistry(path)
	if err != nil {
		return fmt.Errorf("failed to load registry: %w", err)
	}
	if err := reg.UpdateField(id, field, value); err != nil {
		return err
	}
	if err := reg.Validate(); err != nil {
		return err
	}
	reg.Touch(now)
	return registry.SaveRegistry(reg, path)
}

func help(w io.Writer) {
	fmt.Fprint(w, `
Usage: registry-updater <command> [flags]

Commands:
  export    Write the built-in scoring activities to a registry file
  update    Update an existing activity's field
  validate  Validate the registry file
  help      Show this help message

Examples:
  registry-updater export -path configs/activity-registry.json
  registry-updater update -id assessment.score.riasec -field status -value verified
  registry-updater validate -path configs/activity-registry.json

Use 'registry-updater <command> -h' for more information about a command.
`)
}
