package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"orientation-workers/internal/scoring"

	"gopkg.in/yaml.v3"
)

const (
	formatJSON = "json"
	formatYAML = "yaml"
)

// writeOutput renders v in the selected format. YAML goes through the JSON form so both
// formats share the same keys.
func writeOutput(w io.Writer, v interface{}, format string) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output: %w", err)
	}

	if format == formatYAML {
		var generic interface{}
		if err := json.Unmarshal(data, &generic); err != nil {
			return fmt.Errorf("failed to convert output: %w", err)
		}
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(generic); err != nil {
			return fmt.Errorf("failed to marshal yaml output: %w", err)
		}
		return enc.Close()
	}

	_, err = w.Write(append(data, '\n'))
	return err
}

func parseInstrument(arg string) (scoring.InstrumentID, error) {
	id := scoring.InstrumentID(strings.ToLower(strings.TrimSpace(arg)))
	if _, ok := scoring.Lookup(id); ok {
		return id, nil
	}
	known := make([]string, 0, len(scoring.Instruments()))
	for _, k := range scoring.Instruments() {
		known = append(known, string(k))
	}
	return "", fmt.Errorf("unknown instrument %q (known: %s)", arg, strings.Join(known, ", "))
}
