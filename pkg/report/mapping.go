package report

import (
	"os"
	"strings"

	"github.com/goccy/go-json"
	"gopkg.in/yaml.v3"

	"github.com/ajitpratap0/tableslim/pkg/dataset"
	"github.com/ajitpratap0/tableslim/pkg/errors"
)

// WriteMapping persists the column name to final type label mapping as a
// flat key-value file: YAML when the path ends in .yaml or .yml, JSON
// otherwise. This file is the authoritative record of the run's resulting
// types, so downstream consumers can reconstruct compatible typing without
// re-running the narrowing.
func WriteMapping(path string, changes []dataset.TypeChange) error {
	mapping := make(map[string]string, len(changes))
	for _, c := range changes {
		mapping[c.Name] = c.After.Label()
	}

	var (
		data []byte
		err  error
	)
	lower := strings.ToLower(path)
	if strings.HasSuffix(lower, ".yaml") || strings.HasSuffix(lower, ".yml") {
		data, err = yaml.Marshal(mapping)
	} else {
		data, err = json.MarshalIndent(mapping, "", "  ")
	}
	if err != nil {
		return errors.Wrap(err, errors.ErrorTypeInternal, "failed to encode type mapping")
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errors.Wrap(err, errors.ErrorTypeFile, "failed to write type mapping")
	}
	return nil
}
