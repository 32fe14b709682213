// Package config defines the unified configuration for a tableslim run.
package config

import (
	"unicode/utf8"

	"github.com/ajitpratap0/tableslim/pkg/errors"
)

// Config holds everything one invocation needs. It is built from CLI flags
// and validated before the pipeline starts.
type Config struct {
	// FilePath is the input file. The extension selects the parser.
	FilePath string `yaml:"file" json:"file"`

	// Separator is the field separator for delimited inputs. Single
	// character, default ",". Ignored for spreadsheet inputs.
	Separator string `yaml:"separator" json:"separator"`

	// OutputPath, when non-empty, is where the post-narrowing column type
	// mapping is persisted. The extension selects JSON or YAML encoding.
	OutputPath string `yaml:"output,omitempty" json:"output,omitempty"`

	// LogLevel controls diagnostic verbosity (debug, info, warn, error).
	LogLevel string `yaml:"log_level" json:"log_level"`
}

// New returns a Config with defaults applied.
func New() *Config {
	return &Config{
		Separator: ",",
		LogLevel:  "error",
	}
}

// Validate checks the configuration for a runnable state.
func (c *Config) Validate() error {
	if c.FilePath == "" {
		return errors.New(errors.ErrorTypeConfig, "input file path is required")
	}
	if utf8.RuneCountInString(c.Separator) != 1 {
		return errors.New(errors.ErrorTypeConfig, "separator must be a single character").
			WithDetail("separator", c.Separator)
	}
	return nil
}

// SeparatorRune returns the separator as a rune. Call Validate first.
func (c *Config) SeparatorRune() rune {
	r, _ := utf8.DecodeRuneInString(c.Separator)
	return r
}
