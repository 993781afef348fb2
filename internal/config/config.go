// Package config loads wordtally settings from an optional YAML file and
// validates them against an embedded CUE schema.
package config

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	cueerrors "cuelang.org/go/cue/errors"
	"cuelang.org/go/cue/token"
	"gopkg.in/yaml.v3"

	"github.com/roach88/wordtally/internal/tally"
)

//go:embed schema.cue
var schemaCUE string

// Config holds run settings. Zero-valued optional fields mean "off".
type Config struct {
	Sentinel    string `yaml:"sentinel" json:"sentinel"`
	HistoryDB   string `yaml:"history_db,omitempty" json:"history_db,omitempty"`
	MetricsFile string `yaml:"metrics_file,omitempty" json:"metrics_file,omitempty"`
	Verbose     bool   `yaml:"verbose,omitempty" json:"verbose,omitempty"`
}

// ValidationError describes a config value rejected by the schema.
type ValidationError struct {
	Message string
	Pos     token.Pos // position in the schema, if available
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid config: %s", e.Message)
}

// Default returns the settings used when no file is given.
func Default() Config {
	return Config{Sentinel: tally.DefaultSentinel}
}

// Load reads a YAML config file on top of Default and validates it.
// Unknown keys are rejected so typos surface instead of being ignored.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config file: %w", err)
	}
	return Parse(data)
}

// Parse decodes YAML config data on top of Default and validates it.
// Empty data yields Default.
func Parse(data []byte) (Config, error) {
	cfg := Default()

	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks c against the embedded schema.
func (c Config) Validate() error {
	ctx := cuecontext.New()

	schema := ctx.CompileString(schemaCUE, cue.Filename("schema.cue"))
	if err := schema.Err(); err != nil {
		return fmt.Errorf("compile config schema: %w", err)
	}
	def := schema.LookupPath(cue.ParsePath("#Config"))

	v := def.Unify(ctx.Encode(c))
	if err := v.Validate(cue.Concrete(true)); err != nil {
		return formatCUEError(err)
	}
	return nil
}

// formatCUEError converts the first CUE error into a ValidationError.
func formatCUEError(err error) error {
	errs := cueerrors.Errors(err)
	if len(errs) == 0 {
		return &ValidationError{Message: err.Error()}
	}

	first := errs[0]
	verr := &ValidationError{Message: first.Error()}
	if positions := cueerrors.Positions(first); len(positions) > 0 {
		verr.Pos = positions[0]
	}
	return verr
}
