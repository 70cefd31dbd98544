package config

import (
	"errors"
	"fmt"
	"os"
	"regexp"

	"github.com/creasty/defaults"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/xsaug/logging"
)

var (
	// ErrFileName indicates a configuration path without a .yaml/.yml suffix.
	ErrFileName = errors.New("config: configuration file must end in .yaml or .yml")

	// ErrInvalid indicates a top-level validation failure.
	ErrInvalid = errors.New("config: invalid configuration")

	// ErrMissingEntry indicates a name listed in xs_of_int with no entry block.
	ErrMissingEntry = errors.New("config: entry not found")

	// ErrInvalidEntry indicates an entry block that does not decode or validate.
	ErrInvalidEntry = errors.New("config: invalid entry")
)

var yamlName = regexp.MustCompile(`(?i)\.ya?ml$`)

// Metrics configures the optional metrics textfile.
type Metrics struct {
	File string `yaml:"file"`
}

// File is a loaded configuration. Entries are decoded on demand.
type File struct {
	Workers int            `yaml:"workers" default:"1" validate:"gte=1,lte=256"`
	Log     logging.Config `yaml:"log"`
	Metrics Metrics        `yaml:"metrics"`
	Names   []string       `yaml:"xs_of_int" validate:"required,min=1,unique,dive,required"`

	path string
	raw  map[string]yaml.Node
}

// IsConfigName reports whether path has a .yaml or .yml suffix (any case).
func IsConfigName(path string) bool { return yamlName.MatchString(path) }

// Load reads, decodes and validates the configuration at path.
func Load(path string) (*File, error) {
	if !IsConfigName(path) {
		return nil, fmt.Errorf("%q: %w", path, ErrFileName)
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	f, err := Parse(b)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	f.path = path

	return f, nil
}

// Parse decodes a configuration document already in memory.
func Parse(b []byte) (*File, error) {
	var f File
	if err := yaml.Unmarshal(b, &f); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if err := yaml.Unmarshal(b, &f.raw); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if err := defaults.Set(&f); err != nil {
		return nil, fmt.Errorf("config defaults: %w", err)
	}
	if err := validate.Struct(&f); err != nil {
		return nil, fmt.Errorf("%s: %w", describe(err), ErrInvalid)
	}

	return &f, nil
}

// Path returns the file Load read, or "" for Parse.
func (f *File) Path() string { return f.path }

// decode fills dst from the entry block name, applies defaults and validates.
func (f *File) decode(name string, dst any) error {
	node, ok := f.raw[name]
	if !ok || node.Kind != yaml.MappingNode {
		return fmt.Errorf("%q: %w", name, ErrMissingEntry)
	}
	if err := node.Decode(dst); err != nil {
		return fmt.Errorf("%q: %v: %w", name, err, ErrInvalidEntry)
	}
	if err := defaults.Set(dst); err != nil {
		return fmt.Errorf("%q: %v: %w", name, err, ErrInvalidEntry)
	}
	if err := validate.Struct(dst); err != nil {
		return fmt.Errorf("%q: %s: %w", name, describe(err), ErrInvalidEntry)
	}

	return nil
}
