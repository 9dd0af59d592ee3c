package config

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// validate is a singleton validator instance
var validate *validator.Validate

func init() {
	validate = validator.New()
}

// Config holds the analysis profile: metric parameters and the
// presentation color tables.
type Config struct {
	// TopN is the number of nodes listed per ranking table.
	TopN int `yaml:"top_n" validate:"required,min=1,max=100"`
	// Resolution is the Louvain resolution parameter; 1.0 is standard
	// modularity.
	Resolution float64 `yaml:"resolution" validate:"required,gt=0"`
	// Seed drives the Louvain random source so runs are reproducible.
	Seed uint64 `yaml:"seed"`
	// RankPalette is the sequential color ramp for metric ranks,
	// ordered light to dark.
	RankPalette []string `yaml:"rank_palette" validate:"required,min=1,dive,hexcolor"`
	// HouseColors maps canonical house names to hex colors. The
	// "other" bucket must be present.
	HouseColors map[string]string `yaml:"house_colors" validate:"required,dive,hexcolor"`
	// Output is the path for the augmented node table export. Empty
	// disables the export.
	Output string `yaml:"output"`
}

// Default returns the built-in analysis profile.
func Default() *Config {
	return &Config{
		TopN:       10,
		Resolution: 1.0,
		Seed:       1,
		RankPalette: []string{
			"#FFFFCC", "#FFEDA0", "#FED976", "#FEB24C",
			"#FD8D3C", "#FC4E2A", "#E31A1C", "#B10026",
		},
		HouseColors: map[string]string{
			"gryffindor": "#AE0001",
			"slytherin":  "#2A623D",
			"hufflepuff": "#FFDB00",
			"ravenclaw":  "#222F5B",
			"other":      "#888888",
		},
		Output: "nodes_annotated.csv",
	}
}

// Load reads a YAML profile over the defaults and validates the result.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the profile against its struct tags plus the
// cross-field rules the tags cannot express.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return formatValidationError(err)
	}
	if _, ok := c.HouseColors["other"]; !ok {
		return fmt.Errorf("HouseColors: missing required %q bucket", "other")
	}
	return nil
}

// formatValidationError converts validator errors to user-friendly messages
func formatValidationError(err error) error {
	if err == nil {
		return nil
	}

	validationErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}

	// Return the first validation error in a user-friendly format
	for _, e := range validationErrs {
		field := e.Field()
		tag := e.Tag()
		param := e.Param()

		switch tag {
		case "required":
			return fmt.Errorf("%s: field is required", field)
		case "min":
			return fmt.Errorf("%s: must be at least %s", field, param)
		case "max":
			return fmt.Errorf("%s: must not exceed %s", field, param)
		case "gt":
			return fmt.Errorf("%s: must be greater than %s", field, param)
		case "hexcolor":
			return fmt.Errorf("%s: must be a hex color", field)
		default:
			return fmt.Errorf("%s: failed %s validation", field, tag)
		}
	}

	return err
}
