package main

import (
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

// DisplayConfig controls the presentation defaults for the evaluator demo,
// loaded from an optional HCL file using gohcl struct tags.
type DisplayConfig struct {
	Defaults DefaultSettings `hcl:"defaults,block"`
}

// DefaultSettings holds the flag values used when the corresponding CLI flag
// is omitted.
type DefaultSettings struct {
	Variant string `hcl:"variant,optional"`
	Verbose bool   `hcl:"verbose,optional"`
}

// DefaultDisplayConfig returns the evaluator demo's hardcoded defaults.
func DefaultDisplayConfig() *DisplayConfig {
	return &DisplayConfig{
		Defaults: DefaultSettings{
			Variant: "standard",
			Verbose: false,
		},
	}
}

// LoadDisplayConfig loads a DisplayConfig from an HCL file, falling back to
// DefaultDisplayConfig when filename does not exist.
func LoadDisplayConfig(filename string) (*DisplayConfig, error) {
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return DefaultDisplayConfig(), nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var config DisplayConfig
	diags = gohcl.DecodeBody(file.Body, nil, &config)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	defaults := DefaultDisplayConfig()
	if config.Defaults.Variant == "" {
		config.Defaults.Variant = defaults.Defaults.Variant
	}

	return &config, nil
}
