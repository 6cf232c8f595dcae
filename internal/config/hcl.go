package config

import (
	"fmt"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"
)

// fileConfig mirrors the attributes accepted in a configuration file.
// Pointers distinguish "absent" from zero values; unknown attributes fail
// decoding.
type fileConfig struct {
	Input     *string `hcl:"input,optional"`
	Render    *bool   `hcl:"render,optional"`
	LogLevel  *string `hcl:"log_level,optional"`
	LogFormat *string `hcl:"log_format,optional"`
	Traversal *string `hcl:"traversal,optional"`
}

// LoadFile parses the HCL file at path and applies the attributes it sets on
// top of base. environ is exposed to expressions as the env object, in
// os.Environ form.
func LoadFile(path string, base Config, environ []string) (Config, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return base, fmt.Errorf("config: failed to parse %s: %w", path, diags)
	}

	var fc fileConfig
	diags = gohcl.DecodeBody(file.Body, evalContext(environ), &fc)
	if diags.HasErrors() {
		return base, fmt.Errorf("config: failed to decode %s: %w", path, diags)
	}

	out := base
	if fc.Input != nil {
		out.InputPath = *fc.Input
	}
	if fc.Render != nil {
		out.Render = *fc.Render
	}
	if fc.LogLevel != nil {
		out.LogLevel = *fc.LogLevel
	}
	if fc.LogFormat != nil {
		out.LogFormat = *fc.LogFormat
	}
	if fc.Traversal != nil {
		out.Traversal = *fc.Traversal
	}
	return out, nil
}

// evalContext exposes environ as env.<NAME> string values.
func evalContext(environ []string) *hcl.EvalContext {
	env := make(map[string]cty.Value, len(environ))
	for _, kv := range environ {
		name, value, ok := strings.Cut(kv, "=")
		if !ok || name == "" {
			continue
		}
		env[name] = cty.StringVal(value)
	}
	return &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"env": cty.ObjectVal(env),
		},
	}
}
