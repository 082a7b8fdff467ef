package demo

import (
	"context"
	"fmt"

	"gopkg.in/yaml.v3"
)

// manifest is a raw string literal: newlines and quotes are kept verbatim,
// no escaping needed.
const manifest = `{
    "name": "Advanced Language Features",
    "version": "1.0",
    "description": "A demonstration of modern language features"
}
`

type manifestInfo struct {
	Name        string `yaml:"name"`
	Version     string `yaml:"version"`
	Description string `yaml:"description"`
}

// parseManifest decodes the literal. JSON is a subset of YAML, so the YAML
// decoder reads it as is.
func parseManifest(text string) (manifestInfo, error) {
	var m manifestInfo
	if err := yaml.Unmarshal([]byte(text), &m); err != nil {
		return manifestInfo{}, fmt.Errorf("parse manifest: %w", err)
	}
	return m, nil
}

func demoTextBlock(_ context.Context, env *Env) {
	fmt.Fprintf(env.Out, "Text Blocks Example:\n%s", manifest)

	m, err := parseManifest(manifest)
	if err != nil {
		fmt.Fprintln(env.Out, "  ", err)
		return
	}
	fmt.Fprintf(env.Out, "  parsed → name=%q version=%q\n", m.Name, m.Version)
}
