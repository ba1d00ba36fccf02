package main

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// render writes v as YAML when the yaml format is selected, otherwise it
// defers to the command's text renderer.
func (a *app) render(w io.Writer, v any, text func(io.Writer) error) error {
	if a.format != formatYAML {
		return text(w)
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode yaml: %w", err)
	}

	return enc.Close()
}
