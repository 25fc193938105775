// Package output provides output formatters for key binding listings.
package output

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// Binding is one action-to-key entry as shown by `popkit keys`.
type Binding struct {
	Action string `json:"action" yaml:"action"`
	Key    string `json:"key" yaml:"key"`
	Phase  string `json:"phase" yaml:"phase"`
}

// Formatter formats bindings for output.
type Formatter interface {
	// Format writes formatted bindings to the writer.
	Format(w io.Writer, bindings []Binding) error
}

// FormatType represents an output format type.
type FormatType string

const (
	FormatPlain FormatType = "plain"
	FormatJSON  FormatType = "json"
	FormatYAML  FormatType = "yaml"
)

// NewFormatter creates a formatter for the specified format type.
func NewFormatter(format FormatType) Formatter {
	switch format {
	case FormatJSON:
		return &JSONFormatter{}
	case FormatYAML:
		return &YAMLFormatter{}
	case FormatPlain:
		fallthrough
	default:
		return &PlainFormatter{}
	}
}

// PlainFormatter writes one aligned line per binding.
type PlainFormatter struct{}

// Format writes bindings as plain text.
func (f *PlainFormatter) Format(w io.Writer, bindings []Binding) error {
	width := 0
	for _, b := range bindings {
		if len(b.Action) > width {
			width = len(b.Action)
		}
	}
	for _, b := range bindings {
		if _, err := fmt.Fprintf(w, "%-*s  %s (%s)\n", width, b.Action, b.Key, b.Phase); err != nil {
			return err
		}
	}
	return nil
}

// JSONFormatter writes bindings as a JSON array.
type JSONFormatter struct{}

// Format writes bindings as indented JSON.
func (f *JSONFormatter) Format(w io.Writer, bindings []Binding) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(bindings)
}

// YAMLFormatter writes bindings as a YAML sequence.
type YAMLFormatter struct{}

// Format writes bindings as YAML.
func (f *YAMLFormatter) Format(w io.Writer, bindings []Binding) error {
	encoder := yaml.NewEncoder(w)
	defer encoder.Close()
	return encoder.Encode(bindings)
}
