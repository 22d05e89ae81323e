// File: report.go
// Title: Result Rendering
// Description: Renders aggregation results as text, JSON or YAML.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.1.0: Initial implementation

// Package report renders the result of one aggregation run.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"

	etkerrors "github.com/msto63/etkit/core/errors"
	"github.com/msto63/etkit/utils/optional"
)

// Format selects the output encoding
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ParseFormat parses an output format name. The empty string is text.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "text":
		return FormatText, nil
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	default:
		return "", etkerrors.InvalidFormat(etkerrors.ModuleReport, "ParseFormat", s, "text, json or yaml")
	}
}

// Result describes one aggregation run. Numbers are preformatted so integer,
// float and decimal runs render alike.
type Result struct {
	RunID     string                    `json:"run_id,omitempty" yaml:"run_id,omitempty"`
	Operation string                    `json:"operation" yaml:"operation"`
	Rule      string                    `json:"rule" yaml:"rule"`
	Mode      string                    `json:"mode" yaml:"mode"`
	Input     int                       `json:"input" yaml:"input"`
	Matched   int                       `json:"matched" yaml:"matched"`
	Value     optional.Optional[string] `json:"value" yaml:"value"`
	Unique    optional.Optional[bool]   `json:"unique" yaml:"unique"`
	Items     []string                  `json:"items,omitempty" yaml:"items,omitempty"`
}

// Renderer writes results to an output
type Renderer struct {
	out    io.Writer
	format Format
	key    lipgloss.Style
	value  lipgloss.Style
	empty  lipgloss.Style
}

// NewRenderer returns a renderer for out. Text styling follows the color
// support of out.
func NewRenderer(out io.Writer, format Format) *Renderer {
	r := lipgloss.NewRenderer(out)
	return &Renderer{
		out:    out,
		format: format,
		key:    r.NewStyle().Bold(true).Width(10),
		value:  r.NewStyle().Foreground(lipgloss.Color("6")),
		empty:  r.NewStyle().Faint(true),
	}
}

// Render writes result in the renderer's format
func (r *Renderer) Render(result Result) error {
	switch r.format {
	case FormatJSON:
		encoder := json.NewEncoder(r.out)
		encoder.SetIndent("", "  ")
		return encoder.Encode(result)
	case FormatYAML:
		encoder := yaml.NewEncoder(r.out)
		encoder.SetIndent(2)
		if err := encoder.Encode(result); err != nil {
			return err
		}
		return encoder.Close()
	case FormatText, "":
		_, err := io.WriteString(r.out, r.text(result))
		return err
	default:
		return etkerrors.InvalidFormat(etkerrors.ModuleReport, "Render", string(r.format), "text, json or yaml")
	}
}

func (r *Renderer) text(result Result) string {
	var rows []string
	row := func(key, value string) {
		rows = append(rows, r.key.Render(key)+r.value.Render(value))
	}

	row("operation", result.Operation)
	row("rule", result.Rule)
	row("mode", result.Mode)
	row("input", fmt.Sprint(result.Input))
	row("matched", fmt.Sprint(result.Matched))

	result.Value.IfPresentOrElse(
		func(v string) { row("value", v) },
		func() {
			if result.Operation != "unique" && result.Operation != "copy" {
				rows = append(rows, r.key.Render("value")+r.empty.Render("none"))
			}
		},
	)
	result.Unique.IfPresent(func(u bool) { row("unique", fmt.Sprint(u)) })

	if result.Items != nil {
		row("items", "["+strings.Join(result.Items, " ")+"]")
	}

	return lipgloss.JoinVertical(lipgloss.Left, rows...) + "\n"
}
