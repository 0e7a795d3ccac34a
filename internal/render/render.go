// Package render writes quizzes, reports and history for the command line.
package render

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"gopkg.in/yaml.v3"
)

// Format is an output format.
type Format string

const (
	FormatHuman Format = "human"
	FormatJSON  Format = "json"
	FormatYAML  Format = "yaml"
)

// ParseFormat validates an output format name. Empty means human.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(s)); f {
	case "", FormatHuman:
		return FormatHuman, nil
	case FormatJSON, FormatYAML:
		return f, nil
	}
	return "", fmt.Errorf("unknown output format %q (want human, json or yaml)", s)
}

var (
	titleColor = color.New(color.FgCyan, color.Bold)
	headColor  = color.New(color.FgYellow, color.Bold)
	goodColor  = color.New(color.FgGreen)
	badColor   = color.New(color.FgRed)
	dimColor   = color.New(color.FgHiBlack)
)

// encode writes v as JSON or YAML. It reports false for human output.
func encode(w io.Writer, v any, format Format) (bool, error) {
	switch format {
	case FormatJSON:
		data, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return true, err
		}
		_, err = fmt.Fprintln(w, string(data))
		return true, err
	case FormatYAML:
		data, err := yaml.Marshal(v)
		if err != nil {
			return true, err
		}
		_, err = w.Write(data)
		return true, err
	}
	return false, nil
}

func empty(w io.Writer, what string) error {
	_, err := dimColor.Fprintf(w, "(empty %s)\n", what)
	return err
}

func rule(w io.Writer) {
	fmt.Fprintln(w, dimColor.Sprint(strings.Repeat("─", 60)))
}
