package backlight

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

func ParseFormat(s string) (Format, error) {
	switch f := Format(s); f {
	case FormatText, FormatJSON, FormatYAML:
		return f, nil
	case "":
		return FormatText, nil
	default:
		return "", fmt.Errorf("unknown output format %q (want text, json or yaml)", s)
	}
}

type Report struct {
	Path             string `json:"path" yaml:"path"`
	ActualBrightness uint16 `json:"actual_brightness" yaml:"actual_brightness"`
	Brightness       uint16 `json:"brightness" yaml:"brightness"`
	MaxBrightness    uint16 `json:"max_brightness" yaml:"max_brightness"`
	Level            int    `json:"level" yaml:"level"`
}

func (s *Status) Report() Report {
	return Report{
		Path:             s.path,
		ActualBrightness: s.ActualBrightness,
		Brightness:       s.Brightness,
		MaxBrightness:    s.MaxBrightness,
		Level:            s.Level(),
	}
}

// Encode writes the status to w in the given format.
func (s *Status) Encode(w io.Writer, format Format) error {
	switch format {
	case FormatText, "":
		_, err := fmt.Fprintln(w, s.String())
		return err
	case FormatJSON:
		data, err := json.MarshalIndent(s.Report(), "", "  ")
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, string(data))
		return err
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(s.Report()); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}
