// Package datafile loads slick.Data from JSON (JSONC) and YAML documents.
//
// JSON files may contain // and /* */ comments and trailing commas. Style
// hints are accepted with either camelCase (primaryColor) or snake_case
// (primary_color) keys; snake_case wins when both are present.
package datafile

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"

	"github.com/benjaminschreck/go-slick/pkg/slick"
)

// Format identifies the encoding of a data file.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ErrMissingTitle is returned when a document has no title key.
var ErrMissingTitle = errors.New("missing required field: title")

// FormatFromPath picks the format from the file extension. Unknown extensions
// are an error.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json", ".jsonc":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("unsupported data file extension %q (want .json, .jsonc, .yaml or .yml)", filepath.Ext(path))
	}
}

// document mirrors slick.Data with the looser key rules of files on disk.
type document struct {
	Title    *string            `json:"title" yaml:"title"`
	Subtitle *string            `json:"subtitle" yaml:"subtitle"`
	Body     string             `json:"body" yaml:"body"`
	Sections []slick.Section    `json:"sections" yaml:"sections"`
	Features []string           `json:"features" yaml:"features"`
	Stats    []slick.Stat       `json:"stats" yaml:"stats"`
	Contact  *slick.ContactInfo `json:"contact" yaml:"contact"`
	Style    *styleDocument     `json:"style" yaml:"style"`
	Images   map[string]string  `json:"images" yaml:"images"`
	Metadata map[string]string  `json:"metadata" yaml:"metadata"`
}

type styleDocument struct {
	PrimaryColor      *string `json:"primary_color" yaml:"primary_color"`
	AccentColor       *string `json:"accent_color" yaml:"accent_color"`
	FontFamily        *string `json:"font_family" yaml:"font_family"`
	PrimaryColorCamel *string `json:"primaryColor" yaml:"primaryColor"`
	AccentColorCamel  *string `json:"accentColor" yaml:"accentColor"`
	FontFamilyCamel   *string `json:"fontFamily" yaml:"fontFamily"`
}

func (s *styleDocument) hints() *slick.StyleHints {
	if s == nil {
		return nil
	}
	return &slick.StyleHints{
		PrimaryColor: firstSet(s.PrimaryColor, s.PrimaryColorCamel),
		AccentColor:  firstSet(s.AccentColor, s.AccentColorCamel),
		FontFamily:   firstSet(s.FontFamily, s.FontFamilyCamel),
	}
}

func firstSet(values ...*string) *string {
	for _, v := range values {
		if v != nil {
			return v
		}
	}
	return nil
}

// Decode parses b in the given format.
func Decode(b []byte, format Format) (*slick.Data, error) {
	var doc document
	switch format {
	case FormatJSON:
		if err := json.Unmarshal(jsonc.ToJSON(b), &doc); err != nil {
			return nil, fmt.Errorf("parsing JSON data: %w", err)
		}
	case FormatYAML:
		if err := yaml.Unmarshal(b, &doc); err != nil {
			return nil, fmt.Errorf("parsing YAML data: %w", err)
		}
	default:
		return nil, fmt.Errorf("unknown data format %q", format)
	}

	if doc.Title == nil {
		return nil, ErrMissingTitle
	}

	return &slick.Data{
		Title:    *doc.Title,
		Subtitle: doc.Subtitle,
		Body:     doc.Body,
		Sections: doc.Sections,
		Features: doc.Features,
		Stats:    doc.Stats,
		Contact:  doc.Contact,
		Style:    doc.Style.hints(),
		Images:   doc.Images,
		Metadata: doc.Metadata,
	}, nil
}

// Load reads and decodes the data file at path.
func Load(path string) (*slick.Data, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	data, err := Decode(b, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return data, nil
}
