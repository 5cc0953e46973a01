package datafile

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/benjaminschreck/go-slick/pkg/slick"
)

func TestFormatFromPath(t *testing.T) {
	tests := []struct {
		path    string
		want    Format
		wantErr bool
	}{
		{"data.json", FormatJSON, false},
		{"data.JSONC", FormatJSON, false},
		{"dir/data.yaml", FormatYAML, false},
		{"data.yml", FormatYAML, false},
		{"data.toml", "", true},
		{"data", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			got, err := FormatFromPath(tt.path)
			if (err != nil) != tt.wantErr {
				t.Fatalf("FormatFromPath(%q) error = %v, wantErr %v", tt.path, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("FormatFromPath(%q) = %q, want %q", tt.path, got, tt.want)
			}
		})
	}
}

func TestLoadFixtures(t *testing.T) {
	for _, name := range []string{"product.jsonc", "product.yaml"} {
		t.Run(name, func(t *testing.T) {
			data, err := Load(filepath.Join("testdata", name))
			if err != nil {
				t.Fatalf("Load() error = %v", err)
			}

			if data.Title != "Amazing Product" {
				t.Errorf("Title = %q", data.Title)
			}
			if data.Subtitle == nil || *data.Subtitle != "The Best Solution" {
				t.Errorf("Subtitle = %v", data.Subtitle)
			}
			if len(data.Features) != 3 || data.Features[2] != "Secure" {
				t.Errorf("Features = %v", data.Features)
			}
			if len(data.Sections) != 2 {
				t.Fatalf("len(Sections) = %d, want 2", len(data.Sections))
			}
			if got := data.Sections[1].Summary(); got != "Specs: [4 cores, 16 GB]" {
				t.Errorf("Sections[1].Summary() = %q", got)
			}
			if len(data.Stats) != 1 || data.Stats[0].Color == nil || *data.Stats[0].Color != "#22c55e" {
				t.Errorf("Stats = %+v", data.Stats)
			}
			if data.Contact == nil || data.Contact.Email == nil || *data.Contact.Email != "sales@example.com" {
				t.Errorf("Contact = %+v", data.Contact)
			}
			if data.Style == nil || data.Style.PrimaryColor == nil || *data.Style.PrimaryColor != "#1e40af" {
				t.Errorf("Style.PrimaryColor = %+v", data.Style)
			}
			if data.Style.FontFamily == nil || *data.Style.FontFamily != "Inter" {
				t.Errorf("Style.FontFamily = %v", data.Style.FontFamily)
			}
			if data.Images["logo"] != "img_abc123" {
				t.Errorf("Images = %v", data.Images)
			}
			if data.Metadata["version"] != "2.1" {
				t.Errorf("Metadata = %v", data.Metadata)
			}
		})
	}
}

func TestLoadRendersLikeBuiltData(t *testing.T) {
	data, err := Load(filepath.Join("testdata", "product.jsonc"))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	got, err := slick.Render("{{title}} v{{version}} {{style.primaryColor}} {{features.length}}", data)
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if want := "Amazing Product v2.1 #1e40af 3"; got != want {
		t.Errorf("Render() = %q, want %q", got, want)
	}
}

func TestDecodeStyleKeys(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		format Format
		want   string
	}{
		{"json snake", `{"title":"t","style":{"accent_color":"#fff"}}`, FormatJSON, "#fff"},
		{"json camel", `{"title":"t","style":{"accentColor":"#000"}}`, FormatJSON, "#000"},
		{"json both prefers snake", `{"title":"t","style":{"accentColor":"#000","accent_color":"#fff"}}`, FormatJSON, "#fff"},
		{"yaml camel", "title: t\nstyle:\n  accentColor: \"#abc\"\n", FormatYAML, "#abc"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := Decode([]byte(tt.input), tt.format)
			if err != nil {
				t.Fatalf("Decode() error = %v", err)
			}
			if data.Style == nil || data.Style.AccentColor == nil {
				t.Fatalf("AccentColor not set: %+v", data.Style)
			}
			if *data.Style.AccentColor != tt.want {
				t.Errorf("AccentColor = %q, want %q", *data.Style.AccentColor, tt.want)
			}
		})
	}
}

func TestDecodeErrors(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		format  Format
		wantErr string
	}{
		{"bad json", `{"title": `, FormatJSON, "parsing JSON data"},
		{"bad yaml", "title: [unterminated", FormatYAML, "parsing YAML data"},
		{"unknown format", `{}`, Format("toml"), "unknown data format"},
		{"no title", `{"body":"x"}`, FormatJSON, "missing required field: title"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode([]byte(tt.input), tt.format)
			if err == nil {
				t.Fatal("Decode() expected error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Decode() error = %q, want substring %q", err, tt.wantErr)
			}
		})
	}
}

func TestLoadErrorsNamePath(t *testing.T) {
	path := filepath.Join("testdata", "untitled.json")
	_, err := Load(path)
	if !errors.Is(err, ErrMissingTitle) {
		t.Fatalf("Load() error = %v, want ErrMissingTitle", err)
	}
	if !strings.HasPrefix(err.Error(), path+": ") {
		t.Errorf("Load() error = %q, want it prefixed with the path", err)
	}

	if _, err := Load(filepath.Join("testdata", "missing.json")); err == nil {
		t.Error("Load() of a missing file should fail")
	}
}
