package slick

import (
	"fmt"
	"strings"
)

// Data is the structured content a template renders against. The engine only
// reads it; absent optional fields resolve to "not found".
type Data struct {
	Title    string            `json:"title" yaml:"title"`
	Subtitle *string           `json:"subtitle,omitempty" yaml:"subtitle,omitempty"`
	Body     string            `json:"body" yaml:"body"`
	Sections []Section         `json:"sections" yaml:"sections"`
	Features []string          `json:"features" yaml:"features"`
	Stats    []Stat            `json:"stats" yaml:"stats"`
	Contact  *ContactInfo      `json:"contact,omitempty" yaml:"contact,omitempty"`
	Style    *StyleHints       `json:"style,omitempty" yaml:"style,omitempty"`
	Images   map[string]string `json:"images,omitempty" yaml:"images,omitempty"` // semantic name -> image path
	Metadata map[string]string `json:"metadata" yaml:"metadata"`
}

// NewData returns Data with the given title.
func NewData(title string) *Data {
	return &Data{Title: title}
}

func (d *Data) WithSubtitle(subtitle string) *Data {
	d.Subtitle = &subtitle
	return d
}

func (d *Data) WithBody(body string) *Data {
	d.Body = body
	return d
}

func (d *Data) WithSection(s Section) *Data {
	d.Sections = append(d.Sections, s)
	return d
}

func (d *Data) WithFeature(feature string) *Data {
	d.Features = append(d.Features, feature)
	return d
}

func (d *Data) WithStat(s Stat) *Data {
	d.Stats = append(d.Stats, s)
	return d
}

func (d *Data) WithContact(c ContactInfo) *Data {
	d.Contact = &c
	return d
}

func (d *Data) WithStyle(s StyleHints) *Data {
	d.Style = &s
	return d
}

func (d *Data) WithImage(name, path string) *Data {
	if d.Images == nil {
		d.Images = make(map[string]string)
	}
	d.Images[name] = path
	return d
}

func (d *Data) WithMetadata(key, value string) *Data {
	if d.Metadata == nil {
		d.Metadata = make(map[string]string)
	}
	d.Metadata[key] = value
	return d
}

// SectionType is the kind of a content section
type SectionType string

const (
	SectionText  SectionType = "text"
	SectionList  SectionType = "list"
	SectionTable SectionType = "table"
	SectionQuote SectionType = "quote"
)

// Section is a structured content block. Only the fields relevant to its Type
// are meaningful.
type Section struct {
	Heading string      `json:"heading" yaml:"heading"`
	Content string      `json:"content" yaml:"content"`
	Type    SectionType `json:"type,omitempty" yaml:"type,omitempty"`
	Items   []string    `json:"items,omitempty" yaml:"items,omitempty"`
	Rows    [][]string  `json:"rows,omitempty" yaml:"rows,omitempty"`
	Columns *int        `json:"columns,omitempty" yaml:"columns,omitempty"`
}

func TextSection(heading, content string) Section {
	return Section{Heading: heading, Content: content, Type: SectionText}
}

func ListSection(heading string, items ...string) Section {
	return Section{Heading: heading, Type: SectionList, Items: items}
}

func TableSection(heading string, rows [][]string, columns int) Section {
	return Section{Heading: heading, Type: SectionTable, Rows: rows, Columns: &columns}
}

func QuoteSection(heading, content string) Section {
	return Section{Heading: heading, Content: content, Type: SectionQuote}
}

// Summary reduces the section to the single line exposed as {{this}} in loops.
// An empty Type is treated as text.
func (s Section) Summary() string {
	switch s.Type {
	case SectionList:
		return fmt.Sprintf("%s: [%s]", s.Heading, strings.Join(s.Items, ", "))
	case SectionTable:
		return s.Heading + ": <table>"
	case SectionQuote:
		return fmt.Sprintf("%s: \"%s\"", s.Heading, s.Content)
	default:
		return s.Heading + ": " + s.Content
	}
}

// Stat is a statistic to display, e.g. "95%" / "Uptime".
type Stat struct {
	Value string  `json:"value" yaml:"value"`
	Label string  `json:"label" yaml:"label"`
	Color *string `json:"color,omitempty" yaml:"color,omitempty"`
}

func NewStat(value, label string) Stat {
	return Stat{Value: value, Label: label}
}

func (s Stat) WithColor(color string) Stat {
	s.Color = &color
	return s
}

// Summary reduces the stat to "value: label".
func (s Stat) Summary() string {
	return s.Value + ": " + s.Label
}

// ContactInfo holds optional contact details
type ContactInfo struct {
	Email   *string `json:"email,omitempty" yaml:"email,omitempty"`
	Phone   *string `json:"phone,omitempty" yaml:"phone,omitempty"`
	Website *string `json:"website,omitempty" yaml:"website,omitempty"`
	Address *string `json:"address,omitempty" yaml:"address,omitempty"`
}

// ContactEmail returns contact info with only an email set.
func ContactEmail(email string) ContactInfo {
	return ContactInfo{Email: &email}
}

// StyleHints holds optional presentation hints.
type StyleHints struct {
	PrimaryColor *string `json:"primary_color,omitempty" yaml:"primary_color,omitempty"`
	AccentColor  *string `json:"accent_color,omitempty" yaml:"accent_color,omitempty"`
	FontFamily   *string `json:"font_family,omitempty" yaml:"font_family,omitempty"`
}

// Str returns a pointer to s, for filling optional fields.
func Str(s string) *string {
	return &s
}
