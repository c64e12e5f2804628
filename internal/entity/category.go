package entity

import (
	"slices"
	"strings"
	"time"
	"unicode/utf8"
)

const MaxCategoryNameLength = 64

type Color string

const (
	ColorGray   Color = "gray"
	ColorRed    Color = "red"
	ColorOrange Color = "orange"
	ColorYellow Color = "yellow"
	ColorGreen  Color = "green"
	ColorTeal   Color = "teal"
	ColorBlue   Color = "blue"
	ColorPurple Color = "purple"
	ColorPink   Color = "pink"

	DefaultColor = ColorGray
)

var palette = []Color{
	ColorGray,
	ColorRed,
	ColorOrange,
	ColorYellow,
	ColorGreen,
	ColorTeal,
	ColorBlue,
	ColorPurple,
	ColorPink,
}

func Palette() []Color {
	return slices.Clone(palette)
}

// ParseColor maps an optional label onto the palette. Empty means DefaultColor.
func ParseColor(s string) (Color, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return DefaultColor, nil
	}

	c := Color(s)
	if !slices.Contains(palette, c) {
		return "", NewValidationError("color", "unknown color "+s)
	}

	return c, nil
}

type Category struct {
	ID        string
	OwnerID   string
	Name      string
	Color     Color
	NoteCount int
	CreatedAt time.Time
	UpdatedAt time.Time
}

func NormalizeCategoryName(name string) (string, error) {
	n := strings.TrimSpace(name)
	switch l := utf8.RuneCountInString(n); {
	case l == 0:
		return "", NewValidationError("name", "must not be empty")
	case l > MaxCategoryNameLength:
		return "", NewValidationError("name", "must be at most 64 characters")
	}

	return n, nil
}

// DeleteResolution tells the category delete what to do with notes that
// still reference the category. The zero value means "no resolution".
type DeleteResolution struct {
	ReassignTo *string
	Clear      bool
}

func (r DeleteResolution) Validate() error {
	if r.ReassignTo != nil && r.Clear {
		return NewValidationError("resolution", "reassignTo and clear are mutually exclusive")
	}

	if r.ReassignTo != nil && strings.TrimSpace(*r.ReassignTo) == "" {
		return NewValidationError("reassignTo", "must not be empty")
	}

	return nil
}

func (r DeleteResolution) IsEmpty() bool {
	return r.ReassignTo == nil && !r.Clear
}
