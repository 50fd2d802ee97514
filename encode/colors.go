package encode

import (
	"fmt"

	"github.com/fatih/color"
)

// Colors maps the parts of a rendered shape to sprintf-style colorizers.
type Colors struct {
	Field   func(string, ...any) string
	Type    func(string, ...any) string
	ColName func(string, ...any) string
	Sep     func(string, ...any) string
}

// NewColors returns the default palette.
func NewColors() *Colors {
	return &Colors{
		Field:   color.RGB(128, 168, 196).SprintfFunc(),
		Type:    color.RGB(8, 196, 16).SprintfFunc(),
		ColName: color.RGB(196, 96, 16).SprintfFunc(),
		Sep:     color.RGB(255, 0, 196).SprintfFunc(),
	}
}

// NoColors returns a palette that renders plain text.
func NoColors() *Colors {
	return &Colors{
		Field:   fmt.Sprintf,
		Type:    fmt.Sprintf,
		ColName: fmt.Sprintf,
		Sep:     fmt.Sprintf,
	}
}
