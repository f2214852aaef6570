package views

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"listkit/internal/domain"
)

// OptionRow is everything needed to draw one option
type OptionRow struct {
	Option    *domain.Option
	Active    bool
	Selected  bool
	Focusable bool
	Multi     bool
}

// OptionRenderer handles rendering of listbox options
type OptionRenderer struct {
	styles *Styles
}

// NewOptionRenderer creates a new option renderer
func NewOptionRenderer(styles *Styles) *OptionRenderer {
	return &OptionRenderer{styles: styles}
}

// RenderOption renders a single option, padded to width when width is positive
func (r *OptionRenderer) RenderOption(row OptionRow, width int) string {
	if row.Option == nil {
		return ""
	}

	var parts []string

	// Active indicator
	cursor := "  "
	if row.Active {
		cursor = r.styles.Marker.Render("> ")
	}
	parts = append(parts, cursor)

	// Selection indicator
	parts = append(parts, r.indicator(row))
	parts = append(parts, " ")

	label := row.Option.Label
	if label == "" {
		label = row.Option.Key
	}
	switch {
	case !row.Focusable:
		label = r.styles.Disabled.Render(label)
	case row.Selected:
		label = r.styles.Selected.Render(label)
	}
	parts = append(parts, label)

	line := strings.Join(parts, "")
	if row.Active {
		if pad := width - lipgloss.Width(line); pad > 0 {
			line += strings.Repeat(" ", pad)
		}
		line = r.styles.Active.Render(line)
	}
	return line
}

func (r *OptionRenderer) indicator(row OptionRow) string {
	switch {
	case row.Multi && row.Selected:
		return "[x]"
	case row.Multi:
		return "[ ]"
	case row.Selected:
		return "(*)"
	default:
		return "( )"
	}
}
