package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/lipgloss"

	"listkit/internal/domain"
)

// ViewState contains all the state needed for rendering
type ViewState struct {
	Width            int
	Height           int
	Title            string
	Options          []*domain.Option
	Selected         map[string]bool
	ActiveIndex      int
	Multi            bool
	Horizontal       bool
	ListDisabled     bool
	Tabindex         int
	ActiveDescendant string
	Query            string
	Mode             string
	ShowHelp         bool
	HelpModel        help.Model
	Keys             help.KeyMap
	Viewport         Viewport
	StatusMessage    string
}

// Renderer handles all view rendering
type Renderer struct {
	styles       *Styles
	optionRender *OptionRenderer
	popupRender  *PopupRenderer
}

// NewRenderer creates a new renderer
func NewRenderer() *Renderer {
	styles := NewStyles()
	return &Renderer{
		styles:       styles,
		optionRender: NewOptionRenderer(styles),
		popupRender:  NewPopupRenderer(styles),
	}
}

// Render produces the complete view
func (r *Renderer) Render(state ViewState) string {
	content := &strings.Builder{}

	title := state.Title
	if title == "" {
		title = "listkit"
	}
	content.WriteString(r.styles.Title.Render(title))
	content.WriteString("\n")

	var listContent string
	switch {
	case len(state.Options) == 0:
		listContent = r.styles.Dim.Render("No options configured. Run listkit init to write a sample config.")
	case state.Horizontal:
		listContent = r.renderRow(state)
	default:
		listContent = r.renderColumn(state)
	}
	if state.ListDisabled && len(state.Options) > 0 {
		listContent = desaturate(listContent)
	}
	content.WriteString(listContent)
	content.WriteString("\n")

	content.WriteString(r.styles.Status.Render(r.RenderStatus(state)))

	if state.StatusMessage != "" {
		content.WriteString("\n")
		content.WriteString(r.styles.Dim.Render(state.StatusMessage))
	}

	if !state.ShowHelp && state.Keys != nil {
		content.WriteString("\n")
		content.WriteString(state.HelpModel.View(state.Keys))
	}

	finalContent := r.styles.Main.Render(content.String())

	if state.ShowHelp && state.Keys != nil {
		return r.popupRender.RenderPopup(r.RenderHelpContent(state.Keys), state.Height, state.Width, r.styles.HelpBox)
	}

	return finalContent
}

// RenderStatus renders the outputs of the list as a single line
func (r *Renderer) RenderStatus(state ViewState) string {
	descendant := state.ActiveDescendant
	if descendant == "" {
		descendant = "-"
	}

	parts := []string{
		fmt.Sprintf("active %d", state.ActiveIndex),
		fmt.Sprintf("tabindex %d", state.Tabindex),
		fmt.Sprintf("activedescendant %s", descendant),
	}
	if state.ListDisabled {
		parts = append(parts, r.styles.StatusOff.Render("disabled"))
	}
	if state.Query != "" {
		parts = append(parts, r.styles.Query.Render(fmt.Sprintf("search %q", state.Query)))
	}
	parts = append(parts, fmt.Sprintf("%d selected", countSelected(state)))
	if state.Mode != "" {
		parts = append(parts, state.Mode)
	}
	return strings.Join(parts, " • ")
}

// renderColumn renders one option per line inside the viewport
func (r *Renderer) renderColumn(state ViewState) string {
	total := len(state.Options)
	start, end := state.Viewport.Window(total)

	var lines []string
	if start > 0 {
		lines = append(lines, r.styles.Scroll.Render(fmt.Sprintf("↑ %d more above ↑", start)))
	}

	// Account for main container padding
	width := state.Width - 4
	for i := start; i < end; i++ {
		lines = append(lines, r.optionRender.RenderOption(r.row(state, i), width))
	}

	if below := total - end; below > 0 {
		lines = append(lines, r.styles.Scroll.Render(fmt.Sprintf("↓ %d more below ↓", below)))
	}
	return strings.Join(lines, "\n")
}

// renderRow renders every option side by side
func (r *Renderer) renderRow(state ViewState) string {
	cells := make([]string, 0, len(state.Options))
	for i := range state.Options {
		cells = append(cells, r.optionRender.RenderOption(r.row(state, i), 0))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cells...)
}

func (r *Renderer) row(state ViewState, index int) OptionRow {
	opt := state.Options[index]
	return OptionRow{
		Option:    opt,
		Active:    index == state.ActiveIndex && !state.ListDisabled,
		Selected:  state.Selected[opt.Value()],
		Focusable: !opt.Disabled() && !state.ListDisabled,
		Multi:     state.Multi,
	}
}

// RenderHelpContent renders the full key reference
func (r *Renderer) RenderHelpContent(keys help.KeyMap) string {
	sections := []string{"Navigation", "Range selection", "Selection", "Other"}

	var b strings.Builder
	b.WriteString(r.styles.Title.Render("listkit help"))
	b.WriteString("\n")

	for i, group := range keys.FullHelp() {
		name := "Keys"
		if i < len(sections) {
			name = sections[i]
		}
		b.WriteString(r.styles.Section.Render(name))
		b.WriteString("\n")

		keyWidth := 0
		for _, binding := range group {
			keyWidth = max(keyWidth, lipgloss.Width(binding.Help().Key))
		}
		for _, binding := range group {
			h := binding.Help()
			pad := strings.Repeat(" ", keyWidth-lipgloss.Width(h.Key))
			fmt.Fprintf(&b, "  %s%s  %s\n", r.styles.HelpKey.Render(h.Key), pad, r.styles.HelpDesc.Render(h.Desc))
		}
	}

	b.WriteString("\n")
	b.WriteString(r.styles.Dim.Render("Type to jump to an option. Press f1 or esc to close."))
	return b.String()
}

func countSelected(state ViewState) int {
	n := 0
	for _, selected := range state.Selected {
		if selected {
			n++
		}
	}
	return n
}
