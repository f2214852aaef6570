package ui

import (
	"fmt"
	"os"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"listkit/internal/config"
	"listkit/internal/domain"
	"listkit/internal/logging"
	"listkit/internal/ui/input"
	inputtypes "listkit/internal/ui/input/types"
	"listkit/internal/ui/list"
	"listkit/internal/ui/services/events"
	"listkit/internal/ui/services/focus"
	"listkit/internal/ui/services/navigation"
	"listkit/internal/ui/services/selection"
	"listkit/internal/ui/services/typeahead"
	"listkit/internal/ui/views"
)

// ReadyMarker ends every frame when E2EEnv is set so a pty driver knows the
// screen has been drawn.
const (
	ReadyMarker = "__READY__"
	E2EEnv      = "LISTKIT_E2E_TEST"
)

// Model represents the UI state
type Model struct {
	bus    events.EventBus
	config *config.Config
	logger zerolog.Logger

	options []*domain.Option
	items   []domain.Item[string]
	values  *selection.Set[string]
	list    *list.Controller[string]

	// UI-specific state
	width         int
	height        int
	help          help.Model
	viewport      views.Viewport
	statusMessage string
	inPagerMode   bool // tracks if we're currently in pager mode
	quitting      bool
	e2e           bool

	// Handlers
	inputHandler *input.Handler
	inputCtx     *input.ModelContext
	renderer     *views.Renderer
	helpOps      *HelpOps

	// Program reference for terminal management
	program *tea.Program
}

// NewModel creates a new UI model over the options in cfg
func NewModel(bus events.EventBus, cfg *config.Config) *Model {
	if bus == nil {
		bus = events.NewBus()
	}

	m := &Model{
		bus:          bus,
		config:       cfg,
		logger:       logging.Component("ui"),
		help:         help.New(),
		renderer:     views.NewRenderer(),
		inputHandler: input.New(inputtypes.NewKeyMap(inputtypes.ParseOrientation(cfg.Listbox.Orientation))),
		helpOps:      NewHelpOps(nil),
		e2e:          os.Getenv(E2EEnv) == "1",
	}

	m.options, m.values = buildOptions(cfg.Options)
	m.items = domain.Items(m.options)

	m.list = list.New(list.Inputs[string]{
		Items:          func() []domain.Item[string] { return m.items },
		Values:         m.values,
		Multi:          func() bool { return m.config.Listbox.Multi },
		Wrap:           func() bool { return m.config.Listbox.Wrap },
		Disabled:       func() bool { return m.config.Listbox.Disabled },
		TypeaheadDelay: m.config.Delay,
		FocusMode:      func() focus.Mode { return focus.ParseMode(m.config.Listbox.FocusMode) },
		Bus:            bus,
	}, list.WithLogger[string](logging.Component("list")))

	m.inputCtx = &input.ModelContext{
		List:      m.list,
		MultiFn:   func() bool { return m.config.Listbox.Multi },
		Selection: inputtypes.ParseSelectionMode(cfg.Listbox.SelectionMode),
	}

	m.list.SetDefaultState()

	m.logger.Info().
		Int("options", len(m.options)).
		Int("selected", m.values.Len()).
		Bool("multi", cfg.Listbox.Multi).
		Str("selection_mode", cfg.Listbox.SelectionMode).
		Msg("listbox ready")

	return m
}

// buildOptions turns config entries into list options and the initial selection
func buildOptions(entries []config.OptionConfig) ([]*domain.Option, *selection.Set[string]) {
	prefix := "listbox-" + uuid.NewString()[:8]

	options := make([]*domain.Option, 0, len(entries))
	var preselected []string
	for i, entry := range entries {
		id := entry.ID
		if id == "" {
			id = fmt.Sprintf("%s-option-%d", prefix, i)
		}
		options = append(options, &domain.Option{
			OptionID: id,
			Label:    entry.Label,
			Key:      entry.Key(),
			Inactive: entry.Disabled,
		})
		if entry.Selected {
			preselected = append(preselected, entry.Key())
		}
	}
	return options, selection.NewSet(preselected...)
}

// SetProgram sets the program reference for terminal management
func (m *Model) SetProgram(p *tea.Program) {
	m.program = p
	m.helpOps = NewHelpOps(p)
}

// ForwardEvents delivers bus events raised off the update goroutine to send
func ForwardEvents(bus events.EventBus, send func(tea.Msg)) {
	events.On(bus, func(e typeahead.ResetEvent) {
		send(EventMsg{Event: e})
	})
}

// Selected returns the selected option values in list order
func (m *Model) Selected() []string {
	items := m.list.SelectedItems()
	out := make([]string, len(items))
	for i, item := range items {
		out[i] = item.Value()
	}
	return out
}

// Close stops the pending typeahead reset
func (m *Model) Close() {
	m.list.Close()
}

// Init returns an initial command
func (m *Model) Init() tea.Cmd {
	// Will be updated on first WindowSizeMsg
	m.viewport.Height = 20
	m.ensureActiveVisible()
	return nil
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.updateViewportHeight()
		return m, nil

	case tea.KeyMsg:
		if m.inPagerMode {
			return m, nil
		}
		m.statusMessage = ""

		var cmds []tea.Cmd
		for _, action := range m.inputHandler.HandleKey(msg, m.inputCtx) {
			if cmd := m.processAction(action); cmd != nil {
				cmds = append(cmds, cmd)
			}
		}
		m.ensureActiveVisible()
		return m, tea.Batch(cmds...)

	default:
		return m.handleNonKeyboardMsg(msg)
	}
}

// processAction processes an action from the input handler
func (m *Model) processAction(action inputtypes.Action) tea.Cmd {
	m.logger.Debug().Str("action", action.Type()).Msg("processAction")

	switch a := action.(type) {
	case inputtypes.NavigateAction:
		switch a.Direction {
		case navigation.DirectionFirst:
			m.list.First(a.Options)
		case navigation.DirectionLast:
			m.list.Last(a.Options)
		case navigation.DirectionNext:
			m.list.Next(a.Options)
		case navigation.DirectionPrev:
			m.list.Prev(a.Options)
		}

	case inputtypes.SearchAction:
		if !m.list.Search(a.Char, a.Options) && m.list.IsTyping() {
			m.logger.Debug().Str("query", m.list.Query()).Msg("no match")
		}

	case inputtypes.AnchorAction:
		m.list.Anchor(a.Index)

	case inputtypes.UpdateSelectionAction:
		m.list.UpdateSelection(a.Options)

	case inputtypes.ToggleAction:
		m.list.Toggle(nil)

	case inputtypes.ToggleOneAction:
		m.list.ToggleOne()

	case inputtypes.ToggleAllAction:
		m.list.ToggleAll()

	case inputtypes.DeselectAllAction:
		m.list.DeselectAll()

	case inputtypes.OpenHelpPagerAction:
		return m.fetchHelpPager(m.renderer.RenderHelpContent(m.inputHandler.Keys()))

	case inputtypes.QuitAction:
		m.quitting = true
		m.list.Close()
		return tea.Quit
	}

	return nil
}

// fetchHelpPager returns a command that shows help using ov pager
func (m *Model) fetchHelpPager(helpContent string) tea.Cmd {
	return func() tea.Msg {
		if m.program == nil {
			return helpPagerMsg{err: errNoProgram}
		}

		// Send pause message to stop rendering
		m.program.Send(pauseRenderingMsg{})

		err := m.helpOps.ShowHelpInPager(helpContent)

		// Send resume message to restart rendering
		m.program.Send(resumeRenderingMsg{})

		return helpPagerMsg{err: err}
	}
}

// handleNonKeyboardMsg handles non-keyboard messages
func (m *Model) handleNonKeyboardMsg(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case EventMsg:
		// The typeahead buffer already changed on the timer goroutine; returning
		// here is enough to redraw the status line.
		if e, ok := msg.Event.(typeahead.ResetEvent); ok {
			m.logger.Debug().Str("query", e.Query).Msg("typeahead reset")
		}
		return m, nil

	case helpPagerMsg:
		if msg.err != nil {
			m.logger.Error().Err(msg.err).Msg("help pager failed")
			m.statusMessage = fmt.Sprintf("Help pager failed: %v", msg.err)
		}
		return m, nil

	case pauseRenderingMsg:
		m.inPagerMode = true
		return m, nil

	case resumeRenderingMsg:
		m.inPagerMode = false
		return m, nil

	default:
		return m, nil
	}
}

// View renders the UI
func (m *Model) View() string {
	if m.quitting {
		return ""
	}
	if m.width == 0 {
		return "Loading..."
	}

	out := m.renderer.Render(views.ViewState{
		Width:            m.width,
		Height:           m.height,
		Options:          m.options,
		Selected:         m.selectedSet(),
		ActiveIndex:      m.list.ActiveIndex(),
		Multi:            m.config.Listbox.Multi,
		Horizontal:       inputtypes.ParseOrientation(m.config.Listbox.Orientation) == inputtypes.Horizontal,
		ListDisabled:     m.list.Disabled(),
		Tabindex:         m.list.Tabindex(),
		ActiveDescendant: m.list.ActiveDescendant(),
		Query:            m.list.Query(),
		Mode:             m.modeLabel(),
		ShowHelp:         m.inputHandler.CurrentMode() == inputtypes.ModeHelp,
		HelpModel:        m.help,
		Keys:             m.inputHandler.Keys(),
		Viewport:         m.viewport,
		StatusMessage:    m.statusMessage,
	})

	if m.e2e {
		out += "\n" + ReadyMarker
	}
	return out
}

func (m *Model) modeLabel() string {
	mode := string(inputtypes.ParseSelectionMode(m.config.Listbox.SelectionMode))
	if m.config.Listbox.Multi {
		return "multi " + mode
	}
	return "single " + mode
}

func (m *Model) selectedSet() map[string]bool {
	selected := make(map[string]bool, m.values.Len())
	for _, v := range m.values.Get() {
		selected[v] = true
	}
	return selected
}

// updateViewportHeight calculates the available height for the option list
func (m *Model) updateViewportHeight() {
	// Title and status (2 lines each), help (1 line), and padding
	reservedLines := 7

	m.viewport.Height = m.height - reservedLines
	if m.viewport.Height < 1 {
		m.viewport.Height = 1
	}

	// Ensure viewport offset is still valid
	m.ensureActiveVisible()
}

// ensureActiveVisible scrolls the viewport to the active option
func (m *Model) ensureActiveVisible() {
	if idx := m.list.ActiveIndex(); idx >= 0 {
		m.viewport.EnsureVisible(idx, len(m.options))
	}
}
