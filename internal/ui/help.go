package ui

import (
	"errors"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/noborus/ov/oviewer"
)

var errNoProgram = errors.New("program not set")

// terminal is the part of tea.Program the pager needs
type terminal interface {
	ReleaseTerminal() error
	RestoreTerminal() error
}

// HelpOps shows the full key reference outside the Bubble Tea screen
type HelpOps struct {
	term terminal

	// runPager is swapped out in tests
	runPager func(content string) error
}

// NewHelpOps creates a new help operations instance
func NewHelpOps(program *tea.Program) *HelpOps {
	h := &HelpOps{runPager: runOv}
	if program != nil {
		h.term = program
	}
	return h
}

// ShowHelpInPager hands the terminal to ov until the user quits it
func (h *HelpOps) ShowHelpInPager(helpContent string) error {
	if h.term == nil {
		return errNoProgram
	}

	if err := h.term.ReleaseTerminal(); err != nil {
		return err
	}

	// Ensure terminal is restored even if ov fails
	defer func() {
		// Small delay to ensure ov has fully exited before restoring terminal
		time.Sleep(100 * time.Millisecond)
		_ = h.term.RestoreTerminal()
	}()

	return h.runPager(helpContent)
}

func runOv(content string) error {
	root, err := oviewer.NewRoot(strings.NewReader(content))
	if err != nil {
		return err
	}

	// Leave nothing behind on our screen when ov exits
	config := oviewer.NewConfig()
	config.IsWriteOnExit = false
	config.IsWriteOriginal = false
	root.SetConfig(config)

	return root.Run()
}
