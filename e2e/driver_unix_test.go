//go:build e2e && unix

package main

import (
	"bytes"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"regexp"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/creack/pty"
)

var binPath = "listkit_e2e"

// Key constants as the terminal sends them
const (
	KeyCtrlA     = "\x01"
	KeyCtrlC     = "\x03"
	KeySpace     = " "
	KeyUp        = "\x1b[A"
	KeyDown      = "\x1b[B"
	KeyShiftUp   = "\x1b[1;2A"
	KeyShiftDown = "\x1b[1;2B"
	KeyCtrlDown  = "\x1b[1;5B"
	KeyEnd       = "\x1b[F"
	KeyF1        = "\x1bOP"
	KeyEsc       = "\x1b"
)

// ansiRe matches CSI, OSC, charset and keypad sequences plus carriage returns
var ansiRe = regexp.MustCompile(
	`(?:\x1b\[[0-9;?]*[ -/]*[@-~])|` +
		`(?:\x1b\][^\x07]*\x07)|` +
		`(?:\x1b[\(\)][A-Za-z])|` +
		`(?:\x1b=|\x1b>)|` +
		`\r`,
)

// TUITestFramework drives one listkit process in a pty
type TUITestFramework struct {
	t         *testing.T
	pty       *os.File
	tty       *os.File
	cmd       *exec.Cmd
	workspace string

	mu  sync.Mutex
	out bytes.Buffer
}

// NewTUITest creates a new TUI test framework instance
func NewTUITest(t *testing.T) *TUITestFramework {
	return &TUITestFramework{t: t}
}

// StartApp launches listkit with args in a 120x40 pty, from the workspace
func (tf *TUITestFramework) StartApp(args ...string) error {
	if tf.workspace == "" {
		tf.workspace = tf.t.TempDir()
	}

	tf.cmd = exec.Command(binPath, args...)
	tf.cmd.Dir = tf.workspace
	tf.cmd.Env = append(os.Environ(),
		"TERM=xterm-256color",
		"LC_ALL=C",
		"LANG=C",
		"HOME="+tf.workspace,
		"XDG_CONFIG_HOME="+filepath.Join(tf.workspace, ".config"),
		"TMPDIR="+tf.workspace, // keeps the log file inside the workspace
		"LISTKIT_E2E_TEST=1",
	)

	ptyFile, tty, err := pty.Open()
	if err != nil {
		return fmt.Errorf("failed to open pty: %w", err)
	}
	tf.pty = ptyFile
	tf.tty = tty
	tf.cmd.Stdout = tty
	tf.cmd.Stdin = tty
	tf.cmd.Stderr = tty

	if err := pty.Setsize(ptyFile, &pty.Winsize{Rows: 40, Cols: 120}); err != nil {
		return fmt.Errorf("failed to size pty: %w", err)
	}

	if err := tf.cmd.Start(); err != nil {
		return fmt.Errorf("failed to start command: %w", err)
	}

	go tf.capture()
	return nil
}

// capture copies pty output into the buffer until the pty closes
func (tf *TUITestFramework) capture() {
	chunk := make([]byte, 8192)
	for {
		n, err := tf.pty.Read(chunk)
		if n > 0 {
			tf.mu.Lock()
			tf.out.Write(chunk[:n])
			tf.mu.Unlock()
		}
		if err != nil {
			return
		}
	}
}

// SendKeys writes keys to the application
func (tf *TUITestFramework) SendKeys(keys string) error {
	tf.t.Helper()
	_, err := tf.pty.Write([]byte(keys))
	return err
}

// Select sends space to toggle the active option
func (tf *TUITestFramework) Select() error {
	return tf.SendKeys(KeySpace)
}

func (tf *TUITestFramework) Down() error {
	return tf.SendKeys(KeyDown)
}

func (tf *TUITestFramework) Up() error {
	return tf.SendKeys(KeyUp)
}

// Quit sends ctrl+c
func (tf *TUITestFramework) Quit() error {
	return tf.SendKeys(KeyCtrlC)
}

// Type sends text one key at a time, as typeahead sees it
func (tf *TUITestFramework) Type(text string) error {
	tf.t.Helper()
	for _, r := range text {
		if err := tf.SendKeys(string(r)); err != nil {
			return err
		}
		time.Sleep(10 * time.Millisecond)
	}
	return nil
}

// Ready waits for the first frame
func (tf *TUITestFramework) Ready() bool {
	tf.t.Helper()
	return tf.waitFor("__READY__", 5*time.Second)
}

// SeePlain waits for text to appear in the output with escape codes removed
func (tf *TUITestFramework) SeePlain(text string) bool {
	tf.t.Helper()
	return tf.waitFor(text, 3*time.Second)
}

// WaitExit reports whether the process exited within timeout, and its error
func (tf *TUITestFramework) WaitExit(timeout time.Duration) (bool, error) {
	tf.t.Helper()
	done := make(chan error, 1)
	go func() {
		done <- tf.cmd.Wait()
	}()

	select {
	case err := <-done:
		return true, err
	case <-time.After(timeout):
		return false, nil
	}
}

func (tf *TUITestFramework) waitFor(text string, timeout time.Duration) bool {
	tf.t.Helper()
	deadline := time.Now().Add(timeout)
	for {
		if strings.Contains(tf.plain(), text) {
			return true
		}
		if time.Now().After(deadline) {
			tf.t.Logf("waiting for %q, output tail:\n%s", text, tail(tf.plain(), 2048))
			return false
		}
		time.Sleep(25 * time.Millisecond)
	}
}

func (tf *TUITestFramework) plain() string {
	tf.mu.Lock()
	defer tf.mu.Unlock()
	return ansiRe.ReplaceAllString(tf.out.String(), "")
}

func tail(s string, n int) string {
	if len(s) > n {
		return s[len(s)-n:]
	}
	return s
}

// Cleanup closes the pty and kills the application
func (tf *TUITestFramework) Cleanup() {
	// Closing the pty delivers SIGHUP to the child.
	if tf.pty != nil {
		_ = tf.pty.Close()
		tf.pty = nil
	}
	if tf.tty != nil {
		_ = tf.tty.Close()
		tf.tty = nil
	}
	if tf.cmd != nil && tf.cmd.Process != nil {
		_ = tf.cmd.Process.Kill()
		_, _ = tf.cmd.Process.Wait()
		tf.cmd = nil
	}
}

// WriteConfig writes content to the workspace's local config file
func (tf *TUITestFramework) WriteConfig(content string) error {
	tf.t.Helper()
	if tf.workspace == "" {
		tf.workspace = tf.t.TempDir()
	}
	return os.WriteFile(filepath.Join(tf.workspace, ".listkit.toml"), []byte(content), 0644)
}
