// internal/modes/mode.go
//
// Defines the Mode interface that every screen of the dining room implements.
// Modes only talk to the order book through its public operations.

package modes

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/kingrea/bistro/internal/config"
	"github.com/kingrea/bistro/internal/logbook"
	"github.com/kingrea/bistro/internal/restaurant"
)

// ModeContext provides shared context for all modes
type ModeContext struct {
	Config  *config.Config
	Book    *restaurant.OrderBook
	Logbook *logbook.Logbook
}

// SaveOrders persists the order book to the configured orders file.
func (c *ModeContext) SaveOrders() error {
	if c == nil || c.Book == nil {
		return fmt.Errorf("modes: order book unavailable")
	}
	if c.Config == nil {
		return fmt.Errorf("modes: config unavailable")
	}
	return c.Book.Persist(c.Config.OrdersPath())
}

// Mode defines the interface that all modes must implement
type Mode interface {
	// Name returns the mode's display name
	Name() string

	// Init initializes the mode and returns a startup command
	Init(ctx *ModeContext) tea.Cmd

	// Update handles messages and returns the updated mode plus any commands
	// If the mode is complete, it should return a ModeCompleteMsg
	Update(msg tea.Msg) (Mode, tea.Cmd)

	// View renders the mode's current state
	View() string

	// IsComplete returns true if the mode has finished its work
	IsComplete() bool
}

// ModeCompleteMsg signals that a mode has finished and the app should return
// to the main menu
type ModeCompleteMsg struct {
	// Status is shown on the main menu's status line
	Status string
	// Error if the mode failed
	Error error
}

// Complete returns a command that emits a ModeCompleteMsg.
func Complete(status string, err error) tea.Cmd {
	return func() tea.Msg {
		return ModeCompleteMsg{Status: status, Error: err}
	}
}

// BaseMode provides common functionality for all modes
type BaseMode struct {
	ctx       *ModeContext
	name      string
	complete  bool
	statusMsg string
}

// NewBaseMode creates a new BaseMode with the given name
func NewBaseMode(name string) BaseMode {
	return BaseMode{name: name}
}

// Name returns the mode's display name
func (m *BaseMode) Name() string {
	return m.name
}

// IsComplete returns true if the mode has finished
func (m *BaseMode) IsComplete() bool {
	return m.complete
}

// SetComplete marks the mode as complete
func (m *BaseMode) SetComplete(complete bool) {
	m.complete = complete
}

// Context returns the mode context
func (m *BaseMode) Context() *ModeContext {
	return m.ctx
}

// SetContext sets the mode context
func (m *BaseMode) SetContext(ctx *ModeContext) {
	m.ctx = ctx
}

// StatusMsg returns the current status message
func (m *BaseMode) StatusMsg() string {
	return m.statusMsg
}

// SetStatusMsg sets the status message
func (m *BaseMode) SetStatusMsg(msg string) {
	m.statusMsg = msg
}

// LogInfo writes to the logbook when one is configured.
func (m *BaseMode) LogInfo(format string, args ...any) {
	if m.ctx == nil || m.ctx.Logbook == nil {
		return
	}
	m.ctx.Logbook.Info(format, args...)
}

// LogWarn writes a warning to the logbook when one is configured.
func (m *BaseMode) LogWarn(format string, args ...any) {
	if m.ctx == nil || m.ctx.Logbook == nil {
		return
	}
	m.ctx.Logbook.Warn(format, args...)
}
