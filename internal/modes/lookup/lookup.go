// internal/modes/lookup/lookup.go
//
// Lookup mode asks for a table number and then acts on that table's order:
// ActionShow renders the receipt, ActionCancel drops the order and saves.

package lookup

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/kingrea/bistro/internal/modes"
	"github.com/kingrea/bistro/internal/restaurant"
)

// Action selects what happens once a table is chosen.
type Action int

const (
	ActionShow Action = iota
	ActionCancel
)

func (a Action) title() string {
	if a == ActionCancel {
		return "⬡ CANCEL ORDER"
	}
	return "⬡ SHOW ORDER"
}

// Mode handles per-table order lookup
type Mode struct {
	modes.BaseMode
	action   Action
	input    textinput.Model
	receipt  string
	errorMsg string
}

// New creates a lookup mode for action
func New(action Action) *Mode {
	name := "Show Order"
	if action == ActionCancel {
		name = "Cancel Order"
	}
	return &Mode{
		BaseMode: modes.NewBaseMode(name),
		action:   action,
		input:    modes.NewPrompt("Table number"),
	}
}

// Init checks there is an order to look at
func (m *Mode) Init(ctx *modes.ModeContext) tea.Cmd {
	m.SetContext(ctx)
	if ctx == nil || ctx.Book == nil {
		m.SetComplete(true)
		return modes.Complete("", fmt.Errorf("lookup: order book unavailable"))
	}
	if len(ctx.Book.OccupiedTables()) == 0 {
		m.SetComplete(true)
		return modes.Complete("No active orders", nil)
	}
	m.SetStatusMsg("Enter a table number")
	return textinput.Blink
}

// Update handles messages for the lookup mode
func (m *Mode) Update(msg tea.Msg) (modes.Mode, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			m.SetComplete(true)
			return m, modes.Complete("", nil)
		case "enter":
			if m.receipt != "" {
				m.SetComplete(true)
				return m, modes.Complete("", nil)
			}
			return m.submit()
		}
	}
	if m.receipt != "" {
		return m, nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *Mode) submit() (modes.Mode, tea.Cmd) {
	value := m.input.Value()
	m.input.Reset()
	m.errorMsg = ""
	table, err := restaurant.ParseTableNumber(value)
	if err != nil {
		m.errorMsg = "Table number must be a whole number"
		return m, nil
	}
	if m.action == ActionCancel {
		return m.cancel(table)
	}
	view, err := m.Context().Book.Order(table)
	if err != nil {
		m.errorMsg = describe(table, err)
		return m, nil
	}
	m.receipt = modes.RenderOrder(view)
	m.SetStatusMsg(fmt.Sprintf("Table %d · %d item(s)", table, len(view.Lines)))
	return m, nil
}

func (m *Mode) cancel(table int) (modes.Mode, tea.Cmd) {
	ctx := m.Context()
	if err := ctx.Book.CancelOrder(table); err != nil {
		m.errorMsg = describe(table, err)
		return m, nil
	}
	m.SetComplete(true)
	if err := ctx.SaveOrders(); err != nil {
		m.LogWarn("Saving orders after cancel failed: %v", err)
		return m, modes.Complete("", err)
	}
	return m, modes.Complete(fmt.Sprintf("Order for table %d cancelled", table), nil)
}

func describe(table int, err error) string {
	if errors.Is(err, restaurant.ErrNoSuchOrder) {
		return fmt.Sprintf("No order for table %d", table)
	}
	return err.Error()
}

// View renders the prompt or the receipt
func (m *Mode) View() string {
	header := modes.TitleStyle.Render(m.action.title())
	var body string
	hint := "enter confirm · esc back"
	if m.receipt != "" {
		body = m.receipt
		hint = "enter/esc back to menu"
	} else {
		body = fmt.Sprintf("Occupied tables: %s\n\nTable number:\n%s",
			modes.FormatTables(m.Context().Book.OccupiedTables()), m.input.View())
	}
	if errBlock := modes.RenderError(m.errorMsg); errBlock != "" {
		body = fmt.Sprintf("%s\n\n%s", body, errBlock)
	}
	footer := modes.StatusStyle.Render(m.StatusMsg())
	return fmt.Sprintf("%s\n%s\n%s\n%s", header, body, footer, modes.HintStyle.Render(hint))
}
