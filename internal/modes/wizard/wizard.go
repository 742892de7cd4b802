// internal/modes/wizard/wizard.go
//
// Wizard mode walks a host through seating a customer:
// 1. Pick a free table
// 2. Enter the customer's name
// 3. Repeatedly pick a category and a dish until the host enters 0
//
// Output: the orders file is saved once the order is finished.

package wizard

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/kingrea/bistro/internal/menu"
	"github.com/kingrea/bistro/internal/modes"
	"github.com/kingrea/bistro/internal/restaurant"
)

type step int

const (
	stepTable step = iota
	stepCustomer
	stepCategory
	stepDish
)

// Mode handles order creation
type Mode struct {
	modes.BaseMode
	input    textinput.Model
	step     step
	table    int
	customer string
	category string
	dishes   []menu.Item
	added    int
	errorMsg string
}

// New creates a new order wizard
func New() *Mode {
	return &Mode{
		BaseMode: modes.NewBaseMode("Create Order"),
		input:    modes.NewPrompt("Table number"),
	}
}

// Init checks that a table is free before asking for one
func (m *Mode) Init(ctx *modes.ModeContext) tea.Cmd {
	m.SetContext(ctx)
	if ctx == nil || ctx.Book == nil {
		m.SetComplete(true)
		return modes.Complete("", fmt.Errorf("wizard: order book unavailable"))
	}
	if len(ctx.Book.AvailableTables()) == 0 {
		m.SetComplete(true)
		return modes.Complete("No tables available", nil)
	}
	m.SetStatusMsg("Enter a table number")
	return textinput.Blink
}

// Table returns the table chosen so far, or 0.
func (m *Mode) Table() int {
	return m.table
}

// Update handles messages for the wizard
func (m *Mode) Update(msg tea.Msg) (modes.Mode, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			return m.abort()
		case "enter":
			return m.submit()
		}
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *Mode) submit() (modes.Mode, tea.Cmd) {
	if m.IsComplete() {
		return m, nil
	}
	value := m.input.Value()
	m.input.Reset()
	m.errorMsg = ""
	switch m.step {
	case stepTable:
		return m.submitTable(value)
	case stepCustomer:
		return m.submitCustomer(value)
	case stepCategory:
		return m.submitCategory(value)
	case stepDish:
		return m.submitDish(value)
	}
	return m, nil
}

func (m *Mode) submitTable(value string) (modes.Mode, tea.Cmd) {
	book := m.Context().Book
	table, err := restaurant.ParseTableNumber(value)
	if err != nil {
		m.errorMsg = "Table number must be a whole number"
		return m, nil
	}
	if !book.HasTable(table) {
		m.errorMsg = fmt.Sprintf("Table %d does not exist", table)
		return m, nil
	}
	if book.IsOccupied(table) {
		m.errorMsg = fmt.Sprintf("Table %d is already occupied", table)
		return m, nil
	}
	m.table = table
	m.step = stepCustomer
	m.input.Placeholder = "Customer name"
	m.SetStatusMsg(fmt.Sprintf("Seating table %d", table))
	return m, nil
}

func (m *Mode) submitCustomer(value string) (modes.Mode, tea.Cmd) {
	name := strings.TrimSpace(value)
	if name == "" {
		m.errorMsg = "Customer name is required"
		return m, nil
	}
	if err := m.Context().Book.CreateOrder(m.table, name); err != nil {
		m.errorMsg = err.Error()
		m.step = stepTable
		m.table = 0
		m.input.Placeholder = "Table number"
		return m, nil
	}
	m.customer = name
	m.SetStatusMsg(fmt.Sprintf("Order opened for %s at table %d", name, m.table))
	return m.enterCategory()
}

func (m *Mode) enterCategory() (modes.Mode, tea.Cmd) {
	if len(m.Context().Book.Catalog().Categories()) == 0 {
		return m.finish()
	}
	m.step = stepCategory
	m.category = ""
	m.dishes = nil
	m.input.Placeholder = "Category, 0 to finish"
	return m, nil
}

func (m *Mode) submitCategory(value string) (modes.Mode, tea.Cmd) {
	catalog := m.Context().Book.Catalog()
	categories := catalog.Categories()
	idx, err := menu.ParseCategoryChoice(value, len(categories))
	if errors.Is(err, menu.ErrChoiceCancelled) {
		return m.finish()
	}
	if err != nil {
		m.errorMsg = fmt.Sprintf("%q is not a category", strings.TrimSpace(value))
		return m, nil
	}
	m.category = categories[idx]
	m.dishes = catalog.ItemsByCategory(m.category)
	m.step = stepDish
	m.input.Placeholder = "Dish number, 0 to skip"
	return m, nil
}

func (m *Mode) submitDish(value string) (modes.Mode, tea.Cmd) {
	idx, err := menu.ParseItemChoice(value, len(m.dishes))
	if errors.Is(err, menu.ErrChoiceCancelled) {
		m.SetStatusMsg(fmt.Sprintf("Skipped %s", m.category))
		return m.enterCategory()
	}
	if err != nil {
		m.errorMsg = fmt.Sprintf("%q is not a dish number", strings.TrimSpace(value))
		return m, nil
	}
	item := m.dishes[idx]
	if err := m.Context().Book.AddToOrder(m.table, item.Name); err != nil {
		m.errorMsg = err.Error()
		return m, nil
	}
	m.added++
	m.SetStatusMsg(fmt.Sprintf("Added %s", item.Name))
	return m.enterCategory()
}

// finish saves the orders file and hands control back to the menu.
func (m *Mode) finish() (modes.Mode, tea.Cmd) {
	m.SetComplete(true)
	if err := m.Context().SaveOrders(); err != nil {
		m.LogWarn("Saving orders after wizard failed: %v", err)
		return m, modes.Complete("", err)
	}
	status := fmt.Sprintf("Order for table %d saved with %d item(s)", m.table, m.added)
	m.SetStatusMsg(status)
	return m, modes.Complete(status, nil)
}

func (m *Mode) abort() (modes.Mode, tea.Cmd) {
	if m.IsComplete() {
		return m, nil
	}
	if m.step >= stepCategory {
		return m.finish()
	}
	m.SetComplete(true)
	return m, modes.Complete("Order creation cancelled", nil)
}

// View renders the current wizard step
func (m *Mode) View() string {
	book := m.Context().Book
	var body string
	switch m.step {
	case stepTable:
		body = fmt.Sprintf("Available tables: %s\n\nTable number:\n%s",
			modes.FormatTables(book.AvailableTables()), m.input.View())
	case stepCustomer:
		body = fmt.Sprintf("Table %d\n\nCustomer name:\n%s", m.table, m.input.View())
	case stepCategory:
		receipt := ""
		if view, err := book.Order(m.table); err == nil {
			receipt = modes.RenderOrder(view) + "\n\n"
		}
		body = fmt.Sprintf("%sCategories:\n%s\n0. Finish order\n\n%s",
			receipt, modes.RenderCategories(book.Catalog().Categories()), m.input.View())
	case stepDish:
		body = fmt.Sprintf("%s:\n%s\n0. Back to categories\n\n%s",
			m.category, modes.RenderItems(m.dishes), m.input.View())
	}
	if errBlock := modes.RenderError(m.errorMsg); errBlock != "" {
		body = fmt.Sprintf("%s\n\n%s", body, errBlock)
	}
	header := modes.TitleStyle.Render("⬡ NEW ORDER")
	footer := modes.StatusStyle.Render(m.StatusMsg())
	hint := modes.HintStyle.Render("enter confirm · esc leave")
	return fmt.Sprintf("%s\n%s\n%s\n%s", header, body, footer, hint)
}
