// internal/tui/app.go
//
// This is the main TUI (Terminal User Interface) for bistro.
// It uses bubbletea, which follows The Elm Architecture:
//
// 1. Model: Your application state
// 2. Update: A function that updates state based on messages
// 3. View: A function that renders state to a string
//
// The order book is only touched from Update (directly or through the active
// mode), never from a command goroutine.

package tui

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/kingrea/bistro/internal/config"
	"github.com/kingrea/bistro/internal/logbook"
	"github.com/kingrea/bistro/internal/menu"
	"github.com/kingrea/bistro/internal/modes"
	"github.com/kingrea/bistro/internal/modes/browser"
	"github.com/kingrea/bistro/internal/modes/lookup"
	"github.com/kingrea/bistro/internal/modes/wizard"
	"github.com/kingrea/bistro/internal/restaurant"
)

// appState represents which "screen" we're on
type appState int

const (
	stateMainMenu appState = iota // Main menu with "Create Order", etc.
	stateMode                     // A mode owns the main area
)

const logPanelLines = 6

// AppOption customizes App construction for tests and alternate runtimes.
type AppOption func(*App)

// WithLogbook replaces the session journal.
func WithLogbook(lb *logbook.Logbook) AppOption {
	return func(a *App) {
		if lb != nil {
			a.logbook = lb
		}
	}
}

// WithOrderBook injects a prepared order book; the menu and orders files
// are then left alone at startup.
func WithOrderBook(book *restaurant.OrderBook) AppOption {
	return func(a *App) {
		if book != nil {
			a.book = book
		}
	}
}

type menuAction int

const (
	actionCreateOrder menuAction = iota
	actionShowMenu
	actionShowOrder
	actionCancelOrder
	actionTables
	actionExit
)

// menuItem implements list.Item interface for our menu items
type menuItem struct {
	title  string
	desc   string
	action menuAction
}

func (i menuItem) Title() string       { return i.title }
func (i menuItem) Description() string { return i.desc }
func (i menuItem) FilterValue() string { return i.title }

// App is the main application model. In bubbletea, this holds ALL your state.
type App struct {
	state   appState
	config  *config.Config
	book    *restaurant.OrderBook
	logbook *logbook.Logbook
	mode    modes.Mode

	// UI components
	mainMenu  list.Model
	statusMsg string

	// Window size (we get this from bubbletea)
	width  int
	height int
}

// NewApp creates a new App instance: it loads the project configuration,
// opens the journal, loads the menu and restores saved orders.
func NewApp(projectDir string, opts ...AppOption) (*App, error) {
	cfg, err := config.NewConfig(projectDir)
	if err != nil {
		return nil, err
	}

	mainMenu := list.New(buildMainMenu(), list.NewDefaultDelegate(), 60, 20)
	mainMenu.Title = "⬡ DINING ROOM"
	mainMenu.SetShowStatusBar(false)
	mainMenu.SetFilteringEnabled(false)
	mainMenu.DisableQuitKeybindings()

	app := &App{
		state:    stateMainMenu,
		config:   cfg,
		mainMenu: mainMenu,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(app)
		}
	}
	if app.logbook == nil {
		lb, err := logbook.New(cfg.JournalPath(), logbook.WithSession(logbook.NewSessionID()))
		if err == nil {
			app.logbook = lb
		}
	}
	if app.book == nil {
		app.book = openOrderBook(cfg, app.logbook)
	}
	app.statusMsg = fmt.Sprintf("%d dish(es) on the menu · %d table(s) occupied",
		app.book.Catalog().Len(), len(app.book.OccupiedTables()))
	app.logInfo("Session opened · %s", app.statusMsg)
	return app, nil
}

// openOrderBook builds the book for cfg, loads the menu and restores orders.
func openOrderBook(cfg *config.Config, lb *logbook.Logbook) *restaurant.OrderBook {
	var opts []restaurant.Option
	if lb != nil {
		opts = append(opts, restaurant.WithJournal(lb))
	}
	book := restaurant.New(cfg.Tables(), opts...)
	book.LoadMenu(cfg.MenuPath())
	book.Restore(cfg.OrdersPath())
	return book
}

// buildMainMenu creates the main menu items
func buildMainMenu() []list.Item {
	return []list.Item{
		menuItem{title: "Create Order", desc: "Seat a customer and take their order", action: actionCreateOrder},
		menuItem{title: "Show Menu", desc: "Browse dishes by category", action: actionShowMenu},
		menuItem{title: "Show Order", desc: "Print the order for a table", action: actionShowOrder},
		menuItem{title: "Cancel Order", desc: "Clear a table's order and free it", action: actionCancelOrder},
		menuItem{title: "Available Tables", desc: "List tables without an order", action: actionTables},
		menuItem{title: "Exit", desc: "Save orders and quit", action: actionExit},
	}
}

func (a *App) modeContext() *modes.ModeContext {
	return &modes.ModeContext{
		Config:  a.config,
		Book:    a.book,
		Logbook: a.logbook,
	}
}

func (a *App) logInfo(format string, args ...any) {
	if a.logbook == nil {
		return
	}
	a.logbook.Info(format, args...)
}

func (a *App) logError(format string, args ...any) {
	if a.logbook == nil {
		return
	}
	a.logbook.Error(format, args...)
}

// Init is called once when the program starts.
func (a *App) Init() tea.Cmd {
	return nil
}

// Update is called when a message is received.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.mainMenu.SetSize(max(20, msg.Width/2), max(10, msg.Height-12))
		if a.state == stateMode && a.mode != nil {
			var cmd tea.Cmd
			a.mode, cmd = a.mode.Update(msg)
			return a, cmd
		}
		return a, nil

	case modes.ModeCompleteMsg:
		return a.returnToMainMenu(msg)

	case tea.KeyMsg:
		if a.state == stateMainMenu {
			switch msg.String() {
			case "ctrl+c":
				return a, tea.Quit
			case "q":
				return a.exit()
			case "enter":
				return a.handleMainMenuSelection()
			}
		}
	}

	switch a.state {
	case stateMode:
		if a.mode == nil {
			return a.returnToMainMenu(modes.ModeCompleteMsg{})
		}
		var cmd tea.Cmd
		a.mode, cmd = a.mode.Update(msg)
		return a, cmd
	default:
		var cmd tea.Cmd
		a.mainMenu, cmd = a.mainMenu.Update(msg)
		return a, cmd
	}
}

// handleMainMenuSelection processes menu item selection
func (a *App) handleMainMenuSelection() (tea.Model, tea.Cmd) {
	item, ok := a.mainMenu.SelectedItem().(menuItem)
	if !ok {
		return a, nil
	}
	a.logInfo("Menu · %s selected", item.title)
	switch item.action {
	case actionCreateOrder:
		return a.startMode(wizard.New())
	case actionShowMenu:
		return a.startMode(browser.New())
	case actionShowOrder:
		return a.startMode(lookup.New(lookup.ActionShow))
	case actionCancelOrder:
		return a.startMode(lookup.New(lookup.ActionCancel))
	case actionTables:
		a.statusMsg = fmt.Sprintf("Available tables: %s", modes.FormatTables(a.book.AvailableTables()))
		return a, nil
	case actionExit:
		return a.exit()
	}
	return a, nil
}

func (a *App) startMode(mode modes.Mode) (tea.Model, tea.Cmd) {
	a.mode = mode
	a.state = stateMode
	cmd := mode.Init(a.modeContext())
	if a.width > 0 && a.height > 0 {
		a.mode, _ = a.mode.Update(tea.WindowSizeMsg{Width: a.width, Height: a.height})
	}
	return a, cmd
}

// returnToMainMenu transitions back to the main menu
func (a *App) returnToMainMenu(msg modes.ModeCompleteMsg) (tea.Model, tea.Cmd) {
	name := ""
	if a.mode != nil {
		name = a.mode.Name()
	}
	a.state = stateMainMenu
	a.mode = nil
	switch {
	case msg.Error != nil:
		a.statusMsg = fmt.Sprintf("Error: %v", msg.Error)
		a.logError("%s failed: %v", name, msg.Error)
	case msg.Status != "":
		a.statusMsg = msg.Status
	default:
		a.statusMsg = ""
	}
	return a, nil
}

// exit saves the orders file and quits. A failed save keeps the app open so
// the host can retry; ctrl+c quits without saving.
func (a *App) exit() (tea.Model, tea.Cmd) {
	if err := a.modeContext().SaveOrders(); err != nil {
		a.statusMsg = fmt.Sprintf("Saving orders failed: %v", err)
		a.logError("Exit aborted: %v", err)
		return a, nil
	}
	a.logInfo("Session closed · orders saved to %s", a.config.OrdersPath())
	return a, tea.Quit
}

// View renders the current state to a string.
func (a *App) View() string {
	width := a.width
	if width <= 0 {
		width = 100
	}
	rightWidth := max(32, width/3)
	leftWidth := width - rightWidth - 4
	if leftWidth < 40 {
		leftWidth = width - 4
		rightWidth = 0
	}

	var content string
	switch a.state {
	case stateMode:
		if a.mode != nil {
			content = a.mode.View()
		}
	default:
		content = a.mainMenu.View()
	}

	header := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#FF6B6B")).
		MarginBottom(1).
		Render("⬡ BISTRO")
	leftBox := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("#444444")).
		Padding(0, 1).
		Width(max(20, leftWidth)).
		Render(content)
	body := leftBox
	if rightWidth > 0 {
		rightBox := lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#444444")).
			Padding(0, 1).
			Width(max(20, rightWidth)).
			Render(a.renderTablesPanel())
		body = lipgloss.JoinHorizontal(lipgloss.Top, leftBox, rightBox)
	}
	sections := []string{header, body}
	if logPanel := a.renderLogPanel(); logPanel != "" {
		sections = append(sections, logPanel)
	}
	footer := lipgloss.NewStyle().
		Foreground(lipgloss.Color("#888888")).
		MarginTop(1).
		Render(a.statusMsg)
	sections = append(sections, footer)
	return strings.Join(sections, "\n")
}

func (a *App) renderTablesPanel() string {
	title := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#5B8DEF")).
		Render(fmt.Sprintf("Tables (%d occupied)", len(a.book.OccupiedTables())))
	free := lipgloss.NewStyle().Foreground(lipgloss.Color("#888888"))
	var rows []string
	for _, table := range a.book.Tables() {
		view, err := a.book.Order(table)
		if err != nil {
			rows = append(rows, free.Render(fmt.Sprintf("%2d · free", table)))
			continue
		}
		rows = append(rows, fmt.Sprintf("%2d · %s · %d item(s) · %s",
			table, view.CustomerName, len(view.Lines), menu.FormatPrice(view.Total)))
	}
	return lipgloss.JoinVertical(lipgloss.Left, title, strings.Join(rows, "\n"))
}

func (a *App) renderLogPanel() string {
	if a.logbook == nil {
		return ""
	}
	lines, total := a.logbook.Tail(logPanelLines)
	if len(lines) == 0 {
		return ""
	}
	fileName := filepath.Base(a.logbook.Path())
	if fileName == "." || fileName == "" {
		fileName = "log"
	}
	head := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#5B8DEF")).
		Render(fmt.Sprintf("LOG · %s (%d)", fileName, total))
	body := lipgloss.NewStyle().
		Foreground(lipgloss.Color("#AAAAAA")).
		Render(strings.Join(lines, "\n"))
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("#444444")).
		Padding(0, 1).
		Render(fmt.Sprintf("%s\n%s", head, body))
}
