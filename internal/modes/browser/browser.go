// internal/modes/browser/browser.go
//
// Browser mode shows the menu one category at a time.
// Input: the loaded catalog. Nothing is written.

package browser

import (
	"fmt"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/kingrea/bistro/internal/menu"
	"github.com/kingrea/bistro/internal/modes"
)

// Mode handles menu browsing
type Mode struct {
	modes.BaseMode
	categoryList list.Model
	selected     string
	dishes       []menu.Item
	width        int
}

// categoryItem wraps a category for the list display
type categoryItem struct {
	name   string
	label  string
	dishes int
}

func (i categoryItem) Title() string       { return fmt.Sprintf("%s. %s", i.label, i.name) }
func (i categoryItem) Description() string { return fmt.Sprintf("%d dish(es)", i.dishes) }
func (i categoryItem) FilterValue() string { return i.name }

// New creates a new menu browser
func New() *Mode {
	categoryList := list.New([]list.Item{}, list.NewDefaultDelegate(), 60, 20)
	categoryList.Title = "Menu Categories"
	categoryList.SetShowStatusBar(false)
	categoryList.SetFilteringEnabled(false)
	categoryList.DisableQuitKeybindings()
	return &Mode{
		BaseMode:     modes.NewBaseMode("Show Menu"),
		categoryList: categoryList,
	}
}

// Init fills the category list from the catalog
func (m *Mode) Init(ctx *modes.ModeContext) tea.Cmd {
	m.SetContext(ctx)
	if ctx == nil || ctx.Book == nil {
		m.SetComplete(true)
		return modes.Complete("", fmt.Errorf("browser: order book unavailable"))
	}
	catalog := ctx.Book.Catalog()
	categories := catalog.Categories()
	if len(categories) == 0 {
		m.SetComplete(true)
		return modes.Complete("Menu is empty", nil)
	}
	items := make([]list.Item, len(categories))
	for i, name := range categories {
		items[i] = categoryItem{
			name:   name,
			label:  menu.CategoryLabel(i),
			dishes: len(catalog.ItemsByCategory(name)),
		}
	}
	m.categoryList.SetItems(items)
	m.SetStatusMsg(fmt.Sprintf("%d categories, %d dishes", len(categories), catalog.Len()))
	return nil
}

// Selected returns the category currently being shown, if any.
func (m *Mode) Selected() string {
	return m.selected
}

// Update handles messages for the browser
func (m *Mode) Update(msg tea.Msg) (modes.Mode, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.categoryList.SetSize(max(20, msg.Width-8), max(5, msg.Height-12))
		return m, nil
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc", "q":
			if m.selected != "" {
				m.selected = ""
				m.dishes = nil
				return m, nil
			}
			m.SetComplete(true)
			return m, modes.Complete("", nil)
		case "enter":
			if m.selected != "" {
				m.selected = ""
				m.dishes = nil
				return m, nil
			}
			return m.openCategory()
		}
	}
	if m.selected != "" {
		return m, nil
	}
	var cmd tea.Cmd
	m.categoryList, cmd = m.categoryList.Update(msg)
	return m, cmd
}

func (m *Mode) openCategory() (modes.Mode, tea.Cmd) {
	item, ok := m.categoryList.SelectedItem().(categoryItem)
	if !ok {
		return m, nil
	}
	m.selected = item.name
	m.dishes = m.Context().Book.Catalog().ItemsByCategory(item.name)
	m.LogInfo("Menu · browsing %s", item.name)
	return m, nil
}

// View renders the category list or the dishes of the selected category
func (m *Mode) View() string {
	header := modes.TitleStyle.Render("⬡ MENU")
	var content string
	hint := "enter open · esc back"
	if m.selected == "" {
		content = m.categoryList.View()
	} else {
		title := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FFD479")).Render(m.selected)
		body := modes.RenderItems(m.dishes)
		if len(m.dishes) == 0 {
			body = "No dishes."
		}
		content = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#555555")).
			Padding(0, 1).
			Render(fmt.Sprintf("%s\n%s", title, body))
		hint = "enter/esc back to categories"
	}
	footer := modes.StatusStyle.Render(m.StatusMsg())
	return fmt.Sprintf("%s\n%s\n%s\n%s", header, content, footer, modes.HintStyle.Render(hint))
}
