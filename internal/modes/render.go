package modes

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/lipgloss"
	"github.com/kingrea/bistro/internal/menu"
	"github.com/kingrea/bistro/internal/restaurant"
)

var (
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#6BCB77")).
			MarginBottom(1)
	StatusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888888")).
			MarginTop(1)
	HintStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#AAAAAA")).
			MarginTop(1)
	errorStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#FF6B6B")).
			Padding(0, 1)
	receiptStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#555555")).
			Padding(0, 1)
	totalStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FFD479"))
)

// NewPrompt builds a focused single-line input.
func NewPrompt(placeholder string) textinput.Model {
	input := textinput.New()
	input.Placeholder = placeholder
	input.Prompt = "› "
	input.CharLimit = 64
	input.Width = 32
	input.Focus()
	return input
}

// RenderError draws msg in a red box, or nothing when msg is empty.
func RenderError(msg string) string {
	if strings.TrimSpace(msg) == "" {
		return ""
	}
	return errorStyle.Render(fmt.Sprintf("⚠ %s", msg))
}

// FormatTables joins table numbers for display.
func FormatTables(tables []int) string {
	if len(tables) == 0 {
		return "none"
	}
	parts := make([]string, len(tables))
	for i, t := range tables {
		parts[i] = strconv.Itoa(t)
	}
	return strings.Join(parts, ", ")
}

// RenderOrder draws an order as a receipt.
func RenderOrder(view restaurant.OrderView) string {
	header := totalStyle.Render(fmt.Sprintf("Table %d · %s", view.TableNumber, view.CustomerName))
	if len(view.Lines) == 0 {
		return receiptStyle.Render(header + "\nOrder is empty.")
	}
	lines := make([]string, 0, len(view.Lines))
	for _, item := range view.Lines {
		lines = append(lines, item.String())
	}
	total := totalStyle.Render(fmt.Sprintf("Total: %s", menu.FormatPrice(view.Total)))
	return receiptStyle.Render(strings.Join([]string{header, strings.Join(lines, "\n"), total}, "\n"))
}

// RenderCategories lists categories with their selector labels.
func RenderCategories(categories []string) string {
	lines := make([]string, len(categories))
	for i, c := range categories {
		lines[i] = fmt.Sprintf("%s. %s", menu.CategoryLabel(i), c)
	}
	return strings.Join(lines, "\n")
}

// RenderItems lists dishes numbered from 1.
func RenderItems(items []menu.Item) string {
	lines := make([]string, len(items))
	for i, item := range items {
		lines[i] = fmt.Sprintf("%d. %s", i+1, item)
	}
	return strings.Join(lines, "\n")
}
