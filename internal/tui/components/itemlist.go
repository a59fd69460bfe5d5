package components

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/wexinc/artisan/internal/catalog"
	"github.com/wexinc/artisan/internal/render"
	"github.com/wexinc/artisan/internal/tui/styles"
)

const cardWidth = 28

// ItemList is a scrollable product list rendered as rows or as a grid of cards.
type ItemList struct {
	items       []catalog.Item
	mode        catalog.ViewMode
	selected    int
	height      int
	width       int
	scrollStart int
}

// NewItemList creates a new ItemList component.
func NewItemList() *ItemList {
	return &ItemList{
		mode:   catalog.ViewGrid,
		height: 10,
	}
}

// SetItems replaces the visible items, keeping the cursor on the same item
// ID when it is still present.
func (l *ItemList) SetItems(items []catalog.Item) {
	var current uint
	if item := l.SelectedItem(); item != nil {
		current = item.ID
	}
	l.items = items
	l.selected = 0
	for i, item := range items {
		if item.ID == current {
			l.selected = i
			break
		}
	}
	l.updateScroll()
}

// Items returns the items currently shown.
func (l *ItemList) Items() []catalog.Item {
	return l.items
}

// SetMode sets grid or list rendering.
func (l *ItemList) SetMode(mode catalog.ViewMode) {
	l.mode = mode
	l.updateScroll()
}

// Mode returns the current rendering mode.
func (l *ItemList) Mode() catalog.ViewMode {
	return l.mode
}

// SetSize sets both width and height in terminal cells.
func (l *ItemList) SetSize(width, height int) {
	l.width = width
	l.height = max(height, 1)
	l.updateScroll()
}

// Selected returns the cursor index.
func (l *ItemList) Selected() int {
	return l.selected
}

// SelectedItem returns the item under the cursor, or nil if empty.
func (l *ItemList) SelectedItem() *catalog.Item {
	if l.selected < 0 || l.selected >= len(l.items) {
		return nil
	}
	return &l.items[l.selected]
}

// columns is the number of cards per grid row.
func (l *ItemList) columns() int {
	if l.mode != catalog.ViewGrid || l.width < cardWidth*2 {
		return 1
	}
	return l.width / cardWidth
}

// rowHeight is the number of lines one list row or grid row takes.
func (l *ItemList) rowHeight() int {
	if l.mode == catalog.ViewGrid {
		return 6
	}
	return 1
}

func (l *ItemList) visibleRows() int {
	return max(l.height/l.rowHeight(), 1)
}

func (l *ItemList) move(delta int) {
	next := l.selected + delta
	if next < 0 || next >= len(l.items) {
		return
	}
	l.selected = next
	l.updateScroll()
}

// updateScroll keeps the row holding the cursor on screen. scrollStart
// counts rows, not items.
func (l *ItemList) updateScroll() {
	row := l.selected / l.columns()
	rows := l.visibleRows()
	if row < l.scrollStart {
		l.scrollStart = row
	}
	if row >= l.scrollStart+rows {
		l.scrollStart = row - rows + 1
	}
	l.scrollStart = max(l.scrollStart, 0)
}

// Update handles keyboard navigation.
func (l *ItemList) Update(msg tea.Msg) tea.Cmd {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	cols := l.columns()
	switch key.String() {
	case "up", "k":
		l.move(-cols)
	case "down", "j":
		l.move(cols)
	case "left", "h":
		l.move(-1)
	case "right", "l":
		l.move(1)
	case "home", "g":
		l.selected = 0
		l.updateScroll()
	case "end", "G":
		if len(l.items) > 0 {
			l.selected = len(l.items) - 1
			l.updateScroll()
		}
	}
	return nil
}

// View renders the visible slice of the list.
func (l *ItemList) View() string {
	if len(l.items) == 0 {
		return lipgloss.NewStyle().
			Foreground(styles.Muted).
			Italic(true).
			Padding(1, 2).
			Render("No products found")
	}

	cols := l.columns()
	first := l.scrollStart * cols
	last := min(first+l.visibleRows()*cols, len(l.items))

	var rows []string
	for start := first; start < last; start += cols {
		end := min(start+cols, last)
		if l.mode == catalog.ViewGrid {
			var cards []string
			for i := start; i < end; i++ {
				cards = append(cards, l.renderCard(l.items[i], i == l.selected))
			}
			rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cards...))
		} else {
			rows = append(rows, l.renderRow(l.items[start], start == l.selected))
		}
	}

	content := strings.Join(rows, "\n")
	if first > 0 {
		content = "  ↑ more above\n" + content
	}
	if last < len(l.items) {
		content += "\n  ↓ more below"
	}
	return content
}

func (l *ItemList) renderRow(item catalog.Item, selected bool) string {
	cursor := "  "
	if selected {
		cursor = lipgloss.NewStyle().Foreground(styles.Secondary).Bold(true).Render("▶ ")
	}
	name := lipgloss.NewStyle().Foreground(styles.Foreground).Width(28).Render(truncateString(item.Name, 27))
	category := styles.CategoryStyle.Width(24).Render(truncateString(item.Category.String(), 23))
	price := styles.PriceStyle.Width(11).Align(lipgloss.Right).Render(render.Money(item.Price))
	line := fmt.Sprintf("%s%s %s %s  %s%s", cursor, name, category, price, stars(item.Rating), stockNote(item))

	rowStyle := lipgloss.NewStyle()
	if selected {
		rowStyle = styles.SelectedRowStyle
	}
	if l.width > 0 {
		rowStyle = rowStyle.Width(l.width)
	}
	return rowStyle.Render(line)
}

func (l *ItemList) renderCard(item catalog.Item, selected bool) string {
	inner := cardWidth - 4
	lines := []string{
		lipgloss.NewStyle().Bold(true).Foreground(styles.Foreground).Render(truncateString(item.Name, inner)),
		styles.CategoryStyle.Render(truncateString(item.Category.String(), inner)),
		styles.PriceStyle.Render(render.Money(item.Price)) + stockNote(item),
		stars(item.Rating) + styles.MutedTextStyle.Render(fmt.Sprintf(" (%d)", item.Reviews)),
	}
	cardStyle := styles.CardStyle
	if selected {
		cardStyle = styles.SelectedCardStyle
	}
	return cardStyle.Width(cardWidth - 2).Render(strings.Join(lines, "\n"))
}

// stars renders a 0-5 rating as filled and empty stars.
func stars(rating float64) string {
	n := min(max(int(rating+0.5), 0), 5)
	return styles.RatingStyle.Render(strings.Repeat("★", n) + strings.Repeat("☆", 5-n))
}

func stockNote(item catalog.Item) string {
	if item.InStock {
		return ""
	}
	return " " + styles.OutOfStockStyle.Render("out of stock")
}

// truncateString truncates s to maxLen runes, marking the cut with an ellipsis.
func truncateString(s string, maxLen int) string {
	r := []rune(s)
	if len(r) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return string(r[:maxLen])
	}
	return string(r[:maxLen-1]) + "…"
}
