package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"asset-browser/pkg/browse"
	"asset-browser/pkg/grid"
	"asset-browser/pkg/models"
)

// Styles
var (
	titleStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("62")).
			Foreground(lipgloss.Color("230")).
			Bold(true).
			Padding(0, 1)

	paneStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)

	focusedPaneStyle = paneStyle.
				BorderForeground(lipgloss.Color("62"))

	cursorStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("62")).
			Foreground(lipgloss.Color("230"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	activeTrackStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("42")).
				Bold(true)

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214"))
)

const treePaneWidth = 34

func (m Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	header := titleStyle.Render("Asset Browser") + "  " + m.searchLine()

	body := lipgloss.JoinHorizontal(
		lipgloss.Top,
		m.treeView(),
		m.mainView(),
	)
	if m.cartOpen {
		body = lipgloss.JoinHorizontal(lipgloss.Top, body, m.cartView())
	}

	sections := []string{header, body, m.playerBar()}
	if m.status != "" {
		sections = append(sections, statusStyle.Render(m.status))
	}
	if m.showHelp {
		sections = append(sections, m.help.FullHelpView(m.keys.FullHelp()))
	} else {
		sections = append(sections, m.help.ShortHelpView(m.keys.ShortHelp()))
	}

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) searchLine() string {
	if m.searching {
		return m.search.View()
	}
	if query := strings.TrimSpace(m.state.SearchQuery()); query != "" {
		return fmt.Sprintf("Search: %q (%d results)", query, len(m.visible))
	}
	return dimStyle.Render("press / to search")
}

func (m Model) treeView() string {
	height := m.bodyHeight()
	var b strings.Builder

	start := 0
	if m.treeCursor >= height {
		start = m.treeCursor - height + 1
	}

	for i := start; i < len(m.treeRows) && i-start < height; i++ {
		row := m.treeRows[i]
		icon := "  "
		if row.IsDir {
			icon = "▸ "
			if m.state.Expanded(row.Path) {
				icon = "▾ "
			}
		}
		line := strings.Repeat("  ", row.Level) + icon + row.Label
		line = truncate(line, treePaneWidth-4)
		if i == m.treeCursor && m.focus == paneTree {
			line = cursorStyle.Render(line)
		}
		b.WriteString(line + "\n")
	}

	style := paneStyle
	if m.focus == paneTree {
		style = focusedPaneStyle
	}
	return style.Width(treePaneWidth).Height(height).Render(strings.TrimRight(b.String(), "\n"))
}

func (m Model) mainView() string {
	width := m.width - treePaneWidth - 6
	if m.cartOpen {
		width -= 36
	}
	if width < 20 {
		width = 20
	}

	style := paneStyle
	if m.focus == paneGrid {
		style = focusedPaneStyle
	}

	if m.state.Mode() == browse.ModePreview && m.preview != nil {
		return style.Width(width).Height(m.bodyHeight()).Render(m.previewView(*m.preview))
	}
	return style.Width(width).Height(m.bodyHeight()).Render(m.gridView(width))
}

func (m Model) previewView(asset models.Asset) string {
	lines := []string{
		titleStyle.Render(asset.Name),
		"",
		"Path:     " + asset.Path,
		"Category: " + asset.Category,
		"Type:     " + string(asset.Kind()),
	}

	switch asset.Kind() {
	case models.KindImage:
		lines = append(lines, "", dimStyle.Render("Thumbnail: "+grid.ThumbnailPath(asset.Path)))
	case models.KindOther:
		lines = append(lines, "", "Preview not available for this file type.")
	}

	lines = append(lines, "", dimStyle.Render("esc to go back · a to add to cart"))
	return strings.Join(lines, "\n")
}

func (m Model) gridView(width int) string {
	title := m.gridTitle()
	if len(m.shown) == 0 {
		empty := "No assets found in this folder"
		if strings.TrimSpace(m.state.SearchQuery()) != "" {
			empty = fmt.Sprintf("No assets found matching %q", strings.TrimSpace(m.state.SearchQuery()))
		}
		return title + "\n\n" + dimStyle.Render(empty)
	}

	height := m.bodyHeight() - 3
	start := 0
	if m.gridCursor >= height {
		start = m.gridCursor - height + 1
	}

	var b strings.Builder
	b.WriteString(title + "\n")
	for i := start; i < len(m.shown) && i-start < height; i++ {
		b.WriteString(m.gridLine(i, width) + "\n")
	}

	remaining := len(m.visible) - len(m.shown)
	if remaining > 0 {
		label := fmt.Sprintf("Load more (%d remaining) · press l", remaining)
		b.WriteString(dimStyle.Render(label))
	}
	return strings.TrimRight(b.String(), "\n")
}

func (m Model) gridTitle() string {
	if query := strings.TrimSpace(m.state.SearchQuery()); query != "" {
		return titleStyle.Render(fmt.Sprintf("Search: %q", query))
	}
	if folder := m.state.FolderContext(); folder != "" {
		parts := strings.Split(strings.Trim(folder, "/"), "/")
		return titleStyle.Render(parts[len(parts)-1] + " Assets")
	}
	return titleStyle.Render("All Assets")
}

func (m Model) gridLine(i, width int) string {
	asset := m.shown[i]

	marker := " "
	if asset.IsAudio() && m.player.IsActiveTrack(asset.Path) {
		marker = activeTrackStyle.Render("♪")
	}

	icon := kindIcon(asset.Kind())
	inCart := " "
	if m.cart.Contains(asset.Path) {
		inCart = "+"
	}

	detail := asset.Path
	if m.layout == grid.LayoutList {
		detail = fmt.Sprintf("track %d", i+1)
	}

	plain := fmt.Sprintf("%s%s %s %s  %s", marker, inCart, icon, asset.Name, detail)
	if i == m.gridCursor && m.focus == paneGrid {
		return cursorStyle.Render(truncate(plain, width-2))
	}
	return truncate(fmt.Sprintf("%s%s %s %s  %s", marker, inCart, icon, asset.Name, dimStyle.Render(detail)), width-2)
}

func (m Model) cartView() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(fmt.Sprintf("Zip Cart (%d)", m.cart.Len())) + "\n")

	if m.cart.Len() == 0 {
		b.WriteString(dimStyle.Render("Cart is empty.\nPress a on an asset to add it."))
	} else {
		for _, item := range m.cart.Items() {
			b.WriteString(truncate("• "+item.Name, 30) + "\n")
		}
		b.WriteString("\n")
		if m.zipping {
			b.WriteString(dimStyle.Render("Creating Zip..."))
		} else {
			b.WriteString(dimStyle.Render("Z to download zip"))
		}
	}

	return paneStyle.Width(34).Height(m.bodyHeight()).Render(strings.TrimRight(b.String(), "\n"))
}

func (m Model) playerBar() string {
	current, ok := m.player.Current()
	if !ok {
		return dimStyle.Render("♪ no audio assets")
	}

	state := "⏸"
	if m.player.IsPlaying() {
		state = "▶"
	}

	volume := fmt.Sprintf("vol %d%%", int(m.player.Volume()*100))
	if m.player.IsMuted() {
		volume = "muted"
	}

	return fmt.Sprintf("%s %s  %s  %s",
		state,
		current.DisplayName,
		dimStyle.Render(fmt.Sprintf("%d / %d", m.player.CurrentIndex()+1, len(m.player.Playlist()))),
		dimStyle.Render(volume),
	)
}

func (m Model) bodyHeight() int {
	h := m.height - 6
	if h < 5 {
		h = 5
	}
	return h
}

func kindIcon(kind models.MediaKind) string {
	switch kind {
	case models.KindAudio:
		return "♪"
	case models.KindVideo:
		return "▣"
	case models.KindImage:
		return "◩"
	}
	return "·"
}

func truncate(s string, max int) string {
	if max <= 1 || len(s) <= max {
		return s
	}
	return s[:max-1] + "…"
}
