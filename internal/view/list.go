package view

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vmunix/motherbox/internal/catalog"
	"github.com/vmunix/motherbox/internal/store"
)

func (m Model) renderListPage() string {
	var b strings.Builder

	if m.page == PageHome {
		b.WriteString(m.renderFilterBar())
		b.WriteString("\n")
	}

	visible := m.visibleMovies()
	if len(visible) == 0 {
		b.WriteString(m.renderEmptyState())
		return b.String()
	}

	for i, mv := range visible {
		b.WriteString(m.renderRow(mv, i == m.cursor))
		b.WriteString("\n")
	}
	b.WriteString(m.styles.Muted.Render(fmt.Sprintf("%d titles", len(visible))))
	return b.String()
}

func (m Model) renderFilterBar() string {
	var tabs []string
	for _, u := range m.universes {
		style := m.styles.Tab
		if u == m.universe {
			style = m.styles.TabOn
		}
		tabs = append(tabs, style.Render(u))
	}
	row := lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
	return lipgloss.JoinHorizontal(lipgloss.Top, row, "  ", m.search.View())
}

func (m Model) renderRow(mv catalog.Movie, selected bool) string {
	marker := "  "
	titleStyle := m.styles.Title
	if selected {
		marker = "> "
		titleStyle = m.styles.Selected
	}

	flags := m.rowFlags(mv.ID)

	kind := ""
	if mv.IsSeries() {
		kind = " " + m.styles.Badge.Render("series")
	}

	return fmt.Sprintf("%s%s (%d) %s %s%s %s",
		marker,
		titleStyle.Render(mv.Title),
		mv.Year,
		m.styles.Muted.Render(fmt.Sprintf("★%.1f", mv.Rating)),
		m.styles.Badge.Render(mv.Universe),
		kind,
		flags,
	)
}

// rowFlags shows which sets hold the title: W watchlist, F favorite,
// ✓ watched.
func (m Model) rowFlags(id int64) string {
	var flags []string
	if m.store.Contains(store.SetWatchlist, id) {
		flags = append(flags, m.styles.ToggleOn.Render("W"))
	}
	if m.store.Contains(store.SetFavorites, id) {
		flags = append(flags, m.styles.ToggleOn.Render("F"))
	}
	if m.store.Contains(store.SetWatched, id) {
		flags = append(flags, m.styles.Success.Render("✓"))
	}
	return strings.Join(flags, " ")
}

func (m Model) renderEmptyState() string {
	var title, hint string
	switch m.page {
	case PageWatchlist:
		title = "Your Watchlist is Empty"
		hint = "Press w on any title to save it for later."
	case PageFavorites:
		title = "No Favorites Yet"
		hint = "Press f on any title to add it to your favorites."
	default:
		title = "No Titles Found"
		hint = "Try adjusting your search or universe filter."
	}

	out := m.styles.Empty.Render(title) + "\n" + m.styles.Muted.Render(hint)
	if m.page == PageHome && m.suggestion != "" {
		out += "\n" + m.styles.Subtitle.Render(fmt.Sprintf("Did you mean %q?", m.suggestion))
	}
	return out
}

func (m Model) renderFooter() string {
	var help string
	switch m.page {
	case PageHome:
		help = "↑/↓ move · enter open · / search · ←/→ universe · w/f/x toggle · 1-5 pages · q quit"
	case PageWatchlist, PageFavorites:
		help = "↑/↓ move · enter open · w/f/x toggle · 1-5 pages · q quit"
	case PageDetail:
		if m.detail != nil && m.detail.IsSeries() {
			help = "↑/↓ episode · x toggle episode · w/f toggle · esc back · q quit"
		} else {
			help = "w watchlist · f favorite · x watched · esc back · q quit"
		}
	case PageProfile:
		help = "e edit · r reset profile · D clear all data · 1-5 pages · q quit"
	case PageProfileEdit:
		help = "tab next field · enter apply photo · ctrl+r remove photo · ctrl+s save · esc cancel"
	default:
		help = "1-5 pages · q quit"
	}
	return m.styles.Help.Render(help)
}
