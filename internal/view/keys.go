package view

import (
	"fmt"
	"slices"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vmunix/motherbox/internal/store"
)

// handleKey maps key events onto routing messages and toggles. The search
// input and the edit form capture keys while focused; confirmation prompts
// capture everything.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.confirm != confirmNone {
		return m.handleConfirmKey(msg), nil
	}
	if m.page == PageProfileEdit {
		return m.handleEditKey(msg)
	}
	if m.search.Focused() {
		return m.handleSearchKey(msg)
	}

	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit

	case "1":
		return m.Update(NavigateMsg{Page: PageHome})
	case "2":
		return m.Update(NavigateMsg{Page: PageWatchlist})
	case "3":
		return m.Update(NavigateMsg{Page: PageFavorites})
	case "4":
		return m.Update(NavigateMsg{Page: PageProfile})
	case "5":
		return m.Update(NavigateMsg{Page: PageAbout})
	}

	switch m.page {
	case PageHome, PageWatchlist, PageFavorites:
		return m.handleListKey(msg)
	case PageDetail:
		return m.handleDetailKey(msg)
	case PageProfile:
		return m.handleProfileKey(msg)
	case PageAbout:
		if msg.String() == "esc" {
			return m.Update(NavigateMsg{Page: PageHome})
		}
	}
	return m, nil
}

func (m Model) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "enter":
		m.search.Blur()
		return m, nil
	}
	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	next, fetch := m.setSearch()
	next.search.Focus()
	return next, tea.Batch(cmd, fetch)
}

func (m Model) handleListKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	visible := m.visibleMovies()

	switch msg.String() {
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil

	case "down", "j":
		if m.cursor < len(visible)-1 {
			m.cursor++
		}
		return m, nil

	case "enter":
		if m.cursor < len(visible) {
			return m.Update(OpenDetailMsg{ID: visible[m.cursor].ID})
		}
		return m, nil

	case "/":
		if m.page == PageHome {
			m.search.Focus()
			return m, nil
		}
		return m, nil

	case "left", "[":
		if m.page == PageHome {
			return m.cycleUniverse(-1)
		}
		return m, nil

	case "right", "]":
		if m.page == PageHome {
			return m.cycleUniverse(1)
		}
		return m, nil

	case "w":
		if m.cursor < len(visible) {
			m.store.Toggle(store.SetWatchlist, visible[m.cursor].ID)
			m.cursor = clampCursor(m.cursor, len(m.visibleMovies()))
		}
		return m, nil

	case "f":
		if m.cursor < len(visible) {
			m.store.Toggle(store.SetFavorites, visible[m.cursor].ID)
			m.cursor = clampCursor(m.cursor, len(m.visibleMovies()))
		}
		return m, nil

	case "x":
		if m.cursor < len(visible) {
			m.store.Toggle(store.SetWatched, visible[m.cursor].ID)
		}
		return m, nil
	}
	return m, nil
}

// Toggling on the watchlist or favorites page can remove the row under the
// cursor, so the cursor is clamped to the shrunken list.
func clampCursor(cursor, n int) int {
	if n == 0 {
		return 0
	}
	if cursor >= n {
		return n - 1
	}
	return cursor
}

func (m Model) cycleUniverse(dir int) (tea.Model, tea.Cmd) {
	idx := slices.Index(m.universes, m.universe)
	if idx < 0 {
		idx = 0
	}
	idx = (idx + dir + len(m.universes)) % len(m.universes)
	return m.Update(SetFilterMsg{Universe: m.universes[idx]})
}

func (m Model) handleDetailKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "backspace":
		return m.Update(NavigateMsg{Page: m.prev})
	}
	if m.detail == nil {
		return m, nil
	}

	switch msg.String() {
	case "w":
		m.store.Toggle(store.SetWatchlist, m.detail.ID)
	case "f":
		m.store.Toggle(store.SetFavorites, m.detail.ID)
	case "x":
		if m.detail.IsSeries() {
			if ep, ok := m.selectedEpisode(); ok {
				m.store.ToggleEpisode(store.EpisodeKey(m.detail.ID, ep.season, ep.episode))
			}
		} else {
			m.store.Toggle(store.SetWatched, m.detail.ID)
		}
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < m.episodeCount()-1 {
			m.cursor++
		}
	}
	return m, nil
}

func (m Model) handleProfileKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "e":
		return m.Update(NavigateMsg{Page: PageProfileEdit})
	case "r":
		m.confirm = confirmResetProfile
		return m, nil
	case "D":
		m.confirm = confirmClearAll
		return m, nil
	}
	return m, nil
}

func (m Model) handleConfirmKey(msg tea.KeyMsg) Model {
	switch msg.String() {
	case "y", "Y":
		switch m.confirm {
		case confirmResetProfile:
			m.profile = m.store.ResetProfile()
			m.status = "Profile reset to defaults"
		case confirmClearAll:
			if err := m.store.ClearAll(); err != nil {
				m.logger.Warn("clear all failed", "error", err)
				m.status = fmt.Sprintf("Could not clear data: %v", err)
			} else {
				m.profile = m.store.Profile()
				m.status = "All data cleared"
			}
			m.stats = m.store.Stats()
		}
		m.confirm = confirmNone
		return m
	case "n", "N", "esc":
		m.confirm = confirmNone
		return m
	}
	return m
}
