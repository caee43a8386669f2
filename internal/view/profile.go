package view

import (
	"fmt"
	"strings"
	"time"
)

func (m Model) renderProfile() string {
	var b strings.Builder
	p := m.profile

	b.WriteString(m.styles.Title.Render(p.Username))
	b.WriteString("\n")
	if p.Bio != "" {
		b.WriteString(m.styles.Subtitle.Render(p.Bio))
		b.WriteString("\n")
	}
	if p.Email != "" {
		b.WriteString(m.styles.Muted.Render(p.Email))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	b.WriteString(m.styles.Subtitle.Render("Favorite universe: "))
	b.WriteString(m.styles.Badge.Render(p.FavoriteUniverse))
	b.WriteString("\n")

	photo := p.PhotoPath
	if photo == "" {
		photo = "default portrait"
	}
	b.WriteString(m.styles.Subtitle.Render("Photo: "))
	b.WriteString(m.styles.Muted.Render(photo))
	b.WriteString("\n")

	b.WriteString(m.styles.Subtitle.Render("Member since: "))
	b.WriteString(fmt.Sprintf("%s (%s)", p.JoinDate.Format("Jan 2, 2006"), memberFor(p.JoinDate, time.Now())))
	b.WriteString("\n\n")

	b.WriteString(m.styles.Subtitle.Render("Activity"))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("  %d on watchlist\n", m.stats.Watchlist))
	b.WriteString(fmt.Sprintf("  %d favorites\n", m.stats.Favorites))
	b.WriteString(fmt.Sprintf("  %d titles watched\n", m.stats.Watched))
	b.WriteString(fmt.Sprintf("  %d episodes watched\n", m.stats.WatchedEpisodes))

	if m.confirm != confirmNone {
		b.WriteString("\n")
		b.WriteString(m.renderConfirm())
	}
	return b.String()
}

// memberFor phrases the time since joining, matching the profile page's
// day-based counter.
func memberFor(joined, now time.Time) string {
	days := int(now.Sub(joined).Hours() / 24)
	switch {
	case days <= 0:
		return "joined today"
	case days == 1:
		return "1 day"
	default:
		return fmt.Sprintf("%d days", days)
	}
}

func (m Model) renderConfirm() string {
	var q string
	switch m.confirm {
	case confirmResetProfile:
		q = "Reset profile to defaults? Your watchlist and favorites are kept."
	case confirmClearAll:
		q = "Clear ALL data? Watchlist, favorites, watch history and profile will be erased."
	}
	return m.styles.Error.Render(q) + " " + m.styles.Help.Render("y/n")
}
