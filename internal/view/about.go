package view

import "strings"

func (m Model) renderAbout() string {
	var b strings.Builder
	b.WriteString(m.styles.Title.Render("Motherbox"))
	b.WriteString(" ")
	b.WriteString(m.styles.Muted.Render(m.version))
	b.WriteString("\n\n")
	b.WriteString("A terminal browser for the DC multiverse: films and series\n")
	b.WriteString("across every continuity, with a watchlist, favorites, and a\n")
	b.WriteString("watch history that never leaves your machine.\n\n")
	b.WriteString(m.styles.Subtitle.Render("Data"))
	b.WriteString("\n")
	b.WriteString("Catalog entries come from the configured catalog service.\n")
	b.WriteString("Your lists and profile live in a local database.\n")
	return b.String()
}
