package view

import (
	"fmt"
	"strings"

	"github.com/vmunix/motherbox/internal/store"
)

type episodeRef struct {
	season  int
	episode int
}

// flatEpisodes flattens seasons into one cursor-addressable list.
func (m Model) flatEpisodes() []episodeRef {
	if m.detail == nil {
		return nil
	}
	var refs []episodeRef
	for _, s := range m.detail.Seasons {
		for _, e := range s.Episodes {
			refs = append(refs, episodeRef{season: s.Season, episode: e.Episode})
		}
	}
	return refs
}

func (m Model) episodeCount() int { return len(m.flatEpisodes()) }

func (m Model) selectedEpisode() (episodeRef, bool) {
	refs := m.flatEpisodes()
	if m.cursor < 0 || m.cursor >= len(refs) {
		return episodeRef{}, false
	}
	return refs[m.cursor], true
}

func (m Model) renderDetail() string {
	if m.detailMissing {
		return m.styles.Empty.Render("Title Not Found") + "\n" +
			m.styles.Muted.Render("It may have been removed from the catalog.")
	}
	if m.detail == nil {
		return ""
	}

	mv := m.detail
	var b strings.Builder

	b.WriteString(m.styles.Title.Render(mv.Title))
	b.WriteString(m.styles.Muted.Render(fmt.Sprintf("  (%d)  ★%.1f  %s", mv.Year, mv.Rating, mv.Duration)))
	b.WriteString("\n")
	b.WriteString(m.styles.Badge.Render(mv.Universe))
	if mv.IsSeries() {
		b.WriteString(" " + m.styles.Badge.Render("series"))
	}
	if flags := m.rowFlags(mv.ID); flags != "" {
		b.WriteString("  " + flags)
	}
	b.WriteString("\n\n")

	if mv.Synopsis != "" {
		b.WriteString(mv.Synopsis)
		b.WriteString("\n\n")
	}
	if mv.Director != "" {
		b.WriteString(m.styles.Subtitle.Render("Director: "))
		b.WriteString(mv.Director)
		b.WriteString("\n")
	}
	if len(mv.Cast) > 0 {
		b.WriteString(m.styles.Subtitle.Render("Cast: "))
		b.WriteString(strings.Join(mv.Cast, ", "))
		b.WriteString("\n")
	}
	if len(mv.Genre) > 0 {
		b.WriteString(m.styles.Subtitle.Render("Genres: "))
		b.WriteString(strings.Join(mv.Genre, ", "))
		b.WriteString("\n")
	}

	if mv.IsSeries() {
		b.WriteString("\n")
		b.WriteString(m.renderSeasons())
	}
	return b.String()
}

func (m Model) renderSeasons() string {
	var b strings.Builder
	idx := 0
	for _, s := range m.detail.Seasons {
		b.WriteString(m.styles.Subtitle.Render(fmt.Sprintf("Season %d", s.Season)))
		b.WriteString("\n")
		for _, e := range s.Episodes {
			marker := "  "
			style := m.styles.Muted
			if idx == m.cursor {
				marker = "> "
				style = m.styles.Selected
			}

			watched := " "
			if m.store.IsEpisodeWatched(store.EpisodeKey(m.detail.ID, s.Season, e.Episode)) {
				watched = m.styles.Success.Render("✓")
			}

			b.WriteString(fmt.Sprintf("%s%s %s %s\n",
				marker,
				watched,
				style.Render(fmt.Sprintf("E%02d %s", e.Episode, e.Title)),
				m.styles.Muted.Render(e.Duration),
			))
			idx++
		}
	}
	return b.String()
}
