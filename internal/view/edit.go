package view

import (
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vmunix/motherbox/internal/catalog"
	"github.com/vmunix/motherbox/internal/photo"
	"github.com/vmunix/motherbox/internal/store"
)

const (
	fieldUsername = iota
	fieldBio
	fieldEmail
	fieldUniverse
	fieldPhoto
	fieldCount
)

// editForm holds the in-progress profile edit. Nothing is persisted until
// save; cancel discards the whole form, including a processed photo.
type editForm struct {
	username  textinput.Model
	bio       textinput.Model
	email     textinput.Model
	photoPath textinput.Model

	universes   []string
	universeIdx int

	focus int

	pending  string // photo path written on save
	preview  string
	photoErr string
	busy     bool

	joined time.Time
}

func newEditForm(p store.Profile, universes []string) *editForm {
	username := textinput.New()
	username.CharLimit = store.MaxUsernameLen
	username.Width = 32
	username.SetValue(p.Username)
	username.Focus()

	bio := textinput.New()
	bio.CharLimit = store.MaxBioLen
	bio.Width = 60
	bio.SetValue(p.Bio)

	email := textinput.New()
	email.Placeholder = "optional"
	email.Width = 40
	email.SetValue(p.Email)

	photoPath := textinput.New()
	photoPath.Placeholder = "path to an image file"
	photoPath.Width = 48

	// The filter pseudo-universe is not a profile choice.
	opts := make([]string, 0, len(universes))
	for _, u := range universes {
		if u != catalog.AllUniverses {
			opts = append(opts, u)
		}
	}
	if len(opts) == 0 {
		opts = []string{p.FavoriteUniverse}
	}
	idx := 0
	for i, u := range opts {
		if u == p.FavoriteUniverse {
			idx = i
		}
	}

	return &editForm{
		username:    username,
		bio:         bio,
		email:       email,
		photoPath:   photoPath,
		universes:   opts,
		universeIdx: idx,
		pending:     p.PhotoPath,
		joined:      p.JoinDate,
	}
}

func (f *editForm) input(i int) *textinput.Model {
	switch i {
	case fieldUsername:
		return &f.username
	case fieldBio:
		return &f.bio
	case fieldEmail:
		return &f.email
	case fieldPhoto:
		return &f.photoPath
	default:
		return nil
	}
}

func (f *editForm) setFocus(i int) {
	f.focus = (i + fieldCount) % fieldCount
	for j := 0; j < fieldCount; j++ {
		if in := f.input(j); in != nil {
			if j == f.focus {
				in.Focus()
			} else {
				in.Blur()
			}
		}
	}
}

func (m Model) handleEditKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	f := m.edit

	switch msg.String() {
	case "esc":
		return m.Update(NavigateMsg{Page: PageProfile})

	case "ctrl+c":
		return m, tea.Quit

	case "ctrl+s":
		return m.saveProfile()

	case "tab", "down":
		f.setFocus(f.focus + 1)
		return m, nil

	case "shift+tab", "up":
		f.setFocus(f.focus - 1)
		return m, nil

	case "ctrl+r":
		f.pending = ""
		f.preview = ""
		f.photoErr = ""
		f.photoPath.SetValue("")
		return m, nil

	case "left":
		if f.focus == fieldUniverse {
			f.universeIdx = (f.universeIdx - 1 + len(f.universes)) % len(f.universes)
			return m, nil
		}

	case "right":
		if f.focus == fieldUniverse {
			f.universeIdx = (f.universeIdx + 1) % len(f.universes)
			return m, nil
		}

	case "enter":
		if f.focus == fieldPhoto {
			path := strings.TrimSpace(f.photoPath.Value())
			if path == "" || f.busy {
				return m, nil
			}
			f.busy = true
			f.photoErr = ""
			return m, tea.Batch(m.spin.Tick, m.processPhotoCmd(path))
		}
		f.setFocus(f.focus + 1)
		return m, nil
	}

	if in := f.input(f.focus); in != nil {
		var cmd tea.Cmd
		*in, cmd = in.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) processPhotoCmd(path string) tea.Cmd {
	proc := m.photos
	return func() tea.Msg {
		res, err := proc.Process(path)
		return photoDoneMsg{result: res, err: err}
	}
}

func (m Model) handlePhotoDone(msg photoDoneMsg) Model {
	if m.edit == nil {
		return m // form was cancelled while the photo was processing
	}
	f := m.edit
	f.busy = false

	if msg.err != nil {
		switch {
		case errors.Is(msg.err, photo.ErrTooLarge):
			f.photoErr = "Image is too large"
		case errors.Is(msg.err, photo.ErrNotImage):
			f.photoErr = "Not a supported image (jpeg, png, gif)"
		default:
			m.logger.Warn("photo processing failed", "error", msg.err)
			f.photoErr = "Could not process image"
		}
		return m
	}

	f.pending = msg.result.Path
	f.preview = fmt.Sprintf("%dx%d, %s (applied on save)",
		msg.result.Width, msg.result.Height, humanSize(msg.result.Size))
	return m
}

func (m Model) saveProfile() (tea.Model, tea.Cmd) {
	f := m.edit

	p := store.Profile{
		Username:         strings.TrimSpace(f.username.Value()),
		Bio:              strings.TrimSpace(f.bio.Value()),
		Email:            strings.TrimSpace(f.email.Value()),
		FavoriteUniverse: f.universes[f.universeIdx],
		PhotoPath:        f.pending,
		JoinDate:         f.joined,
	}
	// Blank required fields fall back to what the profile already had.
	if p.Username == "" {
		p.Username = m.profile.Username
	}
	if p.Bio == "" {
		p.Bio = m.profile.Bio
	}

	if err := m.store.SaveProfile(p); err != nil {
		m.logger.Warn("profile save failed", "error", err)
		f.photoErr = ""
		m.status = "Could not save profile"
		return m, nil
	}

	next, cmd := m.navigate(PageProfile)
	next.status = "Profile saved"
	return next, cmd
}

func humanSize(n int64) string {
	if n < 1024 {
		return fmt.Sprintf("%d B", n)
	}
	return fmt.Sprintf("%.1f KB", float64(n)/1024)
}

func (m Model) renderProfileEdit() string {
	f := m.edit
	var b strings.Builder

	b.WriteString(m.styles.Title.Render("Edit Profile"))
	b.WriteString("\n\n")

	label := func(i int, name string) string {
		if f.focus == i {
			return m.styles.Selected.Render(name)
		}
		return m.styles.Subtitle.Render(name)
	}

	b.WriteString(label(fieldUsername, "Username"))
	b.WriteString("\n  " + f.username.View() + "\n")

	b.WriteString(label(fieldBio, "Bio"))
	b.WriteString(m.styles.Muted.Render(fmt.Sprintf("  %d/%d", utf8.RuneCountInString(f.bio.Value()), store.MaxBioLen)))
	b.WriteString("\n  " + f.bio.View() + "\n")

	b.WriteString(label(fieldEmail, "Email"))
	b.WriteString("\n  " + f.email.View() + "\n")

	b.WriteString(label(fieldUniverse, "Favorite universe"))
	b.WriteString("\n  ")
	for i, u := range f.universes {
		style := m.styles.Tab
		if i == f.universeIdx {
			style = m.styles.TabOn
		}
		b.WriteString(style.Render(u))
	}
	b.WriteString("\n")

	b.WriteString(label(fieldPhoto, "Photo"))
	b.WriteString("\n  " + f.photoPath.View() + "\n")
	switch {
	case f.busy:
		b.WriteString("  " + m.styles.Muted.Render(m.spin.View()+" processing image..."))
		b.WriteString("\n")
	case f.photoErr != "":
		b.WriteString("  " + m.styles.Error.Render(f.photoErr) + "\n")
	case f.preview != "":
		b.WriteString("  " + m.styles.Success.Render(f.preview) + "\n")
	case f.pending != "":
		b.WriteString("  " + m.styles.Muted.Render(f.pending) + "\n")
	default:
		b.WriteString("  " + m.styles.Muted.Render("default portrait") + "\n")
	}

	return b.String()
}
