package view

import (
	"context"
	"log/slog"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/sync/errgroup"

	"github.com/vmunix/motherbox/internal/catalog"
	"github.com/vmunix/motherbox/internal/photo"
	"github.com/vmunix/motherbox/internal/store"
	"github.com/vmunix/motherbox/pkg/match"
)

// Page identifies a routed view.
type Page int

const (
	PageHome Page = iota
	PageWatchlist
	PageFavorites
	PageProfile
	PageProfileEdit
	PageAbout
	PageDetail
)

func (p Page) String() string {
	switch p {
	case PageHome:
		return "home"
	case PageWatchlist:
		return "watchlist"
	case PageFavorites:
		return "favorites"
	case PageProfile:
		return "profile"
	case PageProfileEdit:
		return "profile-edit"
	case PageAbout:
		return "about"
	case PageDetail:
		return "detail"
	default:
		return "unknown"
	}
}

// Catalog is the slice of the catalog client the router consumes.
type Catalog interface {
	List(ctx context.Context, universe, search string) ([]catalog.Movie, error)
	Get(ctx context.Context, id int64) (*catalog.Movie, error)
	Universes(ctx context.Context) ([]string, error)
}

// Routing commands. Key handling translates key events into these, and
// tests drive the router with them directly, without a terminal.
type (
	// NavigateMsg switches the active page. Filter and search state are
	// left alone.
	NavigateMsg struct{ Page Page }

	// SetFilterMsg sets the universe filter, clears the search text, and
	// forces the home page.
	SetFilterMsg struct{ Universe string }

	// SetSearchMsg sets the search text and resets the filter to all
	// universes.
	SetSearchMsg struct{ Text string }

	// OpenDetailMsg pushes the detail view for one title over the current
	// page.
	OpenDetailMsg struct{ ID int64 }
)

// Fetch results. Each carries the generation it was issued under; results
// from a superseded generation are dropped, never rendered.
type (
	warmedMsg struct {
		gen       int
		movies    []catalog.Movie
		universes []string
		err       error
	}

	listLoadedMsg struct {
		gen    int
		movies []catalog.Movie
		err    error
	}

	detailLoadedMsg struct {
		gen   int
		movie *catalog.Movie
		err   error
	}

	photoDoneMsg struct {
		result *photo.Result
		err    error
	}
)

type confirmKind int

const (
	confirmNone confirmKind = iota
	confirmResetProfile
	confirmClearAll
)

// Model is the router: current page, filter and search state, and the data
// behind the active view. It satisfies tea.Model.
type Model struct {
	catalog Catalog
	store   *store.Store
	photos  *photo.Processor
	logger  *slog.Logger
	version string

	styles Styles
	spin   spinner.Model
	width  int
	height int

	page Page
	prev Page // page to return to from detail

	universe  string
	universes []string // filter tabs, first entry is "all"
	search    textinput.Model

	// gen guards against a slow fetch resolving after the user has moved
	// on; see the *LoadedMsg handlers.
	gen     int
	loading bool

	movies     []catalog.Movie
	allTitles  []string // full-catalog titles for "did you mean"
	suggestion string

	detail        *catalog.Movie
	detailMissing bool

	cursor int

	profile store.Profile
	stats   store.Stats
	confirm confirmKind
	status  string

	edit *editForm
}

// New creates the router in its initial state: home page, all universes,
// empty search.
func New(cat Catalog, st *store.Store, photos *photo.Processor, logger *slog.Logger, version string) Model {
	if logger == nil {
		logger = slog.Default()
	}

	search := textinput.New()
	search.Placeholder = "search titles"
	search.Prompt = "/ "
	search.CharLimit = 80
	search.Width = 30

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	return Model{
		catalog:   cat,
		store:     st,
		photos:    photos,
		logger:    logger.With("component", "view"),
		version:   version,
		styles:    DefaultStyles(),
		spin:      sp,
		page:      PageHome,
		prev:      PageHome,
		universe:  catalog.AllUniverses,
		universes: []string{catalog.AllUniverses},
		search:    search,
		loading:   true,
	}
}

// Current reports the active page.
func (m Model) Current() Page { return m.page }

// Init starts the warm-up fetch: initial list and universe tabs, loaded
// concurrently.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spin.Tick, m.warmupCmd())
}

func (m Model) warmupCmd() tea.Cmd {
	gen := m.gen
	cat := m.catalog
	return func() tea.Msg {
		g, ctx := errgroup.WithContext(context.Background())
		var movies []catalog.Movie
		var universes []string
		g.Go(func() error {
			var err error
			movies, err = cat.List(ctx, catalog.AllUniverses, "")
			return err
		})
		g.Go(func() error {
			var err error
			universes, err = cat.Universes(ctx)
			return err
		})
		err := g.Wait()
		return warmedMsg{gen: gen, movies: movies, universes: universes, err: err}
	}
}

func (m Model) fetchListCmd(universe, search string) tea.Cmd {
	gen := m.gen
	cat := m.catalog
	return func() tea.Msg {
		movies, err := cat.List(context.Background(), universe, search)
		return listLoadedMsg{gen: gen, movies: movies, err: err}
	}
}

func (m Model) fetchDetailCmd(id int64) tea.Cmd {
	gen := m.gen
	cat := m.catalog
	return func() tea.Msg {
		movie, err := cat.Get(context.Background(), id)
		return detailLoadedMsg{gen: gen, movie: movie, err: err}
	}
}

// Update is the single dispatch point for every event in the app.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case spinner.TickMsg:
		busy := m.loading || (m.edit != nil && m.edit.busy)
		if !busy {
			return m, nil
		}
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case warmedMsg:
		if msg.gen != m.gen {
			return m, nil
		}
		m.loading = false
		if msg.err != nil {
			// Degrades to an empty list; the user sees the empty state.
			m.logger.Warn("warm-up fetch failed", "error", msg.err)
			return m, nil
		}
		m.movies = msg.movies
		m.universes = append([]string{catalog.AllUniverses}, msg.universes...)
		m.allTitles = titlesOf(msg.movies)
		return m, nil

	case listLoadedMsg:
		if msg.gen != m.gen {
			return m, nil // superseded by a newer navigation
		}
		m.loading = false
		m.cursor = 0
		if msg.err != nil {
			m.logger.Warn("list fetch failed", "page", m.page.String(), "error", msg.err)
			m.movies = nil
			return m, nil
		}
		m.movies = msg.movies
		m.suggestion = ""
		if m.page == PageHome && len(msg.movies) == 0 && m.search.Value() != "" {
			if best := match.BestTitle(m.search.Value(), m.allTitles); best.Confidence >= match.ConfidenceLow {
				m.suggestion = best.Title
			}
		}
		return m, nil

	case detailLoadedMsg:
		if msg.gen != m.gen {
			return m, nil
		}
		m.loading = false
		m.cursor = 0
		if msg.err != nil {
			if msg.err != catalog.ErrNotFound {
				m.logger.Warn("detail fetch failed", "error", msg.err)
			}
			m.detail = nil
			m.detailMissing = true
			return m, nil
		}
		m.detail = msg.movie
		m.detailMissing = false
		return m, nil

	case photoDoneMsg:
		return m.handlePhotoDone(msg), nil

	case NavigateMsg:
		return m.navigate(msg.Page)

	case SetFilterMsg:
		return m.setFilter(msg.Universe)

	case SetSearchMsg:
		m.search.SetValue(msg.Text)
		return m.setSearch()

	case OpenDetailMsg:
		return m.openDetail(msg.ID)

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

// navigate switches pages without touching filter/search state.
func (m Model) navigate(page Page) (Model, tea.Cmd) {
	m.page = page
	m.status = ""
	m.confirm = confirmNone
	m.cursor = 0
	m.search.Blur()

	switch page {
	case PageHome:
		m.gen++
		m.loading = true
		return m, tea.Batch(m.spin.Tick, m.fetchListCmd(m.universe, m.search.Value()))

	case PageWatchlist:
		if len(m.store.GetSet(store.SetWatchlist)) == 0 {
			m.movies = nil
			m.loading = false
			return m, nil
		}
		m.gen++
		m.loading = true
		return m, tea.Batch(m.spin.Tick, m.fetchListCmd(catalog.AllUniverses, ""))

	case PageFavorites:
		if len(m.store.GetSet(store.SetFavorites)) == 0 {
			m.movies = nil
			m.loading = false
			return m, nil
		}
		m.gen++
		m.loading = true
		return m, tea.Batch(m.spin.Tick, m.fetchListCmd(catalog.AllUniverses, ""))

	case PageProfile:
		m.profile = m.store.Profile()
		m.stats = m.store.Stats()
		m.edit = nil
		return m, nil

	case PageProfileEdit:
		m.profile = m.store.Profile()
		m.edit = newEditForm(m.profile, m.universes)
		return m, nil
	}

	return m, nil
}

// setFilter selects a universe tab: search clears and the home page takes
// over, whatever was active.
func (m Model) setFilter(universe string) (Model, tea.Cmd) {
	m.universe = universe
	m.search.SetValue("")
	m.page = PageHome
	m.gen++
	m.loading = true
	m.cursor = 0
	return m, tea.Batch(m.spin.Tick, m.fetchListCmd(m.universe, ""))
}

// setSearch re-queries on the current text: the filter resets to all
// universes and every keystroke triggers a fresh fetch.
func (m Model) setSearch() (Model, tea.Cmd) {
	m.universe = catalog.AllUniverses
	m.page = PageHome
	m.gen++
	m.loading = true
	m.cursor = 0
	return m, tea.Batch(m.spin.Tick, m.fetchListCmd(m.universe, m.search.Value()))
}

// openDetail pushes the detail view. Back returns to the page that was
// active before; a detail opened over a detail keeps the original origin.
func (m Model) openDetail(id int64) (Model, tea.Cmd) {
	if m.page != PageDetail {
		m.prev = m.page
	}
	m.page = PageDetail
	m.detail = nil
	m.detailMissing = false
	m.gen++
	m.loading = true
	return m, tea.Batch(m.spin.Tick, m.fetchDetailCmd(id))
}

func titlesOf(movies []catalog.Movie) []string {
	titles := make([]string, len(movies))
	for i, mv := range movies {
		titles[i] = mv.Title
	}
	return titles
}

// visibleMovies returns the rows the active list page shows. Watchlist and
// favorites intersect the full catalog with the live store set, so a toggle
// is reflected on the very next render.
func (m Model) visibleMovies() []catalog.Movie {
	switch m.page {
	case PageWatchlist:
		return intersect(m.movies, m.store.GetSet(store.SetWatchlist))
	case PageFavorites:
		return intersect(m.movies, m.store.GetSet(store.SetFavorites))
	default:
		return m.movies
	}
}

// intersect keeps catalog order, not the set's insertion order.
func intersect(movies []catalog.Movie, ids []int64) []catalog.Movie {
	want := make(map[int64]bool, len(ids))
	for _, id := range ids {
		want[id] = true
	}
	var out []catalog.Movie
	for _, mv := range movies {
		if want[mv.ID] {
			out = append(out, mv)
		}
	}
	return out
}

// View renders the active page.
func (m Model) View() string {
	var b strings.Builder
	b.WriteString(m.renderHeader())
	b.WriteString("\n")

	if m.loading {
		b.WriteString(m.styles.Muted.Render(m.spin.View() + " loading..."))
		b.WriteString("\n")
		return b.String()
	}

	switch m.page {
	case PageHome, PageWatchlist, PageFavorites:
		b.WriteString(m.renderListPage())
	case PageProfile:
		b.WriteString(m.renderProfile())
	case PageProfileEdit:
		b.WriteString(m.renderProfileEdit())
	case PageAbout:
		b.WriteString(m.renderAbout())
	case PageDetail:
		b.WriteString(m.renderDetail())
	}

	if m.status != "" {
		b.WriteString("\n")
		b.WriteString(m.styles.Success.Render(m.status))
	}
	b.WriteString("\n")
	b.WriteString(m.renderFooter())
	return b.String()
}

func (m Model) renderHeader() string {
	tabs := []struct {
		page  Page
		label string
	}{
		{PageHome, "1:home"},
		{PageWatchlist, "2:watchlist"},
		{PageFavorites, "3:favorites"},
		{PageProfile, "4:profile"},
		{PageAbout, "5:about"},
	}

	parts := []string{m.styles.Header.Render("MOTHERBOX")}
	for _, t := range tabs {
		style := m.styles.Tab
		active := m.page == t.page ||
			(m.page == PageProfileEdit && t.page == PageProfile) ||
			(m.page == PageDetail && t.page == m.prev)
		if active {
			style = m.styles.TabOn
		}
		parts = append(parts, style.Render(t.label))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}
