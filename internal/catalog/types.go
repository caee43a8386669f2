// Package catalog provides a read-only client for the remote movie catalog.
package catalog

// MediaType distinguishes standalone movies from series.
type MediaType string

const (
	TypeMovie  MediaType = "movie"
	TypeSeries MediaType = "series"
)

// Movie represents one catalog row. Series rows carry Seasons; movie rows
// leave it empty.
type Movie struct {
	ID       int64     `json:"id"`
	Title    string    `json:"title"`
	Year     int       `json:"year"`
	Rating   float64   `json:"rating"`
	Universe string    `json:"universe"`
	Type     MediaType `json:"type"`
	Poster   string    `json:"poster"`
	Backdrop string    `json:"backdrop"`
	Duration string    `json:"duration"`
	Director string    `json:"director"`
	Synopsis string    `json:"synopsis"`
	Cast     []string  `json:"cast"`
	Genre    []string  `json:"genre"`
	Seasons  []Season  `json:"seasons,omitempty"`
}

// Season is an ordered group of episodes within a series.
type Season struct {
	Season   int       `json:"season"`
	Episodes []Episode `json:"episodes"`
}

// Episode is a single entry inside a season.
type Episode struct {
	Episode  int    `json:"episode"`
	Title    string `json:"title"`
	Duration string `json:"duration"`
}

// IsSeries reports whether the row has episodic structure.
func (m *Movie) IsSeries() bool {
	return m.Type == TypeSeries
}
