package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConfidenceString(t *testing.T) {
	tests := []struct {
		conf     Confidence
		expected string
	}{
		{ConfidenceHigh, "high"},
		{ConfidenceMedium, "medium"},
		{ConfidenceLow, "low"},
		{ConfidenceNone, "none"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.conf.String())
		})
	}
}

func TestBestTitle(t *testing.T) {
	candidates := []string{
		"Man of Steel",
		"Batman: The Dark Knight",
		"Wonder Woman",
		"Aquaman",
	}

	tests := []struct {
		name      string
		query     string
		wantTitle string
		minConf   Confidence
	}{
		{"exact", "Man of Steel", "Man of Steel", ConfidenceHigh},
		{"typo", "Man of Stel", "Man of Steel", ConfidenceMedium},
		{"case and accents", "MAN OF STÉEL", "Man of Steel", ConfidenceHigh},
		{"articles and colon ignored", "batman dark knight", "Batman: The Dark Knight", ConfidenceHigh},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := BestTitle(tt.query, candidates)
			assert.Equal(t, tt.wantTitle, got.Title)
			assert.GreaterOrEqual(t, got.Confidence, tt.minConf)
		})
	}
}

func TestBestTitle_NoMatch(t *testing.T) {
	got := BestTitle("zzzzzz", []string{"Man of Steel"})
	assert.Equal(t, ConfidenceNone, got.Confidence)
	assert.Empty(t, got.Title)
}

func TestBestTitle_NoCandidates(t *testing.T) {
	got := BestTitle("anything", nil)
	assert.Equal(t, ConfidenceNone, got.Confidence)
	assert.Empty(t, got.Title)
}

func TestCleanTitle(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Batman: The Dark Knight", "batman dark knight"},
		{"Léon", "leon"},
		{"Spider-Man", "spider man"},
		{"The Flash", "flash"},
		{"Birds of Prey & Harley Quinn", "birds of prey and harley quinn"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, CleanTitle(tt.in))
		})
	}
}
