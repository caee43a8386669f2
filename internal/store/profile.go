package store

import (
	"encoding/json"
	"time"
)

// Limits on the editable profile fields.
const (
	MaxUsernameLen = 30
	MaxBioLen      = 150
)

// Profile is the single per-user record. PhotoPath is empty when the
// default portrait applies.
type Profile struct {
	Username         string    `json:"username"`
	Bio              string    `json:"bio"`
	Email            string    `json:"email,omitempty"`
	FavoriteUniverse string    `json:"favoriteUniverse"`
	PhotoPath        string    `json:"photoPath,omitempty"`
	JoinDate         time.Time `json:"joinDate"`
}

func defaultProfile() Profile {
	return Profile{
		Username:         "DC Fan",
		Bio:              "A passionate DC Universe enthusiast",
		FavoriteUniverse: "DCEU",
		JoinDate:         time.Now().UTC().Truncate(time.Second),
	}
}

// Profile returns the stored profile merged over the defaults, so fields
// introduced after the record was written auto-populate without clobbering
// anything the user set. On first access the default record is materialized
// and persisted. A corrupt stored value falls back to the defaults.
func (s *Store) Profile() Profile {
	def := defaultProfile()

	raw, ok := s.read(profileKey)
	if !ok {
		if err := s.write(profileKey, def); err != nil {
			s.logger.Error("default profile not persisted", "error", err)
		}
		return def
	}

	p := def
	if err := json.Unmarshal(raw, &p); err != nil {
		s.logger.Warn("malformed profile, using defaults", "error", err)
		return def
	}
	return p
}

// SaveProfile overwrites the stored record. The error is for the caller to
// surface; nothing here panics on a full disk.
func (s *Store) SaveProfile(p Profile) error {
	return s.write(profileKey, p)
}

// ResetProfile deletes the stored record and returns a freshly materialized
// default. The interaction sets are untouched.
func (s *Store) ResetProfile() Profile {
	if _, err := s.db.Exec(`DELETE FROM kv WHERE name = ?`, profileKey); err != nil {
		s.logger.Error("profile reset failed", "error", err)
	}
	return s.Profile()
}
