// Package catalog loads the immutable reference catalog and answers
// lookups against it. Fixtures are read once at startup; the store never
// changes afterwards, so reads need no locking.
package catalog

import (
	"embed"
	"encoding/json"
	"io/fs"
	"os"
	"path/filepath"

	"cinebook/internal/domain/catalog"
	"cinebook/internal/infra"
	"cinebook/internal/pkg/config"
	"cinebook/internal/pkg/errs"
)

//go:embed fixtures/*.json
var embeddedFixtures embed.FS

type Store struct {
	movies    map[string]catalog.Movie
	theaters  map[string]catalog.Theater
	showtimes map[string]catalog.Showtime
	seats     map[string][]catalog.SeatSlot

	// fixture order preserved for listings and seat maps
	movieOrder    []string
	showtimeOrder []string
}

// NewStore builds the catalog from cfg. An empty DataDir selects the
// embedded fixture set.
func NewStore(cfg config.CatalogConfig) (*Store, error) {
	read := func(name string) ([]byte, error) {
		if cfg.DataDir != "" {
			return os.ReadFile(filepath.Join(cfg.DataDir, name))
		}
		return fs.ReadFile(embeddedFixtures, "fixtures/"+name)
	}

	var movies []catalog.Movie
	if err := loadJSON(read, "movies.json", &movies); err != nil {
		return nil, err
	}
	var theaters []catalog.Theater
	if err := loadJSON(read, "theaters.json", &theaters); err != nil {
		return nil, err
	}
	var showtimes []catalog.Showtime
	if err := loadJSON(read, "showtimes.json", &showtimes); err != nil {
		return nil, err
	}
	var seats map[string][]catalog.SeatSlot
	if err := loadJSON(read, "seats.json", &seats); err != nil {
		return nil, err
	}

	s := &Store{
		movies:    make(map[string]catalog.Movie, len(movies)),
		theaters:  make(map[string]catalog.Theater, len(theaters)),
		showtimes: make(map[string]catalog.Showtime, len(showtimes)),
		seats:     seats,
	}
	for _, m := range movies {
		s.movies[m.MovieID] = m
		s.movieOrder = append(s.movieOrder, m.MovieID)
	}
	for _, t := range theaters {
		s.theaters[t.TheaterID] = t
	}
	for _, st := range showtimes {
		s.showtimes[st.ShowtimeID] = st
		s.showtimeOrder = append(s.showtimeOrder, st.ShowtimeID)
	}

	return s, nil
}

func loadJSON(read func(string) ([]byte, error), name string, target any) error {
	data, err := read(name)
	if err != nil {
		return errs.Wrap(err, "failed to read catalog fixture "+name)
	}
	if err := json.Unmarshal(data, target); err != nil {
		return errs.Wrap(err, "failed to parse catalog fixture "+name)
	}
	return nil
}

func (s *Store) MovieByID(id string) (catalog.Movie, error) {
	m, ok := s.movies[id]
	if !ok {
		return catalog.Movie{}, infra.WrapRepoErr("movie not found", nil, infra.KindNotFound)
	}
	return m, nil
}

func (s *Store) TheaterByID(id string) (catalog.Theater, error) {
	t, ok := s.theaters[id]
	if !ok {
		return catalog.Theater{}, infra.WrapRepoErr("theater not found", nil, infra.KindNotFound)
	}
	return t, nil
}

func (s *Store) ShowtimeByID(id string) (catalog.Showtime, error) {
	st, ok := s.showtimes[id]
	if !ok {
		return catalog.Showtime{}, infra.WrapRepoErr("showtime not found", nil, infra.KindNotFound)
	}
	return st, nil
}

// SeatsByShowtimeID returns the showtime's seat layout in fixture order.
// A showtime with no layout entry yields an empty slice, mirroring the
// lookup-with-default the fixtures allow.
func (s *Store) SeatsByShowtimeID(id string) ([]catalog.SeatSlot, error) {
	if _, ok := s.showtimes[id]; !ok {
		return nil, infra.WrapRepoErr("showtime not found", nil, infra.KindNotFound)
	}
	layout := s.seats[id]
	out := make([]catalog.SeatSlot, len(layout))
	copy(out, layout)
	return out, nil
}

// Movies returns all movies in fixture order.
func (s *Store) Movies() []catalog.Movie {
	out := make([]catalog.Movie, 0, len(s.movieOrder))
	for _, id := range s.movieOrder {
		out = append(out, s.movies[id])
	}
	return out
}

// Showtimes returns all showtimes in fixture order.
func (s *Store) Showtimes() []catalog.Showtime {
	out := make([]catalog.Showtime, 0, len(s.showtimeOrder))
	for _, id := range s.showtimeOrder {
		out = append(out, s.showtimes[id])
	}
	return out
}
