// Package catalog holds the reference data the service is loaded with at
// startup: movies, theaters, showtimes and per-showtime seat layouts.
// Records are immutable for the lifetime of the process, so they are plain
// exported-field structs rather than encapsulated entities.
package catalog

// Movie is a film in the reference catalog.
type Movie struct {
	MovieID     string `json:"movie_id"`
	Title       string `json:"title"`
	Rating      string `json:"rating"`
	Duration    int    `json:"duration"` // minutes
	Genre       string `json:"genre"`
	Description string `json:"description"`
	PosterURL   string `json:"poster_url"`
}

// Theater is a physical venue.
type Theater struct {
	TheaterID string `json:"theater_id"`
	Name      string `json:"name"`
	Address   string `json:"address"`
	City      string `json:"city"`
	State     string `json:"state"`
	ZipCode   string `json:"zip_code"`
}

// Showtime is a scheduled screening of a movie at a theater.
type Showtime struct {
	ShowtimeID string  `json:"showtime_id"`
	MovieID    string  `json:"movie_id"`
	TheaterID  string  `json:"theater_id"`
	Date       string  `json:"date"` // YYYY-MM-DD
	Time       string  `json:"time"`
	Format     string  `json:"format"` // "Standard", "IMAX", "3D", "Dolby"
	Price      float64 `json:"price"`
}

// SeatSlot is one physical seat position within a showtime's fixed layout.
// The full slot set for a showtime never grows or shrinks after load.
//
// Price may be absent in fixture data; consumers fall back to
// DefaultSeatPrice in that case.
type SeatSlot struct {
	SeatNumber string   `json:"seat_number"`
	Row        string   `json:"row"`
	Column     int      `json:"column"`
	PriceTier  string   `json:"price_tier"` // "Standard", "Premium", "Recliner"
	Price      *float64 `json:"price,omitempty"`
}

// DefaultSeatPrice is charged for a seat whose fixture entry omits a price.
const DefaultSeatPrice = 15.00

// UnitPrice resolves the effective price of the slot.
func (s SeatSlot) UnitPrice() float64 {
	if s.Price == nil {
		return DefaultSeatPrice
	}
	return *s.Price
}
