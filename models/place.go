package models

import "fmt"

// LatLng is a bare coordinate pair.
type LatLng struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Place represents one nearby store as served by the places backend.
// Records are immutable once fetched. DistanceRaw carries the exact
// meter distance; Distance is the display form ("350 m", "1.2 km") and
// is only parsed when DistanceRaw is absent.
type Place struct {
	Name        string  `json:"name"`
	Type        string  `json:"type,omitempty"`
	DisplayType string  `json:"display_type,omitempty"`
	Lat         float64 `json:"lat"`
	Lon         float64 `json:"lon"`

	Distance    string   `json:"distance,omitempty"`
	DistanceRaw *float64 `json:"distance_raw,omitempty"`

	Rating           *float64 `json:"rating,omitempty"`
	UserRatingsTotal *int     `json:"user_ratings_total,omitempty"`
	PriceLevel       string   `json:"price_level,omitempty"`
	TopReview        string   `json:"top_review,omitempty"`

	OpeningHours *OpeningHours `json:"opening_hours,omitempty"`

	GoogleMapsURL string            `json:"google_maps_url,omitempty"`
	Tags          map[string]string `json:"tags,omitempty"`
}

func (p *Place) ToString() string {
	return fmt.Sprintf("Place(name=%s, distance=%s, lat=%f, lon=%f)",
		p.Name, p.Distance, p.Lat, p.Lon)
}

// OpeningHours mirrors the fetch source's opening_hours block.
//
// Two day-numbering conventions coexist here and must never be conflated:
// Periods[].Open.Day is 0=Sunday..6=Saturday (the source convention),
// while WeekdayText is a 7-entry Monday-first list. Indexing WeekdayText
// from a Sunday-first day number goes through (day+6)%7.
type OpeningHours struct {
	OpenNow     bool     `json:"open_now"`
	Periods     []Period `json:"periods,omitempty"`
	WeekdayText []string `json:"weekday_text,omitempty"`
}

// Period is one opening interval. Time is "HHMM" local time.
type Period struct {
	Open PeriodPoint `json:"open"`
}

type PeriodPoint struct {
	Day  int    `json:"day"`
	Time string `json:"time"`
}
