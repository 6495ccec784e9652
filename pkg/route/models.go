package route

import (
	"errors"
	"fmt"
)

// City names a location in the route service catalog
type City string

// SortCriterion selects which ranking endpoint the route service uses
type SortCriterion string

const (
	SortFastest  SortCriterion = "fastest"
	SortComfort  SortCriterion = "comfort"
	SortCheapest SortCriterion = "cheapest"
)

// SortCriteria lists every supported criterion in display order
var SortCriteria = []SortCriterion{SortFastest, SortComfort, SortCheapest}

// ParseSortCriterion turns user input into a SortCriterion
func ParseSortCriterion(s string) (SortCriterion, error) {
	for _, c := range SortCriteria {
		if string(c) == s {
			return c, nil
		}
	}
	return "", fmt.Errorf("unknown sort criterion %q (want fastest, comfort or cheapest)", s)
}

// FilterSet holds the optional numeric constraints as the raw digit strings the user typed.
// An empty field means "no constraint".
type FilterSet struct {
	MaxPrice   string
	MinComfort string
}

// Params returns the query parameters for the non-empty filters
func (f FilterSet) Params() map[string]string {
	params := make(map[string]string)
	if f.MaxPrice != "" {
		params["max_price"] = f.MaxPrice
	}
	if f.MinComfort != "" {
		params["min_comfort"] = f.MinComfort
	}
	return params
}

// IsDigits reports whether s is a non-empty run of ASCII decimal digits
func IsDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// Segment is one single-transport hop of a Route
type Segment struct {
	Transport string  `json:"transport"`
	FromCity  City    `json:"from_city"`
	ToCity    City    `json:"to_city"`
	Time      int     `json:"time"`
	Cost      float64 `json:"cost"`
	Comfort   float64 `json:"comfort"`
}

// Route is one ranked travel option returned by /api/routes/{criterion}/
type Route struct {
	Transport  []string  `json:"transport"`
	TotalTime  int       `json:"total_time"`
	TotalCost  float64   `json:"total_cost"`
	AvgComfort float64   `json:"avg_comfort"`
	Path       []City    `json:"path"`
	Segments   []Segment `json:"segments,omitempty"`
	Transfers  int       `json:"transfers,omitempty"`
}

// ErrInvalidRoute is wrapped by every error returned from Route.Validate
var ErrInvalidRoute = errors.New("invalid route")

// Validate checks the structural invariants of a route: a path of at least two
// cities and, when segments are present, one segment per hop chaining exactly along the path.
func (r Route) Validate() error {
	if len(r.Path) < 2 {
		return fmt.Errorf("%w: path has %d cities, need at least 2", ErrInvalidRoute, len(r.Path))
	}
	if r.TotalTime < 0 || r.TotalCost < 0 {
		return fmt.Errorf("%w: negative totals", ErrInvalidRoute)
	}
	if r.AvgComfort < 0 || r.AvgComfort > 100 {
		return fmt.Errorf("%w: average comfort %v out of range", ErrInvalidRoute, r.AvgComfort)
	}
	if r.Segments == nil {
		return nil
	}
	if len(r.Segments) != len(r.Path)-1 {
		return fmt.Errorf("%w: %d segments for a path of %d cities", ErrInvalidRoute, len(r.Segments), len(r.Path))
	}
	for i, s := range r.Segments {
		if s.FromCity != r.Path[i] || s.ToCity != r.Path[i+1] {
			return fmt.Errorf("%w: segment %d runs %s -> %s, path expects %s -> %s",
				ErrInvalidRoute, i+1, s.FromCity, s.ToCity, r.Path[i], r.Path[i+1])
		}
		if s.Time < 0 || s.Cost < 0 {
			return fmt.Errorf("%w: segment %d has negative time or cost", ErrInvalidRoute, i+1)
		}
		if s.Comfort < 0 || s.Comfort > 100 {
			return fmt.Errorf("%w: segment %d comfort %v out of range", ErrInvalidRoute, i+1, s.Comfort)
		}
	}
	return nil
}

// HasSegments reports whether the service sent a per-leg breakdown
func (r Route) HasSegments() bool {
	return len(r.Segments) > 0
}
