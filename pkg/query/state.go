package query

import (
	"algoway/pkg/route"
)

// Role picks which end of the trip SelectCity changes
type Role int

const (
	Origin Role = iota
	Destination
)

// FilterField picks which filter SetFilter changes
type FilterField int

const (
	MaxPrice FilterField = iota
	MinComfort
)

// State is everything the controller knows. ErrorMessage and Results are
// never both set; Loading is true only while the newest search is in flight.
type State struct {
	Origin      *route.City
	Destination *route.City
	Sort        route.SortCriterion
	Filters     route.FilterSet

	Loading      bool
	ErrorMessage string
	Err          error
	Results      []route.Route

	Catalog []route.City
}

func (s State) clone() State {
	out := s
	if s.Origin != nil {
		o := *s.Origin
		out.Origin = &o
	}
	if s.Destination != nil {
		d := *s.Destination
		out.Destination = &d
	}
	if s.Results != nil {
		out.Results = append([]route.Route(nil), s.Results...)
	}
	if s.Catalog != nil {
		out.Catalog = append([]route.City(nil), s.Catalog...)
	}
	return out
}

// event is one state transition. reduce is the only place state changes.
type event interface{}

type (
	citySelected struct {
		role  Role
		value *route.City
	}
	sortChosen struct {
		sort route.SortCriterion
	}
	filterChanged struct {
		field FilterField
		value string
	}
	searchRejected struct {
		err *ValidationError
	}
	searchStarted   struct{}
	searchSucceeded struct {
		routes []route.Route
	}
	searchFailed struct {
		err error
	}
	searchSettled  struct{}
	resultsCleared struct{}
	catalogLoaded  struct {
		cities []route.City
	}
	catalogFailed struct {
		err error
	}
)

func reduce(s State, e event) State {
	switch e := e.(type) {
	case citySelected:
		if e.role == Origin {
			s.Origin = e.value
		} else {
			s.Destination = e.value
		}

	case sortChosen:
		s.Sort = e.sort

	case filterChanged:
		if e.field == MaxPrice {
			s.Filters.MaxPrice = e.value
		} else {
			s.Filters.MinComfort = e.value
		}

	case searchRejected:
		s = withError(s, e.err)
		s.Loading = false

	case searchStarted:
		s.Loading = true
		s.ErrorMessage = ""
		s.Err = nil
		s.Results = nil

	case searchSucceeded:
		if len(e.routes) == 0 {
			s = withError(s, ErrNoRoutes)
		} else {
			s.Results = e.routes
			s.ErrorMessage = ""
			s.Err = nil
		}

	case searchFailed:
		s = withError(s, &TransportError{Err: e.err})

	case searchSettled:
		s.Loading = false

	case resultsCleared:
		s.Results = nil

	case catalogLoaded:
		s.Catalog = e.cities

	case catalogFailed:
		s.Catalog = nil
		s = withError(s, &TransportError{Err: e.err})
	}
	return s
}

func withError(s State, err error) State {
	s.Err = err
	s.ErrorMessage = err.Error()
	s.Results = nil
	return s
}
