package present

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"algoway/pkg/query"
	"algoway/pkg/route"
)

// Arrow separates transport modes and the cities of a path
const Arrow = "→"

// Summary is the display form of one route card
type Summary struct {
	Rank      int
	RankLabel string
	// Modes holds transport glyphs interleaved with Arrow, never ending in one
	Modes     []string
	Duration  string
	Cost      string
	Comfort   string
	Path      string
	Transfers int
}

// SegmentRow is one leg in the breakdown under a route card
type SegmentRow struct {
	Glyph    string
	Leg      string
	Duration string
	Cost     string
	Comfort  string
	// Divider is set on every row except the last
	Divider  bool
}

// FormatDuration renders minutes as "2 ч 5 мин", dropping the hour part when it is zero
func FormatDuration(minutes int) string {
	if minutes < 0 {
		minutes = 0
	}
	hours := minutes / 60
	mins := minutes % 60
	if hours > 0 {
		return fmt.Sprintf("%d ч %d мин", hours, mins)
	}
	return fmt.Sprintf("%d мин", mins)
}

// TransportGlyph maps a transport kind to its icon. Unknown kinds are shown as received.
func TransportGlyph(k route.TransportKind) string {
	switch k.Mode() {
	case route.ModePlane:
		return "✈️"
	case route.ModeTrain:
		return "🚆"
	case route.ModeBus:
		return "🚌"
	case route.ModeCar:
		return "🚗"
	default:
		return k.Raw()
	}
}

// FormatCost prints an amount in roubles without trailing zeros
func FormatCost(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64) + " руб"
}

// Summarize builds the card header for a route; rank is 1-based
func Summarize(r route.Route, rank int) Summary {
	kinds := r.Kinds()
	modes := make([]string, 0, 2*len(kinds))
	for i, k := range kinds {
		if i > 0 {
			modes = append(modes, Arrow)
		}
		modes = append(modes, TransportGlyph(k))
	}

	return Summary{
		Rank:      rank,
		RankLabel: fmt.Sprintf("Маршрут #%d", rank),
		Modes:     modes,
		Duration:  FormatDuration(r.TotalTime),
		Cost:      FormatCost(r.TotalCost),
		Comfort:   fmt.Sprintf("%.1f/100", r.AvgComfort),
		Path:      JoinPath(r.Path),
		Transfers: r.Transfers,
	}
}

// Breakdown lists the legs of a route. It returns nil for summary-only routes.
func Breakdown(r route.Route) []SegmentRow {
	if !r.HasSegments() {
		return nil
	}

	rows := make([]SegmentRow, 0, len(r.Segments))
	for i, s := range r.Segments {
		rows = append(rows, SegmentRow{
			Glyph:    TransportGlyph(route.ParseTransport(s.Transport)),
			Leg:      fmt.Sprintf("%s %s %s", s.FromCity, Arrow, s.ToCity),
			Duration: FormatDuration(s.Time),
			Cost:     FormatCost(s.Cost),
			Comfort:  fmt.Sprintf("Комфорт: %d/100", int(math.Round(s.Comfort))),
			Divider:  i < len(r.Segments)-1,
		})
	}
	return rows
}

// JoinPath renders a city path as "A → B → C"
func JoinPath(path []route.City) string {
	names := make([]string, len(path))
	for i, c := range path {
		names[i] = string(c)
	}
	return strings.Join(names, " "+Arrow+" ")
}

// Header is the title above the result list
func Header(n int) string {
	return fmt.Sprintf("%d Найдено", n)
}

// Message turns a controller error into the text shown to the user.
// Transport failures are shown verbatim.
func Message(err error) string {
	if err == nil {
		return ""
	}

	var verr *query.ValidationError
	if errors.As(err, &verr) {
		switch verr.Code {
		case query.CodeMissingCities:
			return "Выберите города отправления и назначения"
		case query.CodeSameCity:
			return "Выберите другой город"
		case query.CodeMissingSort:
			return "Выберите метод сортировки"
		}
		return verr.Code
	}

	if errors.Is(err, query.ErrNoRoutes) {
		return "Доступных путей нет"
	}

	return err.Error()
}
