package exporter

import (
	"fmt"
	"io"
	"strings"
	"time"

	ics "github.com/arran4/golang-ical"

	"algoway/pkg/present"
	"algoway/pkg/route"
)

// GenerateICS writes a calendar for a route departing at depart. Routes with a
// leg breakdown get one event per leg, back to back; summary-only routes get a
// single event spanning the whole trip.
func GenerateICS(r route.Route, depart time.Time, w io.Writer) error {
	if err := r.Validate(); err != nil {
		return err
	}

	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId("-//AlgoWay//Route Export//RU")

	now := time.Now()
	summary := present.Summarize(r, 1)

	if !r.HasSegments() {
		event := cal.AddEvent(fmt.Sprintf("%s-route", depart.UTC().Format("20060102T150405Z")))
		event.SetCreatedTime(now)
		event.SetDtStampTime(now)
		event.SetStartAt(depart)
		event.SetEndAt(depart.Add(time.Duration(r.TotalTime) * time.Minute))
		event.SetSummary(summary.Path)
		event.SetLocation(string(r.Path[0]))
		event.SetDescription(fmt.Sprintf("%s\n%s • %s • %s",
			strings.Join(summary.Modes, " "), summary.Duration, summary.Cost, summary.Comfort))
		return cal.SerializeTo(w)
	}

	rows := present.Breakdown(r)
	start := depart
	for i, s := range r.Segments {
		end := start.Add(time.Duration(s.Time) * time.Minute)
		row := rows[i]

		event := cal.AddEvent(fmt.Sprintf("%s-leg-%d", depart.UTC().Format("20060102T150405Z"), i+1))
		event.SetCreatedTime(now)
		event.SetDtStampTime(now)
		event.SetStartAt(start)
		event.SetEndAt(end)
		event.SetSummary(fmt.Sprintf("%s %s", row.Glyph, row.Leg))
		event.SetLocation(string(s.FromCity))
		event.SetDescription(fmt.Sprintf("Этап %d из %d\n%s • %s • %s\nМаршрут: %s",
			i+1, len(r.Segments), row.Duration, row.Cost, row.Comfort, summary.Path))

		start = end
	}

	return cal.SerializeTo(w)
}
