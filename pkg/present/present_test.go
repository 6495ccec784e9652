package present

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"algoway/pkg/query"
	"algoway/pkg/route"
)

func TestFormatDuration(t *testing.T) {
	cases := map[int]string{
		0:   "0 мин",
		45:  "45 мин",
		59:  "59 мин",
		60:  "1 ч 0 мин",
		125: "2 ч 5 мин",
		240: "4 ч 0 мин",
	}

	for minutes, want := range cases {
		if got := FormatDuration(minutes); got != want {
			t.Errorf("FormatDuration(%d) = %q, want %q", minutes, got, want)
		}
	}
}

func TestTransportGlyph(t *testing.T) {
	if TransportGlyph(route.ParseTransport("train")) != "🚆" {
		t.Errorf("expected train glyph")
	}
	if TransportGlyph(route.ParseTransport("plane")) != "✈️" {
		t.Errorf("expected plane glyph")
	}
	if got := TransportGlyph(route.ParseTransport("ferry")); got != "ferry" {
		t.Errorf("expected unknown transport to pass through, got %q", got)
	}
}

func TestSummarize(t *testing.T) {
	r := route.Route{
		Transport:  []string{"train"},
		TotalTime:  240,
		TotalCost:  1500,
		AvgComfort: 80,
		Path:       []route.City{"Москва", "Казань"},
	}

	s := Summarize(r, 1)

	if s.RankLabel != "Маршрут #1" {
		t.Errorf("expected rank label Маршрут #1, got %q", s.RankLabel)
	}
	if s.Duration != "4 ч 0 мин" {
		t.Errorf("expected 4 ч 0 мин, got %q", s.Duration)
	}
	if s.Cost != "1500 руб" {
		t.Errorf("expected 1500 руб, got %q", s.Cost)
	}
	if s.Comfort != "80.0/100" {
		t.Errorf("expected 80.0/100, got %q", s.Comfort)
	}
	if s.Path != "Москва → Казань" {
		t.Errorf("expected path Москва → Казань, got %q", s.Path)
	}
	if len(s.Modes) != 1 || s.Modes[0] != "🚆" {
		t.Errorf("expected a single train glyph, got %v", s.Modes)
	}
}

func TestSummarize_ModeSeparators(t *testing.T) {
	r := route.Route{
		Transport:  []string{"plane", "bus", "hovercraft"},
		AvgComfort: 66.66,
		TotalCost:  999.5,
		Path:       []route.City{"A", "B", "C", "D"},
	}

	s := Summarize(r, 3)

	want := []string{"✈️", Arrow, "🚌", Arrow, "hovercraft"}
	if strings.Join(s.Modes, "|") != strings.Join(want, "|") {
		t.Errorf("expected modes %v, got %v", want, s.Modes)
	}
	if s.Modes[len(s.Modes)-1] == Arrow {
		t.Errorf("separator must not trail the mode chain")
	}
	if s.Comfort != "66.7/100" {
		t.Errorf("expected comfort rounded to one decimal, got %q", s.Comfort)
	}
	if s.Cost != "999.5 руб" {
		t.Errorf("expected 999.5 руб, got %q", s.Cost)
	}
	if s.RankLabel != "Маршрут #3" {
		t.Errorf("unexpected rank label %q", s.RankLabel)
	}
}

func TestBreakdown(t *testing.T) {
	r := route.Route{
		Transport: []string{"train", "bus"},
		Path:      []route.City{"Москва", "Владимир", "Казань"},
		Segments: []route.Segment{
			{Transport: "train", FromCity: "Москва", ToCity: "Владимир", Time: 125, Cost: 800, Comfort: 79.6},
			{Transport: "bus", FromCity: "Владимир", ToCity: "Казань", Time: 45, Cost: 700, Comfort: 60},
		},
	}

	rows := Breakdown(r)
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}

	if rows[0].Leg != "Москва → Владимир" {
		t.Errorf("unexpected leg label %q", rows[0].Leg)
	}
	if rows[0].Duration != "2 ч 5 мин" {
		t.Errorf("unexpected duration %q", rows[0].Duration)
	}
	if rows[0].Comfort != "Комфорт: 80/100" {
		t.Errorf("expected integer comfort, got %q", rows[0].Comfort)
	}
	if rows[1].Duration != "45 мин" {
		t.Errorf("unexpected duration %q", rows[1].Duration)
	}

	if !rows[0].Divider {
		t.Errorf("expected divider after the first row")
	}
	if rows[1].Divider {
		t.Errorf("divider must not follow the last row")
	}
}

func TestBreakdown_SummaryOnly(t *testing.T) {
	r := route.Route{Transport: []string{"car"}, Path: []route.City{"A", "B"}}
	if rows := Breakdown(r); rows != nil {
		t.Errorf("expected no breakdown without segments, got %v", rows)
	}
}

func TestMessage(t *testing.T) {
	if got := Message(&query.ValidationError{Code: query.CodeSameCity}); got != "Выберите другой город" {
		t.Errorf("unexpected same-city message %q", got)
	}
	if got := Message(&query.ValidationError{Code: query.CodeMissingSort}); got != "Выберите метод сортировки" {
		t.Errorf("unexpected missing-sort message %q", got)
	}
	if got := Message(query.ErrNoRoutes); got != "Доступных путей нет" {
		t.Errorf("unexpected empty result message %q", got)
	}
	if got := Message(&query.TransportError{Err: errors.New("unexpected status code: 502")}); got != "unexpected status code: 502" {
		t.Errorf("expected transport error verbatim, got %q", got)
	}
	if Message(nil) != "" {
		t.Errorf("expected empty message for nil error")
	}
}

func TestRender(t *testing.T) {
	routes := []route.Route{
		{
			Transport:  []string{"train"},
			TotalTime:  240,
			TotalCost:  1500,
			AvgComfort: 80,
			Path:       []route.City{"Москва", "Казань"},
		},
		{
			Transport:  []string{"train", "bus"},
			TotalTime:  170,
			TotalCost:  1500,
			AvgComfort: 70,
			Path:       []route.City{"Москва", "Владимир", "Казань"},
			Transfers:  1,
			Segments: []route.Segment{
				{Transport: "train", FromCity: "Москва", ToCity: "Владимир", Time: 125, Cost: 800, Comfort: 80},
				{Transport: "bus", FromCity: "Владимир", ToCity: "Казань", Time: 45, Cost: 700, Comfort: 60},
			},
		},
	}

	var buf bytes.Buffer
	if err := Render(&buf, routes); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	out := buf.String()

	for _, want := range []string{
		"2 Найдено",
		"Маршрут #1",
		"Маршрут #2",
		"4 ч 0 мин",
		"80.0/100",
		"Москва → Владимир → Казань",
		"Этапы маршрута:",
		"Комфорт: 60/100",
		"пересадок: 1",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("expected output to contain %q\n%s", want, out)
		}
	}

	if strings.Count(out, "Этапы маршрута:") != 1 {
		t.Errorf("only the route with segments should get a breakdown")
	}
	if strings.Count(out, "────────") != 1 {
		t.Errorf("expected exactly one divider between two legs")
	}
}
