package exporter

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"algoway/pkg/route"
)

func TestGenerateICS_PerLeg(t *testing.T) {
	r := route.Route{
		Transport:  []string{"train", "bus"},
		TotalTime:  170,
		TotalCost:  1500,
		AvgComfort: 70,
		Path:       []route.City{"Москва", "Владимир", "Казань"},
		Segments: []route.Segment{
			{Transport: "train", FromCity: "Москва", ToCity: "Владимир", Time: 125, Cost: 800, Comfort: 80},
			{Transport: "bus", FromCity: "Владимир", ToCity: "Казань", Time: 45, Cost: 700, Comfort: 60},
		},
	}

	depart := time.Date(2026, 3, 4, 8, 0, 0, 0, time.UTC)

	var buf bytes.Buffer
	if err := GenerateICS(r, depart, &buf); err != nil {
		t.Fatalf("GenerateICS failed: %v", err)
	}

	out := buf.String()

	if !strings.Contains(out, "BEGIN:VCALENDAR") {
		t.Errorf("Expected output to contain BEGIN:VCALENDAR")
	}
	if strings.Count(out, "BEGIN:VEVENT") != 2 {
		t.Errorf("Expected one event per leg, got output:\n%s", out)
	}
	// The second leg starts when the first one ends: 08:00 + 2h05
	if !strings.Contains(out, "DTSTART:20260304T100500Z") {
		t.Errorf("Expected second leg to start at 10:05 UTC, got output:\n%s", out)
	}
	if !strings.Contains(out, "DTEND:20260304T105000Z") {
		t.Errorf("Expected trip to end at 10:50 UTC, got output:\n%s", out)
	}
}

func TestGenerateICS_SummaryOnly(t *testing.T) {
	r := route.Route{
		Transport:  []string{"train"},
		TotalTime:  240,
		TotalCost:  1500,
		AvgComfort: 80,
		Path:       []route.City{"Москва", "Казань"},
	}

	depart := time.Date(2026, 3, 4, 8, 0, 0, 0, time.UTC)

	var buf bytes.Buffer
	if err := GenerateICS(r, depart, &buf); err != nil {
		t.Fatalf("GenerateICS failed: %v", err)
	}

	out := buf.String()
	if strings.Count(out, "BEGIN:VEVENT") != 1 {
		t.Errorf("Expected a single event, got output:\n%s", out)
	}
	if !strings.Contains(out, "DTEND:20260304T120000Z") {
		t.Errorf("Expected event to end after 4 hours, got output:\n%s", out)
	}
}

func TestGenerateICS_InvalidRoute(t *testing.T) {
	r := route.Route{Path: []route.City{"Москва"}}

	if err := GenerateICS(r, time.Now(), &bytes.Buffer{}); err == nil {
		t.Errorf("Expected error for invalid route")
	}
}
