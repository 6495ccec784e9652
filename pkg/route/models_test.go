package route

import (
	"encoding/json"
	"errors"
	"testing"
)

func TestRouteDecodeAndValidate(t *testing.T) {
	mockJSON := `{
		"transport": ["train", "bus"],
		"total_time": 150,
		"total_cost": 250.5,
		"avg_comfort": 75,
		"path": ["Москва", "Владимир", "Казань"],
		"segments": [
			{"transport": "train", "from_city": "Москва", "to_city": "Владимир", "time": 60, "cost": 100, "comfort": 80},
			{"transport": "bus", "from_city": "Владимир", "to_city": "Казань", "time": 90, "cost": 150.5, "comfort": 70}
		],
		"transfers": 1
	}`

	var r Route
	if err := json.Unmarshal([]byte(mockJSON), &r); err != nil {
		t.Fatalf("failed to decode route: %v", err)
	}

	if err := r.Validate(); err != nil {
		t.Fatalf("expected valid route, got: %v", err)
	}
	if !r.HasSegments() {
		t.Errorf("expected segments to be present")
	}
	if r.Segments[1].ToCity != "Казань" {
		t.Errorf("expected last leg to end in Казань, got %s", r.Segments[1].ToCity)
	}
	if r.Transfers != 1 {
		t.Errorf("expected 1 transfer, got %d", r.Transfers)
	}
}

func TestRouteValidate_SummaryOnly(t *testing.T) {
	r := Route{
		Transport:  []string{"train"},
		TotalTime:  240,
		TotalCost:  1500,
		AvgComfort: 80,
		Path:       []City{"Москва", "Казань"},
	}
	if err := r.Validate(); err != nil {
		t.Fatalf("route without segments should be valid, got: %v", err)
	}
	if r.HasSegments() {
		t.Errorf("expected no segments")
	}
}

func TestRouteValidate_Rejects(t *testing.T) {
	base := func() Route {
		return Route{
			Transport:  []string{"train", "bus"},
			TotalTime:  150,
			TotalCost:  250,
			AvgComfort: 75,
			Path:       []City{"A", "B", "C"},
			Segments: []Segment{
				{Transport: "train", FromCity: "A", ToCity: "B", Time: 60, Cost: 100, Comfort: 80},
				{Transport: "bus", FromCity: "B", ToCity: "C", Time: 90, Cost: 150, Comfort: 70},
			},
		}
	}

	shortPath := base()
	shortPath.Path = []City{"A"}
	shortPath.Segments = nil

	wrongCount := base()
	wrongCount.Segments = wrongCount.Segments[:1]

	brokenChain := base()
	brokenChain.Segments[1].FromCity = "X"

	badComfort := base()
	badComfort.AvgComfort = 101

	negativeLeg := base()
	negativeLeg.Segments[0].Cost = -1

	cases := map[string]Route{
		"short path":   shortPath,
		"wrong count":  wrongCount,
		"broken chain": brokenChain,
		"bad comfort":  badComfort,
		"negative leg": negativeLeg,
	}

	for name, r := range cases {
		err := r.Validate()
		if err == nil {
			t.Errorf("%s: expected validation error, got nil", name)
			continue
		}
		if !errors.Is(err, ErrInvalidRoute) {
			t.Errorf("%s: expected error to wrap ErrInvalidRoute, got %v", name, err)
		}
	}
}

func TestParseSortCriterion(t *testing.T) {
	for _, s := range []string{"fastest", "comfort", "cheapest"} {
		c, err := ParseSortCriterion(s)
		if err != nil {
			t.Errorf("unexpected error for %s: %v", s, err)
		}
		if string(c) != s {
			t.Errorf("expected %s, got %s", s, c)
		}
	}

	if _, err := ParseSortCriterion("slowest"); err == nil {
		t.Errorf("expected error for unknown criterion")
	}
	if _, err := ParseSortCriterion(""); err == nil {
		t.Errorf("expected error for empty criterion")
	}
}

func TestFilterSetParams(t *testing.T) {
	params := FilterSet{}.Params()
	if len(params) != 0 {
		t.Errorf("expected no params for empty filters, got %v", params)
	}

	params = FilterSet{MaxPrice: "2000"}.Params()
	if params["max_price"] != "2000" {
		t.Errorf("expected max_price 2000, got %q", params["max_price"])
	}
	if _, ok := params["min_comfort"]; ok {
		t.Errorf("min_comfort should be omitted when empty")
	}
}

func TestIsDigits(t *testing.T) {
	valid := []string{"0", "12", "0042"}
	invalid := []string{"", "12a", "-1", "1.5", " 1", "١٢"}

	for _, s := range valid {
		if !IsDigits(s) {
			t.Errorf("expected %q to be digits", s)
		}
	}
	for _, s := range invalid {
		if IsDigits(s) {
			t.Errorf("expected %q to be rejected", s)
		}
	}
}

func TestParseTransport(t *testing.T) {
	if ParseTransport("plane").Mode() != ModePlane {
		t.Errorf("expected plane mode")
	}
	if ParseTransport("car").Mode() != ModeCar {
		t.Errorf("expected car mode")
	}

	ferry := ParseTransport("ferry")
	if ferry.Mode() != ModeUnknown {
		t.Errorf("expected unknown mode for ferry")
	}
	if ferry.Raw() != "ferry" {
		t.Errorf("expected raw string to be kept, got %q", ferry.Raw())
	}

	kinds := Route{Transport: []string{"train", "bus"}}.Kinds()
	if len(kinds) != 2 || kinds[1].Mode() != ModeBus {
		t.Errorf("unexpected kinds: %+v", kinds)
	}
}
