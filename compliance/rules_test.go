package compliance

import (
	"testing"

	"github.com/radar-check/br040/api/model"
)

func TestRules_LookupInterval(t *testing.T) {

	rules := DefaultRules()

	tests := []struct {
		name  string
		class model.RoadClass
		speed int
		want  Interval
	}{
		{"rural high band at threshold", model.ViaRural, 80, Interval{1000, 2000}},
		{"rural low band below threshold", model.ViaRural, 79, Interval{300, 1000}},
		{"rural high band above threshold", model.ViaRural, 110, Interval{1000, 2000}},
		{"urbana high band", model.ViaUrbana, 80, Interval{400, 500}},
		{"urbana low band", model.ViaUrbana, 60, Interval{100, 300}},
		{"rural-urbana high band", model.ViaRuralUrbana, 100, Interval{400, 500}},
		{"rural-urbana low band", model.ViaRuralUrbana, 60, Interval{100, 300}},
		{"zero speed uses low band", model.ViaRural, 0, Interval{300, 1000}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := rules.LookupInterval(tt.class, tt.speed)
			if got != tt.want {
				t.Errorf("LookupInterval(%s, %d) = %v, want %v", tt.class, tt.speed, got, tt.want)
			}
		})
	}
}

func TestRules_LookupInterval_UnknownClass(t *testing.T) {

	rules := DefaultRules()

	//unknown classifications behave exactly like rural
	got := rules.LookupInterval(model.RoadClass("garbage"), 100)
	want := rules.LookupInterval(model.ViaRural, 100)
	if got != want {
		t.Errorf("unknown class = %v, rural = %v", got, want)
	}

	got = rules.LookupInterval(model.RoadClass(""), 60)
	want = rules.LookupInterval(model.ViaRural, 60)
	if got != want {
		t.Errorf("empty class = %v, rural = %v", got, want)
	}
}

func TestRules_Injected(t *testing.T) {

	rules := NewRules(map[model.RoadClass][2]Interval{
		model.ViaRural: {{Min: 10, Max: 20}, {Min: 1, Max: 5}},
	})

	if got := rules.LookupInterval(model.ViaRural, 90); got != (Interval{10, 20}) {
		t.Errorf("injected high band = %v", got)
	}
	if got := rules.LookupInterval(model.ViaRural, 40); got != (Interval{1, 5}) {
		t.Errorf("injected low band = %v", got)
	}
}

func TestEvaluateDistance(t *testing.T) {

	interval := Interval{Min: 400, Max: 500}
	d := func(v int) *int { return &v }

	tests := []struct {
		name     string
		distance *int
		want     Verdict
	}{
		{"not measured", nil, VerdictUnknown},
		{"at minimum", d(400), VerdictCompliant},
		{"at maximum", d(500), VerdictCompliant},
		{"inside", d(450), VerdictCompliant},
		{"one below minimum", d(399), VerdictNonCompliant},
		{"one above maximum", d(501), VerdictNonCompliant},
		{"zero", d(0), VerdictNonCompliant},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := EvaluateDistance(tt.distance, interval); got != tt.want {
				t.Errorf("EvaluateDistance = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestEvaluateDistance_NilForAnyInterval(t *testing.T) {

	intervals := []Interval{{100, 300}, {300, 1000}, {400, 500}, {1000, 2000}, {0, 0}}
	for _, interval := range intervals {
		if got := EvaluateDistance(nil, interval); got != VerdictUnknown {
			t.Errorf("EvaluateDistance(nil, %v) = %v, want unknown", interval, got)
		}
	}
}
