package compliance

import (
	"testing"

	"github.com/radar-check/br040/api/model"
)

func TestStatusLabel(t *testing.T) {

	tests := []struct {
		status model.Status
		want   string
	}{
		{model.StatusConforme, "Conforme"},
		{model.StatusNaoConforme, "Não Conforme"},
		{model.StatusPendente, "Pendente"},
		{model.Status(""), "Pendente"},
		{model.Status("whatever"), "Pendente"},
	}

	for _, tt := range tests {
		if got := StatusLabel(tt.status); got != tt.want {
			t.Errorf("StatusLabel(%q) = %q, want %q", tt.status, got, tt.want)
		}
	}
}

func TestClassLabel(t *testing.T) {

	tests := []struct {
		class model.RoadClass
		want  string
	}{
		{model.ViaUrbana, "Via Urbana"},
		{model.ViaRuralUrbana, "Rural c/ caract. urbana"},
		{model.ViaRural, "Via Rural"},
		{model.RoadClass(""), "N/A"},
		{model.RoadClass("desconhecido"), "N/A"},
	}

	for _, tt := range tests {
		if got := ClassLabel(tt.class); got != tt.want {
			t.Errorf("ClassLabel(%q) = %q, want %q", tt.class, got, tt.want)
		}
	}
}

func TestParseRoadClass(t *testing.T) {

	tests := []struct {
		value string
		want  model.RoadClass
	}{
		{"Rural com característica Urbana", model.ViaRuralUrbana},
		{"RURAL C/ CARACT. URBANA", model.ViaRuralUrbana},
		{"Via Urbana", model.ViaUrbana},
		{"URBANA", model.ViaUrbana},
		{"Via Rural", model.ViaRural},
		{"", model.ViaRural},
		{"desconhecido", model.ViaRural},
	}

	for _, tt := range tests {
		if got := ParseRoadClass(tt.value); got != tt.want {
			t.Errorf("ParseRoadClass(%q) = %q, want %q", tt.value, got, tt.want)
		}
	}
}

func TestParseKm(t *testing.T) {

	tests := []struct {
		km   string
		want float64
	}{
		{"118+700", 118.7},
		{"50+300", 50.3},
		{"281+000", 281.0},
		{"141+0", 141.0},
		{"Km 34+500", 34.5},
		{"34.5", 34.5},
		{"", 0},
		{"abc", 0},
	}

	for _, tt := range tests {
		if got := ParseKm(tt.km); got != tt.want {
			t.Errorf("ParseKm(%q) = %v, want %v", tt.km, got, tt.want)
		}
	}
}
