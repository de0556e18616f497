package compliance

import (
	"strings"

	"github.com/radar-check/br040/api/model"
)

var statusLabels = map[model.Status]string{
	model.StatusConforme:    "Conforme",
	model.StatusNaoConforme: "Não Conforme",
	model.StatusPendente:    "Pendente",
}

var classLabels = map[model.RoadClass]string{
	model.ViaUrbana:      "Via Urbana",
	model.ViaRuralUrbana: "Rural c/ caract. urbana",
	model.ViaRural:       "Via Rural",
}

//StatusLabel returns the display text for a status, reports must reproduce
//these byte for byte
func StatusLabel(status model.Status) string {

	if label, ok := statusLabels[status]; ok {
		return label
	}
	return "Pendente"
}

//ClassLabel returns the display text for a road classification
func ClassLabel(class model.RoadClass) string {

	if label, ok := classLabels[class]; ok {
		return label
	}
	return "N/A"
}

//ParseRoadClass normalizes free text from spreadsheets into a road classification.
//Text mentioning both urban and rural is the mixed class, urban alone is urban,
//anything else falls back to rural.
func ParseRoadClass(value string) model.RoadClass {

	lower := strings.ToLower(value)
	urban := strings.Contains(lower, "urban")
	rural := strings.Contains(lower, "rural")

	if urban && rural {
		return model.ViaRuralUrbana
	}
	if urban {
		return model.ViaUrbana
	}
	return model.ViaRural
}
