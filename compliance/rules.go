package compliance

import (
	"github.com/radar-check/br040/api/model"
)

//Interval is the allowed sign placement distance range in meters, inclusive on both ends
type Interval struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

//Verdict is the outcome of checking one measured distance
type Verdict int

const (
	VerdictUnknown Verdict = iota
	VerdictCompliant
	VerdictNonCompliant
)

//speeds at or above this select the high band of the rule table
const highSpeedKmh = 80

type band struct {
	high Interval
	low  Interval
}

//Rules maps road classification and speed band to the allowed sign distance.
//Build one with DefaultRules (the CONTRAN table) or NewRules for tests.
type Rules struct {
	intervals map[model.RoadClass]band
}

//DefaultRules returns the regulation distance table
func DefaultRules() Rules {

	return Rules{intervals: map[model.RoadClass]band{
		model.ViaUrbana: {
			high: Interval{Min: 400, Max: 500},
			low:  Interval{Min: 100, Max: 300},
		},
		model.ViaRuralUrbana: {
			high: Interval{Min: 400, Max: 500},
			low:  Interval{Min: 100, Max: 300},
		},
		model.ViaRural: {
			high: Interval{Min: 1000, Max: 2000},
			low:  Interval{Min: 300, Max: 1000},
		},
	}}
}

//NewRules builds a rule table from high/low intervals per classification
func NewRules(intervals map[model.RoadClass][2]Interval) Rules {

	table := make(map[model.RoadClass]band, len(intervals))
	for class, pair := range intervals {
		table[class] = band{high: pair[0], low: pair[1]}
	}
	return Rules{intervals: table}
}

//LookupInterval returns the allowed distance interval for a classification and speed.
//An unknown classification uses the rural row, that is the documented fallback and
//not an error.
func (r Rules) LookupInterval(class model.RoadClass, speedKmh int) Interval {

	row, ok := r.intervals[class]
	if !ok {
		row = r.intervals[model.ViaRural]
	}
	if speedKmh >= highSpeedKmh {
		return row.high
	}
	return row.low
}

func (v Verdict) String() string {

	switch v {
	case VerdictCompliant:
		return "conforme"
	case VerdictNonCompliant:
		return "nao-conforme"
	default:
		return "desconhecido"
	}
}

//EvaluateDistance classifies a measured distance against an interval.
//A nil distance means the inspector did not measure, which is neither
//compliant nor non compliant.
func EvaluateDistance(distance *int, interval Interval) Verdict {

	if distance == nil {
		return VerdictUnknown
	}
	if *distance >= interval.Min && *distance <= interval.Max {
		return VerdictCompliant
	}
	return VerdictNonCompliant
}
