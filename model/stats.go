package model

//Stats holds the dashboard counters plus the most recent inspections
type Stats struct {
	Total            int                `json:"total"`
	Conformes        int                `json:"conformes"`
	NaoConformes     int                `json:"naoConformes"`
	Pendentes        int                `json:"pendentes"`
	RecentChecklists []*RecentChecklist `json:"recentChecklists"`
}

//RecentChecklist is a checklist with the owning radar's km attached for display
type RecentChecklist struct {
	Checklist
	RadarKm string `json:"radarKm"`
}

//ComputeStats counts radares per status. A radar with no status counts as pending.
func ComputeStats(radares []*Radar) Stats {

	stats := Stats{Total: len(radares), RecentChecklists: []*RecentChecklist{}}
	for _, radar := range radares {
		switch radar.Status {
		case StatusConforme:
			stats.Conformes++
		case StatusNaoConforme:
			stats.NaoConformes++
		default:
			stats.Pendentes++
		}
	}
	return stats
}
