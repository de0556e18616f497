package model

import (
	"time"
)

//Status is the compliance status of a radar or checklist
type Status string

const (
	StatusConforme    Status = "conforme"
	StatusNaoConforme Status = "nao-conforme"
	StatusPendente    Status = "pendente"
)

//Valid reports whether the status is one of the closed set. The empty string
//counts as valid, it means no status was picked yet.
func (s Status) Valid() bool {

	switch s {
	case StatusConforme, StatusNaoConforme, StatusPendente, "":
		return true
	}
	return false
}

//RoadClass is the road classification that selects the sign distance interval
type RoadClass string

const (
	ViaUrbana      RoadClass = "urbana"
	ViaRuralUrbana RoadClass = "rural-urbana"
	ViaRural       RoadClass = "rural"
)

//Photo is a single attachment, data holds a data-url string as captured by the field app
type Photo struct {
	Name string `json:"name"`
	Data string `json:"data"`
}

type Radar struct {
	Id            string     `json:"id"`
	Km            string     `json:"km"`
	Rodovia       string     `json:"rodovia"`
	Sentido       string     `json:"sentido"`
	Velocidade    int        `json:"velocidade"`
	TipoVia       RoadClass  `json:"tipoVia"`
	TipoRadar     string     `json:"tipoRadar"`
	Municipio     string     `json:"municipio"`
	Descricao     string     `json:"descricao"`
	Status        Status     `json:"status"`
	LastChecklist *time.Time `json:"lastChecklistDate,omitempty"`
	Photos        []Photo    `json:"photos"`
	CreatedAt     time.Time  `json:"createdAt"`
	UpdatedAt     time.Time  `json:"updatedAt"`
}

type Checklist struct {
	Id              string    `json:"id"`
	RadarId         string    `json:"radarId"`
	PlacaPresente   bool      `json:"placaPresente"`
	DistanciaPlaca  *int      `json:"distanciaPlaca"`
	PlacaLegivel    bool      `json:"placaLegivel"`
	PinturaSolo     bool      `json:"pinturaSolo"`
	SemObstrucao    bool      `json:"semObstrucao"`
	PlacaVelocidade bool      `json:"placaVelocidade"`
	Observacoes     string    `json:"observacoes"`
	Status          Status    `json:"status"`
	Date            time.Time `json:"date"`
	Photos          []Photo   `json:"photos"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

//ApplyChecklist copies a saved checklist's status onto its radar.
//The write is unconditional - whichever checklist was saved last wins,
//even when an older checklist is re-saved after a newer one.
func (r *Radar) ApplyChecklist(c *Checklist) {

	if c.Status == "" {
		return
	}
	r.Status = c.Status
	date := c.Date
	r.LastChecklist = &date
}
