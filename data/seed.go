//Package data carries the pre-loaded BR-040 radar list the field team starts from.
package data

import (
	"github.com/radar-check/br040/api/model"
)

type seedRadar struct {
	km        string
	tipo      string
	vel       int
	classe    model.RoadClass
	sentido   string
	descricao string
}

//fiscalização eletrônica (PER) plus the educational radars
var seedRadares = []seedRadar{
	{km: "50+300", tipo: "PER", vel: 60, classe: model.ViaRural},
	{km: "50+500", tipo: "PER", vel: 60, classe: model.ViaRural},
	{km: "118+700", tipo: "PER", vel: 60, classe: model.ViaRuralUrbana},
	{km: "118+800", tipo: "PER", vel: 60, classe: model.ViaRuralUrbana},
	{km: "129+200", tipo: "PER", vel: 80, classe: model.ViaRuralUrbana},
	{km: "129+300", tipo: "PER", vel: 80, classe: model.ViaRuralUrbana},
	{km: "141+500", tipo: "PER", vel: 60, classe: model.ViaRuralUrbana},
	{km: "145+100", tipo: "PER", vel: 60, classe: model.ViaRuralUrbana},
	{km: "145+400", tipo: "PER", vel: 60, classe: model.ViaRuralUrbana},
	{km: "245+250", tipo: "PER", vel: 60, classe: model.ViaRural},
	{km: "246+300", tipo: "PER", vel: 60, classe: model.ViaRural},
	{km: "276+250", tipo: "PER", vel: 60, classe: model.ViaRuralUrbana},
	{km: "277+850", tipo: "PER", vel: 60, classe: model.ViaRural},
	{km: "281+000", tipo: "PER", vel: 60, classe: model.ViaRural, sentido: "Sul"},
	{km: "281+000", tipo: "PER", vel: 60, classe: model.ViaRural, sentido: "Norte"},
	{km: "299+900", tipo: "PER", vel: 80, classe: model.ViaRural},
	{km: "413+400", tipo: "PER", vel: 60, classe: model.ViaRural},
	{km: "413+800", tipo: "PER", vel: 60, classe: model.ViaRural},
	{km: "459+500", tipo: "PER", vel: 110, classe: model.ViaRural},
	{km: "462+300", tipo: "PER", vel: 70, classe: model.ViaRural},
	{km: "462+950", tipo: "PER", vel: 70, classe: model.ViaRural},
	{km: "443+700", tipo: "PER", vel: 70, classe: model.ViaRuralUrbana, descricao: "REDUTOR"},
	{km: "282+500", tipo: "PER", vel: 60, classe: model.ViaRuralUrbana, descricao: "REDUTOR"},

	{km: "34+500", tipo: "Educativo", vel: 60, classe: model.ViaRural},
	{km: "38+500", tipo: "Educativo", vel: 60, classe: model.ViaRural},
	{km: "39+300", tipo: "Educativo", vel: 60, classe: model.ViaRural},
	{km: "39+800", tipo: "Educativo", vel: 60, classe: model.ViaRural},
	{km: "40+300", tipo: "Educativo", vel: 60, classe: model.ViaRural},
	{km: "41+100", tipo: "Educativo", vel: 60, classe: model.ViaRural},
	{km: "43+100", tipo: "Educativo", vel: 60, classe: model.ViaRural},
	{km: "44+150", tipo: "Educativo", vel: 60, classe: model.ViaRural},
	{km: "46+610", tipo: "Educativo", vel: 60, classe: model.ViaRural},
	{km: "141+0", tipo: "Educativo", vel: 60, classe: model.ViaRural, sentido: "Sul"},
	{km: "144+0", tipo: "Educativo", vel: 60, classe: model.ViaRural, sentido: "Norte"},
	{km: "413+200", tipo: "Educativo", vel: 60, classe: model.ViaRural, sentido: "Norte"},
	{km: "413+200", tipo: "Educativo", vel: 60, classe: model.ViaRural, sentido: "Sul"},
	{km: "413+200", tipo: "Educativo", vel: 60, classe: model.ViaRural, descricao: "Trevo"},
	{km: "423+700", tipo: "Educativo", vel: 60, classe: model.ViaRural, sentido: "Norte"},
	{km: "423+700", tipo: "Educativo", vel: 60, classe: model.ViaRural, sentido: "Sul"},
	{km: "453+200", tipo: "Educativo", vel: 60, classe: model.ViaRural, sentido: "Norte"},
	{km: "453+200", tipo: "Educativo", vel: 60, classe: model.ViaRural, sentido: "Sul"},
	{km: "470+0", tipo: "Educativo", vel: 60, classe: model.ViaRural, sentido: "Norte"},
	{km: "470+0", tipo: "Educativo", vel: 60, classe: model.ViaRural, sentido: "Sul"},
	{km: "498+200", tipo: "Educativo", vel: 60, classe: model.ViaRural, sentido: "Norte"},
	{km: "498+200", tipo: "Educativo", vel: 60, classe: model.ViaRural, sentido: "Sul"},
	{km: "499+300", tipo: "Educativo", vel: 60, classe: model.ViaRural, sentido: "Norte"},
	{km: "499+300", tipo: "Educativo", vel: 60, classe: model.ViaRural, sentido: "Sul"},
	{km: "503+200", tipo: "Educativo", vel: 60, classe: model.ViaRural, sentido: "Norte"},
	{km: "503+200", tipo: "Educativo", vel: 60, classe: model.ViaRural, sentido: "Sul"},
	{km: "506+600", tipo: "Educativo", vel: 60, classe: model.ViaRural, sentido: "Norte"},
	{km: "506+600", tipo: "Educativo", vel: 60, classe: model.ViaRural, sentido: "Sul"},
	{km: "508+050", tipo: "Educativo", vel: 60, classe: model.ViaRural, sentido: "Norte"},
	{km: "508+120", tipo: "Educativo", vel: 60, classe: model.ViaRural, sentido: "Sul"},
	{km: "510+500", tipo: "Educativo", vel: 60, classe: model.ViaRural, sentido: "Sul"},
	{km: "511+600", tipo: "Educativo", vel: 60, classe: model.ViaRural, sentido: "Norte"},
	{km: "513+600", tipo: "Educativo", vel: 60, classe: model.ViaRural, sentido: "Norte"},
	{km: "513+600", tipo: "Educativo", vel: 60, classe: model.ViaRural, sentido: "Sul"},
	{km: "515+600", tipo: "Educativo", vel: 60, classe: model.ViaRural, sentido: "Norte"},
	{km: "515+600", tipo: "Educativo", vel: 60, classe: model.ViaRural, sentido: "Sul"},
	{km: "517+010", tipo: "Educativo", vel: 60, classe: model.ViaRural, sentido: "Sul"},
	{km: "517+030", tipo: "Educativo", vel: 60, classe: model.ViaRural, sentido: "Norte"},
	{km: "523+20", tipo: "Educativo", vel: 60, classe: model.ViaRural, sentido: "Norte"},
	{km: "523+200", tipo: "Educativo", vel: 60, classe: model.ViaRural, sentido: "Sul"},
	{km: "524+071", tipo: "Educativo", vel: 60, classe: model.ViaRural, sentido: "Sul"},
	{km: "524+653", tipo: "Educativo", vel: 60, classe: model.ViaRural, sentido: "Norte"},
	{km: "529+667", tipo: "Educativo", vel: 60, classe: model.ViaRural, sentido: "Norte"},
	{km: "532+600", tipo: "Educativo", vel: 60, classe: model.ViaRural, sentido: "Norte"},
	{km: "532+600", tipo: "Educativo", vel: 60, classe: model.ViaRural, sentido: "Sul"},
}

//InitialRadares returns the pre-loaded radar list as fresh records ready for import
func InitialRadares() []*model.Radar {

	radares := make([]*model.Radar, 0, len(seedRadares))
	for _, seed := range seedRadares {
		radares = append(radares, &model.Radar{
			Km:         seed.km,
			Rodovia:    "BR-040",
			Sentido:    seed.sentido,
			Velocidade: seed.vel,
			TipoVia:    seed.classe,
			TipoRadar:  seed.tipo,
			Descricao:  seed.descricao,
			Status:     model.StatusPendente,
			Photos:     []model.Photo{},
		})
	}
	return radares
}
