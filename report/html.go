package report

import (
	"bytes"
	"fmt"
	"html/template"
	"strconv"

	"github.com/pkg/errors"

	"github.com/radar-check/br040/api/compliance"
	"github.com/radar-check/br040/api/model"
)

var photoReportTemplate = template.Must(template.New("photos").Parse(`<!DOCTYPE html>
<html lang="pt-BR">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>Fotos dos Radares BR-040</title>
    <style>
        body { font-family: Arial, sans-serif; background: #1a1a2e; color: #fff; padding: 20px; }
        h1 { color: #6366f1; text-align: center; }
        h2 { color: #a5b4fc; border-bottom: 2px solid #6366f1; padding-bottom: 10px; margin-top: 40px; }
        .radar-section { background: #16213e; border-radius: 10px; padding: 20px; margin: 20px 0; }
        .radar-info { display: grid; grid-template-columns: repeat(auto-fit, minmax(150px, 1fr)); gap: 10px; margin-bottom: 20px; }
        .radar-info span { background: #0f3460; padding: 8px 12px; border-radius: 5px; }
        .photos-grid { display: grid; grid-template-columns: repeat(auto-fit, minmax(250px, 1fr)); gap: 15px; }
        .photo-container { text-align: center; }
        .photo-container img { max-width: 100%; border-radius: 8px; border: 2px solid #6366f1; }
        .photo-caption { margin-top: 5px; font-size: 12px; color: #a5b4fc; }
        .status { padding: 4px 10px; border-radius: 20px; font-size: 12px; }
        .status.conforme { background: #10b981; }
        .status.nao-conforme { background: #ef4444; }
        .status.pendente { background: #f59e0b; }
        @media print { body { background: #fff; color: #000; } .radar-section { background: #f0f0f0; } }
    </style>
</head>
<body>
    <h1>Fotos dos Radares BR-040</h1>
    <p style="text-align:center;">Data: {{.Date}}{{if .Responsible}} | Responsável: {{.Responsible}}{{end}}</p>
{{range .Radares}}
    <div class="radar-section">
        <h2>Km {{.Km}}</h2>
        <div class="radar-info">
            <span>Tipo: {{.TipoRadar}}</span>
            <span>Velocidade: {{.Velocidade}} km/h</span>
            <span>Classificação: {{.Classificacao}}</span>
            <span>Sentido: {{.Sentido}}</span>
            <span class="status {{.Status}}">Status: {{.StatusLabel}}</span>
            {{if .Distancia}}<span>Distância: {{.Distancia}}m</span>{{end}}
        </div>
        <div class="photos-grid">
{{range .Photos}}
            <div class="photo-container">
                <img src="{{.Src}}" alt="{{.Caption}}">
                <div class="photo-caption">{{.Caption}}</div>
            </div>
{{end}}
        </div>
        {{if .Observacoes}}<p style="margin-top:15px;"><strong>Obs:</strong> {{.Observacoes}}</p>{{end}}
    </div>
{{end}}
</body>
</html>
`))

type photoReportData struct {
	Date        string
	Responsible string
	Radares     []photoReportRadar
}

type photoReportRadar struct {
	Km            string
	TipoRadar     string
	Velocidade    int
	Classificacao string
	Sentido       string
	Status        model.Status
	StatusLabel   string
	Distancia     string
	Observacoes   string
	Photos        []photoReportPhoto
}

type photoReportPhoto struct {
	Src     template.URL
	Caption string
}

//BuildPhotoReport renders a self-contained HTML page with the photos of every
//radar that has any, the companion to the spreadsheet export
func BuildPhotoReport(radares []*model.Radar, checklists []*model.Checklist, meta Meta) ([]byte, error) {

	sorted := sortByKm(radares)
	last := lastChecklistByRadar(checklists)

	data := photoReportData{
		Date:        meta.Date.Format("02/01/2006"),
		Responsible: meta.Responsible,
	}

	for _, radar := range sorted {
		checklist := last[radar.Id]
		if !hasPhotos(radar, checklist) {
			continue
		}

		entry := photoReportRadar{
			Km:            radar.Km,
			TipoRadar:     radar.TipoRadar,
			Velocidade:    radar.Velocidade,
			Classificacao: classCode(radar.TipoVia),
			Sentido:       radar.Sentido,
			Status:        radar.Status,
			StatusLabel:   compliance.StatusLabel(radar.Status),
			Observacoes:   radar.Descricao,
		}
		if entry.Sentido == "" {
			entry.Sentido = "-"
		}
		if checklist != nil {
			if checklist.DistanciaPlaca != nil {
				entry.Distancia = strconv.Itoa(*checklist.DistanciaPlaca)
			}
			if entry.Observacoes == "" {
				entry.Observacoes = checklist.Observacoes
			}
		}

		for i, photo := range radar.Photos {
			entry.Photos = append(entry.Photos, photoReportPhoto{
				//photo payloads are data-urls produced by the capture device
				Src:     template.URL(photo.Data),
				Caption: fmt.Sprintf("Foto Radar %d", i+1),
			})
		}
		if checklist != nil {
			for i, photo := range checklist.Photos {
				entry.Photos = append(entry.Photos, photoReportPhoto{
					Src:     template.URL(photo.Data),
					Caption: fmt.Sprintf("Foto Checklist %d - %s", i+1, formatDate(checklist.Date)),
				})
			}
		}

		data.Radares = append(data.Radares, entry)
	}

	var buf bytes.Buffer
	if err := photoReportTemplate.Execute(&buf, data); err != nil {
		return nil, errors.Wrap(err, "unable to render photo report")
	}
	return buf.Bytes(), nil
}
