package report

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/radar-check/br040/api/compliance"
	"github.com/radar-check/br040/api/model"
)

const radaresSheet = "Radares"
const checklistsSheet = "Checklists"

var radarHeaders = []interface{}{
	"Local", "Tipo", "Velocidade", "Classificação", "Sentido",
	"Placa 01 - Se Rural", "Distância Placa (m)", "Placa Legível",
	"Pintura Solo", "Sem Obstrução", "Status", "Qtd Fotos",
	"Última Verificação", "Observações",
}

var radarColWidths = []float64{18, 12, 12, 14, 10, 18, 18, 14, 14, 14, 14, 10, 20, 25}

var checklistHeaders = []interface{}{
	"Local", "Data", "Status", "Placa R-19 Presente", "Distância (m)",
	"Placa Legível", "Pintura Solo", "Sem Obstrução", "Placa Velocidade",
	"Qtd Fotos", "Observações",
}

var checklistColWidths = []float64{18, 20, 14, 18, 14, 14, 14, 14, 16, 10, 30}

//BuildWorkbook renders the radares (and checklists, when any exist) into the
//spreadsheet layout of the original field report
func BuildWorkbook(radares []*model.Radar, checklists []*model.Checklist, meta Meta) (*excelize.File, error) {

	f := excelize.NewFile()
	index := f.NewSheet(radaresSheet)
	f.SetActiveSheet(index)
	f.DeleteSheet("Sheet1")

	//header block above the table
	f.SetCellValue(radaresSheet, "B1", "RADARES BR-040")
	f.SetCellValue(radaresSheet, "M1", "Data:")
	f.SetCellValue(radaresSheet, "N1", meta.Date.Format("02/01/2006"))
	if meta.Responsible != "" {
		f.SetCellValue(radaresSheet, "M2", "Responsável:")
		f.SetCellValue(radaresSheet, "N2", meta.Responsible)
	}

	if err := setColWidths(f, radaresSheet, radarColWidths); err != nil {
		return nil, err
	}

	f.SetSheetRow(radaresSheet, "A4", &radarHeaders)

	sorted := sortByKm(radares)
	last := lastChecklistByRadar(checklists)

	for i, radar := range sorted {
		checklist := last[radar.Id]

		photoCount := len(radar.Photos)
		var distancia interface{} = ""
		var placaPresente, placaLegivel, pinturaSolo, semObstrucao, verificacao string
		if checklist != nil {
			photoCount += len(checklist.Photos)
			if checklist.DistanciaPlaca != nil {
				distancia = *checklist.DistanciaPlaca
			}
			placaPresente = sim(checklist.PlacaPresente)
			placaLegivel = sim(checklist.PlacaLegivel)
			pinturaSolo = sim(checklist.PinturaSolo)
			semObstrucao = sim(checklist.SemObstrucao)
			verificacao = formatDate(checklist.Date)
		}

		var fotos interface{} = ""
		if photoCount > 0 {
			fotos = photoCount
		}

		observacoes := radar.Descricao
		if observacoes == "" && checklist != nil {
			observacoes = checklist.Observacoes
		}

		row := []interface{}{
			"KM " + radar.Km,
			radar.TipoRadar,
			radar.Velocidade,
			classCode(radar.TipoVia),
			radar.Sentido,
			placaPresente,
			distancia,
			placaLegivel,
			pinturaSolo,
			semObstrucao,
			compliance.StatusLabel(radar.Status),
			fotos,
			verificacao,
			observacoes,
		}
		f.SetSheetRow(radaresSheet, fmt.Sprintf("A%d", i+5), &row)
	}

	if len(checklists) > 0 {
		if err := addChecklistsSheet(f, radares, checklists); err != nil {
			return nil, err
		}
	}

	return f, nil
}

func addChecklistsSheet(f *excelize.File, radares []*model.Radar, checklists []*model.Checklist) error {

	f.NewSheet(checklistsSheet)
	if err := setColWidths(f, checklistsSheet, checklistColWidths); err != nil {
		return err
	}
	f.SetSheetRow(checklistsSheet, "A1", &checklistHeaders)

	kmById := make(map[string]string, len(radares))
	for _, radar := range radares {
		kmById[radar.Id] = radar.Km
	}

	for i, checklist := range checklists {
		var distancia interface{} = ""
		if checklist.DistanciaPlaca != nil {
			distancia = *checklist.DistanciaPlaca
		}
		row := []interface{}{
			"KM " + kmById[checklist.RadarId],
			formatDate(checklist.Date),
			compliance.StatusLabel(checklist.Status),
			simNao(checklist.PlacaPresente),
			distancia,
			simNao(checklist.PlacaLegivel),
			simNao(checklist.PinturaSolo),
			simNao(checklist.SemObstrucao),
			simNao(checklist.PlacaVelocidade),
			len(checklist.Photos),
			checklist.Observacoes,
		}
		f.SetSheetRow(checklistsSheet, fmt.Sprintf("A%d", i+2), &row)
	}
	return nil
}

func setColWidths(f *excelize.File, sheet string, widths []float64) error {

	for i, width := range widths {
		col, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return err
		}
		if err := f.SetColWidth(sheet, col, col, width); err != nil {
			return err
		}
	}
	return nil
}

func sim(b bool) string {
	if b {
		return "SIM"
	}
	return ""
}

func simNao(b bool) string {
	if b {
		return "Sim"
	}
	return "Não"
}
