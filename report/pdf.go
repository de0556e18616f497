package report

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/jung-kurt/gofpdf"

	"github.com/radar-check/br040/api/compliance"
	"github.com/radar-check/br040/api/model"
)

var pdfColWidths = []float64{28, 22, 15, 20, 18, 18, 25, 18}
var pdfColHeaders = []string{"Local", "Tipo", "Vel.", "Classif.", "Sentido", "Dist.", "Status", "Fotos"}

//BuildPDF renders the inspection report: title page, radar summary table and one
//page of photos per radar that has any
func BuildPDF(radares []*model.Radar, checklists []*model.Checklist, stats *model.Stats, meta Meta) (*gofpdf.Fpdf, error) {

	pdf := gofpdf.New("L", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	sorted := sortByKm(radares)
	last := lastChecklistByRadar(checklists)

	//title page
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 24)
	pdf.SetTextColor(99, 102, 241)
	pdf.CellFormat(0, 60, tr("Relatório de Fiscalização de Radares"), "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 18)
	pdf.SetTextColor(100, 100, 100)
	pdf.CellFormat(0, 10, "BR-040", "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 12)
	pdf.CellFormat(0, 10, tr("Data: "+meta.Date.Format("02/01/2006")), "", 1, "C", false, 0, "")
	if meta.Responsible != "" {
		pdf.CellFormat(0, 10, tr("Responsável: "+meta.Responsible), "", 1, "C", false, 0, "")
	}
	pdf.SetFont("Helvetica", "", 14)
	pdf.SetTextColor(60, 60, 60)
	totals := fmt.Sprintf("Total: %d | Conformes: %d | Não Conformes: %d | Pendentes: %d",
		stats.Total, stats.Conformes, stats.NaoConformes, stats.Pendentes)
	pdf.CellFormat(0, 20, tr(totals), "", 1, "C", false, 0, "")

	//summary table
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.SetTextColor(99, 102, 241)
	pdf.CellFormat(0, 10, tr("Resumo dos Radares"), "", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetFillColor(99, 102, 241)
	pdf.SetTextColor(255, 255, 255)
	for i, header := range pdfColHeaders {
		pdf.CellFormat(pdfColWidths[i], 7, tr(header), "1", 0, "L", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 8)
	pdf.SetTextColor(0, 0, 0)
	fill := false
	pdf.SetFillColor(245, 245, 250)
	for _, radar := range sorted {
		checklist := last[radar.Id]

		distancia := "-"
		if checklist != nil && checklist.DistanciaPlaca != nil {
			distancia = strconv.Itoa(*checklist.DistanciaPlaca) + "m"
		}
		sentido := radar.Sentido
		if sentido == "" {
			sentido = "-"
		}
		fotos := "-"
		if hasPhotos(radar, checklist) {
			fotos = "SIM"
		}

		cells := []string{
			"Km " + radar.Km,
			radar.TipoRadar,
			strconv.Itoa(radar.Velocidade),
			classCode(radar.TipoVia),
			sentido,
			distancia,
			compliance.StatusLabel(radar.Status),
			fotos,
		}
		for i, cell := range cells {
			pdf.CellFormat(pdfColWidths[i], 6, tr(cell), "1", 0, "L", fill, 0, "")
		}
		pdf.Ln(-1)
		fill = !fill
	}

	//photo pages
	for _, radar := range sorted {
		checklist := last[radar.Id]
		addPhotoPage(pdf, tr, radar, checklist)
	}

	return pdf, nil
}

func hasPhotos(radar *model.Radar, checklist *model.Checklist) bool {

	if len(radar.Photos) > 0 {
		return true
	}
	return checklist != nil && len(checklist.Photos) > 0
}

func addPhotoPage(pdf *gofpdf.Fpdf, tr func(string) string, radar *model.Radar, checklist *model.Checklist) {

	photos := append([]model.Photo{}, radar.Photos...)
	radarPhotoCount := len(photos)
	if checklist != nil {
		photos = append(photos, checklist.Photos...)
	}
	if len(photos) == 0 {
		return
	}

	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.SetTextColor(99, 102, 241)
	pdf.CellFormat(0, 10, tr("Km "+radar.Km+" - "+radar.Rodovia), "", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	pdf.SetTextColor(60, 60, 60)
	info := fmt.Sprintf("Tipo: %s | Velocidade: %d km/h | Classificação: %s",
		radar.TipoRadar, radar.Velocidade, classCode(radar.TipoVia))
	pdf.CellFormat(0, 6, tr(info), "", 1, "L", false, 0, "")
	sentido := radar.Sentido
	if sentido == "" {
		sentido = "-"
	}
	pdf.CellFormat(0, 6, tr("Sentido: "+sentido+" | Status: "+compliance.StatusLabel(radar.Status)), "", 1, "L", false, 0, "")
	if checklist != nil {
		distancia := "-"
		if checklist.DistanciaPlaca != nil {
			distancia = strconv.Itoa(*checklist.DistanciaPlaca)
		}
		pdf.CellFormat(0, 6, tr("Distância Placa: "+distancia+"m | Verificado: "+formatDate(checklist.Date)), "", 1, "L", false, 0, "")
	}

	const photoWidth, photoHeight, spacing = 85.0, 65.0, 5.0
	x, y := 14.0, 45.0

	for i, photo := range photos {
		raw, imageType, err := decodePhoto(photo)
		if err != nil {
			//skip photos that fail to decode
			continue
		}

		name := fmt.Sprintf("%s-%d", radar.Id, i)
		opts := gofpdf.ImageOptions{ImageType: imageType}
		pdf.RegisterImageOptionsReader(name, opts, bytes.NewReader(raw))
		pdf.ImageOptions(name, x, y, photoWidth, photoHeight, false, opts, 0, "")

		caption := fmt.Sprintf("Foto Radar %d", i+1)
		if i >= radarPhotoCount {
			caption = fmt.Sprintf("Foto Checklist %d", i-radarPhotoCount+1)
		}
		pdf.SetFont("Helvetica", "", 8)
		pdf.SetTextColor(100, 100, 100)
		pdf.Text(x+photoWidth/2-10, y+photoHeight+4, tr(caption))

		x += photoWidth + spacing
		if (i+1)%3 == 0 {
			x = 14
			y += photoHeight + 15
		}
		if y > 150 && i < len(photos)-1 {
			pdf.AddPage()
			x, y = 14, 20
		}
	}

	observacoes := radar.Descricao
	if observacoes == "" && checklist != nil {
		observacoes = checklist.Observacoes
	}
	if observacoes != "" {
		pdf.SetFont("Helvetica", "", 10)
		pdf.SetTextColor(60, 60, 60)
		pdf.SetXY(14, y+photoHeight+10)
		pdf.MultiCell(0, 5, tr("Observações: "+observacoes), "", "L", false)
	}
}
