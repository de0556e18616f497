package report

import (
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/xuri/excelize/v2"

	"github.com/radar-check/br040/api/compliance"
	"github.com/radar-check/br040/api/model"
)

//ParseRadares reads an uploaded spreadsheet into radar records. Headers are
//matched loosely since field teams rename columns, rows without a kilometer
//post are skipped.
func ParseRadares(r io.Reader) ([]*model.Radar, error) {

	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, errors.Wrap(err, "unable to open spreadsheet")
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, errors.New("spreadsheet has no sheets")
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, errors.Wrap(err, "unable to read sheet")
	}
	if len(rows) < 2 {
		return nil, errors.New("spreadsheet has no data rows")
	}

	headers := make([]string, len(rows[0]))
	for i, h := range rows[0] {
		headers[i] = strings.ToLower(strings.TrimSpace(h))
	}

	kmIndex := findColumn(headers, "km", "quilometro", "quilômetro")
	velIndex := findColumn(headers, "velocidade", "vel", "km/h")
	tipoIndex := findColumn(headers, "tipo", "via", "tipo de via")
	municipioIndex := findColumn(headers, "municipio", "município", "cidade")
	sentidoIndex := findColumn(headers, "sentido", "direção", "direcao")

	var radares []*model.Radar
	for _, row := range rows[1:] {
		if len(row) == 0 {
			continue
		}

		km := strings.ReplaceAll(cell(row, kmIndex), ",", ".")
		if km == "" {
			continue
		}

		velocidade := 80
		if v, err := strconv.Atoi(strings.TrimSpace(cell(row, velIndex))); err == nil && v > 0 {
			velocidade = v
		}

		radar := model.Radar{
			Km:         km,
			Velocidade: velocidade,
			TipoVia:    compliance.ParseRoadClass(cell(row, tipoIndex)),
			Municipio:  cell(row, municipioIndex),
			Sentido:    cell(row, sentidoIndex),
			Rodovia:    "BR-040",
			Status:     model.StatusPendente,
			Photos:     []model.Photo{},
		}
		radares = append(radares, &radar)
	}

	if len(radares) == 0 {
		return nil, errors.New("no valid radares found in spreadsheet")
	}
	return radares, nil
}

//findColumn locates the first header containing any of the candidate names
func findColumn(headers []string, names ...string) int {

	for _, name := range names {
		for i, header := range headers {
			if strings.Contains(header, name) {
				return i
			}
		}
	}
	return -1
}

func cell(row []string, index int) string {

	if index < 0 || index >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[index])
}
