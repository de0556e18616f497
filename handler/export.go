package handler

import (
	"time"

	"github.com/kataras/iris/v12"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/radar-check/br040/api/compliance"
	"github.com/radar-check/br040/api/database"
	"github.com/radar-check/br040/api/model"
	"github.com/radar-check/br040/api/report"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type ExportHandler struct {
	RadarController     *database.RadarController
	ChecklistController *database.ChecklistController
	StatsController     *database.StatsController
}

func (eh *ExportHandler) reportMeta() report.Meta {

	return report.Meta{
		Date:        time.Now(),
		Responsible: viper.GetString("REPORT_RESPONSIBLE"),
	}
}

func (eh *ExportHandler) load(ctx iris.Context) ([]*model.Radar, []*model.Checklist, bool) {

	radares, err := eh.RadarController.FindRadares()
	if err != nil {
		ctx.Problem(iris.NewProblem().Type("/export").Detail("database issue").Status(500))
		return nil, nil, false
	}
	checklists, err := eh.ChecklistController.FindChecklists()
	if err != nil {
		ctx.Problem(iris.NewProblem().Type("/export").Detail("database issue").Status(500))
		return nil, nil, false
	}
	return radares, checklists, true
}

//Excel streams the full report workbook
func (eh *ExportHandler) Excel(ctx iris.Context) {

	radares, checklists, ok := eh.load(ctx)
	if !ok {
		return
	}

	f, err := report.BuildWorkbook(radares, checklists, eh.reportMeta())
	if err != nil {
		zap.S().Errorf("error building workbook: %s", err.Error())
		ctx.Problem(iris.NewProblem().Type("/export").Detail("report issue").Status(500))
		return
	}

	filename := "Radares_BR040_" + time.Now().Format("2006-01-02") + ".xlsx"
	ctx.Header("Content-Disposition", "attachment; filename="+filename)
	ctx.ContentType(xlsxContentType)
	if err := f.Write(ctx.ResponseWriter()); err != nil {
		zap.S().Errorf("error writing workbook: %s", err.Error())
	}
}

//Pdf streams the inspection report with summary table and photo pages
func (eh *ExportHandler) Pdf(ctx iris.Context) {

	radares, checklists, ok := eh.load(ctx)
	if !ok {
		return
	}

	stats := model.ComputeStats(radares)
	doc, err := report.BuildPDF(radares, checklists, &stats, eh.reportMeta())
	if err != nil {
		zap.S().Errorf("error building pdf: %s", err.Error())
		ctx.Problem(iris.NewProblem().Type("/export").Detail("report issue").Status(500))
		return
	}

	filename := "Radares_BR040_" + time.Now().Format("2006-01-02") + ".pdf"
	ctx.Header("Content-Disposition", "attachment; filename="+filename)
	ctx.ContentType("application/pdf")
	if err := doc.Output(ctx.ResponseWriter()); err != nil {
		zap.S().Errorf("error writing pdf: %s", err.Error())
	}
}

//Photos serves the self-contained HTML photo report
func (eh *ExportHandler) Photos(ctx iris.Context) {

	radares, checklists, ok := eh.load(ctx)
	if !ok {
		return
	}

	page, err := report.BuildPhotoReport(radares, checklists, eh.reportMeta())
	if err != nil {
		zap.S().Errorf("error building photo report: %s", err.Error())
		ctx.Problem(iris.NewProblem().Type("/export").Detail("report issue").Status(500))
		return
	}

	ctx.ContentType("text/html")
	ctx.Write(page)
}

//Preview returns the rows of the export table as JSON for the export screen
func (eh *ExportHandler) Preview(ctx iris.Context) {

	radares, _, ok := eh.load(ctx)
	if !ok {
		return
	}

	rows := make([]iris.Map, 0, len(radares))
	for _, radar := range radares {
		rows = append(rows, iris.Map{
			"km":          radar.Km,
			"velocidade":  radar.Velocidade,
			"tipoVia":     compliance.ClassLabel(radar.TipoVia),
			"municipio":   radar.Municipio,
			"status":      radar.Status,
			"statusLabel": compliance.StatusLabel(radar.Status),
		})
	}
	ctx.JSON(rows)
}
