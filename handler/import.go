package handler

import (
	"github.com/kataras/iris/v12"
	"go.uber.org/zap"

	"github.com/radar-check/br040/api/database"
	"github.com/radar-check/br040/api/report"
)

type ImportHandler struct {
	RadarController *database.RadarController
}

//ImportExcel ingests an uploaded spreadsheet of radares. Existing records are
//kept, the upload only adds.
func (ih *ImportHandler) ImportExcel(ctx iris.Context) {

	file, _, err := ctx.FormFile("file")
	if err != nil {
		ctx.Problem(iris.NewProblem().Type("/import").Detail("missing file upload").Status(400))
		return
	}
	defer file.Close()

	radares, err := report.ParseRadares(file)
	if err != nil {
		zap.S().Warnf("error parsing spreadsheet: %s", err.Error())
		ctx.Problem(iris.NewProblem().Type("/import").Detail(err.Error()).Status(400))
		return
	}

	imported, err := ih.RadarController.ImportRadares(radares)
	if err != nil {
		ctx.Problem(iris.NewProblem().Type("/import").Detail("database issue").Status(500))
		return
	}

	zap.S().Infof("imported %d radares from spreadsheet", imported)
	ctx.JSON(iris.Map{"imported": imported})
}
