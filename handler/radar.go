package handler

import (
	"strconv"
	"strings"

	"github.com/kataras/iris/v12"

	"github.com/radar-check/br040/api/compliance"
	"github.com/radar-check/br040/api/database"
	"github.com/radar-check/br040/api/model"
)

type RadarHandler struct {
	RadarController *database.RadarController
	Rules           compliance.Rules
}

//GetRadares lists radares, optionally filtered by ?status= and a ?q= search term
func (rh *RadarHandler) GetRadares(ctx iris.Context) {

	status := ctx.URLParam("status")

	var radares []*model.Radar
	var err error
	if status != "" && status != "all" {
		radares, err = rh.RadarController.FindRadaresByStatus(model.Status(status))
	} else {
		radares, err = rh.RadarController.FindRadares()
	}
	if err != nil {
		ctx.Problem(iris.NewProblem().Type("/radares").Detail("database issue").Status(500))
		return
	}

	if q := ctx.URLParam("q"); q != "" {
		radares = filterRadares(radares, q)
	}

	if radares == nil {
		radares = []*model.Radar{}
	}
	ctx.JSON(radares)
}

func (rh *RadarHandler) GetRadarById(ctx iris.Context) {

	radar, err := rh.RadarController.FindRadarById(ctx.Params().Get("radar_id"))
	if err != nil {
		ctx.Problem(iris.NewProblem().Type("/radares").Detail("database issue").Status(500))
		return
	}
	if radar == nil {
		ctx.Problem(iris.NewProblem().Type("/radares").Detail("radar not found").Status(404))
		return
	}
	ctx.JSON(radar)
}

//GetRadarInterval returns the allowed sign distance interval for one radar,
//used by the inspection form to validate measurements in the field
func (rh *RadarHandler) GetRadarInterval(ctx iris.Context) {

	radar, err := rh.RadarController.FindRadarById(ctx.Params().Get("radar_id"))
	if err != nil {
		ctx.Problem(iris.NewProblem().Type("/radares").Detail("database issue").Status(500))
		return
	}
	if radar == nil {
		ctx.Problem(iris.NewProblem().Type("/radares").Detail("radar not found").Status(404))
		return
	}

	interval := rh.Rules.LookupInterval(radar.TipoVia, radar.Velocidade)
	response := iris.Map{
		"min":          interval.Min,
		"max":          interval.Max,
		"tipoVia":      radar.TipoVia,
		"tipoViaLabel": compliance.ClassLabel(radar.TipoVia),
		"velocidade":   radar.Velocidade,
	}

	if measured := ctx.URLParam("distancia"); measured != "" {
		value, err := strconv.Atoi(measured)
		if err != nil || value < 0 {
			ctx.Problem(iris.NewProblem().Type("/radares").Detail("distancia must be a distance in meters").Status(400))
			return
		}
		response["verdict"] = compliance.EvaluateDistance(&value, interval).String()
	}

	ctx.JSON(response)
}

func (rh *RadarHandler) CreateRadar(ctx iris.Context) {

	var radar model.Radar
	if err := ctx.ReadJSON(&radar); err != nil {
		ctx.Problem(iris.NewProblem().Type("/radares").Detail("malformed radar").Status(400))
		return
	}
	if problem := validateRadar(&radar); problem != "" {
		ctx.Problem(iris.NewProblem().Type("/radares").Detail(problem).Status(400))
		return
	}

	if err := rh.RadarController.AddRadar(&radar); err != nil {
		ctx.Problem(iris.NewProblem().Type("/radares").Detail("database issue").Status(500))
		return
	}
	ctx.StatusCode(iris.StatusCreated)
	ctx.JSON(radar)
}

func (rh *RadarHandler) UpdateRadar(ctx iris.Context) {

	var radar model.Radar
	if err := ctx.ReadJSON(&radar); err != nil {
		ctx.Problem(iris.NewProblem().Type("/radares").Detail("malformed radar").Status(400))
		return
	}
	radar.Id = ctx.Params().Get("radar_id")
	if problem := validateRadar(&radar); problem != "" {
		ctx.Problem(iris.NewProblem().Type("/radares").Detail(problem).Status(400))
		return
	}

	if err := rh.RadarController.UpdateRadar(&radar); err != nil {
		ctx.Problem(iris.NewProblem().Type("/radares").Detail("radar not found").Status(404))
		return
	}

	updated, err := rh.RadarController.FindRadarById(radar.Id)
	if err != nil || updated == nil {
		ctx.Problem(iris.NewProblem().Type("/radares").Detail("database issue").Status(500))
		return
	}
	ctx.JSON(updated)
}

func (rh *RadarHandler) DeleteRadarById(ctx iris.Context) {

	if err := rh.RadarController.DeleteRadarById(ctx.Params().Get("radar_id")); err != nil {
		ctx.Problem(iris.NewProblem().Type("/radares").Detail("radar not found").Status(404))
		return
	}
	ctx.JSON(iris.Map{"deleted": true})
}

func (rh *RadarHandler) DeleteAllRadares(ctx iris.Context) {

	if err := rh.RadarController.DeleteAllRadares(); err != nil {
		ctx.Problem(iris.NewProblem().Type("/radares").Detail("database issue").Status(500))
		return
	}
	ctx.JSON(iris.Map{"deleted": true})
}

func validateRadar(radar *model.Radar) string {

	if radar.Km == "" {
		return "km is required"
	}
	if radar.Velocidade <= 0 {
		return "velocidade must be a positive speed in km/h"
	}
	if !radar.Status.Valid() {
		return "status must be conforme, nao-conforme or pendente"
	}
	return ""
}

//filterRadares matches the search term against km, municipio and descricao
func filterRadares(radares []*model.Radar, term string) []*model.Radar {

	matched := []*model.Radar{}
	for _, radar := range radares {
		if containsFold(radar.Km, term) ||
			containsFold(radar.Municipio, term) ||
			containsFold(radar.Descricao, term) {
			matched = append(matched, radar)
		}
	}
	return matched
}

func containsFold(value, term string) bool {

	return strings.Contains(strings.ToLower(value), strings.ToLower(term))
}
