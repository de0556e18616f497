package handler

import (
	"github.com/kataras/iris/v12"

	"github.com/radar-check/br040/api/database"
	"github.com/radar-check/br040/api/model"
)

type ChecklistHandler struct {
	ChecklistController *database.ChecklistController
}

func (ch *ChecklistHandler) GetChecklists(ctx iris.Context) {

	checklists, err := ch.ChecklistController.FindChecklists()
	if err != nil {
		ctx.Problem(iris.NewProblem().Type("/checklists").Detail("database issue").Status(500))
		return
	}
	if checklists == nil {
		checklists = []*model.Checklist{}
	}
	ctx.JSON(checklists)
}

//GetChecklistsByRadar lists the inspection history of a single radar
func (ch *ChecklistHandler) GetChecklistsByRadar(ctx iris.Context) {

	checklists, err := ch.ChecklistController.FindChecklistsByRadar(ctx.Params().Get("radar_id"))
	if err != nil {
		ctx.Problem(iris.NewProblem().Type("/checklists").Detail("database issue").Status(500))
		return
	}
	if checklists == nil {
		checklists = []*model.Checklist{}
	}
	ctx.JSON(checklists)
}

func (ch *ChecklistHandler) GetChecklistById(ctx iris.Context) {

	checklist, err := ch.ChecklistController.FindChecklistById(ctx.Params().Get("checklist_id"))
	if err != nil {
		ctx.Problem(iris.NewProblem().Type("/checklists").Detail("database issue").Status(500))
		return
	}
	if checklist == nil {
		ctx.Problem(iris.NewProblem().Type("/checklists").Detail("checklist not found").Status(404))
		return
	}
	ctx.JSON(checklist)
}

//SaveChecklist creates or updates a checklist. The owning radar picks up the
//checklist's status; when the radar is gone the save still goes through and the
//response carries a warning instead.
func (ch *ChecklistHandler) SaveChecklist(ctx iris.Context) {

	var checklist model.Checklist
	if err := ctx.ReadJSON(&checklist); err != nil {
		ctx.Problem(iris.NewProblem().Type("/checklists").Detail("malformed checklist").Status(400))
		return
	}
	if checklist.RadarId == "" {
		ctx.Problem(iris.NewProblem().Type("/checklists").Detail("radarId is required").Status(400))
		return
	}
	if checklist.DistanciaPlaca != nil && *checklist.DistanciaPlaca < 0 {
		ctx.Problem(iris.NewProblem().Type("/checklists").Detail("distanciaPlaca cannot be negative").Status(400))
		return
	}
	if !checklist.Status.Valid() {
		ctx.Problem(iris.NewProblem().Type("/checklists").Detail("status must be conforme, nao-conforme or pendente").Status(400))
		return
	}

	created := checklist.Id == ""

	propagated, err := ch.ChecklistController.SaveChecklist(&checklist)
	if err != nil {
		ctx.Problem(iris.NewProblem().Type("/checklists").Detail("database issue").Status(500))
		return
	}

	if created {
		ctx.StatusCode(iris.StatusCreated)
	}
	response := iris.Map{"checklist": checklist}
	if checklist.Status != "" && !propagated {
		response["warning"] = "radar status was not updated"
	}
	ctx.JSON(response)
}

func (ch *ChecklistHandler) DeleteChecklistById(ctx iris.Context) {

	if err := ch.ChecklistController.DeleteChecklistById(ctx.Params().Get("checklist_id")); err != nil {
		ctx.Problem(iris.NewProblem().Type("/checklists").Detail("checklist not found").Status(404))
		return
	}
	ctx.JSON(iris.Map{"deleted": true})
}
