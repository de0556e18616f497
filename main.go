package main

import (
	"github.com/kataras/iris/v12"
	"github.com/kataras/iris/v12/middleware/basicauth"
	"github.com/spf13/viper"

	"github.com/radar-check/br040/api/compliance"
	"github.com/radar-check/br040/api/config"
	"github.com/radar-check/br040/api/database"
	"github.com/radar-check/br040/api/handler"
)

func main() {

	config.Preflight()
	defer config.Db.Close()
	app := radarApi()
	app.Listen(":" + viper.GetString("PORT"))
}

func radarApi() *iris.Application {

	app := iris.New()

	//TODO add CORS

	//auth
	auth := basicauth.Default(map[string]string{
		viper.GetString("ADMIN_USER"): viper.GetString("ADMIN_PASSWORD"),
	})

	//healthcheck endpoint
	app.Get("/healthz", handler.Ok)
	app.Get("/health", handler.Ok)

	rc := database.NewRadarController(config.Db)
	cc := database.NewChecklistController(config.Db)
	sc := database.NewStatsController(config.Db)

	rh := handler.RadarHandler{RadarController: rc, Rules: compliance.DefaultRules()}
	ch := handler.ChecklistHandler{ChecklistController: cc}
	sh := handler.StatsHandler{StatsController: sc}
	eh := handler.ExportHandler{RadarController: rc, ChecklistController: cc, StatsController: sc}
	ih := handler.ImportHandler{RadarController: rc}

	radarEndpoint := app.Party("/radares")
	{
		radarEndpoint.Get("/", rh.GetRadares)
		radarEndpoint.Get("/{radar_id}", rh.GetRadarById)
		radarEndpoint.Get("/{radar_id}/interval", rh.GetRadarInterval)
		radarEndpoint.Get("/{radar_id}/checklists", ch.GetChecklistsByRadar)
		radarEndpoint.Post("/", rh.CreateRadar)
		radarEndpoint.Put("/{radar_id}", rh.UpdateRadar)
		radarEndpoint.Delete("/{radar_id}", rh.DeleteRadarById)
		radarEndpoint.Delete("/", auth, rh.DeleteAllRadares)
	}

	checklistEndpoint := app.Party("/checklists")
	{
		checklistEndpoint.Get("/", ch.GetChecklists)
		checklistEndpoint.Get("/{checklist_id}", ch.GetChecklistById)
		checklistEndpoint.Post("/", ch.SaveChecklist)
		checklistEndpoint.Delete("/{checklist_id}", ch.DeleteChecklistById)
	}

	app.Get("/stats", sh.GetStats)
	app.Post("/import/excel", ih.ImportExcel)

	exportEndpoint := app.Party("/export")
	{
		exportEndpoint.Get("/preview", eh.Preview)
		exportEndpoint.Get("/excel", eh.Excel)
		exportEndpoint.Get("/pdf", eh.Pdf)
		exportEndpoint.Get("/photos", eh.Photos)
	}

	return app
}
