package handler

import (
	"github.com/kataras/iris/v12"
	"github.com/spf13/viper"

	"github.com/radar-check/br040/api/database"
)

type StatsHandler struct {
	StatsController *database.StatsController
}

//GetStats serves the dashboard counters and recent activity
func (sh *StatsHandler) GetStats(ctx iris.Context) {

	limit := viper.GetInt("RECENT_ACTIVITY_LIMIT")
	if limit <= 0 {
		limit = 5
	}

	stats, err := sh.StatsController.GetStats(limit)
	if err != nil {
		ctx.Problem(iris.NewProblem().Type("/stats").Detail("database issue").Status(500))
		return
	}
	ctx.JSON(stats)
}
