package database

import (
	"context"
	"encoding/json"

	"github.com/jackc/pgx/v4/pgxpool"
	"go.uber.org/zap"

	"github.com/radar-check/br040/api/model"
)

type StatsController struct {
	db *pgxpool.Pool
}

func NewStatsController(db *pgxpool.Pool) *StatsController {

	return &StatsController{db: db}
}

//GetStats builds the dashboard counters plus the limit most recent checklists
func (sc *StatsController) GetStats(limit int) (*model.Stats, error) {

	radarController := NewRadarController(sc.db)
	radares, err := radarController.FindRadares()
	if err != nil {
		return nil, err
	}

	stats := model.ComputeStats(radares)

	recent, err := sc.RecentActivity(limit)
	if err != nil {
		zap.S().Warnf("error loading recent activity: %s", err.Error())
		recent = []*model.RecentChecklist{}
	}
	stats.RecentChecklists = recent

	return &stats, nil
}

//RecentActivity returns the most recent checklists across all radares with the
//owning radar's km attached
func (sc *StatsController) RecentActivity(limit int) ([]*model.RecentChecklist, error) {

	sql := `SELECT c.id, c.radar_id, c.placa_presente, c.distancia_placa, c.placa_legivel,
			c.pintura_solo, c.sem_obstrucao, c.placa_velocidade, c.observacoes, c.status,
			c.date, c.photos, c.created_at, c.updated_at, COALESCE(r.km, 'N/A')
			FROM checklists c LEFT JOIN radares r ON r.id = c.radar_id
			ORDER BY c.date DESC LIMIT $1`
	rows, err := sc.db.Query(context.Background(), sql, limit)
	if err != nil {
		zap.L().Error(err.Error())
		return nil, err
	}
	defer rows.Close()

	recent := []*model.RecentChecklist{}
	for rows.Next() {

		var rc model.RecentChecklist
		var distancia *int
		var photos []byte
		err := rows.Scan(&rc.Id, &rc.RadarId, &rc.PlacaPresente, &distancia, &rc.PlacaLegivel,
			&rc.PinturaSolo, &rc.SemObstrucao, &rc.PlacaVelocidade, &rc.Observacoes, &rc.Status,
			&rc.Date, &photos, &rc.CreatedAt, &rc.UpdatedAt, &rc.RadarKm)
		if err != nil {
			zap.S().Warnf("error scanning row: %s", err.Error())
			continue
		}
		rc.DistanciaPlaca = distancia
		if err := json.Unmarshal(photos, &rc.Photos); err != nil {
			rc.Photos = []model.Photo{}
		}
		recent = append(recent, &rc)
	}
	return recent, rows.Err()
}
