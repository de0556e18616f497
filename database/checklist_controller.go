package database

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgtype"
	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/radar-check/br040/api/model"
)

const checklistColumns = "id, radar_id, placa_presente, distancia_placa, placa_legivel, pintura_solo, sem_obstrucao, placa_velocidade, observacoes, status, date, photos, created_at, updated_at"

type ChecklistController struct {
	db *pgxpool.Pool
}

func NewChecklistController(db *pgxpool.Pool) *ChecklistController {

	return &ChecklistController{db: db}
}

//FindChecklists returns every checklist, newest inspection first
func (cc *ChecklistController) FindChecklists() ([]*model.Checklist, error) {

	sql := "SELECT " + checklistColumns + " FROM checklists ORDER BY date DESC"
	rows, err := cc.db.Query(context.Background(), sql)
	if err != nil {
		zap.L().Error(err.Error())
		return nil, err
	}
	defer rows.Close()

	return scanToChecklists(rows)
}

//FindChecklistsByRadar returns the checklists for one radar, newest first
func (cc *ChecklistController) FindChecklistsByRadar(radarId string) ([]*model.Checklist, error) {

	sql := "SELECT " + checklistColumns + " FROM checklists WHERE radar_id = $1 ORDER BY date DESC"
	rows, err := cc.db.Query(context.Background(), sql, radarId)
	if err != nil {
		zap.L().Error(err.Error())
		return nil, err
	}
	defer rows.Close()

	return scanToChecklists(rows)
}

//FindChecklistById returns a single checklist or nil when the id is unknown
func (cc *ChecklistController) FindChecklistById(id string) (*model.Checklist, error) {

	sql := "SELECT " + checklistColumns + " FROM checklists WHERE id = $1"
	row := cc.db.QueryRow(context.Background(), sql, id)

	checklist, err := scanToChecklist(row)
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	return checklist, err
}

//SaveChecklist inserts or updates a checklist and propagates its status onto the
//owning radar. The radar write is last-saved-wins: re-saving an older checklist
//overwrites whatever a newer one set. A missing radar downgrades propagation to
//a warning, the checklist save itself still succeeds - propagated reports whether
//the radar was updated.
func (cc *ChecklistController) SaveChecklist(checklist *model.Checklist) (propagated bool, err error) {

	if checklist.RadarId == "" {
		return false, errors.New("checklist is missing its radar reference")
	}

	now := time.Now()
	if checklist.Id == "" {
		checklist.Id = uuid.NewString()
	}
	if checklist.CreatedAt.IsZero() {
		checklist.CreatedAt = now
	}
	checklist.UpdatedAt = now
	if checklist.Date.IsZero() {
		checklist.Date = now
	}

	photos, err := marshalPhotos(checklist.Photos)
	if err != nil {
		return false, err
	}

	ctx := context.Background()
	sql := `INSERT INTO checklists(id, radar_id, placa_presente, distancia_placa, placa_legivel, pintura_solo, sem_obstrucao, placa_velocidade, observacoes, status, date, photos, created_at, updated_at)
			VALUES($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
			ON CONFLICT (id) DO UPDATE SET
				radar_id = $2, placa_presente = $3, distancia_placa = $4, placa_legivel = $5,
				pintura_solo = $6, sem_obstrucao = $7, placa_velocidade = $8, observacoes = $9,
				status = $10, date = $11, photos = $12, updated_at = $14`
	_, err = cc.db.Exec(ctx, sql,
		checklist.Id, checklist.RadarId, checklist.PlacaPresente, checklist.DistanciaPlaca,
		checklist.PlacaLegivel, checklist.PinturaSolo, checklist.SemObstrucao,
		checklist.PlacaVelocidade, checklist.Observacoes, checklist.Status, checklist.Date,
		photos, checklist.CreatedAt, checklist.UpdatedAt)
	if err != nil {
		zap.S().Errorf("error saving checklist: %s", err.Error())
		return false, err
	}

	if checklist.Status == "" {
		return false, nil
	}

	updateSql := "UPDATE radares SET status = $1, last_checklist = $2, updated_at = $3 WHERE id = $4"
	tag, err := cc.db.Exec(ctx, updateSql, checklist.Status, checklist.Date, now, checklist.RadarId)
	if err != nil {
		zap.S().Warnf("checklist %s saved but radar status update failed: %s", checklist.Id, err.Error())
		return false, nil
	}
	if tag.RowsAffected() == 0 {
		zap.S().Warnf("checklist %s saved but radar %s was not found, status not propagated", checklist.Id, checklist.RadarId)
		return false, nil
	}
	return true, nil
}

//DeleteChecklistById removes a checklist. The owning radar keeps whatever status
//the most recently saved checklist gave it, deletion never re-derives.
func (cc *ChecklistController) DeleteChecklistById(id string) error {

	sql := "DELETE FROM checklists WHERE id = $1"
	tag, err := cc.db.Exec(context.Background(), sql, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return errors.New("checklist not found")
	}
	return nil
}

func scanChecklistColumns(row pgx.Row, c *model.Checklist) error {

	var distancia pgtype.Int4
	var photos []byte
	err := row.Scan(&c.Id, &c.RadarId, &c.PlacaPresente, &distancia, &c.PlacaLegivel,
		&c.PinturaSolo, &c.SemObstrucao, &c.PlacaVelocidade, &c.Observacoes, &c.Status,
		&c.Date, &photos, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return err
	}
	if distancia.Status == pgtype.Present {
		value := int(distancia.Int)
		c.DistanciaPlaca = &value
	}
	if err := json.Unmarshal(photos, &c.Photos); err != nil {
		zap.S().Warnf("error decoding photos for checklist %s: %s", c.Id, err.Error())
		c.Photos = []model.Photo{}
	}
	return nil
}

func scanToChecklist(row pgx.Row) (*model.Checklist, error) {

	var c model.Checklist
	if err := scanChecklistColumns(row, &c); err != nil {
		return nil, err
	}
	return &c, nil
}

func scanToChecklists(rows pgx.Rows) ([]*model.Checklist, error) {

	var checklists []*model.Checklist
	for rows.Next() {

		var c model.Checklist
		if err := scanChecklistColumns(rows, &c); err != nil {
			zap.S().Warnf("error scanning row: %s", err.Error())
			continue
		}
		checklists = append(checklists, &c)
	}
	return checklists, rows.Err()
}
