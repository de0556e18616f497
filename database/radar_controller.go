package database

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"
	"github.com/pkg/errors"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/radar-check/br040/api/model"
)

const radarColumns = "id, km, rodovia, sentido, velocidade, tipo_via, tipo_radar, municipio, descricao, status, last_checklist, photos, created_at, updated_at"

type RadarController struct {
	db *pgxpool.Pool
}

func NewRadarController(db *pgxpool.Pool) *RadarController {

	return &RadarController{db: db}
}

//FindRadares returns all radares ordered by creation
func (rc *RadarController) FindRadares() ([]*model.Radar, error) {

	sql := "SELECT " + radarColumns + " FROM radares ORDER BY created_at"
	rows, err := rc.db.Query(context.Background(), sql)
	if err != nil {
		zap.L().Error(err.Error())
		return nil, err
	}
	defer rows.Close()

	return scanToRadares(rows)
}

//FindRadaresByStatus returns the radares carrying the given status
func (rc *RadarController) FindRadaresByStatus(status model.Status) ([]*model.Radar, error) {

	sql := "SELECT " + radarColumns + " FROM radares WHERE status = $1 ORDER BY created_at"
	rows, err := rc.db.Query(context.Background(), sql, status)
	if err != nil {
		zap.L().Error(err.Error())
		return nil, err
	}
	defer rows.Close()

	return scanToRadares(rows)
}

//FindRadarById returns a single radar or nil when the id is unknown
func (rc *RadarController) FindRadarById(id string) (*model.Radar, error) {

	sql := "SELECT " + radarColumns + " FROM radares WHERE id = $1"
	row := rc.db.QueryRow(context.Background(), sql, id)

	radar, err := scanToRadar(row)
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	return radar, err
}

//AddRadar creates a radar, a fresh id is assigned and the status starts as pending
func (rc *RadarController) AddRadar(radar *model.Radar) error {

	now := time.Now()
	radar.Id = uuid.NewString()
	radar.CreatedAt = now
	radar.UpdatedAt = now
	if radar.Status == "" {
		radar.Status = model.StatusPendente
	}
	if radar.Rodovia == "" {
		radar.Rodovia = "BR-040"
	}

	photos, err := marshalPhotos(radar.Photos)
	if err != nil {
		return err
	}

	sql := `INSERT INTO radares(id, km, rodovia, sentido, velocidade, tipo_via, tipo_radar, municipio, descricao, status, photos, created_at, updated_at)
			VALUES($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	_, err = rc.db.Exec(context.Background(), sql,
		radar.Id, radar.Km, radar.Rodovia, radar.Sentido, radar.Velocidade, radar.TipoVia,
		radar.TipoRadar, radar.Municipio, radar.Descricao, radar.Status, photos,
		radar.CreatedAt, radar.UpdatedAt)
	if err != nil {
		zap.S().Errorf("error adding radar: %s", err.Error())
		return err
	}
	return nil
}

//UpdateRadar overwrites the editable fields of a radar. Status and the last
//checklist timestamp are not editable here, they only change through checklist saves.
func (rc *RadarController) UpdateRadar(radar *model.Radar) error {

	photos, err := marshalPhotos(radar.Photos)
	if err != nil {
		return err
	}

	sql := `UPDATE radares SET km = $1, rodovia = $2, sentido = $3, velocidade = $4, tipo_via = $5,
			tipo_radar = $6, municipio = $7, descricao = $8, photos = $9, updated_at = $10
			WHERE id = $11`
	tag, err := rc.db.Exec(context.Background(), sql,
		radar.Km, radar.Rodovia, radar.Sentido, radar.Velocidade, radar.TipoVia,
		radar.TipoRadar, radar.Municipio, radar.Descricao, photos, time.Now(), radar.Id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return errors.New("radar not found")
	}
	return nil
}

//DeleteRadarById removes a radar and its checklists in one transaction.
//Checklists reference radares without a database constraint, so the cascade
//is done here.
func (rc *RadarController) DeleteRadarById(id string) error {

	ctx := context.Background()
	tx, err := rc.db.Begin(ctx)
	if err != nil {
		zap.L().Error("error starting transaction")
		return err
	}

	if _, err := tx.Exec(ctx, "DELETE FROM checklists WHERE radar_id = $1", id); err != nil {
		tx.Rollback(ctx)
		return err
	}

	tag, err := tx.Exec(ctx, "DELETE FROM radares WHERE id = $1", id)
	if err != nil {
		tx.Rollback(ctx)
		return err
	}
	if tag.RowsAffected() == 0 {
		tx.Rollback(ctx)
		return errors.New("radar not found")
	}
	return tx.Commit(ctx)
}

//DeleteAllRadares removes all radares from the database -- also removes all checklists
func (rc *RadarController) DeleteAllRadares() error {

	sql := "TRUNCATE TABLE radares, checklists"
	_, err := rc.db.Exec(context.Background(), sql)
	if err != nil {
		return err
	}
	zap.S().Info("truncated tables radares and checklists")
	return nil
}

//CountRadares returns how many radares exist
func (rc *RadarController) CountRadares() (int, error) {

	var count int
	row := rc.db.QueryRow(context.Background(), "SELECT count(id) FROM radares")
	err := row.Scan(&count)
	return count, err
}

//ImportRadares bulk inserts radares committing in bounded chunks so one bad
//record voids only its own chunk, not the whole import. Returns how many made it in.
func (rc *RadarController) ImportRadares(radares []*model.Radar) (int, error) {

	chunkSize := viper.GetInt("IMPORT_CHUNK_SIZE")
	if chunkSize <= 0 {
		chunkSize = 450
	}

	imported := 0
	for start := 0; start < len(radares); start += chunkSize {
		end := start + chunkSize
		if end > len(radares) {
			end = len(radares)
		}

		n, err := rc.importChunk(radares[start:end])
		if err != nil {
			zap.S().Warnf("import chunk starting at %d failed: %s", start, err.Error())
			continue
		}
		imported += n
	}

	if imported == 0 && len(radares) > 0 {
		return 0, errors.New("no radares could be imported")
	}
	return imported, nil
}

func (rc *RadarController) importChunk(radares []*model.Radar) (int, error) {

	ctx := context.Background()
	tx, err := rc.db.Begin(ctx)
	if err != nil {
		zap.L().Error("error starting transaction")
		return 0, err
	}

	sql := `INSERT INTO radares(id, km, rodovia, sentido, velocidade, tipo_via, tipo_radar, municipio, descricao, status, photos, created_at, updated_at)
			VALUES($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`

	now := time.Now()
	for _, radar := range radares {
		radar.Id = uuid.NewString()
		radar.CreatedAt = now
		radar.UpdatedAt = now
		if radar.Status == "" {
			radar.Status = model.StatusPendente
		}
		if radar.Rodovia == "" {
			radar.Rodovia = "BR-040"
		}

		photos, err := marshalPhotos(radar.Photos)
		if err != nil {
			tx.Rollback(ctx)
			return 0, err
		}

		_, err = tx.Exec(ctx, sql,
			radar.Id, radar.Km, radar.Rodovia, radar.Sentido, radar.Velocidade, radar.TipoVia,
			radar.TipoRadar, radar.Municipio, radar.Descricao, radar.Status, photos,
			radar.CreatedAt, radar.UpdatedAt)
		if err != nil {
			tx.Rollback(ctx)
			return 0, err
		}
	}

	if err = tx.Commit(ctx); err != nil {
		zap.S().Errorf("error commiting: %s", err.Error())
		return 0, err
	}
	return len(radares), nil
}

func marshalPhotos(photos []model.Photo) ([]byte, error) {

	if photos == nil {
		photos = []model.Photo{}
	}
	data, err := json.Marshal(photos)
	if err != nil {
		return nil, errors.Wrap(err, "unable to encode photos")
	}
	return data, nil
}

//scanToRadar scans a single row into a Radar
func scanToRadar(row pgx.Row) (*model.Radar, error) {

	var r model.Radar
	var photos []byte
	err := row.Scan(&r.Id, &r.Km, &r.Rodovia, &r.Sentido, &r.Velocidade, &r.TipoVia,
		&r.TipoRadar, &r.Municipio, &r.Descricao, &r.Status, &r.LastChecklist, &photos,
		&r.CreatedAt, &r.UpdatedAt)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(photos, &r.Photos); err != nil {
		zap.S().Warnf("error decoding photos for radar %s: %s", r.Id, err.Error())
		r.Photos = []model.Photo{}
	}
	return &r, nil
}

func scanToRadares(rows pgx.Rows) ([]*model.Radar, error) {

	var radares []*model.Radar
	for rows.Next() {

		var r model.Radar
		var photos []byte
		err := rows.Scan(&r.Id, &r.Km, &r.Rodovia, &r.Sentido, &r.Velocidade, &r.TipoVia,
			&r.TipoRadar, &r.Municipio, &r.Descricao, &r.Status, &r.LastChecklist, &photos,
			&r.CreatedAt, &r.UpdatedAt)
		if err != nil {
			zap.S().Warnf("error scanning row: %s", err.Error())
			continue
		}
		if err := json.Unmarshal(photos, &r.Photos); err != nil {
			r.Photos = []model.Photo{}
		}
		radares = append(radares, &r)
	}
	return radares, rows.Err()
}
