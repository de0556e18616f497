package database

import (
	"context"

	"github.com/jackc/pgx/v4/pgxpool"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

//DeleteSchema cleans up the tables and data - useful for testing but not exposed to web
func DeleteSchema(db *pgxpool.Pool) error {
	dropTables := `drop table checklists cascade;
					drop table radares cascade;`
	_, err := db.Exec(context.Background(), dropTables)
	return err
}

//SetupSchema creates the required tables if they don't exist
func SetupSchema(db *pgxpool.Pool) error {

	ctx := context.Background()

	checkSql := "SELECT cast(count(id) as VARCHAR) FROM radares"
	var count string
	row := db.QueryRow(ctx, checkSql)
	err := row.Scan(&count)
	if err == nil {
		//table likely exists
		return nil
	}
	zap.L().Info("attempting to create tables")

	createSql := `CREATE TABLE IF NOT EXISTS radares(
	id text primary key,
	km text not null,
	rodovia text not null default 'BR-040',
	sentido text not null default '',
	velocidade int not null,
	tipo_via text not null default 'rural',
	tipo_radar text not null default 'PER',
	municipio text not null default '',
	descricao text not null default '',
	status text not null default 'pendente',
	last_checklist timestamptz,
	photos jsonb not null default '[]',
	created_at timestamptz not null default now(),
	updated_at timestamptz not null default now());
CREATE TABLE IF NOT EXISTS checklists(
	id text primary key,
	radar_id text not null,
	placa_presente boolean not null default false,
	distancia_placa int,
	placa_legivel boolean not null default false,
	pintura_solo boolean not null default false,
	sem_obstrucao boolean not null default false,
	placa_velocidade boolean not null default false,
	observacoes text not null default '',
	status text not null default '',
	date timestamptz not null,
	photos jsonb not null default '[]',
	created_at timestamptz not null default now(),
	updated_at timestamptz not null default now());
CREATE INDEX IF NOT EXISTS checklist_radar_index ON checklists(radar_id);
CREATE INDEX IF NOT EXISTS checklist_date_index ON checklists(date DESC);
`
	_, err = db.Exec(ctx, createSql)
	if err != nil {
		return errors.Wrap(err, "unable to create tables")
	}
	return nil
}
