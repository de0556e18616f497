package main

import (
	"testing"

	"github.com/google/uuid"
	"github.com/spf13/viper"

	"github.com/radar-check/br040/api/config"
	"github.com/radar-check/br040/api/database"
	"github.com/radar-check/br040/api/model"
)

func TestRadarController_AddRadar(t *testing.T) {

	requireDb(t)
	rc := database.NewRadarController(config.Db)

	radar := &model.Radar{Km: "851+200", Velocidade: 80, TipoVia: model.ViaRural, Municipio: "Teste"}
	if err := rc.AddRadar(radar); err != nil {
		t.Fatalf("add radar: %s", err)
	}
	defer rc.DeleteRadarById(radar.Id)

	if radar.Id == "" {
		t.Fatal("expected generated id")
	}
	if radar.Status != model.StatusPendente {
		t.Fatalf("expected pendente default, got %s", radar.Status)
	}
	if radar.Rodovia != "BR-040" {
		t.Fatalf("expected BR-040 default, got %s", radar.Rodovia)
	}
}

func TestRadarController_UpdateKeepsStatus(t *testing.T) {

	requireDb(t)
	rc := database.NewRadarController(config.Db)
	cc := database.NewChecklistController(config.Db)

	radar := &model.Radar{Km: "852+000", Velocidade: 100, TipoVia: model.ViaRural}
	if err := rc.AddRadar(radar); err != nil {
		t.Fatalf("add radar: %s", err)
	}
	defer rc.DeleteRadarById(radar.Id)

	propagated, err := cc.SaveChecklist(&model.Checklist{RadarId: radar.Id, Status: model.StatusConforme})
	if err != nil || !propagated {
		t.Fatalf("save checklist: propagated=%v err=%v", propagated, err)
	}

	radar.Municipio = "Atualizado"
	if err := rc.UpdateRadar(radar); err != nil {
		t.Fatalf("update radar: %s", err)
	}

	found, err := rc.FindRadarById(radar.Id)
	if err != nil || found == nil {
		t.Fatalf("find radar: %v", err)
	}
	if found.Municipio != "Atualizado" {
		t.Fatalf("expected update to apply, got %s", found.Municipio)
	}
	if found.Status != model.StatusConforme {
		t.Fatalf("expected status untouched by update, got %s", found.Status)
	}
	if found.LastChecklist == nil {
		t.Fatal("expected last checklist date to survive update")
	}
}

func TestChecklistController_SaveChecklistPropagation(t *testing.T) {

	requireDb(t)
	rc := database.NewRadarController(config.Db)
	cc := database.NewChecklistController(config.Db)

	radar := &model.Radar{Km: "853+500", Velocidade: 60, TipoVia: model.ViaUrbana}
	if err := rc.AddRadar(radar); err != nil {
		t.Fatalf("add radar: %s", err)
	}
	defer rc.DeleteRadarById(radar.Id)

	first := &model.Checklist{RadarId: radar.Id, Status: model.StatusNaoConforme}
	if propagated, err := cc.SaveChecklist(first); err != nil || !propagated {
		t.Fatalf("save checklist: propagated=%v err=%v", propagated, err)
	}

	second := &model.Checklist{RadarId: radar.Id, Status: model.StatusConforme}
	if propagated, err := cc.SaveChecklist(second); err != nil || !propagated {
		t.Fatalf("save checklist: propagated=%v err=%v", propagated, err)
	}

	found, err := rc.FindRadarById(radar.Id)
	if err != nil || found == nil {
		t.Fatalf("find radar: %v", err)
	}
	if found.Status != model.StatusConforme {
		t.Fatalf("expected last saved status to win, got %s", found.Status)
	}
}

func TestChecklistController_SaveChecklistMissingRadar(t *testing.T) {

	requireDb(t)
	cc := database.NewChecklistController(config.Db)

	checklist := &model.Checklist{RadarId: "nao-existe", Status: model.StatusConforme}
	propagated, err := cc.SaveChecklist(checklist)
	if err != nil {
		t.Fatalf("save should still succeed: %s", err)
	}
	if propagated {
		t.Fatal("expected no propagation for missing radar")
	}
	if checklist.Id == "" {
		t.Fatal("expected checklist to be saved anyway")
	}
	cc.DeleteChecklistById(checklist.Id)
}

func TestRadarController_DeleteCascades(t *testing.T) {

	requireDb(t)
	rc := database.NewRadarController(config.Db)
	cc := database.NewChecklistController(config.Db)

	radar := &model.Radar{Km: "854+100", Velocidade: 80, TipoVia: model.ViaRuralUrbana}
	if err := rc.AddRadar(radar); err != nil {
		t.Fatalf("add radar: %s", err)
	}

	checklist := &model.Checklist{RadarId: radar.Id, Status: model.StatusConforme}
	if _, err := cc.SaveChecklist(checklist); err != nil {
		t.Fatalf("save checklist: %s", err)
	}

	if err := rc.DeleteRadarById(radar.Id); err != nil {
		t.Fatalf("delete radar: %s", err)
	}

	orphan, err := cc.FindChecklistById(checklist.Id)
	if err != nil {
		t.Fatalf("find checklist: %s", err)
	}
	if orphan != nil {
		t.Fatal("expected checklist to be deleted with its radar")
	}
}

func TestChecklistController_SaveChecklistClientId(t *testing.T) {

	requireDb(t)
	rc := database.NewRadarController(config.Db)
	cc := database.NewChecklistController(config.Db)

	radar := &model.Radar{Km: "855+700", Velocidade: 80, TipoVia: model.ViaRural}
	if err := rc.AddRadar(radar); err != nil {
		t.Fatalf("add radar: %s", err)
	}
	defer rc.DeleteRadarById(radar.Id)

	checklist := &model.Checklist{Id: uuid.NewString(), RadarId: radar.Id, Status: model.StatusPendente}
	if _, err := cc.SaveChecklist(checklist); err != nil {
		t.Fatalf("save checklist: %s", err)
	}

	found, err := cc.FindChecklistById(checklist.Id)
	if err != nil || found == nil {
		t.Fatalf("find checklist: %v", err)
	}
	if found.CreatedAt.IsZero() {
		t.Fatal("expected created_at to be set for a client supplied id")
	}
}

func TestRadarController_ImportRadares(t *testing.T) {

	requireDb(t)
	rc := database.NewRadarController(config.Db)

	radares := []*model.Radar{
		{Km: "860+000", Velocidade: 80, TipoVia: model.ViaRural},
		{Km: "861+000", Velocidade: 60, TipoVia: model.ViaUrbana},
	}

	imported, err := rc.ImportRadares(radares)
	if err != nil {
		t.Fatalf("import radares: %s", err)
	}
	if imported != 2 {
		t.Fatalf("expected 2 imported, got %d", imported)
	}
	for _, radar := range radares {
		rc.DeleteRadarById(radar.Id)
	}
}

func TestRadarController_ImportRadaresBadChunk(t *testing.T) {

	requireDb(t)
	rc := database.NewRadarController(config.Db)

	viper.Set("IMPORT_CHUNK_SIZE", 1)
	defer viper.Set("IMPORT_CHUNK_SIZE", 450)

	//the middle km is not valid UTF-8, Postgres rejects the insert and only
	//that chunk is rolled back
	radares := []*model.Radar{
		{Km: "863+000", Velocidade: 80, TipoVia: model.ViaRural},
		{Km: "864" + string([]byte{0xff, 0xfe}), Velocidade: 80, TipoVia: model.ViaRural},
		{Km: "865+000", Velocidade: 60, TipoVia: model.ViaUrbana},
	}

	imported, err := rc.ImportRadares(radares)
	if err != nil {
		t.Fatalf("import radares: %s", err)
	}
	if imported != 2 {
		t.Fatalf("expected the bad chunk to be skipped, got %d imported", imported)
	}
	for _, radar := range radares {
		rc.DeleteRadarById(radar.Id)
	}
}
