package model

import (
	"testing"
	"time"
)

func TestRadar_ApplyChecklist(t *testing.T) {

	radar := Radar{Id: "r1", Status: StatusPendente}
	date := time.Date(2024, 5, 10, 9, 30, 0, 0, time.UTC)
	checklist := Checklist{Id: "c1", RadarId: "r1", Status: StatusConforme, Date: date}

	radar.ApplyChecklist(&checklist)

	if radar.Status != StatusConforme {
		t.Errorf("expected conforme, got %s", radar.Status)
	}
	if radar.LastChecklist == nil || !radar.LastChecklist.Equal(date) {
		t.Errorf("last checklist date not set")
	}

	//saving the same checklist again must not drift
	radar.ApplyChecklist(&checklist)
	if radar.Status != StatusConforme || !radar.LastChecklist.Equal(date) {
		t.Errorf("re-applying the same checklist changed the radar")
	}
}

func TestRadar_ApplyChecklist_LastSavedWins(t *testing.T) {

	radar := Radar{Id: "r1", Status: StatusPendente}
	older := Checklist{Id: "c1", RadarId: "r1", Status: StatusConforme,
		Date: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
	newer := Checklist{Id: "c2", RadarId: "r1", Status: StatusNaoConforme,
		Date: time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)}

	radar.ApplyChecklist(&older)
	radar.ApplyChecklist(&newer)
	if radar.Status != StatusNaoConforme {
		t.Fatalf("expected nao-conforme after newer save, got %s", radar.Status)
	}

	//re-saving the older checklist rolls the radar back - last saved wins,
	//not latest inspection date
	radar.ApplyChecklist(&older)
	if radar.Status != StatusConforme {
		t.Errorf("expected conforme after re-saving older checklist, got %s", radar.Status)
	}
	if !radar.LastChecklist.Equal(older.Date) {
		t.Errorf("expected last checklist date rolled back to %v, got %v", older.Date, radar.LastChecklist)
	}
}

func TestRadar_ApplyChecklist_EmptyStatus(t *testing.T) {

	radar := Radar{Id: "r1", Status: StatusNaoConforme}
	checklist := Checklist{Id: "c1", RadarId: "r1", Date: time.Now()}

	radar.ApplyChecklist(&checklist)
	if radar.Status != StatusNaoConforme {
		t.Errorf("checklist without status must not touch the radar")
	}
	if radar.LastChecklist != nil {
		t.Errorf("checklist without status must not touch the timestamp")
	}
}

func TestStatus_Valid(t *testing.T) {

	for _, status := range []Status{StatusConforme, StatusNaoConforme, StatusPendente, ""} {
		if !status.Valid() {
			t.Errorf("expected %q to be valid", status)
		}
	}
	for _, status := range []Status{"bogus", "Conforme", "CONFORME", "nao conforme"} {
		if status.Valid() {
			t.Errorf("expected %q to be rejected", status)
		}
	}
}

func TestComputeStats(t *testing.T) {

	radares := []*Radar{
		{Status: StatusConforme},
		{Status: StatusConforme},
		{Status: StatusNaoConforme},
		{Status: StatusPendente},
		{Status: ""},
	}

	stats := ComputeStats(radares)

	if stats.Total != 5 {
		t.Errorf("total: got %d", stats.Total)
	}
	if stats.Conformes != 2 {
		t.Errorf("conformes: got %d", stats.Conformes)
	}
	if stats.NaoConformes != 1 {
		t.Errorf("naoConformes: got %d", stats.NaoConformes)
	}
	//unset status counts as pending
	if stats.Pendentes != 2 {
		t.Errorf("pendentes: got %d", stats.Pendentes)
	}
}

func TestComputeStats_Empty(t *testing.T) {

	stats := ComputeStats(nil)
	if stats.Total != 0 || stats.Pendentes != 0 {
		t.Errorf("empty collection should produce zero counters")
	}
}
