package main

import (
	"net"
	"sync"
	"testing"
	"time"

	"github.com/kataras/iris/v12/httptest"
	"github.com/spf13/viper"

	"github.com/radar-check/br040/api/config"
)

var preflightOnce sync.Once

//requireDb skips the test when no Postgres is reachable so the suite can run
//without a local database
func requireDb(t *testing.T) {

	viper.SetDefault("PGHOST", "localhost")
	viper.SetDefault("PGPORT", "5432")
	viper.AutomaticEnv()

	addr := net.JoinHostPort(viper.GetString("PGHOST"), viper.GetString("PGPORT"))
	conn, err := net.DialTimeout("tcp", addr, time.Second)
	if err != nil {
		t.Skip("database not reachable")
	}
	conn.Close()

	preflightOnce.Do(config.Preflight)
}

func TestGetRadares(t *testing.T) {

	requireDb(t)
	app := radarApi()

	test := httptest.New(t, app)

	test.GET("/").Expect().Status(404)
	test.GET("/healthz").Expect().Status(200)
	test.GET("/radares").Expect().Status(200).JSON().Array()
	test.GET("/stats").Expect().Status(200).JSON().Object().ContainsKey("total")
}

func TestRadarLifecycle(t *testing.T) {

	requireDb(t)
	app := radarApi()

	test := httptest.New(t, app)

	radar := test.POST("/radares").WithJSON(map[string]interface{}{
		"km":         "999+000",
		"velocidade": 60,
		"tipoVia":    "urbana",
		"municipio":  "Teste",
	}).Expect().Status(201).JSON().Object()

	radar.Value("status").Equal("pendente")
	id := radar.Value("id").String().Raw()

	interval := test.GET("/radares/" + id + "/interval").Expect().Status(200).JSON().Object()
	interval.Value("min").Equal(100)
	interval.Value("max").Equal(300)
	interval.NotContainsKey("verdict")

	measured := test.GET("/radares/"+id+"/interval").WithQuery("distancia", 150).
		Expect().Status(200).JSON().Object()
	measured.Value("verdict").Equal("conforme")

	checklist := test.POST("/checklists").WithJSON(map[string]interface{}{
		"radarId":       id,
		"placaPresente": true,
		"status":        "conforme",
	}).Expect().Status(201).JSON().Object()
	checklist.NotContainsKey("warning")

	updated := test.GET("/radares/" + id).Expect().Status(200).JSON().Object()
	updated.Value("status").Equal("conforme")
	updated.ContainsKey("lastChecklistDate")

	test.DELETE("/radares/" + id).Expect().Status(200)
	test.GET("/radares/" + id).Expect().Status(404)
}

func TestCreateRadarValidation(t *testing.T) {

	requireDb(t)
	app := radarApi()

	test := httptest.New(t, app)

	test.POST("/radares").WithJSON(map[string]interface{}{
		"velocidade": 60,
	}).Expect().Status(400)

	test.POST("/checklists").WithJSON(map[string]interface{}{
		"placaPresente": true,
	}).Expect().Status(400)

	test.POST("/checklists").WithJSON(map[string]interface{}{
		"radarId": "qualquer",
		"status":  "bogus",
	}).Expect().Status(400)

	test.POST("/radares").WithJSON(map[string]interface{}{
		"km":         "1+000",
		"velocidade": 60,
		"status":     "bogus",
	}).Expect().Status(400)
}

func TestDeleteAllRequiresAuth(t *testing.T) {

	requireDb(t)
	app := radarApi()

	test := httptest.New(t, app)

	test.DELETE("/radares").Expect().Status(401)
}
