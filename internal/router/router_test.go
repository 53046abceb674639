package router_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	filesnap "tambo-herd/internal/adapters/snapshot/file"
	"tambo-herd/internal/router"
)

func newServer(t *testing.T, dataFile string) *httptest.Server {
	t.Helper()

	h, err := router.NewRouter(router.Options{Snapshot: filesnap.New(dataFile)})
	if err != nil {
		t.Fatalf("NewRouter error: %v", err)
	}
	ts := httptest.NewServer(h)
	t.Cleanup(ts.Close)
	return ts
}

func TestHTTP_EndToEnd_ReproductiveCycle(t *testing.T) {
	dataFile := filepath.Join(t.TempDir(), "tambo.json")
	ts := newServer(t, dataFile)

	// 1) Arranca con el candado puesto: las mutaciones rebotan con 423.
	{
		st, _ := doReq(t, ts.URL, "POST", "/animals", map[string]any{"id": "101"})
		if st != http.StatusLocked {
			t.Fatalf("expected 423 while locked, got %d", st)
		}
	}

	// 2) Abrir el candado
	{
		st, body := doReq(t, ts.URL, "POST", "/lock/toggle", nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 toggling lock, got %d body=%s", st, string(body))
		}
		var resp struct {
			Locked bool `json:"locked"`
		}
		_ = json.Unmarshal(body, &resp)
		if resp.Locked {
			t.Fatalf("expected unlocked after toggle")
		}
	}

	// 3) Alta de la vaca 101
	{
		st, body := doReq(t, ts.URL, "POST", "/animals", map[string]any{
			"id":              "101",
			"raza":            "Holando",
			"categoria":       "Vaca",
			"fechaNacimiento": "2023-10-25",
			"estado":          "Lactancia",
		})
		if st != http.StatusCreated {
			t.Fatalf("expected 201 create animal, got %d body=%s", st, string(body))
		}
	}

	// 4) Celo a las 07:30: la regla AM-PM recomienda inseminar hoy a la tarde
	{
		st, body := doReq(t, ts.URL, "GET", "/breeding/advice?heat=2025-10-25T07:30:00Z", nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 advice, got %d body=%s", st, string(body))
		}
		var rec struct {
			Action    string `json:"accion"`
			TimeRange string `json:"rangoHorario"`
		}
		_ = json.Unmarshal(body, &rec)
		if rec.Action != "Inseminar HOY a la Tarde" || rec.TimeRange != "18:00 - 20:00 hs" {
			t.Fatalf("unexpected recommendation: %+v", rec)
		}
	}

	// 5) Servicio a las 18:00: queda Inseminada con FPP a 283 días
	service := time.Date(2025, 10, 25, 18, 0, 0, 0, time.UTC)
	{
		st, body := doReq(t, ts.URL, "POST", "/animals/101/events", map[string]any{
			"tipo":  "inseminacion",
			"fecha": service.Format(time.RFC3339),
			"servicio": map[string]any{
				"toro": "Urbano",
			},
		})
		if st != http.StatusCreated {
			t.Fatalf("expected 201 append event, got %d body=%s", st, string(body))
		}
	}

	due := service.AddDate(0, 0, 283)
	{
		a := getAnimal(t, ts.URL, "101")
		if a.Repro != "Inseminada" {
			t.Fatalf("expected Inseminada, got %s", a.Repro)
		}
		if a.DueDate == nil || !a.DueDate.Equal(due) {
			t.Fatalf("expected FPP %v, got %v", due, a.DueDate)
		}
	}

	// 6) Tacto positivo a los 60 días
	{
		st, body := doReq(t, ts.URL, "POST", "/animals/101/events", map[string]any{
			"tipo":  "tacto",
			"fecha": service.AddDate(0, 0, 60).Format(time.RFC3339),
			"tacto": map[string]any{"resultadoTacto": "Preñada", "mesesGestacion": 2},
		})
		if st != http.StatusCreated {
			t.Fatalf("expected 201 tacto, got %d body=%s", st, string(body))
		}
		a := getAnimal(t, ts.URL, "101")
		if a.Repro != "Preñada" || a.PregnancyDays != 60 {
			t.Fatalf("expected Preñada con 60 días, got %s / %d", a.Repro, a.PregnancyDays)
		}
	}

	// 7) Parto en la fecha probable
	{
		st, body := doReq(t, ts.URL, "POST", "/animals/101/events", map[string]any{
			"tipo":  "parto",
			"fecha": due.Format(time.RFC3339),
		})
		if st != http.StatusCreated {
			t.Fatalf("expected 201 parto, got %d body=%s", st, string(body))
		}
		a := getAnimal(t, ts.URL, "101")
		if a.Repro != "Vacía" || a.Lactation != "Lactancia" || a.TotalCalvings != 1 {
			t.Fatalf("post parto: %+v", a)
		}
		if a.DueDate != nil {
			t.Fatalf("expected FPP cleared after parto")
		}
	}

	// 8) El log de 101 quedó más reciente primero
	{
		st, body := doReq(t, ts.URL, "GET", "/animals/101/events", nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 list events, got %d", st)
		}
		var es []struct {
			Kind string `json:"tipo"`
		}
		_ = json.Unmarshal(body, &es)
		if len(es) != 3 || es[0].Kind != "parto" || es[2].Kind != "inseminacion" {
			t.Fatalf("unexpected event order: %+v", es)
		}
	}
}

func TestHTTP_MedicalHoldAndAlerts(t *testing.T) {
	ts := newServer(t, filepath.Join(t.TempDir(), "tambo.json"))
	unlock(t, ts.URL)

	{
		st, _ := doReq(t, ts.URL, "POST", "/animals", map[string]any{"id": "202", "raza": "Jersey", "estado": "Lactancia"})
		if st != http.StatusCreated {
			t.Fatalf("expected 201 create animal, got %d", st)
		}
	}

	// Sanidad hoy con 4 días de retiro: 202 queda al tacho.
	{
		st, body := doReq(t, ts.URL, "POST", "/animals/202/events", map[string]any{
			"tipo":  "sanidad",
			"fecha": time.Now().UTC().Format(time.RFC3339),
			"sanidad": map[string]any{
				"gradoMastitis": "2",
				"cuartos":       []string{"AD"},
				"medicamento":   "cefalexina",
				"diasRetiro":    4,
			},
		})
		if st != http.StatusCreated {
			t.Fatalf("expected 201 sanidad, got %d body=%s", st, string(body))
		}
	}

	{
		st, body := doReq(t, ts.URL, "GET", "/herd/medical-hold", nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 medical hold, got %d", st)
		}
		var hold struct {
			InTreatment int      `json:"enTratamiento"`
			AnimalIDs   []string `json:"vacasAlTacho"`
		}
		_ = json.Unmarshal(body, &hold)
		if hold.InTreatment != 1 || len(hold.AnimalIDs) != 1 || hold.AnimalIDs[0] != "202" {
			t.Fatalf("expected 202 al tacho, got %+v", hold)
		}
	}

	{
		st, body := doReq(t, ts.URL, "GET", "/alerts", nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 alerts, got %d", st)
		}
		var alerts []struct {
			Severity string `json:"tipo"`
			Message  string `json:"mensaje"`
		}
		_ = json.Unmarshal(body, &alerts)
		if len(alerts) != 1 || alerts[0].Severity != "urgente" || alerts[0].Message != "Vaca 202 - ORDEÑAR AL TACHO" {
			t.Fatalf("unexpected alerts: %+v", alerts)
		}
	}

	// Borrar 202 en cascada: desaparece de todas las vistas.
	{
		st, _ := doReq(t, ts.URL, "DELETE", "/animals/202", nil)
		if st != http.StatusNoContent {
			t.Fatalf("expected 204 delete, got %d", st)
		}
		st, body := doReq(t, ts.URL, "GET", "/herd/medical-hold", nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200, got %d", st)
		}
		var hold struct {
			InTreatment int `json:"enTratamiento"`
		}
		_ = json.Unmarshal(body, &hold)
		if hold.InTreatment != 0 {
			t.Fatalf("expected empty hold after cascade delete, got %+v", hold)
		}
	}
}

func TestHTTP_ValidationAndNotFound(t *testing.T) {
	ts := newServer(t, filepath.Join(t.TempDir(), "tambo.json"))
	unlock(t, ts.URL)

	// caravana vacía
	if st, _ := doReq(t, ts.URL, "POST", "/animals", map[string]any{"id": " "}); st != http.StatusBadRequest {
		t.Fatalf("expected 400 empty caravana, got %d", st)
	}
	// raza desconocida
	if st, _ := doReq(t, ts.URL, "POST", "/animals", map[string]any{"id": "1", "raza": "Angus"}); st != http.StatusBadRequest {
		t.Fatalf("expected 400 unknown breed, got %d", st)
	}
	// evento sobre caravana no registrada
	st, _ := doReq(t, ts.URL, "POST", "/animals/999/events", map[string]any{
		"tipo":  "celo",
		"fecha": time.Now().UTC().Format(time.RFC3339),
	})
	if st != http.StatusNotFound {
		t.Fatalf("expected 404 unknown animal, got %d", st)
	}
	// fecha inválida
	if st, _ := doReq(t, ts.URL, "GET", "/breeding/advice?heat=ayer", nil); st != http.StatusBadRequest {
		t.Fatalf("expected 400 bad heat, got %d", st)
	}
	// métricas de caravana desconocida: 200 con ceros, no error
	{
		st, body := doReq(t, ts.URL, "GET", "/animals/999/metrics", nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 metrics, got %d", st)
		}
		var m struct {
			DaysInMilk int `json:"del"`
		}
		_ = json.Unmarshal(body, &m)
		if m.DaysInMilk != 0 {
			t.Fatalf("expected zeroed metrics, got %+v", m)
		}
	}
}

func TestHTTP_SnapshotSurvivesRestart(t *testing.T) {
	dataFile := filepath.Join(t.TempDir(), "tambo.json")

	ts := newServer(t, dataFile)
	unlock(t, ts.URL)
	if st, _ := doReq(t, ts.URL, "POST", "/animals", map[string]any{"id": "101", "raza": "Cruza"}); st != http.StatusCreated {
		t.Fatalf("expected 201 create animal, got %d", st)
	}
	ts.Close()

	// Reinicio: mismo archivo, el rodeo y el candado abierto tienen que volver.
	ts2 := newServer(t, dataFile)
	a := getAnimal(t, ts2.URL, "101")
	if a.ID != "101" {
		t.Fatalf("expected 101 after restart, got %+v", a)
	}
	if st, _ := doReq(t, ts2.URL, "POST", "/animals", map[string]any{"id": "202"}); st != http.StatusCreated {
		t.Fatalf("expected unlocked state to survive restart, got %d", st)
	}
}

func TestHTTP_WipeRespectsLock(t *testing.T) {
	ts := newServer(t, filepath.Join(t.TempDir(), "tambo.json"))
	unlock(t, ts.URL)

	if st, _ := doReq(t, ts.URL, "POST", "/animals", map[string]any{"id": "101"}); st != http.StatusCreated {
		t.Fatalf("expected 201, got %d", st)
	}

	// Cerrar el candado: el wipe es no-op (responde 204 igual, no borra).
	doReq(t, ts.URL, "POST", "/lock/toggle", nil)
	if st, _ := doReq(t, ts.URL, "POST", "/admin/wipe", nil); st != http.StatusNoContent {
		t.Fatalf("expected 204 wipe, got %d", st)
	}
	if a := getAnimal(t, ts.URL, "101"); a.ID != "101" {
		t.Fatalf("wipe con candado no debe borrar")
	}

	// Abrir y volver a intentar: ahora sí borra.
	doReq(t, ts.URL, "POST", "/lock/toggle", nil)
	if st, _ := doReq(t, ts.URL, "POST", "/admin/wipe", nil); st != http.StatusNoContent {
		t.Fatalf("expected 204 wipe, got %d", st)
	}
	if st, _ := doReq(t, ts.URL, "GET", "/animals/101", nil); st != http.StatusNotFound {
		t.Fatalf("expected 404 after wipe, got %d", st)
	}
}

// -------------------------
// helpers
// -------------------------

type animalResponse struct {
	ID            string     `json:"id"`
	Repro         string     `json:"estadoRepro"`
	Lactation     string     `json:"estado"`
	TotalCalvings int        `json:"partosTotales"`
	PregnancyDays int        `json:"diasPreñez"`
	DueDate       *time.Time `json:"fpp"`
}

func getAnimal(t *testing.T, baseURL, id string) animalResponse {
	t.Helper()

	st, body := doReq(t, baseURL, "GET", "/animals/"+id, nil)
	if st != http.StatusOK {
		t.Fatalf("expected 200 get animal, got %d body=%s", st, string(body))
	}
	var a animalResponse
	_ = json.Unmarshal(body, &a)
	return a
}

func unlock(t *testing.T, baseURL string) {
	t.Helper()

	st, body := doReq(t, baseURL, "POST", "/lock/toggle", nil)
	if st != http.StatusOK {
		t.Fatalf("expected 200 unlocking, got %d body=%s", st, string(body))
	}
}

func doReq(t *testing.T, baseURL, method, path string, body any) (int, []byte) {
	t.Helper()

	var rdr io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("json marshal: %v", err)
		}
		rdr = bytes.NewReader(b)
	}

	req, err := http.NewRequest(method, baseURL+path, rdr)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	res, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("do request: %v", err)
	}
	defer res.Body.Close()

	respBody, _ := io.ReadAll(res.Body)
	return res.StatusCode, respBody
}
