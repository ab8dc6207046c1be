package appointment

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/medsched/medsched/internal/platform/web"
)

func setupEcho(f *fixture) *echo.Echo {
	e := echo.New()
	e.Validator = web.NewValidator()
	e.HTTPErrorHandler = web.ErrorHandler(zerolog.Nop())
	NewHandler(f.svc).RegisterRoutes(e.Group("/api"))
	return e
}

func TestHandlerCreateAppointment(t *testing.T) {
	f := newFixture(weekdayAgenda())
	e := setupEcho(f)

	payload := fmt.Sprintf(`{"patientId":%q,"doctorId":%q,"appointmentAt":"2025-09-09T14:30:00Z"}`,
		f.patient.ID, f.doctor.ID)
	req := httptest.NewRequest(http.MethodPost, "/api/appointments", strings.NewReader(payload))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}

	var body web.Envelope
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatal(err)
	}
	data := body.Data.(map[string]interface{})
	if data["date"] != "9 de Set, 2025" {
		t.Errorf("date = %v", data["date"])
	}
	if data["status"] != "Agendado" {
		t.Errorf("status = %v", data["status"])
	}
}

func TestHandlerCreateAppointment_MissingFields(t *testing.T) {
	f := newFixture(weekdayAgenda())
	e := setupEcho(f)

	req := httptest.NewRequest(http.MethodPost, "/api/appointments", strings.NewReader(`{}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d: %s", rec.Code, rec.Body.String())
	}

	var body web.ErrorBody
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatal(err)
	}
	details := body.Error.Details.([]interface{})
	if len(details) != 3 {
		t.Errorf("expected 3 field errors, got %d", len(details))
	}
}

func TestHandlerCreateAppointment_BadDate(t *testing.T) {
	f := newFixture(weekdayAgenda())
	e := setupEcho(f)

	payload := fmt.Sprintf(`{"patientId":%q,"doctorId":%q,"appointmentAt":"amanhã às 10"}`,
		f.patient.ID, f.doctor.ID)
	req := httptest.NewRequest(http.MethodPost, "/api/appointments", strings.NewReader(payload))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestHandlerCancel(t *testing.T) {
	f := newFixture(weekdayAgenda())
	at := tuesdayAt(14, 30)
	id := seedAppointment(f, StatusScheduled, at)
	f.svc.now = func() time.Time { return at.Add(-3 * time.Hour) }
	e := setupEcho(f)

	req := httptest.NewRequest(http.MethodPatch, "/api/appointments/"+id.String()+"/cancel", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var body web.Envelope
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatal(err)
	}
	if body.Message != "Agendamento cancelado com sucesso" {
		t.Errorf("message = %q", body.Message)
	}
	data := body.Data.(map[string]interface{})
	if data["status"] != "Cancelado" {
		t.Errorf("status = %v", data["status"])
	}
}

func TestHandlerCancel_TooLate(t *testing.T) {
	f := newFixture(weekdayAgenda())
	at := tuesdayAt(14, 30)
	id := seedAppointment(f, StatusScheduled, at)
	f.svc.now = func() time.Time { return at.Add(-30 * time.Minute) }
	e := setupEcho(f)

	req := httptest.NewRequest(http.MethodPatch, "/api/appointments/"+id.String()+"/cancel", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestHandlerCancel_InvalidID(t *testing.T) {
	f := newFixture(weekdayAgenda())
	e := setupEcho(f)

	req := httptest.NewRequest(http.MethodPatch, "/api/appointments/nope/cancel", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestHandlerList(t *testing.T) {
	f := newFixture(weekdayAgenda())
	seedAppointment(f, StatusScheduled, tuesdayAt(14, 30))
	e := setupEcho(f)

	req := httptest.NewRequest(http.MethodGet, "/api/appointments", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var body web.Envelope
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatal(err)
	}
	items := body.Data.([]interface{})
	if len(items) != 1 {
		t.Fatalf("expected 1 appointment, got %d", len(items))
	}
	meta := body.Meta.(map[string]interface{})
	if meta["total"].(float64) != 1 {
		t.Errorf("total = %v", meta["total"])
	}
}
