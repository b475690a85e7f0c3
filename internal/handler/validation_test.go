package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
)

// post builds an echo context carrying a JSON body and returns it with the
// recorder capturing the response.
func post(t *testing.T, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestBookingRejectsMissingFields(t *testing.T) {
	h := &AppointmentHandler{}
	cases := []struct {
		name string
		body string
	}{
		{"empty body", `{}`},
		{"no vehicle", `{"customerId":1,"serviceTypeId":2}`},
		{"no model", `{"customerId":1,"serviceTypeId":2,"vehicle":{"make":"Toyota"}}`},
		{"no service type", `{"customerId":1,"vehicle":{"make":"Toyota","model":"Corolla"}}`},
		{"no customer", `{"serviceTypeId":2,"vehicle":{"make":"Toyota","model":"Corolla"}}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c, rec := post(t, "/v1/appointments", tc.body)
			if err := h.Create(c); err != nil {
				t.Fatalf("handler returned error: %v", err)
			}
			if rec.Code != http.StatusBadRequest {
				t.Fatalf("status = %d, want 400", rec.Code)
			}
			if !strings.Contains(rec.Body.String(), "Missing required fields") {
				t.Fatalf("body = %s, want missing-fields error", rec.Body.String())
			}
		})
	}
}

func TestBookingRejectsBadPreferredStart(t *testing.T) {
	h := &AppointmentHandler{}
	c, rec := post(t, "/v1/appointments",
		`{"customerId":1,"serviceTypeId":2,"vehicle":{"make":"Toyota","model":"Corolla"},"preferredStart":"next tuesday"}`)
	if err := h.Create(c); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestStatusUpdateRejectsUnknownStatus(t *testing.T) {
	h := &AppointmentHandler{}
	c, rec := post(t, "/v1/appointments/5/status", `{"status":"paused"}`)
	c.SetParamNames("id")
	c.SetParamValues("5")
	if err := h.UpdateStatus(c); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Invalid status") {
		t.Fatalf("body = %s, want invalid-status error", rec.Body.String())
	}
}

func TestStatusUpdateRejectsBadID(t *testing.T) {
	h := &AppointmentHandler{}
	c, rec := post(t, "/v1/appointments/abc/status", `{"status":"completed"}`)
	c.SetParamNames("id")
	c.SetParamValues("abc")
	if err := h.UpdateStatus(c); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestCustomerCreateRequiresName(t *testing.T) {
	h := &CustomerHandler{}
	c, rec := post(t, "/v1/customers", `{"name":"  "}`)
	if err := h.Create(c); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestVehicleCreateRequiresCustomerMakeModel(t *testing.T) {
	h := &VehicleHandler{}
	c, rec := post(t, "/v1/vehicles", `{"make":"Honda"}`)
	if err := h.Create(c); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestParsePreferredStartAcceptsZoneLessForms(t *testing.T) {
	want := time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)
	for _, in := range []string{
		"2024-01-01T10:00",
		"2024-01-01T10:00:00",
		"2024-01-01T10:00:00Z",
	} {
		got, err := parsePreferredStart(in)
		if err != nil {
			t.Fatalf("parsePreferredStart(%q): %v", in, err)
		}
		if !got.Equal(want) {
			t.Errorf("parsePreferredStart(%q) = %v, want %v", in, got, want)
		}
	}
	if _, err := parsePreferredStart("next tuesday"); err == nil {
		t.Error("parsePreferredStart accepted garbage input")
	}
}

func TestNormalizeSkillCoercesUnknownToMid(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"junior", "junior"},
		{"mid", "mid"},
		{" senior ", "senior"},
		{"", "mid"},
		{"wizard", "mid"},
		{"expert", "mid"},
		{"SENIOR", "mid"},
	}
	for _, tc := range cases {
		if got := normalizeSkill(tc.in); got != tc.want {
			t.Errorf("normalizeSkill(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestTechnicianCreateStillRequiresName(t *testing.T) {
	h := &TechnicianHandler{}
	c, rec := post(t, "/v1/technicians", `{"skill_level":"senior"}`)
	if err := h.Create(c); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestServiceTypeCreateRequiresPositiveDuration(t *testing.T) {
	h := &ServiceTypeHandler{}
	c, rec := post(t, "/v1/service-types", `{"name":"Detailing","duration_minutes":0}`)
	if err := h.Create(c); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}
