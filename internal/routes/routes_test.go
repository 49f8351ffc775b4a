package routes_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/salon-booking/internal/audit"
	"github.com/BruksfildServices01/salon-booking/internal/auth"
	"github.com/BruksfildServices01/salon-booking/internal/config"
	"github.com/BruksfildServices01/salon-booking/internal/db"
	"github.com/BruksfildServices01/salon-booking/internal/infra/memory"
	"github.com/BruksfildServices01/salon-booking/internal/models"
	"github.com/BruksfildServices01/salon-booking/internal/routes"
)

type testServer struct {
	router *gin.Engine
	store  *memory.Store
	tokens *auth.TokenIssuer
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store := memory.NewStore()
	require.NoError(t, db.Seed(context.Background(),
		db.SeedRepos{Users: store, Catalog: store, Templates: store},
		db.SeedAdmin{Username: "admin", Password: "admin123"},
	))

	sink := audit.NewMemorySink()
	dispatcher := audit.NewDispatcher(nil, sink)
	t.Cleanup(dispatcher.Close)

	tokens := auth.NewTokenIssuer("test-secret", time.Hour)

	r := gin.New()
	routes.RegisterRoutes(r, routes.Deps{
		Config: &config.Config{
			Timezone:    "Europe/Lisbon",
			CORSOrigins: []string{"*"},
		},
		Appointments: store,
		Clients:      store,
		Catalog:      store,
		Templates:    store,
		Users:        store,
		Reports:      store,
		Audit:        dispatcher,
		AuditLogs:    sink,
		Tokens:       tokens,
	})

	return &testServer{router: r, store: store, tokens: tokens}
}

func (s *testServer) do(t *testing.T, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func (s *testServer) adminToken(t *testing.T) string {
	t.Helper()
	w := s.do(t, http.MethodPost, "/api/auth/login", "", gin.H{"username": "admin", "password": "admin123"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var res struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	require.NotEmpty(t, res.Token)
	return res.Token
}

func (s *testServer) serviceID(t *testing.T, name string) uint {
	t.Helper()
	services, err := s.store.ListServices(context.Background())
	require.NoError(t, err)
	for _, svc := range services {
		if svc.Name == name {
			return svc.ID
		}
	}
	t.Fatalf("service %q not seeded", name)
	return 0
}

func errorCode(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var body struct {
		Code string `json:"error_code"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body), w.Body.String())
	return body.Code
}

func TestHealth(t *testing.T) {
	s := newTestServer(t)

	w := s.do(t, http.MethodGet, "/health", "", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
}

func TestPublicBookingFlow(t *testing.T) {
	s := newTestServer(t)
	nailArt := s.serviceID(t, "Nail Art")

	w := s.do(t, http.MethodPost, "/api/appointments", "", gin.H{
		"serviceId": nailArt,
		"date":      "2025-06-10T14:30",
		"notes":     "francesinha",
		"status":    "confirmed",
		"client": gin.H{
			"name":  "Ana Silva",
			"email": "ana@example.com",
			"phone": "912345678",
		},
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var ap models.Appointment
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &ap))
	assert.Equal(t, "pending", ap.Status)
	assert.Equal(t, nailArt, ap.ServiceID)
	assert.NotZero(t, ap.ClientID)

	lisbon, _ := time.LoadLocation("Europe/Lisbon")
	assert.True(t, ap.Date.Equal(time.Date(2025, 6, 10, 14, 30, 0, 0, lisbon)))

	token := s.adminToken(t)
	w = s.do(t, http.MethodGet, "/api/appointments-with-details", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var details []map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &details))
	require.Len(t, details, 1)
}

func TestBookingValidation(t *testing.T) {
	s := newTestServer(t)

	w := s.do(t, http.MethodPost, "/api/appointments", "", gin.H{
		"serviceId": s.serviceID(t, "Gel Simples"),
		"date":      "amanhã",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "invalid_request", errorCode(t, w))
}

func TestAdminRoutesRequireAdminToken(t *testing.T) {
	s := newTestServer(t)

	w := s.do(t, http.MethodGet, "/api/appointments", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "authentication_required", errorCode(t, w))

	w = s.do(t, http.MethodGet, "/api/appointments", "not-a-token", nil)
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, "invalid_token", errorCode(t, w))

	staff := &models.User{Username: "recepcao", PasswordHash: "x"}
	require.NoError(t, s.store.CreateUser(context.Background(), staff))
	staffToken, err := s.tokens.Issue(staff)
	require.NoError(t, err)

	w = s.do(t, http.MethodGet, "/api/appointments", staffToken, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, "admin_required", errorCode(t, w))

	w = s.do(t, http.MethodGet, "/api/appointments", s.adminToken(t), nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, "[]", w.Body.String())
}

func TestLoginRejectsWrongPassword(t *testing.T) {
	s := newTestServer(t)

	w := s.do(t, http.MethodPost, "/api/auth/login", "", gin.H{"username": "admin", "password": "nope"})

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "invalid_credentials", errorCode(t, w))
}

func TestMeReturnsAdmin(t *testing.T) {
	s := newTestServer(t)

	w := s.do(t, http.MethodGet, "/api/auth/me", s.adminToken(t), nil)
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		User models.User `json:"user"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "admin", body.User.Username)
	assert.True(t, body.User.IsAdmin)
}

func TestUnknownAppointmentIs404(t *testing.T) {
	s := newTestServer(t)

	w := s.do(t, http.MethodGet, "/api/appointments/999", s.adminToken(t), nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "appointment_not_found", errorCode(t, w))
}

func TestAdminStatusTransition(t *testing.T) {
	s := newTestServer(t)
	token := s.adminToken(t)

	w := s.do(t, http.MethodPost, "/api/appointments", "", gin.H{
		"serviceId": s.serviceID(t, "Gel Simples"),
		"date":      "2025-06-11T10:00",
		"client":    gin.H{"name": "Bia", "email": "bia@example.com", "phone": "+351 912 000 111"},
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var ap models.Appointment
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &ap))

	w = s.do(t, http.MethodPatch, "/api/admin/appointments/"+itoa(ap.ID)+"/status", token, gin.H{"status": "confirmed"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = s.do(t, http.MethodGet, "/api/appointments/status/confirmed", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var confirmed []models.Appointment
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &confirmed))
	require.Len(t, confirmed, 1)
	assert.Equal(t, ap.ID, confirmed[0].ID)

	w = s.do(t, http.MethodPatch, "/api/admin/appointments/"+itoa(ap.ID)+"/status", token, gin.H{"status": "done"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCatalogIsPublic(t *testing.T) {
	s := newTestServer(t)

	w := s.do(t, http.MethodGet, "/api/services-with-categories", "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var list []map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	assert.Len(t, list, 3)

	w = s.do(t, http.MethodPost, "/api/services", "", gin.H{"name": "X"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestPaymentLinkWithoutGateway(t *testing.T) {
	s := newTestServer(t)
	token := s.adminToken(t)

	w := s.do(t, http.MethodPost, "/api/appointments", "", gin.H{
		"serviceId": s.serviceID(t, "Nail Art"),
		"date":      "2025-06-10T14:30",
		"client":    gin.H{"name": "Ana Silva", "email": "ana@example.com", "phone": "912345678"},
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var ap models.Appointment
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &ap))

	w = s.do(t, http.MethodPost, "/api/appointments/"+itoa(ap.ID)+"/payment-link", token, nil)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func itoa(id uint) string {
	b, _ := json.Marshal(id)
	return string(b)
}
