package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/BruksfildServices01/salon-booking/internal/auth"
)

type stubParser map[string]auth.Principal

func (s stubParser) Parse(raw string) (auth.Principal, error) {
	p, ok := s[raw]
	if !ok {
		return auth.Principal{}, errors.New("bad token")
	}
	return p, nil
}

func newRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RequestID())

	tokens := stubParser{
		"admin-token": {UserID: 1, Username: "admin", IsAdmin: true},
		"staff-token": {UserID: 2, Username: "staff"},
	}
	r.GET("/admin", RequireAdmin(tokens), func(c *gin.Context) {
		p, ok := PrincipalFrom(c)
		if !ok {
			c.Status(http.StatusInternalServerError)
			return
		}
		c.JSON(http.StatusOK, gin.H{"user": p.Username, "actor": *ActorID(c)})
	})
	return r
}

func TestRequireAdmin(t *testing.T) {
	r := newRouter()

	cases := []struct {
		name   string
		header string
		status int
		code   string
	}{
		{"missing", "", http.StatusUnauthorized, "authentication_required"},
		{"not bearer", "Basic abc", http.StatusUnauthorized, "authentication_required"},
		{"invalid", "Bearer nope", http.StatusForbidden, "invalid_token"},
		{"not admin", "Bearer staff-token", http.StatusForbidden, "admin_required"},
		{"admin", "Bearer admin-token", http.StatusOK, ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/admin", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, tc.status, w.Code)
			if tc.code != "" {
				assert.Contains(t, w.Body.String(), tc.code)
			} else {
				assert.JSONEq(t, `{"user":"admin","actor":1}`, w.Body.String())
			}
		})
	}
}

func TestRequestIDIsEchoedOrGenerated(t *testing.T) {
	r := newRouter()

	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	req.Header.Set(HeaderRequestID, "abc-123")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, "abc-123", w.Header().Get(HeaderRequestID))

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/admin", nil))
	assert.Len(t, w.Header().Get(HeaderRequestID), 36)
}

func TestCORSPreflight(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(CORS([]string{"https://salon.example"}))
	r.GET("/x", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodOptions, "/x", nil)
	req.Header.Set("Origin", "https://salon.example")
	req.Header.Set("Access-Control-Request-Method", "GET")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "https://salon.example", w.Header().Get("Access-Control-Allow-Origin"))
}
