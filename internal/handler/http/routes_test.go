package http

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-pocket-money/internal/service"
	"github.com/MKhiriev/go-pocket-money/models"
)

type routeCase struct {
	method string
	path   string
}

var publicRoutes = []routeCase{
	{http.MethodPost, "/api/auth/login"},
	{http.MethodGet, "/api/version/"},
	{http.MethodGet, "/api/categories"},
	{http.MethodGet, "/api/leaderboard"},
	{http.MethodGet, "/api/chat/models"},
}

var protectedRoutes = []routeCase{
	{http.MethodPost, "/api/entries/"},
	{http.MethodGet, "/api/entries/expense"},
	{http.MethodGet, "/api/entries/income/daily"},
	{http.MethodGet, "/api/summary"},
	{http.MethodGet, "/api/progress"},
	{http.MethodGet, "/api/feedback"},
	{http.MethodGet, "/api/wishlist/"},
	{http.MethodPut, "/api/wishlist/"},
	{http.MethodDelete, "/api/wishlist/"},
	{http.MethodGet, "/api/wishlist/thumbnail"},
	{http.MethodPost, "/api/chat"},
	{http.MethodPost, "/api/chat/ping"},
}

func TestInit_ProtectedRoutes_RequireAuth(t *testing.T) {
	h, _ := newTestHandler(t)
	router := h.Init()

	for _, tc := range protectedRoutes {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(tc.method, tc.path, nil))

			assert.Equal(t, http.StatusUnauthorized, rec.Code)
		})
	}
}

func TestInit_PublicRoutes_Registered(t *testing.T) {
	h, m := newTestHandler(t)
	m.auth.EXPECT().Login(gomock.Any(), gomock.Any()).Return(models.User{}, service.ErrInvalidInput).AnyTimes()
	m.appInfo.EXPECT().GetAppVersion(gomock.Any()).Return("1.0.0").AnyTimes()
	m.ledger.EXPECT().Categories(gomock.Any()).Return(models.Categories{}).AnyTimes()
	m.leaderboard.EXPECT().TopN(gomock.Any(), 0).Return(nil, nil).AnyTimes()
	m.chat.EXPECT().Models().Return(models.ChatModels{}).AnyTimes()

	router := h.Init()

	for _, tc := range publicRoutes {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(tc.method, tc.path, strings.NewReader(`{}`)))

			assert.NotEqual(t, http.StatusNotFound, rec.Code)
			assert.NotEqual(t, http.StatusUnauthorized, rec.Code)
		})
	}
}

func TestInit_ProtectedRoute_PassesWithValidToken(t *testing.T) {
	h, m := newTestHandler(t)
	m.auth.EXPECT().ParseToken(gomock.Any(), "stub-token").Return(models.Token{Username: "mia"}, nil)
	m.progression.EXPECT().Report(gomock.Any(), "mia").Return(models.ProgressReport{Username: "mia", Level: 2}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/progress", nil)
	req.Header.Set("Authorization", "Bearer stub-token")
	rec := httptest.NewRecorder()
	h.Init().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"username":"mia"`)
}

func TestInit_UnknownRoutes_Return404(t *testing.T) {
	h, _ := newTestHandler(t)
	router := h.Init()

	for _, path := range []string{"/api/nonexistent", "/api/data/", "/api/entries/expense/weekly"} {
		t.Run(path, func(t *testing.T) {
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
			assert.Equal(t, http.StatusNotFound, rec.Code)
		})
	}
}

func TestInit_WrongMethod_Returns404NotMethodNotAllowed(t *testing.T) {
	h, _ := newTestHandler(t)
	router := h.Init()

	cases := []routeCase{
		{http.MethodPost, "/api/version/"},
		{http.MethodDelete, "/api/auth/login"},
		{http.MethodPost, "/api/summary"},
		{http.MethodPatch, "/api/wishlist/"},
		{http.MethodGet, "/api/chat"},
	}

	for _, tc := range cases {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(tc.method, tc.path, nil))
			assert.Equal(t, http.StatusNotFound, rec.Code)
		})
	}
}

func TestInit_TraceIDHeader(t *testing.T) {
	h, m := newTestHandler(t)
	m.appInfo.EXPECT().GetAppVersion(gomock.Any()).Return("1.0.0").Times(2)
	router := h.Init()

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/version/", nil))
	assert.NotEmpty(t, rec.Header().Get(traceIDHeader))

	req := httptest.NewRequest(http.MethodGet, "/api/version/", nil)
	req.Header.Set(traceIDHeader, "client-trace")
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, "client-trace", rec.Header().Get(traceIDHeader))
}
