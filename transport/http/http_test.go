package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"tempo/config"
	"tempo/infras/otel/mocks"
	datetimeMocks "tempo/internal/domains/datetime/mocks"
	"tempo/internal/domains/datetime/model/dto"
	"tempo/internal/handlers/datetime"
	"tempo/shared/constant"
	"tempo/transport/http/middleware"
	"tempo/transport/http/router"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestServer(t *testing.T, cfg *config.Config) (*HTTP, *datetimeMocks.MockDateTime) {
	t.Helper()

	ctrl := gomock.NewController(t)
	svc := datetimeMocks.NewMockDateTime(ctrl)
	ot := mocks.NewOtel()

	r := router.New(router.DomainHandlers{DateTime: datetime.New(svc, ot)})
	server := New(cfg, r, middleware.NewAppMiddleware(ot, cfg, nil), ot)

	return server, svc
}

func TestHealth_FollowsServerState(t *testing.T) {
	server, _ := newTestServer(t, &config.Config{})

	recorder := httptest.NewRecorder()
	server.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/health", nil))

	require.Equal(t, http.StatusOK, recorder.Code)

	var body struct {
		Data Health `json:"data"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	assert.Equal(t, constant.ResponseHealthy, body.Data.Status)
	assert.Equal(t, "UTC", body.Data.Zone)
	assert.NotEmpty(t, body.Data.Time)
	assert.NotEmpty(t, recorder.Header().Get(constant.RequestHeaderRequestID))

	server.setState(ServerStateInGracePeriod)

	recorder = httptest.NewRecorder()
	server.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusServiceUnavailable, recorder.Code)
	assert.Contains(t, recorder.Body.String(), constant.ResponseErrorPrepareShutdown)

	server.setState(ServerStateInCleanupPeriod)

	recorder = httptest.NewRecorder()
	server.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusServiceUnavailable, recorder.Code)
	assert.Contains(t, recorder.Body.String(), constant.ResponseErrorUnhealthy)
}

func TestRoutes_Mounted(t *testing.T) {
	server, svc := newTestServer(t, &config.Config{})

	svc.EXPECT().
		Now(gomock.Any(), dto.NowRequest{Zone: "Asia/Tokyo"}).
		Return(dto.DateTimeResponse{Zone: "Asia/Tokyo"}, nil)

	recorder := httptest.NewRecorder()
	server.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/v1/datetime/now?zone=Asia%2FTokyo", nil))

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, ServerStateReady, server.State())

	recorder = httptest.NewRecorder()
	server.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/v1/unknown", nil))

	assert.Equal(t, http.StatusNotFound, recorder.Code)
	assert.JSONEq(t, `{"error":"ROUTE NOT FOUND"}`, recorder.Body.String())
}

func TestRoutes_NotFoundEnvelope(t *testing.T) {
	server, _ := newTestServer(t, &config.Config{})

	for _, path := range []string{"/unknown", "/v1/datetime/later", "/swaggerx"} {
		recorder := httptest.NewRecorder()
		server.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, path, nil))

		assert.Equal(t, http.StatusNotFound, recorder.Code, path)
		assert.Equal(t, "application/json", recorder.Header().Get("Content-Type"), path)

		var body struct {
			Error string `json:"error"`
		}
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body), path)
		assert.Equal(t, constant.ResponseErrorRouteNotFound, body.Error, path)
	}
}

func TestSwagger_ServesDocument(t *testing.T) {
	server, _ := newTestServer(t, &config.Config{})

	recorder := httptest.NewRecorder()
	server.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/swagger/doc.json", nil))

	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "/v1/datetime/now")
}

func TestCORS_Preflight(t *testing.T) {
	cfg := &config.Config{}
	cfg.App.CORS.Enable = true
	cfg.App.CORS.AllowedOrigins = []string{"https://example.com"}
	cfg.App.CORS.AllowedMethods = []string{http.MethodGet, http.MethodPost}

	server, _ := newTestServer(t, cfg)

	request := httptest.NewRequest(http.MethodOptions, "/v1/datetime/now", nil)
	request.Header.Set("Origin", "https://example.com")
	request.Header.Set("Access-Control-Request-Method", http.MethodGet)

	recorder := httptest.NewRecorder()
	server.ServeHTTP(recorder, request)

	assert.Equal(t, "https://example.com", recorder.Header().Get("Access-Control-Allow-Origin"))
}
