package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	stderrors "errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/timetable-editor/internal/config"
	delivery "github.com/timetable-editor/internal/delivery/http"
	"github.com/timetable-editor/internal/delivery/http/handler"
	"github.com/timetable-editor/internal/domain"
	"github.com/timetable-editor/internal/repository/memory"
	"github.com/timetable-editor/internal/usecase"
	"github.com/timetable-editor/internal/usecase/dto"
)

type envelope struct {
	Data  json.RawMessage `json:"data"`
	Error *struct {
		Code    string                 `json:"code"`
		Message string                 `json:"message"`
		Details map[string]interface{} `json:"details"`
	} `json:"error"`
}

func newTestServer(t *testing.T, health map[string]delivery.HealthCheck) *delivery.Server {
	t.Helper()

	logger := zap.NewNop()
	store := memory.NewSeededStore()
	syncUC := usecase.NewSyncUseCase(store, logger)
	rulesUC := usecase.NewRulesUseCase(syncUC, logger)
	editorUC := usecase.NewEditorUseCase(syncUC, store, nil, nil, time.Minute, logger)
	auditUC := usecase.NewAuditUseCase(store, logger)

	cfg := &config.Config{Server: config.ServerConfig{Host: "127.0.0.1", Port: 0, CORSAllowOrigins: "*"}}

	return delivery.NewServer(cfg, logger, health,
		handler.NewTimetableHandler(rulesUC, editorUC, auditUC, logger),
		handler.NewRulesHandler(rulesUC, logger),
		handler.NewSessionHandler(editorUC, logger),
	)
}

func do(t *testing.T, srv *delivery.Server, method, path string, body interface{}) (int, envelope) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")

	resp, err := srv.App().Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	var env envelope
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&env))
	return resp.StatusCode, env
}

func TestServer_Health(t *testing.T) {
	srv := newTestServer(t, map[string]delivery.HealthCheck{
		"store": func(ctx context.Context) error { return nil },
	})
	req := httptest.NewRequest(http.MethodGet, "/api/v1/health", nil)
	resp, err := srv.App().Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	degraded := newTestServer(t, map[string]delivery.HealthCheck{
		"redis": func(ctx context.Context) error { return stderrors.New("connection refused") },
	})
	resp, err = degraded.App().Test(httptest.NewRequest(http.MethodGet, "/api/v1/health", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
}

func TestServer_Stations(t *testing.T) {
	srv := newTestServer(t, nil)

	status, env := do(t, srv, http.MethodGet, "/api/v1/stations", nil)
	require.Equal(t, http.StatusOK, status)

	var stations []domain.Station
	require.NoError(t, json.Unmarshal(env.Data, &stations))
	require.Len(t, stations, len(memory.LineStations()))
	assert.Equal(t, "karuizawa", stations[0].ID)
}

func TestServer_AnalyzeIdentifier(t *testing.T) {
	srv := newTestServer(t, nil)

	status, env := do(t, srv, http.MethodGet, "/api/v1/identifiers/1611M", nil)
	require.Equal(t, http.StatusOK, status)

	var analysis domain.IdentifierAnalysis
	require.NoError(t, json.Unmarshal(env.Data, &analysis))
	assert.Equal(t, domain.DirectionDown, analysis.Direction)

	status, env = do(t, srv, http.MethodGet, "/api/v1/identifiers/abc", nil)
	require.Equal(t, http.StatusOK, status)
	require.NoError(t, json.Unmarshal(env.Data, &analysis))
	assert.False(t, analysis.Valid)
	assert.Equal(t, "unknown", analysis.Label)
}

func TestServer_ValidateReportsField(t *testing.T) {
	srv := newTestServer(t, nil)

	status, env := do(t, srv, http.MethodPost, "/api/v1/rules/validate", dto.ValidateRequest{
		Stops: []domain.Stop{{StationID: "komoro", Arrival: "24:10"}},
	})
	assert.Equal(t, http.StatusUnprocessableEntity, status)
	require.NotNil(t, env.Error)
	assert.Equal(t, "INVALID_TIME", env.Error.Code)
	assert.Equal(t, "komoro", env.Error.Details["station_id"])
	assert.Equal(t, "arrival", env.Error.Details["field"])
}

func TestServer_AutofillNoSeed(t *testing.T) {
	srv := newTestServer(t, nil)

	status, env := do(t, srv, http.MethodPost, "/api/v1/rules/autofill", dto.AutofillRequest{
		Direction: domain.DirectionDown,
		Rows:      []domain.EditorRow{{StationID: "karuizawa", Checked: true}},
	})
	assert.Equal(t, http.StatusUnprocessableEntity, status)
	require.NotNil(t, env.Error)
	assert.Equal(t, "NO_SEED_TIME", env.Error.Code)
}

func TestServer_RejectsMalformedBody(t *testing.T) {
	srv := newTestServer(t, nil)

	status, env := do(t, srv, http.MethodPost, "/api/v1/rules/classify", map[string]string{"station_id": "komoro"})
	assert.Equal(t, http.StatusBadRequest, status)
	require.NotNil(t, env.Error)
	assert.Equal(t, "INVALID_REQUEST", env.Error.Code)
}

func TestServer_SessionFlow(t *testing.T) {
	srv := newTestServer(t, nil)

	status, env := do(t, srv, http.MethodPost, "/api/v1/sessions", nil)
	require.Equal(t, http.StatusCreated, status)
	var sess dto.SessionResponse
	require.NoError(t, json.Unmarshal(env.Data, &sess))
	base := "/api/v1/sessions/" + sess.ID.String()

	status, env = do(t, srv, http.MethodPost, base+"/load", dto.LoadRequest{TrainID: "1234M"})
	require.Equal(t, http.StatusOK, status)
	require.NoError(t, json.Unmarshal(env.Data, &sess))
	assert.True(t, sess.IsNew)
	assert.Equal(t, domain.DirectionUp, sess.Train.Direction)

	rows := sess.Rows
	for i := range rows {
		if rows[i].StationID == "komoro" {
			rows[i].Checked = true
			rows[i].Departure = "09:15"
		}
	}

	status, env = do(t, srv, http.MethodPost, base+"/dirty", dto.DirtyRequest{Dirty: true})
	require.Equal(t, http.StatusOK, status)

	status, env = do(t, srv, http.MethodPost, base+"/load", dto.LoadRequest{TrainID: "1611M"})
	assert.Equal(t, http.StatusConflict, status)
	require.NotNil(t, env.Error)
	assert.Equal(t, "UNSAVED_CHANGES", env.Error.Code)

	status, env = do(t, srv, http.MethodPost, base+"/save", dto.SaveRequest{Rows: rows})
	require.Equal(t, http.StatusOK, status)
	var result dto.SyncResponse
	require.NoError(t, json.Unmarshal(env.Data, &result))
	assert.Equal(t, "1234M", result.TrainID)

	status, env = do(t, srv, http.MethodGet, "/api/v1/trains/1234M", nil)
	require.Equal(t, http.StatusOK, status)
	var train dto.TrainResponse
	require.NoError(t, json.Unmarshal(env.Data, &train))
	require.True(t, train.Found)
	require.Len(t, train.Train.Stops, 1)

	status, env = do(t, srv, http.MethodGet, "/api/v1/trains/1234M/consistency", nil)
	require.Equal(t, http.StatusOK, status)
	var report domain.ConsistencyReport
	require.NoError(t, json.Unmarshal(env.Data, &report))
	assert.True(t, report.Consistent)

	status, _ = do(t, srv, http.MethodDelete, base+"/train", nil)
	require.Equal(t, http.StatusOK, status)

	status, env = do(t, srv, http.MethodGet, "/api/v1/trains?filter=1234", nil)
	require.Equal(t, http.StatusOK, status)
	var trains []domain.TrainSummary
	require.NoError(t, json.Unmarshal(env.Data, &trains))
	assert.Empty(t, trains)
}

func TestServer_UnknownSession(t *testing.T) {
	srv := newTestServer(t, nil)

	status, env := do(t, srv, http.MethodGet, "/api/v1/sessions/not-a-uuid", nil)
	assert.Equal(t, http.StatusNotFound, status)
	require.NotNil(t, env.Error)
	assert.Equal(t, "SESSION_NOT_FOUND", env.Error.Code)
}
