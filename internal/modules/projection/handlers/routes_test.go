package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aristath/pharmacast/internal/modules/projection"
)

func testRouter() *chi.Mux {
	log := zerolog.New(nil).Level(zerolog.Disabled)
	h := NewHandler(projection.NewService(log), log)

	r := chi.NewRouter()
	r.Route("/api", func(r chi.Router) {
		h.RegisterRoutes(r)
	})
	return r
}

func postJSON(t *testing.T, router *chi.Mux, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	data, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestHandleComputeValid(t *testing.T) {
	router := testRouter()

	rec := postJSON(t, router, "/api/projection", projection.Assumptions{
		PeakSales:   1000,
		Probability: 0.5,
		RampYears:   2,
		CostRatio:   0.4,
		Investment:  200,
		Horizon:     5,
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var result projection.Projection
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))

	assert.Len(t, result.Years, 5)
	assert.Equal(t, 2, result.BreakEvenYear)
	assert.True(t, result.BreakEvenReached)
}

func TestHandleComputeInvalidAssumptionNamesField(t *testing.T) {
	router := testRouter()

	rec := postJSON(t, router, "/api/projection", projection.Assumptions{
		PeakSales:   1000,
		Probability: 1.5,
		RampYears:   2,
		CostRatio:   0.4,
		Investment:  200,
		Horizon:     5,
	})
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var resp errorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "probability", resp.Field)
	assert.Contains(t, resp.Error, "probability")
}

func TestHandleComputeMalformedBody(t *testing.T) {
	router := testRouter()

	req := httptest.NewRequest(http.MethodPost, "/api/projection", strings.NewReader("{not json"))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleDefaults(t *testing.T) {
	router := testRouter()

	req := httptest.NewRequest(http.MethodGet, "/api/projection/defaults", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp DefaultsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	assert.Equal(t, projection.DefaultAssumptions(), resp.Assumptions)
	assert.Contains(t, resp.Ranges, "probability")
}

func TestHandleExportCSV(t *testing.T) {
	router := testRouter()

	rec := postJSON(t, router, "/api/projection/csv", projection.DefaultAssumptions())
	require.Equal(t, http.StatusOK, rec.Code)

	assert.Equal(t, "text/csv", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "ianalumab_model.csv")
	assert.True(t, strings.HasPrefix(rec.Body.String(), "Year,"))
}

func TestHandleExportCSVInvalidAssumptions(t *testing.T) {
	router := testRouter()

	a := projection.DefaultAssumptions()
	a.CostRatio = 2

	rec := postJSON(t, router, "/api/projection/csv", a)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var resp errorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "cost_ratio", resp.Field)
}
