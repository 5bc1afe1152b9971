package controllers_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveFinancialDataCreateThenUpdate(t *testing.T) {
	st := newFakeStore()
	r, _ := newRouter(st, fakeGen{})
	token := registerUser(t, r, "fin@example.com")

	w := doJSON(t, r, "POST", "/api/financial-data", token, samplePayload())
	require.Equal(t, http.StatusCreated, w.Code)
	body := decode(t, w)
	assert.Equal(t, "Financial data created successfully", body["message"])

	data := body["data"].(map[string]any)
	assert.Equal(t, 50000.0, data["salary"])
	assert.Equal(t, 31000.0, data["total_expenses"])
	assert.Equal(t, 19000.0, data["monthly_savings"])
	assert.Equal(t, 38.0, data["savings_rate"])
	assert.Equal(t, "Bangalore", data["city"])

	// Second identical call overwrites in place: 200, one stored profile.
	w = doJSON(t, r, "POST", "/api/financial-data", token, samplePayload())
	require.Equal(t, http.StatusOK, w.Code)
	body = decode(t, w)
	assert.Equal(t, "Financial data updated successfully", body["message"])
	assert.Len(t, st.profiles, 1)

	again := body["data"].(map[string]any)
	assert.Equal(t, data["id"], again["id"])
	assert.Equal(t, data["salary"], again["salary"])
}

func TestSaveFinancialDataDefaults(t *testing.T) {
	r, _ := newRouter(newFakeStore(), fakeGen{})
	token := registerUser(t, r, "defaults@example.com")

	w := doJSON(t, r, "POST", "/api/financial-data", token, map[string]any{"salary": 20000})
	require.Equal(t, http.StatusCreated, w.Code)

	data := decode(t, w)["data"].(map[string]any)
	assert.Equal(t, 0.0, data["rent"])
	assert.Equal(t, 0.0, data["savings_goal"])
	assert.Nil(t, data["job_type"])
	assert.Nil(t, data["city"])
}

func TestGetFinancialData(t *testing.T) {
	r, _ := newRouter(newFakeStore(), fakeGen{})
	token := registerUser(t, r, "get@example.com")

	w := doJSON(t, r, "GET", "/api/financial-data", token, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "No financial data found", decode(t, w)["error"])

	doJSON(t, r, "POST", "/api/financial-data", token, samplePayload())

	w = doJSON(t, r, "GET", "/api/financial-data", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	data := decode(t, w)["data"].(map[string]any)
	assert.Equal(t, 50000.0, data["salary"])
}

func TestExportFinancialData(t *testing.T) {
	r, _ := newRouter(newFakeStore(), fakeGen{})
	token := registerUser(t, r, "export@example.com")

	w := doJSON(t, r, "GET", "/api/financial-data/export", token, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	doJSON(t, r, "POST", "/api/financial-data", token, samplePayload())

	w = doJSON(t, r, "GET", "/api/financial-data/export", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Header().Get("Content-Disposition"), "financial-report.xlsx")
	assert.NotEmpty(t, w.Body.Bytes())
}
