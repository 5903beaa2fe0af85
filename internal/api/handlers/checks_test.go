package handlers_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/jroosing/hydrazone/internal/api/handlers"
	"github.com/jroosing/hydrazone/internal/api/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChecks_ListGetPurge(t *testing.T) {
	h, _ := createTestHandler(t)
	r := setupTestRouter(h)

	for _, line := range []string{"a A 192.0.2.1", "b A 192.0.2.2", "c BOGUS x"} {
		body, err := json.Marshal(models.ParseRowRequest{Line: line})
		require.NoError(t, err)
		performRequest(r, http.MethodPost, "/api/v1/rows/parse", string(body))
	}

	w := performRequest(r, http.MethodGet, "/api/v1/checks?limit=2", "")
	require.Equal(t, http.StatusOK, w.Code)

	var list models.CheckListResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	assert.Equal(t, 2, list.Count)
	require.Len(t, list.Checks, 2)

	id := list.Checks[0].ID
	w = performRequest(r, http.MethodGet, "/api/v1/checks/"+id, "")
	require.Equal(t, http.StatusOK, w.Code)

	var check models.Check
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &check))
	assert.Equal(t, id, check.ID)
	assert.Equal(t, "api", check.Source)

	w = performRequest(r, http.MethodDelete, "/api/v1/checks", "")
	require.Equal(t, http.StatusOK, w.Code)

	var purge models.PurgeResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &purge))
	assert.Equal(t, int64(3), purge.Deleted)

	w = performRequest(r, http.MethodGet, "/api/v1/checks", "")
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	assert.Zero(t, list.Count)
	assert.NotNil(t, list.Checks)
}

func TestChecks_NotFound(t *testing.T) {
	h, _ := createTestHandler(t)
	r := setupTestRouter(h)

	w := performRequest(r, http.MethodGet, "/api/v1/checks/does-not-exist", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestChecks_BadLimit(t *testing.T) {
	h, _ := createTestHandler(t)
	r := setupTestRouter(h)

	for _, q := range []string{"abc", "0", "-1"} {
		w := performRequest(r, http.MethodGet, "/api/v1/checks?limit="+q, "")
		assert.Equal(t, http.StatusBadRequest, w.Code, q)
	}
}

func TestChecks_JournalDisabled(t *testing.T) {
	h := handlers.New(createTestConfig(t), nil, nil)
	r := setupTestRouter(h)

	assert.Equal(t, http.StatusServiceUnavailable, performRequest(r, http.MethodGet, "/api/v1/checks", "").Code)
	assert.Equal(t, http.StatusServiceUnavailable, performRequest(r, http.MethodGet, "/api/v1/checks/x", "").Code)
	assert.Equal(t, http.StatusServiceUnavailable, performRequest(r, http.MethodDelete, "/api/v1/checks", "").Code)
}
