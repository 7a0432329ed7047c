package httpresp

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/salon-booking/internal/httperr"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestNewPagination(t *testing.T) {
	assert.Equal(t, Pagination{Page: 1, Limit: 20, Total: 41, Pages: 3}, NewPagination(1, 20, 41))
	assert.Equal(t, 0, NewPagination(1, 20, 0).Pages)
	assert.Equal(t, 1, NewPagination(1, 20, 20).Pages)
}

func TestFailUsesBusinessStatus(t *testing.T) {
	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)

	Fail(c, httperr.NotFound("salon_not_found", "Salon not found"))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	body := decode(t, rec)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "Salon not found", body["message"])
	assert.Equal(t, "salon_not_found", body["errorCode"])
}

func TestFailInternalKeepsRawMessage(t *testing.T) {
	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)

	Fail(c, errors.New("connection refused"))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "connection refused", decode(t, rec)["message"])
}

func TestListNeverEmitsNullData(t *testing.T) {
	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)

	List[string](c, nil, NewPagination(1, 20, 0))

	body := decode(t, rec)
	assert.Equal(t, []any{}, body["data"])
	assert.NotNil(t, body["pagination"])
}

func TestItemsNeverNull(t *testing.T) {
	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)

	var none []string
	Items(c, "", none)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []any{}, decode(t, rec)["data"])
}
