package params

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/priyanshuraj27/Smart-City-Infrastructure-IoT-Analytics-System/internal/apierr"
)

type sampleRequest struct {
	ZoneID *int64   `json:"zone_id" binding:"required,gt=0"`
	Name   string   `json:"name" binding:"required"`
	Status string   `json:"status" binding:"omitempty,oneof=Active Inactive"`
	Income *float64 `json:"avg_income" binding:"omitempty,min=0"`
}

func newContext(method, target, body string) *gin.Context {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(method, target, strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	return c
}

func TestBindJSON_MissingFieldsUseJSONNames(t *testing.T) {
	c := newContext(http.MethodPost, "/", `{}`)
	var req sampleRequest
	err := BindJSON(c, &req)
	require.Error(t, err)
	assert.Equal(t, apierr.KindValidation, apierr.KindOf(err))
	assert.Equal(t, "Missing required fields: zone_id, name", err.Error())
}

func TestBindJSON_InvalidValues(t *testing.T) {
	c := newContext(http.MethodPost, "/", `{"zone_id": 1, "name": "A", "status": "Broken", "avg_income": -1}`)
	var req sampleRequest
	err := BindJSON(c, &req)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status must be one of [Active Inactive]")
	assert.Contains(t, err.Error(), "avg_income must be at least 0")
}

func TestBindJSON_Malformed(t *testing.T) {
	c := newContext(http.MethodPost, "/", `{"zone_id": `)
	var req sampleRequest
	err := BindJSON(c, &req)
	require.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, apierr.Status(err))
	assert.True(t, strings.HasPrefix(err.Error(), "Invalid JSON body"))
}

func TestPositiveInt(t *testing.T) {
	c := newContext(http.MethodGet, "/?days=14&months=0&bad=x", "")

	v, err := PositiveInt(c, "days", 7)
	require.NoError(t, err)
	assert.Equal(t, 14, v)

	v, err = PositiveInt(c, "missing", 7)
	require.NoError(t, err)
	assert.Equal(t, 7, v)

	_, err = PositiveInt(c, "months", 6)
	assert.Error(t, err)
	_, err = PositiveInt(c, "bad", 6)
	assert.Error(t, err)
}

func TestParseDate(t *testing.T) {
	want := time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC)
	for _, in := range []string{"2024-03-05", "2024-03-05T00:00:00Z", "2024-03-05T18:30:00Z"} {
		got, err := ParseDate(in)
		require.NoError(t, err, in)
		assert.True(t, want.Equal(got), in)
	}
	_, err := ParseDate("05/03/2024")
	assert.Error(t, err)
}

func TestParseTimestamp(t *testing.T) {
	got, err := ParseTimestamp("2024-03-05T10:30")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 3, 5, 10, 30, 0, 0, time.UTC), got)

	got, err = ParseTimestamp("2024-03-05T10:30:00+02:00")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 3, 5, 8, 30, 0, 0, time.UTC), got)
	assert.Equal(t, time.UTC, got.Location())
}
