package apierr

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestStatus(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want int
	}{
		{"validation", Validation("Missing required fields: name"), http.StatusBadRequest},
		{"duplicate", Duplicate("Zone ID already exists", errors.New("unique")), http.StatusBadRequest},
		{"not found", NotFound("Zone not found"), http.StatusNotFound},
		{"store", Store(errors.New("connection refused")), http.StatusInternalServerError},
		{"plain", errors.New("boom"), http.StatusInternalServerError},
		{"wrapped", fmt.Errorf("get zone: %w", NotFound("Zone not found")), http.StatusNotFound},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Status(tc.err))
		})
	}
}

func TestStore_PassesMessageThrough(t *testing.T) {
	cause := errors.New("relation \"zones\" does not exist")
	err := Store(cause)
	assert.Equal(t, cause.Error(), err.Error())
	assert.ErrorIs(t, err, cause)
	assert.Nil(t, Store(nil))
}

func TestRespond_WritesErrorBody(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/api/zones/9", nil)

	Respond(c, zap.NewNop(), NotFound("Zone not found"))

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error":"Zone not found"}`, w.Body.String())
	assert.True(t, c.IsAborted())
}
