package errors

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusCode(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, StatusCode(ErrCodeInvalidInput))
	assert.Equal(t, http.StatusNotFound, StatusCode(ErrCodeNotFound))
	assert.Equal(t, http.StatusInternalServerError, StatusCode(ErrCodeInternalError))
	assert.Equal(t, http.StatusInternalServerError, StatusCode("SOMETHING_ELSE"))
}

func TestResponders(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name       string
		respond    func(c *gin.Context)
		wantStatus int
		wantCode   string
		wantMsg    string
	}{
		{"not found default", func(c *gin.Context) { NotFound(c, "") }, http.StatusNotFound, ErrCodeNotFound, "Resource not found"},
		{"bad request", func(c *gin.Context) { BadRequest(c, "title is required") }, http.StatusBadRequest, ErrCodeInvalidInput, "title is required"},
		{"internal default", func(c *gin.Context) { InternalError(c, "") }, http.StatusInternalServerError, ErrCodeInternalError, "Internal server error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)

			tt.respond(c)

			assert.True(t, c.IsAborted())
			assert.Equal(t, tt.wantStatus, w.Code)
			var body APIError
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			assert.Equal(t, tt.wantCode, body.Code)
			assert.Equal(t, tt.wantMsg, body.Message)
			assert.Nil(t, body.Details)
		})
	}
}

func TestBadRequestWithDetails(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	BadRequestWithDetails(c, "", "unexpected EOF")

	var body APIError
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "Invalid request", body.Message)
	assert.Equal(t, "unexpected EOF", body.Details)
}
