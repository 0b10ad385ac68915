package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/acaipro/storefront-service/internal/domain/dto"
)

func TestErrorResponsePool_ResetsAllFields(t *testing.T) {
	resp := getErrorResponse()
	resp.Error = "invalid_request"
	resp.Message = "customer.name: name is required"
	resp.Details = map[string]string{"field": "name"}
	resp.RequestID = "req-1"
	resp.Timestamp = time.Now()

	putErrorResponse(resp)

	reused := getErrorResponse()
	assert.Empty(t, reused.Error)
	assert.Empty(t, reused.Message)
	assert.Empty(t, reused.RequestID)
	assert.Nil(t, reused.Details)
	assert.True(t, reused.Timestamp.IsZero())
	putErrorResponse(reused)
}

func TestSuccessResponsePool_ResetsAllFields(t *testing.T) {
	resp := getSuccessResponse()
	resp.Data = map[string]string{"id": "order-1"}
	resp.RequestID = "req-2"
	resp.Timestamp = time.Now()

	putSuccessResponse(resp)

	reused := getSuccessResponse()
	assert.Nil(t, reused.Data)
	assert.Empty(t, reused.RequestID)
	assert.True(t, reused.Timestamp.IsZero())
	putSuccessResponse(reused)
}

func TestResponseBuilder_Error(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

	builder := NewResponseBuilder(c)
	builder.Error(http.StatusNotFound, "error.order_not_found", nil)

	assert.Equal(t, http.StatusNotFound, w.Code)

	var body dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.NotEmpty(t, body.Error)
	assert.False(t, body.Timestamp.IsZero())
}

func TestResponseBuilder_Success(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

	builder := NewResponseBuilder(c)
	builder.SuccessOK(map[string]string{"status": "confirmed"})

	assert.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Data map[string]string `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "confirmed", body.Data["status"])
}
