package response

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	cErr "gateway/internal/pkg/error"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestFailByErr_Envelope(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	FailByErr(c, "req-1", cErr.InvalidInput("messages must not be empty"))

	require.Equal(t, http.StatusBadRequest, w.Code)
	var body ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Equal(t, cErr.KindInvalidInput, body.Error.Kind)
	require.Equal(t, "messages must not be empty", body.Error.Message)
	require.Equal(t, cErr.BAD_REQUEST_BODY, body.Error.Code)
	require.Equal(t, "req-1", body.Error.RequestID)
	require.True(t, c.IsAborted())
}

func TestFailByErr_HidesInternalDetail(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	FailByErr(c, "", errors.New("sql: connection string has password=hunter2"))

	require.Equal(t, http.StatusInternalServerError, w.Code)
	require.NotContains(t, w.Body.String(), "hunter2")
	require.Contains(t, w.Body.String(), `"kind":"internal_error"`)
}

func TestSuccess_StoresData(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	Success(c, gin.H{"text": "hi"})

	data, ok := c.Get(DataKey)
	require.True(t, ok)
	require.Equal(t, gin.H{"text": "hi"}, data)
	require.True(t, c.IsAborted())
}
