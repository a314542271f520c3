package httputil

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prysmaticlabs/remote-signer/testing/assert"
	"github.com/prysmaticlabs/remote-signer/testing/require"
)

func TestHandleError(t *testing.T) {
	writer := httptest.NewRecorder()
	HandleError(writer, "Key not found: 0xab", http.StatusNotFound)
	require.Equal(t, http.StatusNotFound, writer.Code)
	assert.Equal(t, "application/json", writer.Header().Get("Content-Type"))
	assert.Equal(t, "{\"error\":\"Key not found: 0xab\"}\n", writer.Body.String())
}

func TestWriteJson(t *testing.T) {
	writer := httptest.NewRecorder()
	WriteJson(writer, http.StatusOK, map[string]string{"signature": "0x01"})
	require.Equal(t, http.StatusOK, writer.Code)
	assert.Equal(t, "{\"signature\":\"0x01\"}\n", writer.Body.String())
}

func TestWriteRaw(t *testing.T) {
	writer := httptest.NewRecorder()
	WriteRaw(writer, http.StatusTeapot, []byte("short and stout"))
	require.Equal(t, http.StatusTeapot, writer.Code)
	assert.Equal(t, "short and stout", writer.Body.String())
	assert.Equal(t, "", writer.Header().Get("Content-Type"))
}
