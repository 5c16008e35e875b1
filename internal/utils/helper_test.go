package utils

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFirstName(t *testing.T) {
	assert.Equal(t, "Jamie", FirstName("Jamie Rivera", "Customer"))
	assert.Equal(t, "Jamie", FirstName("Jamie", "Customer"))
	assert.Equal(t, "Customer", FirstName("", "Customer"))
	assert.Equal(t, "Customer", FirstName("   ", "Customer"))
}

func TestCity(t *testing.T) {
	assert.Equal(t, "Willow Creek", City("88 Oak Ave, Willow Creek"))
	assert.Equal(t, "Willow Creek", City("Willow Creek"))
}

func TestFormatTime(t *testing.T) {
	ts := time.Date(2025, 6, 1, 12, 30, 0, 0, time.UTC)
	assert.Equal(t, "2025-06-01T12:30:00Z", FormatTime(ts))

	got := FormatTimePtr(&ts)
	assert.Equal(t, "2025-06-01T12:30:00Z", *got)
	assert.Nil(t, FormatTimePtr(nil))
}

func TestPtrHelpers(t *testing.T) {
	assert.Equal(t, "a", PtrString(StrPtr("a")))
	assert.Equal(t, "", PtrString(nil))
	assert.Equal(t, int32(0), PtrInt32(nil))
	assert.False(t, PtrBool(nil))
}

func TestWriteJSONError(t *testing.T) {
	w := httptest.NewRecorder()
	WriteJSONError(w, "error message", http.StatusBadRequest)

	resp := w.Result()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))

	var body map[string]string
	json.NewDecoder(resp.Body).Decode(&body)
	assert.Equal(t, "error message", body["error"])
}
